package models

import (
	"github.com/cockroachdb/errors"
)

// ChartDataRequest selects the facts to chart: the org units at OrgUnitLevel below OrgUnitId,
// restricted to the given data elements and period codes.
type ChartDataRequest struct {
	OrgUnitId      string
	OrgUnitLevel   int
	DataElementIds []string
	PeriodCodes    []string
}

func (r ChartDataRequest) Validate() error {
	if r.OrgUnitId == "" || r.DataElementIds == nil || r.PeriodCodes == nil {
		return errors.WithStack(MissingFieldError)
	}
	if r.OrgUnitLevel < 0 {
		return errors.Wrapf(BadParameterError, "orgUnitLevel must not be negative, got %d", r.OrgUnitLevel)
	}
	return nil
}

type ChartOrgUnit struct {
	Id   string
	Name string
}

type ChartPeriod struct {
	Id   string
	Code string
	Name string
}

// ChartRow is one charted fact, flattened with the names of its dimensions.
type ChartRow struct {
	Id          string
	OrgUnit     ChartOrgUnit
	DataElement DataElement
	Period      ChartPeriod
	Value       float64
}
