package models

// DataValue is a single fact: the value of a data element for an org unit over a period.
type DataValue struct {
	Id            string
	OrgUnitId     string
	DataElementId string
	PeriodId      string
	Value         float64
}

type DataValueFilter struct {
	OrgUnitIds     []string
	DataElementIds []string
	PeriodIds      []string
}
