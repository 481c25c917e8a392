package dto

import (
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/orgcharts/orgcharts-backend/models"
)

// PostChartBody is the body of POST /charts. Every field is required; empty lists are accepted.
type PostChartBody struct {
	Periods      []string `json:"periods" binding:"required"`
	DataElements []string `json:"dataElements" binding:"required"`
	OrgUnitLevel *int     `json:"orgUnitLevel" binding:"required"`
	OrgUnit      string   `json:"orgUnit" binding:"required"`
}

func AdaptChartDataRequest(body PostChartBody) models.ChartDataRequest {
	request := models.ChartDataRequest{
		OrgUnitId:      body.OrgUnit,
		DataElementIds: body.DataElements,
		PeriodCodes:    body.Periods,
	}
	if body.OrgUnitLevel != nil {
		request.OrgUnitLevel = *body.OrgUnitLevel
	}
	return request
}

// AdaptBindingError turns a failed validation into a MissingFieldError, and any other decoding error into a BadParameterError.
func AdaptBindingError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return errors.WithStack(models.MissingFieldError)
	}
	return errors.Wrap(models.BadParameterError, err.Error())
}

// AdaptQueryBindingError reports an invalid query string parameter as a BadParameterError.
func AdaptQueryBindingError(err error) error {
	return errors.Wrap(models.BadParameterError, err.Error())
}

type APIChartOrgUnit struct {
	Id   string `json:"_id"`
	Name string `json:"name"`
}

type APIChartPeriod struct {
	Id   string `json:"_id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type APIChartRow struct {
	Id          string          `json:"_id"`
	OrgUnit     APIChartOrgUnit `json:"orgUnit"`
	OrgUnitName string          `json:"orgUnitName"`
	DataElement APIDataElement  `json:"dataElement"`
	Period      APIChartPeriod  `json:"period"`
	Value       float64         `json:"value"`
}

func AdaptChartRowDto(row models.ChartRow) APIChartRow {
	return APIChartRow{
		Id:          row.Id,
		OrgUnit:     APIChartOrgUnit{Id: row.OrgUnit.Id, Name: row.OrgUnit.Name},
		OrgUnitName: row.OrgUnit.Name,
		DataElement: AdaptDataElementDto(row.DataElement),
		Period: APIChartPeriod{
			Id:   row.Period.Id,
			Code: row.Period.Code,
			Name: row.Period.Name,
		},
		Value: row.Value,
	}
}
