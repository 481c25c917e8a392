package dto

import (
	"github.com/orgcharts/orgcharts-backend/models"
)

type APIPeriod struct {
	Id         string `json:"_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	PeriodType string `json:"periodType"`
}

func AdaptPeriodDto(period models.Period) APIPeriod {
	return APIPeriod{
		Id:         period.Id,
		Code:       period.Code,
		Name:       period.Name,
		PeriodType: string(period.PeriodType),
	}
}

type ListPeriodsQuery struct {
	PeriodType string `form:"periodType" binding:"omitempty,oneof=Daily Weekly Monthly Quarterly Yearly"`
}
