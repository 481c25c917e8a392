package dto

import (
	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/pure_utils"
)

type APIDataSet struct {
	Id           string           `json:"_id"`
	Name         string           `json:"name"`
	PeriodType   string           `json:"periodType"`
	DataElements []APIDataElement `json:"dataElements"`
}

func AdaptDataSetDto(dataSet models.DataSet) APIDataSet {
	return APIDataSet{
		Id:           dataSet.Id,
		Name:         dataSet.Name,
		PeriodType:   string(dataSet.PeriodType),
		DataElements: pure_utils.Map(dataSet.DataElements, AdaptDataElementDto),
	}
}
