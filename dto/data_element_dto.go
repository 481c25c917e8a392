package dto

import (
	"github.com/orgcharts/orgcharts-backend/models"
)

type APIDataElement struct {
	Id          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func AdaptDataElementDto(dataElement models.DataElement) APIDataElement {
	return APIDataElement{
		Id:          dataElement.Id,
		Name:        dataElement.Name,
		Description: dataElement.Description,
	}
}
