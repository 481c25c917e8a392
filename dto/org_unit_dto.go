package dto

import (
	"github.com/orgcharts/orgcharts-backend/models"
)

type APIOrgUnit struct {
	Id     string  `json:"_id"`
	Name   string  `json:"name"`
	Parent *string `json:"parent"`
	Level  int     `json:"level"`
}

func AdaptOrgUnitDto(orgUnit models.OrgUnit) APIOrgUnit {
	return APIOrgUnit{
		Id:     orgUnit.Id,
		Name:   orgUnit.Name,
		Parent: orgUnit.ParentId,
		Level:  orgUnit.Level,
	}
}

type ListOrgUnitsQuery struct {
	ParentId string `form:"parentId"`
}
