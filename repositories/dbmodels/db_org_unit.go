package dbmodels

import (
	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/utils"
)

type DBOrgUnit struct {
	Id       string  `db:"id"`
	Name     string  `db:"name"`
	ParentId *string `db:"parent_id"`
	Level    int     `db:"level"`
}

const TABLE_ORG_UNITS = "org_units"

var SelectOrgUnitColumn = utils.ColumnList[DBOrgUnit]()

func AdaptOrgUnit(db DBOrgUnit) (models.OrgUnit, error) {
	return models.OrgUnit{
		Id:       db.Id,
		Name:     db.Name,
		ParentId: db.ParentId,
		Level:    db.Level,
	}, nil
}
