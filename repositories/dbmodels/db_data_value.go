package dbmodels

import (
	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/utils"
)

type DBDataValue struct {
	Id            string  `db:"id"`
	OrgUnitId     string  `db:"org_unit_id"`
	DataElementId string  `db:"data_element_id"`
	PeriodId      string  `db:"period_id"`
	Value         float64 `db:"value"`
}

const TABLE_DATA_VALUES = "data_values"

var SelectDataValueColumn = utils.ColumnList[DBDataValue]()

func AdaptDataValue(db DBDataValue) (models.DataValue, error) {
	return models.DataValue{
		Id:            db.Id,
		OrgUnitId:     db.OrgUnitId,
		DataElementId: db.DataElementId,
		PeriodId:      db.PeriodId,
		Value:         db.Value,
	}, nil
}
