package dbmodels

import (
	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/utils"
)

type DBPeriod struct {
	Id         string `db:"id"`
	Code       string `db:"code"`
	Name       string `db:"name"`
	PeriodType string `db:"period_type"`
}

const TABLE_PERIODS = "periods"

var SelectPeriodColumn = utils.ColumnList[DBPeriod]()

func AdaptPeriod(db DBPeriod) (models.Period, error) {
	return models.Period{
		Id:         db.Id,
		Code:       db.Code,
		Name:       db.Name,
		PeriodType: models.PeriodType(db.PeriodType),
	}, nil
}
