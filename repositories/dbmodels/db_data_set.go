package dbmodels

import (
	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/utils"
)

type DBDataSet struct {
	Id         string `db:"id"`
	Name       string `db:"name"`
	PeriodType string `db:"period_type"`
}

// DBDataSetElement is a data element joined with its position in a data set.
type DBDataSetElement struct {
	DataSetId string `db:"data_set_id"`
	DBDataElement
}

const (
	TABLE_DATA_SETS         = "data_sets"
	TABLE_DATA_SET_ELEMENTS = "data_set_elements"
)

var SelectDataSetColumn = utils.ColumnList[DBDataSet]()

func AdaptDataSet(db DBDataSet) (models.DataSet, error) {
	return models.DataSet{
		Id:           db.Id,
		Name:         db.Name,
		PeriodType:   models.PeriodType(db.PeriodType),
		DataElements: []models.DataElement{},
	}, nil
}
