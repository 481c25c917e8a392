package dbmodels

import (
	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/utils"
)

type DBDataElement struct {
	Id          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

const TABLE_DATA_ELEMENTS = "data_elements"

var SelectDataElementColumn = utils.ColumnList[DBDataElement]()

func AdaptDataElement(db DBDataElement) (models.DataElement, error) {
	return models.DataElement{
		Id:          db.Id,
		Name:        db.Name,
		Description: db.Description,
	}, nil
}
