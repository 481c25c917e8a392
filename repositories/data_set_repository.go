package repositories

import (
	"context"
	"fmt"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/repositories/dbmodels"
)

type dataSetElement struct {
	dataSetId   string
	dataElement models.DataElement
}

func adaptDataSetElement(db dbmodels.DBDataSetElement) (dataSetElement, error) {
	dataElement, err := dbmodels.AdaptDataElement(db.DBDataElement)
	return dataSetElement{dataSetId: db.DataSetId, dataElement: dataElement}, err
}

// ListDataSets returns all the data sets with their data elements, in their configured order.
func (repo *OrgChartsDbRepository) ListDataSets(ctx context.Context, exec Executor) ([]models.DataSet, error) {
	dataSetsQuery := NewQueryBuilder().
		Select(dbmodels.SelectDataSetColumn...).
		From(dbmodels.TABLE_DATA_SETS).
		OrderBy(`name COLLATE "C"`, "id")

	dataSets, err := SqlToListOfModels(ctx, exec, dataSetsQuery, dbmodels.AdaptDataSet)
	if err != nil {
		return nil, err
	}
	if len(dataSets) == 0 {
		return dataSets, nil
	}

	elementsQuery := NewQueryBuilder().
		Select(
			"dse.data_set_id",
			"de.id",
			"de.name",
			"de.description",
		).
		From(fmt.Sprintf("%s AS dse", dbmodels.TABLE_DATA_SET_ELEMENTS)).
		Join(fmt.Sprintf("%s AS de ON de.id = dse.data_element_id", dbmodels.TABLE_DATA_ELEMENTS)).
		OrderBy("dse.data_set_id", "dse.sort_order", "de.id")

	elements, err := SqlToListOfModels(ctx, exec, elementsQuery, adaptDataSetElement)
	if err != nil {
		return nil, err
	}

	position := make(map[string]int, len(dataSets))
	for i, dataSet := range dataSets {
		position[dataSet.Id] = i
	}
	for _, element := range elements {
		i, ok := position[element.dataSetId]
		if !ok {
			continue
		}
		dataSets[i].DataElements = append(dataSets[i].DataElements, element.dataElement)
	}

	return dataSets, nil
}
