package repositories

import (
	"context"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/repositories/dbmodels"
)

// rows per INSERT statement, keeps the number of bind parameters well under the postgres limit
const seedBatchSize = 1000

func (repo *OrgChartsDbRepository) UpsertOrgUnits(ctx context.Context, exec Executor, orgUnits []models.OrgUnit) error {
	for batch := range slices.Chunk(orgUnits, seedBatchSize) {
		query := NewQueryBuilder().
			Insert(dbmodels.TABLE_ORG_UNITS).
			Columns("id", "name", "parent_id", "level").
			Suffix(`ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				parent_id = EXCLUDED.parent_id,
				level = EXCLUDED.level`)
		for _, orgUnit := range batch {
			query = query.Values(orgUnit.Id, orgUnit.Name, orgUnit.ParentId, orgUnit.Level)
		}
		if _, err := ExecBuilder(ctx, exec, query); err != nil {
			return errors.Wrap(err, "error upserting org units")
		}
	}
	return nil
}

func (repo *OrgChartsDbRepository) UpsertDataElements(ctx context.Context, exec Executor, dataElements []models.DataElement) error {
	for batch := range slices.Chunk(dataElements, seedBatchSize) {
		query := NewQueryBuilder().
			Insert(dbmodels.TABLE_DATA_ELEMENTS).
			Columns("id", "name", "description").
			Suffix(`ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description`)
		for _, dataElement := range batch {
			query = query.Values(dataElement.Id, dataElement.Name, dataElement.Description)
		}
		if _, err := ExecBuilder(ctx, exec, query); err != nil {
			return errors.Wrap(err, "error upserting data elements")
		}
	}
	return nil
}

func (repo *OrgChartsDbRepository) UpsertPeriods(ctx context.Context, exec Executor, periods []models.Period) error {
	for batch := range slices.Chunk(periods, seedBatchSize) {
		query := NewQueryBuilder().
			Insert(dbmodels.TABLE_PERIODS).
			Columns("id", "code", "name", "period_type").
			Suffix(`ON CONFLICT (id) DO UPDATE SET
				code = EXCLUDED.code,
				name = EXCLUDED.name,
				period_type = EXCLUDED.period_type`)
		for _, period := range batch {
			query = query.Values(period.Id, period.Code, period.Name, string(period.PeriodType))
		}
		if _, err := ExecBuilder(ctx, exec, query); err != nil {
			return errors.Wrap(err, "error upserting periods")
		}
	}
	return nil
}

// UpsertDataSets writes the data sets and replaces their list of data elements.
func (repo *OrgChartsDbRepository) UpsertDataSets(ctx context.Context, exec Executor, dataSets []models.DataSet) error {
	if len(dataSets) == 0 {
		return nil
	}

	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_DATA_SETS).
		Columns("id", "name", "period_type").
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			period_type = EXCLUDED.period_type`)
	dataSetIds := make([]string, 0, len(dataSets))
	for _, dataSet := range dataSets {
		query = query.Values(dataSet.Id, dataSet.Name, string(dataSet.PeriodType))
		dataSetIds = append(dataSetIds, dataSet.Id)
	}
	if _, err := ExecBuilder(ctx, exec, query); err != nil {
		return errors.Wrap(err, "error upserting data sets")
	}

	deleteQuery := NewQueryBuilder().
		Delete(dbmodels.TABLE_DATA_SET_ELEMENTS).
		Where(squirrel.Expr("data_set_id = ANY(?::uuid[])", dataSetIds))
	if _, err := ExecBuilder(ctx, exec, deleteQuery); err != nil {
		return errors.Wrap(err, "error clearing data set elements")
	}

	elementsQuery := NewQueryBuilder().
		Insert(dbmodels.TABLE_DATA_SET_ELEMENTS).
		Columns("data_set_id", "data_element_id", "sort_order")
	count := 0
	for _, dataSet := range dataSets {
		for position, dataElement := range dataSet.DataElements {
			elementsQuery = elementsQuery.Values(dataSet.Id, dataElement.Id, position)
			count++
		}
	}
	if count == 0 {
		return nil
	}
	if _, err := ExecBuilder(ctx, exec, elementsQuery); err != nil {
		return errors.Wrap(err, "error inserting data set elements")
	}
	return nil
}

// UpsertDataValues writes the facts, one value per (org unit, data element, period).
func (repo *OrgChartsDbRepository) UpsertDataValues(ctx context.Context, exec Executor, dataValues []models.DataValue) error {
	for batch := range slices.Chunk(dataValues, seedBatchSize) {
		query := NewQueryBuilder().
			Insert(dbmodels.TABLE_DATA_VALUES).
			Columns("id", "org_unit_id", "data_element_id", "period_id", "value").
			Suffix(`ON CONFLICT (org_unit_id, data_element_id, period_id) DO UPDATE SET
				value = EXCLUDED.value`)
		for _, dataValue := range batch {
			query = query.Values(
				dataValue.Id,
				dataValue.OrgUnitId,
				dataValue.DataElementId,
				dataValue.PeriodId,
				dataValue.Value,
			)
		}
		if _, err := ExecBuilder(ctx, exec, query); err != nil {
			return errors.Wrap(err, "error upserting data values")
		}
	}
	return nil
}
