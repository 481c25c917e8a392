package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/repositories/dbmodels"
)

// ListDataValues returns the facts matching all three dimensions of the filter.
// An empty dimension matches nothing.
func (repo *OrgChartsDbRepository) ListDataValues(ctx context.Context, exec Executor, filter models.DataValueFilter) ([]models.DataValue, error) {
	if len(filter.OrgUnitIds) == 0 || len(filter.DataElementIds) == 0 || len(filter.PeriodIds) == 0 {
		return []models.DataValue{}, nil
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectDataValueColumn...).
		From(dbmodels.TABLE_DATA_VALUES).
		Where(squirrel.Expr("org_unit_id = ANY(?::uuid[])", filter.OrgUnitIds)).
		Where(squirrel.Expr("data_element_id = ANY(?::uuid[])", filter.DataElementIds)).
		Where(squirrel.Expr("period_id = ANY(?::uuid[])", filter.PeriodIds))

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptDataValue)
}
