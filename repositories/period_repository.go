package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/repositories/dbmodels"
)

func (repo *OrgChartsDbRepository) ListPeriods(ctx context.Context, exec Executor, periodType *models.PeriodType) ([]models.Period, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectPeriodColumn...).
		From(dbmodels.TABLE_PERIODS).
		OrderBy("code")

	if periodType != nil {
		query = query.Where(squirrel.Eq{"period_type": string(*periodType)})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptPeriod)
}

func (repo *OrgChartsDbRepository) ListPeriodsByCodes(ctx context.Context, exec Executor, codes []string) ([]models.Period, error) {
	if len(codes) == 0 {
		return []models.Period{}, nil
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectPeriodColumn...).
		From(dbmodels.TABLE_PERIODS).
		Where(squirrel.Expr("code = ANY(?::text[])", codes))

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptPeriod)
}
