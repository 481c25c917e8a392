package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/repositories/dbmodels"
)

func (repo *OrgChartsDbRepository) ListDataElements(ctx context.Context, exec Executor) ([]models.DataElement, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectDataElementColumn...).
		From(dbmodels.TABLE_DATA_ELEMENTS).
		OrderBy(`name COLLATE "C"`, "id")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptDataElement)
}

func (repo *OrgChartsDbRepository) ListDataElementsByIds(ctx context.Context, exec Executor, dataElementIds []string) ([]models.DataElement, error) {
	if len(dataElementIds) == 0 {
		return []models.DataElement{}, nil
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectDataElementColumn...).
		From(dbmodels.TABLE_DATA_ELEMENTS).
		Where(squirrel.Expr("id = ANY(?::uuid[])", dataElementIds))

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptDataElement)
}
