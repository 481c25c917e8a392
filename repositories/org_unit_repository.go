package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/repositories/dbmodels"
)

// byte-wise collation, so that the order does not depend on the locale of the database
const orderByOrgUnitName = `name COLLATE "C"`

func (repo *OrgChartsDbRepository) GetOrgUnitById(ctx context.Context, exec Executor, orgUnitId string) (models.OrgUnit, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectOrgUnitColumn...).
		From(dbmodels.TABLE_ORG_UNITS).
		Where(squirrel.Eq{"id": orgUnitId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptOrgUnit)
}

// ListOrgUnitsByParent returns the direct children of parentId, or the roots when parentId is nil.
func (repo *OrgChartsDbRepository) ListOrgUnitsByParent(ctx context.Context, exec Executor, parentId *string) ([]models.OrgUnit, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectOrgUnitColumn...).
		From(dbmodels.TABLE_ORG_UNITS).
		OrderBy(orderByOrgUnitName, "id")

	if parentId == nil {
		query = query.Where(squirrel.Eq{"parent_id": nil})
	} else {
		query = query.Where(squirrel.Eq{"parent_id": *parentId})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptOrgUnit)
}

// ListOrgUnitsByParentIds returns the direct children of all the given org units, in one round-trip.
func (repo *OrgChartsDbRepository) ListOrgUnitsByParentIds(ctx context.Context, exec Executor, parentIds []string) ([]models.OrgUnit, error) {
	if len(parentIds) == 0 {
		return []models.OrgUnit{}, nil
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectOrgUnitColumn...).
		From(dbmodels.TABLE_ORG_UNITS).
		Where(squirrel.Expr("parent_id = ANY(?::uuid[])", parentIds)).
		OrderBy(orderByOrgUnitName, "id")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptOrgUnit)
}
