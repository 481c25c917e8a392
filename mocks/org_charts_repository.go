package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/repositories"
)

type OrgChartsRepository struct {
	mock.Mock
}

func (_m *OrgChartsRepository) GetOrgUnitById(ctx context.Context, exec repositories.Executor, orgUnitId string) (models.OrgUnit, error) {
	args := _m.Called(ctx, exec, orgUnitId)
	return args.Get(0).(models.OrgUnit), args.Error(1)
}

func (_m *OrgChartsRepository) ListOrgUnitsByParent(ctx context.Context, exec repositories.Executor, parentId *string) ([]models.OrgUnit, error) {
	args := _m.Called(ctx, exec, parentId)
	return args.Get(0).([]models.OrgUnit), args.Error(1)
}

func (_m *OrgChartsRepository) ListOrgUnitsByParentIds(ctx context.Context, exec repositories.Executor, parentIds []string) ([]models.OrgUnit, error) {
	args := _m.Called(ctx, exec, parentIds)
	return args.Get(0).([]models.OrgUnit), args.Error(1)
}

func (_m *OrgChartsRepository) ListDataElements(ctx context.Context, exec repositories.Executor) ([]models.DataElement, error) {
	args := _m.Called(ctx, exec)
	return args.Get(0).([]models.DataElement), args.Error(1)
}

func (_m *OrgChartsRepository) ListDataElementsByIds(ctx context.Context, exec repositories.Executor, dataElementIds []string) ([]models.DataElement, error) {
	args := _m.Called(ctx, exec, dataElementIds)
	return args.Get(0).([]models.DataElement), args.Error(1)
}

func (_m *OrgChartsRepository) ListPeriods(ctx context.Context, exec repositories.Executor, periodType *models.PeriodType) ([]models.Period, error) {
	args := _m.Called(ctx, exec, periodType)
	return args.Get(0).([]models.Period), args.Error(1)
}

func (_m *OrgChartsRepository) ListPeriodsByCodes(ctx context.Context, exec repositories.Executor, codes []string) ([]models.Period, error) {
	args := _m.Called(ctx, exec, codes)
	return args.Get(0).([]models.Period), args.Error(1)
}

func (_m *OrgChartsRepository) ListDataValues(ctx context.Context, exec repositories.Executor, filter models.DataValueFilter) ([]models.DataValue, error) {
	args := _m.Called(ctx, exec, filter)
	return args.Get(0).([]models.DataValue), args.Error(1)
}

func (_m *OrgChartsRepository) ListDataSets(ctx context.Context, exec repositories.Executor) ([]models.DataSet, error) {
	args := _m.Called(ctx, exec)
	return args.Get(0).([]models.DataSet), args.Error(1)
}

func (_m *OrgChartsRepository) Liveness(ctx context.Context, exec repositories.Executor) error {
	args := _m.Called(ctx, exec)
	return args.Error(0)
}

func (_m *OrgChartsRepository) UpsertOrgUnits(ctx context.Context, exec repositories.Executor, orgUnits []models.OrgUnit) error {
	args := _m.Called(ctx, exec, orgUnits)
	return args.Error(0)
}

func (_m *OrgChartsRepository) UpsertDataElements(ctx context.Context, exec repositories.Executor, dataElements []models.DataElement) error {
	args := _m.Called(ctx, exec, dataElements)
	return args.Error(0)
}

func (_m *OrgChartsRepository) UpsertPeriods(ctx context.Context, exec repositories.Executor, periods []models.Period) error {
	args := _m.Called(ctx, exec, periods)
	return args.Error(0)
}

func (_m *OrgChartsRepository) UpsertDataSets(ctx context.Context, exec repositories.Executor, dataSets []models.DataSet) error {
	args := _m.Called(ctx, exec, dataSets)
	return args.Error(0)
}

func (_m *OrgChartsRepository) UpsertDataValues(ctx context.Context, exec repositories.Executor, dataValues []models.DataValue) error {
	args := _m.Called(ctx, exec, dataValues)
	return args.Error(0)
}
