package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/orgcharts/orgcharts-backend/models"
)

type OrgUnitUsecase struct {
	mock.Mock
}

func (m *OrgUnitUsecase) ListChildren(ctx context.Context, parentId *string) ([]models.OrgUnit, error) {
	args := m.Called(ctx, parentId)
	return args.Get(0).([]models.OrgUnit), args.Error(1)
}

type ChartUsecase struct {
	mock.Mock
}

func (m *ChartUsecase) AggregateChartData(ctx context.Context, request models.ChartDataRequest) ([]models.ChartRow, error) {
	args := m.Called(ctx, request)
	return args.Get(0).([]models.ChartRow), args.Error(1)
}

type DataElementUsecase struct {
	mock.Mock
}

func (m *DataElementUsecase) ListDataElements(ctx context.Context) ([]models.DataElement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.DataElement), args.Error(1)
}

type PeriodUsecase struct {
	mock.Mock
}

func (m *PeriodUsecase) ListPeriods(ctx context.Context, periodType *string) ([]models.Period, error) {
	args := m.Called(ctx, periodType)
	return args.Get(0).([]models.Period), args.Error(1)
}

type DataSetUsecase struct {
	mock.Mock
}

func (m *DataSetUsecase) ListDataSets(ctx context.Context) ([]models.DataSet, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.DataSet), args.Error(1)
}

type LivenessUsecase struct {
	mock.Mock
}

func (m *LivenessUsecase) Liveness(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
