package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/orgcharts/orgcharts-backend/mocks"
	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/usecases/executor_factory"
)

type ChartUsecaseTestSuite struct {
	suite.Suite
	repository      *mocks.OrgChartsRepository
	executorFactory executor_factory.ExecutorFactoryStub

	ctx         context.Context
	root        models.OrgUnit
	child       models.OrgUnit
	dataElement models.DataElement
	period      models.Period
	dataValue   models.DataValue

	repositoryError error
}

func (suite *ChartUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.OrgChartsRepository)
	suite.executorFactory = executor_factory.NewExecutorFactoryStub()
	suite.ctx = context.Background()

	rootId := "8d4b8d7e-52a4-4a52-a1b1-61a3c8a0d001"
	suite.root = models.OrgUnit{Id: rootId, Name: "Country", Level: 0}
	suite.child = models.OrgUnit{
		Id:       "8d4b8d7e-52a4-4a52-a1b1-61a3c8a0d002",
		Name:     "Region",
		ParentId: &rootId,
		Level:    1,
	}
	suite.dataElement = models.DataElement{
		Id:          "1f0c2d3e-4b5a-4c6d-8e7f-901a2b3c4d01",
		Name:        "Malaria cases",
		Description: "Confirmed malaria cases",
	}
	suite.period = models.Period{
		Id:         "2a1b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c01",
		Code:       "202401",
		Name:       "January 2024",
		PeriodType: models.PeriodTypeMonthly,
	}
	suite.dataValue = models.DataValue{
		Id:            "3b2c4d5e-6f7a-4b8c-9d0e-1f2a3b4c5d01",
		OrgUnitId:     suite.child.Id,
		DataElementId: suite.dataElement.Id,
		PeriodId:      suite.period.Id,
		Value:         42,
	}
	suite.repositoryError = errors.New("some repository error")
}

func (suite *ChartUsecaseTestSuite) makeUsecase() *ChartUsecase {
	return &ChartUsecase{
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
	}
}

func (suite *ChartUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
}

func (suite *ChartUsecaseTestSuite) request(level int) models.ChartDataRequest {
	return models.ChartDataRequest{
		OrgUnitId:      suite.root.Id,
		OrgUnitLevel:   level,
		DataElementIds: []string{suite.dataElement.Id},
		PeriodCodes:    []string{suite.period.Code},
	}
}

func (suite *ChartUsecaseTestSuite) expectHierarchy() {
	suite.repository.On("GetOrgUnitById", mock.Anything, mock.Anything, suite.root.Id).Return(suite.root, nil)
	suite.repository.On("ListOrgUnitsByParentIds", mock.Anything, mock.Anything, []string{suite.root.Id}).
		Return([]models.OrgUnit{suite.child}, nil)
	suite.repository.On("ListOrgUnitsByParentIds", mock.Anything, mock.Anything, []string{suite.child.Id}).
		Return([]models.OrgUnit{}, nil)
}

func TestChartUsecase(t *testing.T) {
	suite.Run(t, new(ChartUsecaseTestSuite))
}

func (suite *ChartUsecaseTestSuite) TestAggregateChartData_nominal() {
	suite.expectHierarchy()
	suite.repository.On("ListPeriodsByCodes", mock.Anything, mock.Anything, []string{suite.period.Code}).
		Return([]models.Period{suite.period}, nil)
	suite.repository.On("ListDataElementsByIds", mock.Anything, mock.Anything, []string{suite.dataElement.Id}).
		Return([]models.DataElement{suite.dataElement}, nil)
	suite.repository.On("ListDataValues", mock.Anything, mock.Anything, models.DataValueFilter{
		OrgUnitIds:     []string{suite.child.Id},
		DataElementIds: []string{suite.dataElement.Id},
		PeriodIds:      []string{suite.period.Id},
	}).Return([]models.DataValue{suite.dataValue}, nil)

	rows, err := suite.makeUsecase().AggregateChartData(suite.ctx, suite.request(1))

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, []models.ChartRow{{
		Id:          suite.dataValue.Id,
		OrgUnit:     models.ChartOrgUnit{Id: suite.child.Id, Name: "Region"},
		DataElement: suite.dataElement,
		Period:      models.ChartPeriod{Id: suite.period.Id, Code: "202401", Name: "January 2024"},
		Value:       42,
	}}, rows)

	suite.AssertExpectations()
}

func (suite *ChartUsecaseTestSuite) TestAggregateChartData_no_org_unit_at_level() {
	suite.expectHierarchy()

	rows, err := suite.makeUsecase().AggregateChartData(suite.ctx, suite.request(2))

	t := suite.T()
	assert.NoError(t, err)
	assert.Empty(t, rows)
	suite.repository.AssertNotCalled(t, "ListDataValues", mock.Anything, mock.Anything, mock.Anything)

	suite.AssertExpectations()
}

func (suite *ChartUsecaseTestSuite) TestAggregateChartData_anchor_is_not_its_own_descendant() {
	suite.expectHierarchy()

	rows, err := suite.makeUsecase().AggregateChartData(suite.ctx, suite.request(0))

	t := suite.T()
	assert.NoError(t, err)
	assert.Empty(t, rows)

	suite.AssertExpectations()
}

func (suite *ChartUsecaseTestSuite) TestAggregateChartData_anchor_not_found() {
	suite.repository.On("GetOrgUnitById", mock.Anything, mock.Anything, suite.root.Id).
		Return(models.OrgUnit{}, errors.Wrap(models.NotFoundError, "found no object"))

	_, err := suite.makeUsecase().AggregateChartData(suite.ctx, suite.request(1))

	t := suite.T()
	assert.ErrorIs(t, err, models.NotFoundError)

	suite.AssertExpectations()
}

func (suite *ChartUsecaseTestSuite) TestAggregateChartData_cycle_terminates() {
	rootParent := suite.child.Id
	cyclicRoot := suite.root
	cyclicRoot.ParentId = &rootParent

	suite.repository.On("GetOrgUnitById", mock.Anything, mock.Anything, suite.root.Id).Return(cyclicRoot, nil)
	suite.repository.On("ListOrgUnitsByParentIds", mock.Anything, mock.Anything, []string{suite.root.Id}).
		Return([]models.OrgUnit{suite.child}, nil).Once()
	suite.repository.On("ListOrgUnitsByParentIds", mock.Anything, mock.Anything, []string{suite.child.Id}).
		Return([]models.OrgUnit{cyclicRoot}, nil).Once()

	rows, err := suite.makeUsecase().AggregateChartData(suite.ctx, suite.request(3))

	t := suite.T()
	assert.NoError(t, err)
	assert.Empty(t, rows)

	suite.AssertExpectations()
}

func (suite *ChartUsecaseTestSuite) TestAggregateChartData_missing_field() {
	request := suite.request(1)
	request.PeriodCodes = nil

	_, err := suite.makeUsecase().AggregateChartData(suite.ctx, request)

	t := suite.T()
	assert.ErrorIs(t, err, models.MissingFieldError)
	assert.ErrorIs(t, err, models.BadParameterError)

	suite.AssertExpectations()
}

func (suite *ChartUsecaseTestSuite) TestAggregateChartData_invalid_identifier() {
	request := suite.request(1)
	request.DataElementIds = []string{"not-a-uuid"}

	_, err := suite.makeUsecase().AggregateChartData(suite.ctx, request)

	t := suite.T()
	assert.ErrorIs(t, err, models.InvalidIdentifierError)

	suite.AssertExpectations()
}

func (suite *ChartUsecaseTestSuite) TestAggregateChartData_urn_identifier_is_rejected() {
	request := suite.request(1)
	request.OrgUnitId = "urn:uuid:" + suite.root.Id

	_, err := suite.makeUsecase().AggregateChartData(suite.ctx, request)

	t := suite.T()
	assert.ErrorIs(t, err, models.InvalidIdentifierError)
	suite.repository.AssertNotCalled(t, "GetOrgUnitById", mock.Anything, mock.Anything, mock.Anything)

	suite.AssertExpectations()
}

func (suite *ChartUsecaseTestSuite) TestAggregateChartData_repeated_request_returns_same_rows() {
	otherPeriod := models.Period{
		Id:         "2a1b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c02",
		Code:       "202402",
		Name:       "February 2024",
		PeriodType: models.PeriodTypeMonthly,
	}
	otherValue := suite.dataValue
	otherValue.Id = "3b2c4d5e-6f7a-4b8c-9d0e-1f2a3b4c5d02"
	otherValue.PeriodId = otherPeriod.Id
	otherValue.Value = 17

	suite.expectHierarchy()
	suite.repository.On("ListPeriodsByCodes", mock.Anything, mock.Anything, []string{suite.period.Code, otherPeriod.Code}).
		Return([]models.Period{suite.period, otherPeriod}, nil)
	suite.repository.On("ListDataElementsByIds", mock.Anything, mock.Anything, []string{suite.dataElement.Id}).
		Return([]models.DataElement{suite.dataElement}, nil)
	// storage hands back the same facts in a different order the second time
	suite.repository.On("ListDataValues", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.DataValue{suite.dataValue, otherValue}, nil).Once()
	suite.repository.On("ListDataValues", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.DataValue{otherValue, suite.dataValue}, nil).Once()

	request := suite.request(1)
	request.PeriodCodes = []string{suite.period.Code, otherPeriod.Code}
	usecase := suite.makeUsecase()

	first, err := usecase.AggregateChartData(suite.ctx, request)
	t := suite.T()
	assert.NoError(t, err)
	second, err := usecase.AggregateChartData(suite.ctx, request)
	assert.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Equal(t, first, second)
	suite.repository.AssertNumberOfCalls(t, "ListDataValues", 2)

	suite.AssertExpectations()
}

func (suite *ChartUsecaseTestSuite) TestAggregateChartData_empty_selection_matches_nothing() {
	suite.expectHierarchy()
	suite.repository.On("ListPeriodsByCodes", mock.Anything, mock.Anything, []string{}).
		Return([]models.Period{}, nil)

	request := suite.request(1)
	request.PeriodCodes = []string{}
	rows, err := suite.makeUsecase().AggregateChartData(suite.ctx, request)

	t := suite.T()
	assert.NoError(t, err)
	assert.Empty(t, rows)

	suite.AssertExpectations()
}

func (suite *ChartUsecaseTestSuite) TestAggregateChartData_repository_error() {
	suite.expectHierarchy()
	suite.repository.On("ListPeriodsByCodes", mock.Anything, mock.Anything, []string{suite.period.Code}).
		Return([]models.Period{}, suite.repositoryError)

	_, err := suite.makeUsecase().AggregateChartData(suite.ctx, suite.request(1))

	t := suite.T()
	assert.ErrorIs(t, err, suite.repositoryError)

	suite.AssertExpectations()
}

func TestProjectChartRows_drops_unmatched_facts_and_sorts(t *testing.T) {
	orgUnits := map[string]models.OrgUnit{
		"ou-b": {Id: "ou-b", Name: "Bravo"},
		"ou-a": {Id: "ou-a", Name: "Alpha"},
	}
	dataElements := map[string]models.DataElement{"de": {Id: "de", Name: "Cases"}}
	periods := map[string]models.Period{
		"p1": {Id: "p1", Code: "202401"},
		"p2": {Id: "p2", Code: "202402"},
	}
	dataValues := []models.DataValue{
		{Id: "v1", OrgUnitId: "ou-b", DataElementId: "de", PeriodId: "p1", Value: 1},
		{Id: "v2", OrgUnitId: "ou-a", DataElementId: "de", PeriodId: "p2", Value: 2},
		{Id: "v3", OrgUnitId: "ou-a", DataElementId: "de", PeriodId: "p1", Value: 3},
		{Id: "v4", OrgUnitId: "ou-a", DataElementId: "unknown", PeriodId: "p1", Value: 4},
		{Id: "v5", OrgUnitId: "ou-a", DataElementId: "de", PeriodId: "unknown", Value: 5},
	}

	rows := projectChartRows(dataValues, orgUnits, dataElements, periods)

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.Id
	}
	assert.Equal(t, []string{"v3", "v2", "v1"}, ids)
}
