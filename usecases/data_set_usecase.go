package usecases

import (
	"context"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/repositories"
	"github.com/orgcharts/orgcharts-backend/usecases/executor_factory"
)

type DataSetUsecaseRepository interface {
	ListDataSets(ctx context.Context, exec repositories.Executor) ([]models.DataSet, error)
}

type DataSetUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      DataSetUsecaseRepository
}

func (usecase *DataSetUsecase) ListDataSets(ctx context.Context) ([]models.DataSet, error) {
	return usecase.repository.ListDataSets(ctx, usecase.executorFactory.NewExecutor())
}
