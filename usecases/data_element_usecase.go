package usecases

import (
	"context"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/repositories"
	"github.com/orgcharts/orgcharts-backend/usecases/executor_factory"
)

type DataElementUsecaseRepository interface {
	ListDataElements(ctx context.Context, exec repositories.Executor) ([]models.DataElement, error)
}

type DataElementUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      DataElementUsecaseRepository
}

func (usecase *DataElementUsecase) ListDataElements(ctx context.Context) ([]models.DataElement, error) {
	return usecase.repository.ListDataElements(ctx, usecase.executorFactory.NewExecutor())
}
