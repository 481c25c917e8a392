package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/repositories"
	"github.com/orgcharts/orgcharts-backend/usecases/executor_factory"
)

type PeriodUsecaseRepository interface {
	ListPeriods(ctx context.Context, exec repositories.Executor, periodType *models.PeriodType) ([]models.Period, error)
}

type PeriodUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      PeriodUsecaseRepository
}

// ListPeriods returns the periods sorted by code, optionally restricted to one period type.
func (usecase *PeriodUsecase) ListPeriods(ctx context.Context, periodType *string) ([]models.Period, error) {
	var filter *models.PeriodType
	if periodType != nil && *periodType != "" {
		t := models.PeriodType(*periodType)
		if !t.IsValid() {
			return nil, errors.Wrapf(models.BadParameterError, "unknown period type '%s'", *periodType)
		}
		filter = &t
	}

	return usecase.repository.ListPeriods(ctx, usecase.executorFactory.NewExecutor(), filter)
}
