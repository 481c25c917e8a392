package usecases

import (
	"context"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/repositories"
	"github.com/orgcharts/orgcharts-backend/usecases/executor_factory"
	"github.com/orgcharts/orgcharts-backend/utils"
)

type OrgUnitUsecaseRepository interface {
	ListOrgUnitsByParent(ctx context.Context, exec repositories.Executor, parentId *string) ([]models.OrgUnit, error)
}

type OrgUnitUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      OrgUnitUsecaseRepository
}

// ListChildren returns the direct children of parentId sorted by name, or the roots when parentId is nil or empty.
// An unknown parent has no children.
func (usecase *OrgUnitUsecase) ListChildren(ctx context.Context, parentId *string) ([]models.OrgUnit, error) {
	if parentId != nil && *parentId == "" {
		parentId = nil
	}
	if parentId != nil {
		if err := utils.ValidateUuid(*parentId); err != nil {
			return nil, err
		}
	}

	return usecase.repository.ListOrgUnitsByParent(ctx, usecase.executorFactory.NewExecutor(), parentId)
}
