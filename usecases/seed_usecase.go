package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/hashicorp/go-set/v2"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/repositories"
	"github.com/orgcharts/orgcharts-backend/usecases/executor_factory"
	"github.com/orgcharts/orgcharts-backend/utils"
)

type SeedUsecaseRepository interface {
	UpsertOrgUnits(ctx context.Context, exec repositories.Executor, orgUnits []models.OrgUnit) error
	UpsertDataElements(ctx context.Context, exec repositories.Executor, dataElements []models.DataElement) error
	UpsertPeriods(ctx context.Context, exec repositories.Executor, periods []models.Period) error
	UpsertDataSets(ctx context.Context, exec repositories.Executor, dataSets []models.DataSet) error
	UpsertDataValues(ctx context.Context, exec repositories.Executor, dataValues []models.DataValue) error
}

type SeedUsecase struct {
	transactionFactory executor_factory.TransactionFactory
	repository         SeedUsecaseRepository
}

// Seed upserts the whole content of a seed file in a single transaction.
func (usecase *SeedUsecase) Seed(ctx context.Context, data models.SeedData) (models.SeedReport, error) {
	logger := utils.LoggerFromContext(ctx)

	if err := validateSeedData(data); err != nil {
		return models.SeedReport{}, err
	}

	for i := range data.DataValues {
		if data.DataValues[i].Id == "" {
			data.DataValues[i].Id = uuid.NewString()
		}
	}

	report, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.SeedReport, error) {
			if err := usecase.repository.UpsertOrgUnits(ctx, tx, data.OrgUnits); err != nil {
				return models.SeedReport{}, err
			}
			if err := usecase.repository.UpsertDataElements(ctx, tx, data.DataElements); err != nil {
				return models.SeedReport{}, err
			}
			if err := usecase.repository.UpsertPeriods(ctx, tx, data.Periods); err != nil {
				return models.SeedReport{}, err
			}
			if err := usecase.repository.UpsertDataSets(ctx, tx, data.DataSets); err != nil {
				return models.SeedReport{}, err
			}
			if err := usecase.repository.UpsertDataValues(ctx, tx, data.DataValues); err != nil {
				return models.SeedReport{}, err
			}
			return models.SeedReport{
				OrgUnits:     len(data.OrgUnits),
				DataElements: len(data.DataElements),
				Periods:      len(data.Periods),
				DataSets:     len(data.DataSets),
				DataValues:   len(data.DataValues),
			}, nil
		})
	if err != nil {
		return models.SeedReport{}, err
	}

	logger.InfoContext(ctx, "seed data imported",
		"org_units", report.OrgUnits,
		"data_elements", report.DataElements,
		"periods", report.Periods,
		"data_sets", report.DataSets,
		"data_values", report.DataValues)
	return report, nil
}

func validateSeedData(data models.SeedData) error {
	for _, orgUnit := range data.OrgUnits {
		if err := utils.ValidateUuid(orgUnit.Id); err != nil {
			return errors.Wrapf(err, "org unit '%s'", orgUnit.Name)
		}
		if orgUnit.ParentId != nil {
			if err := utils.ValidateUuid(*orgUnit.ParentId); err != nil {
				return errors.Wrapf(err, "parent of org unit '%s'", orgUnit.Name)
			}
		}
		if orgUnit.Level < 0 {
			return errors.Wrapf(models.BadParameterError, "org unit '%s' has a negative level", orgUnit.Name)
		}
	}

	for _, dataElement := range data.DataElements {
		if err := utils.ValidateUuid(dataElement.Id); err != nil {
			return errors.Wrapf(err, "data element '%s'", dataElement.Name)
		}
	}

	codes := set.New[string](len(data.Periods))
	for _, period := range data.Periods {
		if err := utils.ValidateUuid(period.Id); err != nil {
			return errors.Wrapf(err, "period '%s'", period.Code)
		}
		if !period.PeriodType.IsValid() {
			return errors.Wrapf(models.BadParameterError, "period '%s' has an unknown period type '%s'",
				period.Code, period.PeriodType)
		}
		if !codes.Insert(period.Code) {
			return errors.Wrapf(models.BadParameterError, "period code '%s' is duplicated", period.Code)
		}
	}

	for _, dataSet := range data.DataSets {
		if err := utils.ValidateUuid(dataSet.Id); err != nil {
			return errors.Wrapf(err, "data set '%s'", dataSet.Name)
		}
		if !dataSet.PeriodType.IsValid() {
			return errors.Wrapf(models.BadParameterError, "data set '%s' has an unknown period type '%s'",
				dataSet.Name, dataSet.PeriodType)
		}
		for _, dataElement := range dataSet.DataElements {
			if err := utils.ValidateUuid(dataElement.Id); err != nil {
				return errors.Wrapf(err, "data element of data set '%s'", dataSet.Name)
			}
		}
	}

	for _, dataValue := range data.DataValues {
		if dataValue.Id != "" {
			if err := utils.ValidateUuid(dataValue.Id); err != nil {
				return errors.Wrap(err, "data value")
			}
		}
		if err := utils.ValidateUuids([]string{dataValue.OrgUnitId, dataValue.DataElementId, dataValue.PeriodId}); err != nil {
			return errors.Wrap(err, "data value")
		}
	}

	return nil
}
