package usecases

import (
	"cmp"
	"context"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/pure_utils"
	"github.com/orgcharts/orgcharts-backend/repositories"
	"github.com/orgcharts/orgcharts-backend/usecases/executor_factory"
	"github.com/orgcharts/orgcharts-backend/utils"
)

type ChartUsecaseRepository interface {
	GetOrgUnitById(ctx context.Context, exec repositories.Executor, orgUnitId string) (models.OrgUnit, error)
	ListOrgUnitsByParentIds(ctx context.Context, exec repositories.Executor, parentIds []string) ([]models.OrgUnit, error)
	ListPeriodsByCodes(ctx context.Context, exec repositories.Executor, codes []string) ([]models.Period, error)
	ListDataElementsByIds(ctx context.Context, exec repositories.Executor, dataElementIds []string) ([]models.DataElement, error)
	ListDataValues(ctx context.Context, exec repositories.Executor, filter models.DataValueFilter) ([]models.DataValue, error)
}

type ChartUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      ChartUsecaseRepository
}

// AggregateChartData returns the facts of the requested data elements and periods, for the org units found
// at the requested level below the anchor org unit.
func (usecase *ChartUsecase) AggregateChartData(ctx context.Context, request models.ChartDataRequest) ([]models.ChartRow, error) {
	tracer := utils.OpenTelemetryTracerFromContext(ctx)
	ctx, span := tracer.Start(
		ctx,
		"ChartUsecase.AggregateChartData",
		trace.WithAttributes(
			attribute.String("org_unit_id", request.OrgUnitId),
			attribute.Int("org_unit_level", request.OrgUnitLevel),
			attribute.Int("data_elements", len(request.DataElementIds)),
			attribute.Int("periods", len(request.PeriodCodes)),
		))
	defer span.End()

	start := time.Now()
	rows, err := usecase.aggregateChartData(ctx, request)
	utils.MetricChartAggregationLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		utils.MetricChartAggregationCount.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	utils.MetricChartAggregationCount.WithLabelValues("success").Inc()
	utils.MetricChartRows.Observe(float64(len(rows)))
	span.SetAttributes(attribute.Int("rows", len(rows)))
	return rows, nil
}

func (usecase *ChartUsecase) aggregateChartData(ctx context.Context, request models.ChartDataRequest) ([]models.ChartRow, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	if err := utils.ValidateUuid(request.OrgUnitId); err != nil {
		return nil, err
	}
	if err := utils.ValidateUuids(request.DataElementIds); err != nil {
		return nil, err
	}

	logger := utils.LoggerFromContext(ctx)
	exec := usecase.executorFactory.NewExecutor()

	anchor, err := usecase.repository.GetOrgUnitById(ctx, exec, request.OrgUnitId)
	if err != nil {
		return nil, err
	}

	hierarchy, err := listDescendants(ctx, exec, usecase.repository, anchor)
	if err != nil {
		return nil, err
	}
	utils.MetricHierarchyTraversalDepth.Observe(float64(hierarchy.depth))

	orgUnits := filterOrgUnitsByLevel(hierarchy.descendants, request.OrgUnitLevel)
	logger.DebugContext(ctx, "expanded org unit hierarchy",
		"org_unit_id", anchor.Id,
		"descendants", len(hierarchy.descendants),
		"depth", hierarchy.depth,
		"at_level", len(orgUnits))
	if len(orgUnits) == 0 {
		return []models.ChartRow{}, nil
	}

	periods, err := usecase.repository.ListPeriodsByCodes(ctx, exec, pure_utils.Deduplicate(request.PeriodCodes))
	if err != nil {
		return nil, err
	}
	if len(periods) == 0 {
		return []models.ChartRow{}, nil
	}

	dataElementIds := pure_utils.Deduplicate(request.DataElementIds)
	dataElements, err := usecase.repository.ListDataElementsByIds(ctx, exec, dataElementIds)
	if err != nil {
		return nil, err
	}
	if len(dataElements) == 0 {
		return []models.ChartRow{}, nil
	}

	dataValues, err := usecase.repository.ListDataValues(ctx, exec, models.DataValueFilter{
		OrgUnitIds:     pure_utils.Map(orgUnits, func(o models.OrgUnit) string { return o.Id }),
		DataElementIds: pure_utils.Map(dataElements, func(d models.DataElement) string { return d.Id }),
		PeriodIds:      pure_utils.Map(periods, func(p models.Period) string { return p.Id }),
	})
	if err != nil {
		return nil, err
	}

	return projectChartRows(
		dataValues,
		pure_utils.IndexBy(orgUnits, func(o models.OrgUnit) string { return o.Id }),
		pure_utils.IndexBy(dataElements, func(d models.DataElement) string { return d.Id }),
		pure_utils.IndexBy(periods, func(p models.Period) string { return p.Id }),
	), nil
}

// projectChartRows joins each fact with its dimensions. Facts with a dimension missing from its index are dropped.
func projectChartRows(
	dataValues []models.DataValue,
	orgUnits map[string]models.OrgUnit,
	dataElements map[string]models.DataElement,
	periods map[string]models.Period,
) []models.ChartRow {
	rows := make([]models.ChartRow, 0, len(dataValues))
	for _, dataValue := range dataValues {
		orgUnit, ok := orgUnits[dataValue.OrgUnitId]
		if !ok {
			continue
		}
		dataElement, ok := dataElements[dataValue.DataElementId]
		if !ok {
			continue
		}
		period, ok := periods[dataValue.PeriodId]
		if !ok {
			continue
		}

		rows = append(rows, models.ChartRow{
			Id:          dataValue.Id,
			OrgUnit:     models.ChartOrgUnit{Id: orgUnit.Id, Name: orgUnit.Name},
			DataElement: dataElement,
			Period:      models.ChartPeriod{Id: period.Id, Code: period.Code, Name: period.Name},
			Value:       dataValue.Value,
		})
	}

	slices.SortFunc(rows, func(a, b models.ChartRow) int {
		return cmp.Or(
			cmp.Compare(a.OrgUnit.Name, b.OrgUnit.Name),
			cmp.Compare(a.DataElement.Name, b.DataElement.Name),
			cmp.Compare(a.Period.Code, b.Period.Code),
			cmp.Compare(a.Id, b.Id),
		)
	})
	return rows
}
