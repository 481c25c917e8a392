package usecases

import (
	"github.com/orgcharts/orgcharts-backend/repositories"
	"github.com/orgcharts/orgcharts-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories repositories.Repositories
	appName      string
	apiVersion   string
}

type options struct {
	appName    string
	apiVersion string
}

type Option func(*options)

func WithAppName(appName string) Option {
	return func(o *options) {
		o.appName = appName
	}
}

func WithApiVersion(apiVersion string) Option {
	return func(o *options) {
		o.apiVersion = apiVersion
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return Usecases{
		Repositories: repositories,
		appName:      o.appName,
		apiVersion:   o.apiVersion,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.OrgChartsDbRepository,
	}
}

func (usecases *Usecases) NewOrgUnitUsecase() OrgUnitUsecase {
	return OrgUnitUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.OrgChartsDbRepository,
	}
}

func (usecases *Usecases) NewChartUsecase() ChartUsecase {
	return ChartUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.OrgChartsDbRepository,
	}
}

func (usecases *Usecases) NewDataElementUsecase() DataElementUsecase {
	return DataElementUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.OrgChartsDbRepository,
	}
}

func (usecases *Usecases) NewPeriodUsecase() PeriodUsecase {
	return PeriodUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.OrgChartsDbRepository,
	}
}

func (usecases *Usecases) NewDataSetUsecase() DataSetUsecase {
	return DataSetUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.OrgChartsDbRepository,
	}
}

func (usecases *Usecases) NewSeedUsecase() SeedUsecase {
	return SeedUsecase{
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.OrgChartsDbRepository,
	}
}
