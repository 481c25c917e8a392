package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter        ExecutorGetter
	OrgChartsDbRepository *OrgChartsDbRepository
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		ExecutorGetter:        NewExecutorGetter(pool),
		OrgChartsDbRepository: &OrgChartsDbRepository{},
	}
}
