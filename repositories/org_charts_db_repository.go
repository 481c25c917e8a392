package repositories

// OrgChartsDbRepository holds the queries against the orgcharts postgres database.
// Every method receives the executor to use, so that callers decide between the pool and a transaction.
type OrgChartsDbRepository struct{}
