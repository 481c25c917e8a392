package repositories

import "context"

func (repo *OrgChartsDbRepository) Liveness(ctx context.Context, exec Executor) error {
	var result int
	if err := exec.QueryRow(ctx, "SELECT 1").Scan(&result); err != nil {
		return storageError(err, "database is not reachable")
	}
	return nil
}
