package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/orgcharts/orgcharts-backend/dto"
	"github.com/orgcharts/orgcharts-backend/infra"
	"github.com/orgcharts/orgcharts-backend/repositories"
	"github.com/orgcharts/orgcharts-backend/usecases"
	"github.com/orgcharts/orgcharts-backend/utils"
)

// RunSeed upserts the content of a YAML seed file into the database.
func RunSeed(seedFilePath string) error {
	pgConfig := readPgConfig()

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	f, err := os.Open(seedFilePath)
	if err != nil {
		return errors.Wrapf(err, "could not open seed file %s", seedFilePath)
	}
	defer f.Close()

	seedFile, err := dto.ParseSeedFile(f)
	if err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error parsing seed file: %v", err))
		return err
	}

	pool, err := connectToDatabase(ctx, pgConfig, infra.NoopTelemetry().TracerProvider)
	if err != nil {
		return err
	}
	defer pool.Close()

	uc := usecases.NewUsecases(repositories.NewRepositories(pool),
		usecases.WithAppName(appName),
		usecases.WithApiVersion(apiVersion),
	)
	seedUsecase := uc.NewSeedUsecase()

	report, err := seedUsecase.Seed(ctx, dto.AdaptSeedData(seedFile))
	if err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error seeding database: %v", err))
		return err
	}

	logger.InfoContext(ctx, "seed file imported", slog.String("file", seedFilePath), slog.Any("report", report))
	return nil
}
