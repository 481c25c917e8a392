package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/orgcharts/orgcharts-backend/api"
	"github.com/orgcharts/orgcharts-backend/infra"
	"github.com/orgcharts/orgcharts-backend/repositories"
	"github.com/orgcharts/orgcharts-backend/usecases"
	"github.com/orgcharts/orgcharts-backend/utils"
)

func RunServer() error {
	apiConfig := readApiConfig()
	pgConfig := readPgConfig()
	serverConfig := readServerConfig()

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env, apiVersion)
	defer sentry.Flush(3 * time.Second)

	tracingConfig := infra.TelemetryConfiguration{
		ApplicationName: apiConfig.AppName,
		Enabled:         serverConfig.enableTracing,
	}
	telemetryRessources, err := infra.InitTelemetry(ctx, tracingConfig, apiVersion)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		telemetryRessources = infra.NoopTelemetry()
	}

	pool, err := connectToDatabase(ctx, pgConfig, telemetryRessources.TracerProvider)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	defer pool.Close()

	repositories := repositories.NewRepositories(pool)
	uc := usecases.NewUsecases(repositories,
		usecases.WithAppName(apiConfig.AppName),
		usecases.WithApiVersion(apiVersion),
	)

	router := api.InitRouterMiddlewares(ctx, apiConfig, telemetryRessources)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server",
			slog.String("port", apiConfig.Port),
			slog.String("version", apiVersion))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(
			ctx,
			errors.Wrap(err, "Error while shutting down the server"),
		)
		return err
	}

	return nil
}
