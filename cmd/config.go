package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"

	"github.com/orgcharts/orgcharts-backend/api"
	"github.com/orgcharts/orgcharts-backend/infra"
	"github.com/orgcharts/orgcharts-backend/utils"
)

const appName = "orgcharts-backend"

// Set at build time with -ldflags "-X github.com/orgcharts/orgcharts-backend/cmd.apiVersion=..."
var apiVersion = "dev"

type ServerConfig struct {
	loggingFormat string
	sentryDsn     string
	enableTracing bool
}

func readPgConfig() infra.PgConfig {
	return infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           utils.GetEnv("PG_DATABASE", "orgcharts"),
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
}

func readApiConfig() api.Configuration {
	return api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             appName,
		AppVersion:          apiVersion,
		Port:                utils.GetRequiredEnv[string]("PORT"),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "info"),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 10)) * time.Second,
		CorsAllowedOrigins:  utils.GetEnvList("CORS_ALLOWED_ORIGINS"),
		EnablePrometheus:    utils.GetEnv("ENABLE_PROMETHEUS", false),
	}
}

func readServerConfig() ServerConfig {
	return ServerConfig{
		loggingFormat: utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:     utils.GetEnv("SENTRY_DSN", ""),
		enableTracing: utils.GetEnv("ENABLE_TRACING", false),
	}
}

// connectToDatabase waits for the database to accept connections before handing out the pool.
func connectToDatabase(ctx context.Context, pgConfig infra.PgConfig, tracerProvider trace.TracerProvider) (*pgxpool.Pool, error) {
	logger := utils.LoggerFromContext(ctx)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig, tracerProvider)
	if err != nil {
		return nil, err
	}

	err = retry.Do(
		func() error { return pool.Ping(ctx) },
		retry.Attempts(5),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logger.WarnContext(ctx, fmt.Sprintf("database not reachable yet (attempt %d): %v", n+1, err))
		}),
	)
	if err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "database is not reachable")
	}
	return pool, nil
}
