package infra

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"
)

const DEFAULT_MAX_CONNECTIONS = 20

func NewPostgresConnectionPool(ctx context.Context, config PgConfig, tracerProvider trace.TracerProvider) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(config.GetConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "create connection pool")
	}

	cfg.ConnConfig.Tracer = otelpgx.NewTracer(otelpgx.WithTracerProvider(tracerProvider))

	cfg.MaxConns = DEFAULT_MAX_CONNECTIONS
	if config.MaxPoolConnections > 0 {
		cfg.MaxConns = int32(config.MaxPoolConnections)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create connection pool")
	}
	return pool, nil
}
