package repositories

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/cockroachdb/errors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/orgcharts/orgcharts-backend/infra"
	"github.com/orgcharts/orgcharts-backend/utils"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsFolder = "migrations"

type Migrater struct {
	pgConfig infra.PgConfig
}

func NewMigrater(pgConfig infra.PgConfig) *Migrater {
	return &Migrater{
		pgConfig: pgConfig,
	}
}

func (m *Migrater) openDb(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("pgx", m.pgConfig.GetConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to database")
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to ping database")
	}
	return db, nil
}

func (m *Migrater) Run(ctx context.Context) error {
	db, err := m.openDb(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "Migrations starting to setup DB: "+migrationsFolder)

	migrationsFs, err := fs.Sub(embedMigrations, migrationsFolder)
	if err != nil {
		return errors.Wrap(err, "unable to read embedded migrations")
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrationsFs)
	if err != nil {
		return errors.Wrap(err, "unable to create migration provider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to run migrations")
	}
	for _, result := range results {
		logger.InfoContext(ctx, "applied migration",
			"source", result.Source.Path,
			"duration", result.Duration.String())
	}
	return nil
}
