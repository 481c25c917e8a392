package integration

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/orgcharts/orgcharts-backend/api"
	"github.com/orgcharts/orgcharts-backend/dto"
	"github.com/orgcharts/orgcharts-backend/infra"
	"github.com/orgcharts/orgcharts-backend/repositories"
	"github.com/orgcharts/orgcharts-backend/usecases"
	"github.com/orgcharts/orgcharts-backend/utils"
)

const (
	testDbLifetime = 120 // seconds
	testUser       = "postgres"
	testPassword   = "pwd"
	testDbName     = "orgcharts"
	seedFilePath   = "testdata/seed.yaml"
)

var testServer *httptest.Server

func TestMain(m *testing.M) {
	ctx := context.Background()
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			fmt.Sprintf("POSTGRES_PASSWORD=%s", testPassword),
			fmt.Sprintf("POSTGRES_USER=%s", testUser),
			fmt.Sprintf("POSTGRES_DB=%s", testDbName),
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}

	err = resource.Expire(testDbLifetime) // hard kill the container after testDbLifetime seconds
	if err != nil {
		log.Fatalf("Could not set container lifetime: %s", err)
	}

	pool.MaxWait = testDbLifetime * time.Second

	hostAndPort := resource.GetHostPort("5432/tcp")
	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", testUser, testPassword, hostAndPort, testDbName)
	pgConfig := infra.PgConfig{ConnectionString: connectionString}

	logger := utils.NewLogger("text")
	ctx = utils.StoreLoggerInContext(ctx, logger)

	var dbPool *pgxpool.Pool
	if err = pool.Retry(func() error {
		if dbPool == nil {
			dbPool, err = infra.NewPostgresConnectionPool(ctx, pgConfig, infra.NoopTelemetry().TracerProvider)
			if err != nil {
				return err
			}
		}
		if err = dbPool.Ping(ctx); err != nil {
			log.Printf("Could not ping database: %s", err)
			return err
		}
		return nil
	}); err != nil {
		log.Fatalf("Could not connect to db: %s", err)
	}

	migrater := repositories.NewMigrater(pgConfig)
	if err = migrater.Run(ctx); err != nil {
		log.Fatalf("Could not run migrations: %s", err)
	}

	testUsecases := usecases.NewUsecases(repositories.NewRepositories(dbPool),
		usecases.WithAppName("orgcharts-backend"),
		usecases.WithApiVersion("test"),
	)

	if err := seedDatabase(ctx, testUsecases); err != nil {
		log.Fatalf("Could not seed database: %s", err)
	}

	apiConfig := api.Configuration{
		Env:                 "development",
		AppName:             "orgcharts-backend",
		AppVersion:          "test",
		RequestLoggingLevel: "info",
		DefaultTimeout:      5 * time.Second,
	}
	router := api.InitRouterMiddlewares(ctx, apiConfig, infra.NoopTelemetry())
	server := api.NewServer(router, apiConfig, testUsecases, api.WithLocalTest(true))

	testServer = httptest.NewServer(server.Handler)
	logger.InfoContext(ctx, "started server", slog.String("url", testServer.URL))

	code := m.Run()

	testServer.Close()
	dbPool.Close()

	// You can't defer this because os.Exit doesn't care for defer
	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge resource: %s", err)
	}

	os.Exit(code)
}

func seedDatabase(ctx context.Context, uc usecases.Usecases) error {
	f, err := os.Open(seedFilePath)
	if err != nil {
		return err
	}
	defer f.Close()

	seedFile, err := dto.ParseSeedFile(f)
	if err != nil {
		return err
	}
	seedUsecase := uc.NewSeedUsecase()
	_, err = seedUsecase.Seed(ctx, dto.AdaptSeedData(seedFile))
	return err
}
