//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/2beens/gymlog/internal"
	"github.com/2beens/gymlog/internal/config"
	"github.com/2beens/gymlog/internal/db"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const testDBName = "gymlog"

type Suite struct {
	dockerPool   *dockertest.Pool
	redisPort    string
	postgresPort string
	teardown     []func()
}

func newSuite() *Suite {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}
	suite.dockerPool.MaxWait = 2 * time.Minute

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	suite.redisPort, err = suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	suite.postgresPort, err = suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	return suite
}

func (s *Suite) cleanup() {
	for _, teardown := range s.teardown {
		teardown()
	}
}

// newApp builds an app on the suite's postgres and redis, with its own key prefix and data dir.
func (s *Suite) newApp(ctx context.Context, dataDir, keyPrefix string, params internal.NewAppParams) (*internal.App, error) {
	cfg := config.Default()
	cfg.DataDir = filepath.Join(dataDir, "data")
	cfg.HistoryBackend = config.BackendPostgres
	cfg.PostgresHost = "localhost"
	cfg.PostgresPort = s.postgresPort
	cfg.PostgresDB = testDBName
	cfg.KVBackend = config.BackendRedis
	cfg.RedisHost = "localhost"
	cfg.RedisPort = s.redisPort
	cfg.RedisKeyPrefix = keyPrefix
	cfg.KVCacheSize = 512 * 1024
	cfg.MetricsTextfile = filepath.Join(dataDir, "metrics", "gymlog.prom")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	params.Config = cfg
	return internal.NewApp(ctx, params)
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "gymlog-redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	return redisResource.GetPort("6379/tcp"), nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=" + testDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")

	// the container accepts connections a while after it started
	if err := s.dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost: "localhost",
			DBPort: pgPort,
			DBName: testDBName,
		})
		if err != nil {
			return err
		}
		pool.Close()
		return nil
	}); err != nil {
		return "", fmt.Errorf("wait for postgres: %s", err)
	}

	log.Printf("postgres ready on port %s\n", pgPort)
	return pgPort, nil
}
