package internal

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/2beens/gymlog/internal/config"
	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/gymlog"
	"github.com/2beens/gymlog/internal/gymlog/entries"
	"github.com/2beens/gymlog/internal/gymlog/feedback"
	"github.com/2beens/gymlog/internal/gymlog/progress"
	"github.com/2beens/gymlog/internal/gymlog/repo"
	"github.com/2beens/gymlog/internal/kvstore"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	historyFileName  = "history.json"
	settingsFileName = "settings.json"
)

// App owns the storage connections and the tracker built on top of them.
type App struct {
	Tracker *gymlog.Tracker

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
}

type NewAppParams struct {
	Config  *config.Config
	Secrets *config.Secrets
	// Now and Rand are overridden in tests
	Now  func() time.Time
	Rand feedback.Rand
}

func NewApp(ctx context.Context, params NewAppParams) (_ *App, err error) {
	cfg := params.Config
	secrets := params.Secrets
	if secrets == nil {
		secrets = &config.Secrets{}
	}

	if err := pkg.EnsureDir(cfg.DataDir); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	app := &App{config: cfg}
	// release whatever was opened if a later step fails
	defer func() {
		if err != nil {
			app.closeConnections()
		}
	}()

	var collectors []prometheus.Collector
	var historyStore entries.Store
	switch cfg.HistoryBackend {
	case config.BackendPostgres:
		app.dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDB,
			TracingEnabled: cfg.TracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		pgStore := repo.NewPostgresStore(app.dbPool)
		if err := pgStore.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		historyStore = pgStore
		collectors = append(collectors, db.NewPoolCollector(app.dbPool, cfg.PostgresDB))
	default:
		historyStore = repo.NewFileStore(filepath.Join(cfg.DataDir, historyFileName))
	}

	app.promRegistry = metrics.SetupPrometheus(collectors...)
	app.metricsManager = metrics.NewManager("gymlog", "cli", app.promRegistry)

	var kv kvstore.Store
	switch cfg.KVBackend {
	case config.BackendRedis:
		app.redisClient = kvstore.NewRedisClient(ctx, kvstore.NewRedisClientParams{
			Host:           cfg.RedisHost,
			Port:           cfg.RedisPort,
			Password:       secrets.RedisPassword,
			DB:             cfg.RedisDB,
			TracingEnabled: cfg.TracingEnabled,
		})
		prefix := cfg.RedisKeyPrefix
		if prefix == "" {
			prefix = kvstore.DefaultKeyPrefix
		}
		kv = kvstore.NewRedisStore(app.redisClient, prefix)
	default:
		kv, err = kvstore.NewFileStore(filepath.Join(cfg.DataDir, settingsFileName))
		if err != nil {
			return nil, fmt.Errorf("settings store: %w", err)
		}
	}
	if cfg.KVCacheSize > 0 {
		kv = kvstore.NewCachedStore(kv, cfg.KVCacheSize)
	}

	history, err := entries.NewCollection(ctx, repo.NewInstrumentedStore(historyStore, cfg.HistoryBackend, app.metricsManager))
	if err != nil {
		return nil, err
	}

	rnd := params.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rotator := feedback.NewRotator(kv, rnd, app.metricsManager)
	if err := rotator.Load(ctx); err != nil {
		// a lost rotation only means messages may repeat sooner
		log.Warnf("load message rotation: %s", err)
	}
	pools := feedback.NewPools(kv, rotator)

	app.Tracker = gymlog.NewTracker(gymlog.NewTrackerParams{
		History:          history,
		Goals:            progress.NewGoalStore(kv),
		Composer:         feedback.NewComposer(pools, rotator),
		Messages:         gymlog.NewMessageSettings(pools, rotator),
		BodyWeightConfig: cfg.BodyWeight,
		StrengthConfig:   cfg.Strength,
		MetricsManager:   app.metricsManager,
		Now:              params.Now,
	})

	log.Debugf("app ready [history: %s, kv: %s, entries: %d]", cfg.HistoryBackend, cfg.KVBackend, history.Len())

	return app, nil
}

// Backup archives the data dir. Only file backends keep their data there.
func (a *App) Backup(ctx context.Context, dest string) error {
	if a.config.HistoryBackend != config.BackendFile && a.config.KVBackend != config.BackendFile {
		return fmt.Errorf("nothing to back up: no file backend in use")
	}
	return backupDir(ctx, a.config.DataDir, dest)
}

func (a *App) Gatherer() prometheus.Gatherer {
	return a.promRegistry
}

// Close writes the metrics textfile (if configured) and closes all connections.
func (a *App) Close() error {
	var err error
	if a.promRegistry != nil {
		err = metrics.WriteTextfile(a.promRegistry, a.config.MetricsTextfile)
	}
	return multierr.Append(err, a.closeConnections())
}

func (a *App) closeConnections() error {
	var err error
	if a.dbPool != nil {
		a.dbPool.Close()
		a.dbPool = nil
	}
	if a.redisClient != nil {
		err = multierr.Append(err, a.redisClient.Close())
		a.redisClient = nil
	}
	return err
}
