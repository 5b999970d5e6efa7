package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/gymlog/internal/gymlog/progress"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// storage
	DataDir        string `toml:"data_dir"`
	HistoryBackend string `toml:"history_backend"`
	KVBackend      string `toml:"kv_backend"`
	KVCacheSize    int    `toml:"kv_cache_size"`
	// postgres
	PostgresHost string `toml:"postgres_host"`
	PostgresPort string `toml:"postgres_port"`
	PostgresDB   string `toml:"postgres_db"`
	// redis
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	RedisDB        int    `toml:"redis_db"`
	RedisKeyPrefix string `toml:"redis_key_prefix"`
	// telemetry
	TracingEnabled  bool   `toml:"tracing_enabled"`
	MetricsTextfile string `toml:"metrics_textfile"`
	// analyzers
	BodyWeight progress.BodyWeightConfig `toml:"body_weight"`
	Strength   progress.StrengthConfig   `toml:"strength"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no [%s] section in config", strings.ToLower(env))
	}
	return cfg, nil
}

// Load decodes the TOML file at path and returns the section for env,
// with unset values replaced by defaults.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DataDir == "" {
		c.DataDir = "./data"
	}
	if c.HistoryBackend == "" {
		c.HistoryBackend = BackendFile
	}
	if c.KVBackend == "" {
		c.KVBackend = BackendFile
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresDB == "" {
		c.PostgresDB = "gymlog"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}

	bodyWeightDefaults := progress.DefaultBodyWeightConfig()
	if c.BodyWeight.WeeklyThreshold <= 0 {
		c.BodyWeight.WeeklyThreshold = bodyWeightDefaults.WeeklyThreshold
	}
	if c.BodyWeight.TrendThreshold <= 0 {
		c.BodyWeight.TrendThreshold = bodyWeightDefaults.TrendThreshold
	}
	if c.BodyWeight.TrendPeriodDays <= 0 {
		c.BodyWeight.TrendPeriodDays = bodyWeightDefaults.TrendPeriodDays
	}

	strengthDefaults := progress.DefaultStrengthConfig()
	if c.Strength.LookbackDays <= 0 {
		c.Strength.LookbackDays = strengthDefaults.LookbackDays
	}
	if c.Strength.MaxSessions <= 0 {
		c.Strength.MaxSessions = strengthDefaults.MaxSessions
	}
	if c.Strength.MinSessions <= 0 {
		c.Strength.MinSessions = strengthDefaults.MinSessions
	}
}

func (c *Config) Validate() error {
	switch c.HistoryBackend {
	case BackendFile:
	case BackendPostgres:
		if c.PostgresHost == "" {
			return fmt.Errorf("history backend %s needs postgres_host", BackendPostgres)
		}
	default:
		return fmt.Errorf("unknown history backend: %s", c.HistoryBackend)
	}

	switch c.KVBackend {
	case BackendFile:
	case BackendRedis:
		if c.RedisHost == "" {
			return fmt.Errorf("kv backend %s needs redis_host", BackendRedis)
		}
	default:
		return fmt.Errorf("unknown kv backend: %s", c.KVBackend)
	}

	if c.KVCacheSize < 0 {
		return fmt.Errorf("kv_cache_size must not be negative: %d", c.KVCacheSize)
	}

	return nil
}

// Secrets are never kept in the config file.
type Secrets struct {
	SentryDSN     string `env:"SENTRY_DSN"`
	RedisPassword string `env:"GYMLOG_REDIS_PASS"`
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	var s Secrets
	if err := envconfig.Process(ctx, &s); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &s, nil
}
