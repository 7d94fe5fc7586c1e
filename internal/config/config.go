package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresMaxConns int32  `toml:"postgres_max_conns"`
	MigrationsPath   string `toml:"migrations_path"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	// progress
	StreakToleranceDays     int `toml:"streak_tolerance_days"`
	SummaryCacheSizeMB      int `toml:"summary_cache_size_mb"`
	SummaryCacheTTLSeconds  int `toml:"summary_cache_ttl_seconds"`
	EvaluateRateLimitPerMin int `toml:"evaluate_rate_limit_per_min"`
	// allowed origins for CORS, empty means any
	AllowedOrigins []string `toml:"allowed_origins"`
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
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Load reads the TOML file and returns the section for the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}

// MinSummaryCacheSizeMB keeps the local cache entry limit (1/1024 of its
// size) at 16 KB, enough for summaries of users with a few hundred exercises.
const MinSummaryCacheSizeMB = 16

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.MigrationsPath == "" {
		c.MigrationsPath = "./migrations"
	}
	if c.StreakToleranceDays <= 0 {
		c.StreakToleranceDays = 4
	}
	if c.SummaryCacheSizeMB <= 0 {
		c.SummaryCacheSizeMB = 32
	} else if c.SummaryCacheSizeMB < MinSummaryCacheSizeMB {
		c.SummaryCacheSizeMB = MinSummaryCacheSizeMB
	}
	if c.SummaryCacheTTLSeconds <= 0 {
		c.SummaryCacheTTLSeconds = 600
	}
	if c.EvaluateRateLimitPerMin <= 0 {
		c.EvaluateRateLimitPerMin = 60
	}
}
