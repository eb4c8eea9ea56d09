package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddress         = "127.0.0.1:7878"
	DefaultAdminAddress    = "127.0.0.1:6060"
	DefaultWorkers         = 4
	DefaultReadTimeout     = 5 * time.Second
	DefaultSleepDelay      = 5 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultStatsInterval   = 10 * time.Second
	DefaultOTLPEndpoint    = "localhost:4318"
)

type Config struct {
	Server struct {
		Address      string        `yaml:"address" env:"HELLO_ADDRESS"`
		Workers      int           `yaml:"workers" env:"HELLO_WORKERS"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		SleepDelay   time.Duration `yaml:"sleep_delay" env:"HELLO_SLEEP_DELAY"`
		TemplatesDir string        `yaml:"templates_dir" env:"HELLO_TEMPLATES_DIR"`
		RateLimit    struct {
			Period time.Duration `yaml:"period"`
			Limit  int64         `yaml:"limit"`
		} `yaml:"rate_limit"`
	} `yaml:"server"`

	Admin struct {
		Enabled       bool          `yaml:"enabled"`
		Address       string        `yaml:"address" env:"HELLO_ADMIN_ADDRESS"`
		StatsInterval time.Duration `yaml:"stats_interval"`
	} `yaml:"admin"`

	Tracing struct {
		Enabled  bool   `yaml:"enabled" env:"HELLO_TRACING_ENABLED"`
		Endpoint string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	} `yaml:"tracing"`

	Log struct {
		Level  string `yaml:"level" env:"HELLO_LOG_LEVEL"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Default is the configuration before any file or environment is applied.
func Default() *Config {
	var cfg Config
	cfg.Server.Address = DefaultAddress
	cfg.Server.Workers = DefaultWorkers
	cfg.Server.ReadTimeout = DefaultReadTimeout
	cfg.Server.SleepDelay = DefaultSleepDelay
	cfg.Admin.Address = DefaultAdminAddress
	cfg.Admin.StatsInterval = DefaultStatsInterval
	cfg.Tracing.Endpoint = DefaultOTLPEndpoint
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.ShutdownTimeout = DefaultShutdownTimeout
	return &cfg
}

// Read overlays the YAML file at path and then the environment on top of
// Default. An empty path skips the file. The result is not validated.
func Read(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read yaml")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parse yaml")
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// Load is Read followed by Validate.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return errors.New("server.address must be set")
	}
	if c.Server.Workers <= 0 {
		return errors.Errorf("server.workers must be > 0, got %d", c.Server.Workers)
	}
	if c.Server.ReadTimeout < 0 || c.Server.SleepDelay < 0 {
		return errors.New("server timeouts must not be negative")
	}
	if c.Server.RateLimit.Limit < 0 {
		return errors.Errorf("server.rate_limit.limit must not be negative, got %d", c.Server.RateLimit.Limit)
	}
	if c.Server.RateLimit.Limit > 0 && c.Server.RateLimit.Period <= 0 {
		return errors.New("server.rate_limit.period must be set when a limit is configured")
	}
	if c.Admin.StatsInterval <= 0 {
		return errors.New("admin.stats_interval must be > 0")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown_timeout must be > 0")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
