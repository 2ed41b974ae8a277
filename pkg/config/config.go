// Package config loads and validates the maestro.yaml configuration file.
// Database credentials stay in the environment (pkg/database); everything
// else lives in YAML with environment expansion via {{.VAR}} templates.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Config is the fully resolved runtime configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	LLM          LLMConfig          `yaml:"llm"`
	Redis        RedisConfig        `yaml:"redis"`
	Orchestrator OrchestratorConfig `yaml:"orchestrator"`
	Monitor      MonitorConfig      `yaml:"monitor"`
	Distributed  DistributedConfig  `yaml:"distributed"`
	Retention    RetentionConfig    `yaml:"retention"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host                    string        `yaml:"host"`
	Port                    int           `yaml:"port"`
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// LLMConfig holds the gRPC LLM service settings.
type LLMConfig struct {
	Addr string `yaml:"addr"`
}

// RedisConfig holds broker connection settings. An empty Addr disables the
// broker; distributed modes then degrade to local execution.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// OrchestratorConfig holds task pipeline settings.
type OrchestratorConfig struct {
	QueueSize int `yaml:"queue_size"`
}

// MonitorConfig holds performance monitor settings.
type MonitorConfig struct {
	BufferSize    int           `yaml:"buffer_size"`
	FlushInterval time.Duration `yaml:"flush_interval"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DistributedConfig holds worker-fleet coordination settings.
type DistributedConfig struct {
	Enabled          bool          `yaml:"enabled"`
	StatsInterval    time.Duration `yaml:"stats_interval"`
	StaleAfter       time.Duration `yaml:"stale_after"`
	LeaseDuration    time.Duration `yaml:"lease_duration"`
	ElectionInterval time.Duration `yaml:"election_interval"`
}

// RetentionConfig controls the cleanup service.
type RetentionConfig struct {
	// OperationalTTL bounds worker_events and task_queue_stats rows.
	OperationalTTL time.Duration `yaml:"operational_ttl"`
	// ResolvedAlertTTL bounds resolved system_alerts rows.
	ResolvedAlertTTL time.Duration `yaml:"resolved_alert_ttl"`
	// MetricTTL bounds agent_performance_metrics sample rows.
	MetricTTL time.Duration `yaml:"metric_ttl"`
	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultConfig returns the built-in defaults, used when maestro.yaml is
// absent or partial.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:                    "0.0.0.0",
			Port:                    8080,
			GracefulShutdownTimeout: 30 * time.Second,
		},
		LLM:   LLMConfig{Addr: "localhost:50051"},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Orchestrator: OrchestratorConfig{
			QueueSize: 100,
		},
		Monitor: MonitorConfig{
			BufferSize:    100,
			FlushInterval: time.Minute,
			SweepInterval: 30 * time.Second,
		},
		Distributed: DistributedConfig{
			Enabled:          true,
			StatsInterval:    time.Minute,
			StaleAfter:       5 * time.Minute,
			LeaseDuration:    30 * time.Second,
			ElectionInterval: 10 * time.Second,
		},
		Retention: RetentionConfig{
			OperationalTTL:   24 * time.Hour,
			ResolvedAlertTTL: 7 * 24 * time.Hour,
			MetricTTL:        30 * 24 * time.Hour,
			CleanupInterval:  time.Hour,
		},
	}
}

// Initialize loads maestro.yaml from the config directory, merges it over
// the defaults, and validates the result. A missing file yields pure
// defaults.
func Initialize(configDir string) (*Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(configDir, "maestro.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Info("No maestro.yaml found, using defaults", "path", path)
		return cfg, validate(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var user Config
	if err := yaml.Unmarshal(ExpandEnv(data), &user); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := mergo.Merge(cfg, &user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	slog.Info("Configuration loaded", "path", path)
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", cfg.Server.Port)
	}
	if cfg.LLM.Addr == "" {
		return fmt.Errorf("llm.addr must not be empty")
	}
	if cfg.Orchestrator.QueueSize <= 0 {
		return fmt.Errorf("orchestrator.queue_size must be positive, got %d", cfg.Orchestrator.QueueSize)
	}
	if cfg.Monitor.BufferSize <= 0 {
		return fmt.Errorf("monitor.buffer_size must be positive, got %d", cfg.Monitor.BufferSize)
	}
	if cfg.Distributed.Enabled && cfg.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when distributed mode is enabled")
	}
	return nil
}
