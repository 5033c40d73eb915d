package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the overall configuration for the application.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Secrets     SecretsConfig     `yaml:"secrets"`
	Performance PerformanceConfig `yaml:"performance"`
	Cache       CacheConfig       `yaml:"cache"`
}

// ServerConfig holds the server-specific configuration.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
}

// SecretsConfig holds the configuration of the privileged RPC secret.
type SecretsConfig struct {
	// Name is the shared secret holding privileged RPC URLs, one JSON key
	// per network short key.
	Name string `yaml:"name"`
	// File is where the secret document is mounted. Empty disables the
	// privileged tier entirely; the resolver degrades to env/public tiers.
	File string `yaml:"file"`
}

// PerformanceConfig holds timeouts and concurrency bounds for aggregation.
type PerformanceConfig struct {
	MaxConcurrentFetches      int `yaml:"maxConcurrentFetches"`
	RPCCallTimeoutSeconds     int `yaml:"rpcCallTimeoutSeconds"`
	NearCallTimeoutSeconds    int `yaml:"nearCallTimeoutSeconds"`
	AggregationTimeoutSeconds int `yaml:"aggregationTimeoutSeconds"`
	OutboundRequestsPerSecond int `yaml:"outboundRequestsPerSecond"`
}

// CacheConfig holds configuration for the snapshot cache.
type CacheConfig struct {
	TTLSeconds int `yaml:"ttlSeconds"`
}

// LoadConfig loads configuration from a YAML file and applies defaults for
// anything not set.
func LoadConfig(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	cfg.applyDefaults()

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

// Default returns a configuration with every field at its default value,
// used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
		logrus.Infof("Server.Port not set, defaulting to %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		// Must cover a full cold aggregation run plus response writing.
		cfg.Server.WriteTimeout = 60
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 120
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Secrets.Name == "" {
		cfg.Secrets.Name = "facilitator-rpc-mainnet"
	}
	if cfg.Performance.MaxConcurrentFetches == 0 {
		cfg.Performance.MaxConcurrentFetches = 20
		logrus.Infof("MaxConcurrentFetches not set, defaulting to %d", cfg.Performance.MaxConcurrentFetches)
	}
	if cfg.Performance.RPCCallTimeoutSeconds == 0 {
		cfg.Performance.RPCCallTimeoutSeconds = 8
		logrus.Infof("RPCCallTimeoutSeconds not set, defaulting to %d", cfg.Performance.RPCCallTimeoutSeconds)
	}
	if cfg.Performance.NearCallTimeoutSeconds == 0 {
		// NEAR public endpoints churn more than the rest; give up sooner so
		// the fallback walk reaches a live endpoint within budget.
		cfg.Performance.NearCallTimeoutSeconds = 5
		logrus.Infof("NearCallTimeoutSeconds not set, defaulting to %d", cfg.Performance.NearCallTimeoutSeconds)
	}
	if cfg.Performance.AggregationTimeoutSeconds == 0 {
		cfg.Performance.AggregationTimeoutSeconds = 45
		logrus.Infof("AggregationTimeoutSeconds not set, defaulting to %d", cfg.Performance.AggregationTimeoutSeconds)
	}
	if cfg.Performance.OutboundRequestsPerSecond == 0 {
		cfg.Performance.OutboundRequestsPerSecond = 50
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 60
		logrus.Infof("Cache.TTLSeconds not set, defaulting to %d", cfg.Cache.TTLSeconds)
	}
}
