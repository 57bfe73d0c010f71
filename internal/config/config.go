package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Resources ResourcesConfig `mapstructure:"resources"`
	Timeouts  TimeoutsConfig  `mapstructure:"timeouts"`
	Health    HealthConfig    `mapstructure:"health"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Port       int    `mapstructure:"port"`
	Runtime    string `mapstructure:"runtime"`
	SocketPath string `mapstructure:"socket_path"`
	DataDir    string `mapstructure:"data_dir"`
}

type TemplatesConfig struct {
	Dir string `mapstructure:"dir"`
}

// ResourcesConfig is the global allocation ceiling. Allocation requests above
// these values are rejected before they reach the runtime.
type ResourcesConfig struct {
	MaxCPU    float64 `mapstructure:"max_cpu"`
	MaxMemory string  `mapstructure:"max_memory"`
	MaxDisk   string  `mapstructure:"max_disk"`
}

type TimeoutsConfig struct {
	QuerySeconds     int `mapstructure:"query_seconds"`
	LifecycleSeconds int `mapstructure:"lifecycle_seconds"`
	ExecSeconds      int `mapstructure:"exec_seconds"`
}

type HealthConfig struct {
	IntervalSeconds int `mapstructure:"interval_seconds"`
}

type LoggingConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Level      string `mapstructure:"level"`
	Dir        string `mapstructure:"dir"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

var sizeRegex = regexp.MustCompile(`^0*[1-9][0-9]*[bkmgBKMG]$`)

func Load() (*Config, error) {
	var cfg Config

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.runtime", "auto")
	viper.SetDefault("server.socket_path", "")

	defaultDataDir := getDefaultDataDir()
	viper.SetDefault("server.data_dir", defaultDataDir)
	viper.SetDefault("templates.dir", filepath.Join(defaultDataDir, "templates"))

	viper.SetDefault("resources.max_cpu", 8.0)
	viper.SetDefault("resources.max_memory", "16g")
	viper.SetDefault("resources.max_disk", "100g")

	viper.SetDefault("timeouts.query_seconds", 10)
	viper.SetDefault("timeouts.lifecycle_seconds", 60)
	viper.SetDefault("timeouts.exec_seconds", 120)
	viper.SetDefault("health.interval_seconds", 15)

	viper.SetDefault("logging.enabled", false)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "ade.log")
	viper.SetDefault("logging.max_size", 50)
	viper.SetDefault("logging.max_backups", 3)
	viper.SetDefault("logging.max_age", 28)
	viper.SetDefault("logging.compress", true)

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// If data_dir is empty after loading config, use the default
	if cfg.Server.DataDir == "" {
		cfg.Server.DataDir = defaultDataDir
		log.Debug().Str("data_dir", cfg.Server.DataDir).Msg("Config had empty data_dir, using default")
	}
	if cfg.Templates.Dir == "" {
		cfg.Templates.Dir = filepath.Join(cfg.Server.DataDir, "templates")
	}
	if cfg.Logging.Dir == "" {
		cfg.Logging.Dir = filepath.Join(cfg.Server.DataDir, "logs")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	validRuntimes := []string{"auto", "docker", "podman", "podman-rootless"}
	isValid := false
	for _, valid := range validRuntimes {
		if c.Server.Runtime == valid {
			isValid = true
			break
		}
	}
	if !isValid {
		return fmt.Errorf("server.runtime must be one of: %s", strings.Join(validRuntimes, ", "))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	if c.Resources.MaxCPU <= 0 {
		return fmt.Errorf("resources.max_cpu must be a positive number")
	}
	if !sizeRegex.MatchString(c.Resources.MaxMemory) {
		return fmt.Errorf("resources.max_memory must match <positive integer><b|k|m|g>, got %q", c.Resources.MaxMemory)
	}
	if !sizeRegex.MatchString(c.Resources.MaxDisk) {
		return fmt.Errorf("resources.max_disk must match <positive integer><b|k|m|g>, got %q", c.Resources.MaxDisk)
	}

	if c.Timeouts.QuerySeconds <= 0 || c.Timeouts.LifecycleSeconds <= 0 || c.Timeouts.ExecSeconds <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	if c.Health.IntervalSeconds <= 0 {
		return fmt.Errorf("health.interval_seconds must be positive")
	}

	return nil
}

// QueryTimeout is the bound applied to read-only container queries
func (c *Config) QueryTimeout() time.Duration {
	return time.Duration(c.Timeouts.QuerySeconds) * time.Second
}

// LifecycleTimeout is the bound applied to create/start/stop/delete operations
func (c *Config) LifecycleTimeout() time.Duration {
	return time.Duration(c.Timeouts.LifecycleSeconds) * time.Second
}

// ExecTimeout is the bound applied to in-container command execution
func (c *Config) ExecTimeout() time.Duration {
	return time.Duration(c.Timeouts.ExecSeconds) * time.Second
}

// HealthInterval is how often the health monitor re-evaluates running containers
func (c *Config) HealthInterval() time.Duration {
	return time.Duration(c.Health.IntervalSeconds) * time.Second
}

// getDefaultDataDir returns a platform-appropriate default data directory
func getDefaultDataDir() string {
	uid := os.Getuid()

	// Check if we're running in a rootless environment
	if uid != 0 {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, ".local/share/ade")
		}
		log.Debug().Msg("Failed to get user home directory, falling back to ./data")
	}

	return "./data"
}
