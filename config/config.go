package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	Server ServerConfig
	Logger LoggerConfig

	// External collaborators
	Directory DirectoryConfig
	Inbox     InboxConfig

	// Local persisted state
	Storage StorageConfig

	// Optional multi-process sync transport
	Redis RedisConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServerConfig is the configuration for the operator HTTP server.
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DirectoryConfig points at the external identity service that owns the
// registered recipient collection.
type DirectoryConfig struct {
	BaseURL string
	Timeout time.Duration
}

// InboxConfig points at the external recipient inbox store.
type InboxConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StorageConfig is the configuration for the local broadcast audit log.
type StorageConfig struct {
	Path string
}

// RedisConfig is the configuration for the Redis-backed sync channel.
// Redis is optional: when disabled, sessions share the in-process channel.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("civic-notify-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/civic-notify/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars cover the rest.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = viper.GetString("environment.name")

	// Server
	cfg.Server.Host = viper.GetString("server.host")
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Server.Mode = viper.GetString("server.mode")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Directory service
	cfg.Directory.BaseURL = viper.GetString("directory.base_url")
	cfg.Directory.Timeout = viper.GetDuration("directory.timeout")

	// Inbox store
	cfg.Inbox.BaseURL = viper.GetString("inbox.base_url")
	cfg.Inbox.Timeout = viper.GetDuration("inbox.timeout")

	// Storage
	cfg.Storage.Path = viper.GetString("storage.path")

	// Redis
	cfg.Redis.Enabled = viper.GetBool("redis.enabled")
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8082)
	viper.SetDefault("server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Directory service
	viper.SetDefault("directory.base_url", "http://localhost:3001")
	viper.SetDefault("directory.timeout", 10*time.Second)

	// Inbox store
	viper.SetDefault("inbox.base_url", "http://localhost:3001")
	viper.SetDefault("inbox.timeout", 10*time.Second)

	// Storage
	viper.SetDefault("storage.path", "./data/civic-notify.db")

	// Redis
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
}

func validate(cfg *Config) error {
	if cfg.Directory.BaseURL == "" {
		return fmt.Errorf("directory.base_url is required")
	}
	if cfg.Inbox.BaseURL == "" {
		return fmt.Errorf("inbox.base_url is required")
	}
	if cfg.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required when redis is enabled")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required when redis is enabled")
		}
	}

	return nil
}
