package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// AppConfig is the global configuration instance.
var AppConfig *Config

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Log       LogConfig       `yaml:"log"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

type ServerConfig struct {
	Port         string        `yaml:"port"`
	Mode         string        `yaml:"mode"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	LogLevel        string        `yaml:"log_level"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type LogConfig struct {
	Dir string `yaml:"dir"`
}

// AnalyticsConfig tunes the rollup endpoints.
type AnalyticsConfig struct {
	// TTL for cached dashboard snapshots served by the controllers.
	SnapshotCacheTTL time.Duration `yaml:"snapshot_cache_ttl"`
	// Row cap for the active trips listing on the dashboard.
	ActiveTripsLimit int `yaml:"active_trips_limit"`
	// Push interval for the live dashboard feed.
	FeedInterval time.Duration `yaml:"feed_interval"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8802",
			Mode:         "debug",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
			LogLevel:        "info",
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			DB:       0,
			PoolSize: 10,
		},
		Log: LogConfig{Dir: "gormlog"},
		Analytics: AnalyticsConfig{
			SnapshotCacheTTL: 30 * time.Second,
			ActiveTripsLimit: 50,
			FeedInterval:     15 * time.Second,
		},
	}
}

// InitConfig loads config.yaml (path overridable via CONFIG_FILE) on top
// of defaults, then applies environment overrides. Missing file is fine;
// env-only deployments are common.
func InitConfig() {
	_ = godotenv.Load()

	cfg := defaultConfig()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("parse %s: %v", path, err)
		}
	}

	applyEnvOverrides(cfg)
	AppConfig = cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.Server.Mode = v
	}
	if v := os.Getenv("MYSQL_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
}

// GetConfig returns the loaded configuration, initializing defaults on
// first use so tests and tools work without InitConfig.
func GetConfig() *Config {
	if AppConfig == nil {
		InitConfig()
	}
	return AppConfig
}

// Validate reports fatal misconfiguration before the server starts.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required (env MYSQL_DSN)")
	}
	return nil
}
