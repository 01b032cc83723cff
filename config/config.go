// Package config loads runtime settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"productcatalog/logger"
)

const (
	CacheDriverMemory   = "memory"
	CacheDriverDatabase = "database"
)

// Config holds application configuration.
type Config struct {
	HTTPAddr           string
	DBDriver           string
	DBDSN              string
	CacheDriver        string
	CachePurgeInterval time.Duration
	AppKey             string
	LogLevel           logger.LogLevel
	LogDir             string
	LogColor           bool
	SeedData           bool
}

// Load reads the configuration from the environment, applying defaults.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPAddr:    withDefault(getenv("HTTP_ADDR"), ":8080"),
		DBDriver:    strings.ToLower(withDefault(getenv("DB_DRIVER"), "sqlite")),
		DBDSN:       getenv("DB_DSN"),
		CacheDriver: strings.ToLower(withDefault(getenv("CACHE_DRIVER"), CacheDriverMemory)),
		AppKey:      withDefault(getenv("APP_KEY"), "change-this-app-key-in-production"),
		LogDir:      withDefault(getenv("LOG_DIR"), "./logs"),
	}

	switch cfg.DBDriver {
	case "sqlite":
		cfg.DBDSN = withDefault(cfg.DBDSN, "./catalog.db")
	case "mysql":
		if cfg.DBDSN == "" {
			cfg.DBDSN = "root:root@tcp(localhost:3306)/catalog"
		}
	default:
		return Config{}, fmt.Errorf("DB_DRIVER: unsupported driver %q", cfg.DBDriver)
	}

	switch cfg.CacheDriver {
	case CacheDriverMemory, CacheDriverDatabase:
	default:
		return Config{}, fmt.Errorf("CACHE_DRIVER: unsupported driver %q", cfg.CacheDriver)
	}

	interval, err := time.ParseDuration(withDefault(getenv("CACHE_PURGE_INTERVAL"), "10m"))
	if err != nil || interval <= 0 {
		return Config{}, fmt.Errorf("CACHE_PURGE_INTERVAL: invalid duration %q", getenv("CACHE_PURGE_INTERVAL"))
	}
	cfg.CachePurgeInterval = interval

	if cfg.LogLevel, err = logger.ParseLevel(getenv("LOG_LEVEL")); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.LogColor, err = parseBool(getenv("LOG_COLOR"), true); err != nil {
		return Config{}, fmt.Errorf("LOG_COLOR: %w", err)
	}
	if cfg.SeedData, err = parseBool(getenv("SEED_DATA"), true); err != nil {
		return Config{}, fmt.Errorf("SEED_DATA: %w", err)
	}

	return cfg, nil
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func parseBool(v string, def bool) (bool, error) {
	if strings.TrimSpace(v) == "" {
		return def, nil
	}
	return strconv.ParseBool(v)
}
