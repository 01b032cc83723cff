package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productcatalog/logger"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "./catalog.db", cfg.DBDSN)
	assert.Equal(t, CacheDriverMemory, cfg.CacheDriver)
	assert.Equal(t, 10*time.Minute, cfg.CachePurgeInterval)
	assert.Equal(t, logger.INFO, cfg.LogLevel)
	assert.True(t, cfg.SeedData)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(envFrom(map[string]string{
		"DB_DRIVER":            "MySQL",
		"DB_DSN":               "app:secret@tcp(db:3306)/catalog",
		"CACHE_DRIVER":         "database",
		"CACHE_PURGE_INTERVAL": "30s",
		"LOG_LEVEL":            "debug",
		"SEED_DATA":            "false",
	}))
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "app:secret@tcp(db:3306)/catalog", cfg.DBDSN)
	assert.Equal(t, CacheDriverDatabase, cfg.CacheDriver)
	assert.Equal(t, 30*time.Second, cfg.CachePurgeInterval)
	assert.Equal(t, logger.DEBUG, cfg.LogLevel)
	assert.False(t, cfg.SeedData)
}

func TestLoad_InvalidValuesNameTheVariable(t *testing.T) {
	cases := map[string]map[string]string{
		"DB_DRIVER":            {"DB_DRIVER": "postgres"},
		"CACHE_DRIVER":         {"CACHE_DRIVER": "redis"},
		"CACHE_PURGE_INTERVAL": {"CACHE_PURGE_INTERVAL": "soon"},
		"LOG_LEVEL":            {"LOG_LEVEL": "chatty"},
		"SEED_DATA":            {"SEED_DATA": "maybe"},
	}
	for name, env := range cases {
		_, err := load(envFrom(env))
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), name)
	}
}
