package main

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

const (
	defaultRedisURL     = "redis://redis:6379"
	defaultRedisURLFile = "/app/.redis-url"
)

// GetRedisURL resolves REDIS_URL, then the file named by CACHE_REDIS_URL_FILE,
// and falls back to defaultRedisURL when neither yields a value
func GetRedisURL(logger *zap.Logger) string {
	if url := envOr("REDIS_URL", ""); url != "" {
		logger.Debug("Redis URL taken from REDIS_URL")
		return url
	}

	path := envOr("CACHE_REDIS_URL_FILE", defaultRedisURLFile)
	content, err := os.ReadFile(path)
	if url := strings.TrimSpace(string(content)); err == nil && url != "" {
		logger.Debug("Redis URL read from file", zap.String("file", path))
		return url
	}

	logger.Debug("Redis URL defaulted", zap.String("file", path), zap.String("url", defaultRedisURL))
	return defaultRedisURL
}

// envOr returns the environment variable or fallback when unset
func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
