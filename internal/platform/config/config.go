package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"pet-adoption/internal/platform/logger"
)

// Config del proceso. Todo viene de env vars con defaults para dev.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// SeedCatalog carga Rex, Luna y Thor al arrancar.
	SeedCatalog bool

	Log logger.Options
}

// FromEnv lee:
// - PORT (default 8080)
// - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, SHUTDOWN_TIMEOUT (duraciones Go, p.ej. "5s")
// - SEED_CATALOG=true|false (default true)
// - LOG_LEVEL=debug|info|warn|error, LOG_FORMAT=text|json, APP_NAME
func FromEnv() Config {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) Config {
	addr := ":8080"
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		addr = ":" + strings.TrimPrefix(v, ":")
	}

	return Config{
		Addr:            addr,
		ReadTimeout:     durationOr(getenv("HTTP_READ_TIMEOUT"), 5*time.Second),
		WriteTimeout:    durationOr(getenv("HTTP_WRITE_TIMEOUT"), 10*time.Second),
		ShutdownTimeout: durationOr(getenv("SHUTDOWN_TIMEOUT"), 10*time.Second),
		SeedCatalog:     boolOr(getenv("SEED_CATALOG"), true),
		Log: logger.Options{
			Level:  logger.ParseLevel(getenv("LOG_LEVEL")),
			Format: logger.ParseFormat(getenv("LOG_FORMAT")),
			App:    getOrDefault(getenv("APP_NAME"), "pet-adoption"),
		},
	}
}

func getOrDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

// durationOr ignora valores mal formados o no positivos.
func durationOr(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func boolOr(v string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}
