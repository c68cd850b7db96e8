package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppPort string

	// DatabaseURL carries driver, credentials, host and database in one
	// string, e.g. postgres://app:secret@db:5432/travel or sqlite://:memory:.
	DatabaseURL string

	// RedisAddr is optional; when empty the double-submit guard is disabled.
	RedisAddr string
	RedisDB   int

	IdempTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:      getenv("APP_PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		IdempTTLSecs: 300,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("missing DATABASE_URL")
	}
	if !hasSupportedScheme(c.DatabaseURL) {
		return fmt.Errorf("DATABASE_URL %q: scheme must be postgres://, mysql:// or sqlite://", c.DatabaseURL)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	return nil
}

func hasSupportedScheme(u string) bool {
	for _, p := range []string{"postgres://", "postgresql://", "mysql://", "sqlite://"} {
		if strings.HasPrefix(u, p) {
			return true
		}
	}
	return false
}
