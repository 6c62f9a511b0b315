package server

import "os"

// Config holds the server's environment-driven settings. The engine itself
// reads nothing from the environment; configuration stops at this boundary.
type Config struct {
	// Addr is the listen address, default ":8080".
	Addr string
	// RedisAddr enables the Redis response cache when non-empty.
	RedisAddr string
	// PostgresDSN enables the Postgres assumption feed when non-empty.
	PostgresDSN string
}

// ConfigFromEnv reads ADDR, REDIS_ADDR and DATABASE_URL.
func ConfigFromEnv() Config {
	cfg := Config{Addr: ":8080"}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.PostgresDSN = os.Getenv("DATABASE_URL")
	return cfg
}
