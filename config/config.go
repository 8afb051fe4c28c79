package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds settings read from the environment.
type Config struct {
	DBDriver string // DB_DRIVER: "postgres" or "sqlite"
	DBSource string // DB_DSN: connection string or sqlite file path
}

// Load reads configuration from the environment, honouring a .env file in
// the working directory when present. A missing .env is fine; a malformed
// one is not.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return Config{
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBSource: getEnv("DB_DSN", "menu.db"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
