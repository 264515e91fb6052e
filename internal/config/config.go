package config

import (
	"fmt"
	"os"

	// Loads a local .env into the process environment before Load runs.
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	Debug      bool
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "products"),
		Debug:      os.Getenv("DEBUG") != "",
	}

	if cfg.DBPassword == "postgres" {
		log.Warn().Msg("DB_PASSWORD is using the default value, set your own credentials for production")
	}

	return cfg
}

// DSN composes the Postgres connection string from the individual
// DB_* environment values.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
