package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// Config reads a key from .env, falling back to the system environment.
func Config(key string) string {
	loadEnv.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})

	return os.Getenv(key)
}

// ConfigDefault returns the fallback when the key is unset or empty.
func ConfigDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

// DatabaseURL returns the configured connection string, defaulting to a
// local instance.
func DatabaseURL() string {
	return ConfigDefault("DATABASE_URL", "postgres://localhost:5432/codezon-lms")
}
