package env

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Get returns the value of key from the process environment, falling back to
// a .env file in the working directory. A missing .env file is not an error.
func Get(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	loadOnce.Do(func() {
		_ = godotenv.Load(".env")
	})

	return os.Getenv(key)
}

// GetDefault is Get with a fallback for unset or empty keys.
func GetDefault(key, fallback string) string {
	if value := Get(key); value != "" {
		return value
	}
	return fallback
}
