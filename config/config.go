package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the demo reads from the environment.
type Config struct {
	Port    string
	LogFile string
	GinMode string
}

// Load reads .env (when present) and the process environment.
// The original demo listened on 3000, so that stays the default.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:    getEnv("PORT", "3000"),
		LogFile: os.Getenv("LOG_FILE"),
		GinMode: os.Getenv("GIN_MODE"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
