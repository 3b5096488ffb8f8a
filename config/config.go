package config

import "os"

// Config holds the environment-derived settings for the server. Every field
// has a hardcoded default so the service starts with no environment at all.
type Config struct {
	Port          string // HTTP listen port
	DatabaseURL   string // MongoDB connection string
	ClientURL     string // allowed CORS origin (credentials enabled)
	SessionSecret string // cookie signing secret for the session store
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "5000"),
		DatabaseURL:   getenv("DATABASE_URL", "mongodb://127.0.0.1:27017"),
		ClientURL:     getenv("CLIENT_URL", "http://localhost:5173"),
		SessionSecret: getenv("SESSION_SECRET", "change-this-in-production"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
