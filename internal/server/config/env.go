package config

import (
	"os"
)

// parseEnv overlays configuration from environment variables.
//
// Recognized variables:
//
//	PORT          port for the HTTP endpoint (bind addr becomes ":" + PORT)
//	DATABASE_URI  MongoDB connection string
//	DB_NAME       MongoDB database name
//	JWT_SECRET    HMAC secret for signing tokens
func parseEnv(config *Config) {
	if v := os.Getenv("PORT"); v != "" {
		config.EndpointAddr = ":" + v
	}
	if v := os.Getenv("DATABASE_URI"); v != "" {
		config.DatabaseURI = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		config.DatabaseName = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
}
