// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the HandsOn server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseURI: MongoDB connection string.
//   - DatabaseName: name of the MongoDB database holding the collections.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - LoginTokenValidity: lifetime of tokens issued to already-registered users.
//   - SignupTokenValidity: lifetime of tokens issued on first registration.
//   - RefreshTokenValidity: lifetime of tokens issued via the /jwt route.
type Config struct {
	EndpointAddr         string
	DatabaseURI          string
	DatabaseName         string
	SecretKey            string
	LoginTokenValidity   time.Duration
	SignupTokenValidity  time.Duration
	RefreshTokenValidity time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":5000"
	c.DatabaseURI = "mongodb://localhost:27017"
	c.DatabaseName = "handson"
	c.SecretKey = "secretKey"
	c.LoginTokenValidity = 1 * time.Hour
	c.SignupTokenValidity = 10 * time.Hour
	c.RefreshTokenValidity = 7 * 24 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
