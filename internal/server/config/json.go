package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/flagx"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON
// configuration files. Duration fields accept both string values such as
// "1h" and integer nanoseconds. After unmarshalling, its fields are copied
// into the runtime Config.
type JsonConfig struct {
	EndpointAddr         string         `json:"endpoint_addr"`
	DatabaseURI          string         `json:"database_uri"`
	DatabaseName         string         `json:"database_name"`
	SecretKey            string         `json:"secret_key"`
	LoginTokenValidity   timex.Duration `json:"login_token_validity"`
	SignupTokenValidity  timex.Duration `json:"signup_token_validity"`
	RefreshTokenValidity timex.Duration `json:"refresh_token_validity"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When no file is named the
// function is a no-op; an unreadable or malformed file panics, since the
// server cannot start half-configured.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseURI != "" {
		config.DatabaseURI = c.DatabaseURI
	}
	if c.DatabaseName != "" {
		config.DatabaseName = c.DatabaseName
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.LoginTokenValidity.Duration != 0 {
		config.LoginTokenValidity = time.Duration(c.LoginTokenValidity.Duration)
	}
	if c.SignupTokenValidity.Duration != 0 {
		config.SignupTokenValidity = time.Duration(c.SignupTokenValidity.Duration)
	}
	if c.RefreshTokenValidity.Duration != 0 {
		config.RefreshTokenValidity = time.Duration(c.RefreshTokenValidity.Duration)
	}
}
