package config

import (
	"flag"
	"os"
	"time"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   MongoDB connection string
//	-n string   MongoDB database name
//	-s string   JWT HMAC secret key
//	-l int      login token validity, minutes
//	-g int      signup token validity, minutes
//	-r int      refresh token validity, minutes
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the -c/-config flags handled
// by the JSON overlay.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-n", "-s", "-l", "-g", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseURI, "d", config.DatabaseURI, "MongoDB connection string")
	fs.StringVar(&config.DatabaseName, "n", config.DatabaseName, "MongoDB database name")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	loginTokenValidity := fs.Int("l", int(config.LoginTokenValidity.Minutes()), "login_token_validity (in minutes)")
	signupTokenValidity := fs.Int("g", int(config.SignupTokenValidity.Minutes()), "signup_token_validity (in minutes)")
	refreshTokenValidity := fs.Int("r", int(config.RefreshTokenValidity.Minutes()), "refresh_token_validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.LoginTokenValidity = time.Duration(*loginTokenValidity) * time.Minute
	config.SignupTokenValidity = time.Duration(*signupTokenValidity) * time.Minute
	config.RefreshTokenValidity = time.Duration(*refreshTokenValidity) * time.Minute
}
