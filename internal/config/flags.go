package config

import (
	"flag"
	"os"
	"time"

	"github.com/guardiantix/authkit/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   JWT HMAC secret key
//	-u string   resource API base URL
//	-l int      session TTL, seconds
//	-t int      resource API request timeout, seconds
//	-m string   resolver mode ("remote" or "session")
//	-d string   PostgreSQL DSN for the session store
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the host process's flags.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-u", "-l", "-t", "-m", "-d"})

	fs := flag.NewFlagSet("authkit", flag.ContinueOnError)

	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.ResourceAPIURL, "u", config.ResourceAPIURL, "resource API base URL")
	fs.StringVar(&config.ResolverMode, "m", config.ResolverMode, "identity resolver mode")
	fs.StringVar(&config.SessionStoreDSN, "d", config.SessionStoreDSN, "session store DSN")

	sessionTTL := fs.Int("l", int(config.SessionTTL.Seconds()), "session TTL (in seconds)")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Second
	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
