package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/desawisata/internal/flagx"
)

// parseFlags overlays command-line flags onto config:
//
//	-a string   HTTP bind address (e.g. ":8000")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret
//	-t int      access token validity, minutes
//	-l string   log level
//	-b string   S3 bucket for media uploads
//	-e string   S3 base endpoint
//
// Only these flags are parsed out of os.Args; anything else is left for
// other flag sets.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-l", "-b", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Address, "a", config.Address, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "JWT secret key")
	accessTokenTTL := fs.Int("t", int(config.AccessTokenTTL.Minutes()), "access token validity (in minutes)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket for media")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenTTL = time.Duration(*accessTokenTTL) * time.Minute
}
