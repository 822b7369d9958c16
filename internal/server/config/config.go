// Package config assembles the API server configuration from built-in
// defaults, an optional JSON or YAML file, the process environment (with
// .env support) and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Config holds runtime settings for the Desa Wisata API server.
//
// DatabaseDSN wins over the discrete DB* fields when set. Pool* fields size
// the database/sql pool: PoolSize idle connections kept, PoolMaxOverflow
// extra connections allowed under load, PoolTimeout bounds every storage
// operation including connection acquisition, PoolRecycle is the maximum
// connection age.
type Config struct {
	Address  string
	LogLevel string

	DatabaseDSN string
	DBHost      string
	DBPort      int
	DBName      string
	DBUser      string
	DBPassword  string
	DBSSLMode   string

	PoolSize        int
	PoolMaxOverflow int
	PoolTimeout     time.Duration
	PoolRecycle     time.Duration
	RunMigrations   bool

	SecretKey      string
	AccessTokenTTL time.Duration

	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3PresignTTL   time.Duration
}

// LoadDefaults populates Config with development defaults. There is no
// default signing secret; Validate rejects a config without one.
func (c *Config) LoadDefaults() {
	c.Address = ":8000"
	c.LogLevel = "info"
	c.DBHost = "localhost"
	c.DBPort = 5432
	c.DBName = "desa_wisata"
	c.DBUser = "postgres"
	c.DBSSLMode = "disable"
	c.PoolSize = 10
	c.PoolMaxOverflow = 5
	c.PoolTimeout = 30 * time.Second
	c.PoolRecycle = 30 * time.Minute
	c.RunMigrations = true
	c.AccessTokenTTL = 12 * time.Hour
	c.S3Region = "us-east-1"
	c.S3PresignTTL = 15 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then the config file,
// then environment variables and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg, envPaths...)
	parseFlags(cfg)
	return cfg
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   c.DBHost + ":" + strconv.Itoa(c.DBPort),
		Path:   "/" + c.DBName,
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}
	if c.DBSSLMode != "" {
		u.RawQuery = "sslmode=" + url.QueryEscape(c.DBSSLMode)
	}
	return u.String()
}

// MediaEnabled reports whether the S3 presign endpoint should be served.
func (c *Config) MediaEnabled() bool {
	return c.S3Bucket != ""
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Address, validation.Required),
		validation.Field(&c.SecretKey, validation.Required),
		validation.Field(&c.AccessTokenTTL, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.PoolSize, validation.Required, validation.Min(1)),
		validation.Field(&c.PoolMaxOverflow, validation.Min(0)),
		validation.Field(&c.PoolTimeout, validation.Required, validation.Min(time.Millisecond)),
	)
}

// String renders the config for startup logs with secrets masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Address: %s, DB: %s, Pool: %d+%d, TokenTTL: %s, S3Bucket: %q}",
		c.Address, maskPassword(c.DSN()), c.PoolSize, c.PoolMaxOverflow, c.AccessTokenTTL, c.S3Bucket)
}
