package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/desawisata/internal/flagx"
	"github.com/dmitrijs2005/desawisata/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the config file. The same document can
// be written as JSON or YAML; durations accept "30s" style strings.
type FileConfig struct {
	Address  string `json:"address" yaml:"address"`
	LogLevel string `json:"log_level" yaml:"log_level"`

	Database struct {
		DSN      string `json:"dsn" yaml:"dsn"`
		Host     string `json:"host" yaml:"host"`
		Port     int    `json:"port" yaml:"port"`
		Name     string `json:"name" yaml:"name"`
		User     string `json:"user" yaml:"user"`
		Password string `json:"password" yaml:"password"`
		SSLMode  string `json:"sslmode" yaml:"sslmode"`

		PoolSize        int            `json:"pool_size" yaml:"pool_size"`
		PoolMaxOverflow int            `json:"max_overflow" yaml:"max_overflow"`
		PoolTimeout     timex.Duration `json:"pool_timeout" yaml:"pool_timeout"`
		PoolRecycle     timex.Duration `json:"pool_recycle" yaml:"pool_recycle"`
		RunMigrations   *bool          `json:"run_migrations" yaml:"run_migrations"`
	} `json:"database" yaml:"database"`

	Auth struct {
		SecretKey      string         `json:"secret_key" yaml:"secret_key"`
		AccessTokenTTL timex.Duration `json:"access_token_ttl" yaml:"access_token_ttl"`
	} `json:"auth" yaml:"auth"`

	S3 struct {
		AccessKey    string         `json:"access_key" yaml:"access_key"`
		SecretKey    string         `json:"secret_key" yaml:"secret_key"`
		Bucket       string         `json:"bucket" yaml:"bucket"`
		Region       string         `json:"region" yaml:"region"`
		BaseEndpoint string         `json:"base_endpoint" yaml:"base_endpoint"`
		PresignTTL   timex.Duration `json:"presign_ttl" yaml:"presign_ttl"`
	} `json:"s3" yaml:"s3"`
}

// parseFile overlays the file named by -c/-config onto config. Only keys
// present in the file change the config. A file that cannot be read or
// decoded is a startup error and panics.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(config)
}

func (fc *FileConfig) apply(c *Config) {
	setString(&c.Address, fc.Address)
	setString(&c.LogLevel, fc.LogLevel)

	db := fc.Database
	setString(&c.DatabaseDSN, db.DSN)
	setString(&c.DBHost, db.Host)
	setInt(&c.DBPort, db.Port)
	setString(&c.DBName, db.Name)
	setString(&c.DBUser, db.User)
	setString(&c.DBPassword, db.Password)
	setString(&c.DBSSLMode, db.SSLMode)
	setInt(&c.PoolSize, db.PoolSize)
	setInt(&c.PoolMaxOverflow, db.PoolMaxOverflow)
	setDuration(&c.PoolTimeout, db.PoolTimeout)
	setDuration(&c.PoolRecycle, db.PoolRecycle)
	if db.RunMigrations != nil {
		c.RunMigrations = *db.RunMigrations
	}

	setString(&c.SecretKey, fc.Auth.SecretKey)
	setDuration(&c.AccessTokenTTL, fc.Auth.AccessTokenTTL)

	setString(&c.S3AccessKey, fc.S3.AccessKey)
	setString(&c.S3SecretKey, fc.S3.SecretKey)
	setString(&c.S3Bucket, fc.S3.Bucket)
	setString(&c.S3Region, fc.S3.Region)
	setString(&c.S3BaseEndpoint, fc.S3.BaseEndpoint)
	setDuration(&c.S3PresignTTL, fc.S3.PresignTTL)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
