package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var envPaths = []string{".env", "../.env"}

// parseEnv loads the first readable .env file from paths (variables already
// set in the process win) and then overlays the recognised variables:
//
//	ADDRESS, LOG_LEVEL, DATABASE_URL,
//	DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASS, DB_SSLMODE,
//	DB_POOL_SIZE, DB_MAX_OVERFLOW, DB_POOL_TIMEOUT, DB_POOL_RECYCLE,
//	JWT_SECRET_KEY, ACCESS_TOKEN_TTL,
//	S3_ACCESS_KEY, S3_SECRET_KEY, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT
//
// Malformed numbers and durations are ignored.
func parseEnv(c *Config, paths ...string) {
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	setString(&c.Address, getEnv("ADDRESS"))
	setString(&c.LogLevel, getEnv("LOG_LEVEL"))

	setString(&c.DatabaseDSN, getEnv("DATABASE_URL"))
	setString(&c.DBHost, getEnv("DB_HOST"))
	setInt(&c.DBPort, getEnvInt("DB_PORT"))
	setString(&c.DBName, getEnv("DB_NAME"))
	setString(&c.DBUser, getEnv("DB_USER"))
	setString(&c.DBPassword, getEnv("DB_PASS"))
	setString(&c.DBSSLMode, getEnv("DB_SSLMODE"))
	setInt(&c.PoolSize, getEnvInt("DB_POOL_SIZE"))
	setInt(&c.PoolMaxOverflow, getEnvInt("DB_MAX_OVERFLOW"))
	setEnvDuration(&c.PoolTimeout, "DB_POOL_TIMEOUT")
	setEnvDuration(&c.PoolRecycle, "DB_POOL_RECYCLE")

	setString(&c.SecretKey, getEnv("JWT_SECRET_KEY"))
	setEnvDuration(&c.AccessTokenTTL, "ACCESS_TOKEN_TTL")

	setString(&c.S3AccessKey, getEnv("S3_ACCESS_KEY"))
	setString(&c.S3SecretKey, getEnv("S3_SECRET_KEY"))
	setString(&c.S3Bucket, getEnv("S3_BUCKET"))
	setString(&c.S3Region, getEnv("S3_REGION"))
	setString(&c.S3BaseEndpoint, getEnv("S3_BASE_ENDPOINT"))
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func getEnvInt(key string) int {
	v, err := strconv.Atoi(getEnv(key))
	if err != nil {
		return 0
	}
	return v
}

func setEnvDuration(dst *time.Duration, key string) {
	v := getEnv(key)
	if v == "" {
		return
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		*dst = d
	}
}
