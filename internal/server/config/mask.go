package config

import "regexp"

var dsnPassword = regexp.MustCompile(`(://[^:/@]+:)([^@]+)(@)`)

func maskPassword(dsn string) string {
	return dsnPassword.ReplaceAllString(dsn, "${1}***${3}")
}
