// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/zeebo/errs"
)

// Error is the default error class for configuration failures.
var Error = errs.Class("config")

// Config holds everything the service needs to run. Every field is backed by
// a required environment variable; loading fails fast when one is missing.
type Config struct {
	Host string

	JWKSURL  string
	JWKSHost string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	BucketName            string
	BucketEndpoint        string
	BucketAccessKeyID     string
	BucketSecretAccessKey string

	FileMaxSize int64

	CommerceServiceURL string
}

// FromEnv reads the configuration from the environment. All variables are
// required; every missing or malformed variable is reported in one error.
func FromEnv() (*Config, error) {
	var missing []string

	lookup := func(name string) string {
		value, ok := os.LookupEnv(name)
		if !ok || value == "" {
			missing = append(missing, name)
		}
		return value
	}

	cfg := &Config{
		Host:                  lookup("HOST"),
		JWKSURL:               lookup("JWKS_URL"),
		JWKSHost:              lookup("JWKS_HOST"),
		DBHost:                lookup("DB_HOST"),
		DBUser:                lookup("DB_USER"),
		DBPassword:            lookup("DB_PASSWORD"),
		DBName:                lookup("DB_DBNAME"),
		BucketName:            lookup("BUCKET_NAME"),
		BucketEndpoint:        lookup("BUCKET_ENDPOINT"),
		BucketAccessKeyID:     lookup("BUCKET_ACCESS_KEY_ID"),
		BucketSecretAccessKey: lookup("BUCKET_SECRET_ACCESS_KEY"),
		CommerceServiceURL:    lookup("COMMERCE_SERVICE_URL"),
	}

	dbPort := lookup("DB_PORT")
	fileMaxSize := lookup("FILE_MAX_SIZE")

	if len(missing) > 0 {
		return nil, Error.New("missing required environment variables: %v", missing)
	}

	port, err := strconv.Atoi(dbPort)
	if err != nil {
		return nil, Error.New("DB_PORT is not a number: %q", dbPort)
	}
	cfg.DBPort = port

	maxSize, err := strconv.ParseInt(fileMaxSize, 10, 64)
	if err != nil || maxSize <= 0 {
		return nil, Error.New("FILE_MAX_SIZE is not a positive number: %q", fileMaxSize)
	}
	cfg.FileMaxSize = maxSize

	return cfg, nil
}

// ConnString returns the Postgres connection string for the configured
// database.
func (c *Config) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPassword),
		c.DBHost, c.DBPort, c.DBName)
}
