// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Triva-Elevate Authors

package config

import (
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Supported values of Storage.DBType.
const (
	DBTypePostgres = "postgres"
	DBTypeSQLite   = "sqlite"
)

// EnvPrefix is prepended to every environment variable name read by
// parseEnv (e.g. TRIVA_DPA_HOST).
const EnvPrefix = "TRIVA_DPA_"

const (
	defaultAPIURL         = "https://apigw-prod.api.triva.xyz"
	environmentAPIURL     = "https://apigw-%s.api.triva.xyz"
	dataPublishPath       = "/DataPublish"
	loginPath             = "/mobile-methods/login"
	defaultPostgresPort   = 5432
	postgresApplication   = "triva-datapublishagent"
	defaultRequestTimeout = 30 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// data publish agent. It aggregates all sub-configurations and is populated
// by merging values from command-line flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Environment variable names keep the flat TRIVA_DPA_* layout: nested groups
// carry no envPrefix of their own.
type StructuredConfig struct {
	// Storage holds the relational database connection settings.
	Storage Storage

	// Remote holds the TRIVA API account and endpoint settings.
	Remote Remote

	// Sync holds the scope filters and repeat cadence for the update command.
	Sync Sync

	// Log holds log level and optional log file settings.
	Log Log

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: TRIVA_DPA_CONFIG, flag: --config.
	JSONFilePath string `env:"CONFIG"`
}

// Storage holds connection settings for the relational database backend.
type Storage struct {
	// DBType selects the driver: "postgres" (default) or "sqlite".
	// Env: TRIVA_DPA_DBTYPE
	DBType string `env:"DBTYPE"`

	// Host is the database server host name. Env: TRIVA_DPA_HOST
	Host string `env:"HOST"`

	// Port is the database server port; 0 selects the driver default.
	// Env: TRIVA_DPA_PORT
	Port int `env:"PORT"`

	// DBName is the database name (postgres) or file path (sqlite).
	// Env: TRIVA_DPA_DBNAME
	DBName string `env:"DBNAME"`

	// UserID is the database user. Env: TRIVA_DPA_USERID
	UserID string `env:"USERID"`

	// Password is the database password. Env: TRIVA_DPA_PASSWORD
	Password string `env:"PASSWORD"`

	// DSN, when set, is used verbatim instead of the fields above.
	// Env: TRIVA_DPA_DSN
	DSN string `env:"DSN"`
}

// Remote holds the TRIVA API credentials and endpoint settings.
type Remote struct {
	// AccountID is the TRIVA account user ID used to log in.
	// Env: TRIVA_DPA_ACCOUNTID
	AccountID string `env:"ACCOUNTID"`

	// Password is the TRIVA account password. Env: TRIVA_DPA_TRIVAPWD
	Password string `env:"TRIVAPWD"`

	// Environment selects a non-production API gateway
	// (https://apigw-<env>.api.triva.xyz). Env: TRIVA_DPA_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// APIURL overrides the API gateway base URL entirely.
	// Env: TRIVA_DPA_API_URL
	APIURL string `env:"API_URL"`

	// AuthScheme is prepended to the ID token in the Authorization header
	// (e.g. "Bearer"). Empty sends the raw token. Env: TRIVA_DPA_AUTH_SCHEME
	AuthScheme string `env:"AUTH_SCHEME"`

	// RequestTimeout bounds every HTTP request. Env: TRIVA_DPA_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the scope filters and cadence of the update command.
type Sync struct {
	// ClientIDs restricts the synced clients. Empty means all.
	// Env: TRIVA_DPA_CLIENTIDS (comma separated)
	ClientIDs []string `env:"CLIENTIDS" envSeparator:","`

	// ProjectIDs restricts the synced projects. Empty means all.
	// Env: TRIVA_DPA_PROJECTIDS (comma separated)
	ProjectIDs []string `env:"PROJECTIDS" envSeparator:","`

	// Datasets restricts the synced datasets by ID. Empty means all.
	// Env: TRIVA_DPA_DATASETS (comma separated)
	Datasets []string `env:"DATASETS" envSeparator:","`

	// Repeat is the update cadence in minutes; 0 runs once.
	// Env: TRIVA_DPA_REPEAT
	Repeat int `env:"REPEAT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name. Env: TRIVA_DPA_LOG_LEVEL
	Level string `env:"LOG_LEVEL"`

	// File, when set, receives a rotated copy of the log.
	// Env: TRIVA_DPA_LOG_FILE
	File string `env:"LOG_FILE"`
}

// ConnectionString returns the driver-specific data source name.
func (s Storage) ConnectionString() string {
	if s.DSN != "" {
		return s.DSN
	}

	if s.DBType == DBTypeSQLite {
		if filepath.Ext(s.DBName) == "" {
			return s.DBName + ".db"
		}
		return s.DBName
	}

	port := s.Port
	if port == 0 {
		port = defaultPostgresPort
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(s.Host, strconv.Itoa(port)),
		Path:   "/" + s.DBName,
	}
	if s.UserID != "" {
		u.User = url.UserPassword(s.UserID, s.Password)
	}
	q := url.Values{}
	q.Set("application_name", postgresApplication)
	u.RawQuery = q.Encode()

	return u.String()
}

// BaseURL returns the API gateway root, honouring APIURL and Environment.
func (r Remote) BaseURL() string {
	if r.APIURL != "" {
		return strings.TrimRight(r.APIURL, "/")
	}
	if r.Environment != "" {
		return fmt.Sprintf(environmentAPIURL, r.Environment)
	}
	return defaultAPIURL
}

// DataPublishURL returns the root of the delta-sync resources.
func (r Remote) DataPublishURL() string {
	return r.BaseURL() + dataPublishPath
}

// LoginURL returns the root of the login endpoints.
func (r Remote) LoginURL() string {
	return r.BaseURL() + loginPath
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DBType: DBTypePostgres,
			Host:   "localhost",
			DBName: "triva",
		},
		Remote: Remote{
			RequestTimeout: defaultRequestTimeout,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load merges, in priority order, the values bound to command-line flags,
// environment variables, the JSON file (path taken from the first two), and
// built-in defaults, then validates the result.
//
// flagCfg is the struct returned by BindFlags after the command line was
// parsed; nil skips the flag layer.
func Load(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
