package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the storage, logging and config-file flags on fs and
// returns the StructuredConfig the parsed values are written into. The
// returned struct is meant to be passed to [Load] once fs has been parsed.
//
// Flags:
//
//	-t/--dbtype      database type (postgres, sqlite)
//	--host           database host
//	-p/--port        database port
//	-d/--dbname      database name or sqlite file
//	-u/--userid      database user
//	-P/--password    database password
//	--dsn            full data source name
//	--log-level      log level (debug, info, warn, error)
//	--log-file       rotated log file path
//	-c/--config      json file path with configs
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Storage.DBType, "dbtype", "t", "", "Database type (postgres, sqlite)")
	fs.StringVar(&cfg.Storage.Host, "host", "", "Database host")
	fs.IntVarP(&cfg.Storage.Port, "port", "p", 0, "Database port")
	fs.StringVarP(&cfg.Storage.DBName, "dbname", "d", "", "Database name (or sqlite file)")
	fs.StringVarP(&cfg.Storage.UserID, "userid", "u", "", "Database user")
	fs.StringVarP(&cfg.Storage.Password, "password", "P", "", "Database password")
	fs.StringVar(&cfg.Storage.DSN, "dsn", "", "Database DSN, overrides the connection fields")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Rotated log file path")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}

// BindUpdateFlags registers the TRIVA account, scope and cadence flags used
// by the update command into cfg.
//
// Flags:
//
//	-A/--accountid        TRIVA account user ID
//	-T/--trivapwd         TRIVA account password
//	-C/--clientids        comma separated client IDs to sync
//	-R/--projectids       comma separated project IDs to sync
//	--datasets            comma separated dataset IDs to sync
//	-r/--repeat           repeat cadence in minutes (minimum 15)
//	--environment         TRIVA API environment
//	--api-url             TRIVA API base URL override
//	--auth-scheme         Authorization header scheme
//	--request-timeout     HTTP request timeout (e.g. 30s)
func BindUpdateFlags(fs *pflag.FlagSet, cfg *StructuredConfig) {
	fs.StringVarP(&cfg.Remote.AccountID, "accountid", "A", "", "TRIVA account user ID")
	fs.StringVarP(&cfg.Remote.Password, "trivapwd", "T", "", "TRIVA account password")
	fs.StringSliceVarP(&cfg.Sync.ClientIDs, "clientids", "C", nil, "Client IDs to sync (comma separated)")
	fs.StringSliceVarP(&cfg.Sync.ProjectIDs, "projectids", "R", nil, "Project IDs to sync (comma separated)")
	fs.StringSliceVar(&cfg.Sync.Datasets, "datasets", nil, "Dataset IDs to sync (comma separated)")
	fs.IntVarP(&cfg.Sync.Repeat, "repeat", "r", 0, "Repeat update every N minutes (minimum 15)")
	fs.StringVar(&cfg.Remote.Environment, "environment", "", "TRIVA API environment")
	fs.StringVar(&cfg.Remote.APIURL, "api-url", "", "TRIVA API base URL")
	fs.StringVar(&cfg.Remote.AuthScheme, "auth-scheme", "", "Authorization header scheme")
	fs.DurationVar(&cfg.Remote.RequestTimeout, "request-timeout", 0, "HTTP request timeout (e.g. 30s)")
}
