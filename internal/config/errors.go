package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [Remote.ValidateCredentials] when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidDBType indicates a Storage.DBType other than "postgres" or
	// "sqlite".
	ErrInvalidDBType = errors.New("invalid dbtype")
	// ErrInvalidStorageConfigs indicates incomplete storage settings
	// (for example, no database name and no DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRemoteConfigs indicates invalid TRIVA API settings
	// (for example, a non-positive request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrMissingCredentials indicates that the update command has no TRIVA
	// account ID or password.
	ErrMissingCredentials = errors.New("cannot update without valid accountid and password for TRIVA")
	// ErrInvalidSyncConfigs indicates invalid sync settings
	// (for example, a negative repeat cadence).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidLogConfigs indicates an unknown log level name.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
