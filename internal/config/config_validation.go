// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Triva-Elevate Authors

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants shared by every command. Credentials are checked separately by
// [Remote.ValidateCredentials] because only the update command needs them.
//
// All violations are reported together, joined with errors.Join.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.Storage.DBType {
	case DBTypePostgres, DBTypeSQLite:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidDBType, cfg.Storage.DBType))
	}

	if cfg.Storage.DSN == "" && cfg.Storage.DBName == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Port < 0 || cfg.Storage.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: port %d", ErrInvalidStorageConfigs, cfg.Storage.Port))
	}

	if cfg.Remote.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must be positive", ErrInvalidRemoteConfigs))
	}

	if cfg.Sync.Repeat < 0 {
		errs = append(errs, fmt.Errorf("%w: repeat must not be negative", ErrInvalidSyncConfigs))
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err))
		}
	}

	return errors.Join(errs...)
}

// ValidateCredentials reports ErrMissingCredentials unless both the TRIVA
// account ID and password are set.
func (r Remote) ValidateCredentials() error {
	if r.AccountID == "" || r.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}
