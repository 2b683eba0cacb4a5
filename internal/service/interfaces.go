// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Triva-Elevate Authors

// Package service holds the sync logic of the agent: the login token
// lifecycle, the generic delta sync of every dataset, the schema version
// gate and the cycle orchestration.
package service

import (
	"context"

	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Authenticator owns the TRIVA session of one run.
type Authenticator interface {
	// Login replaces the session with one obtained from userID/password.
	Login(ctx context.Context, userID, password string) error
	// Token returns a valid ID token, refreshing the session if needed.
	Token(ctx context.Context) (string, error)
	// Logout drops the session.
	Logout()
}

// SchemaService reports and advances the store schema version.
type SchemaService interface {
	Check(ctx context.Context) (models.SchemaStatus, error)
	Require(ctx context.Context) error
	Update(ctx context.Context) (models.SchemaStatus, error)
}

// CycleRunner performs one full sync pass over every scope.
type CycleRunner interface {
	RunCycle(ctx context.Context) error
}
