// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Triva-Elevate Authors

// Package adapter provides the transport layer used to talk to the TRIVA
// API gateway.
//
// Two adapters are exposed: [AuthAdapter] for the unauthenticated login
// endpoints and [DeltaAdapter] for the token-protected DataPublish delta
// resources. Both ship as HTTP/REST implementations built on resty
// ([NewHTTPAuthAdapter], [NewHTTPDeltaAdapter]).
//
// Every non-2xx response is mapped by mapHTTPError to a [*TransportError]
// that matches [ErrTransport] with [errors.Is], so callers can handle remote
// failures uniformly. No request is retried by this package.
package adapter

import (
	"context"

	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAdapter performs the credential exchanges of the TRIVA login service.
// Implementations return the decoded response as-is; interpreting challenges
// or missing tokens is left to the caller.
type AuthAdapter interface {
	// Login exchanges a user ID and password for a token set
	// (POST <login>/Login).
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// RefreshLogin exchanges a refresh token for a fresh token set
	// (POST <login>/RefreshLogin).
	RefreshLogin(ctx context.Context, req models.RefreshLoginRequest) (models.LoginResponse, error)
}

// DeltaAdapter fetches one page of a DataPublish delta resource.
type DeltaAdapter interface {
	// FetchPage issues GET <base>/<resource>/sinceVersion/<sinceVersion>
	// ?offset=<offset>&limit=<limit> and returns the raw JSON body.
	// resource is the slash-separated path, e.g. "Projects/<clientID>".
	FetchPage(ctx context.Context, resource string, sinceVersion uint64, offset, limit int) ([]byte, error)
}

// TokenSource supplies the ID token attached to every delta request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
