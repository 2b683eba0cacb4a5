// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Triva-Elevate Authors

package agent

import "context"

// Commands is the contract of the CLI surface. Every method blocks until
// the command is done and returns its first error.
type Commands interface {
	// SchemaUpdate migrates the store to the agent's schema version.
	SchemaUpdate(ctx context.Context) error
	// SchemaCheck fails unless the store is at the agent's schema version.
	SchemaCheck(ctx context.Context) error
	// SyncReset clears every sync checkpoint so the next update pulls
	// everything again.
	SyncReset(ctx context.Context) error
	// Update logs in and runs sync cycles, once or repeatedly.
	Update(ctx context.Context) error
}
