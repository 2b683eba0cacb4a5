// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Triva-Elevate Authors

// Package agent implements the commands of the data publish agent.
//
// It wires the store, the remote adapters and the sync services into one
// [App] per process and exposes one method per CLI command.
package agent
