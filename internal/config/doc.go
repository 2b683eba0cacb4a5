// Package config provides configuration loading, merging, and validation
// facilities for the data publish agent.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (TRIVA_DPA_*)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [Load]; command flags are registered with
// [BindFlags] and [BindUpdateFlags].
package config
