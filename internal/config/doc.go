// Package config provides configuration loading, merging, and validation
// facilities for the admin API client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Caller-supplied overrides (e.g. CLI flags)
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig], which returns the client view
// of the merged configuration.
package config
