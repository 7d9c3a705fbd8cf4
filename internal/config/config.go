// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ProcureHub

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the admin
// API client. It aggregates all sub-configurations and is populated by
// merging caller overrides, environment variables, an optional JSON file,
// and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log role label and
	// the client version string.
	App App `envPrefix:"APP_"`

	// Adapter holds the admin panel endpoint settings used by the HTTP
	// transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds local session persistence settings.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from overrides and environment variables.
	// Populated via the CONFIG environment variable or a CLI flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Role is the label attached to every log entry
	// (e.g. "adminctl"). Env: APP_ROLE
	Role string `env:"ROLE"`

	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the admin panel endpoint settings for the outbound
// transport layer.
type Adapter struct {
	// ServerAddress is the admin panel origin, scheme and host
	// (e.g. "https://panel.example.com").
	// Env: ADAPTER_ADDRESS
	ServerAddress string `env:"ADDRESS"`

	// BasePath is the path prefix of every API endpoint.
	// Env: ADAPTER_BASE_PATH
	BasePath string `env:"BASE_PATH"`

	// LoginPath is the panel login page the client is redirected to when
	// a session expires.
	// Env: ADAPTER_LOGIN_PATH
	LoginPath string `env:"LOGIN_PATH"`

	// CSRFCookieName is the cookie the anti-forgery token is read from.
	// Env: ADAPTER_CSRF_COOKIE
	CSRFCookieName string `env:"CSRF_COOKIE"`

	// CSRFHeaderName is the header the anti-forgery token is sent in on
	// mutating requests.
	// Env: ADAPTER_CSRF_HEADER
	CSRFHeaderName string `env:"CSRF_HEADER"`

	// RequestTimeout bounds a single outbound request. Zero leaves the
	// transport default in place (no client-side timeout).
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds local session persistence settings.
type Session struct {
	// CookieFile is the path the session cookies are saved to between
	// invocations. Empty disables persistence.
	// Env: SESSION_COOKIE_FILE
	CookieFile string `env:"COOKIE_FILE"`
}

// Built-in defaults, merged in last so any other source wins.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Role: "adminapi",
		},
		Adapter: Adapter{
			BasePath:       "/admin-panel/api",
			LoginPath:      "/admin-panel/login",
			CSRFCookieName: "csrftoken",
			CSRFHeaderName: "X-CSRFToken",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. overrides (may be nil)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
