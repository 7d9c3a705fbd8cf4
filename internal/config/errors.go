package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid admin panel endpoint
	// settings (for example, missing server address or base path).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidCSRFConfigs indicates missing anti-forgery token cookie
	// or header names.
	ErrInvalidCSRFConfigs = errors.New("invalid csrf configuration")
)
