// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ProcureHub

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Kept permissive on purpose: the structured config only needs to be
// complete once mapped to a client view, which has its own validation.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.BasePath == "" || cfg.Adapter.LoginPath == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.CSRFCookieName == "" || cfg.Adapter.CSRFHeaderName == "" {
		return ErrInvalidCSRFConfigs
	}

	return nil
}
