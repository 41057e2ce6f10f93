// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenJets Engineering

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills product
// defaults for fields left unset by every source.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = DefaultEnvironment
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.HealthProbeInterval == 0 {
		cfg.Workers.HealthProbeInterval = DefaultHealthProbeInterval
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}
	if cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

// validate checks the admin console configuration.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
