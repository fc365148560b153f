// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
)

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid gateway settings (for example,
	// a missing base URL or a non-positive request timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidStorageConfigs indicates invalid credential store settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)

// validate checks that the final merged [Config] satisfies all client
// invariants before it is used at startup.
func (cfg *Config) validate() error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("%w: empty base url", ErrInvalidAPIConfigs)
	}
	if cfg.API.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAPIConfigs)
	}
	if cfg.Storage.CredentialDBPath == "" {
		return fmt.Errorf("%w: empty credential db path", ErrInvalidStorageConfigs)
	}
	return nil
}
