// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := validateAPIURL(cfg.GraphQL.APIURL); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.Images.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateAPIURL(cfg.GraphQL.APIURL); err != nil {
		return err
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Notifications.Timeout <= 0 {
		return ErrInvalidNotificationConfigs
	}

	return nil
}

func validateAPIURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: api url is empty", ErrInvalidGraphQLConfigs)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGraphQLConfigs, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: api url must include scheme and host", ErrInvalidGraphQLConfigs)
	}

	return nil
}
