// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ClientConfig is the terminal client's view of [StructuredConfig].
type ClientConfig struct {
	// App contains the version and log file of the client.
	App App
	// GraphQL is the API the client-mode manager talks to after hydration.
	GraphQL GraphQL
	// Adapter contains the BFF address and request timeout.
	Adapter Adapter
	// Notifications contains toast settings.
	Notifications Notifications
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:           cfg.App,
		GraphQL:       cfg.GraphQL,
		Adapter:       cfg.Adapter,
		Notifications: cfg.Notifications,
	}

	return clientCfg, clientCfg.validate()
}
