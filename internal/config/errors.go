// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidGraphQLConfigs indicates a missing or malformed API URL.
	ErrInvalidGraphQLConfigs = errors.New("invalid graphql configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing image bucket directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidNotificationConfigs indicates a non-positive toast timeout.
	ErrInvalidNotificationConfigs = errors.New("invalid notification configuration")
)
