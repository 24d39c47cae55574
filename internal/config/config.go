// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// nekmart-admin binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, public image base URL
	// and the client log file.
	App App `envPrefix:"APP_"`

	// GraphQL holds the upstream API endpoint used by every GraphQL client.
	GraphQL GraphQL `envPrefix:"GRAPHQL_"`

	// Server holds the listen address and request timeout of the BFF.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the BFF as seen by the terminal client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds object storage settings for uploaded images.
	Storage Storage `envPrefix:"STORAGE_"`

	// Notifications holds toast settings for the terminal client.
	Notifications Notifications `envPrefix:"NOTIFICATIONS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ImageURL is the public base URL under which stored images are served.
	// Object keys are appended to it verbatim.
	// Env: APP_IMAGE_URL
	ImageURL string `env:"IMAGE_URL"`

	// LogFile is where the terminal client writes its log; stdout belongs to
	// the UI there.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// GraphQL holds the settings of the upstream GraphQL API.
type GraphQL struct {
	// APIURL is the GraphQL endpoint, read once when a lifecycle manager is
	// created.
	// Env: GRAPHQL_API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout bounds a single request to the API.
	// Env: GRAPHQL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client-side view of the BFF.
type Adapter struct {
	// HTTPAddress is the base URL of the BFF (scheme optional).
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for requests to the BFF.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// Images holds the bucket settings for uploaded images.
	Images Images `envPrefix:"IMAGES_"`
}

// Images holds the settings of the filesystem image bucket.
type Images struct {
	// Dir is the root directory of the bucket.
	// Env: STORAGE_IMAGES_DIR
	Dir string `env:"DIR"`

	// DefaultFolder is the key prefix used when an upload names no folder.
	// Env: STORAGE_IMAGES_DEFAULT_FOLDER
	DefaultFolder string `env:"DEFAULT_FOLDER"`
}

// Notifications holds toast settings.
type Notifications struct {
	// Timeout is how long a toast stays visible before it closes itself.
	// Env: NOTIFICATIONS_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// defaults returns the values used for every field no source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			ImageURL: "http://localhost:8080/images/",
			LogFile:  "nekmart-client.log",
		},
		GraphQL: GraphQL{
			RequestTimeout: 15 * time.Second,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			Images: Images{
				Dir:           "data/images",
				DefaultFolder: "Nekmart",
			},
		},
		Notifications: Notifications{
			Timeout: 6 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. mergo only fills fields that are
// still zero, so sources listed first take precedence:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
