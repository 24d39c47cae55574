// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end started once the client is hydrated.
type UI interface {
	// Run shows the orders screen at page and blocks until the user quits.
	Run(ctx context.Context, page int) error
}
