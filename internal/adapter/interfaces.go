// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the terminal client's transport to the nekmart-admin
// server.
//
// The server renders each orders page once and hands back the page props,
// including the serialized GraphQL cache. [ServerAdapter] fetches those props
// so the client can hydrate its own GraphQL manager from them.
//
// HTTP status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/nekmart-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the nekmart-admin server.
type ServerAdapter interface {
	// FetchOrdersPage requests GET /orders?page=N and returns the decoded
	// page props. A page below 1 is sent as 1.
	FetchOrdersPage(ctx context.Context, page int) (models.OrdersPageProps, error)

	// ServerVersion returns the plain-text version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
