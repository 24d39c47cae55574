// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/nekmart-admin/internal/graphql"
)

// ClientSource resolves the GraphQL client to use for ctx.
type ClientSource func(ctx context.Context) (*graphql.Client, error)

// RequestClient returns the client of the request-scoped manager stored by
// graphql.WithManager, initialising it on first use.
func RequestClient(ctx context.Context) (*graphql.Client, error) {
	m, ok := graphql.ManagerFromContext(ctx)
	if !ok {
		return nil, ErrNoGraphQLClient
	}
	return m.Initialize(nil), nil
}

// AccessorClient returns a ClientSource that always answers with the
// accessor's current client. The terminal client uses it after hydration.
func AccessorClient(accessor *graphql.ClientAccessor, state graphql.SSRData) ClientSource {
	return func(context.Context) (*graphql.Client, error) {
		return accessor.Client(state), nil
	}
}
