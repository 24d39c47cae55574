// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package graphql implements the GraphQL client used by the dashboard and its
// lifecycle across server-side rendering and client hydration.
//
// A [Client] runs every [Operation] through a fixed pipeline of exchanges:
//
//	error → cache → ssr → fetch
//
// The error exchange strips transport tags such as "[GraphQL] " from every
// [CombinedError] before the caller sees it. The cache exchange is an
// in-memory document cache keyed by operation fingerprint. The ssr exchange
// ([SSRCache]) records results on the server and replays a rehydrated
// snapshot on the client. The fetch exchange posts the operation to the API
// with credentials included.
//
// Clients are never constructed directly. A [Manager] owns at most one client
// and its SSR cache: the first [Manager.Initialize] call allocates them, every
// later call only overlays the given snapshot onto the SSR cache. Servers
// create one Manager per request (see [WithManager]); a terminal client keeps
// one Manager for the whole process and reaches it through a
// [ClientAccessor], which memoizes by snapshot identity.
package graphql
