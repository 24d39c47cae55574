// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP surface of the nekmart-admin server.
//
// GET /orders renders the orders page server-side: a per-request GraphQL
// manager (see withGraphQL) runs the orders query with the caller's cookies,
// and the handler answers with the page props, including the serialized
// GraphQL cache that the terminal client hydrates from. The package also
// serves image uploads, the version endpoint, the stored images and
// Prometheus metrics.
package http
