// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/MKhiriev/nekmart-admin/internal/graphql"

// OrdersPageProps are the server-rendered props of the orders page. URQLState
// is the SSR snapshot the client hydrates from.
type OrdersPageProps struct {
	Page      int             `json:"page"`
	URQLState graphql.SSRData `json:"urqlState"`
}

// OrdersPageResponse is the body of GET /orders.
type OrdersPageResponse struct {
	Props OrdersPageProps `json:"props"`
}
