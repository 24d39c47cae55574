// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nekmart-admin/internal/graphql"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/models"
)

// GetOrdersQuery is the orders page document. The server and the terminal
// client must send it with identical variables (see OrdersVariables) so that
// their operation keys match during hydration.
const GetOrdersQuery = `query getOrders($searchInput: SearchInput) {
  getOrders(searchInput: $searchInput) {
    __typename
    results {
      __typename
      id
      orderId
      user { name }
      subtotal
      created_at
      paymentStatus
      payment { paymentMethod }
    }
    meta {
      currentPage
      totalPages
    }
  }
}`

// OrdersVariables returns the variables of GetOrdersQuery for page.
func OrdersVariables(page int) map[string]any {
	return map[string]any{
		"searchInput": map[string]any{
			"limit": models.OrdersPageSize,
			"page":  page,
		},
	}
}

type orderService struct {
	clients ClientSource

	logger *logger.Logger
}

func NewOrderService(clients ClientSource, logger *logger.Logger) OrderService {
	return &orderService{clients: clients, logger: logger}
}

// ListOrders implements [OrderService]. It uses the cache-and-network policy:
// a cached page is returned at once and refreshed in the background. When the
// API answers with errors and no data the combined error is returned as is;
// its message is already free of transport tags.
func (s *orderService) ListOrders(ctx context.Context, page int) (models.OrdersPage, error) {
	if page < 1 {
		page = 1
	}

	client, err := s.clients(ctx)
	if err != nil {
		return models.OrdersPage{}, err
	}

	res := client.Query(ctx, GetOrdersQuery, OrdersVariables(page),
		graphql.WithRequestPolicy(graphql.CacheAndNetwork))

	if res.Error != nil && !res.HasData() {
		s.logger.Warn().Int("page", page).Str("error", res.Error.Error()).Msg("orders query failed")
		return models.OrdersPage{}, res.Error
	}

	var data struct {
		GetOrders models.OrdersPage `json:"getOrders"`
	}
	if err = res.Decode(&data); err != nil {
		return models.OrdersPage{}, fmt.Errorf("error decoding orders page: %w", err)
	}

	return data.GetOrders, nil
}
