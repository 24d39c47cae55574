// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/nekmart-admin/internal/config"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/utils"
	"github.com/MKhiriev/nekmart-admin/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// adapterCfg.HTTPAddress may omit the scheme, in which case http is assumed.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchOrdersPage implements [ServerAdapter].
func (h *httpServerAdapter) FetchOrdersPage(ctx context.Context, page int) (models.OrdersPageProps, error) {
	if page < 1 {
		page = 1
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("page", strconv.Itoa(page)).
		Get("/orders")
	if err != nil {
		return models.OrdersPageProps{}, fmt.Errorf("fetch orders page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OrdersPageProps{}, err
	}

	var pr models.OrdersPageResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return models.OrdersPageProps{}, fmt.Errorf("%w: %w", ErrInvalidPageProps, err)
	}

	h.logger.Debug().
		Int("page", pr.Props.Page).
		Int("entries", len(pr.Props.URQLState)).
		Msg("fetched orders page props")

	return pr.Props, nil
}

// ServerVersion implements [ServerAdapter].
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
