// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/nekmart-admin/internal/config"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/store"
)

// Services groups the server-side services.
type Services struct {
	OrderService   OrderService
	ImageService   ImageService
	AppInfoService AppInfoService
}

// NewServices wires the server services. Orders are listed through the
// per-request GraphQL manager.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		OrderService:   NewOrderService(RequestClient, logger),
		ImageService:   NewImageService(storages.Images, cfg.Storage.Images, cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}
