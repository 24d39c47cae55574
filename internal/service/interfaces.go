// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/nekmart-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// OrderService lists orders through the GraphQL client of the caller's
// context.
type OrderService interface {
	// ListOrders returns one page of orders. Pages below 1 are treated as 1.
	ListOrders(ctx context.Context, page int) (models.OrdersPage, error)
}

// ImageService validates images and stores them in the image bucket.
type ImageService interface {
	// Upload stores upload and, on success, deletes upload.PreviousKey.
	// progress (optional) receives 0 before any work and 100 when Upload
	// returns, whatever the outcome.
	Upload(ctx context.Context, upload models.ImageUpload, progress func(int)) (models.UploadedImage, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Notifier holds a single toast that closes itself after a timeout.
type Notifier interface {
	// Show opens the toast with message, replacing any visible one and
	// restarting the timeout. An empty severity means success.
	Show(severity models.Severity, message string)
	// Close hides the toast.
	Close()
	// Current returns the toast state.
	Current() models.Notification
}
