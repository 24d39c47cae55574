// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/nekmart-admin/internal/config"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
)

// Storages groups the storage backends used by the server.
type Storages struct {
	Images ObjectStorage
}

// NewStorages opens every backend named in cfg.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	images, err := NewFileObjectStorage(cfg.Images.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("error opening image storage: %w", err)
	}

	return &Storages{Images: images}, nil
}
