// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/MKhiriev/nekmart-admin/internal/config"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/metrics"
	"github.com/MKhiriev/nekmart-admin/internal/store"
	"github.com/MKhiriev/nekmart-admin/internal/utils"
	"github.com/MKhiriev/nekmart-admin/models"
)

// MaxImageSize is the largest accepted upload in bytes.
const MaxImageSize = 5_000_000

var imageExtensions = map[string]string{
	"png":  ".png",
	"jpeg": ".jpg",
	"gif":  ".gif",
}

type imageService struct {
	storage       store.ObjectStorage
	defaultFolder string
	baseURL       string
	ids           *utils.UUIDGenerator

	logger *logger.Logger
}

func NewImageService(storage store.ObjectStorage, imagesCfg config.Images, appCfg config.App, logger *logger.Logger) ImageService {
	folder := strings.Trim(imagesCfg.DefaultFolder, "/")
	if folder == "" {
		folder = "Nekmart"
	}

	return &imageService{
		storage:       storage,
		defaultFolder: folder,
		baseURL:       strings.TrimRight(appCfg.ImageURL, "/"),
		ids:           utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

// Upload implements [ImageService].
func (s *imageService) Upload(ctx context.Context, upload models.ImageUpload, progress func(int)) (uploaded models.UploadedImage, err error) {
	report := func(p int) {
		if progress != nil {
			progress(p)
		}
	}
	report(0)
	defer report(100)

	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
		}
		metrics.ImageUploadsTotal.WithLabelValues(status).Inc()
	}()

	format, err := validateImage(upload)
	if err != nil {
		return models.UploadedImage{}, err
	}

	folder := strings.Trim(upload.Folder, "/")
	if folder == "" {
		folder = s.defaultFolder
	}
	key := s.ids.ObjectKey(folder, imageExtensions[format])

	if err = s.storage.Put(ctx, key, bytes.NewReader(upload.Data), "image/"+format); err != nil {
		return models.UploadedImage{}, fmt.Errorf("%w: %w", ErrImageNotStored, err)
	}

	if upload.PreviousKey != "" && upload.PreviousKey != key {
		if delErr := s.storage.Delete(ctx, upload.PreviousKey); delErr != nil {
			s.logger.Warn().
				Err(delErr).
				Str("key", upload.PreviousKey).
				Msg("failed to delete replaced image")
		}
	}

	s.logger.Info().Str("key", key).Int("bytes", len(upload.Data)).Msg("image uploaded")

	return models.UploadedImage{Key: key, URL: s.baseURL + "/" + key}, nil
}

// validateImage checks size, format and aspect ratio and returns the decoded
// format name.
func validateImage(upload models.ImageUpload) (string, error) {
	if len(upload.Data) > MaxImageSize {
		return "", ErrImageTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(upload.Data))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrImageTypeNotAllowed, err)
	}
	if _, ok := imageExtensions[format]; !ok {
		return "", fmt.Errorf("%w: %s", ErrImageTypeNotAllowed, format)
	}

	if upload.Width > 0 && upload.Height > 0 && cfg.Width*upload.Height != cfg.Height*upload.Width {
		return "", fmt.Errorf("%w: got %dx%d, want %d:%d",
			ErrImageResolutionMismatch, cfg.Width, cfg.Height, upload.Width, upload.Height)
	}

	return format, nil
}
