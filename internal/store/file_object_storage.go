// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/nekmart-admin/internal/logger"
)

// fileObjectStorage is the default implementation of [ObjectStorage]. It maps
// every key to a file below root, creating intermediate folders on demand.
// Writes go to a temporary file first and are renamed into place, so a
// reader never sees a half-written object.
type fileObjectStorage struct {
	root   string
	logger *logger.Logger
}

// NewFileObjectStorage constructs a filesystem-backed [ObjectStorage] rooted
// at root. The directory is created if it does not exist.
func NewFileObjectStorage(root string, logger *logger.Logger) (ObjectStorage, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty storage root", ErrWritingObject)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("error creating storage root: %w", err)
	}

	return &fileObjectStorage{root: root, logger: logger}, nil
}

// Put implements [ObjectStorage]. contentType is not persisted; the file
// extension carries the type for the static file server.
func (f *fileObjectStorage) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := f.resolve(key)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingObject, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingObject, err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingObject, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingObject, err)
	}

	f.logger.Debug().
		Str("key", key).
		Str("content_type", contentType).
		Int64("bytes", written).
		Msg("object stored")

	return nil
}

// Delete implements [ObjectStorage].
func (f *fileObjectStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := f.resolve(key)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return fmt.Errorf("error deleting object: %w", err)
	}

	return nil
}

// Exists implements [ObjectStorage].
func (f *fileObjectStorage) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	path, err := f.resolve(key)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking object: %w", err)
	}

	return info.Mode().IsRegular(), nil
}

// resolve maps key to a path below root, rejecting keys that would escape it.
func (f *fileObjectStorage) resolve(key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidObjectKey)
	}

	local := filepath.FromSlash(key)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: %q", ErrInvalidObjectKey, key)
	}

	return filepath.Join(f.root, local), nil
}
