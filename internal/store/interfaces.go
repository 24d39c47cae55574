// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ObjectStorage is a flat key/value bucket for uploaded images. Keys are
// slash-separated relative paths such as "Nekmart/0190c1f2.png".
type ObjectStorage interface {
	// Put stores body under key, replacing any existing object.
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	// Delete removes the object under key. It returns ErrObjectNotFound when
	// there is nothing to remove.
	Delete(ctx context.Context, key string) error
	// Exists reports whether an object is stored under key.
	Exists(ctx context.Context, key string) (bool, error)
}
