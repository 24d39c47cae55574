// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by ObjectStorage implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrInvalidObjectKey is returned for empty, absolute or escaping keys.
	ErrInvalidObjectKey = errors.New("invalid object key")

	// ErrObjectNotFound is returned when a key has no stored object.
	ErrObjectNotFound = errors.New("object not found")

	// ErrWritingObject is returned when the object body could not be
	// persisted.
	ErrWritingObject = errors.New("error writing object")
)
