// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for malformed requests. Callers can match against them with
// [errors.Is].
var (
	// ErrInvalidMultipartForm is returned when an upload body is not a
	// readable multipart form.
	ErrInvalidMultipartForm = errors.New("invalid multipart form")

	// ErrExpectedSingleFile is returned when the "file" field of an upload
	// holds zero or several files.
	ErrExpectedSingleFile = errors.New("exactly one file expected")

	ErrInvalidDimensions = errors.New("width and height must be positive integers")
)
