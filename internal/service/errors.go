// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNoGraphQLClient is returned when the context carries no GraphQL
	// manager.
	ErrNoGraphQLClient = errors.New("no graphql client in context")

	ErrImageTooLarge           = errors.New("image is larger than 5 MB")
	ErrImageTypeNotAllowed     = errors.New("file is not a supported image")
	ErrImageResolutionMismatch = errors.New("image aspect ratio does not match")
	ErrImageNotStored          = errors.New("image could not be stored")
)
