// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ImageUpload is one image to store. Width and Height give the required
// aspect ratio, not an exact size.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte

	// Folder is the key prefix; the configured default is used when empty.
	Folder string
	// PreviousKey is deleted after a successful upload when set.
	PreviousKey string

	Width  int
	Height int
}

// UploadedImage is the stored object.
type UploadedImage struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
