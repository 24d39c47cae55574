// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/nekmart-admin/internal/app"
)

var errNothingToCopy = errors.New(app.MsgNothingToCopy)

// humanizeError turns transport failures into one readable sentence. Other
// errors are shown as they are; GraphQL messages arrive already normalized.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgNetworkUnavailable
	}

	return err.Error()
}
