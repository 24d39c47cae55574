// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is the state of the toast.
type Notification struct {
	Open     bool
	Severity Severity
	Message  string
}
