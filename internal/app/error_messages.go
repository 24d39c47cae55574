// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the nekmart admin
// client.
//
// All Msg* constants are shown to the operator in toasts or written into log
// entries. Keeping them in one place keeps the wording consistent between the
// screens.
package app

const (
	// MsgNetworkUnavailable replaces transport errors such as a refused
	// connection or a dial timeout.
	MsgNetworkUnavailable = "No network or the API is unavailable"

	// MsgNothingToCopy is shown when copy is pressed on an empty page.
	MsgNothingToCopy = "no order selected"

	// MsgCopyFailed prefixes clipboard errors.
	MsgCopyFailed = "copy failed"

	// MsgOrderCopied is the success toast after an order id was copied. It
	// takes the order id.
	MsgOrderCopied = "Copied %s"
)
