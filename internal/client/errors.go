// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	errNoServerAdapter = errors.New("server adapter is not provided")
	errNoClientConfig  = errors.New("client config is not provided")
)
