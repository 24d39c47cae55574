// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It fetches the server-rendered orders page, hydrates a client-mode GraphQL
// manager from its snapshot and hands the resulting order service to the
// terminal UI.
package client
