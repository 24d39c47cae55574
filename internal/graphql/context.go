// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import "context"

type managerCtxKey struct{}

// WithManager returns a copy of ctx carrying m. The HTTP middleware uses it
// to give every request its own manager.
func WithManager(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, managerCtxKey{}, m)
}

// ManagerFromContext returns the manager stored by WithManager.
func ManagerFromContext(ctx context.Context) (*Manager, bool) {
	m, ok := ctx.Value(managerCtxKey{}).(*Manager)
	return m, ok && m != nil
}
