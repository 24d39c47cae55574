// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerContext(t *testing.T) {
	m := newTestManager(t, "https://api.example.com/graphql", ModeServer)

	got, ok := ManagerFromContext(WithManager(context.Background(), m))
	assert.True(t, ok)
	assert.Same(t, m, got)

	_, ok = ManagerFromContext(context.Background())
	assert.False(t, ok)

	_, ok = ManagerFromContext(WithManager(context.Background(), nil))
	assert.False(t, ok)
}
