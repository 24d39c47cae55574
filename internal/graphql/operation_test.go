// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOperation_Defaults(t *testing.T) {
	op := NewOperation(KindQuery, ordersQuery, map[string]any{"page": 1})

	assert.Equal(t, KindQuery, op.Kind)
	assert.Equal(t, CacheFirst, op.Policy)
	assert.Equal(t, "getOrders", op.OperationName)
	assert.NotZero(t, op.Key)
	assert.Equal(t, strconv.FormatUint(op.Key, 10), op.KeyString())
}

func TestNewOperation_Options(t *testing.T) {
	op := NewOperation(KindMutation, `mutation { deleteOrder(id: "1") { __typename } }`, nil,
		WithRequestPolicy(NetworkOnly),
		WithOperationName("DeleteOrder"),
	)

	assert.Equal(t, NetworkOnly, op.Policy)
	assert.Equal(t, "DeleteOrder", op.OperationName)
}

func TestNewOperation_AnonymousDocumentHasNoName(t *testing.T) {
	op := NewOperation(KindQuery, `{ me { id } }`, nil)

	assert.Empty(t, op.OperationName)
}

func TestOperationKey(t *testing.T) {
	base := operationKey("query q { a }", map[string]any{"page": 1, "limit": 20})

	t.Run("whitespace is insignificant", func(t *testing.T) {
		assert.Equal(t, base, operationKey("  query   q {\n\ta\n}  ", map[string]any{"page": 1, "limit": 20}))
	})
	t.Run("variable order is insignificant", func(t *testing.T) {
		assert.Equal(t, base, operationKey("query q { a }", map[string]any{"limit": 20, "page": 1}))
	})
	t.Run("variable values matter", func(t *testing.T) {
		assert.NotEqual(t, base, operationKey("query q { a }", map[string]any{"page": 2, "limit": 20}))
	})
	t.Run("document matters", func(t *testing.T) {
		assert.NotEqual(t, base, operationKey("query q { b }", map[string]any{"page": 1, "limit": 20}))
	})
	t.Run("nil and empty variables agree", func(t *testing.T) {
		assert.Equal(t, operationKey("query q { a }", nil), operationKey("query q { a }", map[string]any{}))
	})
}

func TestOperation_WithPolicyKeepsKey(t *testing.T) {
	op := NewOperation(KindQuery, ordersQuery, nil, WithRequestPolicy(CacheAndNetwork))
	refresh := op.withPolicy(NetworkOnly)

	assert.Equal(t, op.Key, refresh.Key)
	assert.Equal(t, NetworkOnly, refresh.Policy)
	assert.Equal(t, CacheAndNetwork, op.Policy)
}
