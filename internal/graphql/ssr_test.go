// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── server mode ───────────────────────────────────────────────────────────────

func TestSSRCache_ServerRecordsQueries(t *testing.T) {
	ssr := newSSRCache(nil, false, logger.Nop())
	forward := &stubForward{res: dataResult(ordersData)}
	op := NewOperation(KindQuery, ordersQuery, map[string]any{"page": 1})

	ssr.exchange(forward.io)(context.Background(), op)

	snapshot := ssr.ExtractData()
	require.Contains(t, snapshot, op.KeyString())
	assert.JSONEq(t, ordersData, snapshot[op.KeyString()].Data)
	assert.Nil(t, snapshot[op.KeyString()].Error)
}

func TestSSRCache_ServerSkipsMutations(t *testing.T) {
	ssr := newSSRCache(nil, false, logger.Nop())
	forward := &stubForward{res: dataResult(`{"ok":true}`)}

	ssr.exchange(forward.io)(context.Background(), NewOperation(KindMutation, `mutation { ping }`, nil))

	assert.Zero(t, ssr.Len())
}

func TestSSRCache_ServerRecordsErrors(t *testing.T) {
	ssr := newSSRCache(nil, false, logger.Nop())
	forward := &stubForward{res: func(op Operation) Result {
		return Result{Operation: op, Error: NewCombinedError(nil, []GraphQLError{{Message: "Invalid input"}})}
	}}
	op := NewOperation(KindQuery, ordersQuery, nil)

	ssr.exchange(forward.io)(context.Background(), op)

	entry := ssr.ExtractData()[op.KeyString()]
	require.NotNil(t, entry.Error)
	assert.Empty(t, entry.Data)
	assert.Equal(t, []GraphQLError{{Message: "Invalid input"}}, entry.Error.GraphQLErrors)
}

func TestSSRCache_ServerServesExistingEntryRepeatedly(t *testing.T) {
	op := NewOperation(KindQuery, ordersQuery, nil)
	ssr := newSSRCache(SSRData{op.KeyString(): {Data: ordersData}}, false, logger.Nop())
	forward := &stubForward{res: dataResult(`{"other":1}`)}
	pipeline := ssr.exchange(forward.io)

	pipeline(context.Background(), op)
	res := pipeline(context.Background(), op)

	assert.Zero(t, forward.calls.Load())
	assert.Equal(t, SourceSSR, res.Source)
	assert.Equal(t, 1, ssr.Len())
}

// ── client mode ───────────────────────────────────────────────────────────────

func TestSSRCache_ClientConsumesEntryOnce(t *testing.T) {
	op := NewOperation(KindQuery, ordersQuery, nil)
	ssr := newSSRCache(SSRData{op.KeyString(): {Data: ordersData, Extensions: `{"cost":3}`}}, true, logger.Nop())
	forward := &stubForward{res: dataResult(`{"fresh":true}`)}
	pipeline := ssr.exchange(forward.io)

	first := pipeline(context.Background(), op)
	second := pipeline(context.Background(), op)

	assert.Equal(t, SourceSSR, first.Source)
	assert.JSONEq(t, ordersData, string(first.Data))
	assert.Equal(t, map[string]any{"cost": float64(3)}, first.Extensions)
	assert.Equal(t, SourceNetwork, second.Source)
	assert.Equal(t, int32(1), forward.calls.Load())
	assert.Zero(t, ssr.Len(), "client mode never records")
}

func TestSSRCache_NetworkOnlySkipsSnapshot(t *testing.T) {
	op := NewOperation(KindQuery, ordersQuery, nil)
	ssr := newSSRCache(SSRData{op.KeyString(): {Data: ordersData}}, true, logger.Nop())
	forward := &stubForward{res: dataResult(`{"fresh":true}`)}

	res := ssr.exchange(forward.io)(context.Background(), op.withPolicy(NetworkOnly))

	assert.Equal(t, SourceNetwork, res.Source)
	assert.Equal(t, 1, ssr.Len())
}

func TestSSRCache_RehydratesErrors(t *testing.T) {
	op := NewOperation(KindQuery, ordersQuery, nil)
	ssr := newSSRCache(SSRData{op.KeyString(): {Error: &SerializedError{NetworkError: "bad gateway"}}}, true, logger.Nop())
	forward := &stubForward{res: dataResult(`{}`)}

	res := ssr.exchange(forward.io)(context.Background(), op)

	require.NotNil(t, res.Error)
	assert.Equal(t, "[Network] bad gateway", res.Error.Message)
	assert.EqualError(t, res.Error.NetworkError, "bad gateway")
}

// ── snapshot operations ───────────────────────────────────────────────────────

func TestSSRCache_RestoreDataOverlays(t *testing.T) {
	ssr := newSSRCache(SSRData{"a": {Data: `1`}, "b": {Data: `2`}}, true, logger.Nop())

	ssr.RestoreData(SSRData{"b": {Data: `20`}, "c": {Data: `3`}})

	assert.Equal(t, SSRData{"a": {Data: `1`}, "b": {Data: `20`}, "c": {Data: `3`}}, ssr.ExtractData())
}

func TestSSRCache_RestoreNilIsNoop(t *testing.T) {
	ssr := newSSRCache(SSRData{"a": {Data: `1`}}, true, logger.Nop())

	ssr.RestoreData(nil)

	assert.Equal(t, SSRData{"a": {Data: `1`}}, ssr.ExtractData())
}

func TestSSRCache_ExtractDataIsACopy(t *testing.T) {
	initial := SSRData{"a": {Data: `1`}}
	ssr := newSSRCache(initial, false, logger.Nop())

	snapshot := ssr.ExtractData()
	snapshot["b"] = SerializedResult{Data: `2`}
	initial["c"] = SerializedResult{Data: `3`}

	assert.Equal(t, 1, ssr.Len())
}

func TestSSRData_JSONShape(t *testing.T) {
	data := SSRData{"42": {
		Data:  `{"a":1}`,
		Error: &SerializedError{GraphQLErrors: []GraphQLError{{Message: "x"}}},
	}}

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"42":{"data":"{\"a\":1}","error":{"graphQLErrors":[{"message":"x"}]}}}`, string(raw))

	var back SSRData
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, data, back)
}
