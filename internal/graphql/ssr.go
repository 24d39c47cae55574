// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"maps"
	"sync"

	"github.com/MKhiriev/nekmart-admin/internal/logger"
)

// SerializedError is the JSON form of a CombinedError inside an SSR snapshot.
type SerializedError struct {
	NetworkError  string         `json:"networkError,omitempty"`
	GraphQLErrors []GraphQLError `json:"graphQLErrors,omitempty"`
}

// SerializedResult is the JSON form of a Result inside an SSR snapshot. Data
// and Extensions hold JSON documents encoded as strings.
type SerializedResult struct {
	Data       string           `json:"data,omitempty"`
	Extensions string           `json:"extensions,omitempty"`
	Error      *SerializedError `json:"error,omitempty"`
}

// SSRData is a serialized SSR cache snapshot keyed by Operation.KeyString.
// It travels to the client as the "urqlState" page prop.
type SSRData map[string]SerializedResult

// SSRCache bridges query results between server-side rendering and client
// hydration.
//
// On the server it records the result of every query that passes through it;
// ExtractData then yields the snapshot to embed in the page. On the client it
// is seeded with that snapshot and answers matching queries once without
// touching the network, after which the entry is dropped and the document
// cache takes over.
type SSRCache struct {
	mu       sync.Mutex
	data     SSRData
	isClient bool

	logger *logger.Logger
}

func newSSRCache(initialState SSRData, isClient bool, logger *logger.Logger) *SSRCache {
	data := make(SSRData, len(initialState))
	maps.Copy(data, initialState)

	return &SSRCache{
		data:     data,
		isClient: isClient,
		logger:   logger,
	}
}

// IsClient reports whether the cache runs in client (hydration) mode.
func (s *SSRCache) IsClient() bool {
	return s.isClient
}

// Len returns the number of entries currently held.
func (s *SSRCache) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// ExtractData returns a copy of the current snapshot.
func (s *SSRCache) ExtractData() SSRData {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(SSRData, len(s.data))
	maps.Copy(snapshot, s.data)
	return snapshot
}

// RestoreData overlays data onto the cache: entries in data replace entries
// with the same key, all other entries stay. A nil snapshot is a no-op.
func (s *SSRCache) RestoreData(data SSRData) {
	if data == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	maps.Copy(s.data, data)
}

func (s *SSRCache) exchange(forward ExchangeIO) ExchangeIO {
	return func(ctx context.Context, op Operation) Result {
		if op.Kind == KindQuery && op.Policy != NetworkOnly {
			if res, ok := s.take(op); ok {
				s.logger.Debug().
					Str("operation", op.OperationName).
					Str("key", op.KeyString()).
					Msg("served from ssr snapshot")
				return res
			}
		}

		res := forward(ctx, op)
		if !s.isClient && op.Kind == KindQuery {
			s.record(op, res)
		}
		return res
	}
}

// take returns the snapshot entry for op. In client mode the entry is
// removed so it is served at most once.
func (s *SSRCache) take(op Operation) (Result, bool) {
	key := op.KeyString()

	s.mu.Lock()
	entry, ok := s.data[key]
	if ok && s.isClient {
		delete(s.data, key)
	}
	s.mu.Unlock()

	if !ok {
		return Result{}, false
	}
	return deserializeResult(op, entry), true
}

func (s *SSRCache) record(op Operation, res Result) {
	entry := serializeResult(res)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[op.KeyString()] = entry
}

func serializeResult(res Result) SerializedResult {
	var out SerializedResult
	if res.HasData() {
		out.Data = string(res.Data)
	}
	if len(res.Extensions) > 0 {
		if ext, err := json.Marshal(res.Extensions); err == nil {
			out.Extensions = string(ext)
		}
	}
	if res.Error != nil {
		out.Error = &SerializedError{GraphQLErrors: res.Error.GraphQLErrors}
		if res.Error.NetworkError != nil {
			out.Error.NetworkError = res.Error.NetworkError.Error()
		}
	}
	return out
}

func deserializeResult(op Operation, entry SerializedResult) Result {
	res := Result{
		Operation: op,
		Source:    SourceSSR,
	}
	if entry.Data != "" {
		res.Data = json.RawMessage(entry.Data)
	}
	if entry.Extensions != "" {
		var ext map[string]any
		if err := json.Unmarshal([]byte(entry.Extensions), &ext); err == nil {
			res.Extensions = ext
		}
	}
	if entry.Error != nil {
		var networkErr error
		if entry.Error.NetworkError != "" {
			networkErr = errors.New(entry.Error.NetworkError)
		}
		res.Error = NewCombinedError(networkErr, entry.Error.GraphQLErrors)
	}
	return res
}
