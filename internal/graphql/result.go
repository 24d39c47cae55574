// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Source names the pipeline stage that produced a Result.
type Source string

const (
	SourceNetwork Source = "network"
	SourceCache   Source = "cache"
	SourceSSR     Source = "ssr"
)

// Result is the outcome of an Operation. Data holds the raw "data" member of
// the GraphQL response; Error is non-nil when the transport failed or the API
// reported errors (both may be set for partial results).
type Result struct {
	Operation  Operation
	Data       json.RawMessage
	Extensions map[string]any
	Error      *CombinedError

	// Stale is set when a cached result is served while a background refresh
	// is in flight (cache-and-network).
	Stale bool

	Source Source
}

// HasData reports whether the result carries a non-null data member.
func (r Result) HasData() bool {
	return hasJSONValue(r.Data)
}

// Err returns r.Error as an error, or nil.
func (r Result) Err() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}

// Decode unmarshals Data into v. It returns ErrNoData when the result has no
// data, wrapped together with the result error if there is one.
func (r Result) Decode(v any) error {
	if !r.HasData() {
		if r.Error != nil {
			return fmt.Errorf("%w: %w", ErrNoData, r.Error)
		}
		return ErrNoData
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decode result data: %w", err)
	}
	return nil
}

func hasJSONValue(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
