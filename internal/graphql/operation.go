// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// OperationKind distinguishes reads from writes. Only queries are cached and
// recorded for SSR; mutations invalidate cached queries.
type OperationKind string

const (
	KindQuery    OperationKind = "query"
	KindMutation OperationKind = "mutation"
)

// RequestPolicy tells the cache exchange how to combine cached and network
// results for a query.
type RequestPolicy string

const (
	// CacheFirst serves a cached result when present and only goes to the
	// network on a miss. It is the default.
	CacheFirst RequestPolicy = "cache-first"
	// CacheOnly never goes to the network.
	CacheOnly RequestPolicy = "cache-only"
	// NetworkOnly skips both the document cache and the SSR snapshot.
	NetworkOnly RequestPolicy = "network-only"
	// CacheAndNetwork serves a cached result marked stale and refreshes it in
	// the background.
	CacheAndNetwork RequestPolicy = "cache-and-network"
)

// Operation is a single GraphQL request travelling through the exchange
// pipeline. Key is a fingerprint of the query document and its variables; two
// operations with the same Key share cache and SSR entries.
type Operation struct {
	Key           uint64
	Kind          OperationKind
	Query         string
	Variables     map[string]any
	OperationName string
	Policy        RequestPolicy
}

// OperationOption customises an Operation built by NewOperation.
type OperationOption func(*Operation)

// WithRequestPolicy overrides the default cache-first policy.
func WithRequestPolicy(policy RequestPolicy) OperationOption {
	return func(op *Operation) {
		op.Policy = policy
	}
}

// WithOperationName sets the operationName sent to the API. By default the
// name is taken from the document.
func WithOperationName(name string) OperationOption {
	return func(op *Operation) {
		op.OperationName = name
	}
}

// NewOperation builds an Operation and computes its Key.
func NewOperation(kind OperationKind, query string, variables map[string]any, opts ...OperationOption) Operation {
	op := Operation{
		Kind:      kind,
		Query:     query,
		Variables: variables,
		Policy:    CacheFirst,
	}
	for _, opt := range opts {
		opt(&op)
	}
	if op.OperationName == "" {
		op.OperationName = documentOperationName(query)
	}
	op.Key = operationKey(query, variables)

	return op
}

// KeyString is the decimal form of Key, used as the SSR snapshot map key.
func (o Operation) KeyString() string {
	return strconv.FormatUint(o.Key, 10)
}

func (o Operation) withPolicy(policy RequestPolicy) Operation {
	o.Policy = policy
	return o
}

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	operationNameRe = regexp.MustCompile(`^\s*(?:query|mutation)\s+([_A-Za-z][_0-9A-Za-z]*)`)
)

// operationKey hashes the whitespace-normalised document and the canonical
// JSON of the variables (encoding/json sorts map keys), separated by a zero
// byte.
func operationKey(query string, variables map[string]any) uint64 {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(normalizeQuery(query))
	_, _ = hasher.Write([]byte{0})

	if len(variables) > 0 {
		if payload, err := json.Marshal(variables); err == nil {
			_, _ = hasher.Write(payload)
		}
	}

	return hasher.Sum64()
}

func normalizeQuery(query string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(query, " "))
}

func documentOperationName(query string) string {
	m := operationNameRe.FindStringSubmatch(query)
	if m == nil {
		return ""
	}
	return m[1]
}
