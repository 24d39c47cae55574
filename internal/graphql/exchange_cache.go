// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// documentCache is the in-memory document cache stage. It stores whole query
// results by operation key and indexes them by every __typename found in
// their data, so a mutation can evict the queries it may have made stale.
type documentCache struct {
	mu        sync.RWMutex
	results   map[uint64]Result
	typenames map[string]map[uint64]struct{}

	refreshes singleflight.Group
	wg        sync.WaitGroup

	logger *logger.Logger
}

func newDocumentCache(logger *logger.Logger) *documentCache {
	return &documentCache{
		results:   make(map[uint64]Result),
		typenames: make(map[string]map[uint64]struct{}),
		logger:    logger,
	}
}

func (c *documentCache) exchange(forward ExchangeIO) ExchangeIO {
	return func(ctx context.Context, op Operation) Result {
		if op.Kind == KindMutation {
			return c.forwardMutation(ctx, forward, op)
		}
		if op.Policy == NetworkOnly {
			return c.forwardQuery(ctx, forward, op)
		}

		if cached, ok := c.get(op.Key); ok {
			cached.Operation = op
			cached.Source = SourceCache
			if op.Policy == CacheAndNetwork {
				cached.Stale = true
				c.refresh(ctx, forward, op)
			}
			return cached
		}

		if op.Policy == CacheOnly {
			return Result{Operation: op, Source: SourceCache}
		}

		return c.forwardQuery(ctx, forward, op)
	}
}

func (c *documentCache) forwardQuery(ctx context.Context, forward ExchangeIO, op Operation) Result {
	res := forward(ctx, op)
	if res.HasData() {
		c.store(op.Key, res)
	}
	return res
}

func (c *documentCache) forwardMutation(ctx context.Context, forward ExchangeIO, op Operation) Result {
	res := forward(ctx, op)
	if res.HasData() {
		if evicted := c.invalidate(collectTypenames(res.Data)); evicted > 0 {
			c.logger.Debug().
				Str("operation", op.OperationName).
				Int("evicted", evicted).
				Msg("mutation invalidated cached queries")
		}
	}
	return res
}

// refresh re-executes op against the network in the background. Concurrent
// refreshes of the same key collapse into one request.
func (c *documentCache) refresh(ctx context.Context, forward ExchangeIO, op Operation) {
	metrics.CacheRefreshesTotal.Inc()

	refreshCtx := context.WithoutCancel(ctx)
	networkOp := op.withPolicy(NetworkOnly)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		_, _, _ = c.refreshes.Do(op.KeyString(), func() (any, error) {
			res := c.forwardQuery(refreshCtx, forward, networkOp)
			if res.Error != nil {
				c.logger.Warn().
					Str("operation", op.OperationName).
					Str("error", res.Error.Error()).
					Msg("background refresh failed")
			}
			return nil, nil
		})
	}()
}

// wait blocks until every background refresh started so far has finished.
func (c *documentCache) wait() {
	c.wg.Wait()
}

func (c *documentCache) get(key uint64) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res, ok := c.results[key]
	return res, ok
}

func (c *documentCache) store(key uint64, res Result) {
	res.Stale = false
	typenames := collectTypenames(res.Data)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.results[key] = res
	for _, typename := range typenames {
		keys, ok := c.typenames[typename]
		if !ok {
			keys = make(map[uint64]struct{})
			c.typenames[typename] = keys
		}
		keys[key] = struct{}{}
	}
}

func (c *documentCache) invalidate(typenames []string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for _, typename := range typenames {
		for key := range c.typenames[typename] {
			if _, ok := c.results[key]; ok {
				delete(c.results, key)
				evicted++
			}
		}
		delete(c.typenames, typename)
	}
	return evicted
}

func (c *documentCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}

// collectTypenames returns the distinct __typename values found anywhere in
// data. Malformed JSON yields no typenames.
func collectTypenames(data json.RawMessage) []string {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var walk func(node any)
	walk = func(node any) {
		switch v := node.(type) {
		case map[string]any:
			if typename, ok := v["__typename"].(string); ok {
				seen[typename] = struct{}{}
			}
			for _, child := range v {
				walk(child)
			}
		case []any:
			for _, child := range v {
				walk(child)
			}
		}
	}
	walk(tree)

	typenames := make([]string, 0, len(seen))
	for typename := range seen {
		typenames = append(typenames, typename)
	}
	return typenames
}
