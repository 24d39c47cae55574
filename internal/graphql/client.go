// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import (
	"context"
	"slices"

	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/metrics"
)

// Credentials controls whether cookies accompany requests to the API.
type Credentials string

const (
	CredentialsInclude Credentials = "include"
	CredentialsOmit    Credentials = "omit"
)

// FetchOptions are the transport options the fetch stage was built with.
type FetchOptions struct {
	Credentials Credentials
}

// Client executes GraphQL operations through its exchange pipeline. Obtain
// one from Manager.Initialize.
type Client struct {
	url          string
	fetchOptions FetchOptions
	stages       []string
	pipeline     ExchangeIO
	cache        *documentCache

	logger *logger.Logger
}

type clientOptions struct {
	url          string
	fetchOptions FetchOptions
	stages       []stage
	cache        *documentCache
	logger       *logger.Logger
}

func newClient(opts clientOptions) *Client {
	names := make([]string, 0, len(opts.stages))
	for _, s := range opts.stages {
		names = append(names, s.name)
	}

	return &Client{
		url:          opts.url,
		fetchOptions: opts.fetchOptions,
		stages:       names,
		pipeline:     composeExchanges(opts.stages, dropExchange),
		cache:        opts.cache,
		logger:       opts.logger,
	}
}

// URL returns the GraphQL endpoint.
func (c *Client) URL() string {
	return c.url
}

// FetchOptions returns the transport options of the fetch stage.
func (c *Client) FetchOptions() FetchOptions {
	return c.fetchOptions
}

// Stages returns the pipeline stage names in execution order.
func (c *Client) Stages() []string {
	return slices.Clone(c.stages)
}

// Query executes a query operation.
func (c *Client) Query(ctx context.Context, query string, variables map[string]any, opts ...OperationOption) Result {
	return c.ExecuteOperation(ctx, NewOperation(KindQuery, query, variables, opts...))
}

// Mutation executes a mutation operation.
func (c *Client) Mutation(ctx context.Context, query string, variables map[string]any, opts ...OperationOption) Result {
	return c.ExecuteOperation(ctx, NewOperation(KindMutation, query, variables, opts...))
}

// ExecuteOperation runs op through the pipeline and returns its first
// result. For cache-and-network queries that is the cached result; the
// refreshed one lands in the cache and is returned by the next call.
func (c *Client) ExecuteOperation(ctx context.Context, op Operation) Result {
	res := c.pipeline(ctx, op)

	source := res.Source
	if source == "" {
		source = SourceCache
	}
	metrics.OperationsTotal.WithLabelValues(string(op.Kind), string(source)).Inc()

	event := c.logger.Debug().
		Str("operation", op.OperationName).
		Str("kind", string(op.Kind)).
		Str("policy", string(op.Policy)).
		Str("source", string(source)).
		Bool("stale", res.Stale)
	if res.Error != nil {
		event = event.Str("error", res.Error.Error())
	}
	event.Msg("graphql operation")

	return res
}

// Wait blocks until all background cache refreshes started by this client
// have finished.
func (c *Client) Wait() {
	if c.cache != nil {
		c.cache.wait()
	}
}
