// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors shared by the GraphQL
// pipeline, the lifecycle manager, the upload service and the HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nekmart_graphql_operations_total",
		Help: "GraphQL operation results by kind and the pipeline stage that produced them.",
	}, []string{"kind", "source"})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nekmart_graphql_operation_errors_total",
		Help: "GraphQL results carrying an error, by error class (network or graphql).",
	}, []string{"class"})

	FetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nekmart_graphql_fetch_seconds",
		Help:    "Round-trip time of GraphQL requests to the upstream API.",
		Buckets: prometheus.DefBuckets,
	})

	ClientAllocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nekmart_graphql_client_allocations_total",
		Help: "GraphQL clients allocated by lifecycle managers, by mode.",
	}, []string{"mode"})

	SSRRestoresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nekmart_graphql_ssr_restores_total",
		Help: "Snapshots overlaid onto an existing SSR cache.",
	})

	CacheRefreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nekmart_graphql_cache_refreshes_total",
		Help: "Background refreshes started for cache-and-network queries.",
	})

	ImageUploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nekmart_image_uploads_total",
		Help: "Image uploads by outcome.",
	}, []string{"status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nekmart_http_request_seconds",
		Help:    "Latency of requests served by the admin server, by route pattern and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "status"})
)
