// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import (
	"net/http"
	"sync"

	"github.com/MKhiriev/nekmart-admin/internal/config"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/metrics"
	"github.com/MKhiriev/nekmart-admin/internal/utils"
)

// Mode selects how the SSR cache of a managed client behaves.
type Mode int

const (
	// ModeServer records results so the page can embed them.
	ModeServer Mode = iota
	// ModeClient replays a rehydrated snapshot.
	ModeClient
)

func (m Mode) String() string {
	if m == ModeClient {
		return "client"
	}
	return "server"
}

// Manager owns the lifecycle of one Client and its SSRCache.
//
// The client is created lazily by the first Initialize call and never
// replaced; later calls only feed their snapshot into the existing SSR cache.
// A Manager must not be shared between server requests: create one per
// request (see WithManager) and one per client process.
type Manager struct {
	mu sync.Mutex

	cfg       config.GraphQL
	mode      Mode
	transport http.RoundTripper

	client      *Client
	ssrCache    *SSRCache
	allocations int

	logger *logger.Logger
}

// ManagerOption customises a Manager.
type ManagerOption func(*Manager)

// WithTransport makes every client of the manager send requests through rt.
// Servers pass one shared transport to all per-request managers so that
// connections are pooled while cookie jars stay per client.
func WithTransport(rt http.RoundTripper) ManagerOption {
	return func(m *Manager) {
		m.transport = rt
	}
}

// NewManager creates an uninitialised Manager. cfg is captured here; the API
// URL is not re-read afterwards.
func NewManager(cfg config.GraphQL, mode Mode, logger *logger.Logger, opts ...ManagerOption) *Manager {
	m := &Manager{
		cfg:    cfg,
		mode:   mode,
		logger: logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize returns the manager's client, creating it on the first call.
//
// On the first call the SSR cache is seeded with initialState and the client
// is built with the error, cache, ssr and fetch stages, credentials included.
// On every later call a non-nil initialState is overlaid onto the existing
// SSR cache (see SSRCache.RestoreData) and nothing else happens.
func (m *Manager) Initialize(initialState SSRData) *Client {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		if initialState != nil {
			m.ssrCache.RestoreData(initialState)
			metrics.SSRRestoresTotal.Inc()
			m.logger.Debug().
				Str("mode", m.mode.String()).
				Int("entries", len(initialState)).
				Msg("ssr snapshot restored")
		}
		return m.client
	}

	m.ssrCache = newSSRCache(initialState, m.mode == ModeClient, m.logger)

	httpClient := utils.NewHTTPClientWithTransport(m.transport)
	if m.cfg.RequestTimeout > 0 {
		httpClient.SetTimeout(m.cfg.RequestTimeout)
	}

	fetchOptions := FetchOptions{Credentials: CredentialsInclude}
	cache := newDocumentCache(m.logger)

	m.client = newClient(clientOptions{
		url:          m.cfg.APIURL,
		fetchOptions: fetchOptions,
		stages: []stage{
			{name: StageError, exchange: ErrorExchange(normalizeCombinedError)},
			{name: StageCache, exchange: cache.exchange},
			{name: StageSSR, exchange: m.ssrCache.exchange},
			{name: StageFetch, exchange: fetchExchange(httpClient, m.cfg.APIURL, fetchOptions, m.logger)},
		},
		cache:  cache,
		logger: m.logger,
	})
	m.allocations++

	metrics.ClientAllocationsTotal.WithLabelValues(m.mode.String()).Inc()
	m.logger.Debug().
		Str("mode", m.mode.String()).
		Str("url", m.cfg.APIURL).
		Int("ssr_entries", len(initialState)).
		Msg("graphql client created")

	return m.client
}

// SSRCache returns the SSR cache of the managed client, or nil before the
// first Initialize.
func (m *Manager) SSRCache() *SSRCache {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ssrCache
}

// Allocations returns how many clients this manager has created. It is never
// more than one.
func (m *Manager) Allocations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.allocations
}

// Mode returns the mode the manager was created with.
func (m *Manager) Mode() Mode {
	return m.mode
}

func normalizeCombinedError(err *CombinedError, _ Operation) {
	err.Message = NormalizeErrorMessage(err.Message)
}
