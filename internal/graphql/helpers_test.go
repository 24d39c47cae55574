// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/nekmart-admin/internal/config"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/stretchr/testify/require"
)

const ordersQuery = `
	query getOrders($page: Int) {
		getOrders(searchInput: {limit: 20, page: $page}) {
			__typename
			results { __typename id orderId }
		}
	}`

const ordersData = `{"getOrders":{"__typename":"OrderList","results":[{"__typename":"Order","id":"1","orderId":"NK-1"}]}}`

// fakeAPI is an httptest GraphQL endpoint that counts requests and records
// the last request it received.
type fakeAPI struct {
	*httptest.Server

	calls atomic.Int32

	mu          sync.Mutex
	lastBody    fetchRequest
	lastHeaders http.Header
	lastCookies []*http.Cookie

	respond func(w http.ResponseWriter, req fetchRequest)
}

func newFakeAPI(t *testing.T, respond func(w http.ResponseWriter, req fetchRequest)) *fakeAPI {
	t.Helper()

	api := &fakeAPI{respond: respond}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.calls.Add(1)

		var req fetchRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		api.mu.Lock()
		api.lastBody = req
		api.lastHeaders = r.Header.Clone()
		api.lastCookies = r.Cookies()
		api.mu.Unlock()

		api.respond(w, req)
	}))
	t.Cleanup(api.Close)

	return api
}

// respondData answers every request with data.
func respondData(data string) func(w http.ResponseWriter, req fetchRequest) {
	return func(w http.ResponseWriter, _ fetchRequest) {
		w.Header().Set("Content-Type", "application/graphql-response+json")
		_, _ = w.Write([]byte(`{"data":` + data + `}`))
	}
}

func (a *fakeAPI) Calls() int {
	return int(a.calls.Load())
}

func (a *fakeAPI) last() (fetchRequest, http.Header, []*http.Cookie) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastBody, a.lastHeaders, a.lastCookies
}

func newTestManager(t *testing.T, apiURL string, mode Mode) *Manager {
	t.Helper()
	return NewManager(config.GraphQL{APIURL: apiURL}, mode, logger.Nop())
}

// stubForward is an ExchangeIO that answers with a fixed result and counts
// calls.
type stubForward struct {
	calls atomic.Int32
	res   func(op Operation) Result
}

func (s *stubForward) io(_ context.Context, op Operation) Result {
	s.calls.Add(1)
	return s.res(op)
}

func dataResult(data string) func(op Operation) Result {
	return func(op Operation) Result {
		return Result{Operation: op, Data: json.RawMessage(data), Source: SourceNetwork}
	}
}

func decodeOrders(t *testing.T, res Result) []map[string]any {
	t.Helper()

	var out struct {
		GetOrders struct {
			Results []map[string]any `json:"results"`
		} `json:"getOrders"`
	}
	require.NoError(t, res.Decode(&out))
	return out.GetOrders.Results
}
