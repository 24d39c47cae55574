package http

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/nekmart-admin/internal/config"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/mock"
	"github.com/MKhiriev/nekmart-admin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type testMocks struct {
	orders  *mock.MockOrderService
	images  *mock.MockImageService
	appInfo *mock.MockAppInfoService
}

func newMockedHandler(t *testing.T, apiURL string) (*Handler, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := testMocks{
		orders:  mock.NewMockOrderService(ctrl),
		images:  mock.NewMockImageService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	cfg := &config.StructuredConfig{GraphQL: config.GraphQL{APIURL: apiURL}}
	h := NewHandler(&service.Services{
		OrderService:   mocks.orders,
		ImageService:   mocks.images,
		AppInfoService: mocks.appInfo,
	}, cfg, logger.Nop())

	return h, mocks
}

// graphQLAPI is a fake upstream API answering every request with body.
type graphQLAPI struct {
	*httptest.Server
	calls      atomic.Int32
	lastCookie atomic.Value
}

func newGraphQLAPI(t *testing.T, body string) *graphQLAPI {
	t.Helper()

	api := &graphQLAPI{}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.calls.Add(1)
		if c, err := r.Cookie("session"); err == nil {
			api.lastCookie.Store(c.Value)
		}
		w.Header().Set("Content-Type", "application/graphql-response+json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(api.Close)

	return api
}

// ── NewHandler ────────────────────────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	cfg := &config.StructuredConfig{
		GraphQL: config.GraphQL{APIURL: "https://api.example.com/graphql"},
		Storage: config.Storage{Images: config.Images{Dir: "/var/images"}},
	}
	log := logger.Nop()

	h := NewHandler(services, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Equal(t, cfg.GraphQL, h.graphqlCfg)
	assert.Equal(t, "/var/images", h.imagesDir)
	assert.NotNil(t, h.transport)
	assert.Equal(t, log, h.logger)
}

func TestNewHandler_OwnTransport(t *testing.T) {
	cfg := &config.StructuredConfig{}
	h1 := NewHandler(&service.Services{}, cfg, logger.Nop())
	h2 := NewHandler(&service.Services{}, cfg, logger.Nop())

	assert.NotSame(t, h1.transport, h2.transport)
}
