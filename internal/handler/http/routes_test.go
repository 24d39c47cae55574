package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/nekmart-admin/internal/config"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_Routes(t *testing.T) {
	h, mocks := newMockedHandler(t, "")
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v").AnyTimes()
	router := h.Init()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "version", method: http.MethodGet, path: "/api/version/", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "version wrong method", method: http.MethodPost, path: "/api/version/", wantStatus: http.StatusNotFound},
		{name: "images wrong method", method: http.MethodGet, path: "/api/images", wantStatus: http.StatusNotFound},
		{name: "unknown", method: http.MethodGet, path: "/api/user/login", wantStatus: http.StatusNotFound},
		{name: "static images disabled", method: http.MethodGet, path: "/images/a.png", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_MetricsExposition(t *testing.T) {
	h, mocks := newMockedHandler(t, "")
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v")
	router := h.Init()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `nekmart_http_request_seconds_count{route="/api/version",status="200"}`)
}

func TestInit_ServesStoredImages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Nekmart"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Nekmart", "a.txt"), []byte("image bytes"), 0o644))

	cfg := &config.StructuredConfig{Storage: config.Storage{Images: config.Images{Dir: dir}}}
	router := NewHandler(&service.Services{}, cfg, logger.Nop()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/Nekmart/a.txt", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image bytes", rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/images/Nekmart/a.txt", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Empty(t, rec.Header().Get("Content-Length"))
	gz, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(body))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/Nekmart/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
