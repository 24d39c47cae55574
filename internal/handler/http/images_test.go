package http

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/nekmart-admin/internal/service"
	"github.com/MKhiriev/nekmart-admin/internal/store"
	"github.com/MKhiriev/nekmart-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type uploadForm struct {
	files  map[string][]byte
	fields map[string]string
}

func newUploadRequest(t *testing.T, form uploadForm) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, data := range form.files {
		part, err := mw.CreateFormFile("file", name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	for k, v := range form.fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/images", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// ── POST /api/images ──────────────────────────────────────────────────────────

func TestUploadImage_Success(t *testing.T) {
	h, mocks := newMockedHandler(t, "")

	mocks.images.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upload models.ImageUpload, progress func(int)) (models.UploadedImage, error) {
			assert.Equal(t, "banner.png", upload.Filename)
			assert.Equal(t, []byte("png-bytes"), upload.Data)
			assert.Equal(t, "Banners", upload.Folder)
			assert.Equal(t, "Banners/old.png", upload.PreviousKey)
			assert.Equal(t, 16, upload.Width)
			assert.Equal(t, 9, upload.Height)
			require.NotNil(t, progress)
			progress(0)
			progress(100)
			return models.UploadedImage{Key: "Banners/new.png", URL: "https://cdn/Banners/new.png"}, nil
		})

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, newUploadRequest(t, uploadForm{
		files: map[string][]byte{"banner.png": []byte("png-bytes")},
		fields: map[string]string{
			"folder":       "Banners",
			"previous_key": "Banners/old.png",
			"width":        "16",
			"height":       "9",
		},
	}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"key":"Banners/new.png","url":"https://cdn/Banners/new.png"}`, rec.Body.String())
}

func TestUploadImage_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		req  func(t *testing.T) *http.Request
	}{
		{
			name: "no file",
			req: func(t *testing.T) *http.Request {
				return newUploadRequest(t, uploadForm{fields: map[string]string{"folder": "x"}})
			},
		},
		{
			name: "two files",
			req: func(t *testing.T) *http.Request {
				return newUploadRequest(t, uploadForm{files: map[string][]byte{"a.png": {1}, "b.png": {2}}})
			},
		},
		{
			name: "bad width",
			req: func(t *testing.T) *http.Request {
				return newUploadRequest(t, uploadForm{
					files:  map[string][]byte{"a.png": {1}},
					fields: map[string]string{"width": "wide"},
				})
			},
		},
		{
			name: "negative height",
			req: func(t *testing.T) *http.Request {
				return newUploadRequest(t, uploadForm{
					files:  map[string][]byte{"a.png": {1}},
					fields: map[string]string{"height": "-1"},
				})
			},
		},
		{
			name: "not multipart",
			req: func(*testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/images", bytes.NewBufferString(`{"file":"x"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the image service must not be reached
			h, _ := newMockedHandler(t, "")

			rec := httptest.NewRecorder()
			h.uploadImage(rec, tt.req(t))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestUploadImage_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "too large", err: service.ErrImageTooLarge, wantStatus: http.StatusRequestEntityTooLarge, wantBody: service.ErrImageTooLarge.Error()},
		{name: "wrong type", err: service.ErrImageTypeNotAllowed, wantStatus: http.StatusUnsupportedMediaType, wantBody: service.ErrImageTypeNotAllowed.Error()},
		{name: "wrong ratio", err: service.ErrImageResolutionMismatch, wantStatus: http.StatusUnprocessableEntity, wantBody: service.ErrImageResolutionMismatch.Error()},
		{name: "bad key", err: store.ErrInvalidObjectKey, wantStatus: http.StatusBadRequest, wantBody: store.ErrInvalidObjectKey.Error()},
		{name: "storage failure", err: service.ErrImageNotStored, wantStatus: http.StatusInternalServerError, wantBody: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newMockedHandler(t, "")
			mocks.images.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.UploadedImage{}, tt.err)

			rec := httptest.NewRecorder()
			h.uploadImage(rec, newUploadRequest(t, uploadForm{files: map[string][]byte{"a.png": {1}}}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestParseDimension(t *testing.T) {
	v, err := parseDimension("")
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = parseDimension("1600")
	require.NoError(t, err)
	assert.Equal(t, 1600, v)

	_, err = parseDimension("0")
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}
