package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/nekmart-admin/internal/graphql"
	"github.com/MKhiriev/nekmart-admin/internal/service"
	"github.com/MKhiriev/nekmart-admin/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidMultipartForm: http.StatusBadRequest,
	ErrExpectedSingleFile:   http.StatusBadRequest,
	ErrInvalidDimensions:    http.StatusBadRequest,

	service.ErrImageTooLarge:           http.StatusRequestEntityTooLarge,
	service.ErrImageTypeNotAllowed:     http.StatusUnsupportedMediaType,
	service.ErrImageResolutionMismatch: http.StatusUnprocessableEntity,
	service.ErrNoGraphQLClient:         http.StatusInternalServerError,

	store.ErrInvalidObjectKey: http.StatusBadRequest,
	store.ErrObjectNotFound:   http.StatusNotFound,
	store.ErrWritingObject:    http.StatusInternalServerError,

	graphql.ErrUnauthorized:    http.StatusUnauthorized,
	graphql.ErrForbidden:       http.StatusForbidden,
	graphql.ErrBadGateway:      http.StatusBadGateway,
	graphql.ErrInvalidResponse: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage is the text shown to API callers for err. Internal failures
// are not described.
func errorMessage(err error, status int) string {
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		return http.StatusText(status)
	}
	return err.Error()
}
