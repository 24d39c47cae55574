package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/service"
	"github.com/MKhiriev/nekmart-admin/internal/utils"
	"github.com/MKhiriev/nekmart-admin/models"
)

// multipartOverhead is the room left for form fields and part headers on top
// of the largest accepted image.
const multipartOverhead = 1 << 20

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	upload, err := readImageUpload(w, r)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Msg("invalid image upload request")
		utils.WriteError(w, errorMessage(err, status), status)
		return
	}

	uploaded, err := h.services.ImageService.Upload(r.Context(), upload, func(p int) {
		log.Debug().Str("filename", upload.Filename).Int("progress", p).Msg("image upload progress")
	})
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("filename", upload.Filename).Msg("error uploading image")
		utils.WriteError(w, errorMessage(err, status), status)
		return
	}

	if _, err = utils.WriteJSON(w, uploaded, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing uploaded image")
	}
}

func readImageUpload(w http.ResponseWriter, r *http.Request) (models.ImageUpload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxImageSize+multipartOverhead)
	if err := r.ParseMultipartForm(service.MaxImageSize + multipartOverhead); err != nil {
		return models.ImageUpload{}, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}

	files := r.MultipartForm.File["file"]
	if len(files) != 1 {
		return models.ImageUpload{}, fmt.Errorf("%w: got %d", ErrExpectedSingleFile, len(files))
	}
	header := files[0]

	if header.Size > service.MaxImageSize {
		return models.ImageUpload{}, service.ErrImageTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return models.ImageUpload{}, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.ImageUpload{}, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}

	width, err := parseDimension(r.FormValue("width"))
	if err != nil {
		return models.ImageUpload{}, err
	}
	height, err := parseDimension(r.FormValue("height"))
	if err != nil {
		return models.ImageUpload{}, err
	}

	return models.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
		Folder:      r.FormValue("folder"),
		PreviousKey: r.FormValue("previous_key"),
		Width:       width,
		Height:      height,
	}, nil
}

// parseDimension accepts an empty value as "no constraint".
func parseDimension(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDimensions, raw)
	}
	return v, nil
}
