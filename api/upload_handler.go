package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hazemessam/portfolio-backend/errs"
)

// maxUploadSize caps project image uploads at 10MB
const maxUploadSize = 10 << 20

// ObjectStore stores an uploaded asset and returns its public URL
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   ObjectStore
}

func newUploadHandler(storage ObjectStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

// uploadImage stores a project image and returns the URL to put in the
// project's image field
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.storage == nil {
			h.responder.WriteError(w, errs.NewInternalError("object storage is not configured"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart form", err))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		key := fmt.Sprintf("projects/%s%s", uuid.New(), filepath.Ext(header.Filename))

		url, err := h.storage.Put(r.Context(), key, contentType, file)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store upload", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, map[string]any{"url": url})
	}
}
