package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/hazemessam/portfolio-backend/errs"
	"github.com/hazemessam/portfolio-backend/models"
)

const (
	resumeConfigKey = "resumeUrl"

	// defaultResumePath is served until an admin saves a resume URL
	defaultResumePath = "/Hazem-cv.pdf"
)

// SiteConfigStore is the persistence surface the site configuration resource needs
type SiteConfigStore interface {
	Get(key string) (*models.SiteConfig, error)
	Set(key, value string) error
}

type configHandler struct {
	responder Responder
	logger    zerolog.Logger
	config    SiteConfigStore
}

func newConfigHandler(config SiteConfigStore) configHandler {
	logger := log.With().Str("handlerName", "configHandler").Logger()

	return configHandler{
		responder: NewResponder(logger),
		logger:    logger,
		config:    config,
	}
}

type setResumeRequest struct {
	URL string `json:"url"`
}

// getResume returns the stored resume URL, or the default path before any save
func (h configHandler) getResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := h.config.Get(resumeConfigKey)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteJSON(w, map[string]any{"url": defaultResumePath})
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "resume configuration", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"url": record.Value})
	}
}

// setResume upserts the resume URL, refreshing its timestamp
func (h configHandler) setResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setResumeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode resume config request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("resume configuration", err))
			return
		}

		if req.URL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("url"))
			return
		}

		if err := h.config.Set(resumeConfigKey, req.URL); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "resume configuration", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"url":     req.URL,
		})
	}
}
