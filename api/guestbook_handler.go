package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/hazemessam/portfolio-backend/errs"
	"github.com/hazemessam/portfolio-backend/models"
)

// guestbookPageSize caps how many entries the public listing returns
const guestbookPageSize = 50

// GuestbookStore is the persistence surface the guestbook resource needs
type GuestbookStore interface {
	FindRecent(limit int) ([]models.GuestbookEntry, error)
	Add(entry *models.GuestbookEntry) error
	Delete(id uuid.UUID) error
}

type guestbookHandler struct {
	responder Responder
	logger    zerolog.Logger
	entries   GuestbookStore
}

func newGuestbookHandler(entries GuestbookStore) guestbookHandler {
	logger := log.With().Str("handlerName", "guestbookHandler").Logger()

	return guestbookHandler{
		responder: NewResponder(logger),
		logger:    logger,
		entries:   entries,
	}
}

type createGuestbookEntryRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Location string `json:"location"`
}

// guestbookEntryResponse is the client-facing entry shape: public id and an
// ISO-8601 created_at string
type guestbookEntryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Location  string `json:"location"`
	CreatedAt string `json:"created_at"`
}

func formatGuestbookEntry(entry models.GuestbookEntry) guestbookEntryResponse {
	return guestbookEntryResponse{
		ID:        entry.ID.String(),
		Name:      entry.Name,
		Email:     entry.Email,
		Message:   entry.Message,
		Location:  entry.Location,
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// listEntries returns up to guestbookPageSize entries, newest first
func (h guestbookHandler) listEntries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.entries.FindRecent(guestbookPageSize)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "guestbook entries", err))
			return
		}

		formatted := make([]guestbookEntryResponse, 0, len(entries))
		for _, entry := range entries {
			formatted = append(formatted, formatGuestbookEntry(entry))
		}

		h.responder.WriteJSON(w, formatted)
	}
}

// createEntry accepts a public, unauthenticated guestbook submission
func (h guestbookHandler) createEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createGuestbookEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode guestbook request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("guestbook entry", err))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if req.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if req.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		entry := models.GuestbookEntry{
			Name:      req.Name,
			Email:     req.Email,
			Message:   req.Message,
			Location:  req.Location,
			CreatedAt: time.Now().UTC(),
		}

		if err := h.entries.Add(&entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "guestbook entry", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, formatGuestbookEntry(entry))
	}
}

// deleteEntry removes one entry by the id query parameter. Admin only; the
// router gates it behind token authentication.
func (h guestbookHandler) deleteEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := r.URL.Query().Get("id")
		if idStr == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("id"))
			return
		}

		entryID, err := uuid.Parse(idStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("id", "must be a valid entry identifier"))
			return
		}

		if err := h.entries.Delete(entryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("guestbook entry not found"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("delete", "guestbook entry", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
