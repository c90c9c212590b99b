package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hazemessam/portfolio-backend/errs"
)

// ContactMailer delivers a contact-form submission and returns the provider's
// message ID
type ContactMailer interface {
	SendContactMessage(fromName, fromEmail, message string) (string, error)
}

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	mailer    ContactMailer
}

func newContactHandler(mailer ContactMailer) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mailer:    mailer,
	}
}

type contactRequest struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Message   string `json:"message"`
}

// sendMessage forwards a contact-form submission as an email
func (h contactHandler) sendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact message", err))
			return
		}

		if req.FromName == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("from_name"))
			return
		}
		if req.FromEmail == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("from_email"))
			return
		}
		if req.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		messageID, err := h.mailer.SendContactMessage(req.FromName, req.FromEmail, req.Message)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to send message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":   true,
			"messageId": messageID,
		})
	}
}
