package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/hazemessam/portfolio-backend/errs"
)

// adminTokenTTL bounds how long an admin session token stays valid
const adminTokenTTL = 12 * time.Hour

// authHandler verifies the admin password server-side and issues signed
// session tokens. The password never reaches the browser bundle.
type authHandler struct {
	responder    Responder
	logger       zerolog.Logger
	secret       []byte
	passwordHash string
	password     string
}

// newAuthHandler sets up admin login. passwordHash (bcrypt) is preferred;
// the plaintext password is the dev-mode fallback.
func newAuthHandler(secret, passwordHash, password string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		secret:       []byte(secret),
		passwordHash: passwordHash,
		password:     password,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// login checks the submitted password and returns a bearer token for the
// mutating admin endpoints
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		if len(h.secret) == 0 {
			h.responder.WriteError(w, errs.NewInternalError("authentication is not configured"))
			return
		}

		if !h.verifyPassword(req.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid password"))
			return
		}

		now := time.Now().UTC()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(adminTokenTTL)),
		})

		signed, err := token.SignedString(h.secret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to sign session token", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"token": signed})
	}
}

// session reports whether the caller's token is still valid; the admin
// console uses it to restore state after a reload
func (h authHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := ctxGetAdminSubject(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"authenticated": true,
			"subject":       subject,
		})
	}
}

func (h authHandler) verifyPassword(candidate string) bool {
	if h.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(candidate)) == nil
	}
	if h.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(h.password), []byte(candidate)) == 1
}
