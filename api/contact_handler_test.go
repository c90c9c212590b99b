package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	messageID string
	err       error
	calls     int

	lastName  string
	lastEmail string
}

func (m *fakeMailer) SendContactMessage(fromName, fromEmail, message string) (string, error) {
	m.calls++
	m.lastName = fromName
	m.lastEmail = fromEmail
	return m.messageID, m.err
}

func TestSendContactMessage(t *testing.T) {
	t.Run("sends the message and returns the provider id", func(t *testing.T) {
		mailer := &fakeMailer{messageID: "msg-123"}
		handler := newContactHandler(mailer)

		body := `{"from_name":"Ana","from_email":"ana@example.com","message":"hi there"}`
		w := httptest.NewRecorder()
		handler.sendMessage()(w, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, true, got["success"])
		assert.Equal(t, "msg-123", got["messageId"])
		assert.Equal(t, "Ana", mailer.lastName)
		assert.Equal(t, "ana@example.com", mailer.lastEmail)
	})

	t.Run("rejects missing fields without sending", func(t *testing.T) {
		for _, body := range []string{
			`{"from_email":"a@b.c","message":"m"}`,
			`{"from_name":"Ana","message":"m"}`,
			`{"from_name":"Ana","from_email":"a@b.c"}`,
		} {
			mailer := &fakeMailer{}
			handler := newContactHandler(mailer)

			w := httptest.NewRecorder()
			handler.sendMessage()(w, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))

			assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
			assert.Equal(t, 0, mailer.calls)
		}
	})

	t.Run("maps delivery failures to a generic 500", func(t *testing.T) {
		handler := newContactHandler(&fakeMailer{err: assert.AnError})

		body := `{"from_name":"Ana","from_email":"ana@example.com","message":"hi"}`
		w := httptest.NewRecorder()
		handler.sendMessage()(w, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}
