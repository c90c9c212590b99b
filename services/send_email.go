package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// resendEmailRequest represents the request payload for the Resend API
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// resendEmailResponse represents the response from the Resend API
type resendEmailResponse struct {
	ID string `json:"id"`
}

// resendErrorResponse represents an error response from the Resend API
type resendErrorResponse struct {
	Message string `json:"message"`
}

// Mailer delivers contact-form messages through the Resend API.
//
// Requires:
//   - RESEND_API_KEY: the Resend API key
//   - RESEND_FROM_EMAIL: the sender address (e.g. "Site <[email protected]>")
//   - CONTACT_RECIPIENT: where contact messages land
type Mailer struct {
	apiKey    string
	from      string
	recipient string
	endpoint  string
	client    *http.Client
}

func NewMailer(apiKey, from, recipient string) *Mailer {
	return &Mailer{
		apiKey:    apiKey,
		from:      from,
		recipient: recipient,
		endpoint:  resendEndpoint,
		client:    &http.Client{},
	}
}

// SendContactMessage emails a contact-form submission to the configured
// recipient, with Reply-To set so answering reaches the submitter. Returns
// the provider's message ID.
func (m *Mailer) SendContactMessage(fromName, fromEmail, message string) (string, error) {
	if m.apiKey == "" {
		return "", fmt.Errorf("RESEND_API_KEY is not configured")
	}
	if m.from == "" {
		return "", fmt.Errorf("RESEND_FROM_EMAIL is not configured")
	}
	if m.recipient == "" {
		return "", fmt.Errorf("CONTACT_RECIPIENT is not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: Message from %s", fromName)

	htmlBody := fmt.Sprintf(`<h3>New Contact Message</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<br>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		html.EscapeString(fromName),
		html.EscapeString(fromEmail),
		strings.ReplaceAll(html.EscapeString(message), "\n", "<br>"),
	)
	textBody := fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", fromName, fromEmail, message)

	payload := resendEmailRequest{
		From:    m.from,
		To:      []string{m.recipient},
		ReplyTo: fromEmail,
		Subject: subject,
		Html:    htmlBody,
		Text:    textBody,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, m.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp resendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return "", fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return "", fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse resendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
		return "", nil
	}

	log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent contact email via Resend")
	return emailResponse.ID, nil
}
