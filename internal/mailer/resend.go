package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const resendBaseURL = "https://api.resend.com"

// ResendMailer sends email through the Resend HTTP API.
type ResendMailer struct {
	client *resty.Client
	log    *zap.Logger
}

// NewResendMailer creates a configured Resend client.
func NewResendMailer(apiKey string, timeout time.Duration, log *zap.Logger) *ResendMailer {
	if log == nil {
		log = zap.NewNop()
	}
	client := resty.New().
		SetBaseURL(resendBaseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &ResendMailer{client: client, log: log}
}

// SetBaseURL overrides the API endpoint. Tests point it at a local server.
func (m *ResendMailer) SetBaseURL(url string) {
	m.client.SetBaseURL(url)
}

type sendResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Send posts the message to the Resend /emails endpoint.
func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	var out sendResponse
	var apiErr errorResponse

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(msg).
		SetResult(&out).
		SetError(&apiErr).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	if resp.IsError() {
		if apiErr.Message != "" {
			return fmt.Errorf("resend: %s (status %d)", apiErr.Message, resp.StatusCode())
		}
		return fmt.Errorf("resend: unexpected status %d", resp.StatusCode())
	}

	m.log.Info("email dispatched",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("message_id", out.ID))
	return nil
}

var _ Mailer = (*ResendMailer)(nil)
