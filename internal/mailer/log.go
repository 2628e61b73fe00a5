package mailer

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer logs messages instead of sending them. Used in development when
// no transport API key is configured, so the dispatch path stays exercisable
// without credentials.
type LogMailer struct {
	log *zap.Logger
}

// NewLogMailer creates a log-only mailer.
func NewLogMailer(log *zap.Logger) *LogMailer {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogMailer{log: log}
}

// Send logs the message and reports success.
func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.log.Info("email (not sent, no transport configured)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("attachments", len(msg.Attachments)))
	return nil
}

var _ Mailer = (*LogMailer)(nil)
