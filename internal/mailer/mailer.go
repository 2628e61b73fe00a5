// Package mailer delivers outbound email through an external transport.
package mailer

import "context"

// Attachment is a base64-encoded file carried by a message.
type Attachment struct {
	Filename   string `json:"filename"`
	ContentB64 string `json:"content"`
}

// Message is one outbound email.
type Message struct {
	From        string       `json:"from"`
	To          string       `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Mailer sends a single message. Implementations must return an error on any
// delivery failure; nothing is retried automatically.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
