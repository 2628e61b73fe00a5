package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestResendMailerSend(t *testing.T) {
	var got Message
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer srv.Close()

	m := NewResendMailer("re_test_key", 5*time.Second, nil)
	m.SetBaseURL(srv.URL)

	msg := Message{
		From:    "Portal <portal@example.com>",
		To:      "vendor@example.com",
		Subject: "New RFQ from Acme",
		HTML:    "<h2>New Request for Quote</h2>",
		Attachments: []Attachment{
			{Filename: "RFQ_Acme_2026-03-10.pdf", ContentB64: "JVBERi0="},
		},
	}
	if err := m.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if gotAuth != "Bearer re_test_key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if got.To != msg.To || got.Subject != msg.Subject {
		t.Errorf("payload = %+v", got)
	}
	if len(got.Attachments) != 1 || got.Attachments[0].Filename != "RFQ_Acme_2026-03-10.pdf" {
		t.Errorf("attachments = %+v", got.Attachments)
	}
}

func TestResendMailerSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Invalid from address"}`))
	}))
	defer srv.Close()

	m := NewResendMailer("re_test_key", 5*time.Second, nil)
	m.SetBaseURL(srv.URL)

	err := m.Send(context.Background(), Message{To: "x@example.com"})
	if err == nil {
		t.Fatal("expected error from API failure")
	}
	if !strings.Contains(err.Error(), "Invalid from address") {
		t.Errorf("error must carry the API message, got %v", err)
	}
}

func TestResendMailerSendTransportError(t *testing.T) {
	m := NewResendMailer("re_test_key", 500*time.Millisecond, nil)
	m.SetBaseURL("http://127.0.0.1:1")

	if err := m.Send(context.Background(), Message{To: "x@example.com"}); err == nil {
		t.Fatal("expected error for unreachable endpoint")
	}
}
