package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elecmate/signup-recovery/internal/config"
)

func testMessage() Message {
	return Message{
		To:        "dave@example.com",
		FromName:  "Elec-Mate",
		FromEmail: "hello@elec-mate.com",
		ReplyTo:   "support@elec-mate.com",
		Subject:   "Your Elec-Mate account is waiting for you",
		HTML:      "<html><body>Hey Dave,</body></html>",
		Tags: []Tag{
			{Name: "campaign", Value: "incomplete_signup"},
			{Name: "role", Value: "electrician"},
		},
	}
}

func TestResendSend(t *testing.T) {
	var got resendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer re_test" {
			t.Errorf("bad auth header %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Write([]byte(`{"id":"msg-123"}`))
	}))
	defer srv.Close()

	sender := NewResendSender(config.ResendConfig{
		APIKey: "re_test", BaseURL: srv.URL, TimeoutSeconds: 5,
	})

	res, err := sender.Send(context.Background(), testMessage())
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if res.MessageID != "msg-123" {
		t.Errorf("MessageID = %q, want msg-123", res.MessageID)
	}
	if got.From != "Elec-Mate <hello@elec-mate.com>" {
		t.Errorf("From = %q", got.From)
	}
	if len(got.To) != 1 || got.To[0] != "dave@example.com" {
		t.Errorf("To = %v", got.To)
	}
	if got.ReplyTo != "support@elec-mate.com" {
		t.Errorf("ReplyTo = %q", got.ReplyTo)
	}
	if len(got.Tags) != 2 || got.Tags[0].Name != "campaign" {
		t.Errorf("Tags = %v", got.Tags)
	}
}

func TestResendSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"statusCode":422,"message":"Invalid to address"}`))
	}))
	defer srv.Close()

	sender := NewResendSender(config.ResendConfig{
		APIKey: "re_test", BaseURL: srv.URL, TimeoutSeconds: 5,
	})

	res, err := sender.Send(context.Background(), testMessage())
	if err == nil {
		t.Fatal("Send() should fail on a 422 response")
	}
	if res != nil {
		t.Error("Send() must not return a result alongside an error")
	}
	if want := "Invalid to address"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q missing provider message %q", err, want)
	}
}

func TestResendSendNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	sender := NewResendSender(config.ResendConfig{
		APIKey: "re_test", BaseURL: srv.URL, TimeoutSeconds: 1,
	})
	srv.Close()

	if _, err := sender.Send(context.Background(), testMessage()); err == nil {
		t.Error("Send() should fail when the API is unreachable")
	}
}
