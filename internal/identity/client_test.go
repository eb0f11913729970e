package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elecmate/signup-recovery/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.IdentityConfig{
		BaseURL:        srv.URL,
		ServiceKey:     "service-key",
		TimeoutSeconds: 5,
	})
}

func TestVerify(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("apikey") != "service-key" {
			t.Error("missing apikey header")
		}
		switch r.Header.Get("Authorization") {
		case "Bearer good-token":
			w.Write([]byte(`{"id":"user-1","email":"admin@elec-mate.com"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	})

	id, err := client.Verify(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if id != "user-1" {
		t.Errorf("Verify() = %q, want user-1", id)
	}

	if _, err := client.Verify(context.Background(), "bad-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(bad) error = %v, want ErrInvalidToken", err)
	}
	if _, err := client.Verify(context.Background(), ""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(empty) error = %v, want ErrInvalidToken", err)
	}
}

func TestEmail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer service-key" {
			t.Errorf("lookup not authorized with service key: %q", r.Header.Get("Authorization"))
		}
		switch r.URL.Path {
		case "/auth/v1/admin/users/u1":
			w.Write([]byte(`{"id":"u1","email":"dave@example.com"}`))
		case "/auth/v1/admin/users/u2":
			w.Write([]byte(`{"id":"u2","email":""}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	email, err := client.Email(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Email(u1) error: %v", err)
	}
	if email != "dave@example.com" {
		t.Errorf("Email(u1) = %q", email)
	}

	if _, err := client.Email(context.Background(), "u2"); !errors.Is(err, ErrNoEmail) {
		t.Errorf("Email(u2) error = %v, want ErrNoEmail (blank address)", err)
	}
	if _, err := client.Email(context.Background(), "missing"); !errors.Is(err, ErrNoEmail) {
		t.Errorf("Email(missing) error = %v, want ErrNoEmail", err)
	}
}

func TestEmailsSkipsUnresolvable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/admin/users/u1":
			w.Write([]byte(`{"email":"one@example.com"}`))
		case "/auth/v1/admin/users/u3":
			w.Write([]byte(`{"email":"three@example.com"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	got, err := client.Emails(context.Background(), []string{"u1", "u2", "u3"})
	if err != nil {
		t.Fatalf("Emails() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Emails() returned %d entries, want 2", len(got))
	}
	if got["u1"] != "one@example.com" || got["u3"] != "three@example.com" {
		t.Errorf("Emails() = %v", got)
	}
	if _, ok := got["u2"]; ok {
		t.Error("unresolvable id u2 should be absent from the map")
	}
}

func TestEmailsAbortsOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(config.IdentityConfig{
		BaseURL: srv.URL, ServiceKey: "k", TimeoutSeconds: 1,
	})
	srv.Close() // connection refused from here on

	if _, err := client.Emails(context.Background(), []string{"u1"}); err == nil {
		t.Error("Emails() should fail when the identity store is unreachable")
	}
}

func TestVerifyServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := client.Verify(context.Background(), "token")
	if err == nil || errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() on 500 should be a distinct error, got %v", err)
	}
}
