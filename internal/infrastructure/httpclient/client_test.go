package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/invoke-consulting/hours-system/internal/core/domain"
)

type stubSessions struct {
	token string
}

func (s *stubSessions) Save(context.Context, *domain.AuthenticatedUser, bool) error { return nil }
func (s *stubSessions) Load(context.Context) (*domain.AuthenticatedUser, error)     { return nil, nil }
func (s *stubSessions) Clear(context.Context) error                                 { return nil }
func (s *stubSessions) Token(context.Context) string                                { return s.token }

func captureServer(t *testing.T, got *http.Header) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Do_AttachesBearerToken(t *testing.T) {
	var got http.Header
	srv := captureServer(t, &got)
	client := New(&stubSessions{token: "tkn-123"}, nil)

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	resp.Body.Close()

	if auth := got.Get("Authorization"); auth != "Bearer tkn-123" {
		t.Fatalf("unexpected Authorization header: %q", auth)
	}
	if ct := got.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected Content-Type: %q", ct)
	}
}

func TestClient_Do_NoSessionSendsEmptyBearer(t *testing.T) {
	var got http.Header
	srv := captureServer(t, &got)
	client := New(&stubSessions{}, nil)

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do must not fail without a session, got %v", err)
	}
	resp.Body.Close()

	if auth := got.Get("Authorization"); auth != "Bearer " {
		t.Fatalf("expected empty bearer value, got %q", auth)
	}
}

func TestClient_Do_MergesCallerHeaders(t *testing.T) {
	var got http.Header
	srv := captureServer(t, &got)
	client := New(&stubSessions{token: "tkn"}, nil)

	req, _ := http.NewRequest(http.MethodPost, srv.URL, nil)
	req.Header.Set("X-Request-ID", "req-9")
	// The two injected headers win on conflict.
	req.Header.Set("Authorization", "Bearer stale")
	req.Header.Set("Content-Type", "text/plain")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	resp.Body.Close()

	if v := got.Get("X-Request-ID"); v != "req-9" {
		t.Fatalf("caller header dropped, got %q", v)
	}
	if auth := got.Get("Authorization"); auth != "Bearer tkn" {
		t.Fatalf("expected injected token to win, got %q", auth)
	}
	if ct := got.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected injected content type to win, got %q", ct)
	}
}

func TestClient_Do_TransportErrorsPropagate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := New(&stubSessions{token: "tkn"}, nil)
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	if _, err := client.Do(req); err == nil {
		t.Fatalf("expected transport error to propagate")
	}
}
