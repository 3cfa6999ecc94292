package app

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/invoke-consulting/hours-system/internal/core/domain"
	"github.com/invoke-consulting/hours-system/internal/pkg/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Env:           "test",
		BackendURL:    "http://127.0.0.1:1", // never reached by the demo path
		HTTPTimeout:   time.Second,
		DemoJWTSecret: "test-secret",
		Session:       config.SessionConfig{File: t.TempDir() + "/invoke_auth.json"},
	}
}

func TestApp_DemoLoginLifecycle(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := New(ctx, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer a.Close()

	user, err := a.Auth.Login(ctx, "admin@demo.com", "admin123", true)
	if err != nil {
		t.Fatalf("demo login failed: %v", err)
	}
	if user.Role != domain.RoleAdministrator || user.RoleID != 2 || user.AuthSource != domain.SourceDemo {
		t.Fatalf("unexpected demo user: %+v", user)
	}

	// rememberMe=true lands in the session file.
	if _, err := os.Stat(cfg.Session.File); err != nil {
		t.Fatalf("expected session file to exist: %v", err)
	}

	current, err := a.Auth.CurrentUser(ctx)
	if err != nil || current == nil || current.Email != "admin@demo.com" {
		t.Fatalf("unexpected current user: %+v / %v", current, err)
	}
	if token := a.Sessions.Token(ctx); token == "" {
		t.Fatalf("expected a bearer token for the live session")
	}

	if err := a.Auth.Logout(ctx); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	current, err = a.Auth.CurrentUser(ctx)
	if err != nil || current != nil {
		t.Fatalf("expected no session after logout, got %+v / %v", current, err)
	}
}
