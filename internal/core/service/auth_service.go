package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/invoke-consulting/hours-system/internal/core/domain"
	"github.com/invoke-consulting/hours-system/internal/core/ports"
	"github.com/invoke-consulting/hours-system/internal/core/validate"
	"github.com/invoke-consulting/hours-system/internal/metrics"
)

// Remote login failures are collapsed into this one message so callers
// cannot tell which emails are registered. The specific kind is only logged.
var errRemoteLogin = fmt.Errorf("verify your email and password or use the test credentials: %w", domain.ErrInvalidCredentials)

const (
	defaultDemoDelay  = 800 * time.Millisecond
	defaultResetDelay = time.Second
)

// AuthService orchestrates validation, source selection (demo table first,
// backend second), and session persistence. It implements ports.AuthService.
type AuthService struct {
	creds    ports.CredentialStore
	remote   ports.Authenticator
	sessions ports.SessionStore
	log      zerolog.Logger

	// Demo logins and password resets simulate a network round trip so the
	// caller's UX matches the backend path.
	demoDelay  time.Duration
	resetDelay time.Duration
}

func NewAuthService(creds ports.CredentialStore, remote ports.Authenticator, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{
		creds:      creds,
		remote:     remote,
		sessions:   sessions,
		log:        log,
		demoDelay:  defaultDemoDelay,
		resetDelay: defaultResetDelay,
	}
}

// Login authenticates the credentials and writes the session through on
// success. Emails present in the demo table never reach the backend, even
// with a wrong password. Concurrent logins are not serialized; the last one
// to finish owns the session.
func (s *AuthService) Login(ctx context.Context, email, password string, rememberMe bool) (*domain.AuthenticatedUser, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("none", "failure").Inc()
		return nil, domain.ErrMissingFields
	}
	if !validate.Email(email) {
		metrics.LoginsTotal.WithLabelValues("none", "failure").Inc()
		return nil, domain.ErrInvalidEmail
	}

	source := "backend"
	if s.creds.Contains(email) {
		source = "demo"
	}

	start := time.Now()
	user, err := s.authenticate(ctx, source, email, password)
	metrics.LoginDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(source, "failure").Inc()
		return nil, err
	}

	if err := s.sessions.Save(ctx, user, rememberMe); err != nil {
		metrics.LoginsTotal.WithLabelValues(source, "failure").Inc()
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues(source, "success").Inc()
	s.log.Info().
		Str("email", user.Email).
		Str("role", string(user.Role)).
		Str("source", string(user.AuthSource)).
		Msg("login succeeded")
	return user, nil
}

func (s *AuthService) authenticate(ctx context.Context, source, email, password string) (*domain.AuthenticatedUser, error) {
	if source == "demo" {
		if err := sleep(ctx, s.demoDelay); err != nil {
			return nil, err
		}
		user, err := s.creds.Authenticate(email, password)
		if err != nil {
			s.log.Warn().Str("email", email).Msg("demo login rejected")
			return nil, err
		}
		user.LastLoginAt = time.Now().UTC()
		user.AuthSource = domain.SourceDemo
		return user, nil
	}

	user, err := s.remote.Authenticate(ctx, email, password)
	if err != nil {
		// Log the real kind, surface the unified message.
		s.log.Warn().Err(err).Str("email", email).Msg("backend login failed")
		return nil, errRemoteLogin
	}
	return user, nil
}

// Logout clears the session. Idempotent: succeeds even when no session exists.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentUser returns the session's user, or (nil, nil) when none is live.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.AuthenticatedUser, error) {
	return s.sessions.Load(ctx)
}

// RequestPasswordReset validates the email shape, then always reports
// success after a fixed delay. The caller cannot distinguish registered from
// unregistered emails by timing or response shape; no reset is actually sent.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if !validate.Email(email) {
		return domain.ErrInvalidEmail
	}
	if err := sleep(ctx, s.resetDelay); err != nil {
		return err
	}
	metrics.PasswordResetsTotal.Inc()
	s.log.Info().Str("email", email).Msg("password reset requested")
	return nil
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
