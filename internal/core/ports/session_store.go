package ports

import (
	"context"

	"github.com/invoke-consulting/hours-system/internal/core/domain"
)

// SessionStore persists the current authenticated identity. Implementations
// hold at most one record at a time across all their backends.
type SessionStore interface {
	Save(ctx context.Context, user *domain.AuthenticatedUser, rememberMe bool) error
	// Load returns the stored user, or (nil, nil) when no live session exists.
	// An expired or unreadable record counts as no session.
	Load(ctx context.Context) (*domain.AuthenticatedUser, error)
	Clear(ctx context.Context) error
	// Token returns the stored bearer token, or "" when no live session exists.
	Token(ctx context.Context) string
}
