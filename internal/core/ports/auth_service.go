package ports

import (
	"context"

	"github.com/invoke-consulting/hours-system/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string, rememberMe bool) (*domain.AuthenticatedUser, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.AuthenticatedUser, error)
	RequestPasswordReset(ctx context.Context, email string) error
}
