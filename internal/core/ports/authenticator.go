package ports

import (
	"context"

	"github.com/invoke-consulting/hours-system/internal/core/domain"
)

// Authenticator verifies credentials against the remote backend and maps its
// response into the internal user representation.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*domain.AuthenticatedUser, error)
}
