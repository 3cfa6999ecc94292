package ports

import "github.com/invoke-consulting/hours-system/internal/core/domain"

// CredentialStore is the read-only demo credential table. An email present
// here is authenticated locally and never sent to the backend, even when the
// supplied password is wrong.
type CredentialStore interface {
	// Contains reports whether email is a demo account (exact, case-sensitive).
	Contains(email string) bool
	// Authenticate verifies the password and builds a user from the stored
	// profile template. The facade fills in lastLoginTimestamp and authSource.
	Authenticate(email, password string) (*domain.AuthenticatedUser, error)
}
