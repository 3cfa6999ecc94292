// Package credentials implements the demo credential table: a fixed set of
// accounts authenticated locally, without touching the backend. Intended for
// demos and acceptance environments only.
package credentials

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/invoke-consulting/hours-system/internal/core/domain"
)

const demoTokenTTL = 24 * time.Hour

// Seed is one demo account definition. Passwords are supplied in clear and
// hashed when the store is built, so no digest lives in source control.
type Seed struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// DefaultSeeds returns the reference demo accounts: two administrators and
// two consultants.
func DefaultSeeds() []Seed {
	return []Seed{
		{ID: "1", Name: "Administrador Demo", Email: "admin@demo.com", Password: "admin123", Role: domain.RoleAdministrator},
		{ID: "2", Name: "Ana García", Email: "ana.garcia@invoke.com", Password: "Invoke2024!", Role: domain.RoleAdministrator},
		{ID: "3", Name: "Consultor Demo", Email: "consultor@demo.com", Password: "consultor123", Role: domain.RoleConsultant},
		{ID: "4", Name: "Juan Pérez", Email: "juan.perez@invoke.com", Password: "Consultor2024!", Role: domain.RoleConsultant},
	}
}

type entry struct {
	passwordHash []byte
	profile      domain.AuthenticatedUser
}

// StaticStore is a read-only credential table keyed by exact, case-sensitive
// email. It satisfies ports.CredentialStore.
type StaticStore struct {
	entries map[string]entry
	secret  string
}

// NewStaticStore builds the table from seeds, hashing each password. secret
// signs the short-lived demo tokens handed to authenticated demo users.
func NewStaticStore(seeds []Seed, secret string) (*StaticStore, error) {
	entries := make(map[string]entry, len(seeds))
	for _, seed := range seeds {
		if seed.Role.ID() == 0 {
			return nil, fmt.Errorf("seed %s: %w", seed.Email, domain.ErrInvalidRole)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash seed password for %s: %w", seed.Email, err)
		}
		entries[seed.Email] = entry{
			passwordHash: hash,
			profile: domain.AuthenticatedUser{
				ID:     seed.ID,
				Name:   seed.Name,
				Email:  seed.Email,
				Role:   seed.Role,
				RoleID: seed.Role.ID(),
			},
		}
	}
	return &StaticStore{entries: entries, secret: secret}, nil
}

// Contains reports whether email is a demo account.
func (s *StaticStore) Contains(email string) bool {
	_, ok := s.entries[email]
	return ok
}

// Authenticate verifies the password for a demo account and returns a user
// built from its profile template, carrying a freshly minted token. The
// caller fills in lastLoginTimestamp and authSource.
func (s *StaticStore) Authenticate(email, password string) (*domain.AuthenticatedUser, error) {
	e, ok := s.entries[email]
	if !ok {
		return nil, fmt.Errorf("unknown demo account: %w", domain.ErrInvalidCredentials)
	}
	if bcrypt.CompareHashAndPassword(e.passwordHash, []byte(password)) != nil {
		return nil, fmt.Errorf("invalid demo credentials: %w", domain.ErrInvalidCredentials)
	}

	token, err := s.mintToken(&e.profile)
	if err != nil {
		return nil, err
	}

	user := e.profile
	user.Token = token
	return &user, nil
}

func (s *StaticStore) mintToken(profile *domain.AuthenticatedUser) (string, error) {
	claims := jwt.MapClaims{
		"sub":    profile.ID,
		"email":  profile.Email,
		"role":   string(profile.Role),
		"roleId": profile.RoleID,
		"demo":   true,
		"exp":    time.Now().Add(demoTokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}
