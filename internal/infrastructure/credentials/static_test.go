package credentials

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/invoke-consulting/hours-system/internal/core/domain"
)

func newTestStore(t *testing.T) *StaticStore {
	t.Helper()
	store, err := NewStaticStore(DefaultSeeds(), "test-secret")
	if err != nil {
		t.Fatalf("NewStaticStore returned error: %v", err)
	}
	return store
}

func TestStaticStore_Contains_ExactMatch(t *testing.T) {
	store := newTestStore(t)

	if !store.Contains("admin@demo.com") {
		t.Fatalf("expected admin@demo.com to be present")
	}
	// The lookup is case-sensitive by design.
	if store.Contains("Admin@demo.com") {
		t.Fatalf("expected case-sensitive lookup to miss")
	}
	if store.Contains("ghost@demo.com") {
		t.Fatalf("expected unknown email to miss")
	}
}

func TestStaticStore_Authenticate_Success(t *testing.T) {
	store := newTestStore(t)

	user, err := store.Authenticate("admin@demo.com", "admin123")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user.Role != domain.RoleAdministrator || user.RoleID != 2 {
		t.Fatalf("unexpected role: %s/%d", user.Role, user.RoleID)
	}
	if user.Name != "Administrador Demo" || user.Email != "admin@demo.com" {
		t.Fatalf("unexpected profile: %+v", user)
	}
	// The facade owns these two fields.
	if user.AuthSource != "" || !user.LastLoginAt.IsZero() {
		t.Fatalf("template must not carry authSource or lastLogin: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(user.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("demo token invalid: %v", err)
	}
	if claims["role"] != string(domain.RoleAdministrator) || claims["demo"] != true {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestStaticStore_Authenticate_WrongPassword(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Authenticate("admin@demo.com", "wrongpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestStaticStore_DefaultSeeds_RoleSplit(t *testing.T) {
	admins, consultants := 0, 0
	for _, seed := range DefaultSeeds() {
		switch seed.Role {
		case domain.RoleAdministrator:
			admins++
		case domain.RoleConsultant:
			consultants++
		}
	}
	if admins != 2 || consultants != 2 {
		t.Fatalf("expected 2 administrators and 2 consultants, got %d/%d", admins, consultants)
	}
}

func TestNewStaticStore_RejectsUnknownRole(t *testing.T) {
	seeds := []Seed{{ID: "9", Email: "x@y.co", Password: "pw", Role: "superadmin"}}
	if _, err := NewStaticStore(seeds, "s"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
