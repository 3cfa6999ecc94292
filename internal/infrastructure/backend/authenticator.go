// Package backend talks to the remote INVOKE API: one POST to the login
// endpoint, mapped into the internal user representation at the boundary.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/invoke-consulting/hours-system/internal/core/domain"
)

const loginPath = "/api/users/login"

const defaultTimeout = 15 * time.Second

// Authenticator is the remote authentication source. It satisfies
// ports.Authenticator.
type Authenticator struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewAuthenticator builds an Authenticator for the backend at baseURL.
// A default timeout is applied when none is provided; the original web client
// had no timeout at all and would hang forever on a stuck backend.
func NewAuthenticator(baseURL string, timeout time.Duration, log zerolog.Logger) *Authenticator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Authenticator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  remoteUser `json:"user"`
	Token string     `json:"token"`
}

type remoteUser struct {
	ID    flexID `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Authenticate posts the credentials to the login endpoint. Transport
// failures and unparsable bodies map to ErrConnection, rejections to
// ErrInvalidCredentials carrying the server message, and an unrecognized
// role to ErrInvalidRole — never a partially populated user.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*domain.AuthenticatedUser, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		a.log.Warn().Err(err).Str("url", a.baseURL+loginPath).Msg("login request failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "login rejected"
		var er errorResponse
		if json.NewDecoder(resp.Body).Decode(&er) == nil && er.Message != "" {
			msg = er.Message
		}
		return nil, fmt.Errorf("%s: %w", msg, domain.ErrInvalidCredentials)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("%w: malformed login response: %v", domain.ErrConnection, err)
	}

	role, err := domain.ParseRole(lr.User.Role)
	if err != nil {
		return nil, err
	}

	return &domain.AuthenticatedUser{
		ID:          string(lr.User.ID),
		Name:        lr.User.Name,
		Email:       lr.User.Email,
		Role:        role,
		RoleID:      role.ID(),
		Token:       lr.Token,
		LastLoginAt: time.Now().UTC(),
		AuthSource:  domain.SourceBackend,
	}, nil
}

// flexID accepts either a JSON string or number, since older backend
// versions returned numeric user ids.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user id must be a string or number")
	}
	*f = flexID(strconv.FormatInt(n, 10))
	return nil
}
