// Package backendstub emulates the INVOKE backend's login endpoint. The real
// backend is an external collaborator of this module; the stub gives the
// remote authenticator something to talk to in tests and local development.
package backendstub

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// User is one account known to the stub. Passwords are compared in clear;
// the stub holds throwaway fixtures, not real credentials.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// Server serves POST /api/users/login with the backend's wire shape.
type Server struct {
	echo   *echo.Echo
	secret string
	users  map[string]User
}

func New(secret string, users ...User) *Server {
	byEmail := make(map[string]User, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}

	s := &Server{secret: secret, users: byEmail}

	e := echo.New()
	e.HideBanner = true
	e.Validator = newValidator()
	e.POST("/api/users/login", s.login)
	s.echo = e

	return s
}

// Handler exposes the stub as an http.Handler, ready for httptest.NewServer.
func (s *Server) Handler() http.Handler {
	return s.echo
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User  userPayload `json:"user"`
	Token string      `json:"token"`
}

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	user, ok := s.users[req.Email]
	if !ok || user.Password != req.Password {
		return c.JSON(http.StatusUnauthorized, errorResponse{Message: "invalid email or password"})
	}

	token, err := s.mintToken(user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "token signing failed"})
	}

	return c.JSON(http.StatusOK, loginResponse{
		User: userPayload{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
		Token: token,
	})
}

func (s *Server) mintToken(user User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}
