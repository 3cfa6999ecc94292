// Package httpclient issues authenticated requests on behalf of the logged-in
// user, attaching the stored bearer token to every call.
package httpclient

import (
	"net/http"

	"github.com/invoke-consulting/hours-system/internal/core/ports"
)

// Client decorates an http.Client with the session's bearer token.
type Client struct {
	http     *http.Client
	sessions ports.SessionStore
}

// New builds a Client reading tokens from sessions. A nil httpClient falls
// back to http.DefaultClient.
func New(sessions ports.SessionStore, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient, sessions: sessions}
}

// Do sends req with Authorization and Content-Type injected. Caller-supplied
// headers are preserved; the two injected ones win on conflict. With no live
// session the bearer value is empty — the request is still sent and the
// backend decides. Transport errors propagate untranslated.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	token := c.sessions.Token(req.Context())
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}
