package domain

import "time"

// SessionTTL is the maximum age of a persisted session. Expiry is detected
// lazily, on the next load.
const SessionTTL = 24 * time.Hour

// SessionKey is the storage key under which the single session record lives,
// shared by every storage backend.
const SessionKey = "invoke_auth"

// SessionRecord is the persisted envelope around an authenticated user.
// At most one record exists at a time, in exactly one storage backend.
type SessionRecord struct {
	User       *AuthenticatedUser `json:"user"`
	Timestamp  time.Time          `json:"timestamp"`
	RememberMe bool               `json:"rememberMe"`
}

// Expired reports whether the record is older than SessionTTL at now.
func (r *SessionRecord) Expired(now time.Time) bool {
	return now.Sub(r.Timestamp) > SessionTTL
}
