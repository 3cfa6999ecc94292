package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/invoke-consulting/hours-system/internal/core/domain"
	"github.com/invoke-consulting/hours-system/internal/metrics"
)

// Store is the two-backend session policy: rememberMe selects the durable
// area, otherwise the volatile one. Saving always clears the opposite area
// first, so a stale record can never linger after an identity change.
type Store struct {
	durable  Backend
	volatile Backend
	log      zerolog.Logger

	// now is swapped in tests to age records artificially.
	now func() time.Time
}

func NewStore(durable, volatile Backend, log zerolog.Logger) *Store {
	return &Store{
		durable:  durable,
		volatile: volatile,
		log:      log,
		now:      time.Now,
	}
}

// Save writes a fresh session record for user into the area selected by
// rememberMe. The previous record, wherever it lives, is removed first.
func (s *Store) Save(ctx context.Context, user *domain.AuthenticatedUser, rememberMe bool) error {
	record := domain.SessionRecord{
		User:       user,
		Timestamp:  s.now().UTC(),
		RememberMe: rememberMe,
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	target, other := s.volatile, s.durable
	if rememberMe {
		target, other = s.durable, s.volatile
	}
	if err := other.Delete(ctx); err != nil {
		return fmt.Errorf("clear previous session: %w", err)
	}
	if err := target.Write(ctx, data); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	s.log.Debug().Str("email", user.Email).Bool("remember_me", rememberMe).Msg("session saved")
	return nil
}

// Load returns the stored user, durable area first. An expired record is
// deleted from both areas; an unreadable record counts as no session rather
// than an error, so the next login self-heals the storage.
func (s *Store) Load(ctx context.Context) (*domain.AuthenticatedUser, error) {
	for _, backend := range []Backend{s.durable, s.volatile} {
		data, err := backend.Read(ctx)
		if err != nil {
			return nil, fmt.Errorf("read session: %w", err)
		}
		if data == nil {
			continue
		}

		var record domain.SessionRecord
		if err := json.Unmarshal(data, &record); err != nil || record.User == nil {
			metrics.SessionReadsTotal.WithLabelValues("corrupt").Inc()
			s.log.Warn().Err(err).Msg("discarding unreadable session record")
			continue
		}

		if record.Expired(s.now()) {
			metrics.SessionReadsTotal.WithLabelValues("expired").Inc()
			s.log.Info().Time("saved_at", record.Timestamp).Msg("session expired")
			if err := s.Clear(ctx); err != nil {
				return nil, err
			}
			return nil, nil
		}

		metrics.SessionReadsTotal.WithLabelValues("hit").Inc()
		return record.User, nil
	}

	metrics.SessionReadsTotal.WithLabelValues("miss").Inc()
	return nil, nil
}

// Clear removes the session record from both areas unconditionally.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.durable.Delete(ctx); err != nil {
		return fmt.Errorf("clear durable session: %w", err)
	}
	if err := s.volatile.Delete(ctx); err != nil {
		return fmt.Errorf("clear volatile session: %w", err)
	}
	return nil
}

// Token returns the live session's bearer token, or "" when there is none.
func (s *Store) Token(ctx context.Context) string {
	user, err := s.Load(ctx)
	if err != nil || user == nil {
		return ""
	}
	return user.Token
}
