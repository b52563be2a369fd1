package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"rental-pricing-engine/internal/domain/negotiation"
	"rental-pricing-engine/internal/pkg/errs"
	"rental-pricing-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// SessionStore keeps negotiation sessions in process memory. Every read and
// write goes through a deep copy, so callers never share state.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*negotiation.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uuid.UUID]*negotiation.Session)}
}

func (s *SessionStore) Create(_ context.Context, session *negotiation.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; exists {
		return errs.Newf("session %s already exists", session.ID)
	}
	s.sessions[session.ID] = session.Clone()
	return nil
}

func (s *SessionStore) Get(_ context.Context, id uuid.UUID) (*negotiation.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, errs.Wrapf(shared.ErrSessionNotFound, "session %s", id)
	}
	return session.Clone(), nil
}

func (s *SessionStore) Update(_ context.Context, id uuid.UUID, fn func(*negotiation.Session) error) (*negotiation.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions[id]
	if !ok {
		return nil, errs.Wrapf(shared.ErrSessionNotFound, "session %s", id)
	}
	working := current.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	s.sessions[id] = working
	return working.Clone(), nil
}

// FindActive returns the most recently updated active session for the pair.
func (s *SessionStore) FindActive(_ context.Context, equipmentID, renterID string) (*negotiation.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found *negotiation.Session
	for _, session := range s.sessions {
		if session.Status != negotiation.StatusActive || session.EquipmentID != equipmentID || session.RenterID != renterID {
			continue
		}
		if found == nil || session.UpdatedAt.After(found.UpdatedAt) {
			found = session
		}
	}
	if found == nil {
		return nil, errs.Wrapf(shared.ErrSessionNotFound, "no active session for %s/%s", equipmentID, renterID)
	}
	return found.Clone(), nil
}

func (s *SessionStore) ListIdle(_ context.Context, ttl time.Duration, now time.Time) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []uuid.UUID
	for id, session := range s.sessions {
		if session.IdleFor(ttl, now) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids, nil
}
