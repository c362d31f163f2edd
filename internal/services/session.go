package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"cvmatch/internal/models"
)

// SessionStore keeps per-session state in memory for the lifetime of the
// process. Nothing is persisted.
type SessionStore interface {
	Create() models.Session
	Get(id uuid.UUID) (models.Session, bool)
	SetCVText(id uuid.UUID, text string) error
	SetJobText(id uuid.UUID, text string) error
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*models.Session
}

func NewSessionStore() SessionStore {
	return &sessionStore{
		sessions: make(map[uuid.UUID]*models.Session),
	}
}

func (s *sessionStore) Create() models.Session {
	now := time.Now()
	session := &models.Session{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return *session
}

// Get returns a copy; callers never share the stored value.
func (s *sessionStore) Get(id uuid.UUID) (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return models.Session{}, false
	}
	return *session, true
}

func (s *sessionStore) SetCVText(id uuid.UUID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	session.CVText = text
	session.HasCV = true
	session.UpdatedAt = time.Now()
	return nil
}

func (s *sessionStore) SetJobText(id uuid.UUID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	session.JobText = text
	session.HasJob = true
	session.UpdatedAt = time.Now()
	return nil
}
