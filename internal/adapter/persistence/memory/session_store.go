package memory

import (
	"context"
	"sync"
	"time"

	"engenharia_os/internal/domain/entities"
	"engenharia_os/internal/usecase/interfaces"
)

// SessionStore keeps edit sessions in process memory. Sessions idle for
// longer than ttl are dropped on access and reported to the OnEvict hook.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	onEvict  func(id string)
	sessions map[string]entities.EditSession
}

var _ interfaces.ISessionStore = (*SessionStore)(nil)

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]entities.EditSession),
	}
}

// OnEvict registers fn to be called, outside the store lock, with the id of
// every session dropped by the idle timeout.
func (s *SessionStore) OnEvict(fn func(id string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = fn
}

func (s *SessionStore) Get(_ context.Context, id string) (entities.EditSession, error) {
	s.mu.Lock()
	expired := s.evictExpiredLocked()
	sess, ok := s.sessions[id]
	hook := s.onEvict
	s.mu.Unlock()

	if hook != nil {
		for _, eid := range expired {
			hook(eid)
		}
	}
	if !ok {
		return entities.EditSession{}, interfaces.ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionStore) Save(_ context.Context, sess entities.EditSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) evictExpiredLocked() []string {
	if s.ttl <= 0 {
		return nil
	}
	var expired []string
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			expired = append(expired, id)
		}
	}
	return expired
}
