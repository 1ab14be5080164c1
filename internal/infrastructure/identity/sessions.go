package identity

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"boq_service/internal/usecase/interfaces"
)

type session struct {
	email   string
	expires time.Time
}

// SessionStore keeps signed-in identities in memory, keyed by an opaque
// bearer token carried in a cookie. Looking a token up replays the current
// identity; deleting it is sign-out. Expired sessions are swept lazily on
// access.

type SessionStore struct {
	ttl    time.Duration
	lastGC time.Time

	mu       sync.Mutex
	sessions map[string]session
}

var _ interfaces.ISessionStore = (*SessionStore)(nil)

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: map[string]session{},
		ttl:      ttl,
		lastGC:   time.Now().UTC(),
	}
}

func (s *SessionStore) Create(email string) string {
	token := uuid.NewString()
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gcLocked(now)
	s.sessions[token] = session{email: email, expires: now.Add(s.ttl)}
	return token
}

func (s *SessionStore) Lookup(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gcLocked(now)
	sess, ok := s.sessions[token]
	if !ok || now.After(sess.expires) {
		return "", false
	}
	return sess.email, true
}

func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *SessionStore) gcLocked(now time.Time) {
	if now.Sub(s.lastGC) < time.Minute {
		return
	}
	for t, sess := range s.sessions {
		if now.After(sess.expires) {
			delete(s.sessions, t)
		}
	}
	s.lastGC = now
}
