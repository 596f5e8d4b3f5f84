package http

import (
	"sync"
	"time"

	"pedidos/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// sessionCookie is the cookie carrying the session token.
const sessionCookie = "session"

// sessionTTL bounds how long a login stays valid without re-authenticating.
const sessionTTL = 8 * time.Hour

type session struct {
	user      user.User
	expiresAt time.Time
}

// sessionStore keeps logged-in sessions in memory, keyed by an opaque token.
// Expired sessions are dropped lazily on lookup.
type sessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]session
	now      func() time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:      ttl,
		sessions: make(map[string]session),
		now:      time.Now,
	}
}

// Create registers a new session for the user and returns its token.
func (s *sessionStore) Create(u user.User) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session{user: u, expiresAt: s.now().Add(s.ttl)}
	return token
}

// Get resolves a token to its user. Expired or unknown tokens report false.
func (s *sessionStore) Get(token string) (user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return user.User{}, false
	}
	if s.now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return user.User{}, false
	}
	return sess.user, true
}

// Delete drops a session. Unknown tokens are a no-op.
func (s *sessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
