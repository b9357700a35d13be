// Package auth holds the session principal, the session cookie codec, and
// the access policy gating the HTTP surface.
package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"clanPortal/models"
)

// Principal is the identity attached to a session: a snapshot of the user
// record taken at login. Role changes to the underlying account do not
// propagate to sessions already issued; a promotion takes effect at the
// next login.
type Principal struct {
	Username string
	Role     models.Role
}

type session struct {
	principal Principal
	expiresAt time.Time // zero means no expiry
}

// SessionManager keeps sessions in a process-local guarded map, keyed by an
// opaque identifier. Sessions do not survive a restart; that is the accepted
// lifecycle of the portal.
type SessionManager struct {
	ttl time.Duration

	mu       sync.RWMutex
	sessions map[string]session
}

// NewSessionManager returns an empty manager. A zero ttl means sessions
// never expire on their own.
func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{ttl: ttl, sessions: make(map[string]session)}
}

// Create issues a new opaque session id for the principal.
func (m *SessionManager) Create(p Principal) string {
	id := uuid.NewString()
	var exp time.Time
	if m.ttl > 0 {
		exp = time.Now().Add(m.ttl)
	}
	m.mu.Lock()
	m.sessions[id] = session{principal: p, expiresAt: exp}
	m.mu.Unlock()
	return id
}

// Get returns the principal for id if the session exists and has not
// expired. Expired sessions are pruned on access.
func (m *SessionManager) Get(id string) (Principal, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return Principal{}, false
	}
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		m.Destroy(id)
		return Principal{}, false
	}
	return s.principal, true
}

// Destroy removes the session, if present.
func (m *SessionManager) Destroy(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len reports the number of live entries, including not-yet-pruned expired
// ones. Test hook.
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
