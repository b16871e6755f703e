package storage

import (
	"errors"
)

// ErrSessionActive is returned when claiming a session slot that is taken
var ErrSessionActive = errors.New("session already active")

// SessionStore maps each username to at most one active session token.
// The one-slot-per-key structure is the whole single-device guarantee:
// a token is live only while it equals the stored value for its username,
// so releasing or replacing the slot invalidates it with no revocation
// list needed.
type SessionStore struct {
	tokens *keyedStore[string]
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{tokens: newKeyedStore[string]()}
}

// Claim registers token as the active session for username. The check and
// set are atomic; if a session is already active the claim fails and the
// existing token is untouched, so concurrent logins race for one winner.
func (s *SessionStore) Claim(username, token string) error {
	var err error
	s.tokens.update(username, func(existing string, ok bool) (string, bool) {
		if ok {
			err = ErrSessionActive
			return existing, true
		}
		return token, true
	})
	return err
}

// Token returns the currently active token for username, if any
func (s *SessionStore) Token(username string) (string, bool) {
	return s.tokens.get(username)
}

// Release removes the active session for username. Releasing a username
// with no session is a no-op.
func (s *SessionStore) Release(username string) {
	s.tokens.update(username, func(_ string, _ bool) (string, bool) {
		return "", false
	})
}

// Active returns the number of currently active sessions
func (s *SessionStore) Active() int {
	return s.tokens.size()
}
