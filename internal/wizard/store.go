package wizard

import (
	"sync"
	"time"
)

// Store holds live wizard sessions in memory. Sessions are private to one
// applicant flow and are never persisted; an idle session past the TTL is
// dropped on next access.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore constructs a session store. A non-positive ttl disables expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (st *Store) put(sess *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[sess.ID] = sess
}

func (st *Store) get(id string) (*Session, error) {
	now := st.now()
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.mu.Lock()
	expired := st.ttl > 0 && now.Sub(sess.UpdatedAt) > st.ttl
	if !expired {
		sess.UpdatedAt = now
	}
	sess.mu.Unlock()
	if expired {
		delete(st.sessions, id)
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (st *Store) delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
