package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Registry maps session ids to Sessions. Idle sessions expire after the TTL and
// the least recently used one is evicted once MaxSessions is reached.
type Registry struct {
	sessions *expirable.LRU[string, *Session]
	defaults Settings
	cap      int

	// create makes lookup-and-renew and GetOrCreate atomic.
	create sync.Mutex
}

// RegistryConfig configures a Registry.
type RegistryConfig struct {
	MaxSessions int
	TTL         time.Duration
	Defaults    Settings
	Cap         int
}

// NewRegistry creates a Registry. MaxSessions <= 0 means no size bound and
// TTL <= 0 means sessions never expire.
func NewRegistry(cfg RegistryConfig) *Registry {
	return &Registry{
		sessions: expirable.NewLRU[string, *Session](cfg.MaxSessions, nil, cfg.TTL),
		defaults: cfg.Defaults,
		cap:      cfg.Cap,
	}
}

// GetOrCreate returns the session for id, creating a fresh one under a new id
// when id is empty or unknown. created reports whether a new session was made.
// Finding a live session renews its TTL.
func (r *Registry) GetOrCreate(id string) (sess *Session, sessionID string, created bool) {
	r.create.Lock()
	defer r.create.Unlock()

	if s, ok := r.touch(id); ok {
		return s, id, false
	}

	// Unknown ids are never adopted, so a client cannot pick its own id.
	sessionID = uuid.NewString()
	sess = New(r.defaults, r.cap)
	r.sessions.Add(sessionID, sess)
	return sess, sessionID, true
}

// Get returns the session for id if it is still live, renewing its TTL.
func (r *Registry) Get(id string) (*Session, bool) {
	r.create.Lock()
	defer r.create.Unlock()
	return r.touch(id)
}

// touch re-adds a live session so its expiry counts from now. The LRU does
// not renew entries on read. Callers hold r.create.
func (r *Registry) touch(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	s, ok := r.sessions.Get(id)
	if !ok {
		return nil, false
	}
	r.sessions.Add(id, s)
	return s, true
}

// Delete forgets the session for id.
func (r *Registry) Delete(id string) {
	r.sessions.Remove(id)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return r.sessions.Len()
}
