package bot

import (
	"sync"

	"github.com/lfmorais/nara/backend/internal/model/bot"
)

// SessionRegistry maps chat identities to their current session. Entries
// are replaced wholesale on every inbound message and never swept;
// staleness is evaluated lazily by the engine.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]bot.ChatSession
}

// NewSessionRegistry returns an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]bot.ChatSession)}
}

// FindByIdentity returns the session for an identity, if any.
func (r *SessionRegistry) FindByIdentity(identity string) (bot.ChatSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[identity]
	return session, ok
}

// Upsert stores the session, replacing any prior entry for its identity.
func (r *SessionRegistry) Upsert(session bot.ChatSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.Identity] = session
}

// ListAll returns a snapshot of every known session.
func (r *SessionRegistry) ListAll() []bot.ChatSession {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sessions := make([]bot.ChatSession, 0, len(r.sessions))
	for _, session := range r.sessions {
		sessions = append(sessions, session)
	}
	return sessions
}

// DraftRegistry maps chat identities to their in-progress registration.
type DraftRegistry struct {
	mu     sync.RWMutex
	drafts map[string]bot.TagDraft
}

// NewDraftRegistry returns an empty registry.
func NewDraftRegistry() *DraftRegistry {
	return &DraftRegistry{drafts: make(map[string]bot.TagDraft)}
}

// FindByIdentity returns the draft for an identity, if any.
func (r *DraftRegistry) FindByIdentity(identity string) (bot.TagDraft, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	draft, ok := r.drafts[identity]
	return draft, ok
}

// Upsert stores the draft, replacing any prior entry for its identity.
func (r *DraftRegistry) Upsert(draft bot.TagDraft) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[draft.Identity] = draft
}

// Remove discards the draft for an identity. Removing an absent draft
// is a no-op.
func (r *DraftRegistry) Remove(identity string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, identity)
}

// identityLocks serializes message handling per chat identity. Messages
// from different identities may run concurrently; two messages from the
// same identity must not, since session and draft updates are
// read-modify-write.
type identityLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newIdentityLocks() *identityLocks {
	return &identityLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for an identity and returns its unlock func.
func (l *identityLocks) acquire(identity string) func() {
	l.mu.Lock()
	lock, ok := l.locks[identity]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[identity] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
