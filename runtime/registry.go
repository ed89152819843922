// Package runtime holds the gateway's shared concurrent state: the session
// directory, the presence broadcaster, and the call-session table with its
// coordinator. It contains no transport or storage logic.
package runtime

import (
	"sync"

	"match-gateway/contract"
	"match-gateway/domain"
)

// Registry is the session directory: user id -> live connection sink.
// At most one sink is registered per user at any instant.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.UserID]contract.EventSink
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[domain.UserID]contract.EventSink),
	}
}

// Register stores the mapping and always succeeds. A prior sink for the same
// user is closed with CloseNewSignIn before the new one becomes observable;
// the close triggers the evicted connection's own disconnect path, so offline
// broadcasts and call teardown still run for it.
func (r *Registry) Register(userID domain.UserID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.sessions[userID]; ok && old != sink {
		old.Close(domain.CloseNewSignIn)
	}
	r.sessions[userID] = sink
}

// Unregister removes the entry only while it still refers to the given sink.
// A stale disconnect callback from a superseded connection therefore never
// evicts the newer one. Reports whether an entry was removed.
func (r *Registry) Unregister(userID domain.UserID, sink contract.EventSink) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.sessions[userID]; ok && current == sink {
		delete(r.sessions, userID)
		return true
	}
	return false
}

// Find returns the live sink for a user, if any.
func (r *Registry) Find(userID domain.UserID) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sink, ok := r.sessions[userID]
	return sink, ok
}

// Snapshot returns a copy of the directory for scans, so callers never
// iterate the live map while it mutates.
func (r *Registry) Snapshot() map[domain.UserID]contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[domain.UserID]contract.EventSink, len(r.sessions))
	for userID, sink := range r.sessions {
		snapshot[userID] = sink
	}
	return snapshot
}
