package runtime

import (
	"sync"

	"match-gateway/domain"
)

// CallTable holds the active and ringing call sessions, keyed by chat id.
// A reverse index user id -> chat ids is maintained alongside, so the
// at-most-one-call-per-user check costs a map lookup instead of a scan over
// all of the user's chats. Both indexes mutate under the same lock.
//
// The table is pure state; all protocol decisions live in the Coordinator.
type CallTable struct {
	mu     sync.Mutex
	byChat map[domain.ChatID]domain.CallSession
	byUser map[domain.UserID]map[domain.ChatID]struct{}
}

func NewCallTable() *CallTable {
	return &CallTable{
		byChat: make(map[domain.ChatID]domain.CallSession),
		byUser: make(map[domain.UserID]map[domain.ChatID]struct{}),
	}
}

// Get returns the session for a chat, if one is ringing or active.
func (t *CallTable) Get(chatID domain.ChatID) (domain.CallSession, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	session, ok := t.byChat[chatID]
	return session, ok
}

// Put inserts or replaces the session for its chat and indexes both parties.
func (t *CallTable) Put(session domain.CallSession) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if old, ok := t.byChat[session.ChatID]; ok {
		t.dropIndex(old)
	}
	t.byChat[session.ChatID] = session
	t.addIndex(session)
}

// Delete removes the session for a chat from both indexes.
// It reports the removed session so callers can notify its parties.
func (t *CallTable) Delete(chatID domain.ChatID) (domain.CallSession, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	session, ok := t.byChat[chatID]
	if !ok {
		return domain.CallSession{}, false
	}
	delete(t.byChat, chatID)
	t.dropIndex(session)
	return session, true
}

// Activate transitions the chat's session to CallActive.
func (t *CallTable) Activate(chatID domain.ChatID) (domain.CallSession, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	session, ok := t.byChat[chatID]
	if !ok {
		return domain.CallSession{}, false
	}
	session.Status = domain.CallActive
	t.byChat[chatID] = session
	return session, true
}

// SessionsFor returns every session the user is a party to, via the reverse
// index. Before any accept completes a user may appear in several ringing
// sessions; after an accept the coordinator has evicted all but one.
func (t *CallTable) SessionsFor(userID domain.UserID) []domain.CallSession {
	t.mu.Lock()
	defer t.mu.Unlock()

	chats, ok := t.byUser[userID]
	if !ok {
		return nil
	}
	sessions := make([]domain.CallSession, 0, len(chats))
	for chatID := range chats {
		if session, exists := t.byChat[chatID]; exists {
			sessions = append(sessions, session)
		}
	}
	return sessions
}

// Len returns the number of live sessions.
func (t *CallTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.byChat)
}

func (t *CallTable) addIndex(session domain.CallSession) {
	for _, userID := range []domain.UserID{session.Initiator, session.Recipient} {
		if _, ok := t.byUser[userID]; !ok {
			t.byUser[userID] = make(map[domain.ChatID]struct{})
		}
		t.byUser[userID][session.ChatID] = struct{}{}
	}
}

func (t *CallTable) dropIndex(session domain.CallSession) {
	for _, userID := range []domain.UserID{session.Initiator, session.Recipient} {
		if chats, ok := t.byUser[userID]; ok {
			delete(chats, session.ChatID)
			if len(chats) == 0 {
				delete(t.byUser, userID)
			}
		}
	}
}
