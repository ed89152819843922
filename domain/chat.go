package domain

// ChatID identifies a durable pairing of exactly two users.
// Chats themselves are owned by the persistence collaborator.
type ChatID int

type Chat struct {
	ID    ChatID `json:"chatId"`
	User1 UserID `json:"user1Id"`
	User2 UserID `json:"user2Id"`
}

// PeerOf returns the other participant of the chat.
// The second result is false when userID is not a participant at all.
func (c Chat) PeerOf(userID UserID) (UserID, bool) {
	switch userID {
	case c.User1:
		return c.User2, true
	case c.User2:
		return c.User1, true
	default:
		return 0, false
	}
}

// HasParticipant reports whether userID is one of the two chat members.
func (c Chat) HasParticipant(userID UserID) bool {
	return userID == c.User1 || userID == c.User2
}
