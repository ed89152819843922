//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"time"

	"match-gateway/domain"
	"match-gateway/domain/event"

	"github.com/google/uuid"
)

// EventSink is the outbound side of one live connection. Deliver must not
// block the caller for unbounded time; Close synchronously stops further
// delivery and asynchronously triggers the disconnect path.
type EventSink interface {
	Deliver(ctx context.Context, e event.Envelope) error
	Close(reason domain.CloseReason)
}

// ITokenValidator is the external authentication collaborator.
type ITokenValidator interface {
	Validate(token string) (domain.Identity, error)
}

// IChatDirectory resolves chat membership, owned by the persistence collaborator.
type IChatDirectory interface {
	ChatByID(ctx context.Context, id domain.ChatID) (domain.Chat, error)
	ChatByUsers(ctx context.Context, a, b domain.UserID) (domain.Chat, error)
	ChatsForUser(ctx context.Context, userID domain.UserID) ([]domain.Chat, error)
	PeersForUser(ctx context.Context, userID domain.UserID) ([]domain.UserID, error)
}

// IMessageStore is the durable message collaborator. Ownership rules live
// here: Edit and Delete refuse callers that are not the original sender.
type IMessageStore interface {
	Create(ctx context.Context, chatID domain.ChatID, sender, receiver domain.UserID, content string) (domain.Message, error)
	Edit(ctx context.Context, sender domain.UserID, messageID uuid.UUID, content string) (domain.Message, error)
	Delete(ctx context.Context, sender domain.UserID, messageID uuid.UUID) (domain.Message, error)
	MarkRead(ctx context.Context, chatID domain.ChatID, reader domain.UserID) error
	Page(ctx context.Context, chatID domain.ChatID, before *time.Time) ([]domain.Message, error)
}

// IRegistry is the session directory: at most one sink per user at any
// instant. Register closes a superseded sink with CloseNewSignIn before the
// new one becomes observable.
type IRegistry interface {
	Register(userID domain.UserID, sink EventSink)
	Unregister(userID domain.UserID, sink EventSink) bool
	Find(userID domain.UserID) (EventSink, bool)
	Snapshot() map[domain.UserID]EventSink
}

// IPresence fans events out to a user's chat peers.
type IPresence interface {
	NotifyPeers(ctx context.Context, origin domain.UserID, peers []domain.UserID, e event.Envelope)
	OnlineSnapshot(peers []domain.UserID) []domain.UserID
}

// ICallCoordinator drives the per-chat signaling state machine. Methods
// deliver their success notifications themselves and return sentinel errors
// for the dispatch layer to translate into client events.
type ICallCoordinator interface {
	CallEnter(ctx context.Context, caller domain.UserID, chatID domain.ChatID) error
	Answer(ctx context.Context, caller domain.UserID, chatID domain.ChatID) error
	Reject(ctx context.Context, caller domain.UserID, chatID domain.ChatID) error
	End(ctx context.Context, caller domain.UserID, chatID domain.ChatID) error
	RelayOffer(ctx context.Context, caller domain.UserID, chatID domain.ChatID, offer []byte) error
	RelayAnswer(ctx context.Context, caller domain.UserID, chatID domain.ChatID, answer []byte) error
	RelayCandidate(ctx context.Context, caller domain.UserID, chatID domain.ChatID, candidate []byte) error
	DisconnectSweep(ctx context.Context, userID domain.UserID)
}

// IMessageRelay orchestrates store mutations and live delivery.
type IMessageRelay interface {
	Send(ctx context.Context, sender, receiver domain.UserID, content string) (domain.Message, error)
	Edit(ctx context.Context, sender domain.UserID, messageID uuid.UUID, content string) (domain.Message, error)
	Delete(ctx context.Context, sender domain.UserID, messageID uuid.UUID) (domain.Message, error)
	MarkRead(ctx context.Context, reader domain.UserID, chatID domain.ChatID) error
	Page(ctx context.Context, requester domain.UserID, chatID domain.ChatID, before *time.Time) ([]domain.Message, error)
}
