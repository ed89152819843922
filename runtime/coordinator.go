package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"match-gateway/contract"
	"match-gateway/domain"
	"match-gateway/domain/event"
	apperrors "match-gateway/errors"
)

const endedStatus = "ended"

// Coordinator implements the signaling protocol on top of the CallTable:
// ringing, accept, reject, end, renegotiation relay, and the disconnect
// sweep. Compound check-then-act transitions are serialized by the
// coordinator's own mutex, so racing initiate/accept events from different
// connections resolve by whichever lands in the table first.
type Coordinator struct {
	mu       sync.Mutex
	log      *slog.Logger
	table    *CallTable
	registry contract.IRegistry
	chats    contract.IChatDirectory
}

func NewCoordinator(log *slog.Logger, table *CallTable, registry contract.IRegistry, chats contract.IChatDirectory) *Coordinator {
	return &Coordinator{log: log, table: table, registry: registry, chats: chats}
}

// CallEnter drives the chat's session out of the empty state or through the
// Ringing -> Active transition, depending on who knocks:
//
//   - no session: the caller becomes initiator of a fresh Ringing session.
//   - the initiator re-enters: the stale attempt is cancelled and redialed.
//   - the callee enters: the call is accepted, any other session the callee
//     is a party to is force-ended first.
func (c *Coordinator) CallEnter(ctx context.Context, caller domain.UserID, chatID domain.ChatID) error {
	chat, err := c.memberChat(ctx, caller, chatID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	call, ok := c.table.Get(chatID)
	if ok && call.Initiator == caller {
		c.table.Delete(chatID)
		ok = false
	}

	if !ok {
		peer, _ := chat.PeerOf(caller)
		session := domain.CallSession{
			ChatID:            chatID,
			Initiator:         caller,
			Recipient:         peer,
			Status:            domain.CallRinging,
			TimeCallInitiated: time.Now().UTC(),
		}
		c.table.Put(session)
		c.deliver(ctx, caller, event.New(event.Dialing, event.CallData{Call: session}))
		c.deliver(ctx, peer, event.New(event.CallInitiated, session))
		return nil
	}

	if call.Status == domain.CallActive {
		// Lost the accept race; the earlier answer already ran.
		return nil
	}

	c.evictOtherSessions(ctx, caller, chatID)
	session, _ := c.table.Activate(chatID)
	c.deliver(ctx, caller, event.New(event.ConnectedToCall, event.CallData{Call: session}))
	c.deliver(ctx, session.Initiator, event.New(event.RecipientAnswered, event.CallStatusData{Status: session.Status}))
	return nil
}

// Answer enforces the at-most-one-call invariant on an explicit answer
// action: every session the caller is a party to on another chat is
// force-ended, with the other party notified.
func (c *Coordinator) Answer(ctx context.Context, caller domain.UserID, chatID domain.ChatID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictOtherSessions(ctx, caller, chatID)
	return nil
}

// Reject removes a Ringing session and tells the initiator. Rejecting a
// chat with no session, or one already Active, is a no-op.
func (c *Coordinator) Reject(ctx context.Context, caller domain.UserID, chatID domain.ChatID) error {
	if _, err := c.memberChat(ctx, caller, chatID); err != nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	call, ok := c.table.Get(chatID)
	if !ok || call.Status != domain.CallRinging {
		return nil
	}
	c.table.Delete(chatID)
	c.deliver(ctx, call.Initiator, event.New(event.CallRejected, event.CallStatusData{Status: "rejected"}))
	return nil
}

// End removes the session in either state and tells the other party.
// An unresolvable chat or a chat with no session is a forbidden action.
func (c *Coordinator) End(ctx context.Context, caller domain.UserID, chatID domain.ChatID) error {
	chat, err := c.memberChat(ctx, caller, chatID)
	if err != nil {
		return apperrors.ErrForbidden
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.table.Delete(chatID); !ok {
		return apperrors.ErrForbidden
	}
	peer, _ := chat.PeerOf(caller)
	c.deliver(ctx, peer, event.New(event.CallEnded, event.CallEndedData{ChatID: chatID, Status: endedStatus}))
	return nil
}

// RelayOffer forwards an opaque session description to the other party.
func (c *Coordinator) RelayOffer(ctx context.Context, caller domain.UserID, chatID domain.ChatID, offer []byte) error {
	return c.relay(ctx, caller, chatID, event.OfferCreated, event.SignalOffer{ChatID: chatID, Offer: offer})
}

// RelayAnswer forwards an opaque answer description to the other party.
func (c *Coordinator) RelayAnswer(ctx context.Context, caller domain.UserID, chatID domain.ChatID, answer []byte) error {
	return c.relay(ctx, caller, chatID, event.AnswerCreated, event.SignalAnswer{ChatID: chatID, Answer: answer})
}

// RelayCandidate forwards an opaque ICE candidate to the other party.
func (c *Coordinator) RelayCandidate(ctx context.Context, caller domain.UserID, chatID domain.ChatID, candidate []byte) error {
	return c.relay(ctx, caller, chatID, event.NewIceCandidate, event.SignalCandidate{ChatID: chatID, Candidate: candidate})
}

// DisconnectSweep force-ends every session the user is a party to. It runs
// on the disconnect path, after the user's sink has left the directory.
func (c *Coordinator) DisconnectSweep(ctx context.Context, userID domain.UserID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, session := range c.table.SessionsFor(userID) {
		if _, ok := c.table.Delete(session.ChatID); !ok {
			continue
		}
		c.deliver(ctx, session.PeerOf(userID), event.New(event.CallEnded, event.CallEndedData{ChatID: session.ChatID, Status: endedStatus}))
	}
}

// relay passes a signaling payload through without touching session state.
func (c *Coordinator) relay(ctx context.Context, caller domain.UserID, chatID domain.ChatID, name event.Name, data any) error {
	chat, err := c.memberChat(ctx, caller, chatID)
	if err != nil {
		return apperrors.ErrForbidden
	}
	if _, ok := c.table.Get(chatID); !ok {
		return apperrors.ErrForbidden
	}
	peer, _ := chat.PeerOf(caller)
	c.deliver(ctx, peer, event.New(name, data))
	return nil
}

// evictOtherSessions force-ends every session the user participates in on a
// chat other than keep. Callers hold c.mu.
func (c *Coordinator) evictOtherSessions(ctx context.Context, userID domain.UserID, keep domain.ChatID) {
	for _, session := range c.table.SessionsFor(userID) {
		if session.ChatID == keep {
			continue
		}
		if _, ok := c.table.Delete(session.ChatID); !ok {
			continue
		}
		c.deliver(ctx, session.PeerOf(userID), event.New(event.CallEnded, event.CallEndedData{ChatID: session.ChatID, Status: endedStatus}))
	}
}

// memberChat resolves the chat and verifies the caller is a participant.
func (c *Coordinator) memberChat(ctx context.Context, caller domain.UserID, chatID domain.ChatID) (domain.Chat, error) {
	chat, err := c.chats.ChatByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, apperrors.ErrChatNotFound) {
			return domain.Chat{}, apperrors.ErrChatNotFound
		}
		return domain.Chat{}, err
	}
	if !chat.HasParticipant(caller) {
		return domain.Chat{}, apperrors.ErrChatNotFound
	}
	return chat, nil
}

func (c *Coordinator) deliver(ctx context.Context, userID domain.UserID, e event.Envelope) {
	sink, ok := c.registry.Find(userID)
	if !ok {
		return
	}
	if err := sink.Deliver(ctx, e); err != nil {
		c.log.Warn(fmt.Sprintf("Failed to deliver %s to user %d", e.Event, userID), "err", err)
	}
}
