// Package services orchestrates collaborator calls and live delivery for
// the operations that do not touch call state.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"match-gateway/contract"
	"match-gateway/domain"
	"match-gateway/domain/event"
	apperrors "match-gateway/errors"

	"github.com/google/uuid"
)

// MessageRelay stores message mutations through the durable collaborator and
// then pushes the result to the parties that are online. Storage failures
// propagate to the dispatch layer; delivery failures are logged and dropped,
// live relay is best effort.
type MessageRelay struct {
	log      *slog.Logger
	store    contract.IMessageStore
	chats    contract.IChatDirectory
	registry contract.IRegistry
}

func NewMessageRelay(log *slog.Logger, store contract.IMessageStore, chats contract.IChatDirectory, registry contract.IRegistry) *MessageRelay {
	return &MessageRelay{log: log, store: store, chats: chats, registry: registry}
}

// Send creates a message in the chat pairing sender and receiver, then
// notifies the receiver with newMessage and echoes messageCreated back to
// the sender's own connection.
func (r *MessageRelay) Send(ctx context.Context, sender, receiver domain.UserID, content string) (domain.Message, error) {
	chat, err := r.chats.ChatByUsers(ctx, sender, receiver)
	if err != nil {
		return domain.Message{}, err
	}

	message, err := r.store.Create(ctx, chat.ID, sender, receiver, content)
	if err != nil {
		return domain.Message{}, err
	}

	data := event.NewMessageData{NewMessage: message}
	r.deliver(ctx, receiver, event.New(event.NewMessage, data))
	r.deliver(ctx, sender, event.New(event.MessageCreated, data))
	return message, nil
}

// Edit updates a message's content through the store (which enforces the
// sender-only rule) and notifies both parties with messageEdited.
func (r *MessageRelay) Edit(ctx context.Context, sender domain.UserID, messageID uuid.UUID, content string) (domain.Message, error) {
	message, err := r.store.Edit(ctx, sender, messageID, content)
	if err != nil {
		return domain.Message{}, err
	}

	data := event.UpdatedMessageData{UpdatedMessage: message}
	r.deliver(ctx, message.ReceiverID, event.New(event.MessageEdited, data))
	r.deliver(ctx, sender, event.New(event.MessageEdited, data))
	return message, nil
}

// Delete removes a message permanently and notifies both parties.
func (r *MessageRelay) Delete(ctx context.Context, sender domain.UserID, messageID uuid.UUID) (domain.Message, error) {
	message, err := r.store.Delete(ctx, sender, messageID)
	if err != nil {
		return domain.Message{}, err
	}

	data := event.DeletedMessageData{DeletedMessage: message}
	r.deliver(ctx, message.ReceiverID, event.New(event.MessageDeleted, data))
	r.deliver(ctx, sender, event.New(event.MessageDeleted, data))
	return message, nil
}

// MarkRead flips the reader's unread messages in the chat and sends the
// messagesRead receipt to the reader's own connection (multi-tab
// consistency) and to the peer.
func (r *MessageRelay) MarkRead(ctx context.Context, reader domain.UserID, chatID domain.ChatID) error {
	chat, err := r.chats.ChatByID(ctx, chatID)
	if err != nil {
		return err
	}
	peer, ok := chat.PeerOf(reader)
	if !ok {
		return apperrors.ErrChatNotFound
	}

	if err = r.store.MarkRead(ctx, chatID, reader); err != nil {
		return err
	}

	data := event.MessagesReadData{ChatID: chatID, ReceiverID: reader}
	r.deliver(ctx, reader, event.New(event.MessagesRead, data))
	r.deliver(ctx, peer, event.New(event.MessagesRead, data))
	return nil
}

// Page returns one page of the chat's history, newest first. A requester
// that is not a participant gets an empty page rather than an error, and so
// does a cursor older than anything stored.
func (r *MessageRelay) Page(ctx context.Context, requester domain.UserID, chatID domain.ChatID, before *time.Time) ([]domain.Message, error) {
	chat, err := r.chats.ChatByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, apperrors.ErrChatNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !chat.HasParticipant(requester) {
		return nil, nil
	}
	return r.store.Page(ctx, chatID, before)
}

func (r *MessageRelay) deliver(ctx context.Context, userID domain.UserID, e event.Envelope) {
	sink, ok := r.registry.Find(userID)
	if !ok {
		return
	}
	if err := sink.Deliver(ctx, e); err != nil {
		r.log.Warn(fmt.Sprintf("Failed to deliver %s to user %d", e.Event, userID), "err", err)
	}
}
