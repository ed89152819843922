package gateway

import (
	"context"
	"encoding/json"
	"time"

	"match-gateway/domain"
	"match-gateway/domain/event"
	apperrors "match-gateway/errors"

	"github.com/google/uuid"
)

// Inbound payload shapes. Field names are the client wire contract.

type sendMessagePayload struct {
	ReceiverID domain.UserID `json:"receiverId" validate:"required"`
	Content    string        `json:"content" validate:"required"`
}

type editMessagePayload struct {
	MessageID uuid.UUID `json:"messageId" validate:"required"`
	Content   string    `json:"content" validate:"required"`
}

type deleteMessagePayload struct {
	MessageID uuid.UUID `json:"messageId" validate:"required"`
}

type chatRefPayload struct {
	ChatID domain.ChatID `json:"chatId" validate:"required"`
}

type receiverRefPayload struct {
	ReceiverID domain.UserID `json:"receiverId"`
}

type getMessagesPayload struct {
	ChatID                 domain.ChatID `json:"chatId" validate:"required"`
	LastMessageTimeCreated *time.Time    `json:"lastMessageTimeCreated"`
	First                  bool          `json:"first"`
}

type userRefPayload struct {
	UserID domain.UserID `json:"userId" validate:"required"`
}

type chatCreatedPayload struct {
	Chat *domain.Chat `json:"chat" validate:"required"`
}

type offerPayload struct {
	ChatID domain.ChatID   `json:"chatId" validate:"required"`
	Offer  json.RawMessage `json:"offer"`
}

type answerPayload struct {
	ChatID domain.ChatID   `json:"chatId" validate:"required"`
	Answer json.RawMessage `json:"answer"`
}

type candidatePayload struct {
	ChatID    domain.ChatID   `json:"chatId" validate:"required"`
	Candidate json.RawMessage `json:"candidate"`
}

func (d *Dispatcher) handleGetOnlineUsers(ctx context.Context, conn *Connection, _ json.RawMessage) error {
	peers, err := d.chats.PeersForUser(ctx, conn.UserID())
	if err != nil {
		return err
	}
	online := d.presence.OnlineSnapshot(peers)
	d.send(ctx, conn, event.New(event.OnlineUsers, event.OnlineList{OnlineUsers: online}))
	return nil
}

func (d *Dispatcher) handleGetMessages(ctx context.Context, conn *Connection, data json.RawMessage) error {
	var p getMessagesPayload
	if err := d.decode(data, &p); err != nil {
		d.send(ctx, conn, event.New(event.MoreMessages, event.MessageList{}))
		return nil
	}
	messages, err := d.relay.Page(ctx, conn.UserID(), p.ChatID, p.LastMessageTimeCreated)
	if err != nil {
		return err
	}
	name := event.MoreMessages
	if p.First {
		name = event.FirstMessages
	}
	d.send(ctx, conn, event.New(name, event.MessageList{Messages: messages}))
	return nil
}

func (d *Dispatcher) handleSendMessage(ctx context.Context, conn *Connection, data json.RawMessage) error {
	var p sendMessagePayload
	if err := d.decode(data, &p); err != nil {
		d.send(ctx, conn, event.New(event.AlertMessage, event.Alert{Message: "Failed to send new message!"}))
		return nil
	}
	_, err := d.relay.Send(ctx, conn.UserID(), p.ReceiverID, p.Content)
	return err
}

func (d *Dispatcher) handleEditMessage(ctx context.Context, conn *Connection, data json.RawMessage) error {
	var p editMessagePayload
	if err := d.decode(data, &p); err != nil {
		d.send(ctx, conn, event.New(event.AlertMessage, event.Alert{Message: "Failed to edit message!"}))
		return nil
	}
	_, err := d.relay.Edit(ctx, conn.UserID(), p.MessageID, p.Content)
	return err
}

func (d *Dispatcher) handleDeleteMessage(ctx context.Context, conn *Connection, data json.RawMessage) error {
	var p deleteMessagePayload
	if err := d.decode(data, &p); err != nil {
		d.send(ctx, conn, event.New(event.AlertMessage, event.Alert{Message: "Failed to delete message!"}))
		return nil
	}
	_, err := d.relay.Delete(ctx, conn.UserID(), p.MessageID)
	return err
}

func (d *Dispatcher) handleReadMessages(ctx context.Context, conn *Connection, data json.RawMessage) error {
	var p chatRefPayload
	if err := d.decode(data, &p); err != nil {
		return apperrors.ErrChatNotFound
	}
	return d.relay.MarkRead(ctx, conn.UserID(), p.ChatID)
}

// handleUserCreatedChat pushes the freshly created chat to its other
// participant, so their chat list updates without a refresh.
func (d *Dispatcher) handleUserCreatedChat(ctx context.Context, conn *Connection, data json.RawMessage) error {
	var p chatCreatedPayload
	if err := d.decode(data, &p); err != nil {
		return nil
	}
	peer, ok := p.Chat.PeerOf(conn.UserID())
	if !ok {
		return nil
	}
	d.sendTo(ctx, conn.UserID(), peer, event.New(event.NewChat, event.ChatData{Chat: p.Chat}))
	return nil
}

// handleRemoveChatForUser tells the named user that the caller removed
// their chat (blacklist flow).
func (d *Dispatcher) handleRemoveChatForUser(ctx context.Context, conn *Connection, data json.RawMessage) error {
	var p userRefPayload
	if err := d.decode(data, &p); err != nil {
		return nil
	}
	d.sendTo(ctx, conn.UserID(), p.UserID, event.New(event.RemoveChat, event.Presence{UserID: conn.UserID()}))
	return nil
}

func (d *Dispatcher) handleCallEnter(ctx context.Context, conn *Connection, data json.RawMessage) error {
	var p chatRefPayload
	if err := d.decode(data, &p); err != nil {
		return apperrors.ErrChatNotFound
	}
	return d.coordinator.CallEnter(ctx, conn.UserID(), p.ChatID)
}

func (d *Dispatcher) handleAnswerCall(ctx context.Context, conn *Connection, data json.RawMessage) error {
	var p chatRefPayload
	if err := d.decode(data, &p); err != nil {
		return nil
	}
	return d.coordinator.Answer(ctx, conn.UserID(), p.ChatID)
}

func (d *Dispatcher) handleRejectCall(ctx context.Context, conn *Connection, data json.RawMessage) error {
	var p chatRefPayload
	if err := d.decode(data, &p); err != nil {
		return nil
	}
	return d.coordinator.Reject(ctx, conn.UserID(), p.ChatID)
}

func (d *Dispatcher) handleEndCall(ctx context.Context, conn *Connection, data json.RawMessage) error {
	var p chatRefPayload
	if err := d.decode(data, &p); err != nil {
		return apperrors.ErrForbidden
	}
	return d.coordinator.End(ctx, conn.UserID(), p.ChatID)
}

func (d *Dispatcher) handleCallOffer(ctx context.Context, conn *Connection, data json.RawMessage) error {
	var p offerPayload
	if err := d.decode(data, &p); err != nil {
		return apperrors.ErrForbidden
	}
	return d.coordinator.RelayOffer(ctx, conn.UserID(), p.ChatID, p.Offer)
}

func (d *Dispatcher) handleCallAnswer(ctx context.Context, conn *Connection, data json.RawMessage) error {
	var p answerPayload
	if err := d.decode(data, &p); err != nil {
		return apperrors.ErrForbidden
	}
	return d.coordinator.RelayAnswer(ctx, conn.UserID(), p.ChatID, p.Answer)
}

func (d *Dispatcher) handleIceCandidate(ctx context.Context, conn *Connection, data json.RawMessage) error {
	var p candidatePayload
	if err := d.decode(data, &p); err != nil {
		return apperrors.ErrForbidden
	}
	return d.coordinator.RelayCandidate(ctx, conn.UserID(), p.ChatID, p.Candidate)
}

// decode unmarshals and validates an inbound payload in one step.
func (d *Dispatcher) decode(data json.RawMessage, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	return d.validate.Struct(out)
}
