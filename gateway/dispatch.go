package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"match-gateway/contract"
	"match-gateway/domain"
	"match-gateway/domain/event"
	apperrors "match-gateway/errors"

	"github.com/go-playground/validator/v10"
)

// handlerFunc processes one inbound event for one connection.
type handlerFunc func(ctx context.Context, conn *Connection, data json.RawMessage) error

// Dispatcher routes inbound envelopes through an explicit event-name ->
// handler table. Handlers return sentinel errors; translating an error kind
// into its client event happens in exactly one place, respond.
type Dispatcher struct {
	log         *slog.Logger
	validate    *validator.Validate
	relay       contract.IMessageRelay
	coordinator contract.ICallCoordinator
	presence    contract.IPresence
	registry    contract.IRegistry
	chats       contract.IChatDirectory
	handlers    map[event.Name]handlerFunc
}

func NewDispatcher(
	log *slog.Logger,
	relay contract.IMessageRelay,
	coordinator contract.ICallCoordinator,
	presence contract.IPresence,
	registry contract.IRegistry,
	chats contract.IChatDirectory,
) *Dispatcher {
	d := &Dispatcher{
		log:         log,
		validate:    validator.New(),
		relay:       relay,
		coordinator: coordinator,
		presence:    presence,
		registry:    registry,
		chats:       chats,
	}
	d.handlers = map[event.Name]handlerFunc{
		event.GetOnlineUsers:     d.handleGetOnlineUsers,
		event.GetMessages:        d.handleGetMessages,
		event.SendMessage:        d.handleSendMessage,
		event.EditMessage:        d.handleEditMessage,
		event.DeleteMessage:      d.handleDeleteMessage,
		event.ReadMessagesInChat: d.handleReadMessages,
		event.UserCreatedChat:    d.handleUserCreatedChat,
		event.RemoveChatForUser:  d.handleRemoveChatForUser,
		event.CallEnter:          d.handleCallEnter,
		event.AnswerCall:         d.handleAnswerCall,
		event.RejectCall:         d.handleRejectCall,
		event.EndCall:            d.handleEndCall,
		event.CallOffer:          d.handleCallOffer,
		event.CallAnswer:         d.handleCallAnswer,
		event.IceCandidate:       d.handleIceCandidate,
	}
	return d
}

// Dispatch decodes one frame and runs its handler. A failing or panicking
// handler surfaces as a generic error event on the same connection; it never
// terminates the session.
func (d *Dispatcher) Dispatch(ctx context.Context, conn *Connection, frame []byte) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error(fmt.Sprintf("Handler panic for user %d", conn.UserID()), "panic", r)
			d.send(ctx, conn, event.New(event.Error, event.ErrorData{Message: fmt.Sprintf("%v", r)}))
		}
	}()

	var in event.Inbound
	if err := json.Unmarshal(frame, &in); err != nil {
		d.send(ctx, conn, event.New(event.Error, event.ErrorData{Message: "malformed frame"}))
		return
	}

	handler, ok := d.handlers[in.Event]
	if !ok {
		d.log.Warn(fmt.Sprintf("Unknown event %q from user %d", in.Event, conn.UserID()))
		d.send(ctx, conn, event.New(event.Error, event.ErrorData{Message: fmt.Sprintf("unknown event %q", in.Event)}))
		return
	}

	if err := handler(ctx, conn, in.Data); err != nil {
		d.respond(ctx, conn, in, err)
	}
}

// respond is the single mapping from error kind to client event. The
// connection stays open for every kind; only the transport layer closes
// connections.
func (d *Dispatcher) respond(ctx context.Context, conn *Connection, in event.Inbound, err error) {
	switch {
	case errors.Is(err, apperrors.ErrChatNotFound):
		d.send(ctx, conn, d.chatNotFoundEvent(in))
	case errors.Is(err, apperrors.ErrMessageNotFound),
		errors.Is(err, apperrors.ErrNotMessageOwner),
		errors.Is(err, apperrors.ErrNotDeleteOwner):
		d.send(ctx, conn, event.New(event.AlertMessage, event.Alert{Message: err.Error()}))
	case errors.Is(err, apperrors.ErrForbidden):
		d.send(ctx, conn, event.New(event.Forbidden, struct{}{}))
	default:
		d.log.Error(fmt.Sprintf("Unexpected failure handling %s for user %d", in.Event, conn.UserID()), "err", err)
		d.send(ctx, conn, event.New(event.Error, event.ErrorData{Message: err.Error()}))
	}
}

// chatNotFoundEvent picks the flavor of "no such chat" the client expects
// for the failing operation, echoing back the identifier it sent.
func (d *Dispatcher) chatNotFoundEvent(in event.Inbound) event.Envelope {
	switch in.Event {
	case event.CallEnter:
		return event.New(event.NoChatFound, struct{}{})
	case event.ReadMessagesInChat:
		var p chatRefPayload
		_ = json.Unmarshal(in.Data, &p)
		return event.New(event.NoChatWithSuchReceiver, event.ChatRef{ChatID: p.ChatID})
	default:
		var p receiverRefPayload
		_ = json.Unmarshal(in.Data, &p)
		return event.New(event.NoChatWithSuchReceiver, event.ReceiverRef{ReceiverID: p.ReceiverID})
	}
}

func (d *Dispatcher) send(ctx context.Context, conn *Connection, e event.Envelope) {
	if err := conn.Deliver(ctx, e); err != nil {
		d.log.Debug(fmt.Sprintf("Failed to deliver %s to user %d", e.Event, conn.UserID()), "err", err)
	}
}

// sendTo delivers to another user's connection, if online. Nothing is sent
// when the target is the origin itself.
func (d *Dispatcher) sendTo(ctx context.Context, origin domain.UserID, target domain.UserID, e event.Envelope) {
	if origin == target {
		return
	}
	sink, ok := d.registry.Find(target)
	if !ok {
		return
	}
	if err := sink.Deliver(ctx, e); err != nil {
		d.log.Debug(fmt.Sprintf("Failed to deliver %s to user %d", e.Event, target), "err", err)
	}
}
