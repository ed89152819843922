package services

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"match-gateway/domain"
	"match-gateway/domain/event"
	apperrors "match-gateway/errors"
	"match-gateway/mocks"
	"match-gateway/runtime"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingSink collects envelopes for assertions.
type recordingSink struct {
	mu        sync.Mutex
	envelopes []event.Envelope
}

func (s *recordingSink) Deliver(_ context.Context, e event.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.envelopes = append(s.envelopes, e)
	return nil
}

func (s *recordingSink) Close(domain.CloseReason) {}

func (s *recordingSink) events() []event.Name {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]event.Name, 0, len(s.envelopes))
	for _, e := range s.envelopes {
		names = append(names, e.Event)
	}
	return names
}

func TestMessageRelay_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIMessageStore(ctrl)
	chats := mocks.NewMockIChatDirectory(ctrl)
	registry := runtime.NewRegistry()
	relay := NewMessageRelay(slog.Default(), store, chats, registry)

	sender := domain.UserID(1)
	receiver := domain.UserID(2)
	chat := domain.Chat{ID: 7, User1: sender, User2: receiver}

	t.Run("should store and notify both parties when chat exists", func(t *testing.T) {
		req := require.New(t)
		senderSink := &recordingSink{}
		receiverSink := &recordingSink{}
		registry.Register(sender, senderSink)
		registry.Register(receiver, receiverSink)

		stored := domain.Message{
			ID:          uuid.New(),
			ChatID:      chat.ID,
			SenderID:    sender,
			ReceiverID:  receiver,
			Content:     "hey",
			TimeCreated: time.Now().UTC(),
		}
		chats.EXPECT().ChatByUsers(gomock.Any(), sender, receiver).Return(chat, nil)
		store.EXPECT().Create(gomock.Any(), chat.ID, sender, receiver, "hey").Return(stored, nil)

		message, err := relay.Send(context.Background(), sender, receiver, "hey")

		req.NoError(err)
		req.Equal(stored, message)
		req.Equal([]event.Name{event.MessageCreated}, senderSink.events())
		req.Equal([]event.Name{event.NewMessage}, receiverSink.events())
	})

	t.Run("should fail without touching the store when no chat pairs the users", func(t *testing.T) {
		req := require.New(t)
		chats.EXPECT().ChatByUsers(gomock.Any(), sender, domain.UserID(9)).Return(domain.Chat{}, apperrors.ErrChatNotFound)

		_, err := relay.Send(context.Background(), sender, 9, "hey")

		req.ErrorIs(err, apperrors.ErrChatNotFound)
	})
}

func TestMessageRelay_Edit(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIMessageStore(ctrl)
	chats := mocks.NewMockIChatDirectory(ctrl)
	registry := runtime.NewRegistry()
	relay := NewMessageRelay(slog.Default(), store, chats, registry)

	messageID := uuid.New()

	t.Run("should notify both parties with the updated message", func(t *testing.T) {
		req := require.New(t)
		senderSink := &recordingSink{}
		receiverSink := &recordingSink{}
		registry.Register(1, senderSink)
		registry.Register(2, receiverSink)

		updated := domain.Message{ID: messageID, ChatID: 7, SenderID: 1, ReceiverID: 2, Content: "fixed", Edited: true}
		store.EXPECT().Edit(gomock.Any(), domain.UserID(1), messageID, "fixed").Return(updated, nil)

		message, err := relay.Edit(context.Background(), 1, messageID, "fixed")

		req.NoError(err)
		req.True(message.Edited)
		req.Equal([]event.Name{event.MessageEdited}, senderSink.events())
		req.Equal([]event.Name{event.MessageEdited}, receiverSink.events())
	})

	t.Run("should propagate the ownership error without delivering", func(t *testing.T) {
		req := require.New(t)
		senderSink := &recordingSink{}
		registry.Register(3, senderSink)

		store.EXPECT().Edit(gomock.Any(), domain.UserID(3), messageID, "stolen").Return(domain.Message{}, apperrors.ErrNotMessageOwner)

		_, err := relay.Edit(context.Background(), 3, messageID, "stolen")

		req.ErrorIs(err, apperrors.ErrNotMessageOwner)
		req.Empty(senderSink.events())
	})
}

func TestMessageRelay_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIMessageStore(ctrl)
	chats := mocks.NewMockIChatDirectory(ctrl)
	registry := runtime.NewRegistry()
	relay := NewMessageRelay(slog.Default(), store, chats, registry)

	messageID := uuid.New()

	t.Run("should notify both parties with the deleted message", func(t *testing.T) {
		req := require.New(t)
		senderSink := &recordingSink{}
		receiverSink := &recordingSink{}
		registry.Register(1, senderSink)
		registry.Register(2, receiverSink)

		deleted := domain.Message{ID: messageID, ChatID: 7, SenderID: 1, ReceiverID: 2}
		store.EXPECT().Delete(gomock.Any(), domain.UserID(1), messageID).Return(deleted, nil)

		message, err := relay.Delete(context.Background(), 1, messageID)

		req.NoError(err)
		req.Equal(deleted, message)
		req.Equal([]event.Name{event.MessageDeleted}, senderSink.events())
		req.Equal([]event.Name{event.MessageDeleted}, receiverSink.events())
	})

	t.Run("should propagate the ownership error", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().Delete(gomock.Any(), domain.UserID(2), messageID).Return(domain.Message{}, apperrors.ErrNotDeleteOwner)

		_, err := relay.Delete(context.Background(), 2, messageID)

		req.ErrorIs(err, apperrors.ErrNotDeleteOwner)
	})
}

func TestMessageRelay_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIMessageStore(ctrl)
	chats := mocks.NewMockIChatDirectory(ctrl)
	registry := runtime.NewRegistry()
	relay := NewMessageRelay(slog.Default(), store, chats, registry)

	chat := domain.Chat{ID: 7, User1: 1, User2: 2}

	t.Run("should send the receipt to reader and peer", func(t *testing.T) {
		req := require.New(t)
		readerSink := &recordingSink{}
		peerSink := &recordingSink{}
		registry.Register(1, readerSink)
		registry.Register(2, peerSink)

		chats.EXPECT().ChatByID(gomock.Any(), chat.ID).Return(chat, nil)
		store.EXPECT().MarkRead(gomock.Any(), chat.ID, domain.UserID(1)).Return(nil)

		req.NoError(relay.MarkRead(context.Background(), 1, chat.ID))
		req.Equal([]event.Name{event.MessagesRead}, readerSink.events())
		req.Equal([]event.Name{event.MessagesRead}, peerSink.events())
	})

	t.Run("should fail when the reader is not a participant", func(t *testing.T) {
		req := require.New(t)
		chats.EXPECT().ChatByID(gomock.Any(), chat.ID).Return(chat, nil)

		err := relay.MarkRead(context.Background(), 9, chat.ID)

		req.ErrorIs(err, apperrors.ErrChatNotFound)
	})
}

func TestMessageRelay_Page(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIMessageStore(ctrl)
	chats := mocks.NewMockIChatDirectory(ctrl)
	registry := runtime.NewRegistry()
	relay := NewMessageRelay(slog.Default(), store, chats, registry)

	chat := domain.Chat{ID: 7, User1: 1, User2: 2}

	t.Run("should return the stored page for a participant", func(t *testing.T) {
		req := require.New(t)
		page := []domain.Message{{ID: uuid.New(), ChatID: chat.ID, SenderID: 2, ReceiverID: 1}}
		chats.EXPECT().ChatByID(gomock.Any(), chat.ID).Return(chat, nil)
		store.EXPECT().Page(gomock.Any(), chat.ID, gomock.Nil()).Return(page, nil)

		messages, err := relay.Page(context.Background(), 1, chat.ID, nil)

		req.NoError(err)
		req.Equal(page, messages)
	})

	t.Run("should return an empty page for an outsider", func(t *testing.T) {
		req := require.New(t)
		chats.EXPECT().ChatByID(gomock.Any(), chat.ID).Return(chat, nil)

		messages, err := relay.Page(context.Background(), 9, chat.ID, nil)

		req.NoError(err)
		req.Nil(messages)
	})

	t.Run("should return an empty page for a missing chat", func(t *testing.T) {
		req := require.New(t)
		chats.EXPECT().ChatByID(gomock.Any(), domain.ChatID(99)).Return(domain.Chat{}, apperrors.ErrChatNotFound)

		messages, err := relay.Page(context.Background(), 1, 99, nil)

		req.NoError(err)
		req.Nil(messages)
	})
}
