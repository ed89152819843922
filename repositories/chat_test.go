package repositories

import (
	"context"
	"log/slog"
	"testing"

	"match-gateway/domain"
	apperrors "match-gateway/errors"

	"github.com/stretchr/testify/require"
)

func Test_Chat_Round_Trip(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewChatRepository(openTestDB(t), slog.Default())
	chat := domain.Chat{ID: 7, User1: 1, User2: 2}

	req.NoError(repository.Put(ctx, chat))

	found, err := repository.ChatByID(ctx, 7)
	req.NoError(err)
	req.Equal(chat, found)

	_, err = repository.ChatByID(ctx, 99)
	req.ErrorIs(err, apperrors.ErrChatNotFound)
}

func Test_ChatByUsers_Order_Insensitive(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewChatRepository(openTestDB(t), slog.Default())
	chat := domain.Chat{ID: 7, User1: 2, User2: 1}

	req.NoError(repository.Put(ctx, chat))

	found, err := repository.ChatByUsers(ctx, 1, 2)
	req.NoError(err)
	req.Equal(chat, found)

	found, err = repository.ChatByUsers(ctx, 2, 1)
	req.NoError(err)
	req.Equal(chat, found)

	_, err = repository.ChatByUsers(ctx, 1, 3)
	req.ErrorIs(err, apperrors.ErrChatNotFound)
}

func Test_ChatsForUser_And_Peers(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewChatRepository(openTestDB(t), slog.Default())

	chats := []domain.Chat{
		{ID: 7, User1: 1, User2: 2},
		{ID: 8, User1: 3, User2: 1},
		{ID: 9, User1: 4, User2: 5},
	}
	for _, chat := range chats {
		req.NoError(repository.Put(ctx, chat))
	}

	forUser, err := repository.ChatsForUser(ctx, 1)
	req.NoError(err)
	req.Len(forUser, 2)
	for _, chat := range forUser {
		req.True(chat.HasParticipant(1))
	}

	peers, err := repository.PeersForUser(ctx, 1)
	req.NoError(err)
	req.ElementsMatch([]domain.UserID{2, 3}, peers)

	forUser, err = repository.ChatsForUser(ctx, 6)
	req.NoError(err)
	req.Empty(forUser)
}
