package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"match-gateway/domain"
	apperrors "match-gateway/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Create_And_Page_Newest_First(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openTestDB(t), slog.Default())
	chatID := domain.ChatID(1)

	contents := []string{"first", "second", "third"}
	for _, content := range contents {
		_, err := repository.Create(ctx, chatID, 1, 2, content)
		req.NoError(err)
		time.Sleep(time.Millisecond)
	}

	messages, err := repository.Page(ctx, chatID, nil)
	req.NoError(err)
	req.Len(messages, len(contents))
	req.Equal("third", messages[0].Content)
	req.Equal("second", messages[1].Content)
	req.Equal("first", messages[2].Content)
	for _, message := range messages {
		req.False(message.Read)
		req.False(message.Edited)
		req.Nil(message.TimeEdited)
	}
}

func Test_Page_Is_Bounded(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openTestDB(t), slog.Default())
	chatID := domain.ChatID(1)

	for i := 0; i < MessagesPageSize+5; i++ {
		_, err := repository.Create(ctx, chatID, 1, 2, "ping")
		req.NoError(err)
	}

	messages, err := repository.Page(ctx, chatID, nil)
	req.NoError(err)
	req.Len(messages, MessagesPageSize)
}

func Test_Page_With_Cursor_Returns_Strictly_Older(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openTestDB(t), slog.Default())
	chatID := domain.ChatID(1)

	var stored []domain.Message
	for _, content := range []string{"a", "b", "c"} {
		message, err := repository.Create(ctx, chatID, 1, 2, content)
		req.NoError(err)
		stored = append(stored, message)
		time.Sleep(time.Millisecond)
	}

	// Cursor at the middle message: only the one before it comes back.
	messages, err := repository.Page(ctx, chatID, &stored[1].TimeCreated)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("a", messages[0].Content)

	// Cursor older than everything stored: empty page.
	ancient := stored[0].TimeCreated.Add(-time.Hour)
	messages, err = repository.Page(ctx, chatID, &ancient)
	req.NoError(err)
	req.Empty(messages)
}

func Test_Page_Does_Not_Leak_Across_Chats(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	_, err := repository.Create(ctx, 1, 1, 2, "chat one")
	req.NoError(err)
	_, err = repository.Create(ctx, 12, 3, 4, "chat twelve")
	req.NoError(err)

	messages, err := repository.Page(ctx, 1, nil)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("chat one", messages[0].Content)
}

func Test_Edit_Sets_Flag_And_Timestamp(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	message, err := repository.Create(ctx, 1, 1, 2, "typo")
	req.NoError(err)

	updated, err := repository.Edit(ctx, 1, message.ID, "fixed")
	req.NoError(err)
	req.Equal("fixed", updated.Content)
	req.True(updated.Edited)
	req.NotNil(updated.TimeEdited)
	req.Equal(message.TimeCreated, updated.TimeCreated)

	messages, err := repository.Page(ctx, 1, nil)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal(updated, messages[0])
}

func Test_Edit_Refuses_Non_Sender(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	message, err := repository.Create(ctx, 1, 1, 2, "mine")
	req.NoError(err)

	_, err = repository.Edit(ctx, 2, message.ID, "hijacked")
	req.ErrorIs(err, apperrors.ErrNotMessageOwner)

	messages, err := repository.Page(ctx, 1, nil)
	req.NoError(err)
	req.Equal("mine", messages[0].Content)
}

func Test_Edit_Unknown_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	_, err := repository.Edit(context.Background(), 1, uuid.New(), "ghost")
	req.ErrorIs(err, apperrors.ErrMessageNotFound)
}

func Test_Delete_Removes_Message_And_Index(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	message, err := repository.Create(ctx, 1, 1, 2, "ephemeral")
	req.NoError(err)

	deleted, err := repository.Delete(ctx, 1, message.ID)
	req.NoError(err)
	req.Equal(message.ID, deleted.ID)

	messages, err := repository.Page(ctx, 1, nil)
	req.NoError(err)
	req.Empty(messages)

	_, err = repository.Delete(ctx, 1, message.ID)
	req.ErrorIs(err, apperrors.ErrMessageNotFound)
}

func Test_Delete_Refuses_Non_Sender(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	message, err := repository.Create(ctx, 1, 1, 2, "keep out")
	req.NoError(err)

	_, err = repository.Delete(ctx, 2, message.ID)
	req.ErrorIs(err, apperrors.ErrNotDeleteOwner)
}

func Test_MarkRead_Flips_Only_Readers_Unread(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openTestDB(t), slog.Default())
	chatID := domain.ChatID(1)

	toReader, err := repository.Create(ctx, chatID, 1, 2, "for the reader")
	req.NoError(err)
	fromReader, err := repository.Create(ctx, chatID, 2, 1, "from the reader")
	req.NoError(err)

	req.NoError(repository.MarkRead(ctx, chatID, 2))

	messages, err := repository.Page(ctx, chatID, nil)
	req.NoError(err)
	byID := map[uuid.UUID]domain.Message{}
	for _, message := range messages {
		byID[message.ID] = message
	}
	req.True(byID[toReader.ID].Read)
	req.False(byID[fromReader.ID].Read)
}
