package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"match-gateway/domain"
	apperrors "match-gateway/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

// ChatRepository resolves chat membership. Chats are created by the account
// surface of the application; the gateway only reads them, plus a Put used
// by seeding tools and tests.
//
// Keys:
//
//	chat:{chat_id}                 -> chat document
//	chatuser:{user_id}:{chat_id}   -> nil (membership index)
//	chatpair:{lo_id}:{hi_id}       -> chat_id (participant pair index)
type ChatRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewChatRepository(db *badger.DB, log *slog.Logger) ChatRepository {
	return ChatRepository{db: db, log: log}
}

func chatKey(id domain.ChatID) []byte {
	return []byte(fmt.Sprintf("chat:%d", id))
}

func memberKey(userID domain.UserID, chatID domain.ChatID) []byte {
	return []byte(fmt.Sprintf("chatuser:%d:%d", userID, chatID))
}

func pairKey(a, b domain.UserID) []byte {
	low, high := a, b
	if high < low {
		low, high = high, low
	}
	return []byte(fmt.Sprintf("chatpair:%d:%d", low, high))
}

// Put stores a chat and maintains both indexes in the same transaction.
func (c ChatRepository) Put(_ context.Context, chat domain.Chat) error {
	bytes, err := json.Marshal(chat)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(chatKey(chat.ID), bytes); err != nil {
			return err
		}
		if err := txn.Set(memberKey(chat.User1, chat.ID), nil); err != nil {
			return err
		}
		if err := txn.Set(memberKey(chat.User2, chat.ID), nil); err != nil {
			return err
		}
		return txn.Set(pairKey(chat.User1, chat.User2), []byte(fmt.Sprintf("%d", chat.ID)))
	})
}

// ChatByID returns the chat or ErrChatNotFound.
func (c ChatRepository) ChatByID(_ context.Context, id domain.ChatID) (domain.Chat, error) {
	var chat domain.Chat
	err := c.db.View(func(txn *badger.Txn) error {
		found, err := c.getChat(txn, chatKey(id))
		if err != nil {
			return err
		}
		chat = found
		return nil
	})
	if err != nil {
		return domain.Chat{}, err
	}
	return chat, nil
}

// ChatByUsers returns the chat pairing the two users, in either order.
func (c ChatRepository) ChatByUsers(_ context.Context, a, b domain.UserID) (domain.Chat, error) {
	var chat domain.Chat
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(pairKey(a, b))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return apperrors.ErrChatNotFound
			}
			return err
		}
		var id domain.ChatID
		if err = item.Value(func(value []byte) error {
			_, err := fmt.Sscanf(string(value), "%d", &id)
			return err
		}); err != nil {
			return err
		}
		found, err := c.getChat(txn, chatKey(id))
		if err != nil {
			return err
		}
		chat = found
		return nil
	})
	if err != nil {
		return domain.Chat{}, err
	}
	return chat, nil
}

// ChatsForUser scans the membership index and loads every chat of the user.
func (c ChatRepository) ChatsForUser(_ context.Context, userID domain.UserID) ([]domain.Chat, error) {
	var chats []domain.Chat
	err := c.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("chatuser:%d:", userID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		var ids []domain.ChatID
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var id domain.ChatID
			if _, err := fmt.Sscanf(string(it.Item().Key()[len(prefixStr):]), "%d", &id); err != nil {
				return err
			}
			ids = append(ids, id)
		}

		for _, id := range ids {
			chat, err := c.getChat(txn, chatKey(id))
			if err != nil {
				return err
			}
			chats = append(chats, chat)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chats, nil
}

// PeersForUser maps the user's chats to the other participant of each.
func (c ChatRepository) PeersForUser(ctx context.Context, userID domain.UserID) ([]domain.UserID, error) {
	chats, err := c.ChatsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return lo.FilterMap(chats, func(chat domain.Chat, _ int) (domain.UserID, bool) {
		return chat.PeerOf(userID)
	}), nil
}

func (c ChatRepository) getChat(txn *badger.Txn, key []byte) (domain.Chat, error) {
	item, err := txn.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return domain.Chat{}, apperrors.ErrChatNotFound
		}
		return domain.Chat{}, err
	}
	var chat domain.Chat
	err = item.Value(func(value []byte) error {
		return json.Unmarshal(value, &chat)
	})
	return chat, err
}
