package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"match-gateway/domain"
	apperrors "match-gateway/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// MessagesPageSize bounds every page returned by Page.
const MessagesPageSize = 50

// maxTimestampPad seeks past every real timestamp in a reverse scan.
const maxTimestampPad = "9999999999999999999"

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// Keys are formatted as "msg:{chat_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
//
// A secondary "mid:{uuid}" entry points at the primary key so edits and
// deletes can resolve a message without knowing its chat or timestamp.
func primaryKey(chatID domain.ChatID, at time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("msg:%d:%019d:%s", chatID, at.UnixNano(), id))
}

func chatPrefix(chatID domain.ChatID) []byte {
	return []byte(fmt.Sprintf("msg:%d:", chatID))
}

func idKey(id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("mid:%s", id))
}

// Create persists a new unread message and indexes it by id.
func (m MessageRepository) Create(_ context.Context, chatID domain.ChatID, sender, receiver domain.UserID, content string) (domain.Message, error) {
	message := domain.Message{
		ID:          uuid.New(),
		ChatID:      chatID,
		SenderID:    sender,
		ReceiverID:  receiver,
		Content:     content,
		TimeCreated: time.Now().UTC(),
	}
	err := m.db.Update(func(txn *badger.Txn) error {
		return m.write(txn, message)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

// Edit updates the content of an existing message. Only the original sender
// may edit; the edited flag and edit timestamp are set exactly once per call.
func (m MessageRepository) Edit(_ context.Context, sender domain.UserID, messageID uuid.UUID, content string) (domain.Message, error) {
	var updated domain.Message
	err := m.db.Update(func(txn *badger.Txn) error {
		message, err := m.getByID(txn, messageID)
		if err != nil {
			return err
		}
		if message.SenderID != sender {
			return apperrors.ErrNotMessageOwner
		}
		now := time.Now().UTC()
		message.Content = content
		message.Edited = true
		message.TimeEdited = &now
		updated = message
		return m.write(txn, message)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return updated, nil
}

// Delete removes a message permanently, primary key and id index both.
func (m MessageRepository) Delete(_ context.Context, sender domain.UserID, messageID uuid.UUID) (domain.Message, error) {
	var deleted domain.Message
	err := m.db.Update(func(txn *badger.Txn) error {
		message, err := m.getByID(txn, messageID)
		if err != nil {
			return err
		}
		if message.SenderID != sender {
			return apperrors.ErrNotDeleteOwner
		}
		deleted = message
		if err := txn.Delete(primaryKey(message.ChatID, message.TimeCreated, message.ID)); err != nil {
			return err
		}
		return txn.Delete(idKey(messageID))
	})
	if err != nil {
		return domain.Message{}, err
	}
	return deleted, nil
}

// MarkRead flips every unread message addressed to reader in the chat.
// The flip is one-way; already-read messages are left untouched.
func (m MessageRepository) MarkRead(_ context.Context, chatID domain.ChatID, reader domain.UserID) error {
	return m.db.Update(func(txn *badger.Txn) error {
		prefix := chatPrefix(chatID)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		var toFlip []domain.Message
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var message domain.Message
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &message)
			})
			if err != nil {
				return err
			}
			if message.ReceiverID == reader && !message.Read {
				message.Read = true
				toFlip = append(toFlip, message)
			}
		}
		for _, message := range toFlip {
			if err := m.write(txn, message); err != nil {
				return err
			}
		}
		return nil
	})
}

// Page retrieves up to MessagesPageSize messages of a chat, newest first.
// With a nil cursor it returns the most recent page; otherwise only messages
// strictly older than before. Thanks to the padded timestamp in the key,
// a reverse seek lands exactly on the cursor boundary: entries sharing the
// cursor's timestamp sort above the bare padded seek key and are skipped.
func (m MessageRepository) Page(_ context.Context, chatID domain.ChatID, before *time.Time) ([]domain.Message, error) {
	var messages []domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := chatPrefix(chatID)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch before {
		case nil:
			seekKey = append(append([]byte{}, prefix...), []byte(maxTimestampPad)...)
		default:
			seekKey = append(append([]byte{}, prefix...), []byte(fmt.Sprintf("%019d", before.UnixNano()))...)
		}

		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if len(messages) == MessagesPageSize {
				m.log.Debug(fmt.Sprintf("Maximum of %d messages reached", MessagesPageSize))
				break
			}
			var message domain.Message
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &message)
			})
			if err != nil {
				return err
			}
			messages = append(messages, message)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (m MessageRepository) getByID(txn *badger.Txn, messageID uuid.UUID) (domain.Message, error) {
	item, err := txn.Get(idKey(messageID))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return domain.Message{}, apperrors.ErrMessageNotFound
		}
		return domain.Message{}, err
	}
	var primary []byte
	if err = item.Value(func(value []byte) error {
		primary = append([]byte{}, value...)
		return nil
	}); err != nil {
		return domain.Message{}, err
	}

	item, err = txn.Get(primary)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return domain.Message{}, apperrors.ErrMessageNotFound
		}
		return domain.Message{}, err
	}
	var message domain.Message
	err = item.Value(func(value []byte) error {
		return json.Unmarshal(value, &message)
	})
	return message, err
}

func (m MessageRepository) write(txn *badger.Txn, message domain.Message) error {
	bytes, err := json.Marshal(message)
	if err != nil {
		return err
	}
	key := primaryKey(message.ChatID, message.TimeCreated, message.ID)
	if err = txn.Set(key, bytes); err != nil {
		return err
	}
	return txn.Set(idKey(message.ID), key)
}
