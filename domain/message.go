// Package domain contains core concepts of the real-time gateway.
// This file defines Message records and their mutation rules.
// A message is immutable except for a sender-only content edit and a
// receiver-only one-way read flip; deletion is permanent.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a durable chat message, owned by the message store.
type Message struct {
	ID          uuid.UUID  `json:"messageId"`
	ChatID      ChatID     `json:"chatId"`
	SenderID    UserID     `json:"senderId"`
	ReceiverID  UserID     `json:"receiverId"`
	Content     string     `json:"content"`
	TimeCreated time.Time  `json:"timeCreated"`
	Edited      bool       `json:"edited"`
	TimeEdited  *time.Time `json:"timeEdited"`
	Read        bool       `json:"read"`
}
