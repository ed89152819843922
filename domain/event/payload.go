package event

import (
	"encoding/json"

	"match-gateway/domain"
)

// Payload shapes for outbound events. Field names follow the client wire
// contract, so they are frozen here rather than derived from domain types.

type Presence struct {
	UserID domain.UserID `json:"userId"`
}

type OnlineList struct {
	OnlineUsers []domain.UserID `json:"onlineUsers"`
}

type NewMessageData struct {
	NewMessage domain.Message `json:"newMessage"`
}

type UpdatedMessageData struct {
	UpdatedMessage domain.Message `json:"updatedMessage"`
}

type DeletedMessageData struct {
	DeletedMessage domain.Message `json:"deletedMessage"`
}

type MessagesReadData struct {
	ChatID     domain.ChatID `json:"chatId"`
	ReceiverID domain.UserID `json:"receiverId"`
}

type MessageList struct {
	Messages []domain.Message `json:"messages"`
}

type Alert struct {
	Message string `json:"message"`
}

type ChatRef struct {
	ChatID domain.ChatID `json:"chatId"`
}

type ReceiverRef struct {
	ReceiverID domain.UserID `json:"receiverId"`
}

type ChatData struct {
	Chat *domain.Chat `json:"chat"`
}

type CallData struct {
	Call domain.CallSession `json:"call"`
}

type CallStatusData struct {
	Status domain.CallStatus `json:"status"`
}

type CallEndedData struct {
	ChatID domain.ChatID `json:"chatId"`
	Status string        `json:"status"`
}

type SignalOffer struct {
	ChatID domain.ChatID   `json:"chatId"`
	Offer  json.RawMessage `json:"offer"`
}

type SignalAnswer struct {
	ChatID domain.ChatID   `json:"chatId"`
	Answer json.RawMessage `json:"answer"`
}

type SignalCandidate struct {
	ChatID    domain.ChatID   `json:"chatId"`
	Candidate json.RawMessage `json:"candidate"`
}

type ErrorData struct {
	Message string `json:"message"`
}
