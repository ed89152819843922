// Package event defines the typed {event, data} envelopes exchanged over a
// persistent connection, in both directions.
package event

import "encoding/json"

// Name identifies one event type on the wire.
type Name string

// Outbound events, pushed by the gateway to clients.
const (
	UserWentOnline         Name = "userWentOnline"
	UserWentOffline        Name = "userWentOffline"
	OnlineUsers            Name = "onlineUsers"
	NewMessage             Name = "newMessage"
	MessageCreated         Name = "messageCreated"
	MessageEdited          Name = "messageEdited"
	MessageDeleted         Name = "messageDeleted"
	MessagesRead           Name = "messagesRead"
	FirstMessages          Name = "firstMessages"
	MoreMessages           Name = "moreMessages"
	NewChat                Name = "newChat"
	RemoveChat             Name = "removeChat"
	Dialing                Name = "dialing"
	CallInitiated          Name = "callInitiated"
	ConnectedToCall        Name = "connectedToCall"
	RecipientAnswered      Name = "recipientAnswered"
	CallRejected           Name = "callRejected"
	CallEnded              Name = "callEnded"
	OfferCreated           Name = "offerCreated"
	AnswerCreated          Name = "answerCreated"
	NewIceCandidate        Name = "newIceCandidate"
	AlertMessage           Name = "alertMessage"
	Forbidden              Name = "forbidden"
	NoChatFound            Name = "noChatFound"
	NoChatWithSuchReceiver Name = "noChatWithSuchReceiver"
	Error                  Name = "error"
)

// Inbound events, sent by clients to the gateway.
const (
	GetOnlineUsers     Name = "getOnlineUsers"
	GetMessages        Name = "getMessages"
	SendMessage        Name = "sendMessage"
	EditMessage        Name = "editMessage"
	DeleteMessage      Name = "deleteMessage"
	ReadMessagesInChat Name = "readMessagesInChat"
	UserCreatedChat    Name = "userCreatedChat"
	RemoveChatForUser  Name = "removeChatForUser"
	CallEnter          Name = "callEnter"
	AnswerCall         Name = "answerCall"
	RejectCall         Name = "rejectCall"
	EndCall            Name = "endCall"
	CallOffer          Name = "callOffer"
	CallAnswer         Name = "callAnswer"
	IceCandidate       Name = "iceCandidate"
)

// Envelope is the wire form of every event in both directions.
// Data keeps its JSON shape so signaling payloads pass through opaque.
type Envelope struct {
	Event Name `json:"event"`
	Data  any  `json:"data"`
}

// Inbound is a received frame before its payload is interpreted.
type Inbound struct {
	Event Name            `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// New builds an outbound envelope.
func New(name Name, data any) Envelope {
	return Envelope{Event: name, Data: data}
}
