package domain

import "time"

// CallStatus is the state of a signaling session. There is no terminal
// status: a rejected or ended call is removed from the table instead.
type CallStatus string

const (
	CallRinging CallStatus = "callInitiated"
	CallActive  CallStatus = "inProgress"
)

// CallSession is the transient record of a ringing or active call.
// A chat carries at most one session, and a user is a party to at most
// one session process-wide once an answer completes.
type CallSession struct {
	ChatID            ChatID     `json:"chatId"`
	Initiator         UserID     `json:"initiatorId"`
	Recipient         UserID     `json:"recipientId"`
	Status            CallStatus `json:"status"`
	TimeCallInitiated time.Time  `json:"timeCallInitiated"`
}

// PeerOf returns the opposite party of the session.
func (s CallSession) PeerOf(userID UserID) UserID {
	if userID == s.Initiator {
		return s.Recipient
	}
	return s.Initiator
}

// Involves reports whether userID is a party to the session.
func (s CallSession) Involves(userID UserID) bool {
	return userID == s.Initiator || userID == s.Recipient
}
