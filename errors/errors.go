package errors

import "fmt"

var (
	ErrChatNotFound    = fmt.Errorf("can't find chat")
	ErrMessageNotFound = fmt.Errorf("No message found!")
	ErrNotMessageOwner = fmt.Errorf("Only sender can change the message!")
	ErrNotDeleteOwner  = fmt.Errorf("you can not delete messages that are not your own")
	ErrEmptyContent    = fmt.Errorf("message content is empty")
	ErrForbidden       = fmt.Errorf("forbidden")
	ErrInvalidToken    = fmt.Errorf("invalid or expired token")
)
