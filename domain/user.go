// Package domain contains core concepts of the real-time gateway.
// This file defines user identity as attached to a live connection.
// No transport, storage, or UI logic should be added here.
package domain

// UserID identifies an account owned by the external user service.
type UserID int

// Identity is the authenticated identity of a connection.
// It is built once from the validated token and never mutated afterwards.
type Identity struct {
	UserID   UserID
	Verified bool
	Blocked  bool
}

// CloseReason is sent in the close frame when the gateway terminates a connection.
type CloseReason string

const (
	CloseUnauthorized CloseReason = "Unauthorized"
	CloseForbidden    CloseReason = "Forbidden"
	CloseNewSignIn    CloseReason = "NewSignIn"
)
