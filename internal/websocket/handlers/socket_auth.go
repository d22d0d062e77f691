package handlers

import (
	"errors"
	"strings"

	"github.com/rmancero11/club-dashboard-realtime/shared/wire"
)

// SocketHandshake is the validated Socket.IO handshake auth payload.
//
// Exactly one of Token and UserID is set. UserID is only produced when
// allowInsecure is true.
type SocketHandshake struct {
	Token  string
	UserID string
}

// ValidateSocketAuthPayload validates the Socket.IO handshake auth payload.
//
// allowInsecure enables the debug-only {userId} form, which trusts the id
// without a token.
func ValidateSocketAuthPayload(auth wire.SocketAuthPayload, allowInsecure bool) (SocketHandshake, error) {
	token := strings.TrimSpace(auth.Token)
	if token != "" {
		return SocketHandshake{Token: token}, nil
	}

	userID := strings.TrimSpace(auth.UserID)
	if userID != "" {
		if !allowInsecure {
			return SocketHandshake{}, errors.New("Missing authentication token")
		}
		return SocketHandshake{UserID: userID}, nil
	}

	return SocketHandshake{}, errors.New("Missing authentication token")
}
