package wire

// SocketAuthPayload is the client -> server Socket.IO auth payload sent in the
// handshake.
type SocketAuthPayload struct {
	// Token is the bearer token for the authenticated user.
	Token string `json:"token"`
	// UserID is accepted without a token only when the server runs in debug
	// mode.
	UserID string `json:"userId,omitempty"`
}

// ErrorPayload is the body of the "error" event emitted before a refused
// socket is disconnected.
type ErrorPayload struct {
	Message string `json:"message"`
}
