package handlers

// AuthContext carries authenticated socket identity information into handler
// functions. It excludes transport-specific types.
type AuthContext struct {
	userID   string
	socketID string
}

// NewAuthContext constructs an AuthContext for a single socket event.
//
// socketID is empty when the call originates outside a socket, e.g. from the
// REST API.
func NewAuthContext(userID, socketID string) AuthContext {
	return AuthContext{
		userID:   userID,
		socketID: socketID,
	}
}

// UserID returns the identity bound to the connection.
func (a AuthContext) UserID() string {
	return a.userID
}

// SocketID returns the caller socket id.
func (a AuthContext) SocketID() string {
	return a.socketID
}
