package wire

// UserStatusPayload is the global "user-status-change" event body.
type UserStatusPayload struct {
	UserID string `json:"userId"`
	Online bool   `json:"online"`
}

// PresenceResponse is the HTTP GET /v1/presence response body.
type PresenceResponse struct {
	// Online maps each requested user id to its stored flag.
	Online map[string]bool `json:"online"`
}
