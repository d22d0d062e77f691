package wire

// DeleteMessagePayload is the client -> server "delete-message" payload.
type DeleteMessagePayload struct {
	// MessageID is the deleted message.
	MessageID string `json:"messageId"`
	// MatchID is the counterpart user id identifying the conversation.
	MatchID string `json:"matchId"`
	// UserID is the acting user; it must equal the socket identity.
	UserID string `json:"userId"`
}

// DeleteConversationPayload is the client -> server "delete-conversation"
// payload.
type DeleteConversationPayload struct {
	MatchID string `json:"matchId"`
	UserID  string `json:"userId"`
}

// MessageDeletedPayload is the "message-deleted" event body. MatchID always
// names the recipient's counterpart.
type MessageDeletedPayload struct {
	MessageID string `json:"messageId"`
	MatchID   string `json:"matchId"`
	UserID    string `json:"userId"`
}

// ConversationDeletedPayload is the "conversation-deleted" event body.
type ConversationDeletedPayload struct {
	MatchID string `json:"matchId"`
	UserID  string `json:"userId"`
}
