package wire

// MarkMessagesReadPayload is the client -> server "mark-messages-read" payload.
type MarkMessagesReadPayload struct {
	// CounterpartID is the user whose messages to the caller become read.
	CounterpartID string `json:"counterpartId"`
}

// MessagesReadPayload is the "messages-read-by-receiver" event body.
type MessagesReadPayload struct {
	// ReaderID is the user who read the messages.
	ReaderID string `json:"readerId"`
	// SenderID is the original author, the recipient of this event.
	SenderID string `json:"senderId"`
}
