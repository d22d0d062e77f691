package wire

import "time"

// Message is a persisted chat message as seen by clients.
type Message struct {
	// ID is the server-assigned message id.
	ID string `json:"id"`
	// SenderID is the author of the message.
	SenderID string `json:"senderId"`
	// ReceiverID is the counterpart the message was sent to.
	ReceiverID string `json:"receiverId"`
	// Content is the message text.
	Content string `json:"content"`
	// ImageURL is an optional attachment url; null when absent.
	ImageURL *string `json:"imageUrl"`
	// CreatedAt is the server persistence time.
	CreatedAt time.Time `json:"createdAt"`
	// ReadAt is set once the receiver marked the message read.
	ReadAt *time.Time `json:"readAt"`
}

// SendMessagePayload is the client -> server "send-message" payload.
type SendMessagePayload struct {
	// SenderID must match the socket's identity when present.
	SenderID string `json:"senderId,omitempty"`
	// ReceiverID is the counterpart user id.
	ReceiverID string `json:"receiverId"`
	// Content is the message text.
	Content string `json:"content"`
	// ImageURL is an optional, already uploaded attachment url.
	ImageURL *string `json:"imageUrl,omitempty"`
	// LocalID is the client correlation token; it is echoed back and never
	// stored.
	LocalID string `json:"localId"`
}

// MessageSentPayload is the "message-sent-success" ack: the persisted message
// plus the caller's correlation token.
type MessageSentPayload struct {
	Message
	LocalID string `json:"localId"`
}

// Reasons carried by MessageErrorPayload.
const (
	// ReasonBlockedByReceiver means the receiver has blocked the sender.
	ReasonBlockedByReceiver = "blocked-by-receiver"
	// ReasonReceiverBlocked means the sender has blocked the receiver.
	ReasonReceiverBlocked = "receiver-blocked"
	// ReasonSendFailed means the message could not be persisted.
	ReasonSendFailed = "send-failed"
	// ReasonRateLimited means the socket exceeded its send budget.
	ReasonRateLimited = "rate-limited"
)

// MessageErrorPayload is the "message-error" event body.
type MessageErrorPayload struct {
	// LocalID is the correlation token of the failed send, unaltered.
	LocalID string `json:"localId"`
	// Reason is one of the Reason* constants.
	Reason string `json:"reason"`
	// Message is a human readable description.
	Message string `json:"message"`
}
