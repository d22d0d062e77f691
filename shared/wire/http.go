package wire

import "time"

// CreateBlockRequest is the HTTP POST /v1/blocks request body.
type CreateBlockRequest struct {
	// UID is the user to block.
	UID string `json:"uid" binding:"required"`
}

// BlockedUser is one entry of a ListBlocksResponse.
type BlockedUser struct {
	// ID is the blocked user id.
	ID string `json:"id"`
	// BlockedAt is when the edge was created.
	BlockedAt time.Time `json:"blockedAt"`
}

// ListBlocksResponse is the HTTP GET /v1/blocks response body.
type ListBlocksResponse struct {
	Blocked []BlockedUser `json:"blocked"`
}

// ListMessagesResponse is the HTTP GET /v1/conversations/:uid/messages
// response body, newest message last.
type ListMessagesResponse struct {
	Messages []Message `json:"messages"`
}

// DeleteConversationResponse is the HTTP DELETE /v1/conversations/:uid
// response body.
type DeleteConversationResponse struct {
	// Deleted is the number of removed messages.
	Deleted int64 `json:"deleted"`
}
