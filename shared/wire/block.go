package wire

// BlockRequestPayload is the client -> server payload for "block-user",
// "unblock-user", "notify-block" and "notify-unblock".
type BlockRequestPayload struct {
	BlockedUserID string `json:"blockedUserId"`
}

// BlockEventPayload is the body of every block/unblock notification.
type BlockEventPayload struct {
	BlockerID string `json:"blockerId"`
	BlockedID string `json:"blockedId"`
}
