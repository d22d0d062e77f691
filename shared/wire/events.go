package wire

// Socket.IO event names exchanged with chat clients.
const (
	// EventSendMessage is the client -> server chat send request.
	EventSendMessage = "send-message"
	// EventReceiveMessage delivers a persisted message to the receiver.
	EventReceiveMessage = "receive-message"
	// EventMessageSentSuccess acknowledges a persisted send to its sender.
	EventMessageSentSuccess = "message-sent-success"
	// EventMessageError reports a send that was refused or failed.
	EventMessageError = "message-error"

	// EventMarkMessagesRead is the client -> server read-receipt request.
	EventMarkMessagesRead = "mark-messages-read"
	// EventMessagesReadByReceiver tells the original sender its messages were read.
	EventMessagesReadByReceiver = "messages-read-by-receiver"

	// EventBlockUser blocks a user and persists the edge.
	EventBlockUser = "block-user"
	// EventUnblockUser removes a block edge.
	EventUnblockUser = "unblock-user"
	// EventNotifyBlock re-broadcasts a block performed out-of-band.
	EventNotifyBlock = "notify-block"
	// EventNotifyUnblock re-broadcasts an unblock performed out-of-band.
	EventNotifyUnblock = "notify-unblock"
	// EventUserBlockedSuccess is sent to every session of the blocker.
	EventUserBlockedSuccess = "user-blocked-success"
	// EventYouAreBlocked is sent to every session of the blocked user.
	EventYouAreBlocked = "you-are-blocked"
	// EventUnblockSuccess is sent to every session of the unblocking user.
	EventUnblockSuccess = "unblock-success"
	// EventYouAreUnblocked is sent to every session of the unblocked user.
	EventYouAreUnblocked = "you-are-unblocked"

	// EventDeleteMessage announces a message deletion done out-of-band.
	EventDeleteMessage = "delete-message"
	// EventDeleteConversation announces a conversation deletion done out-of-band.
	EventDeleteConversation = "delete-conversation"
	// EventMessageDeleted is the fan-out of EventDeleteMessage.
	EventMessageDeleted = "message-deleted"
	// EventConversationDeleted is the fan-out of EventDeleteConversation.
	EventConversationDeleted = "conversation-deleted"

	// EventUserStatusChange is the global presence broadcast.
	EventUserStatusChange = "user-status-change"

	// EventError is emitted before the server drops a socket it refuses.
	EventError = "error"
)
