package handlers

import (
	"context"

	"github.com/rmancero11/club-dashboard-realtime/internal/models"
	wshandlers "github.com/rmancero11/club-dashboard-realtime/internal/websocket/handlers"
)

// Fanout delivers a websocket handler result to live sessions. The REST
// handlers use it so out-of-band mutations reach already open chats.
type Fanout interface {
	Dispatch(callerSocketID string, result wshandlers.EventResult)
}

// BlockStore is the subset of queries used by the block endpoints.
type BlockStore interface {
	CreateBlockedUser(ctx context.Context, arg models.CreateBlockedUserParams) error
	DeleteBlockedUser(ctx context.Context, arg models.DeleteBlockedUserParams) (int64, error)
	ListBlockedUsers(ctx context.Context, blockerID string) ([]models.BlockedUser, error)
}

// MessageStore is the subset of queries used by the message endpoints.
type MessageStore interface {
	GetMessageByID(ctx context.Context, id string) (models.Message, error)
	ListConversationMessages(ctx context.Context, arg models.ListConversationMessagesParams) ([]models.Message, error)
	DeleteMessage(ctx context.Context, arg models.DeleteMessageParams) (int64, error)
	DeleteConversation(ctx context.Context, arg models.DeleteConversationParams) (int64, error)
}
