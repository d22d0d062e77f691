package handlers

import (
	"context"
	"time"

	"github.com/rmancero11/club-dashboard-realtime/internal/models"
)

// UserQueries is the subset of user queries used by websocket handlers.
type UserQueries interface {
	UpsertUserOnline(ctx context.Context, arg models.UpsertUserOnlineParams) error
}

// MessageQueries is the subset of message queries used by websocket handlers.
type MessageQueries interface {
	CreateMessage(ctx context.Context, arg models.CreateMessageParams) (models.Message, error)
	MarkMessagesRead(ctx context.Context, arg models.MarkMessagesReadParams) (int64, error)
}

// BlockQueries is the subset of blocked-user queries used by websocket
// handlers.
type BlockQueries interface {
	GetBlockedUser(ctx context.Context, arg models.GetBlockedUserParams) (models.BlockedUser, error)
	CreateBlockedUser(ctx context.Context, arg models.CreateBlockedUserParams) error
	DeleteBlockedUser(ctx context.Context, arg models.DeleteBlockedUserParams) (int64, error)
}

// Deps holds the narrow dependencies required by websocket handlers.
type Deps struct {
	users    UserQueries
	messages MessageQueries
	blocks   BlockQueries
	now      func() time.Time
	newID    func() string
}

// NewDeps builds a dependency bundle for handler calls.
func NewDeps(
	users UserQueries,
	messages MessageQueries,
	blocks BlockQueries,
	now func() time.Time,
	newID func() string,
) Deps {
	return Deps{
		users:    users,
		messages: messages,
		blocks:   blocks,
		now:      now,
		newID:    newID,
	}
}

func (d Deps) Users() UserQueries       { return d.users }
func (d Deps) Messages() MessageQueries { return d.messages }
func (d Deps) Blocks() BlockQueries     { return d.blocks }
func (d Deps) Now() time.Time {
	if d.now != nil {
		return d.now()
	}
	return time.Now().UTC()
}
func (d Deps) NewID() string {
	if d.newID != nil {
		return d.newID()
	}
	return ""
}
