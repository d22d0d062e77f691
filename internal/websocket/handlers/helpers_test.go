package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/rmancero11/club-dashboard-realtime/internal/models"
	"github.com/stretchr/testify/require"
)

type fakeUserQueries struct {
	upsertOnline func(ctx context.Context, arg models.UpsertUserOnlineParams) error
}

func (f fakeUserQueries) UpsertUserOnline(ctx context.Context, arg models.UpsertUserOnlineParams) error {
	return f.upsertOnline(ctx, arg)
}

type fakeMessageQueries struct {
	create   func(ctx context.Context, arg models.CreateMessageParams) (models.Message, error)
	markRead func(ctx context.Context, arg models.MarkMessagesReadParams) (int64, error)
}

func (f fakeMessageQueries) CreateMessage(ctx context.Context, arg models.CreateMessageParams) (models.Message, error) {
	return f.create(ctx, arg)
}

func (f fakeMessageQueries) MarkMessagesRead(ctx context.Context, arg models.MarkMessagesReadParams) (int64, error) {
	return f.markRead(ctx, arg)
}

type fakeBlockQueries struct {
	get    func(ctx context.Context, arg models.GetBlockedUserParams) (models.BlockedUser, error)
	create func(ctx context.Context, arg models.CreateBlockedUserParams) error
	delete func(ctx context.Context, arg models.DeleteBlockedUserParams) (int64, error)
}

func (f fakeBlockQueries) GetBlockedUser(ctx context.Context, arg models.GetBlockedUserParams) (models.BlockedUser, error) {
	return f.get(ctx, arg)
}

func (f fakeBlockQueries) CreateBlockedUser(ctx context.Context, arg models.CreateBlockedUserParams) error {
	return f.create(ctx, arg)
}

func (f fakeBlockQueries) DeleteBlockedUser(ctx context.Context, arg models.DeleteBlockedUserParams) (int64, error) {
	return f.delete(ctx, arg)
}

var testNow = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

func testDeps(users UserQueries, messages MessageQueries, blocks BlockQueries) Deps {
	return NewDeps(users, messages, blocks, func() time.Time { return testNow }, func() string { return "msg-1" })
}

// emitsFor returns the emissions of res targeted at userID.
func emitsFor(res EventResult, userID string) []EmitInstruction {
	var out []EmitInstruction
	for _, e := range res.Emits() {
		if e.IsUser() && e.UserID() == userID {
			out = append(out, e)
		}
	}
	return out
}

func callerEmits(res EventResult) []EmitInstruction {
	var out []EmitInstruction
	for _, e := range res.Emits() {
		if e.IsCaller() {
			out = append(out, e)
		}
	}
	return out
}

func requireNothing(t *testing.T, res EventResult) {
	t.Helper()
	require.True(t, res.Empty(), "expected no ack or emissions, got %+v", res)
}
