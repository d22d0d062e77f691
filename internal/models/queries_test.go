package models_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/rmancero11/club-dashboard-realtime/internal/database"
	"github.com/rmancero11/club-dashboard-realtime/internal/models"
	"github.com/stretchr/testify/require"
)

func openQueries(t *testing.T) *models.Queries {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return models.New(db.DB)
}

func TestUpsertUserOnline(t *testing.T) {
	ctx := context.Background()
	q := openQueries(t)
	now := time.Now().UTC()

	require.NoError(t, q.UpsertUserOnline(ctx, models.UpsertUserOnlineParams{ID: "u1", Online: 1, UpdatedAt: now}))
	u, err := q.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, int64(1), u.Online)

	require.NoError(t, q.UpsertUserOnline(ctx, models.UpsertUserOnlineParams{ID: "u1", Online: 0, UpdatedAt: now}))
	u, err = q.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, int64(0), u.Online)

	online, err := q.UsersOnlineByIDs(ctx, []string{"u1", "ghost", " "})
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"u1": false, "ghost": false}, online)
}

func TestResetAllPresence(t *testing.T) {
	ctx := context.Background()
	q := openQueries(t)
	now := time.Now().UTC()

	require.NoError(t, q.UpsertUserOnline(ctx, models.UpsertUserOnlineParams{ID: "u1", Online: 1, UpdatedAt: now}))
	require.NoError(t, q.UpsertUserOnline(ctx, models.UpsertUserOnlineParams{ID: "u2", Online: 1, UpdatedAt: now}))
	require.NoError(t, q.UpsertUserOnline(ctx, models.UpsertUserOnlineParams{ID: "u3", Online: 0, UpdatedAt: now}))

	n, err := q.ResetAllPresence(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}

func TestBlockedUsers_IdempotentCreateAndDelete(t *testing.T) {
	ctx := context.Background()
	q := openQueries(t)
	now := time.Now().UTC()

	arg := models.CreateBlockedUserParams{BlockerID: "a", BlockedID: "b", CreatedAt: now}
	require.NoError(t, q.CreateBlockedUser(ctx, arg))
	require.NoError(t, q.CreateBlockedUser(ctx, arg))

	list, err := q.ListBlockedUsers(ctx, "a")
	require.NoError(t, err)
	require.Len(t, list, 1)

	edge, err := q.GetBlockedUser(ctx, models.GetBlockedUserParams{BlockerID: "a", BlockedID: "b"})
	require.NoError(t, err)
	require.Equal(t, "b", edge.BlockedID)

	// Direction matters.
	_, err = q.GetBlockedUser(ctx, models.GetBlockedUserParams{BlockerID: "b", BlockedID: "a"})
	require.True(t, errors.Is(err, sql.ErrNoRows))

	n, err := q.DeleteBlockedUser(ctx, models.DeleteBlockedUserParams{BlockerID: "a", BlockedID: "b"})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = q.DeleteBlockedUser(ctx, models.DeleteBlockedUserParams{BlockerID: "a", BlockedID: "b"})
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
}

func TestMessages_MarkReadIsMonotonic(t *testing.T) {
	ctx := context.Background()
	q := openQueries(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i, id := range []string{"m1", "m2"} {
		_, err := q.CreateMessage(ctx, models.CreateMessageParams{
			ID:         id,
			SenderID:   "b",
			ReceiverID: "a",
			Content:    "hi",
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}
	// A message in the other direction is never touched by a's read.
	_, err := q.CreateMessage(ctx, models.CreateMessageParams{
		ID: "m3", SenderID: "a", ReceiverID: "b", Content: "yo", CreatedAt: base.Add(3 * time.Second),
		ImageUrl: sql.NullString{String: "https://cdn.example/x.png", Valid: true},
	})
	require.NoError(t, err)

	firstRead := base.Add(time.Minute)
	n, err := q.MarkMessagesRead(ctx, models.MarkMessagesReadParams{ReadAt: firstRead, SenderID: "b", ReceiverID: "a"})
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	n, err = q.MarkMessagesRead(ctx, models.MarkMessagesReadParams{ReadAt: base.Add(time.Hour), SenderID: "b", ReceiverID: "a"})
	require.NoError(t, err)
	require.Equal(t, int64(0), n)

	m1, err := q.GetMessageByID(ctx, "m1")
	require.NoError(t, err)
	require.True(t, m1.ReadAt.Valid)
	require.True(t, firstRead.Equal(m1.ReadAt.Time))

	m3, err := q.GetMessageByID(ctx, "m3")
	require.NoError(t, err)
	require.False(t, m3.ReadAt.Valid)
	require.Equal(t, "https://cdn.example/x.png", m3.ImageUrl.String)
}

func TestMessages_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	q := openQueries(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i, id := range []string{"m1", "m2", "m3"} {
		sender, receiver := "a", "b"
		if i == 1 {
			sender, receiver = "b", "a"
		}
		_, err := q.CreateMessage(ctx, models.CreateMessageParams{
			ID: id, SenderID: sender, ReceiverID: receiver, Content: id,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}
	_, err := q.CreateMessage(ctx, models.CreateMessageParams{
		ID: "other", SenderID: "a", ReceiverID: "c", Content: "x", CreatedAt: base,
	})
	require.NoError(t, err)

	msgs, err := q.ListConversationMessages(ctx, models.ListConversationMessagesParams{UserID: "a", CounterpartID: "b", Limit: 2})
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "m2", msgs[0].ID)
	require.Equal(t, "m3", msgs[1].ID)

	// Only the sender may delete a message.
	n, err := q.DeleteMessage(ctx, models.DeleteMessageParams{ID: "m2", SenderID: "a"})
	require.NoError(t, err)
	require.Equal(t, int64(0), n)

	n, err = q.DeleteMessage(ctx, models.DeleteMessageParams{ID: "m2", SenderID: "b"})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = q.DeleteConversation(ctx, models.DeleteConversationParams{UserID: "b", CounterpartID: "a"})
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	_, err = q.GetMessageByID(ctx, "other")
	require.NoError(t, err)
}
