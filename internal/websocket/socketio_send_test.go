package websocket

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/rmancero11/club-dashboard-realtime/internal/models"
	"github.com/rmancero11/club-dashboard-realtime/internal/websocket/handlers"
	"github.com/rmancero11/club-dashboard-realtime/shared/wire"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type messageLog struct {
	mu      sync.Mutex
	created []models.CreateMessageParams
}

func (m *messageLog) CreateMessage(_ context.Context, arg models.CreateMessageParams) (models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, arg)
	return models.Message{
		ID:         arg.ID,
		SenderID:   arg.SenderID,
		ReceiverID: arg.ReceiverID,
		Content:    arg.Content,
		CreatedAt:  arg.CreatedAt,
	}, nil
}

func (m *messageLog) MarkMessagesRead(context.Context, models.MarkMessagesReadParams) (int64, error) {
	return 0, nil
}

func (m *messageLog) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created)
}

type noBlocks struct{}

func (noBlocks) GetBlockedUser(context.Context, models.GetBlockedUserParams) (models.BlockedUser, error) {
	return models.BlockedUser{}, sql.ErrNoRows
}

func (noBlocks) CreateBlockedUser(context.Context, models.CreateBlockedUserParams) error {
	return nil
}

func (noBlocks) DeleteBlockedUser(context.Context, models.DeleteBlockedUserParams) (int64, error) {
	return 0, nil
}

func TestLimitedSend_RejectsOverBurstWithoutPersisting(t *testing.T) {
	store := &messageLog{}
	deps := handlers.NewDeps(nil, store, noBlocks{}, time.Now, func() string { return "m1" })
	auth := handlers.NewAuthContext("a", "a1")
	send := limitedSend(rate.NewLimiter(rate.Every(time.Hour), 1))

	res := send(context.Background(), deps, auth, wire.SendMessagePayload{ReceiverID: "b", Content: "hi", LocalID: "l1"})
	sent, ok := res.Ack().(wire.MessageSentPayload)
	require.True(t, ok)
	require.Equal(t, "l1", sent.LocalID)
	require.Equal(t, 1, store.count())

	res = send(context.Background(), deps, auth, wire.SendMessagePayload{ReceiverID: "b", Content: "again", LocalID: "l2"})
	require.Equal(t, wire.MessageErrorPayload{
		LocalID: "l2",
		Reason:  wire.ReasonRateLimited,
		Message: "too many messages, slow down",
	}, res.Ack())
	require.Equal(t, 1, store.count())

	s := newTestServer(t, nil)
	caller := &recordingConn{}
	s.registry.Admit("a", "a1", caller)
	s.Dispatch("a1", res)
	require.Equal(t, []string{wire.EventMessageError}, caller.received())
}

func TestNewLimiter(t *testing.T) {
	unlimited := (&SocketIOServer{opts: Options{SendRate: 0}}).newLimiter()
	require.Equal(t, rate.Inf, unlimited.Limit())
	for i := 0; i < 1000; i++ {
		require.True(t, unlimited.Allow())
	}

	defaulted := (&SocketIOServer{opts: Options{SendRate: 2.5}}).newLimiter()
	require.Equal(t, rate.Limit(2.5), defaulted.Limit())
	require.Equal(t, 3, defaulted.Burst())

	explicit := (&SocketIOServer{opts: Options{SendRate: 5, SendBurst: 20}}).newLimiter()
	require.Equal(t, 20, explicit.Burst())
}
