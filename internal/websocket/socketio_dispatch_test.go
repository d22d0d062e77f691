package websocket

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rmancero11/club-dashboard-realtime/internal/models"
	sessionruntime "github.com/rmancero11/club-dashboard-realtime/internal/session/runtime"
	"github.com/rmancero11/club-dashboard-realtime/internal/websocket/handlers"
	"github.com/rmancero11/club-dashboard-realtime/shared/wire"
	"github.com/stretchr/testify/require"
)

type presenceLog struct {
	mu     sync.Mutex
	writes []models.UpsertUserOnlineParams
}

func (p *presenceLog) UpsertUserOnline(_ context.Context, arg models.UpsertUserOnlineParams) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writes = append(p.writes, arg)
	return nil
}

func (p *presenceLog) flags() []int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]int64, 0, len(p.writes))
	for _, w := range p.writes {
		out = append(out, w.Online)
	}
	return out
}

func newTestServer(t *testing.T, users handlers.UserQueries) *SocketIOServer {
	t.Helper()
	s := &SocketIOServer{
		registry: NewSessionRegistry(),
		lanes:    sessionruntime.NewManager(0),
		deps:     handlers.NewDeps(users, nil, nil, time.Now, func() string { return "id" }),
	}
	t.Cleanup(s.lanes.Close)
	return s
}

func TestDispatch_FansOutToEverySession(t *testing.T) {
	s := newTestServer(t, nil)
	a1, a2, b1 := &recordingConn{}, &recordingConn{}, &recordingConn{}
	s.registry.Admit("a", "a1", a1)
	s.registry.Admit("a", "a2", a2)
	s.registry.Admit("b", "b1", b1)

	res := handlers.NotifyBlock(context.Background(), s.deps, handlers.NewAuthContext("b", "b1"), wire.BlockRequestPayload{BlockedUserID: "a"})
	s.Dispatch("b1", res)

	require.Equal(t, []string{wire.EventYouAreBlocked}, a1.received())
	require.Equal(t, []string{wire.EventYouAreBlocked}, a2.received())
	require.Equal(t, []string{wire.EventUserBlockedSuccess}, b1.received())
}

func TestDispatch_CallerEmitDroppedAfterDisconnect(t *testing.T) {
	s := newTestServer(t, nil)
	a1 := &recordingConn{}
	s.registry.Admit("a", "a1", a1)

	res := handlers.SendRejected("l1", wire.ReasonRateLimited)
	s.Dispatch("a1", res)
	require.Equal(t, []string{wire.EventMessageError}, a1.received())

	s.registry.Remove("a1")
	s.Dispatch("a1", res)
	s.Dispatch("", res)
	require.Len(t, a1.received(), 1)
}

func waitLanesIdle(t *testing.T, s *SocketIOServer) {
	t.Helper()
	require.Eventually(t, func() bool { return s.lanes.Lanes() == 0 }, time.Second, 5*time.Millisecond)
}

func statusChanges(c *recordingConn) []wire.UserStatusPayload {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []wire.UserStatusPayload
	for i, ev := range c.events {
		if ev == wire.EventUserStatusChange {
			out = append(out, c.args[i][0].(wire.UserStatusPayload))
		}
	}
	return out
}

func TestHandleDisconnect_PresenceFollowsLastSession(t *testing.T) {
	users := &presenceLog{}
	s := newTestServer(t, users)
	observer := &recordingConn{}
	s.registry.Admit("obs", "obs1", observer)
	s.registry.Admit("a", "a1", &recordingConn{})
	s.registry.Admit("a", "a2", &recordingConn{})
	s.syncPresence("a", "a2")
	waitLanesIdle(t, s)

	s.handleDisconnect("a1", "transport close")
	s.handleDisconnect("a1", "transport close")
	waitLanesIdle(t, s)
	require.Equal(t, []int64{1}, users.flags())

	s.handleDisconnect("a2", "ping timeout")
	waitLanesIdle(t, s)

	require.Equal(t, []int64{1, 0}, users.flags())
	require.Equal(t, []wire.UserStatusPayload{
		{UserID: "a", Online: true},
		{UserID: "a", Online: false},
	}, statusChanges(observer))
}

func TestSyncPresence_ReconnectRacingLastDisconnect(t *testing.T) {
	users := &presenceLog{}
	s := newTestServer(t, users)
	observer := &recordingConn{}
	s.registry.Admit("obs", "obs1", observer)
	s.registry.Admit("a", "a1", &recordingConn{})
	s.syncPresence("a", "a1")
	waitLanesIdle(t, s)

	// a1 drops and a2 arrives; the reconnect's task is queued ahead of the
	// disconnect's.
	_, _, last := s.registry.Remove("a1")
	require.True(t, last)
	require.True(t, s.registry.Admit("a", "a2", &recordingConn{}))
	s.syncPresence("a", "a2")
	s.syncPresence("a", "a1")
	waitLanesIdle(t, s)

	require.Len(t, s.registry.SessionsFor("a"), 1)
	require.Equal(t, []int64{1}, users.flags())
	require.Equal(t, []wire.UserStatusPayload{{UserID: "a", Online: true}}, statusChanges(observer))

	s.handleDisconnect("a2", "transport close")
	waitLanesIdle(t, s)
	require.Equal(t, []int64{1, 0}, users.flags())
}
