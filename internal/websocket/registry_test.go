package websocket

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingConn struct {
	mu     sync.Mutex
	events []string
	args   [][]any
}

func (c *recordingConn) Emit(event string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	c.args = append(c.args, args)
}

func (c *recordingConn) received() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.events...)
}

func TestSessionRegistry_FirstAndLast(t *testing.T) {
	r := NewSessionRegistry()

	require.True(t, r.Admit("u1", "s1", &recordingConn{}))
	require.False(t, r.Admit("u1", "s2", &recordingConn{}))
	require.Equal(t, 1, r.UserCount())
	require.Equal(t, 2, r.SessionCount())
	require.Len(t, r.SessionsFor("u1"), 2)

	userID, removed, last := r.Remove("s1")
	require.Equal(t, "u1", userID)
	require.True(t, removed)
	require.False(t, last)

	_, removed, last = r.Remove("s2")
	require.True(t, removed)
	require.True(t, last)
	require.Zero(t, r.UserCount())
	require.Empty(t, r.SessionsFor("u1"))

	// A reconnect after going offline is a first session again.
	require.True(t, r.Admit("u1", "s3", &recordingConn{}))
}

func TestSessionRegistry_RemoveIsIdempotent(t *testing.T) {
	r := NewSessionRegistry()
	r.Admit("u1", "s1", &recordingConn{})

	var wg sync.WaitGroup
	var mu sync.Mutex
	removedCount, lastCount := 0, 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, removed, last := r.Remove("s1")
			mu.Lock()
			defer mu.Unlock()
			if removed {
				removedCount++
			}
			if last {
				lastCount++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, removedCount)
	require.Equal(t, 1, lastCount)
	_, _, ok := r.Lookup("s1")
	require.False(t, ok)
}

func TestSessionRegistry_ConcurrentUsers(t *testing.T) {
	r := NewSessionRegistry()
	var wg sync.WaitGroup
	for u := 0; u < 20; u++ {
		for s := 0; s < 5; s++ {
			wg.Add(1)
			go func(u, s int) {
				defer wg.Done()
				r.Admit(fmt.Sprintf("u%d", u), fmt.Sprintf("u%d-s%d", u, s), &recordingConn{})
			}(u, s)
		}
	}
	wg.Wait()

	require.Equal(t, 20, r.UserCount())
	require.Equal(t, 100, r.SessionCount())

	seen := 0
	r.Each(func(string, Conn) { seen++ })
	require.Equal(t, 100, seen)

	conn, userID, ok := r.Lookup("u7-s3")
	require.True(t, ok)
	require.NotNil(t, conn)
	require.Equal(t, "u7", userID)
}
