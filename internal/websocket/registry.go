package websocket

import (
	"hash/fnv"
	"sync"
)

// Conn is the part of a live connection the registry fans out to.
type Conn interface {
	Emit(event string, args ...any)
}

const registryShards = 32

// SessionRegistry maps user ids to their live connections.
//
// Users are spread over independently locked shards so admits and removals
// for unrelated users do not contend. A socket index makes Remove and Lookup
// addressable by socket id alone.
type SessionRegistry struct {
	shards  [registryShards]registryShard
	sockets sync.Map // socketID -> sessionEntry
}

type registryShard struct {
	mu    sync.RWMutex
	users map[string]map[string]Conn // userID -> socketID -> conn
}

type sessionEntry struct {
	userID string
	conn   Conn
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	r := &SessionRegistry{}
	for i := range r.shards {
		r.shards[i].users = make(map[string]map[string]Conn)
	}
	return r
}

func (r *SessionRegistry) shard(userID string) *registryShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return &r.shards[h.Sum32()%registryShards]
}

// Admit registers a connection for userID and reports whether it is the
// user's first concurrent session.
func (r *SessionRegistry) Admit(userID, socketID string, conn Conn) (first bool) {
	sh := r.shard(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	conns, ok := sh.users[userID]
	if !ok {
		conns = make(map[string]Conn)
		sh.users[userID] = conns
	}
	first = len(conns) == 0
	conns[socketID] = conn
	r.sockets.Store(socketID, sessionEntry{userID: userID, conn: conn})
	return first
}

// Remove drops the connection for socketID. It is safe to call more than
// once; only the first call reports removed. last is true when the removed
// socket was the user's final session.
func (r *SessionRegistry) Remove(socketID string) (userID string, removed, last bool) {
	v, ok := r.sockets.LoadAndDelete(socketID)
	if !ok {
		return "", false, false
	}
	entry := v.(sessionEntry)

	sh := r.shard(entry.userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	conns := sh.users[entry.userID]
	delete(conns, socketID)
	if len(conns) == 0 {
		delete(sh.users, entry.userID)
		last = true
	}
	return entry.userID, true, last
}

// Lookup returns the connection and owner of socketID.
func (r *SessionRegistry) Lookup(socketID string) (Conn, string, bool) {
	v, ok := r.sockets.Load(socketID)
	if !ok {
		return nil, "", false
	}
	entry := v.(sessionEntry)
	return entry.conn, entry.userID, true
}

// SessionsFor returns a snapshot of every live connection of userID.
func (r *SessionRegistry) SessionsFor(userID string) []Conn {
	sh := r.shard(userID)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	conns := sh.users[userID]
	out := make([]Conn, 0, len(conns))
	for _, c := range conns {
		out = append(out, c)
	}
	return out
}

// Each calls fn for every live connection. fn runs without any registry lock
// held.
func (r *SessionRegistry) Each(fn func(socketID string, conn Conn)) {
	r.sockets.Range(func(key, value any) bool {
		fn(key.(string), value.(sessionEntry).conn)
		return true
	})
}

// UserCount returns the number of users with at least one connection.
func (r *SessionRegistry) UserCount() int {
	n := 0
	for i := range r.shards {
		sh := &r.shards[i]
		sh.mu.RLock()
		n += len(sh.users)
		sh.mu.RUnlock()
	}
	return n
}

// SessionCount returns the total number of live connections.
func (r *SessionRegistry) SessionCount() int {
	n := 0
	for i := range r.shards {
		sh := &r.shards[i]
		sh.mu.RLock()
		for _, conns := range sh.users {
			n += len(conns)
		}
		sh.mu.RUnlock()
	}
	return n
}
