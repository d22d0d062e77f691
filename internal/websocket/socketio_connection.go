package websocket

import (
	"context"
	"math"

	"github.com/rmancero11/club-dashboard-realtime/internal/metrics"
	sessionruntime "github.com/rmancero11/club-dashboard-realtime/internal/session/runtime"
	"github.com/rmancero11/club-dashboard-realtime/internal/websocket/handlers"
	"github.com/rmancero11/club-dashboard-realtime/shared/logger"
	"github.com/rmancero11/club-dashboard-realtime/shared/wire"
	socket "github.com/zishang520/socket.io/servers/socket/v3"
	"golang.org/x/time/rate"
)

func (s *SocketIOServer) handleConnection(client *socket.Socket) {
	socketID := string(client.Id())

	logger.Infof("Socket.IO connection attempt (socket ID: %s)", socketID)

	userID, ok := s.authenticate(client, socketID)
	if !ok {
		return
	}

	sd := &SocketData{
		UserID:  userID,
		limiter: s.newLimiter(),
	}

	first := s.registry.Admit(userID, socketID, socketConn{s: client})
	metrics.Sessions.Inc()
	metrics.OnlineUsers.Set(float64(s.registry.UserCount()))

	logger.Infof("Socket.IO client ready (user: %s, socket: %s, first: %v)", userID, socketID, first)

	s.syncPresence(userID, socketID)
	s.registerClientHandlers(client, sd, socketID)
}

// authenticate resolves the user id bound to a new socket. Refused sockets get
// an "error" event and are disconnected.
func (s *SocketIOServer) authenticate(client *socket.Socket, socketID string) (string, bool) {
	reject := func(msg string) (string, bool) {
		client.Emit(wire.EventError, wire.ErrorPayload{Message: msg})
		client.Disconnect(true)
		return "", false
	}

	authMap := client.Handshake().Auth
	if len(authMap) == 0 {
		logger.Warnf("Socket.IO missing auth data (socket %s)", socketID)
		return reject("Missing authentication data")
	}

	var authPayload wire.SocketAuthPayload
	if err := decodeAny(authMap, &authPayload); err != nil {
		logger.Warnf("Socket.IO invalid auth data (socket %s): %v", socketID, err)
		return reject("Invalid authentication data")
	}

	handshake, err := handlers.ValidateSocketAuthPayload(authPayload, s.opts.AllowInsecureAuth)
	if err != nil {
		logger.Warnf("Socket.IO handshake auth rejected (socket %s): %v", socketID, err)
		return reject(err.Error())
	}
	if handshake.UserID != "" {
		logger.Debugf("Socket.IO insecure handshake accepted for %s (socket %s)", handshake.UserID, socketID)
		return handshake.UserID, true
	}

	claims, err := s.jwtManager.VerifyToken(handshake.Token)
	if err != nil {
		logger.Warnf("Socket.IO invalid token (socket %s): %v", socketID, err)
		return reject("Invalid authentication token")
	}
	logger.Debugf("Socket.IO token verified: userID=%s socketId=%s", claims.Subject, socketID)
	return claims.Subject, true
}

func (s *SocketIOServer) newLimiter() *rate.Limiter {
	if s.opts.SendRate <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := s.opts.SendBurst
	if burst <= 0 {
		burst = int(math.Ceil(s.opts.SendRate))
	}
	return rate.NewLimiter(rate.Limit(s.opts.SendRate), burst)
}

// handleDisconnect removes the socket and runs the presence side effects. A
// second call for the same socket is a no-op.
func (s *SocketIOServer) handleDisconnect(socketID, reason string) {
	userID, removed, last := s.registry.Remove(socketID)
	if !removed {
		return
	}
	metrics.Sessions.Dec()
	metrics.OnlineUsers.Set(float64(s.registry.UserCount()))

	logger.Infof("User disconnected: %s (socket %s, reason: %s, last: %v)", userID, socketID, reason, last)

	s.syncPresence(userID, socketID)
}

// syncPresence reconciles the announced presence of userID with the registry
// on the user's lane. The registry is read when the task runs, not when it is
// queued, so a reconnect racing a last disconnect settles on the live state
// and repeated tasks for an unchanged state write nothing.
func (s *SocketIOServer) syncPresence(userID, socketID string) {
	auth := handlers.NewAuthContext(userID, socketID)
	s.lanes.Enqueue(sessionruntime.UserLane(userID), func(ctx context.Context) {
		online := len(s.registry.SessionsFor(userID)) > 0
		_, announced := s.announced.Load(userID)

		if online {
			s.announced.Store(userID, struct{}{})
			s.Dispatch(socketID, handlers.Connect(ctx, s.deps, auth, !announced))
			return
		}
		s.announced.Delete(userID)
		s.Dispatch(socketID, handlers.Disconnect(ctx, s.deps, auth, announced))
	})
}
