package websocket

import (
	"context"

	sessionruntime "github.com/rmancero11/club-dashboard-realtime/internal/session/runtime"
	"github.com/rmancero11/club-dashboard-realtime/internal/websocket/handlers"
	"github.com/rmancero11/club-dashboard-realtime/shared/logger"
	socket "github.com/zishang520/socket.io/servers/socket/v3"
)

// Dispatch delivers every emission of a handler result through the session
// registry. callerSocketID may be empty for calls that do not originate from
// a socket; caller-scoped emissions are then dropped, as they are when the
// caller has already disconnected.
func (s *SocketIOServer) Dispatch(callerSocketID string, result handlers.EventResult) {
	for _, e := range result.Emits() {
		switch {
		case e.IsCaller():
			if callerSocketID == "" {
				continue
			}
			conn, _, ok := s.registry.Lookup(callerSocketID)
			if !ok {
				logger.Debugf("Dropping %s for departed socket %s", e.Event(), callerSocketID)
				continue
			}
			conn.Emit(e.Event(), e.Payload())
		case e.IsUser():
			for _, conn := range s.registry.SessionsFor(e.UserID()) {
				conn.Emit(e.Event(), e.Payload())
			}
		case e.IsEveryone():
			s.registry.Each(func(_ string, conn Conn) {
				conn.Emit(e.Event(), e.Payload())
			})
		}
	}
}

// onTypedAck registers an event whose handler runs on the socket's lane. The
// result's ack payload is returned through the client's ack callback when one
// was supplied.
func onTypedAck[Req any](
	s *SocketIOServer,
	client *socket.Socket,
	sd *SocketData,
	event string,
	handler func(context.Context, handlers.Deps, handlers.AuthContext, Req) handlers.EventResult,
) {
	socketID := string(client.Id())
	auth := handlers.NewAuthContext(sd.UserID, socketID)

	client.On(event, func(data ...any) {
		raw, ack := getFirstAnyWithAck(data)

		var req Req
		if err := decodeAny(raw, &req); err != nil {
			logger.Debugf("%s: undecodable payload from socket %s: %v", event, socketID, err)
			return
		}

		s.lanes.Enqueue(sessionruntime.SocketLane(socketID), func(ctx context.Context) {
			result := handler(ctx, s.deps, auth, req)
			if ack != nil && result.Ack() != nil {
				ack(result.Ack())
			}
			s.Dispatch(socketID, result)
		})
	})
}

// onTypedEvent is onTypedAck for events that never answer through an ack.
func onTypedEvent[Req any](
	s *SocketIOServer,
	client *socket.Socket,
	sd *SocketData,
	event string,
	handler func(context.Context, handlers.Deps, handlers.AuthContext, Req) handlers.EventResult,
) {
	onTypedAck(s, client, sd, event, func(ctx context.Context, deps handlers.Deps, auth handlers.AuthContext, req Req) handlers.EventResult {
		result := handler(ctx, deps, auth, req)
		return handlers.NewEventResult(nil, result.Emits())
	})
}
