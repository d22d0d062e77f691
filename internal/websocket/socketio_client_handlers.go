package websocket

import (
	"context"

	"github.com/rmancero11/club-dashboard-realtime/internal/websocket/handlers"
	"github.com/rmancero11/club-dashboard-realtime/shared/wire"
	socket "github.com/zishang520/socket.io/servers/socket/v3"
	"golang.org/x/time/rate"
)

func (s *SocketIOServer) registerClientHandlers(client *socket.Socket, sd *SocketData, socketID string) {
	// Chat send: rate limited per socket, answered by ack and by event.
	onTypedAck(s, client, sd, wire.EventSendMessage, limitedSend(sd.limiter))

	onTypedEvent(s, client, sd, wire.EventMarkMessagesRead, handlers.MarkMessagesRead)

	// Block coordination.
	onTypedEvent(s, client, sd, wire.EventBlockUser, handlers.BlockUser)
	onTypedEvent(s, client, sd, wire.EventUnblockUser, handlers.UnblockUser)
	onTypedEvent(s, client, sd, wire.EventNotifyBlock, handlers.NotifyBlock)
	onTypedEvent(s, client, sd, wire.EventNotifyUnblock, handlers.NotifyUnblock)

	// Deletion relays.
	onTypedEvent(s, client, sd, wire.EventDeleteMessage, handlers.DeleteMessage)
	onTypedEvent(s, client, sd, wire.EventDeleteConversation, handlers.DeleteConversation)

	client.On("disconnect", func(data ...any) {
		reason := ""
		if len(data) > 0 {
			if r, ok := data[0].(string); ok {
				reason = r
			}
		}
		s.handleDisconnect(socketID, reason)
	})
}

// limitedSend wraps handlers.SendMessage with the socket's token bucket. An
// over-limit send is rejected before anything is looked up or stored.
func limitedSend(limiter *rate.Limiter) func(context.Context, handlers.Deps, handlers.AuthContext, wire.SendMessagePayload) handlers.EventResult {
	return func(ctx context.Context, deps handlers.Deps, auth handlers.AuthContext, req wire.SendMessagePayload) handlers.EventResult {
		if !limiter.Allow() {
			return handlers.SendRejected(req.LocalID, wire.ReasonRateLimited)
		}
		return handlers.SendMessage(ctx, deps, auth, req)
	}
}
