package handlers

import (
	"context"
	"strings"

	"github.com/rmancero11/club-dashboard-realtime/shared/logger"
	"github.com/rmancero11/club-dashboard-realtime/shared/wire"
)

// DeleteMessage relays a message deletion that already happened to every
// session of the acting user and of the counterpart. It never deletes
// anything.
func DeleteMessage(_ context.Context, _ Deps, auth AuthContext, req wire.DeleteMessagePayload) EventResult {
	actorID, matchID, ok := deletionParticipants(wire.EventDeleteMessage, auth, req.UserID, req.MatchID)
	if !ok || strings.TrimSpace(req.MessageID) == "" {
		return NewEventResult(nil, nil)
	}

	return NewEventResult(nil, []EmitInstruction{
		newUserEmit(actorID, wire.EventMessageDeleted, wire.MessageDeletedPayload{
			MessageID: req.MessageID,
			MatchID:   matchID,
			UserID:    actorID,
		}),
		newUserEmit(matchID, wire.EventMessageDeleted, wire.MessageDeletedPayload{
			MessageID: req.MessageID,
			MatchID:   actorID,
			UserID:    actorID,
		}),
	})
}

// DeleteConversation relays a conversation deletion that already happened.
func DeleteConversation(_ context.Context, _ Deps, auth AuthContext, req wire.DeleteConversationPayload) EventResult {
	actorID, matchID, ok := deletionParticipants(wire.EventDeleteConversation, auth, req.UserID, req.MatchID)
	if !ok {
		return NewEventResult(nil, nil)
	}

	return NewEventResult(nil, []EmitInstruction{
		newUserEmit(actorID, wire.EventConversationDeleted, wire.ConversationDeletedPayload{
			MatchID: matchID,
			UserID:  actorID,
		}),
		newUserEmit(matchID, wire.EventConversationDeleted, wire.ConversationDeletedPayload{
			MatchID: actorID,
			UserID:  actorID,
		}),
	})
}

func deletionParticipants(event string, auth AuthContext, userID, matchID string) (string, string, bool) {
	actorID := auth.UserID()
	if actorID == "" || userID != actorID {
		logger.Warnf("%s: userId %q does not match socket user %q; dropping", event, userID, actorID)
		return "", "", false
	}
	matchID = strings.TrimSpace(matchID)
	if matchID == "" || matchID == actorID {
		return "", "", false
	}
	return actorID, matchID, true
}
