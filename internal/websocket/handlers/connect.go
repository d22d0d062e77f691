package handlers

import (
	"context"

	"github.com/rmancero11/club-dashboard-realtime/internal/metrics"
	"github.com/rmancero11/club-dashboard-realtime/internal/models"
	"github.com/rmancero11/club-dashboard-realtime/shared/logger"
	"github.com/rmancero11/club-dashboard-realtime/shared/wire"
)

// Connect applies the presence side effects of a user found online.
//
// first reports that the user was not announced online before; only then is
// the stored flag flipped and the user announced to everyone.
func Connect(ctx context.Context, deps Deps, auth AuthContext, first bool) EventResult {
	if !first || auth.UserID() == "" {
		return NewEventResult(nil, nil)
	}
	return presenceChanged(ctx, deps, auth.UserID(), true)
}

func presenceChanged(ctx context.Context, deps Deps, userID string, online bool) EventResult {
	var flag int64
	if online {
		flag = 1
	}
	if err := deps.Users().UpsertUserOnline(ctx, models.UpsertUserOnlineParams{
		ID:        userID,
		Online:    flag,
		UpdatedAt: deps.Now(),
	}); err != nil {
		// Presence is advisory; the broadcast still reflects the live
		// registry.
		logger.Warnf("Failed to persist presence for %s (online=%v): %v", userID, online, err)
		metrics.PresenceWriteFailures.Inc()
	}

	return NewEventResult(nil, []EmitInstruction{
		newBroadcast(wire.EventUserStatusChange, wire.UserStatusPayload{
			UserID: userID,
			Online: online,
		}),
	})
}
