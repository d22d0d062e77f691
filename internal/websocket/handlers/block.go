package handlers

import (
	"context"
	"strings"

	"github.com/rmancero11/club-dashboard-realtime/internal/models"
	"github.com/rmancero11/club-dashboard-realtime/shared/logger"
	"github.com/rmancero11/club-dashboard-realtime/shared/wire"
)

// BlockUser persists a block edge from the caller to the requested user and
// notifies both sides. Blocking an already blocked user is not an error; both
// sides are notified again.
func BlockUser(ctx context.Context, deps Deps, auth AuthContext, req wire.BlockRequestPayload) EventResult {
	blockerID, blockedID, ok := blockParticipants(auth, req)
	if !ok {
		return NewEventResult(nil, nil)
	}

	if err := deps.Blocks().CreateBlockedUser(ctx, models.CreateBlockedUserParams{
		BlockerID: blockerID,
		BlockedID: blockedID,
		CreatedAt: deps.Now(),
	}); err != nil {
		logger.Errorf("block-user: %s->%s failed: %v", blockerID, blockedID, err)
		return NewEventResult(nil, nil)
	}

	logger.Infof("User %s blocked %s", blockerID, blockedID)
	return blockNotice(blockerID, blockedID, true)
}

// UnblockUser deletes the caller's block edge. Nothing is emitted when no edge
// existed.
func UnblockUser(ctx context.Context, deps Deps, auth AuthContext, req wire.BlockRequestPayload) EventResult {
	blockerID, blockedID, ok := blockParticipants(auth, req)
	if !ok {
		return NewEventResult(nil, nil)
	}

	n, err := deps.Blocks().DeleteBlockedUser(ctx, models.DeleteBlockedUserParams{
		BlockerID: blockerID,
		BlockedID: blockedID,
	})
	if err != nil {
		logger.Errorf("unblock-user: %s->%s failed: %v", blockerID, blockedID, err)
		return NewEventResult(nil, nil)
	}
	if n == 0 {
		return NewEventResult(nil, nil)
	}

	logger.Infof("User %s unblocked %s", blockerID, blockedID)
	return blockNotice(blockerID, blockedID, false)
}

// NotifyBlock re-broadcasts a block that was already persisted through another
// channel. It performs no write.
func NotifyBlock(_ context.Context, _ Deps, auth AuthContext, req wire.BlockRequestPayload) EventResult {
	blockerID, blockedID, ok := blockParticipants(auth, req)
	if !ok {
		return NewEventResult(nil, nil)
	}
	return blockNotice(blockerID, blockedID, true)
}

// NotifyUnblock re-broadcasts an unblock that was already persisted through
// another channel. It performs no write.
func NotifyUnblock(_ context.Context, _ Deps, auth AuthContext, req wire.BlockRequestPayload) EventResult {
	blockerID, blockedID, ok := blockParticipants(auth, req)
	if !ok {
		return NewEventResult(nil, nil)
	}
	return blockNotice(blockerID, blockedID, false)
}

func blockParticipants(auth AuthContext, req wire.BlockRequestPayload) (string, string, bool) {
	blockerID := auth.UserID()
	blockedID := strings.TrimSpace(req.BlockedUserID)
	if blockerID == "" || blockedID == "" || blockerID == blockedID {
		return "", "", false
	}
	return blockerID, blockedID, true
}

// blockNotice fans a block state change out to every session of both users.
func blockNotice(blockerID, blockedID string, blocked bool) EventResult {
	payload := wire.BlockEventPayload{BlockerID: blockerID, BlockedID: blockedID}
	blockerEvent, blockedEvent := wire.EventUnblockSuccess, wire.EventYouAreUnblocked
	if blocked {
		blockerEvent, blockedEvent = wire.EventUserBlockedSuccess, wire.EventYouAreBlocked
	}
	return NewEventResult(nil, []EmitInstruction{
		newUserEmit(blockerID, blockerEvent, payload),
		newUserEmit(blockedID, blockedEvent, payload),
	})
}
