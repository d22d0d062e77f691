package handlers

import (
	"context"
	"strings"

	"github.com/rmancero11/club-dashboard-realtime/internal/models"
	"github.com/rmancero11/club-dashboard-realtime/shared/logger"
	"github.com/rmancero11/club-dashboard-realtime/shared/wire"
)

// MarkMessagesRead marks every unread message the counterpart sent to the
// caller as read. The counterpart's sessions are notified only when at least
// one row changed, so repeated calls stay quiet.
func MarkMessagesRead(ctx context.Context, deps Deps, auth AuthContext, req wire.MarkMessagesReadPayload) EventResult {
	readerID := auth.UserID()
	counterpartID := strings.TrimSpace(req.CounterpartID)
	if readerID == "" || counterpartID == "" || counterpartID == readerID {
		return NewEventResult(nil, nil)
	}

	n, err := deps.Messages().MarkMessagesRead(ctx, models.MarkMessagesReadParams{
		ReadAt:     deps.Now(),
		SenderID:   counterpartID,
		ReceiverID: readerID,
	})
	if err != nil {
		logger.Errorf("mark-messages-read: %s<-%s failed: %v", readerID, counterpartID, err)
		return NewEventResult(nil, nil)
	}
	if n == 0 {
		return NewEventResult(nil, nil)
	}

	logger.Debugf("mark-messages-read: %s read %d messages from %s", readerID, n, counterpartID)
	return NewEventResult(nil, []EmitInstruction{
		newUserEmit(counterpartID, wire.EventMessagesReadByReceiver, wire.MessagesReadPayload{
			ReaderID: readerID,
			SenderID: counterpartID,
		}),
	})
}
