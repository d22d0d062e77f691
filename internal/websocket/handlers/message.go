package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rmancero11/club-dashboard-realtime/internal/metrics"
	"github.com/rmancero11/club-dashboard-realtime/internal/models"
	"github.com/rmancero11/club-dashboard-realtime/shared/logger"
	"github.com/rmancero11/club-dashboard-realtime/shared/wire"
)

var reasonMessages = map[string]string{
	wire.ReasonBlockedByReceiver: "you are blocked by this user",
	wire.ReasonReceiverBlocked:   "you have blocked this user",
	wire.ReasonSendFailed:        "message could not be sent",
	wire.ReasonRateLimited:       "too many messages, slow down",
}

// SendMessage routes a "send-message" request.
//
// The sender is always the connection identity. Both directions of the block
// relation are checked before the message is persisted; the check and the
// insert are not atomic. On success the stored message is delivered to every
// receiver session and acknowledged to the calling socket with the client's
// localId.
func SendMessage(ctx context.Context, deps Deps, auth AuthContext, req wire.SendMessagePayload) EventResult {
	senderID := auth.UserID()
	receiverID := strings.TrimSpace(req.ReceiverID)

	if req.SenderID != "" && req.SenderID != senderID {
		logger.Warnf("send-message: senderId %q does not match socket user %s; dropping", req.SenderID, senderID)
		return NewEventResult(nil, nil)
	}
	if senderID == "" || receiverID == "" || receiverID == senderID {
		logger.Debugf("send-message: malformed participants (sender=%q receiver=%q)", senderID, receiverID)
		return NewEventResult(nil, nil)
	}
	imageURL := normalizeImageURL(req.ImageURL)
	if strings.TrimSpace(req.Content) == "" && imageURL == nil {
		logger.Debugf("send-message: empty message from %s", senderID)
		return NewEventResult(nil, nil)
	}

	blocked, err := hasBlock(ctx, deps, receiverID, senderID)
	if err != nil {
		logger.Errorf("send-message: block lookup %s->%s failed: %v", receiverID, senderID, err)
		return SendRejected(req.LocalID, wire.ReasonSendFailed)
	}
	if blocked {
		return SendRejected(req.LocalID, wire.ReasonBlockedByReceiver)
	}

	blocked, err = hasBlock(ctx, deps, senderID, receiverID)
	if err != nil {
		logger.Errorf("send-message: block lookup %s->%s failed: %v", senderID, receiverID, err)
		return SendRejected(req.LocalID, wire.ReasonSendFailed)
	}
	if blocked {
		return SendRejected(req.LocalID, wire.ReasonReceiverBlocked)
	}

	params := models.CreateMessageParams{
		ID:         deps.NewID(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    req.Content,
		CreatedAt:  deps.Now(),
	}
	if imageURL != nil {
		params.ImageUrl = sql.NullString{String: *imageURL, Valid: true}
	}

	stored, err := deps.Messages().CreateMessage(ctx, params)
	if err != nil {
		logger.Errorf("send-message: persist %s->%s failed: %v", senderID, receiverID, err)
		return SendRejected(req.LocalID, wire.ReasonSendFailed)
	}
	metrics.MessagesSent.Inc()

	msg := MessageToWire(stored)
	ack := wire.MessageSentPayload{Message: msg, LocalID: req.LocalID}
	return NewEventResult(ack, []EmitInstruction{
		newUserEmit(receiverID, wire.EventReceiveMessage, msg),
		newCallerEmit(wire.EventMessageSentSuccess, ack),
	})
}

// SendRejected builds the "message-error" result for a refused send. The
// localId is carried back unaltered.
func SendRejected(localID, reason string) EventResult {
	metrics.SendsRejected.WithLabelValues(reason).Inc()
	payload := wire.MessageErrorPayload{
		LocalID: localID,
		Reason:  reason,
		Message: reasonMessages[reason],
	}
	return NewEventResult(payload, []EmitInstruction{
		newCallerEmit(wire.EventMessageError, payload),
	})
}

// MessageToWire converts a stored message row into its client representation.
func MessageToWire(m models.Message) wire.Message {
	out := wire.Message{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt.UTC(),
	}
	if m.ImageUrl.Valid {
		v := m.ImageUrl.String
		out.ImageURL = &v
	}
	if m.ReadAt.Valid {
		v := m.ReadAt.Time.UTC()
		out.ReadAt = &v
	}
	return out
}

func hasBlock(ctx context.Context, deps Deps, blockerID, blockedID string) (bool, error) {
	_, err := deps.Blocks().GetBlockedUser(ctx, models.GetBlockedUserParams{
		BlockerID: blockerID,
		BlockedID: blockedID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get blocked user: %w", err)
	}
	return true, nil
}

func normalizeImageURL(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

