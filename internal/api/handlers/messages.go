package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rmancero11/club-dashboard-realtime/internal/api/middleware"
	"github.com/rmancero11/club-dashboard-realtime/internal/models"
	wshandlers "github.com/rmancero11/club-dashboard-realtime/internal/websocket/handlers"
	"github.com/rmancero11/club-dashboard-realtime/pkg/types"
	"github.com/rmancero11/club-dashboard-realtime/shared/logger"
	"github.com/rmancero11/club-dashboard-realtime/shared/wire"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type MessagesHandler struct {
	store   MessageStore
	updates Fanout
}

func NewMessagesHandler(store MessageStore, updates Fanout) *MessagesHandler {
	return &MessagesHandler{store: store, updates: updates}
}

// ListConversation returns the most recent messages between the caller and
// :uid, oldest first.
func (h *MessagesHandler) ListConversation(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	counterpartID := c.Param("uid")

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = min(v, maxHistoryLimit)
	}

	rows, err := h.store.ListConversationMessages(c.Request.Context(), models.ListConversationMessagesParams{
		UserID:        userID,
		CounterpartID: counterpartID,
		Limit:         int64(limit),
	})
	if err != nil {
		logger.Errorf("list conversation %s/%s: %v", userID, counterpartID, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to list messages"})
		return
	}

	out := wire.ListMessagesResponse{Messages: make([]wire.Message, 0, len(rows))}
	for _, row := range rows {
		out.Messages = append(out.Messages, wshandlers.MessageToWire(row))
	}
	c.JSON(http.StatusOK, out)
}

// DeleteMessage deletes one of the caller's own messages and relays the
// deletion to both participants.
func (h *MessagesHandler) DeleteMessage(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	messageID := c.Param("id")

	msg, err := h.store.GetMessageByID(c.Request.Context(), messageID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "message not found"})
		return
	}
	if err != nil {
		logger.Errorf("get message %s: %v", messageID, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to delete message"})
		return
	}
	if msg.SenderID != userID {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "only the sender can delete a message"})
		return
	}

	n, err := h.store.DeleteMessage(c.Request.Context(), models.DeleteMessageParams{ID: messageID, SenderID: userID})
	if err != nil {
		logger.Errorf("delete message %s: %v", messageID, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to delete message"})
		return
	}

	if n > 0 {
		h.updates.Dispatch("", wshandlers.DeleteMessage(c.Request.Context(), wshandlers.Deps{},
			wshandlers.NewAuthContext(userID, ""), wire.DeleteMessagePayload{
				MessageID: messageID,
				MatchID:   msg.ReceiverID,
				UserID:    userID,
			}))
	}
	c.JSON(http.StatusOK, types.SuccessResponse{Success: n > 0})
}

// DeleteConversation deletes every message between the caller and :uid.
func (h *MessagesHandler) DeleteConversation(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	counterpartID := c.Param("uid")
	if counterpartID == userID {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid conversation"})
		return
	}

	n, err := h.store.DeleteConversation(c.Request.Context(), models.DeleteConversationParams{
		UserID:        userID,
		CounterpartID: counterpartID,
	})
	if err != nil {
		logger.Errorf("delete conversation %s/%s: %v", userID, counterpartID, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to delete conversation"})
		return
	}

	h.updates.Dispatch("", wshandlers.DeleteConversation(c.Request.Context(), wshandlers.Deps{},
		wshandlers.NewAuthContext(userID, ""), wire.DeleteConversationPayload{
			MatchID: counterpartID,
			UserID:  userID,
		}))
	c.JSON(http.StatusOK, wire.DeleteConversationResponse{Deleted: n})
}
