package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rmancero11/club-dashboard-realtime/internal/api/middleware"
	"github.com/rmancero11/club-dashboard-realtime/internal/models"
	wshandlers "github.com/rmancero11/club-dashboard-realtime/internal/websocket/handlers"
	"github.com/rmancero11/club-dashboard-realtime/pkg/types"
	"github.com/rmancero11/club-dashboard-realtime/shared/logger"
	"github.com/rmancero11/club-dashboard-realtime/shared/wire"
)

type BlocksHandler struct {
	store   BlockStore
	updates Fanout
	now     func() time.Time
}

func NewBlocksHandler(store BlockStore, updates Fanout) *BlocksHandler {
	return &BlocksHandler{
		store:   store,
		updates: updates,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (h *BlocksHandler) ListBlocks(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	rows, err := h.store.ListBlockedUsers(c.Request.Context(), userID)
	if err != nil {
		logger.Errorf("list blocks for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to list blocks"})
		return
	}

	out := wire.ListBlocksResponse{Blocked: make([]wire.BlockedUser, 0, len(rows))}
	for _, row := range rows {
		out.Blocked = append(out.Blocked, wire.BlockedUser{ID: row.BlockedID, BlockedAt: row.CreatedAt.UTC()})
	}
	c.JSON(http.StatusOK, out)
}

// CreateBlock persists the edge and then runs the same fan-out a
// "notify-block" socket event would.
func (h *BlocksHandler) CreateBlock(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req wire.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}
	if req.UID == userID {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "cannot block yourself"})
		return
	}

	if err := h.store.CreateBlockedUser(c.Request.Context(), models.CreateBlockedUserParams{
		BlockerID: userID,
		BlockedID: req.UID,
		CreatedAt: h.now(),
	}); err != nil {
		logger.Errorf("block %s->%s: %v", userID, req.UID, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to block user"})
		return
	}

	h.updates.Dispatch("", wshandlers.NotifyBlock(c.Request.Context(), wshandlers.Deps{},
		wshandlers.NewAuthContext(userID, ""), wire.BlockRequestPayload{BlockedUserID: req.UID}))
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

// DeleteBlock removes the edge; live sessions are notified only when a row
// was deleted.
func (h *BlocksHandler) DeleteBlock(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	target := c.Param("uid")

	n, err := h.store.DeleteBlockedUser(c.Request.Context(), models.DeleteBlockedUserParams{
		BlockerID: userID,
		BlockedID: target,
	})
	if err != nil {
		logger.Errorf("unblock %s->%s: %v", userID, target, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to unblock user"})
		return
	}

	if n > 0 {
		h.updates.Dispatch("", wshandlers.NotifyUnblock(c.Request.Context(), wshandlers.Deps{},
			wshandlers.NewAuthContext(userID, ""), wire.BlockRequestPayload{BlockedUserID: target}))
	}
	c.JSON(http.StatusOK, types.SuccessResponse{Success: n > 0})
}
