package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rmancero11/club-dashboard-realtime/pkg/types"
	"github.com/rmancero11/club-dashboard-realtime/shared/logger"
	"github.com/rmancero11/club-dashboard-realtime/shared/wire"
)

const maxPresenceIDs = 100

// PresenceStore reads stored online flags.
type PresenceStore interface {
	UsersOnlineByIDs(ctx context.Context, userIDs []string) (map[string]bool, error)
}

type PresenceHandler struct {
	store PresenceStore
}

func NewPresenceHandler(store PresenceStore) *PresenceHandler {
	return &PresenceHandler{store: store}
}

// GetPresence returns the stored online flag for each id in ?ids=a,b,c.
// Clients use it to seed state before live user-status-change events arrive.
func (h *PresenceHandler) GetPresence(c *gin.Context) {
	var ids []string
	for _, id := range strings.Split(c.Query("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 || len(ids) > maxPresenceIDs {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "ids must list between 1 and 100 user ids"})
		return
	}

	online, err := h.store.UsersOnlineByIDs(c.Request.Context(), ids)
	if err != nil {
		logger.Errorf("get presence: %v", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to read presence"})
		return
	}
	c.JSON(http.StatusOK, wire.PresenceResponse{Online: online})
}
