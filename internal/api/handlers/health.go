package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthz answers liveness probes. It carries no business state.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Root serves a plain banner.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "realtime chat server")
}
