package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/realtime"
)

// WSHandler upgrades authenticated clients onto the realtime hub.
type WSHandler struct {
	hub *realtime.Hub
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Serve handles GET /ws?token=...
// @Summary Realtime updates
// @Description Websocket stream of gold-rate updates and stock alerts for the caller's business
// @Tags realtime
// @Param token query string true "Access token"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Router /ws [get]
func (h *WSHandler) Serve(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	// The upgrader has already written an HTTP error on failure.
	if err := h.hub.Serve(c.Writer, c.Request, tenantID); err != nil {
		Logger.WithError(err).WithField("tenant_id", tenantID).Debug("websocket upgrade failed")
	}
}
