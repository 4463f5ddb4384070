package handlers

import (
	"net/http"

	"travellounge/internal/http/middleware"
	"travellounge/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/realtime?token=... upgrades to a websocket that receives
// booking, contact, review and presence events.
func (a *API) Realtime(c *gin.Context) {
	if a.Hub == nil {
		respondError(c, http.StatusServiceUnavailable, "realtime_disabled", "realtime hub not running", nil)
		return
	}
	if err := a.Hub.Serve(c.Writer, c.Request, middleware.UserID(c)); err != nil {
		// the upgrader has already written the HTTP error
		utils.LogError(middleware.GetRequestID(c), "realtime", "upgrade", err)
	}
}
