package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/dashboard
func (a *API) Dashboard(c *gin.Context) {
	stats, err := a.dashboard().Load(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
