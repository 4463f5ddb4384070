package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type subscribeRequest struct {
	Email  string `json:"email" binding:"required"`
	Source string `json:"source"`
}

// POST /api/newsletter/subscribe; subscribing twice is not an error.
func (a *API) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := a.newsletter(c).Subscribe(c.Request.Context(), req.Email, req.Source); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "subscribed"})
}

// POST /api/newsletter/unsubscribe
func (a *API) Unsubscribe(c *gin.Context) {
	var req subscribeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := a.newsletter(c).Unsubscribe(c.Request.Context(), req.Email); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unsubscribed"})
}

func (a *API) ListSubscribers(c *gin.Context) {
	rows, err := a.newsletter(c).List(c.Request.Context(), strings.TrimSpace(c.Query("status")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (a *API) DeleteSubscriber(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.newsletter(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	noContent(c)
}

// GET /api/admin/newsletter/export.csv?status=
func (a *API) ExportSubscribers(c *gin.Context) {
	var buf bytes.Buffer
	n, err := a.newsletter(c).ExportCSV(c.Request.Context(), &buf, strings.TrimSpace(c.Query("status")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="subscribers.csv"`)
	c.Header("X-Total-Count", strconv.Itoa(n))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
