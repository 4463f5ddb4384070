package handlers

import (
	"net/http"

	"travellounge/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/contact
func (a *API) SubmitContact(c *gin.Context) {
	var in models.ContactMessage
	if !BindJSONOrError(c, &in) {
		return
	}
	m, err := a.contacts(c).Submit(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created(c, gin.H{"id": m.ID, "status": "received"})
}

// GET /api/admin/contact-messages?limit=
func (a *API) ListContacts(c *gin.Context) {
	rows, err := a.contacts(c).List(c.Request.Context(), queryInt(c, "limit", 100))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
