package handlers

import (
	"net/http"
	"strings"

	"travellounge/internal/domain/models"

	"github.com/gin-gonic/gin"
)

func serviceFilter(c *gin.Context, activeOnly bool) models.ServiceFilter {
	return models.ServiceFilter{
		Category:   strings.TrimSpace(c.Query("category")),
		Search:     strings.TrimSpace(c.Query("q")),
		ActiveOnly: activeOnly,
	}
}

// GET /api/services
func (a *API) PublicServices(c *gin.Context) {
	rows, err := a.products(c).List(c.Request.Context(), serviceFilter(c, true))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// GET /api/services/:id
func (a *API) PublicService(c *gin.Context) {
	a.getService(c, true)
}

// GET /api/admin/services
func (a *API) ListServices(c *gin.Context) {
	rows, err := a.products(c).List(c.Request.Context(), serviceFilter(c, c.Query("active") == "1"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (a *API) GetService(c *gin.Context) {
	a.getService(c, false)
}

func (a *API) getService(c *gin.Context, activeOnly bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	row, err := a.products(c).Get(c.Request.Context(), id, activeOnly)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (a *API) CreateService(c *gin.Context) {
	var in models.Service
	if !BindJSONOrError(c, &in) {
		return
	}
	row, err := a.products(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created(c, row)
}

func (a *API) UpdateService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in models.Service
	if !BindJSONOrError(c, &in) {
		return
	}
	row, err := a.products(c).Update(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (a *API) DeleteService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.products(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	noContent(c)
}

func (a *API) ReorderServices(c *gin.Context) {
	var req reorderRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := a.products(c).Reorder(c.Request.Context(), req.Items); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(req.Items)})
}
