package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/settings returns every setting as one key -> value object.
func (a *API) Settings(c *gin.Context) {
	out, err := a.site(c).Settings(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/settings/:key
func (a *API) Setting(c *gin.Context) {
	s, err := a.site(c).Setting(c.Request.Context(), c.Param("key"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

type valueRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

// PUT /api/admin/settings/:key
func (a *API) PutSetting(c *gin.Context) {
	var req valueRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	s, err := a.site(c).PutSetting(c.Request.Context(), c.Param("key"), req.Value)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (a *API) DeleteSetting(c *gin.Context) {
	if err := a.site(c).DeleteSetting(c.Request.Context(), c.Param("key")); err != nil {
		RespondDomainError(c, err)
		return
	}
	noContent(c)
}

// GET /api/pages/:slug
func (a *API) Page(c *gin.Context) {
	p, err := a.site(c).Page(c.Request.Context(), c.Param("slug"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (a *API) ListPages(c *gin.Context) {
	rows, err := a.site(c).Pages(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

type contentRequest struct {
	Content json.RawMessage `json:"content" binding:"required"`
}

// PUT /api/admin/pages/:slug
func (a *API) PutPage(c *gin.Context) {
	var req contentRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	p, err := a.site(c).PutPage(c.Request.Context(), c.Param("slug"), req.Content)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (a *API) DeletePage(c *gin.Context) {
	if err := a.site(c).DeletePage(c.Request.Context(), c.Param("slug")); err != nil {
		RespondDomainError(c, err)
		return
	}
	noContent(c)
}
