package handlers

import (
	"net/http"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/menus/:location
func (a *API) MenuByLocation(c *gin.Context) {
	m, err := a.menus(c).ByLocation(c.Request.Context(), c.Param("location"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (a *API) ListMenus(c *gin.Context) {
	rows, err := a.menus(c).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (a *API) GetMenu(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	m, err := a.menus(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (a *API) CreateMenu(c *gin.Context) {
	var in models.Menu
	if !BindJSONOrError(c, &in) {
		return
	}
	m, err := a.menus(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created(c, m)
}

type renameMenuRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// PUT /api/admin/menus/:id renames a menu or moves it to another location.
func (a *API) UpdateMenu(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req renameMenuRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	m, err := a.menus(c).Rename(c.Request.Context(), id, req.Name, req.Location)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

type menuItemsRequest struct {
	Items []domain.MenuItem `json:"items"`
}

// PUT /api/admin/menus/:id/items replaces the whole tree.
func (a *API) SaveMenuItems(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req menuItemsRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	m, err := a.menus(c).SaveItems(c.Request.Context(), id, req.Items)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// POST /api/admin/menus/:id/items/ops applies one editor action.
func (a *API) ApplyMenuOp(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var op domain.MenuOp
	if !BindJSONOrError(c, &op) {
		return
	}
	m, err := a.menus(c).ApplyOp(c.Request.Context(), id, op)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (a *API) DeleteMenu(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.menus(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	noContent(c)
}
