package handlers

import (
	"database/sql"
	"net/http"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/services"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves one manager screen backed by a ContentService.
type ContentHandler[T any] struct {
	api   *API
	build func(*sql.DB, services.Deps) services.ContentService[T]
}

func NewContentHandler[T any](api *API, build func(*sql.DB, services.Deps) services.ContentService[T]) ContentHandler[T] {
	return ContentHandler[T]{api: api, build: build}
}

func (h ContentHandler[T]) svc(c *gin.Context) services.ContentService[T] {
	return h.build(h.api.DB, h.api.deps(c))
}

// Public lists the rows visible on the public site.
func (h ContentHandler[T]) Public(c *gin.Context) {
	h.list(c, true)
}

func (h ContentHandler[T]) List(c *gin.Context) {
	h.list(c, false)
}

func (h ContentHandler[T]) list(c *gin.Context, public bool) {
	rows, err := h.svc(c).List(c.Request.Context(), public)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h ContentHandler[T]) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	row, err := h.svc(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h ContentHandler[T]) Create(c *gin.Context) {
	var in T
	if !BindJSONOrError(c, &in) {
		return
	}
	row, err := h.svc(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created(c, row)
}

func (h ContentHandler[T]) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in T
	if !BindJSONOrError(c, &in) {
		return
	}
	row, err := h.svc(c).Update(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h ContentHandler[T]) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	noContent(c)
}

type reorderRequest struct {
	Items []domain.OrderItem `json:"items" binding:"required,dive"`
}

func (h ContentHandler[T]) Reorder(c *gin.Context) {
	var req reorderRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := h.svc(c).Reorder(c.Request.Context(), req.Items); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(req.Items)})
}

// Mount registers the admin routes. Reorder is skipped for tables without display_order.
func (h ContentHandler[T]) Mount(g *gin.RouterGroup, reorder bool) {
	g.GET("", h.List)
	g.POST("", h.Create)
	if reorder {
		g.PUT("/reorder", h.Reorder)
	}
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

type previewRequest struct {
	Variables map[string]string `json:"variables"`
}

// PreviewEmailTemplate renders a stored template with sample variables.
func (a *API) PreviewEmailTemplate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req previewRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid_payload", "invalid payload", err.Error())
			return
		}
	}
	svc := services.NewEmailTemplateService(a.DB, a.deps(c))
	out, err := services.PreviewEmailTemplate(c.Request.Context(), svc, id, req.Variables)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Content handlers for the simple manager screens.
func (a *API) Categories() ContentHandler[models.Category] {
	return NewContentHandler(a, services.NewCategoryService)
}

func (a *API) HeroSlides() ContentHandler[models.HeroSlide] {
	return NewContentHandler(a, services.NewHeroSlideService)
}

func (a *API) Promotions() ContentHandler[models.Promotion] {
	return NewContentHandler(a, services.NewPromotionService)
}

func (a *API) TeamMembers() ContentHandler[models.TeamMember] {
	return NewContentHandler(a, services.NewTeamMemberService)
}

func (a *API) Testimonials() ContentHandler[models.Testimonial] {
	return NewContentHandler(a, services.NewTestimonialService)
}

func (a *API) EmailTemplates() ContentHandler[models.EmailTemplate] {
	return NewContentHandler(a, services.NewEmailTemplateService)
}

func (a *API) Flights() ContentHandler[models.Flight] {
	return NewContentHandler(a, services.NewFlightService)
}
