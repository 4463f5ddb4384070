package handlers

import (
	"net/http"
	"strings"

	"travellounge/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/reviews; stored as pending until moderated.
func (a *API) SubmitReview(c *gin.Context) {
	var in models.Review
	if !BindJSONOrError(c, &in) {
		return
	}
	r, err := a.reviews(c).Submit(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created(c, r)
}

// GET /api/services/:id/reviews
func (a *API) ApprovedReviews(c *gin.Context) {
	serviceID, ok := parseID(c, "id")
	if !ok {
		return
	}
	rows, err := a.reviews(c).Approved(c.Request.Context(), serviceID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// GET /api/admin/reviews?status=&service_id=
func (a *API) ListReviews(c *gin.Context) {
	rows, err := a.reviews(c).List(c.Request.Context(), queryInt64(c, "service_id"), strings.TrimSpace(c.Query("status")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (a *API) UpdateReviewStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	r, err := a.reviews(c).UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (a *API) DeleteReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.reviews(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	noContent(c)
}
