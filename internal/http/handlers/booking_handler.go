package handlers

import (
	"net/http"
	"strings"

	"travellounge/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/bookings
func (a *API) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	b, err := a.bookings(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created(c, b)
}

// GET /api/admin/bookings?status=&q=&page=&page_size=
func (a *API) ListBookings(c *gin.Context) {
	f := models.BookingFilter{
		Status: strings.TrimSpace(c.Query("status")),
		Search: strings.TrimSpace(c.Query("q")),
		Page:   queryInt(c, "page", 1),
		Size:   queryInt(c, "page_size", 0),
	}
	rows, page, err := a.bookings(c).List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows, "pagination": page})
}

func (a *API) GetBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	b, err := a.bookings(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/admin/bookings/:id/status
func (a *API) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	b, err := a.bookings(c).UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (a *API) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.bookings(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	noContent(c)
}
