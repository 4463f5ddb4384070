package handlers

import (
	"net/http"
	"strings"

	"travellounge/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/services/:id/rooms
func (a *API) PublicRooms(c *gin.Context) {
	a.listRooms(c, true)
}

// GET /api/admin/services/:id/rooms
func (a *API) ListRooms(c *gin.Context) {
	a.listRooms(c, false)
}

func (a *API) listRooms(c *gin.Context, public bool) {
	serviceID, ok := parseID(c, "id")
	if !ok {
		return
	}
	rows, err := a.rooms(c).ListByService(c.Request.Context(), serviceID, public)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (a *API) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	room, err := a.rooms(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (a *API) CreateRoom(c *gin.Context) {
	var in models.HotelRoom
	if !BindJSONOrError(c, &in) {
		return
	}
	room, err := a.rooms(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created(c, room)
}

func (a *API) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in models.HotelRoom
	if !BindJSONOrError(c, &in) {
		return
	}
	room, err := a.rooms(c).Update(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (a *API) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.rooms(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	noContent(c)
}

// GET /api/rooms/:id/calendar?month=YYYY-MM (public and admin)
func (a *API) RoomCalendar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "month: required", nil)
		return
	}
	view, err := a.calendar(c).Calendar(c.Request.Context(), id, month)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PUT /api/admin/rooms/:id/calendar/day
//
// On failure the body's details carry the previous flag so the grid can undo
// its optimistic toggle.
func (a *API) SetDayBlocked(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.BlockRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := a.calendar(c).SetDayBlocked(c.Request.Context(), id, req.Date, req.IsBlocked)
	if err != nil {
		var details any
		if res.Date != "" {
			details = res
		}
		respondDomainError(c, err, details)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PUT /api/admin/rooms/:id/calendar/month
func (a *API) SetMonthBlocked(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.BlockRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := a.calendar(c).SetMonthBlocked(c.Request.Context(), id, req.Month, req.IsBlocked)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/admin/rooms/:id/calendar/bulk-price
//
// Chunks are written independently; a partial failure still answers 200
// with the failed ranges listed.
func (a *API) BulkUpdatePrice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.BulkPriceRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := a.calendar(c).BulkUpdatePrice(c.Request.Context(), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
