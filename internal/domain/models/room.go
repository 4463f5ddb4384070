package models

import (
	"time"

	"travellounge/internal/db"
)

// HotelRoom belongs to a hotel-type service; BasePrice is the nightly rate
// used when a date has no override.
type HotelRoom struct {
	ID           int64             `json:"id" db:"id"`
	ServiceID    int64             `json:"service_id" db:"service_id" binding:"required,gt=0"`
	Name         string            `json:"name" db:"name" binding:"required"`
	Description  string            `json:"description" db:"description"`
	BasePrice    float64           `json:"base_price" db:"base_price" binding:"gte=0"`
	MaxGuests    int               `json:"max_guests" db:"max_guests" binding:"gte=0"`
	Images       db.JSON[[]string] `json:"images" db:"images"`
	DisplayOrder int               `json:"display_order" db:"display_order"`
}

// RoomDailyPrice is one (room, date) row. Price nil means "use base price".
type RoomDailyPrice struct {
	RoomID    int64     `json:"room_id" db:"room_id"`
	Date      time.Time `json:"date" db:"date"`
	Price     *float64  `json:"price" db:"price"`
	IsBlocked bool      `json:"is_blocked" db:"is_blocked"`
}

// BulkPriceRequest updates every matching date of [StartDate, EndDate].
// A missing ApplyToDays means every weekday; an empty list matches none.
// Mode is case-insensitive and checked by the pricing rule.
type BulkPriceRequest struct {
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	ApplyToDays *[]int   `json:"apply_to_days" binding:"omitempty,dive,weekday"`
	Mode        string   `json:"mode" binding:"required"`
	Value       *float64 `json:"value" binding:"required"`
}

// BlockRequest toggles availability of one day or a whole month.
type BlockRequest struct {
	Date      string `json:"date"`
	Month     string `json:"month"`
	IsBlocked bool   `json:"is_blocked"`
}
