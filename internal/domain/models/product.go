package models

import (
	"time"

	"travellounge/internal/db"
)

// Pricing mirrors the services.pricing JSON column. Older rows carry only
// "price"; newer ones carry "base_price".
type Pricing struct {
	BasePrice float64 `json:"base_price,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Currency  string  `json:"currency"`
}

// Amount returns base_price when set, else price.
func (p Pricing) Amount() float64 {
	if p.BasePrice > 0 {
		return p.BasePrice
	}
	return p.Price
}

type Inventory struct {
	Total     int `json:"total"`
	Remaining int `json:"remaining"`
}

type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service is a bookable product (tour, hotel, activity, transfer).
type Service struct {
	ID           int64                   `json:"id" db:"id"`
	Name         string                  `json:"name" db:"name" binding:"required"`
	Category     string                  `json:"category" db:"category"`
	Description  string                  `json:"description" db:"description"`
	Pricing      db.JSON[Pricing]        `json:"pricing" db:"pricing"`
	Images       db.JSON[[]string]       `json:"images" db:"images"`
	Location     string                  `json:"location" db:"location"`
	Inventory    db.JSON[Inventory]      `json:"inventory" db:"inventory"`
	Itinerary    db.JSON[[]ItineraryDay] `json:"itinerary" db:"itinerary"`
	Features     db.JSON[[]string]       `json:"features" db:"features"`
	Inclusions   db.JSON[[]string]       `json:"inclusions" db:"inclusions"`
	Exclusions   db.JSON[[]string]       `json:"exclusions" db:"exclusions"`
	DisplayOrder int                     `json:"display_order" db:"display_order"`
	IsActive     bool                    `json:"is_active" db:"is_active"`
	CreatedAt    time.Time               `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at" db:"updated_at"`
}

// ServiceFilter narrows product listings.
type ServiceFilter struct {
	Category   string
	Search     string
	ActiveOnly bool
}
