package models

import "time"

// Simple admin-managed tables. Each one is served by the generic content
// repository; column lists live in repositories/content_tables.go.

type Category struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name" binding:"required"`
	Slug         string    `json:"slug" db:"slug"`
	Type         string    `json:"type" db:"type"`
	Description  string    `json:"description" db:"description"`
	ImageURL     string    `json:"image_url" db:"image_url"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type HeroSlide struct {
	ID           int64  `json:"id" db:"id"`
	Title        string `json:"title" db:"title" binding:"required"`
	Subtitle     string `json:"subtitle" db:"subtitle"`
	ImageURL     string `json:"image_url" db:"image_url"`
	CTAText      string `json:"cta_text" db:"cta_text"`
	CTALink      string `json:"cta_link" db:"cta_link"`
	DisplayOrder int    `json:"display_order" db:"display_order"`
	IsActive     bool   `json:"is_active" db:"is_active"`
}

type Promotion struct {
	ID              int64      `json:"id" db:"id"`
	Title           string     `json:"title" db:"title" binding:"required"`
	Description     string     `json:"description" db:"description"`
	DiscountPercent float64    `json:"discount_percent" db:"discount_percent" binding:"gte=0,lte=100"`
	ImageURL        string     `json:"image_url" db:"image_url"`
	ValidFrom       *time.Time `json:"valid_from" db:"valid_from"`
	ValidUntil      *time.Time `json:"valid_until" db:"valid_until"`
	DisplayOrder    int        `json:"display_order" db:"display_order"`
	IsActive        bool       `json:"is_active" db:"is_active"`
}

type TeamMember struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name" binding:"required"`
	Role         string `json:"role" db:"role"`
	Bio          string `json:"bio" db:"bio"`
	PhotoURL     string `json:"photo_url" db:"photo_url"`
	DisplayOrder int    `json:"display_order" db:"display_order"`
	IsActive     bool   `json:"is_active" db:"is_active"`
}

type Testimonial struct {
	ID           int64  `json:"id" db:"id"`
	Author       string `json:"author" db:"author" binding:"required"`
	Location     string `json:"location" db:"location"`
	Content      string `json:"content" db:"content" binding:"required"`
	Rating       int    `json:"rating" db:"rating" binding:"gte=1,lte=5"`
	AvatarURL    string `json:"avatar_url" db:"avatar_url"`
	DisplayOrder int    `json:"display_order" db:"display_order"`
	IsActive     bool   `json:"is_active" db:"is_active"`
}

type EmailTemplate struct {
	ID      int64  `json:"id" db:"id"`
	Slug    string `json:"slug" db:"slug" binding:"required"`
	Name    string `json:"name" db:"name" binding:"required"`
	Subject string `json:"subject" db:"subject"`
	Body    string `json:"body" db:"body"`
}

type Flight struct {
	ID             int64      `json:"id" db:"id"`
	Airline        string     `json:"airline" db:"airline" binding:"required"`
	FlightNumber   string     `json:"flight_number" db:"flight_number" binding:"required"`
	Origin         string     `json:"origin" db:"origin" binding:"required"`
	Destination    string     `json:"destination" db:"destination" binding:"required"`
	DepartureAt    *time.Time `json:"departure_at" db:"departure_at"`
	ArrivalAt      *time.Time `json:"arrival_at" db:"arrival_at"`
	Price          float64    `json:"price" db:"price" binding:"gte=0"`
	Currency       string     `json:"currency" db:"currency"`
	SeatsAvailable int        `json:"seats_available" db:"seats_available" binding:"gte=0"`
	Status         string     `json:"status" db:"status"`
	DisplayOrder   int        `json:"display_order" db:"display_order"`
}
