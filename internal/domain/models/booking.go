package models

import (
	"time"

	"travellounge/internal/db"
)

type CustomerInfo struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

type ServiceDetails struct {
	Name      string `json:"name"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Travelers int    `json:"travelers"`
	Message   string `json:"message"`
}

type Booking struct {
	ID             int64                   `json:"id" db:"id"`
	ServiceID      *int64                  `json:"service_id" db:"service_id"`
	CustomerInfo   db.JSON[CustomerInfo]   `json:"customer_info" db:"customer_info"`
	ServiceDetails db.JSON[ServiceDetails] `json:"service_details" db:"service_details"`
	Status         string                  `json:"status" db:"status"`
	TotalAmount    float64                 `json:"total_amount" db:"total_amount"`
	Currency       string                  `json:"currency" db:"currency"`
	CreatedAt      time.Time               `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at" db:"updated_at"`
}

// BookingRequest is what the public site submits.
type BookingRequest struct {
	ServiceID      *int64         `json:"service_id"`
	CustomerInfo   CustomerInfo   `json:"customer_info" binding:"required"`
	ServiceDetails ServiceDetails `json:"service_details"`
	TotalAmount    float64        `json:"total_amount" binding:"gte=0"`
	TotalPrice     float64        `json:"total_price" binding:"gte=0"`
	Currency       string         `json:"currency"`
}

// Amount accepts either total_amount or the older total_price field.
func (r BookingRequest) Amount() float64 {
	if r.TotalAmount > 0 {
		return r.TotalAmount
	}
	return r.TotalPrice
}

type BookingFilter struct {
	Status string
	Search string
	Page   int
	Size   int
}
