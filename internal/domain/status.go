package domain

import "strings"

// Booking statuses. Any status may be set by an admin; there is no transition table.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingRejected  = "rejected"
	BookingCancelled = "cancelled"
)

// Review moderation statuses.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// Flight listing statuses.
const (
	FlightActive  = "active"
	FlightDrafted = "drafted"
	FlightSoldOut = "sold_out"
)

// Newsletter subscription statuses.
const (
	Subscribed   = "subscribed"
	Unsubscribed = "unsubscribed"
)

var (
	bookingStatuses = []string{BookingPending, BookingConfirmed, BookingRejected, BookingCancelled}
	reviewStatuses  = []string{ReviewPending, ReviewApproved, ReviewRejected}
	flightStatuses  = []string{FlightActive, FlightDrafted, FlightSoldOut}
)

// NormalizeStatus lowercases s and checks it against allowed.
func NormalizeStatus(field, s string, allowed []string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", ValidationError{Field: field, Msg: "must be one of " + strings.Join(allowed, ", ")}
}

func BookingStatus(s string) (string, error) { return NormalizeStatus("status", s, bookingStatuses) }
func ReviewStatus(s string) (string, error)  { return NormalizeStatus("status", s, reviewStatuses) }
func FlightStatus(s string) (string, error)  { return NormalizeStatus("status", s, flightStatuses) }
