package services

import (
	"context"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/repositories"

	"golang.org/x/sync/errgroup"
)

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	Services         int64            `json:"services"`
	ActiveServices   int64            `json:"active_services"`
	Bookings         map[string]int64 `json:"bookings"`
	ConfirmedRevenue float64          `json:"confirmed_revenue"`
	PendingReviews   int64            `json:"pending_reviews"`
	Subscribers      int64            `json:"subscribers"`
	ContactMessages  int64            `json:"contact_messages"`
	RecentBookings   []models.Booking `json:"recent_bookings"`
	ConnectedAdmins  int              `json:"connected_admins"`
}

type DashboardService struct {
	Stats    repositories.StatsRepo
	Bookings repositories.BookingRepo
	// Presence reports connected admin sockets; nil means zero.
	Presence func() int
}

// Load runs the independent counts concurrently; the first failure cancels the rest.
func (s DashboardService) Load(ctx context.Context) (DashboardStats, error) {
	out := DashboardStats{Bookings: map[string]int64{}}
	statuses := []string{domain.BookingPending, domain.BookingConfirmed, domain.BookingRejected, domain.BookingCancelled}
	perStatus := make([]int64, len(statuses))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Services, err = s.Stats.Count(gctx, "services", "")
		return err
	})
	g.Go(func() (err error) {
		out.ActiveServices, err = s.Stats.Count(gctx, "services", "is_active=1")
		return err
	})
	for i, st := range statuses {
		i, st := i, st
		g.Go(func() (err error) {
			perStatus[i], err = s.Stats.Count(gctx, "bookings", "status=?", st)
			return err
		})
	}
	g.Go(func() (err error) {
		out.ConfirmedRevenue, err = s.Stats.Revenue(gctx, domain.BookingConfirmed)
		return err
	})
	g.Go(func() (err error) {
		out.PendingReviews, err = s.Stats.Count(gctx, "reviews", "status=?", domain.ReviewPending)
		return err
	})
	g.Go(func() (err error) {
		out.Subscribers, err = s.Stats.Count(gctx, "newsletter_subscribers", "status=?", domain.Subscribed)
		return err
	})
	g.Go(func() (err error) {
		out.ContactMessages, err = s.Stats.Count(gctx, "contact_messages", "")
		return err
	})
	g.Go(func() error {
		rows, _, err := s.Bookings.List(gctx, models.BookingFilter{Page: 1, Size: 5})
		out.RecentBookings = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardStats{}, wrap(err)
	}
	for i, st := range statuses {
		out.Bookings[st] = perStatus[i]
	}
	if s.Presence != nil {
		out.ConnectedAdmins = s.Presence()
	}
	return out, nil
}
