package services

import (
	"context"
	"strings"

	"travellounge/internal/db"
	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/realtime"
	"travellounge/internal/repositories"
	"travellounge/internal/utils"
)

type BookingService struct {
	BookingRepo repositories.BookingRepo
	ServiceRepo repositories.ServiceRepo
	Deps
}

// Create stores a public booking request as pending and notifies admins.
func (s BookingService) Create(ctx context.Context, req models.BookingRequest) (models.Booking, error) {
	customer := req.CustomerInfo
	customer.Name = utils.NormalizeSpace(customer.Name)
	customer.Email = utils.NormalizeEmail(customer.Email)
	customer.Phone = strings.TrimSpace(customer.Phone)
	if customer.Name == "" {
		return models.Booking{}, domain.ValidationError{Field: "customer_info.name", Msg: "required"}
	}
	if customer.Email == "" {
		return models.Booking{}, domain.ValidationError{Field: "customer_info.email", Msg: "required"}
	}

	details := req.ServiceDetails
	if details.Travelers < 0 {
		return models.Booking{}, domain.ValidationError{Field: "service_details.travelers", Msg: "cannot be negative"}
	}
	if details.CheckIn != "" && details.CheckOut != "" {
		in, err1 := utils.ParseDate(details.CheckIn)
		out, err2 := utils.ParseDate(details.CheckOut)
		if err1 != nil || err2 != nil {
			return models.Booking{}, domain.ValidationError{Field: "service_details", Msg: "dates must be YYYY-MM-DD"}
		}
		if out.Before(in) {
			return models.Booking{}, domain.ValidationError{Field: "service_details.checkOut", Msg: "must not be before checkIn"}
		}
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if req.ServiceID != nil {
		svc, err := s.ServiceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if domain.IsNotFound(err) || domain.IsValidation(err) {
				return models.Booking{}, domain.ValidationError{Field: "service_id", Msg: "unknown service", Err: err}
			}
			return models.Booking{}, wrap(err)
		}
		if details.Name == "" {
			details.Name = svc.Name
		}
		if currency == "" {
			currency = svc.Pricing.V.Currency
		}
	}
	if currency == "" {
		currency = "MUR"
	}

	b := models.Booking{
		ServiceID:      req.ServiceID,
		CustomerInfo:   db.NewJSON(customer),
		ServiceDetails: db.NewJSON(details),
		Status:         domain.BookingPending,
		TotalAmount:    req.Amount(),
		Currency:       currency,
	}
	id, err := s.BookingRepo.Create(ctx, b)
	if err != nil {
		return models.Booking{}, wrap(err)
	}
	created, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		return models.Booking{}, wrap(err)
	}
	s.log("bookings", "create", "id=%d total=%s", id, utils.FormatPrice(b.TotalAmount, currency))
	s.publish(realtime.EventBookingCreated, created)
	return created, nil
}

func (s BookingService) List(ctx context.Context, f models.BookingFilter) ([]models.Booking, domain.Pagination, error) {
	if strings.TrimSpace(f.Status) != "" {
		status, err := domain.BookingStatus(f.Status)
		if err != nil {
			return nil, domain.Pagination{}, err
		}
		f.Status = status
	}
	page := domain.NormalizePagination(f.Page, f.Size)
	f.Page, f.Size = page.Page, page.PageSize
	rows, total, err := s.BookingRepo.List(ctx, f)
	if err != nil {
		return nil, page, wrap(err)
	}
	page.Total = total
	return rows, page, nil
}

func (s BookingService) Get(ctx context.Context, id int64) (models.Booking, error) {
	out, err := s.BookingRepo.GetByID(ctx, id)
	return out, wrap(err)
}

// UpdateStatus sets any status of the booking status set; there is no
// transition table.
func (s BookingService) UpdateStatus(ctx context.Context, id int64, status string) (models.Booking, error) {
	status, err := domain.BookingStatus(status)
	if err != nil {
		return models.Booking{}, err
	}
	current, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		return models.Booking{}, wrap(err)
	}
	if current.Status == status {
		return current, nil
	}
	if err := s.BookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return models.Booking{}, wrap(err)
	}
	s.log("bookings", "update_status", "id=%d %s->%s", id, current.Status, status)
	return s.Get(ctx, id)
}

func (s BookingService) Delete(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if err := s.BookingRepo.Delete(ctx, id); err != nil {
		return wrap(err)
	}
	s.log("bookings", "delete", "id=%d", id)
	return nil
}
