package services

import (
	"context"
	"testing"
	"time"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/realtime"
	"travellounge/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []realtime.Event
}

func (p *recordingPublisher) Publish(e realtime.Event) { p.events = append(p.events, e) }

var bookingCols = []string{"id", "service_id", "customer_info", "service_details", "status", "total_amount", "currency", "created_at", "updated_at"}

func TestBookingCreateIsPendingAndPublished(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	pub := &recordingPublisher{}
	svc := BookingService{
		BookingRepo: repositories.BookingRepo{DB: db},
		ServiceRepo: repositories.ServiceRepo{DB: db},
		Deps:        Deps{Publisher: pub},
	}

	now := time.Now()
	mock.ExpectQuery("FROM services WHERE id=").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "description", "pricing", "images", "location",
			"inventory", "itinerary", "features", "inclusions", "exclusions", "display_order", "is_active", "created_at", "updated_at"}).
			AddRow(9, "Catamaran cruise", "activity", "", []byte(`{"base_price":3900,"currency":"EUR"}`), []byte(`[]`), "Grand Baie",
				[]byte(`{}`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), 0, true, now, now))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(9),
			`{"name":"Anna Perrin","email":"anna@example.com","phone":""}`,
			`{"name":"Catamaran cruise","checkIn":"2024-06-01","checkOut":"","travelers":2,"message":""}`,
			domain.BookingPending, 7800.0, "EUR").
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectQuery("FROM bookings WHERE id=").WithArgs(int64(31)).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(31, 9,
			[]byte(`{"name":"Anna Perrin","email":"anna@example.com"}`),
			[]byte(`{"name":"Catamaran cruise","checkIn":"2024-06-01","travelers":2}`),
			"pending", 7800.0, "EUR", now, now))

	sid := int64(9)
	b, err := svc.Create(context.Background(), models.BookingRequest{
		ServiceID:      &sid,
		CustomerInfo:   models.CustomerInfo{Name: "  Anna   Perrin ", Email: "Anna@Example.com"},
		ServiceDetails: models.ServiceDetails{CheckIn: "2024-06-01", Travelers: 2},
		TotalPrice:     7800,
	})
	require.NoError(t, err)
	require.Equal(t, int64(31), b.ID)
	require.Equal(t, domain.BookingPending, b.Status)
	require.Len(t, pub.events, 1)
	require.Equal(t, realtime.EventBookingCreated, pub.events[0].Type)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCreateRejectsReversedDates(t *testing.T) {
	svc := BookingService{}
	_, err := svc.Create(context.Background(), models.BookingRequest{
		CustomerInfo:   models.CustomerInfo{Name: "Anna", Email: "anna@example.com"},
		ServiceDetails: models.ServiceDetails{CheckIn: "2024-06-05", CheckOut: "2024-06-01"},
	})
	require.True(t, domain.IsValidation(err))
}

func TestBookingUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	svc := BookingService{BookingRepo: repositories.BookingRepo{DB: db}}

	_, err = svc.UpdateStatus(context.Background(), 5, "shipped")
	require.True(t, domain.IsValidation(err))

	now := time.Now()
	row := func(status string) *sqlmock.Rows {
		return sqlmock.NewRows(bookingCols).AddRow(5, nil, []byte(`{}`), []byte(`{}`), status, 0.0, "MUR", now, now)
	}
	mock.ExpectQuery("FROM bookings WHERE id=").WithArgs(int64(5)).WillReturnRows(row("pending"))
	mock.ExpectExec("UPDATE bookings SET status=").WithArgs("confirmed", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM bookings WHERE id=").WithArgs(int64(5)).WillReturnRows(row("confirmed"))

	b, err := svc.UpdateStatus(context.Background(), 5, " Confirmed ")
	require.NoError(t, err)
	require.Equal(t, "confirmed", b.Status)

	mock.ExpectQuery("FROM bookings WHERE id=").WithArgs(int64(6)).
		WillReturnRows(sqlmock.NewRows(bookingCols))
	_, err = svc.UpdateStatus(context.Background(), 6, "confirmed")
	require.True(t, domain.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
