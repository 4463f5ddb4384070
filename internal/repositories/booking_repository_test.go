package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookingCols = []string{"id", "service_id", "customer_info", "service_details", "status", "total_amount", "currency", "created_at", "updated_at"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestBookingListFiltersAndPages(t *testing.T) {
	db, mock := newMock(t)
	repo := BookingRepo{DB: db}
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE status=\? AND \(JSON_UNQUOTE`).
		WithArgs("pending", "%ana%", "%ana%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))
	mock.ExpectQuery(`FROM bookings WHERE status=\? .* LIMIT \? OFFSET \?`).
		WithArgs("pending", "%ana%", "%ana%", 10, 10).
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(12, 3, []byte(`{"name":"Ana","email":"ana@example.com"}`), []byte(`{"name":"Le Morne","travelers":2}`), "pending", 1500.0, "MUR", now, now))

	rows, total, err := repo.List(context.Background(), models.BookingFilter{Status: "pending", Search: "ana", Page: 2, Size: 10})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 23 || len(rows) != 1 {
		t.Fatalf("got total=%d rows=%d", total, len(rows))
	}
	b := rows[0]
	if b.CustomerInfo.V.Name != "Ana" || b.ServiceDetails.V.Travelers != 2 {
		t.Fatalf("json columns not decoded: %+v", b)
	}
	if b.ServiceID == nil || *b.ServiceID != 3 {
		t.Fatalf("service id not scanned: %v", b.ServiceID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM bookings WHERE id=").WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)

	_, err := BookingRepo{DB: db}.GetByID(context.Background(), 9)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookingCreateStoresNullService(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(nil, `{"name":"Bo","email":"bo@example.com","phone":""}`, sqlmock.AnyArg(), "pending", 800.0, "EUR").
		WillReturnResult(sqlmock.NewResult(41, 1))

	b := models.Booking{Status: "pending", TotalAmount: 800, Currency: "EUR"}
	b.CustomerInfo.V = models.CustomerInfo{Name: "Bo", Email: "bo@example.com"}
	id, err := BookingRepo{DB: db}.Create(context.Background(), b)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 41 {
		t.Fatalf("got id %d", id)
	}
}

func TestBookingDeleteMissing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("DELETE FROM bookings WHERE id=").WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := (BookingRepo{DB: db}).Delete(context.Background(), 5); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
