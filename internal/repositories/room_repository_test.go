package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"travellounge/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func utcDay(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestDailyPricesKeyedByDate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM room_daily_prices").
		WithArgs(int64(2), "2024-02-01", "2024-02-29").
		WillReturnRows(sqlmock.NewRows([]string{"room_id", "date", "price", "is_blocked"}).
			AddRow(2, utcDay("2024-02-10"), 180.0, false).
			AddRow(2, utcDay("2024-02-29"), nil, true))

	days, err := RoomRepo{DB: db}.DailyPrices(context.Background(), 2, utcDay("2024-02-01"), utcDay("2024-02-29"))
	if err != nil {
		t.Fatalf("DailyPrices error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if p := days["2024-02-10"].Price; p == nil || *p != 180 {
		t.Fatalf("price not scanned: %v", p)
	}
	if leap := days["2024-02-29"]; leap.Price != nil || !leap.IsBlocked {
		t.Fatalf("unexpected leap day row: %+v", leap)
	}
}

func TestUpsertBlockedOneStatement(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(`INSERT INTO room_daily_prices \(room_id, date, is_blocked\).*ON DUPLICATE KEY UPDATE is_blocked=VALUES\(is_blocked\)`).
		WithArgs(int64(2), "2024-03-01", true, int64(2), "2024-03-02", true).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := RoomRepo{DB: db}.UpsertBlocked(context.Background(), 2, []time.Time{utcDay("2024-03-01"), utcDay("2024-03-02")}, true)
	if err != nil {
		t.Fatalf("UpsertBlocked error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsertPricesKeepsBlockFlag(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(`ON DUPLICATE KEY UPDATE price=VALUES\(price\)`).
		WithArgs(int64(2), "2024-03-01", 99.0).
		WillReturnError(errors.New("deadlock"))

	err := RoomRepo{DB: db}.UpsertPrices(context.Background(), 2, []domain.DayPrice{{Date: utcDay("2024-03-01"), Price: 99}})
	if err == nil {
		t.Fatalf("expected driver error to surface")
	}
}

func TestUpsertEmptyIsNoop(t *testing.T) {
	db, mock := newMock(t)
	repo := RoomRepo{DB: db}
	if err := repo.UpsertBlocked(context.Background(), 2, nil, true); err != nil {
		t.Fatalf("UpsertBlocked: %v", err)
	}
	if err := repo.UpsertPrices(context.Background(), 2, nil); err != nil {
		t.Fatalf("UpsertPrices: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected queries: %v", err)
	}
}

func TestRoomDeleteRemovesCalendarInTx(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM room_daily_prices WHERE room_id=").WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 31))
	mock.ExpectExec("DELETE FROM hotel_rooms WHERE id=").WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := (RoomRepo{DB: db}).Delete(context.Background(), 4); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
