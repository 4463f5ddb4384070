package services

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var roomCols = []string{"id", "service_id", "name", "description", "base_price", "max_guests", "images", "display_order"}

func expectRoom(mock sqlmock.Sqlmock, id int64, base float64) {
	mock.ExpectQuery("FROM hotel_rooms WHERE id=").WithArgs(id).
		WillReturnRows(sqlmock.NewRows(roomCols).AddRow(id, 3, "Garden Suite", "", base, 2, []byte(`[]`), 0))
}

func dayRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"room_id", "date", "price", "is_blocked"})
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func weekdays(d ...int) *[]int { return &d }

func amount(v float64) *float64 { return &v }

func newCalendarService(t *testing.T) (CalendarService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return CalendarService{Rooms: repositories.RoomRepo{DB: db}}, mock
}

func TestBulkUpdatePriceWeekendPercentage(t *testing.T) {
	svc, mock := newCalendarService(t)

	expectRoom(mock, 1, 100)
	mock.ExpectQuery("FROM room_daily_prices").WithArgs(int64(1), "2024-06-01", "2024-06-07").
		WillReturnRows(dayRows().AddRow(1, day("2024-06-02"), 150.0, false))
	mock.ExpectExec("INSERT INTO room_daily_prices").
		WithArgs(int64(1), "2024-06-01", 110.0, int64(1), "2024-06-02", 165.0).
		WillReturnResult(sqlmock.NewResult(0, 2))

	res, err := svc.BulkUpdatePrice(context.Background(), 1, models.BulkPriceRequest{
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-07",
		ApplyToDays: weekdays(0, 6),
		Mode:        domain.PricePercentage,
		Value:       amount(10),
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.Affected)
	require.Zero(t, res.Failed)
	require.Empty(t, res.Errors)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpdatePriceReportsFailedChunks(t *testing.T) {
	svc, mock := newCalendarService(t)
	svc.ChunkSize = 3

	expectRoom(mock, 1, 100)
	mock.ExpectQuery("FROM room_daily_prices").
		WillReturnRows(dayRows())
	mock.ExpectExec("INSERT INTO room_daily_prices").
		WithArgs(int64(1), "2024-06-01", 200.0, int64(1), "2024-06-02", 200.0, int64(1), "2024-06-03", 200.0).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO room_daily_prices").
		WillReturnError(errors.New("deadlock"))
	mock.ExpectExec("INSERT INTO room_daily_prices").
		WithArgs(int64(1), "2024-06-07", 200.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := svc.BulkUpdatePrice(context.Background(), 1, models.BulkPriceRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-07",
		Mode:      domain.PriceFixed,
		Value:     amount(200),
	})
	require.NoError(t, err)
	require.Equal(t, 4, res.Affected)
	require.Equal(t, 3, res.Failed)
	require.Len(t, res.Errors, 1)
	require.Equal(t, ChunkError{From: "2024-06-04", To: "2024-06-06", Rows: 3, Error: "deadlock"}, res.Errors[0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpdatePriceValidation(t *testing.T) {
	svc, mock := newCalendarService(t)
	ctx := context.Background()

	_, err := svc.BulkUpdatePrice(ctx, 1, models.BulkPriceRequest{StartDate: "2024-06-01", EndDate: "2024-06-07", ApplyToDays: weekdays(7), Mode: "fixed", Value: amount(5)})
	require.True(t, domain.IsValidation(err))

	_, err = svc.BulkUpdatePrice(ctx, 1, models.BulkPriceRequest{StartDate: "06/01/2024", EndDate: "2024-06-07", Mode: "fixed", Value: amount(5)})
	require.True(t, domain.IsValidation(err))

	_, err = svc.BulkUpdatePrice(ctx, 1, models.BulkPriceRequest{StartDate: "2024-06-01", EndDate: "2024-06-07", Mode: "markup", Value: amount(5)})
	require.True(t, domain.IsValidation(err))

	expectRoom(mock, 1, 100)
	_, err = svc.BulkUpdatePrice(ctx, 1, models.BulkPriceRequest{StartDate: "2024-06-07", EndDate: "2024-06-01", Mode: "fixed", Value: amount(5)})
	require.True(t, domain.IsValidation(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpdatePriceRequiresValue(t *testing.T) {
	svc, mock := newCalendarService(t)

	for _, mode := range []string{domain.PriceFixed, domain.PricePercentage} {
		_, err := svc.BulkUpdatePrice(context.Background(), 1, models.BulkPriceRequest{
			StartDate: "2024-06-01",
			EndDate:   "2024-06-07",
			Mode:      mode,
		})
		require.True(t, domain.IsValidation(err), "mode %s: got %v", mode, err)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpdatePriceEmptyWeekdaysWritesNothing(t *testing.T) {
	svc, mock := newCalendarService(t)

	expectRoom(mock, 1, 100)
	res, err := svc.BulkUpdatePrice(context.Background(), 1, models.BulkPriceRequest{
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-07",
		ApplyToDays: weekdays(),
		Mode:        domain.PriceFixed,
		Value:       amount(90),
	})
	require.NoError(t, err)
	require.Equal(t, BulkPriceResult{}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpdatePriceModeIgnoresCase(t *testing.T) {
	svc, mock := newCalendarService(t)

	expectRoom(mock, 1, 100)
	mock.ExpectQuery("FROM room_daily_prices").WillReturnRows(dayRows())
	mock.ExpectExec("INSERT INTO room_daily_prices").
		WithArgs(int64(1), "2024-06-02", 75.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := svc.BulkUpdatePrice(context.Background(), 1, models.BulkPriceRequest{
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-07",
		ApplyToDays: weekdays(0),
		Mode:        " FIXED",
		Value:       amount(75),
	})
	require.NoError(t, err)
	require.Equal(t, 1, res.Affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDayBlockedReturnsPrevious(t *testing.T) {
	svc, mock := newCalendarService(t)

	expectRoom(mock, 1, 100)
	mock.ExpectQuery("FROM room_daily_prices").WithArgs(int64(1), "2024-06-05", "2024-06-05").
		WillReturnRows(dayRows().AddRow(1, day("2024-06-05"), nil, true))
	mock.ExpectExec("INSERT INTO room_daily_prices").
		WithArgs(int64(1), "2024-06-05", false).
		WillReturnResult(sqlmock.NewResult(0, 2))

	res, err := svc.SetDayBlocked(context.Background(), 1, "2024-06-05", false)
	require.NoError(t, err)
	require.Equal(t, DayBlockResult{Date: "2024-06-05", IsBlocked: false, Previous: true}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDayBlockedFailureKeepsPrevious(t *testing.T) {
	svc, mock := newCalendarService(t)

	expectRoom(mock, 1, 100)
	mock.ExpectQuery("FROM room_daily_prices").
		WillReturnRows(dayRows())
	mock.ExpectExec("INSERT INTO room_daily_prices").
		WillReturnError(errors.New("connection reset"))

	res, err := svc.SetDayBlocked(context.Background(), 1, "2024-06-05", true)
	require.Error(t, err)
	require.True(t, domain.IsInternal(err))
	require.False(t, res.Previous)
	require.False(t, res.IsBlocked)
	require.Equal(t, "2024-06-05", res.Date)
}

func TestSetDayBlockedUnknownRoomHasNoRollbackState(t *testing.T) {
	svc, mock := newCalendarService(t)

	mock.ExpectQuery("FROM hotel_rooms WHERE id=").WithArgs(int64(8)).WillReturnError(sql.ErrNoRows)

	res, err := svc.SetDayBlocked(context.Background(), 8, "2024-06-05", true)
	require.True(t, domain.IsNotFound(err), "got %v", err)
	require.Equal(t, DayBlockResult{}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDayBlockedReadFailureHasNoRollbackState(t *testing.T) {
	svc, mock := newCalendarService(t)

	expectRoom(mock, 1, 100)
	mock.ExpectQuery("FROM room_daily_prices").WillReturnError(errors.New("too many connections"))

	res, err := svc.SetDayBlocked(context.Background(), 1, "2024-06-05", true)
	require.True(t, domain.IsInternal(err), "got %v", err)
	require.Empty(t, res.Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetMonthBlockedWritesEveryDay(t *testing.T) {
	svc, mock := newCalendarService(t)

	expectRoom(mock, 1, 100)
	args := []driver.Value{}
	for d := 1; d <= 29; d++ {
		args = append(args, int64(1), time.Date(2024, 2, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), true)
	}
	mock.ExpectExec("INSERT INTO room_daily_prices").WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 29))

	res, err := svc.SetMonthBlocked(context.Background(), 1, "2024-02", true)
	require.NoError(t, err)
	require.Equal(t, MonthBlockResult{Month: "2024-02", IsBlocked: true, Days: 29}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCalendarMergesOverrides(t *testing.T) {
	svc, mock := newCalendarService(t)

	expectRoom(mock, 1, 120)
	mock.ExpectQuery("FROM room_daily_prices").WithArgs(int64(1), "2024-06-01", "2024-06-30").
		WillReturnRows(dayRows().
			AddRow(1, day("2024-06-05"), 180.0, true).
			AddRow(1, day("2024-06-06"), nil, true))

	view, err := svc.Calendar(context.Background(), 1, "2024-06")
	require.NoError(t, err)
	require.Equal(t, "2024-06", view.Month)
	require.Len(t, view.Days, 30)
	require.Equal(t, domain.CalendarDay{Date: "2024-06-01", Weekday: 6, Price: 120}, view.Days[0])
	require.Equal(t, domain.CalendarDay{Date: "2024-06-05", Weekday: 3, Price: 180, IsOverride: true, IsBlocked: true}, view.Days[4])
	require.Equal(t, domain.CalendarDay{Date: "2024-06-06", Weekday: 4, Price: 120, IsBlocked: true}, view.Days[5])
}
