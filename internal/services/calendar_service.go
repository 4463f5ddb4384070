package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/repositories"
	"travellounge/internal/utils"
)

// DefaultPriceChunk is how many rows one bulk price upsert statement writes.
const DefaultPriceChunk = 100

// CalendarService runs the room availability and pricing grid.
type CalendarService struct {
	Rooms repositories.RoomRepo
	Deps
	// ChunkSize overrides DefaultPriceChunk.
	ChunkSize int
}

// CalendarView is one month of a room.
type CalendarView struct {
	RoomID    int64                `json:"room_id"`
	Month     string               `json:"month"`
	BasePrice float64              `json:"base_price"`
	Days      []domain.CalendarDay `json:"days"`
}

// DayBlockResult reports a single-day toggle. Previous is the state before the
// write so a client can undo its optimistic update; it is filled in even when
// the write fails.
type DayBlockResult struct {
	Date      string `json:"date"`
	IsBlocked bool   `json:"is_blocked"`
	Previous  bool   `json:"previous"`
}

type MonthBlockResult struct {
	Month     string `json:"month"`
	IsBlocked bool   `json:"is_blocked"`
	Days      int    `json:"days"`
}

// ChunkError describes one failed upsert chunk. Its rows were not written.
type ChunkError struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Rows  int    `json:"rows"`
	Error string `json:"error"`
}

// BulkPriceResult summarises a bulk update. Chunks are independent, so a
// partial failure leaves the successful chunks written.
type BulkPriceResult struct {
	Affected int          `json:"affected"`
	Failed   int          `json:"failed"`
	Errors   []ChunkError `json:"errors,omitempty"`
}

func (s CalendarService) chunkSize() int {
	if s.ChunkSize > 0 {
		return s.ChunkSize
	}
	return DefaultPriceChunk
}

func (s CalendarService) Calendar(ctx context.Context, roomID int64, month string) (CalendarView, error) {
	m, err := utils.ParseMonth(month)
	if err != nil {
		return CalendarView{}, domain.ValidationError{Field: "month", Msg: "must be YYYY-MM", Err: err}
	}
	room, err := s.Rooms.GetByID(ctx, roomID)
	if err != nil {
		return CalendarView{}, wrap(err)
	}
	first, last := monthBounds(m)
	stored, err := s.Rooms.DailyPrices(ctx, roomID, first, last)
	if err != nil {
		return CalendarView{}, wrap(err)
	}
	return CalendarView{
		RoomID:    roomID,
		Month:     m.Format("2006-01"),
		BasePrice: room.BasePrice,
		Days:      domain.BuildCalendar(m, room.BasePrice, stored),
	}, nil
}

// SetDayBlocked upserts one day's block flag and reports the previous flag.
func (s CalendarService) SetDayBlocked(ctx context.Context, roomID int64, date string, blocked bool) (DayBlockResult, error) {
	d, err := utils.ParseDate(date)
	if err != nil {
		return DayBlockResult{}, domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	// Failures before the stored flag is read carry no rollback state.
	if _, err := s.Rooms.GetByID(ctx, roomID); err != nil {
		return DayBlockResult{}, wrap(err)
	}
	prev, _, err := s.Rooms.GetDay(ctx, roomID, d)
	if err != nil {
		return DayBlockResult{}, wrap(err)
	}
	res := DayBlockResult{Date: utils.FormatDate(d), IsBlocked: blocked, Previous: prev.IsBlocked}
	if err := s.Rooms.UpsertBlocked(ctx, roomID, []time.Time{d}, blocked); err != nil {
		res.IsBlocked = prev.IsBlocked
		return res, wrap(err)
	}
	s.log("calendar", "set_day_blocked", "room_id=%d date=%s blocked=%t previous=%t", roomID, res.Date, blocked, prev.IsBlocked)
	return res, nil
}

// SetMonthBlocked upserts the block flag of every day in month in one statement.
func (s CalendarService) SetMonthBlocked(ctx context.Context, roomID int64, month string, blocked bool) (MonthBlockResult, error) {
	m, err := utils.ParseMonth(month)
	if err != nil {
		return MonthBlockResult{}, domain.ValidationError{Field: "month", Msg: "must be YYYY-MM", Err: err}
	}
	if _, err := s.Rooms.GetByID(ctx, roomID); err != nil {
		return MonthBlockResult{}, wrap(err)
	}
	days := utils.DaysInMonth(m)
	if err := s.Rooms.UpsertBlocked(ctx, roomID, days, blocked); err != nil {
		return MonthBlockResult{}, wrap(err)
	}
	s.log("calendar", "set_month_blocked", "room_id=%d month=%s blocked=%t", roomID, m.Format("2006-01"), blocked)
	return MonthBlockResult{Month: m.Format("2006-01"), IsBlocked: blocked, Days: len(days)}, nil
}

// BulkUpdatePrice rewrites prices of every date in range whose weekday is
// selected. Percentage rules start from the stored override, or the room's
// base price when there is none.
func (s CalendarService) BulkUpdatePrice(ctx context.Context, roomID int64, req models.BulkPriceRequest) (BulkPriceResult, error) {
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return BulkPriceResult{}, domain.ValidationError{Field: "start_date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return BulkPriceResult{}, domain.ValidationError{Field: "end_date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	days := []int{0, 1, 2, 3, 4, 5, 6}
	if req.ApplyToDays != nil {
		days = *req.ApplyToDays
	}
	set, err := domain.NewWeekdaySet(days)
	if err != nil {
		return BulkPriceResult{}, err
	}
	if req.Value == nil {
		return BulkPriceResult{}, domain.ValidationError{Field: "value", Msg: "required"}
	}
	rule := domain.PriceRule{Mode: strings.ToLower(strings.TrimSpace(req.Mode)), Value: *req.Value}
	if err := rule.Validate(); err != nil {
		return BulkPriceResult{}, err
	}

	room, err := s.Rooms.GetByID(ctx, roomID)
	if err != nil {
		return BulkPriceResult{}, wrap(err)
	}
	if end.Before(start) {
		return BulkPriceResult{}, domain.ValidationError{Field: "end_date", Msg: "must not be before start_date"}
	}
	if set == (domain.WeekdaySet{}) {
		s.log("calendar", "bulk_update_price", "room_id=%d no weekdays selected", roomID)
		return BulkPriceResult{}, nil
	}
	stored, err := s.Rooms.DailyPrices(ctx, roomID, start, end)
	if err != nil {
		return BulkPriceResult{}, wrap(err)
	}
	plan, err := domain.PlanBulkPrice(start, end, set, rule, stored, room.BasePrice)
	if err != nil {
		return BulkPriceResult{}, err
	}

	res := BulkPriceResult{}
	size := s.chunkSize()
	for i := 0; i < len(plan); i += size {
		if err := ctxErr(ctx); err != nil {
			return res, err
		}
		chunk := plan[i:min(i+size, len(plan))]
		if err := s.Rooms.UpsertPrices(ctx, roomID, chunk); err != nil {
			res.Failed += len(chunk)
			res.Errors = append(res.Errors, ChunkError{
				From:  utils.FormatDate(chunk[0].Date),
				To:    utils.FormatDate(chunk[len(chunk)-1].Date),
				Rows:  len(chunk),
				Error: err.Error(),
			})
			utils.LogError(s.RequestID, "calendar", "bulk_update_price", fmt.Errorf("room_id=%d chunk %d: %w", roomID, i/size, err))
			continue
		}
		res.Affected += len(chunk)
	}
	s.log("calendar", "bulk_update_price", "room_id=%d %s..%s mode=%s value=%g affected=%d failed=%d",
		roomID, utils.FormatDate(start), utils.FormatDate(end), rule.Mode, rule.Value, res.Affected, res.Failed)
	return res, nil
}

func monthBounds(m time.Time) (time.Time, time.Time) {
	first := time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}
