package domain

import (
	"math"
	"strings"
	"time"
)

// Price rule modes for bulk calendar updates.
const (
	PriceFixed      = "fixed"
	PricePercentage = "percentage"
)

// MaxBulkRangeDays bounds a single bulk price update.
const MaxBulkRangeDays = 731

// PriceRule describes how a bulk update derives each day's new price.
type PriceRule struct {
	Mode  string  `json:"mode"`
	Value float64 `json:"value"`
}

// StoredDay is what room_daily_prices holds for one date. Price is nil when
// the row only carries a block flag.
type StoredDay struct {
	Price     *float64
	IsBlocked bool
}

// DayPrice is one planned (room, date) price write.
type DayPrice struct {
	Date  time.Time
	Price float64
}

// CalendarDay is one cell of the availability grid.
type CalendarDay struct {
	Date       string  `json:"date"`
	Weekday    int     `json:"weekday"`
	Price      float64 `json:"price"`
	IsOverride bool    `json:"is_override"`
	IsBlocked  bool    `json:"is_blocked"`
}

// WeekdaySet maps 0 (Sunday) .. 6 (Saturday) to membership.
type WeekdaySet [7]bool

// NewWeekdaySet validates day numbers. Duplicates are fine.
func NewWeekdaySet(days []int) (WeekdaySet, error) {
	var set WeekdaySet
	for _, d := range days {
		if d < 0 || d > 6 {
			return set, ValidationError{Field: "apply_to_days", Msg: "weekday must be between 0 (Sunday) and 6 (Saturday)"}
		}
		set[d] = true
	}
	return set, nil
}

func (s WeekdaySet) Has(d time.Weekday) bool {
	return s[int(d)]
}

// Validate checks mode and value range.
func (r PriceRule) Validate() error {
	switch strings.ToLower(strings.TrimSpace(r.Mode)) {
	case PriceFixed:
		if r.Value < 0 {
			return ValidationError{Field: "value", Msg: "fixed price cannot be negative"}
		}
	case PricePercentage:
		if r.Value <= -100 {
			return ValidationError{Field: "value", Msg: "percentage must be greater than -100"}
		}
	default:
		return ValidationError{Field: "mode", Msg: "must be fixed or percentage"}
	}
	return nil
}

// Apply derives the new price from prior.
func (r PriceRule) Apply(prior float64) float64 {
	if strings.ToLower(strings.TrimSpace(r.Mode)) == PriceFixed {
		return r.Value
	}
	return math.Round(prior * (1 + r.Value/100))
}

// DatesInRange returns every date in [start, end] whose weekday is in days.
func DatesInRange(start, end time.Time, days WeekdaySet) []time.Time {
	start = truncateDay(start)
	end = truncateDay(end)
	out := []time.Time{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if days.Has(d.Weekday()) {
			out = append(out, d)
		}
	}
	return out
}

// PlanBulkPrice computes the writes of a ranged bulk update. stored is keyed
// by YYYY-MM-DD; days without a stored price fall back to base.
func PlanBulkPrice(start, end time.Time, days WeekdaySet, rule PriceRule, stored map[string]StoredDay, base float64) ([]DayPrice, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return nil, ValidationError{Field: "end_date", Msg: "must not be before start_date"}
	}
	if int(end.Sub(start).Hours()/24) >= MaxBulkRangeDays {
		return nil, ValidationError{Field: "end_date", Msg: "range too long"}
	}

	dates := DatesInRange(start, end, days)
	out := make([]DayPrice, 0, len(dates))
	for _, d := range dates {
		prior := base
		if s, ok := stored[d.Format("2006-01-02")]; ok && s.Price != nil {
			prior = *s.Price
		}
		out = append(out, DayPrice{Date: d, Price: rule.Apply(prior)})
	}
	return out, nil
}

// BuildCalendar lays out every day of month with its effective price.
func BuildCalendar(month time.Time, base float64, stored map[string]StoredDay) []CalendarDay {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]CalendarDay, 0, 31)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		day := CalendarDay{Date: key, Weekday: int(d.Weekday()), Price: base}
		if s, ok := stored[key]; ok {
			day.IsBlocked = s.IsBlocked
			if s.Price != nil {
				day.Price = *s.Price
				day.IsOverride = true
			}
		}
		out = append(out, day)
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
