package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func price(v float64) *float64 { return &v }

func TestDatesInRangeWeekendFilter(t *testing.T) {
	set, err := NewWeekdaySet([]int{0, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := DatesInRange(date("2024-06-01"), date("2024-06-07"), set)
	want := []time.Time{date("2024-06-01"), date("2024-06-02")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("dates mismatch (-want +got):\n%s", diff)
	}
}

func TestDatesInRangeCountsMatchWeekdays(t *testing.T) {
	set, _ := NewWeekdaySet([]int{1, 3, 5})
	// 2024-01-01 is a Monday; 4 full weeks
	got := DatesInRange(date("2024-01-01"), date("2024-01-28"), set)
	if len(got) != 12 {
		t.Fatalf("expected 12 dates, got %d", len(got))
	}
	for _, d := range got {
		if !set.Has(d.Weekday()) {
			t.Fatalf("%s is not a selected weekday", d.Format("2006-01-02"))
		}
	}
}

func TestNewWeekdaySetRejectsOutOfRange(t *testing.T) {
	for _, days := range [][]int{{7}, {-1}, {0, 8}} {
		if _, err := NewWeekdaySet(days); !IsValidation(err) {
			t.Fatalf("%v: expected validation error, got %v", days, err)
		}
	}
}

func TestPriceRuleApply(t *testing.T) {
	tests := []struct {
		rule  PriceRule
		prior float64
		want  float64
	}{
		{PriceRule{Mode: PriceFixed, Value: 2450}, 1000, 2450},
		{PriceRule{Mode: "FIXED", Value: 99.5}, 0, 99.5},
		{PriceRule{Mode: PricePercentage, Value: 10}, 1999, 2199},
		{PriceRule{Mode: PricePercentage, Value: -15}, 1000, 850},
		{PriceRule{Mode: PricePercentage, Value: 12.5}, 333, 375},
	}
	for _, tt := range tests {
		if got := tt.rule.Apply(tt.prior); got != tt.want {
			t.Fatalf("%+v on %v: got %v want %v", tt.rule, tt.prior, got, tt.want)
		}
	}
}

func TestPriceRuleValidate(t *testing.T) {
	bad := []PriceRule{
		{Mode: "markup", Value: 5},
		{Mode: PriceFixed, Value: -1},
		{Mode: PricePercentage, Value: -100},
	}
	for _, r := range bad {
		if err := r.Validate(); !IsValidation(err) {
			t.Fatalf("%+v: expected validation error, got %v", r, err)
		}
	}
}

func TestPlanBulkPriceUsesOverrideOrBase(t *testing.T) {
	all, _ := NewWeekdaySet([]int{0, 1, 2, 3, 4, 5, 6})
	stored := map[string]StoredDay{
		"2024-06-02": {Price: price(150)},
		"2024-06-03": {IsBlocked: true},
	}
	got, err := PlanBulkPrice(date("2024-06-01"), date("2024-06-03"), all,
		PriceRule{Mode: PricePercentage, Value: 10}, stored, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []DayPrice{
		{Date: date("2024-06-01"), Price: 110},
		{Date: date("2024-06-02"), Price: 165},
		{Date: date("2024-06-03"), Price: 110},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanBulkPriceRangeChecks(t *testing.T) {
	all, _ := NewWeekdaySet([]int{0, 1, 2, 3, 4, 5, 6})
	rule := PriceRule{Mode: PriceFixed, Value: 100}
	if _, err := PlanBulkPrice(date("2024-06-07"), date("2024-06-01"), all, rule, nil, 0); !IsValidation(err) {
		t.Fatalf("expected validation error for reversed range, got %v", err)
	}
	if _, err := PlanBulkPrice(date("2024-01-01"), date("2026-01-02"), all, rule, nil, 0); !IsValidation(err) {
		t.Fatalf("expected validation error for long range, got %v", err)
	}
	got, err := PlanBulkPrice(date("2024-06-05"), date("2024-06-05"), all, rule, nil, 0)
	if err != nil || len(got) != 1 {
		t.Fatalf("single day range: got %v, %v", got, err)
	}
}

func TestBuildCalendarLeapFebruary(t *testing.T) {
	stored := map[string]StoredDay{"2024-02-29": {Price: price(300), IsBlocked: true}}
	got := BuildCalendar(date("2024-02-10"), 200, stored)
	if len(got) != 29 {
		t.Fatalf("expected 29 days, got %d", len(got))
	}
	last := got[28]
	want := CalendarDay{Date: "2024-02-29", Weekday: int(time.Thursday), Price: 300, IsOverride: true, IsBlocked: true}
	if last != want {
		t.Fatalf("got %+v want %+v", last, want)
	}
	if got[0].Price != 200 || got[0].IsOverride {
		t.Fatalf("first day should use base price, got %+v", got[0])
	}
}
