package domain

import (
	"errors"
	"testing"
)

func TestNormalizeStatus(t *testing.T) {
	if s, err := BookingStatus(" Confirmed "); err != nil || s != BookingConfirmed {
		t.Fatalf("got %q, %v", s, err)
	}
	if _, err := BookingStatus("approved"); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if s, err := FlightStatus("SOLD_OUT"); err != nil || s != FlightSoldOut {
		t.Fatalf("got %q, %v", s, err)
	}
	if s, err := ReviewStatus("approved"); err != nil || s != ReviewApproved {
		t.Fatalf("got %q, %v", s, err)
	}
}

func TestInternalKeepsDomainErrors(t *testing.T) {
	nf := NotFoundError{Resource: "menu"}
	if got := Internal(nf); !IsNotFound(got) || IsInternal(got) {
		t.Fatalf("not found should pass through, got %T", got)
	}
	raw := errors.New("driver: bad connection")
	got := Internal(raw)
	if !IsInternal(got) || !errors.Is(got, raw) {
		t.Fatalf("raw error should be wrapped as internal, got %T", got)
	}
	if Internal(nil) != nil {
		t.Fatalf("nil should stay nil")
	}
}
