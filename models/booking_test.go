package models

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBookingActiveOn(t *testing.T) {
	booking := Booking{
		StartDate: day("2025-07-10"),
		EndDate:   day("2025-07-12"),
		Status:    BookingStatusConfirmed,
	}

	tests := []struct {
		date string
		want bool
	}{
		{"2025-07-09", false},
		{"2025-07-10", true},
		{"2025-07-11", true},
		{"2025-07-12", true},
		{"2025-07-13", false},
	}

	for _, tt := range tests {
		if got := booking.ActiveOn(day(tt.date)); got != tt.want {
			t.Errorf("ActiveOn(%s) = %v; want %v", tt.date, got, tt.want)
		}
	}
}

func TestCancelledBookingActiveOnNothing(t *testing.T) {
	booking := Booking{
		StartDate: day("2025-07-10"),
		EndDate:   day("2025-07-12"),
		Status:    BookingStatusCancelled,
	}
	for d := day("2025-07-09"); !d.After(day("2025-07-13")); d = d.AddDate(0, 0, 1) {
		if booking.ActiveOn(d) {
			t.Errorf("cancelled booking reported active on %s", d.Format("2006-01-02"))
		}
	}
}

func TestActiveOnIgnoresTimeOfDay(t *testing.T) {
	booking := Booking{
		StartDate: day("2025-07-10"),
		EndDate:   day("2025-07-10"),
		Status:    BookingStatusPending,
	}
	evening := time.Date(2025, time.July, 10, 23, 30, 0, 0, time.UTC)
	if !booking.ActiveOn(evening) {
		t.Error("expected booking active on its own day regardless of clock time")
	}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"disjoint before", "2025-07-01", "2025-07-05", "2025-07-06", "2025-07-10", false},
		{"touching endpoints", "2025-07-01", "2025-07-05", "2025-07-05", "2025-07-10", true},
		{"contained", "2025-07-01", "2025-07-10", "2025-07-03", "2025-07-04", true},
		{"identical", "2025-07-01", "2025-07-05", "2025-07-01", "2025-07-05", true},
		{"disjoint after", "2025-07-10", "2025-07-12", "2025-07-01", "2025-07-05", false},
		{"single day inside", "2025-07-03", "2025-07-03", "2025-07-01", "2025-07-05", true},
	}

	for _, tt := range tests {
		got := RangesOverlap(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
		if got != tt.want {
			t.Errorf("%s: RangesOverlap = %v; want %v", tt.name, got, tt.want)
		}
	}
}

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []string{BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled} {
		if !ValidBookingStatus(s) {
			t.Errorf("ValidBookingStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "done", "PENDING"} {
		if ValidBookingStatus(s) {
			t.Errorf("ValidBookingStatus(%q) = true", s)
		}
	}
}
