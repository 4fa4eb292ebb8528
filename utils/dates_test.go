package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-07-10")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	want := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate(2025-07-10) = %v; want %v", got, want)
	}
}

func TestParseDateRFC3339Fallback(t *testing.T) {
	got, err := ParseDate("2025-07-10T15:04:05Z")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if got.Hour() != 0 || got.Day() != 10 {
		t.Errorf("expected midnight truncation, got %v", got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "10/07/2025", "not-a-date"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) succeeded; want error", s)
		}
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	d, _ := ParseDate("2025-07-10")
	if FormatDate(d) != "2025-07-10" {
		t.Errorf("round trip failed: got %q", FormatDate(d))
	}
}
