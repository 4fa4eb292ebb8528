package services

import (
	"testing"
	"time"

	"charter-backend/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleBookings() []models.Booking {
	return []models.Booking{
		{
			ID: 1, BoatID: 1,
			CustomerName: "Mario Rossi", CustomerEmail: "mario@example.com",
			Boat:      models.Boat{Name: "Caicco Blu"},
			StartDate: date("2025-07-10"), EndDate: date("2025-07-12"),
			Status: models.BookingStatusConfirmed,
		},
		{
			ID: 2, BoatID: 2,
			CustomerName: "Anna Bianchi", CustomerEmail: "anna@example.com",
			Boat:      models.Boat{Name: "Gommone Veloce"},
			StartDate: date("2025-07-11"), EndDate: date("2025-07-11"),
			Status: models.BookingStatusPending,
		},
		{
			ID: 3, BoatID: 1,
			CustomerName: "Luca Verdi", CustomerEmail: "luca@example.com",
			Boat:      models.Boat{Name: "Caicco Blu"},
			StartDate: date("2025-07-20"), EndDate: date("2025-07-25"),
			Status: models.BookingStatusCancelled,
		},
	}
}

func TestFilterBookingsAllPassesThrough(t *testing.T) {
	bookings := sampleBookings()

	for _, status := range []string{"", "all"} {
		got := FilterBookings(bookings, status, "")
		if len(got) != len(bookings) {
			t.Errorf("status %q: got %d bookings; want %d", status, len(got), len(bookings))
		}
	}
}

func TestFilterBookingsRestoresAfterRealFilter(t *testing.T) {
	bookings := sampleBookings()

	filtered := FilterBookings(bookings, models.BookingStatusPending, "")
	if len(filtered) != 1 || filtered[0].ID != 2 {
		t.Fatalf("pending filter returned %d bookings", len(filtered))
	}

	restored := FilterBookings(bookings, "all", "")
	if len(restored) != len(bookings) {
		t.Errorf("'all' after a real filter returned %d; want %d", len(restored), len(bookings))
	}
}

func TestFilterBookingsQueryMatchesNameEmailBoat(t *testing.T) {
	bookings := sampleBookings()

	tests := []struct {
		query string
		want  []uint
	}{
		{"mario", []uint{1}},
		{"ANNA@EXAMPLE", []uint{2}},
		{"caicco", []uint{1, 3}},
		{"nessuno", nil},
	}

	for _, tt := range tests {
		got := FilterBookings(bookings, "", tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("query %q: got %d results; want %d", tt.query, len(got), len(tt.want))
			continue
		}
		for i, b := range got {
			if b.ID != tt.want[i] {
				t.Errorf("query %q: result[%d].ID = %d; want %d", tt.query, i, b.ID, tt.want[i])
			}
		}
	}
}

func TestFilterBookingsCombinesStatusAndQuery(t *testing.T) {
	got := FilterBookings(sampleBookings(), models.BookingStatusCancelled, "caicco")
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("combined filter returned %d results", len(got))
	}
}

func TestMonthOccupancy(t *testing.T) {
	bookings := sampleBookings()
	days := MonthOccupancy(bookings, 2025, time.July)

	if len(days) != 31 {
		t.Fatalf("expected 31 day entries for July, got %d", len(days))
	}

	tests := []struct {
		day  string
		want string
	}{
		{"2025-07-09", DayFree},
		{"2025-07-10", DayConfirmed},
		{"2025-07-11", DayMixed},
		{"2025-07-12", DayConfirmed},
		{"2025-07-13", DayFree},
		// cancelled booking occupies nothing
		{"2025-07-22", DayFree},
	}

	for _, tt := range tests {
		if got := days[tt.day]; got != tt.want {
			t.Errorf("occupancy[%s] = %q; want %q", tt.day, got, tt.want)
		}
	}
}

func TestMonthOccupancyPendingOnly(t *testing.T) {
	bookings := []models.Booking{{
		StartDate: date("2025-02-27"), EndDate: date("2025-03-02"),
		Status: models.BookingStatusPending,
	}}
	days := MonthOccupancy(bookings, 2025, time.February)

	if len(days) != 28 {
		t.Fatalf("expected 28 day entries for February 2025, got %d", len(days))
	}
	if days["2025-02-27"] != DayPending || days["2025-02-28"] != DayPending {
		t.Error("expected pending occupancy at month end")
	}
	if days["2025-02-26"] != DayFree {
		t.Error("expected free day before the booking starts")
	}
}
