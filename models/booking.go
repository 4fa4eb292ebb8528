package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. Pending bookings may move to confirmed or cancelled;
// the admin UI treats confirmed/cancelled as terminal but the data layer
// does not enforce that.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BoatID uint `gorm:"index;column:boat_id" json:"boat_id"`
	Boat   Boat `gorm:"foreignKey:BoatID;references:ID" json:"boat,omitempty"`

	// Customer identity is denormalized on the booking; CustomerEmail is the
	// de facto join key against the customers table.
	CustomerName  string `gorm:"size:255" json:"customer_name"`
	CustomerEmail string `gorm:"size:255;index" json:"customer_email"`
	CustomerPhone string `gorm:"size:50" json:"customer_phone,omitempty"`

	// Inclusive calendar-date range, StartDate <= EndDate.
	StartDate time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date" json:"end_date"`

	Status     string   `gorm:"size:20;default:pending;index" json:"status"`
	TotalPrice *float64 `gorm:"column:total_price" json:"total_price,omitempty"`
	Notes      string   `gorm:"type:text" json:"notes,omitempty"`
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// ActiveOn reports whether the booking occupies the boat on day. Cancelled
// bookings are active on none of their dates. Only the calendar date is
// considered, never the time of day.
func (b *Booking) ActiveOn(day time.Time) bool {
	if b.Status == BookingStatusCancelled {
		return false
	}
	d := DateOnly(day)
	return !d.Before(DateOnly(b.StartDate)) && !d.After(DateOnly(b.EndDate))
}

// OverlapsRange reports whether the booking's inclusive date range
// intersects [start, end].
func (b *Booking) OverlapsRange(start, end time.Time) bool {
	return RangesOverlap(b.StartDate, b.EndDate, start, end)
}

// RangesOverlap reports whether two inclusive date ranges intersect.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !DateOnly(aStart).After(DateOnly(bEnd)) && !DateOnly(bStart).After(DateOnly(aEnd))
}

// DateOnly truncates t to midnight UTC so range comparisons ignore the
// time component.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
