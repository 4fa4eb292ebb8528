package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// How a customer record entered the CRM.
const (
	CustomerSourceManual  = "manual"
	CustomerSourceBooking = "booking"
	CustomerSourceWebsite = "website"
)

// SuggestedCustomerTags is the fixed label set offered by the admin UI.
// Tags themselves stay free-form.
var SuggestedCustomerTags = []string{
	"vip", "repeat", "charter", "events", "aperitivo", "newsletter",
}

type Customer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name  string `gorm:"size:255" json:"name"`
	Email string `gorm:"size:255;index" json:"email"`
	Phone string `gorm:"size:50" json:"phone,omitempty"`
	Notes string `gorm:"type:text" json:"notes,omitempty"`

	Tags   datatypes.JSONSlice[string] `json:"tags"`
	Source string                      `gorm:"size:20;default:manual" json:"source"`

	// Aggregates over bookings sharing this customer's email. Maintained by
	// CustomerService.RecalculateAggregates, read-only for API clients.
	TotalSpent      float64    `gorm:"column:total_spent;default:0" json:"total_spent"`
	TotalBookings   int        `gorm:"column:total_bookings;default:0" json:"total_bookings"`
	LastBookingDate *time.Time `gorm:"column:last_booking_date" json:"last_booking_date,omitempty"`
}

// ValidCustomerSource reports whether s is a known CRM source.
func ValidCustomerSource(s string) bool {
	return s == CustomerSourceManual || s == CustomerSourceBooking || s == CustomerSourceWebsite
}
