package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"charter-backend/models"
	"charter-backend/utils"

	"gorm.io/gorm"
)

var (
	ErrBookingNotFound    = errors.New("booking_not_found")
	ErrInvalidDateRange   = errors.New("invalid_date_range")
	ErrInvalidStatus      = errors.New("invalid_status")
	ErrBoatUnavailable    = errors.New("boat_unavailable")
	ErrCustomerIdentity   = errors.New("customer_name_and_email_required")
	ErrNegativeTotalPrice = errors.New("negative_total_price")
)

// Day occupancy labels for the admin month calendar.
const (
	DayFree      = "free"
	DayPending   = "pending"
	DayConfirmed = "confirmed"
	DayMixed     = "mixed"
)

// BookingService wraps *gorm.DB for reservation operations.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// BookingDraft carries everything needed to create or update a booking.
// Dates arrive as "2006-01-02" strings from API clients.
type BookingDraft struct {
	BoatID        uint     `json:"boat_id" binding:"required"`
	CustomerName  string   `json:"customer_name"`
	CustomerEmail string   `json:"customer_email"`
	CustomerPhone string   `json:"customer_phone"`
	StartDate     string   `json:"start_date" binding:"required"`
	EndDate       string   `json:"end_date" binding:"required"`
	Status        string   `json:"status"`
	TotalPrice    *float64 `json:"total_price"`
	Notes         string   `json:"notes"`
}

// List returns all bookings with their boat preloaded, newest first,
// optionally narrowed by exact status and a case-insensitive substring
// query over customer name/email and boat name.
func (s *BookingService) List(status, query string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Preload("Boat").Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return FilterBookings(bookings, status, query), nil
}

// FilterBookings applies the admin list filters over an already-fetched
// booking set. Empty status or "all" passes everything through.
func FilterBookings(bookings []models.Booking, status, query string) []models.Booking {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if status != "" && status != "all" && b.Status != status {
			continue
		}
		if q != "" {
			hay := strings.ToLower(b.CustomerName + " " + b.CustomerEmail + " " + b.Boat.Name)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Boat").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	return &booking, nil
}

// Create validates the draft and persists a booking. Creating directly in
// confirmed state runs the overlap check first.
func (s *BookingService) Create(draft BookingDraft) (*models.Booking, error) {
	booking, err := s.fromDraft(draft)
	if err != nil {
		return nil, err
	}

	if booking.Status == models.BookingStatusConfirmed {
		if err := s.checkAvailability(booking.BoatID, booking.StartDate, booking.EndDate, 0); err != nil {
			return nil, err
		}
	}

	if err := s.DB.Create(booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return s.GetByID(booking.ID)
}

// Update overwrites a booking with the draft, keeping its current status.
func (s *BookingService) Update(id uint, draft BookingDraft) (*models.Booking, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	draft.Status = existing.Status
	booking, err := s.fromDraft(draft)
	if err != nil {
		return nil, err
	}

	if booking.Status == models.BookingStatusConfirmed {
		if err := s.checkAvailability(booking.BoatID, booking.StartDate, booking.EndDate, id); err != nil {
			return nil, err
		}
	}

	booking.ID = existing.ID
	booking.CreatedAt = existing.CreatedAt
	if err := s.DB.Save(booking).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking %d: %w", id, err)
	}
	return s.GetByID(id)
}

// UpdateStatus changes the status field and nothing else. Moving to
// confirmed is gated on the boat being free over the booking's range.
func (s *BookingService) UpdateStatus(id uint, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}

	booking, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if status == models.BookingStatusConfirmed {
		if err := s.checkAvailability(booking.BoatID, booking.StartDate, booking.EndDate, id); err != nil {
			return nil, err
		}
	}

	if err := s.DB.Model(&models.Booking{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking %d status: %w", id, err)
	}
	return s.GetByID(id)
}

func (s *BookingService) Delete(id uint) error {
	res := s.DB.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// MonthCalendar loads every non-cancelled booking intersecting the given
// month and reduces it to a per-day occupancy map keyed by "2006-01-02".
// boatID narrows the view to a single boat when non-zero.
func (s *BookingService) MonthCalendar(year int, month time.Month, boatID uint) (map[string]string, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	q := s.DB.Where("start_date <= ? AND end_date >= ?", last, first).
		Where("status <> ?", models.BookingStatusCancelled)
	if boatID != 0 {
		q = q.Where("boat_id = ?", boatID)
	}
	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load calendar bookings: %w", err)
	}

	return MonthOccupancy(bookings, year, month), nil
}

// MonthOccupancy labels each day of the month by the statuses of the
// bookings active on it: a booking is active on day d iff
// start_date <= d <= end_date and its status is not cancelled. Recomputed
// from scratch on every call, no pre-indexing.
func MonthOccupancy(bookings []models.Booking, year int, month time.Month) map[string]string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	out := make(map[string]string)

	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		var pending, confirmed bool
		for i := range bookings {
			if !bookings[i].ActiveOn(d) {
				continue
			}
			switch bookings[i].Status {
			case models.BookingStatusConfirmed:
				confirmed = true
			case models.BookingStatusPending:
				pending = true
			}
		}
		switch {
		case pending && confirmed:
			out[utils.FormatDate(d)] = DayMixed
		case confirmed:
			out[utils.FormatDate(d)] = DayConfirmed
		case pending:
			out[utils.FormatDate(d)] = DayPending
		default:
			out[utils.FormatDate(d)] = DayFree
		}
	}
	return out
}

// RecentByEmail returns the most recent bookings whose customer email
// matches, capped at limit.
func (s *BookingService) RecentByEmail(email string, limit int) ([]models.Booking, error) {
	if limit <= 0 {
		limit = 5
	}
	var bookings []models.Booking
	if err := s.DB.Preload("Boat").
		Where("LOWER(customer_email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Order("start_date DESC").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", email, err)
	}
	return bookings, nil
}

func (s *BookingService) fromDraft(draft BookingDraft) (*models.Booking, error) {
	if strings.TrimSpace(draft.CustomerName) == "" || strings.TrimSpace(draft.CustomerEmail) == "" {
		return nil, ErrCustomerIdentity
	}

	start, err := utils.ParseDate(draft.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	end, err := utils.ParseDate(draft.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	status := draft.Status
	if status == "" {
		status = models.BookingStatusPending
	}
	if !models.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}
	if draft.TotalPrice != nil && *draft.TotalPrice < 0 {
		return nil, ErrNegativeTotalPrice
	}

	var boat models.Boat
	if err := s.DB.First(&boat, draft.BoatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to check boat %d: %w", draft.BoatID, err)
	}

	return &models.Booking{
		BoatID:        draft.BoatID,
		CustomerName:  strings.TrimSpace(draft.CustomerName),
		CustomerEmail: strings.TrimSpace(draft.CustomerEmail),
		CustomerPhone: strings.TrimSpace(draft.CustomerPhone),
		StartDate:     start,
		EndDate:       end,
		Status:        status,
		TotalPrice:    draft.TotalPrice,
		Notes:         draft.Notes,
	}, nil
}

// checkAvailability rejects a confirmed booking whose inclusive range
// overlaps another confirmed booking for the same boat.
func (s *BookingService) checkAvailability(boatID uint, start, end time.Time, excludeID uint) error {
	q := s.DB.Model(&models.Booking{}).
		Where("boat_id = ? AND status = ?", boatID, models.BookingStatusConfirmed).
		Where("start_date <= ? AND end_date >= ?", end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check boat availability: %w", err)
	}
	if count > 0 {
		return ErrBoatUnavailable
	}
	return nil
}
