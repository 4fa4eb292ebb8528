package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"charter-backend/models"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer_not_found")
	ErrCustomerRequired = errors.New("customer_name_and_email_required")
	ErrInvalidSource    = errors.New("invalid_customer_source")
)

// CustomerService wraps *gorm.DB for CRM operations.
type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// List returns customers, optionally narrowed to those carrying tag.
func (s *CustomerService) List(tag string) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.Order("name ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if tag == "" || tag == "all" {
		return customers, nil
	}
	out := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		for _, t := range c.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to load customer %d: %w", id, err)
	}
	return &customer, nil
}

func (s *CustomerService) FindByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := s.DB.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer by email: %w", err)
	}
	return &customer, nil
}

func (s *CustomerService) Create(customer *models.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	if customer.Source == "" {
		customer.Source = models.CustomerSourceManual
	}
	if err := s.DB.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (s *CustomerService) Update(id uint, draft *models.Customer) (*models.Customer, error) {
	if err := validateCustomer(draft); err != nil {
		return nil, err
	}
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	draft.ID = existing.ID
	draft.CreatedAt = existing.CreatedAt
	// aggregates stay owned by RecalculateAggregates
	draft.TotalSpent = existing.TotalSpent
	draft.TotalBookings = existing.TotalBookings
	draft.LastBookingDate = existing.LastBookingDate
	if err := s.DB.Save(draft).Error; err != nil {
		return nil, fmt.Errorf("failed to update customer %d: %w", id, err)
	}
	return draft, nil
}

func (s *CustomerService) Delete(id uint) error {
	res := s.DB.Delete(&models.Customer{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// RecalculateAggregates rebuilds total_spent, total_bookings and
// last_booking_date from the confirmed bookings sharing the customer's
// email (the de facto join key).
func (s *CustomerService) RecalculateAggregates(id uint) (*models.Customer, error) {
	customer, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := s.DB.
		Where("LOWER(customer_email) = ? AND status = ?",
			strings.ToLower(strings.TrimSpace(customer.Email)), models.BookingStatusConfirmed).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load bookings for aggregates: %w", err)
	}

	var spent float64
	var last *time.Time
	for i := range bookings {
		if bookings[i].TotalPrice != nil {
			spent += *bookings[i].TotalPrice
		}
		start := bookings[i].StartDate
		if last == nil || start.After(*last) {
			t := start
			last = &t
		}
	}

	updates := map[string]interface{}{
		"total_spent":       spent,
		"total_bookings":    len(bookings),
		"last_booking_date": last,
	}
	if err := s.DB.Model(&models.Customer{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to store aggregates for customer %d: %w", id, err)
	}
	return s.GetByID(id)
}

func validateCustomer(c *models.Customer) error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" {
		return ErrCustomerRequired
	}
	if c.Source != "" && !models.ValidCustomerSource(c.Source) {
		return ErrInvalidSource
	}
	return nil
}
