package services

import (
	"errors"
	"fmt"
	"strings"

	"charter-backend/models"
	"charter-backend/utils"

	"gorm.io/gorm"
)

var (
	ErrServiceNotFound     = errors.New("service_not_found")
	ErrServiceNameRequired = errors.New("service_name_required")
	ErrInvalidIcon         = errors.New("invalid_service_icon")
)

// CatalogService wraps *gorm.DB for the fixed service catalog (skipper,
// aperitivo, events, tours).
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ListActive returns visible offerings in display order for public pages.
func (s *CatalogService) ListActive() ([]models.Service, error) {
	var offerings []models.Service
	if err := s.DB.Where("is_active = ?", true).
		Order("display_order ASC, name ASC").
		Find(&offerings).Error; err != nil {
		return nil, fmt.Errorf("failed to list active services: %w", err)
	}
	return offerings, nil
}

// ListAll returns every offering, hidden ones included, for the admin.
func (s *CatalogService) ListAll() ([]models.Service, error) {
	var offerings []models.Service
	if err := s.DB.Order("display_order ASC, name ASC").Find(&offerings).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return offerings, nil
}

func (s *CatalogService) GetBySlug(slug string) (*models.Service, error) {
	var offering models.Service
	if err := s.DB.Where("slug = ? AND is_active = ?", slug, true).
		First(&offering).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to load service %q: %w", slug, err)
	}
	return &offering, nil
}

func (s *CatalogService) GetByID(id uint) (*models.Service, error) {
	var offering models.Service
	if err := s.DB.First(&offering, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to load service %d: %w", id, err)
	}
	return &offering, nil
}

func (s *CatalogService) Create(offering *models.Service) error {
	if err := validateOffering(offering); err != nil {
		return err
	}
	slug, err := s.uniqueSlug(offering.Name, 0)
	if err != nil {
		return err
	}
	offering.Slug = slug
	if err := s.DB.Create(offering).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (s *CatalogService) Update(id uint, draft *models.Service) (*models.Service, error) {
	if err := validateOffering(draft); err != nil {
		return nil, err
	}
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	draft.ID = existing.ID
	draft.CreatedAt = existing.CreatedAt
	draft.Slug = existing.Slug
	if draft.Name != existing.Name {
		slug, err := s.uniqueSlug(draft.Name, existing.ID)
		if err != nil {
			return nil, err
		}
		draft.Slug = slug
	}
	if err := s.DB.Save(draft).Error; err != nil {
		return nil, fmt.Errorf("failed to update service %d: %w", id, err)
	}
	return draft, nil
}

// SetActive toggles visibility without deleting.
func (s *CatalogService) SetActive(id uint, active bool) (*models.Service, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Service{}).Where("id = ?", id).
		Update("is_active", active).Error; err != nil {
		return nil, fmt.Errorf("failed to toggle service %d: %w", id, err)
	}
	return s.GetByID(id)
}

func (s *CatalogService) Delete(id uint) error {
	res := s.DB.Delete(&models.Service{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete service %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func validateOffering(o *models.Service) error {
	if strings.TrimSpace(o.Name) == "" {
		return ErrServiceNameRequired
	}
	if o.Icon != "" && !models.ValidServiceIcon(o.Icon) {
		return ErrInvalidIcon
	}
	return nil
}

func (s *CatalogService) uniqueSlug(name string, excludeID uint) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		return "", ErrServiceNameRequired
	}
	return nextAvailableSlug(base, func(slug string) (bool, error) {
		var count int64
		q := s.DB.Model(&models.Service{}).Where("slug = ?", slug)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to check slug %q: %w", slug, err)
		}
		return count > 0, nil
	})
}
