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
	ErrBoatNotFound     = errors.New("boat_not_found")
	ErrBoatNameRequired = errors.New("boat_name_required")
	ErrInvalidBoatType  = errors.New("invalid_boat_type")
	ErrNegativePrice    = errors.New("negative_price")
	ErrUnknownFeature   = errors.New("unknown_feature_key")
	ErrInvalidExtraUnit = errors.New("invalid_extra_unit")
)

// BoatService wraps *gorm.DB for fleet inventory operations.
type BoatService struct {
	DB *gorm.DB
}

func NewBoatService(db *gorm.DB) *BoatService {
	return &BoatService{DB: db}
}

// List returns the fleet, optionally restricted to one boat type.
// An empty or "all" filter passes everything through.
func (s *BoatService) List(boatType string) ([]models.Boat, error) {
	q := s.DB.Order("is_featured DESC, name ASC")
	if boatType != "" && boatType != "all" {
		q = q.Where("type = ?", boatType)
	}
	var boats []models.Boat
	if err := q.Find(&boats).Error; err != nil {
		return nil, fmt.Errorf("failed to list boats: %w", err)
	}
	return boats, nil
}

// ListFeatured returns the boats flagged for the homepage.
func (s *BoatService) ListFeatured() ([]models.Boat, error) {
	var boats []models.Boat
	if err := s.DB.Where("is_featured = ?", true).Order("name ASC").Find(&boats).Error; err != nil {
		return nil, fmt.Errorf("failed to list featured boats: %w", err)
	}
	return boats, nil
}

func (s *BoatService) GetBySlug(slug string) (*models.Boat, error) {
	var boat models.Boat
	if err := s.DB.Where("slug = ?", slug).First(&boat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to load boat %q: %w", slug, err)
	}
	return &boat, nil
}

func (s *BoatService) GetByID(id uint) (*models.Boat, error) {
	var boat models.Boat
	if err := s.DB.First(&boat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to load boat %d: %w", id, err)
	}
	return &boat, nil
}

// Create persists a whole boat draft in one call. The slug is derived from
// the name; a numeric suffix is appended on collision.
func (s *BoatService) Create(boat *models.Boat) error {
	if err := s.validate(boat); err != nil {
		return err
	}
	slug, err := s.uniqueSlug(boat.Name, 0)
	if err != nil {
		return err
	}
	boat.Slug = slug
	if err := s.DB.Create(boat).Error; err != nil {
		return fmt.Errorf("failed to create boat: %w", err)
	}
	return nil
}

// Update overwrites the record with the accumulated draft. The slug is
// regenerated when the name changed.
func (s *BoatService) Update(id uint, draft *models.Boat) (*models.Boat, error) {
	if err := s.validate(draft); err != nil {
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
		return nil, fmt.Errorf("failed to update boat %d: %w", id, err)
	}
	return draft, nil
}

func (s *BoatService) Delete(id uint) error {
	res := s.DB.Delete(&models.Boat{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete boat %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBoatNotFound
	}
	return nil
}

func (s *BoatService) validate(boat *models.Boat) error {
	if strings.TrimSpace(boat.Name) == "" {
		return ErrBoatNameRequired
	}
	if boat.Type != "" && !models.ValidBoatType(boat.Type) {
		return ErrInvalidBoatType
	}
	if (boat.PriceFullDay != nil && *boat.PriceFullDay < 0) ||
		(boat.PriceHalfDay != nil && *boat.PriceHalfDay < 0) {
		return ErrNegativePrice
	}
	for key := range boat.Features {
		if !models.KnownFeatureKey(key) {
			return fmt.Errorf("%w: %s", ErrUnknownFeature, key)
		}
	}
	for _, extra := range boat.ExtraServices {
		if !models.ValidExtraUnit(extra.Unit) {
			return fmt.Errorf("%w: %s", ErrInvalidExtraUnit, extra.Unit)
		}
		if extra.Price < 0 {
			return ErrNegativePrice
		}
	}
	return nil
}

// uniqueSlug derives a slug from name, skipping rows other than excludeID.
func (s *BoatService) uniqueSlug(name string, excludeID uint) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		return "", ErrBoatNameRequired
	}
	return nextAvailableSlug(base, func(slug string) (bool, error) {
		var count int64
		q := s.DB.Model(&models.Boat{}).Where("slug = ?", slug)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to check slug %q: %w", slug, err)
		}
		return count > 0, nil
	})
}
