package models

import (
	"time"

	"gorm.io/gorm"
)

// ServiceIcons is the fixed icon set an offering may reference.
var ServiceIcons = []string{
	"anchor", "captain", "cocktail", "party", "map", "sun", "waves", "star",
}

// Service is a fixed-catalog offering (skipper, aperitivo, events, tours)
// distinct from bookable boats. IsActive=false hides it without deleting.
type Service struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Slug          string `gorm:"uniqueIndex;size:160" json:"slug"`
	Name          string `gorm:"size:255" json:"name"`
	NameEn        string `gorm:"size:255" json:"name_en,omitempty"`
	Description   string `gorm:"type:text" json:"description"`
	DescriptionEn string `gorm:"type:text" json:"description_en,omitempty"`
	Features      string `gorm:"type:text" json:"features,omitempty"`
	FeaturesEn    string `gorm:"type:text" json:"features_en,omitempty"`
	PriceText     string `gorm:"size:255" json:"price_text,omitempty"`
	PriceTextEn   string `gorm:"size:255" json:"price_text_en,omitempty"`

	Icon         string `gorm:"size:50" json:"icon,omitempty"`
	ImageURL     string `gorm:"size:500" json:"image_url,omitempty"`
	DisplayOrder int    `gorm:"column:display_order;default:0;index" json:"display_order"`
	IsActive     bool   `gorm:"column:is_active;default:true;index" json:"is_active"`
}

// ValidServiceIcon reports whether icon belongs to the fixed icon set.
func ValidServiceIcon(icon string) bool {
	for _, i := range ServiceIcons {
		if i == icon {
			return true
		}
	}
	return false
}

// Localized returns a copy with bilingual fields resolved for lang.
func (s Service) Localized(lang string) Service {
	s.Name = PickLocalized(s.Name, s.NameEn, lang)
	s.Description = PickLocalized(s.Description, s.DescriptionEn, lang)
	s.Features = PickLocalized(s.Features, s.FeaturesEn, lang)
	s.PriceText = PickLocalized(s.PriceText, s.PriceTextEn, lang)
	s.NameEn = ""
	s.DescriptionEn = ""
	s.FeaturesEn = ""
	s.PriceTextEn = ""
	return s
}
