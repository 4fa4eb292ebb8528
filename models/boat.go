package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Boat types available for charter.
const (
	BoatTypeMotorYacht = "motor_yacht_20m"
	BoatTypeSailboat   = "sailboat_14m"
	BoatTypeDinghy     = "dinghy"
	BoatTypeJetski     = "jetski"
)

// Units accepted for a priced extra service.
const (
	ExtraUnitDay    = "day"
	ExtraUnitTrip   = "trip"
	ExtraUnitPerson = "person"
)

// BoatFeatureKeys is the closed set of keys allowed in Boat.Features.
// Values are bool for flags and numbers for counts.
var BoatFeatureKeys = []string{
	"gps", "autopilot", "depth_sounder", "vhf_radio",
	"sundeck", "shower", "fridge", "bimini", "teak_deck", "air_conditioning",
	"stereo_bluetooth", "tv", "snorkeling_gear", "paddleboard",
	"cabins", "bathrooms",
	"crew_included", "license_required",
}

// ExtraService is a priced optional add-on attached to a boat.
type ExtraService struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Unit  string  `json:"unit"`
}

type Boat struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Slug string `gorm:"uniqueIndex;size:160" json:"slug"`
	Name string `gorm:"size:255" json:"name"`
	// English counterparts fall back to the Italian field when blank.
	NameEn        string `gorm:"size:255" json:"name_en,omitempty"`
	Description   string `gorm:"type:text" json:"description"`
	DescriptionEn string `gorm:"type:text" json:"description_en,omitempty"`

	Type string `gorm:"size:50;index" json:"type"`

	// nil price means "on request".
	PriceFullDay *float64 `gorm:"column:price_full_day" json:"price_full_day,omitempty"`
	PriceHalfDay *float64 `gorm:"column:price_half_day" json:"price_half_day,omitempty"`

	Capacity int    `json:"capacity"`
	Length   string `gorm:"size:50" json:"length"`

	ImageURL    string                      `gorm:"size:500" json:"image_url"`
	GalleryURLs datatypes.JSONSlice[string] `gorm:"column:gallery_urls" json:"gallery_urls"`

	Features   datatypes.JSONMap `json:"features"`
	IsFeatured bool              `gorm:"default:false;index" json:"is_featured"`

	Highlights       datatypes.JSONSlice[string]       `json:"highlights"`
	IncludedServices datatypes.JSONSlice[string]       `json:"included_services"`
	ExcludedServices datatypes.JSONSlice[string]       `json:"excluded_services"`
	ExtraServices    datatypes.JSONSlice[ExtraService] `json:"extra_services"`

	CancellationPolicy string `gorm:"type:text" json:"cancellation_policy"`

	Year            int    `json:"year,omitempty"`
	RefurbishedYear int    `json:"refurbished_year,omitempty"`
	Location        string `gorm:"size:255" json:"location,omitempty"`
	EnginePower     string `gorm:"size:100" json:"engine_power,omitempty"`
	FuelConsumption string `gorm:"size:100" json:"fuel_consumption,omitempty"`
}

// ValidBoatType reports whether t is one of the charter fleet types.
func ValidBoatType(t string) bool {
	switch t {
	case BoatTypeMotorYacht, BoatTypeSailboat, BoatTypeDinghy, BoatTypeJetski:
		return true
	}
	return false
}

// ValidExtraUnit reports whether u is an accepted pricing unit.
func ValidExtraUnit(u string) bool {
	return u == ExtraUnitDay || u == ExtraUnitTrip || u == ExtraUnitPerson
}

// KnownFeatureKey reports whether key belongs to the allowed feature set.
func KnownFeatureKey(key string) bool {
	for _, k := range BoatFeatureKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Localized returns a copy of the boat with bilingual fields resolved for lang.
func (b Boat) Localized(lang string) Boat {
	b.Name = PickLocalized(b.Name, b.NameEn, lang)
	b.Description = PickLocalized(b.Description, b.DescriptionEn, lang)
	b.NameEn = ""
	b.DescriptionEn = ""
	return b
}
