package services

import (
	"errors"
	"testing"

	"charter-backend/models"

	"gorm.io/datatypes"
)

func priceOf(v float64) *float64 { return &v }

func TestBoatValidateRequiresName(t *testing.T) {
	s := &BoatService{}
	err := s.validate(&models.Boat{Name: "   "})
	if !errors.Is(err, ErrBoatNameRequired) {
		t.Errorf("got %v; want ErrBoatNameRequired", err)
	}
}

func TestBoatValidateType(t *testing.T) {
	s := &BoatService{}

	ok := &models.Boat{Name: "Caicco", Type: models.BoatTypeMotorYacht}
	if err := s.validate(ok); err != nil {
		t.Errorf("valid type rejected: %v", err)
	}

	bad := &models.Boat{Name: "Caicco", Type: "submarine"}
	if err := s.validate(bad); !errors.Is(err, ErrInvalidBoatType) {
		t.Errorf("got %v; want ErrInvalidBoatType", err)
	}

	// empty type is allowed on a draft
	if err := s.validate(&models.Boat{Name: "Caicco"}); err != nil {
		t.Errorf("empty type rejected: %v", err)
	}
}

func TestBoatValidateRejectsNegativePrices(t *testing.T) {
	s := &BoatService{}

	tests := []models.Boat{
		{Name: "Caicco", PriceFullDay: priceOf(-1)},
		{Name: "Caicco", PriceHalfDay: priceOf(-0.5)},
	}
	for i := range tests {
		if err := s.validate(&tests[i]); !errors.Is(err, ErrNegativePrice) {
			t.Errorf("case %d: got %v; want ErrNegativePrice", i, err)
		}
	}

	// nil prices mean "on request" and are fine
	if err := s.validate(&models.Boat{Name: "Caicco"}); err != nil {
		t.Errorf("nil prices rejected: %v", err)
	}
}

func TestBoatValidateFeatureKeys(t *testing.T) {
	s := &BoatService{}

	ok := &models.Boat{
		Name:     "Caicco",
		Features: datatypes.JSONMap{"gps": true, "cabins": 3},
	}
	if err := s.validate(ok); err != nil {
		t.Errorf("known feature keys rejected: %v", err)
	}

	bad := &models.Boat{
		Name:     "Caicco",
		Features: datatypes.JSONMap{"warp_drive": true},
	}
	if err := s.validate(bad); !errors.Is(err, ErrUnknownFeature) {
		t.Errorf("got %v; want ErrUnknownFeature", err)
	}
}

func TestBoatValidateExtraServices(t *testing.T) {
	s := &BoatService{}

	ok := &models.Boat{
		Name: "Caicco",
		ExtraServices: datatypes.JSONSlice[models.ExtraService]{
			{Name: "Skipper", Price: 150, Unit: models.ExtraUnitDay},
			{Name: "Aperitivo", Price: 20, Unit: models.ExtraUnitPerson},
		},
	}
	if err := s.validate(ok); err != nil {
		t.Errorf("valid extras rejected: %v", err)
	}

	badUnit := &models.Boat{
		Name: "Caicco",
		ExtraServices: datatypes.JSONSlice[models.ExtraService]{
			{Name: "Skipper", Price: 150, Unit: "week"},
		},
	}
	if err := s.validate(badUnit); !errors.Is(err, ErrInvalidExtraUnit) {
		t.Errorf("got %v; want ErrInvalidExtraUnit", err)
	}

	badPrice := &models.Boat{
		Name: "Caicco",
		ExtraServices: datatypes.JSONSlice[models.ExtraService]{
			{Name: "Skipper", Price: -5, Unit: models.ExtraUnitTrip},
		},
	}
	if err := s.validate(badPrice); !errors.Is(err, ErrNegativePrice) {
		t.Errorf("got %v; want ErrNegativePrice", err)
	}
}
