package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Caicco Blu 20m", "caicco-blu-20m"},
		{"  Gommone  Veloce  ", "gommone-veloce"},
		{"Perla del Tirreno", "perla-del-tirreno"},
		{"Città di Napoli", "citta-di-napoli"},
		{"Yacht — Deluxe!", "yacht-deluxe"},
		{"SOLE&MARE", "sole-mare"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		got := Slugify(tt.name)
		if got != tt.want {
			t.Errorf("Slugify(%q) = %q; want %q", tt.name, got, tt.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	names := []string{"Caicco Blu 20m", "Perla del Tirreno", "già-slug"}
	for _, name := range names {
		once := Slugify(name)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", name, once, twice)
		}
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	if Slugify("Caicco Blu 20m") != Slugify("Caicco Blu 20m") {
		t.Error("Slugify is not deterministic for identical input")
	}
}
