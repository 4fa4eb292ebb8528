package services

import (
	"errors"
	"testing"
)

func takenSet(slugs ...string) func(string) (bool, error) {
	set := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		set[s] = true
	}
	return func(slug string) (bool, error) {
		return set[slug], nil
	}
}

func TestNextAvailableSlug(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		taken func(string) (bool, error)
		want  string
	}{
		{
			name:  "base free",
			base:  "caicco-blu-20m",
			taken: takenSet(),
			want:  "caicco-blu-20m",
		},
		{
			name:  "base taken",
			base:  "caicco-blu-20m",
			taken: takenSet("caicco-blu-20m"),
			want:  "caicco-blu-20m-2",
		},
		{
			name:  "base and first suffix taken",
			base:  "caicco-blu-20m",
			taken: takenSet("caicco-blu-20m", "caicco-blu-20m-2"),
			want:  "caicco-blu-20m-3",
		},
		{
			name:  "gap in suffixes is reused",
			base:  "gozzo",
			taken: takenSet("gozzo", "gozzo-3"),
			want:  "gozzo-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextAvailableSlug(tt.base, tt.taken)
			if err != nil {
				t.Fatalf("nextAvailableSlug(%q) error: %v", tt.base, err)
			}
			if got != tt.want {
				t.Errorf("nextAvailableSlug(%q) = %q; want %q", tt.base, got, tt.want)
			}
		})
	}
}

func TestNextAvailableSlugPropagatesLookupError(t *testing.T) {
	boom := errors.New("lookup failed")
	_, err := nextAvailableSlug("caicco", func(string) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v; want %v", err, boom)
	}
}
