package models

import "testing"

func TestPickLocalized(t *testing.T) {
	tests := []struct {
		it, en, lang string
		want         string
	}{
		{"Tour", "", "en", "Tour"},
		{"Tour", "Tour (EN)", "en", "Tour (EN)"},
		{"Tour", "Tour (EN)", "it", "Tour"},
		{"Tour", "   ", "en", "Tour"},
		{"Tour", "Tour (EN)", "fr", "Tour"},
		{"Tour", "Tour (EN)", "", "Tour"},
	}

	for _, tt := range tests {
		got := PickLocalized(tt.it, tt.en, tt.lang)
		if got != tt.want {
			t.Errorf("PickLocalized(%q, %q, %q) = %q; want %q", tt.it, tt.en, tt.lang, got, tt.want)
		}
	}
}

func TestNormalizeLang(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"en", LangEN},
		{"EN", LangEN},
		{"en-US", LangEN},
		{"it", LangIT},
		{"de", LangIT},
		{"", LangIT},
	}
	for _, tt := range tests {
		if got := NormalizeLang(tt.in); got != tt.want {
			t.Errorf("NormalizeLang(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestArticleLocalizedFallback(t *testing.T) {
	article := Article{Title: "Tour", TitleEn: "", Content: "Contenuto", ContentEn: "Content"}

	en := article.Localized("en")
	if en.Title != "Tour" {
		t.Errorf("english view title = %q; want Italian fallback %q", en.Title, "Tour")
	}
	if en.Content != "Content" {
		t.Errorf("english view content = %q; want %q", en.Content, "Content")
	}

	article.TitleEn = "Tour (EN)"
	en = article.Localized("en")
	if en.Title != "Tour (EN)" {
		t.Errorf("english view title = %q; want %q", en.Title, "Tour (EN)")
	}

	it := article.Localized("it")
	if it.Title != "Tour" || it.Content != "Contenuto" {
		t.Errorf("italian view = %q/%q; want originals", it.Title, it.Content)
	}
}

func TestBoatLocalizedStripsEnglishFields(t *testing.T) {
	boat := Boat{Name: "Caicco", NameEn: "Gulet", Description: "desc", DescriptionEn: ""}
	en := boat.Localized("en")
	if en.Name != "Gulet" {
		t.Errorf("localized name = %q; want %q", en.Name, "Gulet")
	}
	if en.Description != "desc" {
		t.Errorf("localized description = %q; want fallback %q", en.Description, "desc")
	}
	if en.NameEn != "" || en.DescriptionEn != "" {
		t.Error("localized copy should not carry the English source fields")
	}
}
