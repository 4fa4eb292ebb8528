package models

import "strings"

// Supported locales. Italian is the default and the fallback language.
const (
	LangIT = "it"
	LangEN = "en"
)

// NormalizeLang maps an arbitrary locale string to a supported one.
// Unrecognized values fall back to Italian.
func NormalizeLang(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case LangEN, "en-us", "en-gb":
		return LangEN
	default:
		return LangIT
	}
}

// PickLocalized selects the English value for the English locale, falling
// back to the Italian value when the English one is blank.
func PickLocalized(it, en, lang string) string {
	if NormalizeLang(lang) == LangEN && strings.TrimSpace(en) != "" {
		return en
	}
	return it
}
