package i18n

import (
	"os"
	"strings"
)

const DefaultLanguage = "en"

// Language is one entry of the picker catalog.
type Language struct {
	Code string
	Name string
	Flag string
}

// detectable is the set DetectLanguage recognizes from the environment
// locale. It is narrower than the picker catalog on purpose: detection only
// trusts locales the backend has first-class prompts for.
var detectable = map[string]bool{
	"en": true,
	"hi": true,
	"fr": true,
	"es": true,
}

// catalog is the ordered picker catalog. Broader than the detectable set.
var catalog = []Language{
	{Code: "en", Name: "English", Flag: "🇬🇧"},
	{Code: "hi", Name: "हिन्दी", Flag: "🇮🇳"},
	{Code: "ta", Name: "தமிழ்", Flag: "🇮🇳"},
	{Code: "te", Name: "తెలుగు", Flag: "🇮🇳"},
	{Code: "pa", Name: "ਪੰਜਾਬੀ", Flag: "🇮🇳"},
	{Code: "fr", Name: "Français", Flag: "🇫🇷"},
	{Code: "es", Name: "Español", Flag: "🇪🇸"},
}

// SupportedLanguages returns the ordered picker catalog.
func SupportedLanguages() []Language {
	result := make([]Language, len(catalog))
	copy(result, catalog)
	return result
}

// IsSupported reports whether code appears in the picker catalog.
func IsSupported(code string) bool {
	for _, lang := range catalog {
		if lang.Code == code {
			return true
		}
	}
	return false
}

// DetectLanguage resolves the startup language: the persisted choice wins,
// then the environment locale prefix when it is in the detectable set,
// then English. Pure and synchronous, no failure mode.
func DetectLanguage(persisted string) string {
	if persisted != "" {
		return persisted
	}

	if prefix := localePrefix(); detectable[prefix] {
		return prefix
	}

	return DefaultLanguage
}

// localePrefix returns the two-letter language prefix of the environment
// locale, e.g. "hi" from "hi_IN.UTF-8".
func localePrefix() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		locale := os.Getenv(name)
		if locale == "" {
			continue
		}
		locale = strings.ToLower(locale)
		if idx := strings.IndexAny(locale, "_.-"); idx > 0 {
			locale = locale[:idx]
		}
		if len(locale) == 2 {
			return locale
		}
	}
	return ""
}
