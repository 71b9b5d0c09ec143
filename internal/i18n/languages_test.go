package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
}

func TestDetectLanguagePersistedChoiceWins(t *testing.T) {
	clearLocale(t)
	t.Setenv("LANG", "fr_FR.UTF-8")

	assert.Equal(t, "ta", DetectLanguage("ta"))
}

func TestDetectLanguageFromLocale(t *testing.T) {
	clearLocale(t)
	t.Setenv("LANG", "hi_IN.UTF-8")

	assert.Equal(t, "hi", DetectLanguage(""))
}

func TestDetectLanguageUnknownLocaleFallsBackToEnglish(t *testing.T) {
	clearLocale(t)
	t.Setenv("LANG", "de_DE.UTF-8")

	assert.Equal(t, "en", DetectLanguage(""))
}

func TestDetectLanguageNoSignalFallsBackToEnglish(t *testing.T) {
	clearLocale(t)

	assert.Equal(t, "en", DetectLanguage(""))
}

func TestDetectLanguageLocaleOutsideDetectableSet(t *testing.T) {
	// Tamil is in the picker catalog but not in the detection set
	clearLocale(t)
	t.Setenv("LANG", "ta_IN.UTF-8")

	assert.Equal(t, "en", DetectLanguage(""))
}

func TestSupportedLanguagesCatalog(t *testing.T) {
	languages := SupportedLanguages()

	assert.Len(t, languages, 7)
	assert.Equal(t, "en", languages[0].Code)

	assert.True(t, IsSupported("pa"))
	assert.False(t, IsSupported("de"))
}
