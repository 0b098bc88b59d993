package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if lang := l.GetCurrentLanguage(); lang != "en" {
		t.Errorf("Expected default language en, got %s", lang)
	}
	if title := l.GetText(KeyAppTitle); title != "Workout Viewer" {
		t.Errorf("Unexpected title %q", title)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if lang := l.GetCurrentLanguage(); lang != "ru" {
		t.Fatalf("Expected ru, got %s", lang)
	}
	if text := l.GetText(KeyStartOverlay); text == NewLocalization().GetText(KeyStartOverlay) {
		t.Errorf("Expected a Russian translation, got %q", text)
	}

	// Unknown languages are ignored
	l.SetLanguage("de")
	if lang := l.GetCurrentLanguage(); lang != "ru" {
		t.Errorf("Expected language to stay ru, got %s", lang)
	}

	// System maps to English
	l.SetLanguage("system")
	if lang := l.GetCurrentLanguage(); lang != "en" {
		t.Errorf("Expected system to select en, got %s", lang)
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")
	delete(l.texts["ru"], KeyReset)

	if text := l.GetText(KeyReset); text != l.texts["en"][KeyReset] {
		t.Errorf("Expected English fallback, got %q", text)
	}
	if text := l.GetText("missing_key"); text != "missing_key" {
		t.Errorf("Expected key fallback, got %q", text)
	}
}

func TestLocalization_TranslationsComplete(t *testing.T) {
	l := NewLocalization()

	for key := range l.texts["en"] {
		if _, ok := l.texts["ru"][key]; !ok {
			t.Errorf("Missing Russian translation for %q", key)
		}
	}
	for _, order := range []string{KeySortDefault, KeySortNameAsc, KeySortNameDesc, KeySortDurationAsc, KeySortDurationDesc} {
		if _, ok := l.texts["en"][order]; !ok {
			t.Errorf("Missing English text for %q", order)
		}
	}
}

func TestLocalization_LanguageCodes(t *testing.T) {
	l := NewLocalization()

	if diff := cmp.Diff([]string{"en", "ru"}, l.languageCodes()); diff != "" {
		t.Errorf("languageCodes() mismatch (-want +got):\n%s", diff)
	}
}
