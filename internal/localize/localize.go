// Package localize maps (key, language) pairs to display strings with
// fallback to English.
package localize

import "strings"

// DefaultLanguage is the fallback language for missing translations.
const DefaultLanguage = "en"

// Supported reports whether lang has a string table.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Normalize reduces a language tag ("si-LK", "EN") to a supported
// language code, falling back to English.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.IndexAny(lang, "-_"); idx > 0 {
		lang = lang[:idx]
	}
	if Supported(lang) {
		return lang
	}
	return DefaultLanguage
}

// T returns the display string for key in lang. Missing entries fall
// back to English; an unknown key is returned as-is.
func T(lang, key string) string {
	if table, ok := tables[Normalize(lang)]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// Table returns the full string table for lang, merged over the English
// fallback so every known key is present.
func Table(lang string) map[string]string {
	merged := make(map[string]string, len(tables[DefaultLanguage]))
	for k, v := range tables[DefaultLanguage] {
		merged[k] = v
	}
	if lang = Normalize(lang); lang != DefaultLanguage {
		for k, v := range tables[lang] {
			merged[k] = v
		}
	}
	return merged
}
