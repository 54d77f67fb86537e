// Package i18n holds the shell's UI strings for each supported language.
package i18n

import (
	"strings"

	"github.com/verte-zerg/aetheris/internal/model"
)

// Language describes a selectable UI locale.
type Language struct {
	Code model.LanguageCode
	Name string
	Flag string
}

var languages = []Language{
	{Code: model.LangEnglish, Name: "English", Flag: "🇺🇸"},
	{Code: model.LangBengali, Name: "বাংলা", Flag: "🇧🇩"},
	{Code: model.LangSpanish, Name: "Español", Flag: "🇪🇸"},
	{Code: model.LangFrench, Name: "Français", Flag: "🇫🇷"},
	{Code: model.LangHindi, Name: "हिन्दी", Flag: "🇮🇳"},
}

// Languages returns the supported locales in menu order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Parse resolves a language code, case-insensitively.
func Parse(code string) (model.LanguageCode, bool) {
	c := model.LanguageCode(strings.ToLower(strings.TrimSpace(code)))
	for _, l := range languages {
		if l.Code == c {
			return c, true
		}
	}
	return model.LangEnglish, false
}

// Lookup returns the Language for code, or English.
func Lookup(code model.LanguageCode) Language {
	for _, l := range languages {
		if l.Code == code {
			return l
		}
	}
	return languages[0]
}

// T returns the string for key in lang. Missing translations fall back to
// English, then to the key itself.
func T(lang model.LanguageCode, key string) string {
	if s, ok := catalog[lang][key]; ok {
		return s
	}
	if s, ok := catalog[model.LangEnglish][key]; ok {
		return s
	}
	return key
}

// Keys returns every key with an English string.
func Keys() []string {
	out := make([]string, 0, len(catalog[model.LangEnglish]))
	for k := range catalog[model.LangEnglish] {
		out = append(out, k)
	}
	return out
}
