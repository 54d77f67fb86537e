package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verte-zerg/aetheris/internal/model"
)

func TestParse(t *testing.T) {
	code, ok := Parse(" FR ")
	assert.True(t, ok)
	assert.Equal(t, model.LangFrench, code)

	code, ok = Parse("de")
	assert.False(t, ok)
	assert.Equal(t, model.LangEnglish, code)
}

func TestLanguagesCoverCatalog(t *testing.T) {
	langs := Languages()
	assert.Len(t, langs, 5)
	for _, l := range langs {
		_, ok := catalog[l.Code]
		assert.True(t, ok, "no catalog for %s", l.Code)
		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.Flag)
	}
	langs[0].Name = "mutated"
	assert.Equal(t, "English", Lookup(model.LangEnglish).Name)
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, "Tableau de bord", T(model.LangFrench, KeyDashboard))
	// Hindi has no confirm prompt; English is used.
	assert.Equal(t, T(model.LangEnglish, KeyConfirmLogout), T(model.LangHindi, KeyConfirmLogout))
	assert.Equal(t, "no-such-key", T(model.LangSpanish, "no-such-key"))
	assert.Equal(t, "Dashboard", T(model.LanguageCode("xx"), KeyDashboard))
}

func TestEveryLocaleOnlyUsesKnownKeys(t *testing.T) {
	english := catalog[model.LangEnglish]
	for code, entries := range catalog {
		for k := range entries {
			_, ok := english[k]
			assert.True(t, ok, "%s defines unknown key %q", code, k)
		}
	}
}
