package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/aetheris/internal/i18n"
	"github.com/verte-zerg/aetheris/internal/view"
)

// renderSidebar lists the views by section, then the timer, language and
// account controls. height 0 renders without bottom alignment.
func (m *Model) renderSidebar(height int) string {
	lang := m.app.Language()
	inner := sidebarWidth - 2
	top := []string{
		titleStyle.Render("Aetheris"),
		mutedStyle.Render("FLOW STATE OS"),
		"",
	}
	for _, section := range view.Sections {
		top = append(top, sectionStyle.Render(strings.ToUpper(i18n.T(lang, section.LabelKey))))
		for _, v := range section.Views {
			label := runewidth.Truncate(v.Label(lang), inner-2, "…")
			if v == m.current {
				top = append(top, activeStyle.Render("> "+label))
			} else {
				top = append(top, "  "+label)
			}
		}
		top = append(top, "")
	}

	timerLabel := i18n.T(lang, i18n.KeyFocus)
	timerStyle := mutedStyle
	if m.timer.Running() {
		timerLabel = i18n.T(lang, i18n.KeyPause)
		timerStyle = runningStyle
	}
	bottom := []string{
		timerStyle.Render(runewidth.FillRight(m.timer.Format(), 8) + "[" + timerLabel + "]"),
		fmt.Sprintf("%s: %s", i18n.T(lang, i18n.KeyLanguage), strings.ToUpper(string(lang))),
	}
	if u, ok := m.app.User(); ok && u.IsGuest {
		bottom = append(bottom, activeStyle.Render(i18n.T(lang, i18n.KeySignUpToSave)))
	} else {
		bottom = append(bottom, i18n.T(lang, i18n.KeyLogOut))
	}

	gap := 0
	if height > 0 {
		gap = height - len(top) - len(bottom)
	}
	lines := append([]string{}, top...)
	for i := 0; i < gap; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, bottom...)
	return strings.Join(lines, "\n")
}
