package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/aetheris/internal/i18n"
)

func newLanguageTable() table.Model {
	langs := i18n.Languages()
	rows := make([]table.Row, 0, len(langs))
	for _, l := range langs {
		rows = append(rows, table.Row{l.Flag, l.Name, strings.ToUpper(string(l.Code))})
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "", Width: 3},
			{Title: "Language", Width: 14},
			{Title: "Code", Width: 5},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(languageTableStyles())
	return t
}

func languageTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		PaddingLeft(0)
	styles.Cell = styles.Cell.PaddingLeft(0)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#C89A3A")).
		Bold(true)
	return styles
}

func (m *Model) syncLanguageCursor() {
	current := m.app.Language()
	for i, l := range i18n.Languages() {
		if l.Code == current {
			m.langList.SetCursor(i)
			return
		}
	}
}

func (m *Model) updateLanguage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "L":
		m.mode = modeShell
		return m, nil
	case "enter":
		langs := i18n.Languages()
		if idx := m.langList.Cursor(); idx >= 0 && idx < len(langs) {
			m.app.SetLanguage(langs[idx].Code)
			m.logger.Debug("language changed")
		}
		m.mode = modeShell
		m.refreshContent()
		return m, nil
	}
	var cmd tea.Cmd
	m.langList, cmd = m.langList.Update(msg)
	return m, cmd
}

func (m *Model) renderLanguageModal() string {
	title := cardValueStyle.Render(i18n.T(m.app.Language(), i18n.KeySelectRegion))
	body := strings.Join([]string{
		title,
		"",
		m.langList.View(),
		"",
		mutedStyle.Render("enter: select  esc: cancel"),
	}, "\n")
	box := modalStyle.Width(modalWidth(m.width)).Render(body)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
