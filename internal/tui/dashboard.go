package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/aetheris/internal/i18n"
	"github.com/verte-zerg/aetheris/internal/stats"
	"github.com/verte-zerg/aetheris/internal/view"
)

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

// renderDashboard puts metric cards and the weekly chart under the module body.
func (m *Model) renderDashboard(ctx view.Context, body string) string {
	r := stats.BuildReport(ctx.Stats)
	lang := ctx.Language
	cards := []string{
		metricCard(i18n.T(lang, i18n.KeyLevel), fmt.Sprintf("%d %s", r.Stats.Level, r.Stats.Title)),
		metricCard(i18n.T(lang, i18n.KeyQuizScore), fmt.Sprintf("%d", r.Stats.QuizScore)),
		metricCard(i18n.T(lang, i18n.KeyNodes), fmt.Sprintf("%d", r.Stats.NodesExplored)),
		metricCard(i18n.T(lang, i18n.KeyMinutes), fmt.Sprintf("%d", r.Stats.MinutesDebated)),
	}
	var row string
	if m.contentWidth() < 72 {
		row = lipgloss.JoinVertical(lipgloss.Left, cards...)
	} else {
		row = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	var buf bytes.Buffer
	if err := stats.RenderWeekly(&buf, r.Stats.WeeklyActivity, m.app.Today()); err != nil {
		m.logger.Debug("weekly render failed")
	}
	return strings.Join([]string{body, row, strings.TrimRight(buf.String(), "\n")}, "\n")
}
