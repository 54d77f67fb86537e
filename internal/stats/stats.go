// Package stats merges activity into user statistics, derives levels and renders reports.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/aetheris/internal/model"
)

const sparkChars = " .:-=+*#%@"

const (
	barWidth         = 20
	minBarWidth      = 5
	maxBarWidth      = 60
	weeklyLabelWidth = 16
)

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// WeeklyValues extracts slot values in display order.
func WeeklyValues(weekly []model.ActivityPoint) []float64 {
	normalized := NormalizeWeekly(weekly)
	out := make([]float64, len(normalized))
	for i, p := range normalized {
		out[i] = p.Value
	}
	return out
}

// Bar renders value as a horizontal bar relative to maxVal.
func Bar(value, maxVal float64, width int) string {
	if width <= 0 || maxVal <= 0 || value <= 0 {
		return ""
	}
	n := int(math.Round(value / maxVal * float64(width)))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat("#", n)
}

// RenderSummary prints the level and counters of a stats record.
func RenderSummary(w io.Writer, user model.UserProfile, s model.UserStats) error {
	report := BuildReport(s)
	name := user.Name
	if name == "" {
		name = "Explorer"
	}
	if user.IsGuest {
		name += " (guest)"
	}
	if _, err := fmt.Fprintf(w, "Summary for %s\n", name); err != nil {
		return err
	}
	busiest := report.BusiestDay
	if busiest == "" {
		busiest = "-"
	}
	tbl := newTable(column{header: "Metric"}, column{header: "Value", align: alignRight})
	tbl.addRow("Level", fmt.Sprintf("%d", report.Stats.Level))
	tbl.addRow("Title", report.Stats.Title)
	tbl.addRow("Score", fmt.Sprintf("%.1f", report.Score))
	tbl.addRow("Next level", fmt.Sprintf("%.1f / %.0f", report.Progress, report.LevelSpan))
	tbl.addRow("Next level at", fmt.Sprintf("%.0f", report.NextLevelAt))
	tbl.addRow("Sessions", fmt.Sprintf("%d", report.Stats.SessionsCompleted))
	tbl.addRow("Nodes explored", fmt.Sprintf("%d", report.Stats.NodesExplored))
	tbl.addRow("Minutes debated", fmt.Sprintf("%d", report.Stats.MinutesDebated))
	tbl.addRow("Quiz score", fmt.Sprintf("%d", report.Stats.QuizScore))
	tbl.addRow("This week", fmt.Sprintf("%.1f", report.WeekTotal))
	tbl.addRow("Busiest day", busiest)
	if err := tbl.write(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderWeekly prints the weekly activity sequence with bars, marking today.
func RenderWeekly(w io.Writer, weekly []model.ActivityPoint, today string) error {
	return renderWeekly(w, weekly, today, barWidth)
}

// RenderWeeklyWidth is RenderWeekly with bars sized to fit totalWidth columns.
func RenderWeeklyWidth(w io.Writer, weekly []model.ActivityPoint, today string, totalWidth int) error {
	bars := totalWidth - weeklyLabelWidth
	if bars < minBarWidth {
		bars = minBarWidth
	}
	if bars > maxBarWidth {
		bars = maxBarWidth
	}
	return renderWeekly(w, weekly, today, bars)
}

func renderWeekly(w io.Writer, weekly []model.ActivityPoint, today string, bars int) error {
	normalized := NormalizeWeekly(weekly)
	maxVal := 0.0
	for _, p := range normalized {
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}
	if _, err := fmt.Fprintf(w, "Weekly Activity  %s\n", Sparkline(WeeklyValues(normalized))); err != nil {
		return err
	}
	tbl := newTable(column{header: "Day"}, column{header: "Value", align: alignRight}, column{align: alignBar})
	for _, p := range normalized {
		tbl.addDayRow(p.Day, today, fmt.Sprintf("%.1f", p.Value), Bar(p.Value, maxVal, bars))
	}
	if err := tbl.write(w); err != nil {
		return err
	}
	total, busiest := weekSummary(normalized)
	if busiest != "" {
		if _, err := fmt.Fprintf(w, "Total %.1f, busiest %s\n", total, busiest); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}
