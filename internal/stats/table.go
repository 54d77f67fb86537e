package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// todayMarker is appended to the label of the row for the current day.
const todayMarker = "*"

type align int

const (
	alignLeft align = iota
	alignRight
	// alignBar columns hold bars; they are never padded so short bars leave no
	// trailing blanks, and a bar wider than the header does not stretch it.
	alignBar
)

type column struct {
	header string
	align  align
}

// table lays out stats rows in terminal cells.
type table struct {
	columns []column
	rows    [][]string
}

func newTable(columns ...column) *table {
	return &table{columns: columns}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// addDayRow adds a row labelled with day, marking it when it is today.
func (t *table) addDayRow(day, today string, cells ...string) {
	label := day
	if day != "" && day == today {
		label += todayMarker
	}
	t.addRow(append([]string{label}, cells...)...)
}

func (t *table) widths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		if col.align == alignBar {
			continue
		}
		widths[i] = displayWidth(col.header)
		for _, row := range t.rows {
			if w := displayWidth(cellAt(row, i)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// lines renders the header and rows. Trailing blanks are trimmed.
func (t *table) lines() []string {
	if len(t.columns) == 0 {
		return nil
	}
	widths := t.widths()
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.header
	}
	out := make([]string, 0, len(t.rows)+1)
	out = append(out, t.formatRow(headers, widths))
	for _, row := range t.rows {
		out = append(out, t.formatRow(row, widths))
	}
	return out
}

func (t *table) write(w io.Writer) error {
	for _, line := range t.lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (t *table) formatRow(row []string, widths []int) string {
	var b strings.Builder
	for i, col := range t.columns {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cellAt(row, i), widths[i], col.align))
	}
	return strings.TrimRight(b.String(), " ")
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func padCell(value string, width int, a align) string {
	valueWidth := displayWidth(value)
	if a == alignBar || valueWidth >= width {
		return value
	}
	padding := strings.Repeat(" ", width-valueWidth)
	if a == alignRight {
		return padding + value
	}
	return value + padding
}

// Column widths follow terminal cells so Bengali and Devanagari labels line up.
func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
