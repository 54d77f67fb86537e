package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// wrapText word-wraps text to width display cells. Lines that already fit are
// kept verbatim, so aligned tables and styled cards survive; longer lines are
// re-flowed and words wider than a line are split.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	paragraphs := strings.Split(s, "\n")
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		out = append(out, wrapParagraph(p, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapParagraph(p string, width int) []string {
	if lipgloss.Width(p) <= width {
		return []string{p}
	}
	words := strings.Fields(p)
	if len(words) == 0 {
		return []string{""}
	}
	indent := leadingSpaces(p)
	var lines []string
	var line strings.Builder
	line.WriteString(indent)
	lineWidth := runewidth.StringWidth(indent)
	empty := true

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
		empty = true
	}

	for _, word := range words {
		w := runewidth.StringWidth(word)
		sep := 0
		if !empty {
			sep = 1
		}
		if lineWidth+sep+w > width && !empty {
			flush()
			sep = 0
		}
		for w > width {
			head := runewidth.Truncate(word, width-lineWidth, "")
			if head == "" {
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			line.WriteString(head)
			flush()
			word = word[len(head):]
			w = runewidth.StringWidth(word)
		}
		if word == "" {
			continue
		}
		if sep == 1 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
		lineWidth += sep + w
		empty = false
	}
	if !empty {
		lines = append(lines, line.String())
	}
	return lines
}

func leadingSpaces(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " "))]
}
