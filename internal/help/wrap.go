package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Indentation scheme for help bodies.
const (
	sectionIndent    = "       "
	detailIndent     = "           "
	listInitial      = "           •   "
	listSubsequent   = "               "
	flagSeparatorPad = 4 // width of ", " plus the continuation comma-space
)

// cleanup normalizes free-form description text: runs of whitespace within
// a paragraph collapse to single spaces, blank lines separate paragraphs.
func cleanup(text string) string {
	var paragraphs []string

	for _, para := range strings.Split(text, "\n\n") {
		fields := strings.Fields(para)
		if len(fields) == 0 {
			continue
		}

		paragraphs = append(paragraphs, strings.Join(fields, " "))
	}

	return strings.Join(paragraphs, "\n\n")
}

// fill cleans, wraps, and indents text to the given total width. The first
// output line gets the initial indent, every following line the subsequent
// indent.
func fill(text string, width int, initial, subsequent string) string {
	body := width - len(subsequent)
	if body < 1 {
		body = 1
	}

	wrapped := wordwrap.String(cleanup(text), body)

	var b strings.Builder

	for i, line := range strings.Split(wrapped, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}

		if line == "" {
			continue
		}

		if i == 0 {
			b.WriteString(initial)
		} else {
			b.WriteString(subsequent)
		}

		b.WriteString(line)
	}

	return b.String()
}

// flagLines assembles the comma-separated flag usage lines for one spec,
// starting a fresh indented line whenever the next usage would overflow the
// column budget.
func flagLines(usages []string, columns int) []string {
	var lines []string

	current := ""

	for i, usage := range usages {
		switch {
		case i == 0:
			current = sectionIndent + usage
		case lipgloss.Width(current)+lipgloss.Width(usage)+flagSeparatorPad > columns:
			lines = append(lines, current+", ")
			current = sectionIndent + usage
		default:
			current += ", " + usage
		}
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}
