package help

import (
	"fmt"
	"io"
)

// Render writes the help text straight to a terminal with lipgloss styling,
// skipping the pager subshell. Used when the binary is run directly rather
// than through eval.
func Render(w io.Writer, p Program) {
	styles := DefaultStyles()

	section := func(header, body string) {
		fmt.Fprintln(w, styles.Header.Render(header))
		fmt.Fprintln(w, fill(body, p.Columns, sectionIndent, sectionIndent))
		fmt.Fprintln(w)
	}

	switch {
	case p.Name != "" && p.Summary != "":
		section("NAME", p.Name+" - "+p.Summary)
	case p.Name != "":
		section("NAME", p.Name)
	case p.Summary != "":
		section("SUMMARY", p.Summary)
	}

	if p.Description != "" {
		section("DESCRIPTION", p.Description)
	}

	if len(p.Specs) == 0 {
		return
	}

	fmt.Fprintln(w, styles.Header.Render("OPTIONS"))

	for _, spec := range p.Specs {
		if spec.Secret {
			continue
		}

		for _, line := range flagLines(FlagUsages(spec), p.Columns) {
			fmt.Fprintln(w, styles.Flag.Render(line))
		}

		for _, detail := range Details(spec) {
			if detail.ListItem {
				fmt.Fprintf(w, "%s\n\n", fill(detail.Text, p.Columns, listInitial, listSubsequent))
			} else {
				fmt.Fprintf(w, "%s\n\n", fill(detail.Text, p.Columns, detailIndent, detailIndent))
			}
		}

		if sentence := DefaultSentence(spec); sentence != "" {
			fmt.Fprintf(w, "%s\n\n", styles.Muted.Render(fill(sentence, p.Columns, detailIndent, detailIndent)))
		}
	}
}
