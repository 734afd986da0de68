package help

import (
	"fmt"
	"io"
	"strings"
)

// WriteScript writes the help text as a shell subshell. The script detects
// whether its own stdout is a terminal, resolves bold codes with tput, and
// pipes the assembled text through ${PAGER:-less -R}.
func WriteScript(w io.Writer, p Program) {
	fmt.Fprintln(w, "(")

	fmt.Fprintln(w, "if [ -t 1 ]; then")
	fmt.Fprintln(w, "  bold=\"$(tput bold)\"")
	fmt.Fprintln(w, "  unbold=\"$(tput sgr0)\"")
	fmt.Fprintln(w, "else")
	fmt.Fprintln(w, "  bold=\"\"")
	fmt.Fprintln(w, "  unbold=\"\"")
	fmt.Fprintln(w, "fi")

	fmt.Fprintln(w, "HELP_PAGER=\"${PAGER:-\"less -R\"}\"")
	fmt.Fprintln(w, "HELP_TEXT=\"")

	writeSections(w, p, "${bold}", "${unbold}")

	fmt.Fprintln(w, "\"")
	fmt.Fprintln(w, "echo \"$HELP_TEXT\" | $HELP_PAGER")
	fmt.Fprintln(w, ")")
}

// WriteFunction wraps the help script in a named shell function definition.
func WriteFunction(w io.Writer, name string, p Program) {
	fmt.Fprintf(w, "%s () {\n", name)
	WriteScript(w, p)
	fmt.Fprintln(w, "}")
}

// writeSections writes the NAME/SUMMARY/DESCRIPTION/OPTIONS sections with
// the given bold delimiters. Both the script form and the terminal form
// share this layout.
func writeSections(w io.Writer, p Program, bold, unbold string) {
	switch {
	case p.Name != "" && p.Summary != "":
		fmt.Fprintf(w, "%sNAME%s\n", bold, unbold)
		fmt.Fprintln(w, fill(p.Name+" - "+p.Summary, p.Columns, sectionIndent, sectionIndent))
		fmt.Fprintln(w)
	case p.Name != "":
		fmt.Fprintf(w, "%sNAME%s\n", bold, unbold)
		fmt.Fprintln(w, fill(p.Name, p.Columns, sectionIndent, sectionIndent))
		fmt.Fprintln(w)
	case p.Summary != "":
		fmt.Fprintf(w, "%sSUMMARY%s\n", bold, unbold)
		fmt.Fprintln(w, fill(p.Summary, p.Columns, sectionIndent, sectionIndent))
		fmt.Fprintln(w)
	}

	if p.Description != "" {
		fmt.Fprintf(w, "%sDESCRIPTION%s\n", bold, unbold)
		fmt.Fprintln(w, fill(p.Description, p.Columns, sectionIndent, sectionIndent))
		fmt.Fprintln(w)
	}

	if len(p.Specs) == 0 {
		return
	}

	fmt.Fprintf(w, "%sOPTIONS%s\n", bold, unbold)

	for _, spec := range p.Specs {
		if spec.Secret {
			continue
		}

		fmt.Fprintln(w, strings.Join(flagLines(FlagUsages(spec), p.Columns), "\n"))

		for _, detail := range Details(spec) {
			if detail.ListItem {
				fmt.Fprintf(w, "%s\n\n", fill(detail.Text, p.Columns, listInitial, listSubsequent))
			} else {
				fmt.Fprintf(w, "%s\n\n", fill(detail.Text, p.Columns, detailIndent, detailIndent))
			}
		}

		if sentence := DefaultSentence(spec); sentence != "" {
			fmt.Fprintf(w, "%s\n\n", fill(sentence, p.Columns, detailIndent, detailIndent))
		}
	}
}
