// Package extract turns a notebook's code cells into a single flat Python
// script that an external style checker can read, keeping enough bookkeeping
// to map script lines back to their cells afterwards.
package extract

import (
	"regexp"
	"strings"

	"github.com/nbstyle/nbstyle/internal/domain"
)

// Identifier is the unique marker token embedded in every separator line.
const Identifier = "flake-8-check"

const (
	lineLength = 80

	// BufferLines blank lines end each cell's block. Definitions at the top
	// of the next cell would otherwise trip the "expected 2 blank lines"
	// rule (E302).
	BufferLines = 3
)

var ignoreDirectiveRe = regexp.MustCompile(`^# flake8-ignore`)

// Separator is the synthetic comment line delimiting cell blocks in the
// script: "# " followed by hash fill around the identifier, 80 columns wide,
// closed with a newline so the script never ends without one (W391).
func Separator() string {
	fill0 := (lineLength/2 - 1) - len(Identifier)/2
	fill1 := (lineLength/2 - 1) - (len(Identifier)+1)/2
	return "# " + strings.Repeat("#", fill0) + Identifier + strings.Repeat("#", fill1) + "\n"
}

// Result is the extracted script plus the notebook indices of the cells that
// contributed to it. CodeCells[i] is the notebook position of the i-th block,
// which ends at the i-th separator line.
type Result struct {
	Script    string
	CodeCells []int
}

// FromNotebook extracts every code cell with actual content into the script,
// one block per cell, each followed by the blank-line buffer and a separator.
func FromNotebook(nb *domain.Notebook) *Result {
	var b strings.Builder
	res := &Result{}

	for i, cell := range nb.Cells() {
		source := cell.SourceLines()
		if cell.Type() != "code" || len(source) == 0 || !hasContent(source) {
			continue
		}
		res.CodeCells = append(res.CodeCells, i)

		// A "# flake8-ignore ..." first line asks for a noqa annotation on
		// every code line in this cell, carrying over whatever follows the
		// directive (e.g. ": E501").
		noqaComment := ""
		if loc := ignoreDirectiveRe.FindStringIndex(source[0]); loc != nil {
			noqaComment = "  # noqa" + source[0][loc[1]:]
		}

		for _, ln := range source {
			line := ln
			if stripped := strings.TrimSpace(ln); len(stripped) > 0 {
				// The checker cannot parse shell escapes or IPython magics,
				// so comment them out instead of translating them.
				if stripped[0] == '!' || stripped[0] == '%' {
					line = "# " + ln
				}
			}

			// Splice the noqa comment in before the line's own newline; the
			// final unterminated line takes the comment minus its newline.
			if noqaComment != "" && !strings.HasPrefix(line, "#") && line != "\n" {
				if strings.HasSuffix(line, "\n") {
					line = line[:len(line)-1] + noqaComment
				} else {
					line += noqaComment[:len(noqaComment)-1]
				}
			}

			b.WriteString(line)
		}

		b.WriteString(strings.Repeat("\n", BufferLines))
		b.WriteString(Separator())
	}

	res.Script = b.String()
	return res
}

// hasContent reports whether any source line is something other than a bare
// newline. A line of spaces still counts as content.
func hasContent(source []string) bool {
	for _, line := range source {
		if line != "\n" {
			return true
		}
	}
	return false
}
