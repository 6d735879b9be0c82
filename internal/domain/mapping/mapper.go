// Package mapping translates checker warnings, which point into the
// extracted script, back to notebook cells and intra-cell line numbers.
package mapping

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/nbstyle/nbstyle/internal/domain/extract"
)

var (
	borderlineRe = regexp.MustCompile(`#+` + extract.Identifier + `#+`)
	lineFieldRe  = regexp.MustCompile(`:(\d+):`)
)

// Borderlines returns the 1-indexed script line numbers of every separator
// line, in order. The i-th borderline closes the i-th code cell's block.
func Borderlines(script []string) []int {
	var lines []int
	for i, ln := range script {
		if borderlineRe.MatchString(ln) {
			lines = append(lines, i+1)
		}
	}
	return lines
}

// Location is a warning's position resolved against the notebook.
type Location struct {
	CodeCellSeq  int    // position among extracted code cells, 0-based
	NotebookCell int    // cell index in the notebook, 0-based
	Line         int    // line within the cell's own source, 1-based
	Column       int    // column as reported by the checker, 1-based
	ScriptLine   int    // line in the extracted script, 1-based
	Rest         string // warning text with the script-name prefix stripped
}

// Resolve maps one raw checker line onto its notebook cell. scriptName is the
// path the checker was invoked with, which prefixes every warning line.
// borderlines and codeCells come from the extraction bookkeeping.
func Resolve(raw, scriptName string, borderlines, codeCells []int) (Location, error) {
	rest := strings.TrimPrefix(raw, scriptName)

	m := lineFieldRe.FindStringSubmatch(rest)
	if m == nil {
		return Location{}, fmt.Errorf("no line number in checker output %q", strings.TrimSpace(raw))
	}
	scriptLine, err := strconv.Atoi(m[1])
	if err != nil {
		return Location{}, fmt.Errorf("parsing line number in %q: %w", strings.TrimSpace(raw), err)
	}

	fields := strings.Split(rest, ":")
	if len(fields) < 4 {
		return Location{}, fmt.Errorf("malformed checker output %q", strings.TrimSpace(raw))
	}
	column, err := strconv.Atoi(fields[2])
	if err != nil {
		return Location{}, fmt.Errorf("parsing column in %q: %w", strings.TrimSpace(raw), err)
	}

	// Leftmost binary search: index of the first borderline at or past the
	// warning's script line, i.e. the block the line belongs to.
	seq := sort.SearchInts(borderlines, scriptLine)
	if seq >= len(borderlines) || seq >= len(codeCells) {
		return Location{}, fmt.Errorf("warning line %d falls outside every cell block", scriptLine)
	}

	prev := 0
	if seq > 0 {
		prev = borderlines[seq-1]
	}

	lineInCell := scriptLine - prev
	if scriptLine == borderlines[seq] {
		// The warning sits exactly on the block's closing separator: the
		// blank-line buffer was counted as part of the cell (E303 does
		// this), so take it back out.
		lineInCell -= extract.BufferLines
	}

	return Location{
		CodeCellSeq:  seq,
		NotebookCell: codeCells[seq],
		Line:         lineInCell,
		Column:       column,
		ScriptLine:   scriptLine,
		Rest:         rest,
	}, nil
}

// Rewrite replaces the script-relative line field in a stripped warning with
// the intra-cell line number, consuming the field's leading colon, e.g.
// ":12:5: E501 ..." with line 3 becomes "3:5: E501 ...".
func Rewrite(rest string, lineInCell int) string {
	m := lineFieldRe.FindStringIndex(rest)
	if m == nil {
		return rest
	}
	return rest[:m[0]] + strconv.Itoa(lineInCell) + rest[m[1]-1:]
}

// MessageField returns the checker's message text: the fourth colon-delimited
// field, trimmed. Messages containing colons are truncated at the first one,
// matching how the raw format is consumed everywhere else.
func MessageField(rest string) string {
	fields := strings.Split(rest, ":")
	if len(fields) < 4 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(fields[3])
}
