package domain

import (
	"fmt"
	"strings"
)

// CellWarning is one checker warning resolved to its originating notebook
// cell. Line and Column are relative to the cell's own source, 1-based.
type CellWarning struct {
	Ordinal      int    `json:"ordinal"`
	CodeCellSeq  int    `json:"code_cell_seq"` // position among extracted code cells, 0-based
	NotebookCell int    `json:"notebook_cell"` // index in the notebook, 0-based
	Line         int    `json:"line"`
	Column       int    `json:"column"`
	ScriptLine   int    `json:"script_line"`
	SourceLine   string `json:"source_line"` // offending script line, newlines stripped
	Message      string `json:"message"`     // checker message text
	Annotated    string `json:"-"`           // timestamped line stored in the notebook
}

// Report is the outcome of one check run.
type Report struct {
	Notebook  string            `json:"notebook"`
	Commit    string            `json:"commit,omitempty"`
	Clean     bool              `json:"clean"`
	Updated   bool              `json:"updated,omitempty"`
	Warnings  []CellWarning     `json:"warnings,omitempty"`
	ByCell    map[int][]string  `json:"-"`
	CodeCells []int             `json:"code_cells,omitempty"`
}

// RuleCode extracts the flake8 rule code from a raw warning line, e.g.
// "nb_scripted.py:12:5: E501 line too long" -> "E501". The code sits in the
// fourth colon-delimited field as the second space-delimited token.
func RuleCode(line string) (string, error) {
	fields := strings.Split(line, ":")
	if len(fields) < 4 {
		return "", fmt.Errorf("malformed checker output line %q", strings.TrimSpace(line))
	}
	tokens := strings.Split(fields[3], " ")
	if len(tokens) < 2 {
		return "", fmt.Errorf("malformed checker output line %q", strings.TrimSpace(line))
	}
	return tokens[1], nil
}

// FilterIgnored drops warnings whose rule code is in the ignore set,
// preserving order.
func FilterIgnored(warns []string, ignore []string) ([]string, error) {
	set := make(map[string]bool, len(ignore))
	for _, code := range ignore {
		set[code] = true
	}

	var kept []string
	for _, w := range warns {
		code, err := RuleCode(w)
		if err != nil {
			return nil, err
		}
		if !set[code] {
			kept = append(kept, w)
		}
	}
	return kept, nil
}
