// Package tui renders check results for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nbstyle/nbstyle/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	passStyle    = lipgloss.NewStyle().Foreground(success)
	caretStyle   = lipgloss.NewStyle().Foreground(danger)
	messageStyle = lipgloss.NewStyle().Foreground(warning)
	sourceStyle  = lipgloss.NewStyle().Foreground(fg)
)

// caret points at the offending column, aligned under the source line.
const caret = "▲"

// RenderClean renders the all-clear message.
func RenderClean(nbPath string) string {
	return passStyle.Render(fmt.Sprintf("%s is clean!", nbPath)) + "\n"
}

// RenderReport renders every warning of a print-mode report: ordinal, the
// owning cell (both its code-cell sequence and its notebook position,
// 1-based), the intra-cell line and column, the offending source line, a
// caret under the column, and the checker's message.
func RenderReport(r *domain.Report) string {
	var b strings.Builder

	if r.Commit != "" {
		hash := r.Commit
		if len(hash) > 7 {
			hash = hash[:7]
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("repo HEAD %s", hash)))
		b.WriteString("\n\n")
	}

	total := len(r.Warnings)
	for _, w := range r.Warnings {
		b.WriteString(titleStyle.Render(fmt.Sprintf("PEP8 error %d of %d", w.Ordinal, total)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(
			"PEP8 error found in code cell %d (Notebook cell %d) at code cell line %d, column %d\n",
			w.CodeCellSeq+1, w.NotebookCell+1, w.Line, w.Column,
		))
		b.WriteString(sourceStyle.Render(w.SourceLine))
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", w.Column-1))
		b.WriteString(caretStyle.Render(caret))
		b.WriteString("\n")
		b.WriteString(messageStyle.Render(w.Message))
		b.WriteString("\n\n")
	}

	return b.String()
}

// RenderCellList renders the code cells that script extraction would pick
// up: notebook index, block sequence, line count, and the first source line.
func RenderCellList(nb *domain.Notebook, codeCells []int) string {
	if len(codeCells) == 0 {
		return dimStyle.Render("No code cells with content found.") + "\n"
	}

	cells := nb.Cells()
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d code cells", len(codeCells))))
	b.WriteString("\n")

	for seq, idx := range codeCells {
		source := cells[idx].SourceLines()
		first := ""
		if len(source) > 0 {
			first = strings.TrimRight(source[0], "\n")
		}
		b.WriteString(fmt.Sprintf("  %s  cell %d  %s  %s\n",
			dimStyle.Render(fmt.Sprintf("#%d", seq+1)),
			idx,
			dimStyle.Render(fmt.Sprintf("%d lines", len(source))),
			first,
		))
	}

	return b.String()
}
