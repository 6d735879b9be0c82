package application

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/nbstyle/nbstyle/internal/domain"
	"github.com/nbstyle/nbstyle/internal/domain/extract"
	"github.com/nbstyle/nbstyle/internal/domain/mapping"
)

// CheckService orchestrates the check pipeline:
// extract script -> run checker -> filter ignored codes -> map lines back
// to cells -> report (print data or notebook update).
type CheckService struct {
	notebooks domain.NotebookStore
	checker   domain.StyleChecker
	magic     domain.MagicLoader
	repo      domain.RepoInspector
	settings  domain.Settings

	now func() time.Time
}

// NewCheckService wires the pipeline's ports together.
func NewCheckService(
	notebooks domain.NotebookStore,
	checker domain.StyleChecker,
	magic domain.MagicLoader,
	repo domain.RepoInspector,
	settings domain.Settings,
) *CheckService {
	return &CheckService{
		notebooks: notebooks,
		checker:   checker,
		magic:     magic,
		repo:      repo,
		settings:  settings,
		now:       time.Now,
	}
}

// Run checks one notebook. With update false the report carries everything
// print mode needs; with update true the notebook is rewritten in place with
// the warnings attached to their cells.
func (s *CheckService) Run(nbPath string, update bool) (*domain.Report, error) {
	nb, err := s.notebooks.Load(nbPath)
	if err != nil {
		return nil, err
	}

	res := extract.FromNotebook(nb)
	slog.Debug("extracted code cells", "notebook", nbPath, "cells", len(res.CodeCells))

	stem := strings.TrimSuffix(filepath.Base(nbPath), filepath.Ext(nbPath))
	codeFile := stem + "_scripted.py"
	warnFile := stem + "_pep8.txt"

	if err := os.WriteFile(codeFile, []byte(res.Script), 0o644); err != nil {
		return nil, fmt.Errorf("writing script file: %w", err)
	}

	if err := s.checker.Run(codeFile, warnFile); err != nil {
		return nil, err
	}

	warns, err := readLines(warnFile)
	if err != nil {
		return nil, fmt.Errorf("reading warnings file: %w", err)
	}

	magicCfg, err := s.magic.Load(s.settings.MagicFile)
	if err != nil {
		return nil, err
	}

	kept, err := domain.FilterIgnored(warns, magicCfg.IgnoreCodes)
	if err != nil {
		return nil, err
	}
	slog.Debug("filtered warnings", "raw", len(warns), "kept", len(kept))

	report := &domain.Report{
		Notebook:  nbPath,
		CodeCells: res.CodeCells,
		ByCell:    make(map[int][]string),
	}
	if commit, ok := s.repo.HeadCommit(filepath.Dir(nbPath)); ok {
		report.Commit = commit
	}

	if len(kept) == 0 {
		removeTempFiles(codeFile, warnFile)
		report.Clean = true
		return report, nil
	}

	script, err := readLines(codeFile)
	if err != nil {
		return nil, fmt.Errorf("reading script file: %w", err)
	}
	borders := mapping.Borderlines(script)

	loc, err := s.settings.Location()
	if err != nil {
		return nil, err
	}
	prefix := s.now().In(loc).Format("2006-01-02 15:04:05") + " - INFO - "

	for i, raw := range kept {
		pos, err := mapping.Resolve(raw, codeFile, borders, res.CodeCells)
		if err != nil {
			return nil, err
		}

		annotated := prefix + mapping.Rewrite(pos.Rest, pos.Line)
		report.Warnings = append(report.Warnings, domain.CellWarning{
			Ordinal:      i + 1,
			CodeCellSeq:  pos.CodeCellSeq,
			NotebookCell: pos.NotebookCell,
			Line:         pos.Line,
			Column:       pos.Column,
			ScriptLine:   pos.ScriptLine,
			SourceLine:   strings.ReplaceAll(script[pos.ScriptLine-1], "\n", ""),
			Message:      mapping.MessageField(pos.Rest),
			Annotated:    annotated,
		})
		report.ByCell[pos.NotebookCell] = append(report.ByCell[pos.NotebookCell], annotated)
	}

	if !update {
		// Print mode leaves the temp files on disk for the calling workflow.
		return report, nil
	}

	injected := nb.Clone()
	injected.Inject(report.ByCell)

	if !hasMarkerCells(nb, res.CodeCells, magicCfg.Cells) {
		injected.InsertCells(res.CodeCells[0], magicCfg.Cells)
	}

	if err := s.notebooks.Save(injected); err != nil {
		return nil, err
	}
	removeTempFiles(codeFile, warnFile)

	report.Updated = true
	return report, nil
}

// ListCells loads a notebook and returns it with the indices of the cells
// that script extraction would pick up.
func (s *CheckService) ListCells(nbPath string) (*domain.Notebook, []int, error) {
	nb, err := s.notebooks.Load(nbPath)
	if err != nil {
		return nil, nil, err
	}
	res := extract.FromNotebook(nb)
	return nb, res.CodeCells, nil
}

// hasMarkerCells reports whether any scanned code cell already carries the
// first marker cell's source, i.e. the interactive-feedback cells were
// inserted on an earlier run.
func hasMarkerCells(nb *domain.Notebook, codeCells []int, markers []domain.Cell) bool {
	if len(markers) == 0 {
		return true
	}
	markerSource := markers[0].SourceLines()
	cells := nb.Cells()
	for _, i := range codeCells {
		if slices.Equal(cells[i].SourceLines(), markerSource) {
			return true
		}
	}
	return false
}

// readLines splits a file into lines, each keeping its trailing newline.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func removeTempFiles(paths ...string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Debug("removing temp file", "path", p, "error", err)
		}
	}
}
