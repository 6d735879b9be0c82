package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nbstyle/nbstyle/internal/domain"
)

// MagicLoader reads the companion document of injectable marker cells
// (nb_flake8_magic.json). The cells enable interactive style feedback when
// pasted into a notebook; the third cell's magic invocation carries the
// comma-separated rule codes to ignore as its last token, e.g.
//
//	%flake8_on --ignore E501,W291
type MagicLoader struct{}

// NewMagicLoader creates a MagicLoader.
func NewMagicLoader() *MagicLoader { return &MagicLoader{} }

// Load parses the marker-cell document and extracts the ignore list.
func (l *MagicLoader) Load(path string) (*domain.MagicConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening magic-cell config: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var doc struct {
		Cells []map[string]any `json:"cells"`
	}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing magic-cell config %s: %w", path, err)
	}

	cfg := &domain.MagicConfig{}
	for _, c := range doc.Cells {
		cfg.Cells = append(cfg.Cells, domain.Cell(c))
	}

	codes, err := ignoreCodes(cfg.Cells)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.IgnoreCodes = codes

	return cfg, nil
}

// ignoreCodes digs the ignore list out of the marker cells: the last
// whitespace token of the third line of the third cell, split on commas.
func ignoreCodes(cells []domain.Cell) ([]string, error) {
	if len(cells) < 3 {
		return nil, fmt.Errorf("magic-cell config needs at least 3 cells, has %d", len(cells))
	}
	source := cells[2].SourceLines()
	if len(source) < 3 {
		return nil, fmt.Errorf("third magic cell needs at least 3 source lines, has %d", len(source))
	}

	tokens := strings.Fields(strings.TrimSpace(source[2]))
	if len(tokens) == 0 {
		return nil, fmt.Errorf("third magic cell line %q carries no ignore list", strings.TrimSpace(source[2]))
	}

	return strings.Split(tokens[len(tokens)-1], ","), nil
}
