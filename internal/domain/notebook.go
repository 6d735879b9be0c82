package domain

import "strings"

// Notebook is a Jupyter notebook held as a generic JSON document. Keeping the
// raw document shape (rather than a typed struct) preserves metadata,
// attachments, and any other fields the nbformat schema allows, so an updated
// notebook round-trips without losing anything.
type Notebook struct {
	Path string
	Doc  map[string]any
}

// Cell is one notebook cell, a view over the underlying document object.
type Cell map[string]any

// NewNotebook wraps a decoded notebook document.
func NewNotebook(path string, doc map[string]any) *Notebook {
	return &Notebook{Path: path, Doc: doc}
}

// Cells returns the notebook's cells in document order.
func (n *Notebook) Cells() []Cell {
	raw, _ := n.Doc["cells"].([]any)
	cells := make([]Cell, 0, len(raw))
	for _, c := range raw {
		if m, ok := c.(map[string]any); ok {
			cells = append(cells, Cell(m))
		} else {
			cells = append(cells, Cell{})
		}
	}
	return cells
}

// InsertCells splices cells into the notebook at index at.
func (n *Notebook) InsertCells(at int, cells []Cell) {
	raw, _ := n.Doc["cells"].([]any)
	if at < 0 {
		at = 0
	}
	if at > len(raw) {
		at = len(raw)
	}
	inserted := make([]any, 0, len(raw)+len(cells))
	inserted = append(inserted, raw[:at]...)
	for _, c := range cells {
		inserted = append(inserted, map[string]any(c))
	}
	inserted = append(inserted, raw[at:]...)
	n.Doc["cells"] = inserted
}

// Clone returns an independent deep copy of the notebook. Mutating the clone
// never aliases the original document.
func (n *Notebook) Clone() *Notebook {
	return &Notebook{Path: n.Path, Doc: deepCopyMap(n.Doc)}
}

// Inject clears stale execution state from every cell and attaches one
// stderr stream output to each cell listed in byCell. The text lines keep
// the order in which the checker emitted them.
func (n *Notebook) Inject(byCell map[int][]string) {
	for i, cell := range n.Cells() {
		if truthy(cell["execution_count"]) {
			cell["execution_count"] = nil
		}
		if truthy(cell["outputs"]) {
			cell["outputs"] = []any{}
		}
		if text, ok := byCell[i]; ok {
			lines := make([]any, len(text))
			for j, t := range text {
				lines[j] = t
			}
			cell["outputs"] = []any{map[string]any{
				"name":        "stderr",
				"output_type": "stream",
				"text":        lines,
			}}
		}
	}
}

// Type returns the cell_type tag ("code", "markdown", ...).
func (c Cell) Type() string {
	t, _ := c["cell_type"].(string)
	return t
}

// SourceLines returns the cell source as a list of lines. nbformat stores
// source as either a list of strings or a single string; a single string is
// split after each newline.
func (c Cell) SourceLines() []string {
	switch src := c["source"].(type) {
	case []any:
		lines := make([]string, 0, len(src))
		for _, l := range src {
			if s, ok := l.(string); ok {
				lines = append(lines, s)
			}
		}
		return lines
	case string:
		if src == "" {
			return nil
		}
		lines := strings.SplitAfter(src, "\n")
		if lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		return lines
	default:
		return nil
	}
}

// truthy mirrors the loose presence checks the notebook format invites:
// null, 0, "", and empty collections all count as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		// json.Number and any other scalar.
		if s, ok := v.(interface{ String() string }); ok {
			return s.String() != "0" && s.String() != ""
		}
		return true
	}
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		// Scalars (string, bool, json.Number, nil) are immutable.
		return v
	}
}
