// Package notebook implements domain.NotebookStore over JSON files on disk.
package notebook

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nbstyle/nbstyle/internal/domain"
)

// Store reads and writes notebook documents.
type Store struct{}

// New creates a Store.
func New() *Store { return &Store{} }

// Load reads a notebook document wholesale. Numbers are kept as literals so
// a later Save does not reformat them.
func (s *Store) Load(path string) (*domain.Notebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening notebook: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing notebook %s: %w", path, err)
	}

	return domain.NewNotebook(path, doc), nil
}

// Save writes the notebook back to its own path: one-space indent, no HTML
// escaping, trailing newline.
func (s *Store) Save(nb *domain.Notebook) error {
	f, err := os.Create(nb.Path)
	if err != nil {
		return fmt.Errorf("writing notebook: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	if err := enc.Encode(nb.Doc); err != nil {
		return fmt.Errorf("serializing notebook %s: %w", nb.Path, err)
	}

	return f.Close()
}
