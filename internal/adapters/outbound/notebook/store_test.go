package notebook_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nbstyle/nbstyle/internal/adapters/outbound/notebook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../../../../testdata/notebooks/long_line.ipynb"

func TestStore_Load(t *testing.T) {
	nb, err := notebook.New().Load(fixture)
	require.NoError(t, err)

	cells := nb.Cells()
	require.Len(t, cells, 2)
	assert.Equal(t, "markdown", cells[0].Type())
	assert.Equal(t, "code", cells[1].Type())
	assert.Len(t, cells[1].SourceLines(), 1)
}

func TestStore_LoadMissingFile(t *testing.T) {
	_, err := notebook.New().Load("no_such.ipynb")
	assert.Error(t, err)
}

func TestStore_LoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ipynb")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := notebook.New().Load(path)
	assert.Error(t, err)
}

func TestStore_SaveFormat(t *testing.T) {
	store := notebook.New()

	nb, err := store.Load(fixture)
	require.NoError(t, err)

	nb.Path = filepath.Join(t.TempDir(), "out.ipynb")
	require.NoError(t, store.Save(nb))

	data, err := os.ReadFile(nb.Path)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasSuffix(text, "\n"), "file must end with a newline")
	assert.Contains(t, text, "\n \"cells\": [", "one-space indent")
	// Numbers survive as written, not as float renderings.
	assert.Contains(t, text, "\"execution_count\": 2")
	assert.Contains(t, text, "\"nbformat_minor\": 5")
}

func TestStore_SaveDoesNotEscapeHTML(t *testing.T) {
	store := notebook.New()

	nb, err := store.Load(fixture)
	require.NoError(t, err)

	nb.Cells()[1]["source"] = []any{"x = 1 < 2 > 0 & True\n"}
	nb.Path = filepath.Join(t.TempDir(), "out.ipynb")
	require.NoError(t, store.Save(nb))

	data, err := os.ReadFile(nb.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "x = 1 < 2 > 0 & True")
}

func TestStore_RoundTripIsStable(t *testing.T) {
	store := notebook.New()

	nb, err := store.Load(fixture)
	require.NoError(t, err)
	nb.Path = filepath.Join(t.TempDir(), "out.ipynb")
	require.NoError(t, store.Save(nb))

	first, err := os.ReadFile(nb.Path)
	require.NoError(t, err)

	nb2, err := store.Load(nb.Path)
	require.NoError(t, err)
	require.NoError(t, store.Save(nb2))

	second, err := os.ReadFile(nb.Path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}
