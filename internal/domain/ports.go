package domain

// NotebookStore loads and persists notebook documents.
type NotebookStore interface {
	Load(path string) (*Notebook, error)
	Save(nb *Notebook) error
}

// StyleChecker runs the external style checker over a script file and writes
// its standard output to warnPath. A non-zero checker exit status is not an
// error; the presence of warning lines is the signal used downstream.
type StyleChecker interface {
	Run(scriptPath, warnPath string) error
}

// MagicConfig is the companion document of injectable marker cells. One of
// its cells embeds the comma-separated list of rule codes to ignore.
type MagicConfig struct {
	Cells       []Cell
	IgnoreCodes []string
}

// MagicLoader reads the marker-cell configuration document.
type MagicLoader interface {
	Load(path string) (*MagicConfig, error)
}

// RepoInspector reports git metadata for the directory holding a notebook.
type RepoInspector interface {
	HeadCommit(dir string) (string, bool)
}
