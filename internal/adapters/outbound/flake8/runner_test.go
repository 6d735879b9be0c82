package flake8_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nbstyle/nbstyle/internal/adapters/outbound/flake8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker writes a small shell script that prints one warning for the
// script it is given and exits 1, the way flake8 does when it finds issues.
func stubChecker(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub checker is a shell script")
	}

	path := filepath.Join(t.TempDir(), "fake_flake8")
	script := "#!/bin/sh\nprintf '%s:1:1: E999 stub warning\\n' \"$1\"\nexit 1\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestRunner_CapturesStdout(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "nb_scripted.py")
	warnPath := filepath.Join(dir, "nb_pep8.txt")
	require.NoError(t, os.WriteFile(scriptPath, []byte("x = 1\n"), 0o644))

	runner := flake8.New(stubChecker(t))
	require.NoError(t, runner.Run(scriptPath, warnPath))

	data, err := os.ReadFile(warnPath)
	require.NoError(t, err)
	assert.Equal(t, scriptPath+":1:1: E999 stub warning\n", string(data))
}

func TestRunner_NonZeroExitIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	warnPath := filepath.Join(dir, "nb_pep8.txt")

	runner := flake8.New(stubChecker(t))
	assert.NoError(t, runner.Run("whatever.py", warnPath))
}

func TestRunner_MissingBinary(t *testing.T) {
	dir := t.TempDir()
	warnPath := filepath.Join(dir, "nb_pep8.txt")

	runner := flake8.New(filepath.Join(dir, "definitely_not_flake8"))
	assert.Error(t, runner.Run("whatever.py", warnPath))
}
