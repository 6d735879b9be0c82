package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nbstyle/nbstyle/internal/adapters/outbound/config"
	"github.com/nbstyle/nbstyle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), cfg)
}

func TestYAMLLoader_Load(t *testing.T) {
	dir := t.TempDir()
	content := "checker: flake8-custom\ntimezone: UTC\nmagic_file: conf/magic.json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nbstyle.yaml"), []byte(content), 0o644))

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "flake8-custom", cfg.Checker)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "conf/magic.json", cfg.MagicFile)
}

func TestYAMLLoader_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nbstyle.yaml"), []byte("timezone: UTC\n"), 0o644))

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "flake8", cfg.Checker)
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestYAMLLoader_RejectsInvalidSettings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nbstyle.yaml"), []byte("timezone: Mars/OlympusMons\n"), 0o644))

	_, err := config.New().Load(dir)
	assert.Error(t, err)
}

func TestYAMLLoader_RejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nbstyle.yaml"), []byte("checker: [unclosed\n"), 0o644))

	_, err := config.New().Load(dir)
	assert.Error(t, err)
}
