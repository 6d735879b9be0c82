package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nbstyle/nbstyle/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".nbstyle.yaml"

// YAMLLoader reads tool settings from .nbstyle.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .nbstyle.yaml from dir. Returns DefaultSettings if the file
// does not exist, so running without any configuration keeps working.
func (l *YAMLLoader) Load(dir string) (domain.Settings, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}

	cfg := domain.DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Settings{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
