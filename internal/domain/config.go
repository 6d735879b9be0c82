package domain

import (
	"fmt"
	"time"
)

const (
	// NotebookExt is the only accepted notebook file extension.
	NotebookExt = ".ipynb"

	defaultChecker   = "flake8"
	defaultTimezone  = "America/New_York"
	defaultMagicFile = "nb_flake8_magic.json"
)

// Settings is the tool-level configuration read from .nbstyle.yaml. The
// checker's own rule configuration lives in the project's .flake8 file and
// is never touched here.
type Settings struct {
	Checker   string `yaml:"checker"`
	Timezone  string `yaml:"timezone"`
	MagicFile string `yaml:"magic_file"`
}

// DefaultSettings returns the settings used when no .nbstyle.yaml exists.
func DefaultSettings() Settings {
	return Settings{
		Checker:   defaultChecker,
		Timezone:  defaultTimezone,
		MagicFile: defaultMagicFile,
	}
}

// Validate rejects settings that could not possibly work.
func (s Settings) Validate() error {
	if s.Checker == "" {
		return fmt.Errorf("checker must not be empty")
	}
	if s.Timezone != "" {
		if _, err := time.LoadLocation(s.Timezone); err != nil {
			return fmt.Errorf("unknown timezone %q: %w", s.Timezone, err)
		}
	}
	return nil
}

// Location resolves the configured timezone.
func (s Settings) Location() (*time.Location, error) {
	tz := s.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	return time.LoadLocation(tz)
}
