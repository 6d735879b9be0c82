package domain_test

import (
	"testing"

	"github.com/nbstyle/nbstyle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()
	assert.Equal(t, "flake8", s.Checker)
	assert.Equal(t, "America/New_York", s.Timezone)
	assert.Equal(t, "nb_flake8_magic.json", s.MagicFile)
	assert.NoError(t, s.Validate())
}

func TestSettings_ValidateRejectsEmptyChecker(t *testing.T) {
	s := domain.DefaultSettings()
	s.Checker = ""
	assert.Error(t, s.Validate())
}

func TestSettings_ValidateRejectsUnknownTimezone(t *testing.T) {
	s := domain.DefaultSettings()
	s.Timezone = "Mars/OlympusMons"
	assert.Error(t, s.Validate())
}

func TestSettings_Location(t *testing.T) {
	s := domain.DefaultSettings()
	loc, err := s.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())

	s.Timezone = ""
	loc, err = s.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}
