package domain_test

import (
	"testing"

	"github.com/nbstyle/nbstyle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleCode(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"long line", "nb_scripted.py:12:80: E501 line too long (98 > 79 characters)\n", "E501"},
		{"trailing whitespace", "nb_scripted.py:3:10: W291 trailing whitespace\n", "W291"},
		{"message with colon", "nb_scripted.py:7:12: E231 missing whitespace after ','\n", "E231"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := domain.RuleCode(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestRuleCode_Malformed(t *testing.T) {
	_, err := domain.RuleCode("not a warning line\n")
	assert.Error(t, err)
}

func TestFilterIgnored(t *testing.T) {
	warns := []string{
		"nb_scripted.py:1:80: E501 line too long (98 > 79 characters)\n",
		"nb_scripted.py:2:10: W291 trailing whitespace\n",
		"nb_scripted.py:5:1: E302 expected 2 blank lines, got 1\n",
	}

	kept, err := domain.FilterIgnored(warns, []string{"W291", "W504"})
	require.NoError(t, err)

	require.Len(t, kept, 2)
	assert.Contains(t, kept[0], "E501")
	assert.Contains(t, kept[1], "E302")
}

func TestFilterIgnored_KeepsOrder(t *testing.T) {
	warns := []string{
		"nb_scripted.py:9:1: E303 too many blank lines (3)\n",
		"nb_scripted.py:1:80: E501 line too long (98 > 79 characters)\n",
	}

	kept, err := domain.FilterIgnored(warns, nil)
	require.NoError(t, err)
	assert.Equal(t, warns, kept)
}

func TestFilterIgnored_AllIgnored(t *testing.T) {
	warns := []string{"nb_scripted.py:2:10: W291 trailing whitespace\n"}

	kept, err := domain.FilterIgnored(warns, []string{"W291"})
	require.NoError(t, err)
	assert.Empty(t, kept)
}
