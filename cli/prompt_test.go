package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFloat(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateFloat("10"))
	require.NoError(t, validateFloat(" -2.5 "))
	require.NoError(t, validateFloat("1e3"))
	require.Error(t, validateFloat(""))
	require.Error(t, validateFloat("ten"))
}

func TestPrefixSearcher(t *testing.T) {
	t.Parallel()

	search := prefixSearcher([]string{"mph", "kph", "mps"})

	assert.True(t, search("", 1))
	assert.True(t, search("m", 0))
	assert.True(t, search("M", 2))
	assert.False(t, search("m", 1))
	assert.True(t, search("mp", 2))
	assert.False(t, search("mph", 2))
}

func TestSelectWithoutChoices(t *testing.T) {
	t.Parallel()

	_, err := Select("unit")
	require.ErrorIs(t, err, ErrNoChoices)
}
