package workgroup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseWordBits_Empty(t *testing.T) {
	t.Parallel()

	n, err := parseWordBits("")
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestParseWordBits_ValidValues(t *testing.T) {
	t.Parallel()

	n, err := parseWordBits("wordbits=32")
	require.NoError(t, err)
	require.Equal(t, 32, n)

	n, err = parseWordBits("wordbits=64")
	require.NoError(t, err)
	require.Equal(t, 64, n)
}

func TestParseWordBits_IgnoresUnrelatedFields(t *testing.T) {
	t.Parallel()

	n, err := parseWordBits("foo=bar,wordbits=32,baz=qux")
	require.NoError(t, err)
	require.Equal(t, 32, n)
}

func TestParseWordBits_RejectsUnsupportedWidth(t *testing.T) {
	t.Parallel()

	_, err := parseWordBits("wordbits=16")
	require.Error(t, err)
}

func TestParseWordBits_RejectsNonInteger(t *testing.T) {
	t.Parallel()

	_, err := parseWordBits("wordbits=abc")
	require.Error(t, err)
}
