package treeio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuccessorKey_RoundTrip(t *testing.T) {
	key := successorKey(3, []byte{0, 1, 2, 0, 1})
	require.Equal(t, "(3, [0, 1, 2, 0, 1])", key)

	parent, trits, err := parseSuccessorKey(key)
	require.NoError(t, err)
	require.Equal(t, 3, parent)
	require.Equal(t, []byte{0, 1, 2, 0, 1}, trits)
}

func TestParseSuccessorKey_Malformed(t *testing.T) {
	_, _, err := parseSuccessorKey("not-a-key")
	require.Error(t, err)
}
