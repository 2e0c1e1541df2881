package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordletree/wordletree/feedback"
	"github.com/wordletree/wordletree/word"
)

// TestMetric0BestFast_AgreesWithFullScan asserts the pruning
// short-circuit in metric0BestFast never changes the winning guess
// compared to the unshort-circuited metric0Best scan.
func TestMetric0BestFast_AgreesWithFullScan(t *testing.T) {
	words := []string{"crane", "apple", "zebra", "slate", "robot", "tiger", "plant", "chair", "mouse", "horse"}
	targets, err := word.NewSet(words)
	require.NoError(t, err)
	f, err := feedback.BuildScalar(targets, targets)
	require.NoError(t, err)

	t_, g := allIdx(targets.Len()), allIdx(targets.Len())

	s := NewScalarScorer(Metric0, 0, nil)
	fastGuess, fastInT, err := s.metric0BestFast(t_, g, f)
	require.NoError(t, err)

	fullGuess, fullInT, err := metric0Best(t_, g, f)
	require.NoError(t, err)

	require.Equal(t, fullGuess, fastGuess)
	require.Equal(t, fullInT, fastInT)
}

func allIdx(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
