package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordletree/wordletree/feedback"
	"github.com/wordletree/wordletree/kernel"
	"github.com/wordletree/wordletree/word"
)

func buildGame(t *testing.T, targetWords, guessWords []string) (*word.Set, *word.Set, *feedback.Matrix) {
	t.Helper()
	targets, err := word.NewSet(targetWords)
	require.NoError(t, err)
	guesses, err := word.NewSet(guessWords)
	require.NoError(t, err)
	f, err := feedback.BuildScalar(targets, guesses)
	require.NoError(t, err)
	return targets, guesses, f
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func TestScalarScorer_SingleTarget(t *testing.T) {
	targets, guesses, f := buildGame(t, []string{"crane"}, []string{"crane", "slate"})
	s := kernel.NewScalarScorer(kernel.Metric0, 0, nil)
	g, inT, err := s.Best([]int{0}, allIndices(guesses.Len()), f)
	require.NoError(t, err)
	require.Equal(t, 0, g)
	require.True(t, inT)
	_ = targets
}

func TestScalarScorer_TwoTargets_FirstOfTwoRule(t *testing.T) {
	targets, guesses, f := buildGame(t, []string{"crane", "crate"}, []string{"crane", "crate", "slate"})
	s := kernel.NewScalarScorer(kernel.Metric0, 0, nil)
	g, inT, err := s.Best([]int{0, 1}, allIndices(guesses.Len()), f)
	require.NoError(t, err)
	require.Equal(t, 0, g)
	require.True(t, inT)
	_ = targets
}

func TestScalarScorer_EmptyInputs(t *testing.T) {
	_, guesses, f := buildGame(t, []string{"crane"}, []string{"crane"})
	s := kernel.NewScalarScorer(kernel.Metric0, 0, nil)

	_, _, err := s.Best(nil, allIndices(guesses.Len()), f)
	require.ErrorIs(t, err, kernel.ErrEmptyTargetSet)

	_, _, err = s.Best([]int{0}, nil, f)
	require.ErrorIs(t, err, kernel.ErrEmptyGuessSet)
}

func TestScalarScorer_TopK_StableTieBreak(t *testing.T) {
	_, guesses, f := buildGame(t, []string{"crane", "apple", "zebra"},
		[]string{"crane", "apple", "zebra", "slate", "tiger"})
	s := kernel.NewScalarScorer(kernel.Metric0, 0, nil)

	cands, err := s.TopK([]int{0, 1, 2}, allIndices(guesses.Len()), f, 3)
	require.NoError(t, err)
	require.Len(t, cands, 3)
	for i := 1; i < len(cands); i++ {
		require.LessOrEqual(t, cands[i-1].Score, cands[i].Score)
		if cands[i-1].Score == cands[i].Score {
			require.Less(t, cands[i-1].Index, cands[i].Index)
		}
	}
}

func TestScalarScorer_Metric1_PicksAValidGuess(t *testing.T) {
	words := []string{"aaaaa", "aaaab", "aaabb", "aabbb", "abbbb", "bbbbb"}
	targets, guesses, f := buildGame(t, words, words)
	s := kernel.NewScalarScorer(kernel.Metric1, 4, nil)

	g, _, err := s.Best(allIndices(targets.Len()), allIndices(guesses.Len()), f)
	require.NoError(t, err)
	require.GreaterOrEqual(t, g, 0)
	require.Less(t, g, guesses.Len())
}

func TestScalarScorer_Metric2_AgreesWithMetric0_OnTinySet(t *testing.T) {
	words := []string{"aaaaa", "aaaab", "aaabb"}
	targets, guesses, f := buildGame(t, words, words)

	m2 := kernel.NewScalarScorer(kernel.Metric2, 0, nil)
	g, inT, err := m2.Best(allIndices(targets.Len()), allIndices(guesses.Len()), f)
	require.NoError(t, err)
	require.True(t, inT)
	require.GreaterOrEqual(t, g, 0)
	require.Less(t, g, guesses.Len())

	m0 := kernel.NewScalarScorer(kernel.Metric0, 0, nil)
	g0, inT0, err := m0.Best(allIndices(targets.Len()), allIndices(guesses.Len()), f)
	require.NoError(t, err)
	require.Equal(t, g0, g)
	require.Equal(t, inT0, inT)
}

func BenchmarkScalarScorer_Metric0(b *testing.B) {
	words := []string{"crane", "apple", "zebra", "slate", "robot", "tiger", "plant", "chair"}
	targets, err := word.NewSet(words)
	require.NoError(b, err)
	f, err := feedback.BuildScalar(targets, targets)
	require.NoError(b, err)

	s := kernel.NewScalarScorer(kernel.Metric0, 0, nil)
	idx := allIndices(targets.Len())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = s.Best(idx, idx, f)
	}
}
