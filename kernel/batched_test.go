package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordletree/wordletree/kernel"
)

func TestBatchedScorer_AgreesWithScalar_Metric0(t *testing.T) {
	targetWords := []string{"crane", "apple", "zebra", "slate", "robot"}
	guessWords := append(append([]string{}, targetWords...), "pleas", "tiger", "chair")
	targets, guesses, f := buildGame(t, targetWords, guessWords)

	scalar := kernel.NewScalarScorer(kernel.Metric0, 0, nil)
	batched := kernel.NewBatchedScorer(kernel.Metric0, 0, nil)

	tIdx := allIndices(targets.Len())
	gIdx := allIndices(guesses.Len())

	sg, sInT, err := scalar.Best(tIdx, gIdx, f)
	require.NoError(t, err)
	bg, bInT, err := batched.Best(tIdx, gIdx, f)
	require.NoError(t, err)

	require.Equal(t, sg, bg)
	require.Equal(t, sInT, bInT)
}

func TestBatchedScorer_AgreesWithScalar_TopK(t *testing.T) {
	targetWords := []string{"crane", "apple", "zebra", "slate", "robot"}
	guessWords := append(append([]string{}, targetWords...), "pleas", "tiger")
	targets, guesses, f := buildGame(t, targetWords, guessWords)

	scalar := kernel.NewScalarScorer(kernel.Metric0, 0, nil)
	batched := kernel.NewBatchedScorer(kernel.Metric0, 0, nil)

	tIdx := allIndices(targets.Len())
	gIdx := allIndices(guesses.Len())

	sc, err := scalar.TopK(tIdx, gIdx, f, 3)
	require.NoError(t, err)
	bc, err := batched.TopK(tIdx, gIdx, f, 3)
	require.NoError(t, err)
	require.Equal(t, sc, bc)
}

func TestBatchedScorer_AgreesWithScalar_Metric1(t *testing.T) {
	words := []string{"aaaaa", "aaaab", "aaabb", "aabbb", "abbbb", "bbbbb"}
	targets, guesses, f := buildGame(t, words, words)

	scalar := kernel.NewScalarScorer(kernel.Metric1, 4, nil)
	batched := kernel.NewBatchedScorer(kernel.Metric1, 4, nil)

	tIdx := allIndices(targets.Len())
	gIdx := allIndices(guesses.Len())

	sg, sInT, err := scalar.Best(tIdx, gIdx, f)
	require.NoError(t, err)
	bg, bInT, err := batched.Best(tIdx, gIdx, f)
	require.NoError(t, err)
	require.Equal(t, sg, bg)
	require.Equal(t, sInT, bInT)
}
