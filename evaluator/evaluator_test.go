package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordletree/wordletree/device"
	"github.com/wordletree/wordletree/evaluator"
	"github.com/wordletree/wordletree/feedback"
	"github.com/wordletree/wordletree/kernel"
	"github.com/wordletree/wordletree/tree"
	"github.com/wordletree/wordletree/word"
)

func buildTinyTree(t *testing.T) (*tree.Tree, tree.Stats, *word.Set, *feedback.Matrix) {
	t.Helper()
	words := []string{"aaaaa", "aaaab", "aaabb", "aabbb", "abbbb", "bbbbb"}
	set, err := word.NewSet(words)
	require.NoError(t, err)
	f, err := feedback.BuildScalar(set, set)
	require.NoError(t, err)

	cpu := kernel.NewScalarScorer(kernel.Metric0, 0, nil)
	accel := kernel.NewBatchedScorer(kernel.Metric0, 0, nil)
	opt := device.NewOptimizer(cpu, accel, false, "k", "")
	require.NoError(t, opt.EnsureCalibrated(nil, 0, 0, nil))

	tr, stats, err := tree.Build(set, set, f, tree.WithOptimizer(opt))
	require.NoError(t, err)
	return tr, stats, set, f
}

func TestEvaluate_TreeCompleteness(t *testing.T) {
	tr, stats, set, f := buildTinyTree(t)
	report, err := evaluator.Evaluate(tr, set, set, f, stats.Duration)
	require.NoError(t, err)

	var total int
	for _, count := range report.Histogram {
		total += count
	}
	require.Equal(t, set.Len(), total)
	require.Equal(t, set.Len(), sumHistogramMembership(report))
}

func sumHistogramMembership(r evaluator.Report) int {
	sum := 0
	for _, c := range r.Histogram {
		sum += c
	}
	return sum
}

func TestEvaluate_DepthBound(t *testing.T) {
	tr, stats, set, f := buildTinyTree(t)
	report, err := evaluator.Evaluate(tr, set, set, f, stats.Duration)
	require.NoError(t, err)
	require.LessOrEqual(t, report.Mean, 3.0)
	require.LessOrEqual(t, report.Max, 4)
}

func TestEvaluate_ReportFields(t *testing.T) {
	tr, stats, set, f := buildTinyTree(t)
	report, err := evaluator.Evaluate(tr, set, set, f, stats.Duration)
	require.NoError(t, err)
	require.Equal(t, stats.VertexCount, report.VertexCount)
	require.Equal(t, set.Word(tr.Vertices[tr.Root].Guess), report.FirstGuess)
	require.NotEmpty(t, report.String())
}

func TestEvaluate_TreeCorruption(t *testing.T) {
	tr, stats, set, f := buildTinyTree(t)
	// Corrupt the root's outgoing edges to force a missing-edge error.
	tr.Vertices[tr.Root].Children = map[word.Code]int{}

	_, err := evaluator.Evaluate(tr, set, set, f, stats.Duration)
	require.Error(t, err)
	var corruption *evaluator.CorruptionError
	require.ErrorAs(t, err, &corruption)
}
