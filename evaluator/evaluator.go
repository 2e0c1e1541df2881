package evaluator

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/wordletree/wordletree/feedback"
	"github.com/wordletree/wordletree/tree"
	"github.com/wordletree/wordletree/word"
)

// CorruptionError reports a TreeCorruption (spec.md §7): the evaluator
// walked off the tree because a vertex had no outgoing edge for the
// feedback code a target actually produced.
type CorruptionError struct {
	Target   int
	VertexID int
	Code     word.Code
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("evaluator: tree corruption at target %d, vertex %d: no edge for code %d",
		e.Target, e.VertexID, e.Code)
}

// Report summarizes one Evaluate run.
type Report struct {
	Mean          float64
	StdDev        float64
	Max           int
	Histogram     map[int]int
	BuildDuration time.Duration
	VertexCount   int
	FirstGuess    string
}

// String renders Report in the reference printer's shape: a short
// summary line followed by a depth histogram.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "first guess: %s | vertices: %d | build: %s\n", r.FirstGuess, r.VertexCount, r.BuildDuration)
	fmt.Fprintf(&b, "E[depth]=%.4f  stdev=%.4f  max=%d\n", r.Mean, r.StdDev, r.Max)

	depths := make([]int, 0, len(r.Histogram))
	for d := range r.Histogram {
		depths = append(depths, d)
	}
	sort.Ints(depths)
	for _, d := range depths {
		fmt.Fprintf(&b, "  depth %d: %d\n", d, r.Histogram[d])
	}
	return b.String()
}

// Evaluate walks t for every target in [0, targets.Len()) and returns
// the resulting depth Report. guesses resolves vertex guess indices
// back to words (the root guess need not itself be a target).
// buildDuration is carried through from the tree.Stats the builder
// produced.
func Evaluate(t *tree.Tree, targets, guesses *word.Set, f *feedback.Matrix, buildDuration time.Duration) (Report, error) {
	n := targets.Len()
	depths := make([]int, 0, n)

	for target := 0; target < n; target++ {
		depth, err := walkToTarget(t, target, f)
		if err != nil {
			return Report{}, err
		}
		depths = append(depths, depth)
	}

	return summarize(depths, t, guesses, buildDuration), nil
}

func walkToTarget(t *tree.Tree, target int, f *feedback.Matrix) (int, error) {
	v := t.Vertices[t.Root]
	depth := 0
	for {
		depth++
		if v.Guess == target {
			return depth, nil
		}
		code, err := f.At(target, v.Guess)
		if err != nil {
			return 0, fmt.Errorf("evaluator: target %d: %w", target, err)
		}
		childID, ok := v.Children[code]
		if !ok {
			return 0, &CorruptionError{Target: target, VertexID: v.ID, Code: code}
		}
		v = t.Vertices[childID]
	}
}

func summarize(depths []int, t *tree.Tree, guesses *word.Set, buildDuration time.Duration) Report {
	histogram := make(map[int]int)
	var sum, max int
	for _, d := range depths {
		histogram[d]++
		sum += d
		if d > max {
			max = d
		}
	}
	n := float64(len(depths))
	mean := float64(sum) / n

	var variance float64
	for _, d := range depths {
		diff := float64(d) - mean
		variance += diff * diff
	}
	variance /= n

	root := t.Vertices[t.Root]
	return Report{
		Mean:          mean,
		StdDev:        math.Sqrt(variance),
		Max:           max,
		Histogram:     histogram,
		BuildDuration: buildDuration,
		VertexCount:   len(t.Vertices),
		FirstGuess:    guesses.Word(root.Guess),
	}
}
