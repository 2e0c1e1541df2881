package kernel

import (
	"errors"

	"github.com/wordletree/wordletree/feedback"
)

// Metric is a closed enumeration of the scoring objectives a Scorer
// may implement. Adding a new metric is a code change, not a runtime
// plugin registration, per the specification's "closed enumeration"
// design note.
type Metric int

const (
	// Metric0 picks the guess minimizing expected residual partition size.
	Metric0 Metric = iota
	// Metric1 ranks by Metric0, then looks ahead over the top-k candidates.
	Metric1
	// Metric2 is Metric1 with the candidate pool widened to all of G.
	Metric2
)

// String returns the metric's calibration-key-friendly name.
func (m Metric) String() string {
	switch m {
	case Metric0:
		return "metric0"
	case Metric1:
		return "metric1"
	case Metric2:
		return "metric2"
	default:
		return "metric_unknown"
	}
}

var (
	// ErrEmptyTargetSet is returned when T is empty; a kernel cannot pick
	// a guess with nothing left to distinguish.
	ErrEmptyTargetSet = errors.New("kernel: target set is empty")

	// ErrEmptyGuessSet is returned when G is empty.
	ErrEmptyGuessSet = errors.New("kernel: guess set is empty")

	// ErrInvalidK is returned when k <= 0 for a top-k request.
	ErrInvalidK = errors.New("kernel: k must be > 0")

	// ErrDisagreement is returned by CrossCheck (debugkernel builds
	// only) when the scalar and batched scorers pick different guesses
	// for the same input.
	ErrDisagreement = errors.New("kernel: scalar and batched scorers disagree")
)

// Candidate is one entry of a TopK result: a guess index, its score
// (lower is better), and whether it is itself a member of T.
type Candidate struct {
	Index int
	InT   bool
	Score float64
}

// Scorer chooses a best guess, or a ranked top-k of candidates, from a
// target/guess partition and the feedback matrix relating them.
type Scorer interface {
	// Best returns the winning guess index and whether it belongs to T.
	Best(t, g []int, f *feedback.Matrix) (guess int, inT bool, err error)

	// TopK returns the k lowest-scoring candidates, stable-sorted by
	// ascending guess index on ties.
	TopK(t, g []int, f *feedback.Matrix, k int) ([]Candidate, error)
}
