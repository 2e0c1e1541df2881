package kernel

import (
	"fmt"

	"github.com/wordletree/wordletree/feedback"
)

// BatchedScorer computes Metric0 with the histogram-scatter numeric
// shape from the specification's "batched path": gather F[T,G] into a
// slab, scatter-increment a flat 243*|G| histogram, then derive
// per-column distinct-code counts from nonzero bins. It stands in for
// the reference system's accelerator kernel — this module carries no
// cgo or GPU binding, so the "accelerator" is this vectorized,
// batch-oriented Go implementation rather than a second physical
// device (see device.Optimizer's documentation for the dispatch
// consequences of that choice).
//
// BatchedScorer must return the same winning guess as ScalarScorer for
// every input; the histogram buffer is reused across calls rather than
// reallocated, matching the workspace-reuse discipline spec.md §9
// requires of both kernel back-ends.
type BatchedScorer struct {
	metric Metric
	k      int
	memo   *Memo

	histogram []int32 // reused, resized to 243*len(g) on each call
}

// NewBatchedScorer constructs a BatchedScorer for the given metric. k
// and memo behave as in NewScalarScorer.
func NewBatchedScorer(metric Metric, k int, memo *Memo) *BatchedScorer {
	if k <= 0 {
		k = DefaultTopK
	}
	return &BatchedScorer{metric: metric, k: k, memo: memo}
}

// Best implements Scorer.
func (s *BatchedScorer) Best(t, g []int, f *feedback.Matrix) (int, bool, error) {
	if len(t) == 0 {
		return 0, false, ErrEmptyTargetSet
	}
	if len(g) == 0 {
		return 0, false, ErrEmptyGuessSet
	}
	if len(t) == 1 {
		return t[0], true, nil
	}
	if len(t) == 2 {
		return t[0], true, nil
	}

	switch s.metric {
	case Metric0:
		return s.metric0Best(t, g, f)
	case Metric1:
		return s.lookaheadBest(t, g, f, s.k)
	case Metric2:
		return s.lookaheadBest(t, g, f, len(g))
	default:
		return 0, false, fmt.Errorf("kernel: unknown metric %d", s.metric)
	}
}

// TopK implements Scorer.
func (s *BatchedScorer) TopK(t, g []int, f *feedback.Matrix, k int) ([]Candidate, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(t) == 0 {
		return nil, ErrEmptyTargetSet
	}
	if len(g) == 0 {
		return nil, ErrEmptyGuessSet
	}
	scores, err := s.metric0Scores(t, g, f)
	if err != nil {
		return nil, err
	}
	sortCandidates(scores)
	if k > len(scores) {
		k = len(scores)
	}
	return scores[:k], nil
}

func (s *BatchedScorer) lookaheadBest(t, g []int, f *feedback.Matrix, poolSize int) (int, bool, error) {
	ranked, err := s.metric0Scores(t, g, f)
	if err != nil {
		return 0, false, err
	}
	sortCandidates(ranked)
	if poolSize > len(ranked) {
		poolSize = len(ranked)
	}
	pool := ranked[:poolSize]

	bestIdx := -1
	bestInT := false
	var bestScore float64
	for _, cand := range pool {
		sc, err := scoreSubtree(s.metric, cand.Index, t, g, f, s.memo)
		if err != nil {
			return 0, false, err
		}
		obj := sc.objective()
		if bestIdx == -1 || obj < bestScore || (obj == bestScore && cand.Index < bestIdx) {
			bestIdx = cand.Index
			bestInT = cand.InT
			bestScore = obj
		}
	}
	return bestIdx, bestInT, nil
}

func (s *BatchedScorer) metric0Best(t, g []int, f *feedback.Matrix) (int, bool, error) {
	scores, err := s.metric0Scores(t, g, f)
	if err != nil {
		return 0, false, err
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Score < scores[best].Score ||
			(scores[i].Score == scores[best].Score && scores[i].Index < scores[best].Index) {
			best = i
		}
	}
	return scores[best].Index, scores[best].InT, nil
}

// metric0Scores implements the specification's numeric kernel shape
// literally: gather S = F[T,G], scatter idx = S[i,j] + 243*j into a
// flat histogram, then count nonzero bins per column.
func (s *BatchedScorer) metric0Scores(t, g []int, f *feedback.Matrix) ([]Candidate, error) {
	need := hardModeCodes * len(g)
	if cap(s.histogram) < need {
		s.histogram = make([]int32, need)
	} else {
		s.histogram = s.histogram[:need]
		for i := range s.histogram {
			s.histogram[i] = 0
		}
	}

	inT := membershipSet(t)
	n := len(t)

	for j, gj := range g {
		base := hardModeCodes * j
		for _, ti := range t {
			code := f.AtFast(ti, gj)
			s.histogram[base+int(code)]++
		}
	}

	out := make([]Candidate, len(g))
	for j, gj := range g {
		base := hardModeCodes * j
		distinct := 0
		for c := 0; c < hardModeCodes; c++ {
			if s.histogram[base+c] > 0 {
				distinct++
			}
		}
		member := inT[gj]
		num := n
		if member {
			num--
		}
		out[j] = Candidate{Index: gj, InT: member, Score: float64(num) / float64(distinct)}
	}
	return out, nil
}
