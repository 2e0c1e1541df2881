package kernel

import (
	"fmt"
	"sort"

	"github.com/wordletree/wordletree/feedback"
)

// DefaultTopK is the candidate-pool size Metric1 uses when the caller
// does not specify one explicitly.
const DefaultTopK = 12

// ScalarScorer is the reference scoring kernel: one oracle-matrix
// lookup per (target, guess) pair, no vectorization. Every other
// Scorer must agree with it bit-for-bit on the winning guess.
//
// Its distinct-code counter reuses a single generation-stamped scratch
// buffer across every guess column of every call, so scoring n guesses
// touches the 243-entry buffer O(n) times total instead of clearing it
// between columns — the workspace-reuse discipline described for the
// kernel package's hot loops.
type ScalarScorer struct {
	metric Metric
	k      int
	memo   *Memo

	seenGen    [hardModeCodes]int32
	generation int32
}

const hardModeCodes = 243

// NewScalarScorer constructs a ScalarScorer for the given metric. k is
// only consulted for Metric1 and falls back to DefaultTopK when <= 0.
// memo may be nil to disable subtree-score caching.
func NewScalarScorer(metric Metric, k int, memo *Memo) *ScalarScorer {
	if k <= 0 {
		k = DefaultTopK
	}
	return &ScalarScorer{metric: metric, k: k, memo: memo}
}

// Best implements Scorer.
func (s *ScalarScorer) Best(t, g []int, f *feedback.Matrix) (int, bool, error) {
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
		// Open question (spec.md §9): the reference source returns T[0]
		// without comparing scores for |T|=2. Kept for determinism.
		return t[0], true, nil
	}

	switch s.metric {
	case Metric0:
		return s.metric0BestFast(t, g, f)
	case Metric1:
		return s.lookaheadBest(t, g, f, s.k)
	case Metric2:
		return s.lookaheadBest(t, g, f, len(g))
	default:
		return 0, false, fmt.Errorf("kernel: unknown metric %d", s.metric)
	}
}

// TopK implements Scorer. It always ranks by Metric0, per the
// specification's "get_best_guesses" definition used to prune
// candidates for Metric1/2.
func (s *ScalarScorer) TopK(t, g []int, f *feedback.Matrix, k int) ([]Candidate, error) {
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

// lookaheadBest ranks candidates by Metric0, restricts to the top
// poolSize of them, simulates each candidate's full subtree, and
// returns the one with the lowest E[depth]+epsilon*max(depth).
func (s *ScalarScorer) lookaheadBest(t, g []int, f *feedback.Matrix, poolSize int) (int, bool, error) {
	ranked, err := s.metric0ScoresSorted(t, g, f)
	if err != nil {
		return 0, false, err
	}
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

// metric0ScoresSorted returns every candidate's Metric0 score, sorted
// ascending with ties broken by lowest guess index.
func (s *ScalarScorer) metric0ScoresSorted(t, g []int, f *feedback.Matrix) ([]Candidate, error) {
	scores, err := s.metric0Scores(t, g, f)
	if err != nil {
		return nil, err
	}
	sortCandidates(scores)
	return scores, nil
}

// metric0Scores computes, for every g in the candidate pool, the
// Metric0 score (n - 1[g in T]) / |distinct codes|.
func (s *ScalarScorer) metric0Scores(t, g []int, f *feedback.Matrix) ([]Candidate, error) {
	inT := membershipSet(t)
	n := len(t)

	out := make([]Candidate, len(g))
	for j, gj := range g {
		s.generation++
		distinct := 0
		for _, ti := range t {
			code := f.AtFast(ti, gj)
			if s.seenGen[code] != s.generation {
				s.seenGen[code] = s.generation
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

// metric0BestFast scans candidates in order and stops as soon as it
// finds a guess that splits T into |T| distinct partitions and is
// itself a target: that score is the theoretical floor, so nothing
// later in g can beat it. Ties go to the lowest guess index; the early
// stop is taken only when g is in ascending order, where the first
// floor found is also the lowest-index one. Pruning short-circuit,
// grounded on guess_selection_utils.py's early-return-on-perfect-split
// behavior.
func (s *ScalarScorer) metric0BestFast(t, g []int, f *feedback.Matrix) (int, bool, error) {
	inT := membershipSet(t)
	n := len(t)
	ascending := sort.IntsAreSorted(g)

	bestIdx := -1
	bestInT := false
	bestScore := 0.0
	for _, gj := range g {
		s.generation++
		distinct := 0
		for _, ti := range t {
			code := f.AtFast(ti, gj)
			if s.seenGen[code] != s.generation {
				s.seenGen[code] = s.generation
				distinct++
			}
		}
		member := inT[gj]
		num := n
		if member {
			num--
		}
		score := float64(num) / float64(distinct)
		if bestIdx == -1 || score < bestScore || (score == bestScore && gj < bestIdx) {
			bestIdx, bestInT, bestScore = gj, member, score
		}
		if ascending && member && distinct == n {
			break
		}
	}
	return bestIdx, bestInT, nil
}

// metric0Best is the package-level Metric0 decision used both by
// the subtree simulator's downstream choices and by tests comparing
// against the full, non-short-circuited scan.
func metric0Best(t, g []int, f *feedback.Matrix) (int, bool, error) {
	sc := NewScalarScorer(Metric0, 0, nil)
	scores, err := sc.metric0Scores(t, g, f)
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

func membershipSet(t []int) map[int]bool {
	set := make(map[int]bool, len(t))
	for _, ti := range t {
		set[ti] = true
	}
	return set
}

func sortCandidates(c []Candidate) {
	sort.SliceStable(c, func(i, j int) bool {
		if c[i].Score != c[j].Score {
			return c[i].Score < c[j].Score
		}
		return c[i].Index < c[j].Index
	})
}
