package kernel

import (
	"sort"

	"github.com/wordletree/wordletree/feedback"
	"github.com/wordletree/wordletree/word"
)

// lookaheadEpsilon is the max-depth tie-break weight in the Metric1/2
// subtree score: E[depth] + epsilon*max(depth).
const lookaheadEpsilon = 1e-3

// subtreeScore is the cached result of simulating a candidate's full
// subtree: the per-target depth list's mean and max.
type subtreeScore struct {
	mean float64
	max  int
}

func (s subtreeScore) objective() float64 {
	return s.mean + lookaheadEpsilon*float64(s.max)
}

// scoreSubtree simulates the full subtree rooted at guessing candidate
// against (t, g, f), memoizing on (metric, candidate, sorted t, sorted
// g). metric is carried only as a cache-key discriminant: Metric1 and
// Metric2 share the same simulation, differing only in candidate pool.
func scoreSubtree(metric Metric, candidate int, t, g []int, f *feedback.Matrix, memo *Memo) (subtreeScore, error) {
	key := memoKey(metric, candidate, t, g)
	if memo != nil {
		if cached, ok := memo.get(key); ok {
			return cached, nil
		}
	}

	depths, err := simulateWithGuess(candidate, t, g, f, memo)
	if err != nil {
		return subtreeScore{}, err
	}

	var sum int
	max := 0
	for _, d := range depths {
		sum += d
		if d > max {
			max = d
		}
	}
	score := subtreeScore{mean: float64(sum) / float64(len(depths)), max: max}

	if memo != nil {
		memo.put(key, score)
	}
	return score, nil
}

// simulateDepths returns one depth (in guesses, 1-based) per member of
// t, for the subtree that Metric0-driven play would build over (t, g,
// f). It applies the same |T|<=2 guard the top-level kernel does so
// lookahead simulation matches what the real tree builder would do.
func simulateDepths(t, g []int, f *feedback.Matrix, memo *Memo) ([]int, error) {
	if len(t) == 0 {
		return nil, nil
	}
	if len(t) == 1 {
		return []int{1}, nil
	}

	var key string
	if memo != nil {
		key = depthKey(t, g)
		if cached, ok := memo.getDepths(key); ok {
			return cached, nil
		}
	}

	var depths []int
	if len(t) == 2 {
		d, err := simulateWithGuess(t[0], t, g, f, memo)
		if err != nil {
			return nil, err
		}
		depths = d
	} else {
		guess, _, err := metric0Best(t, g, f)
		if err != nil {
			return nil, err
		}
		d, err := simulateWithGuess(guess, t, g, f, memo)
		if err != nil {
			return nil, err
		}
		depths = d
	}

	if memo != nil {
		memo.putDepths(key, depths)
	}
	return depths, nil
}

// simulateWithGuess partitions t by F[·,guess], recurses on each
// group, and returns the depth list relative to this guess being
// depth 1.
func simulateWithGuess(guess int, t, g []int, f *feedback.Matrix, memo *Memo) ([]int, error) {
	depths := make([]int, 0, len(t))
	groups := make(map[word.Code][]int)
	var codes []word.Code

	for _, ti := range t {
		if ti == guess {
			depths = append(depths, 1)
			continue
		}
		code := f.AtFast(ti, guess)
		if _, seen := groups[code]; !seen {
			codes = append(codes, code)
		}
		groups[code] = append(groups[code], ti)
	}

	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	for _, code := range codes {
		childDepths, err := simulateDepths(groups[code], g, f, memo)
		if err != nil {
			return nil, err
		}
		for _, d := range childDepths {
			depths = append(depths, d+1)
		}
	}
	return depths, nil
}
