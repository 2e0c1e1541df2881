//go:build debugkernel

package kernel

import (
	"fmt"
	"math/rand"

	"github.com/wordletree/wordletree/feedback"
)

// CrossCheck runs both ScalarScorer and BatchedScorer against the same
// randomly sampled (T,G) inputs and returns ErrDisagreement the first
// time they pick different guesses. It is compiled only under the
// debugkernel build tag, matching the specification's debug-mode
// cross-check requirement without paying its cost in production
// builds.
func CrossCheck(rng *rand.Rand, targets, guesses []int, f *feedback.Matrix, metric Metric, trials int) error {
	for trial := 0; trial < trials; trial++ {
		tSize := 3 + rng.Intn(len(targets)-2)
		gSize := 1 + rng.Intn(len(guesses))

		t := sampleDistinct(rng, targets, tSize)
		g := sampleDistinct(rng, guesses, gSize)

		scalar := NewScalarScorer(metric, 0, nil)
		batched := NewBatchedScorer(metric, 0, nil)

		sg, sInT, err := scalar.Best(t, g, f)
		if err != nil {
			return fmt.Errorf("kernel: crosscheck scalar: %w", err)
		}
		bg, bInT, err := batched.Best(t, g, f)
		if err != nil {
			return fmt.Errorf("kernel: crosscheck batched: %w", err)
		}
		if sg != bg || sInT != bInT {
			return fmt.Errorf("%w: scalar=(%d,%v) batched=(%d,%v) trial=%d",
				ErrDisagreement, sg, sInT, bg, bInT, trial)
		}
	}
	return nil
}

func sampleDistinct(rng *rand.Rand, pool []int, n int) []int {
	if n > len(pool) {
		n = len(pool)
	}
	shuffled := append([]int(nil), pool...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:n]
}
