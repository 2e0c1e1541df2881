package device

import (
	"math"
	"math/rand"
	"time"

	"github.com/wordletree/wordletree/feedback"
	"github.com/wordletree/wordletree/kernel"
)

// ThresholdAlwaysCPU is the crossover threshold meaning "never use the
// accelerator": any finite workload is smaller than it.
const ThresholdAlwaysCPU = math.MaxInt64

// testPoint is one (|T'|,|G'|) shape in the calibration race ladder.
type testPoint struct{ t, g int }

var calibrationLadder = []testPoint{
	{10, 50},
	{50, 1000},
	{250, 1000},
	{1000, 1000},
	{2000, 2500},
}

const (
	blowoutFactor    = 2.0
	blowoutFloor     = 10 * time.Millisecond
	timeoutThreshold = 500 * time.Millisecond
	crossoverFactor  = 0.9
)

// Calibrate races cpu against accel over the fixed workload ladder,
// clamped to the dataset sizes targetsLen/guessesLen, and returns the
// crossover threshold: the smallest workload at which accel is at
// least 10% faster than cpu. Ties go to CPU (ThresholdAlwaysCPU is the
// default absent a crossover). When the crossover is found at the first
// ladder point's unclamped workload (10*50), the returned threshold is
// 0, so every call goes to accel.
//
// rng drives the synthetic index sampling; pass a seeded *rand.Rand
// for reproducible tests.
func Calibrate(rng *rand.Rand, cpu, accel kernel.Scorer, targetsLen, guessesLen int, f *feedback.Matrix) int64 {
	threshold := int64(ThresholdAlwaysCPU)
	foundCrossover := false

	for _, point := range calibrationLadder {
		nt := point.t
		if nt > targetsLen {
			nt = targetsLen
		}
		ng := point.g
		if ng > guessesLen {
			ng = guessesLen
		}
		if nt == 0 || ng == 0 {
			continue
		}
		workload := int64(nt) * int64(ng)

		tIdx := sampleIndices(rng, targetsLen, nt)
		gIdx := sampleIndices(rng, guessesLen, ng)

		cpuDur := timeBest(cpu, tIdx, gIdx, f)
		accelDur := timeBest(accel, tIdx, gIdx, f)

		if cpuDur > timeoutThreshold || accelDur > timeoutThreshold {
			if float64(accelDur) < float64(cpuDur)*crossoverFactor {
				threshold = workload
				foundCrossover = true
			}
			break
		}

		if float64(accelDur) > float64(cpuDur)*blowoutFactor && cpuDur > blowoutFloor {
			break
		}

		if float64(accelDur) < float64(cpuDur)*crossoverFactor {
			threshold = workload
			foundCrossover = true
			break
		}
	}

	if foundCrossover && threshold == int64(calibrationLadder[0].t*calibrationLadder[0].g) {
		threshold = 0
	}
	return threshold
}

func timeBest(s kernel.Scorer, t, g []int, f *feedback.Matrix) time.Duration {
	start := time.Now()
	_, _, _ = s.Best(t, g, f)
	return time.Since(start)
}

func sampleIndices(rng *rand.Rand, n, k int) []int {
	if k >= n {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:k]
}
