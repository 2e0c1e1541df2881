package device

import (
	"errors"
	"math/rand"

	"github.com/wordletree/wordletree/feedback"
	"github.com/wordletree/wordletree/kernel"
)

// Optimizer dispatches scoring calls between a CPU scorer and an
// accelerator scorer, using a calibrated workload threshold. With the
// accelerator disabled it always uses cpu and never touches the
// calibration file, matching Scenario E's "--cpu leaves the threshold
// file untouched" requirement.
//
// There is no physical cross-device memory boundary in this
// implementation (see kernel.BatchedScorer's doc for why it stands in
// for a real accelerator), so Dispatch reduces to a pure workload
// comparison rather than the reference system's data-residency check.
type Optimizer struct {
	cpu   kernel.Scorer
	accel kernel.Scorer

	acceleratorEnabled bool
	threshold          int64
	calibrationKey     string
	calibrationPath    string
}

// NewOptimizer constructs an Optimizer. calibrationKey should come
// from CalibrationKey; calibrationPath is where the threshold map is
// persisted (ignored entirely when acceleratorEnabled is false).
func NewOptimizer(cpu, accel kernel.Scorer, acceleratorEnabled bool, calibrationKey, calibrationPath string) *Optimizer {
	return &Optimizer{
		cpu:                cpu,
		accel:              accel,
		acceleratorEnabled: acceleratorEnabled,
		threshold:          ThresholdAlwaysCPU,
		calibrationKey:     calibrationKey,
		calibrationPath:    calibrationPath,
	}
}

// EnsureCalibrated loads a cached threshold for this Optimizer's
// calibration key, or runs Calibrate and persists the result if none
// is cached. It is a no-op when the accelerator is disabled.
func (o *Optimizer) EnsureCalibrated(rng *rand.Rand, targetsLen, guessesLen int, f *feedback.Matrix) error {
	if !o.acceleratorEnabled {
		o.threshold = ThresholdAlwaysCPU
		return nil
	}

	cached, err := loadCalibrationFile(o.calibrationPath)
	if err != nil && !errors.Is(err, ErrCalibrationCorrupt) {
		return err
	}
	if v, ok := cached[o.calibrationKey]; ok {
		o.threshold = v
		return nil
	}

	threshold := Calibrate(rng, o.cpu, o.accel, targetsLen, guessesLen, f)
	o.threshold = threshold

	cached[o.calibrationKey] = threshold
	return saveAtomic(o.calibrationPath, cached)
}

// Threshold returns the currently active crossover threshold.
func (o *Optimizer) Threshold() int64 { return o.threshold }

// Dispatch scores (t, g, f) with whichever back-end the workload and
// calibrated threshold select.
func (o *Optimizer) Dispatch(t, g []int, f *feedback.Matrix) (guess int, inT bool, err error) {
	if !o.acceleratorEnabled {
		return o.cpu.Best(t, g, f)
	}
	workload := int64(len(t)) * int64(len(g))
	if workload < o.threshold {
		return o.cpu.Best(t, g, f)
	}
	return o.accel.Best(t, g, f)
}
