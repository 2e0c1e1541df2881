package device

import "errors"

// ErrAcceleratorUnavailable is a ResourceError (spec.md §7): the
// accelerator back-end could not be constructed or used. Callers fall
// back to the CPU path and continue.
var ErrAcceleratorUnavailable = errors.New("device: accelerator unavailable")

// ErrCalibrationCorrupt indicates the persisted calibration file could
// not be parsed. Treated as absent; the optimizer re-calibrates.
var ErrCalibrationCorrupt = errors.New("device: calibration file corrupt")
