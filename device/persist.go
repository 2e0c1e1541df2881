package device

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// saveAtomic writes v as indented JSON to path via a temp file plus
// rename, so a crash mid-write never leaves a half-written calibration
// file behind.
func saveAtomic(path string, v any) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if runtime.GOOS == "windows" {
		_ = os.Remove(path)
	}
	return os.Rename(tmp, path)
}

// loadCalibrationFile reads the calibration map at path. A missing
// file yields an empty map and no error. A malformed file is treated
// as ErrCalibrationCorrupt — callers tolerate it by discarding the
// contents and re-calibrating rather than aborting the run.
func loadCalibrationFile(path string) (map[string]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]int64{}, nil
		}
		return nil, err
	}

	m := make(map[string]int64)
	if len(data) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string]int64{}, ErrCalibrationCorrupt
	}
	return m, nil
}
