package device

import (
	"fmt"

	"github.com/wordletree/wordletree/kernel"
)

// CalibrationKey builds the persisted-threshold lookup key for a given
// metric/k/kernel combination, in the "metric_<id>[_k<k>]_<kernel-name>"
// shape spec.md §6 requires. k is only encoded for Metric1, mirroring
// the reference implementation's "k only matters for Metric1" rule.
func CalibrationKey(metric kernel.Metric, k int, kernelName string) string {
	if metric == kernel.Metric1 {
		return fmt.Sprintf("metric_%d_k%d_%s", int(metric), k, kernelName)
	}
	return fmt.Sprintf("metric_%d_%s", int(metric), kernelName)
}
