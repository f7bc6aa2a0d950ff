package calculator

import "math"

// RollingMean computes the trailing moving average of values over the given
// window. Entry i is the arithmetic mean of values[i-window+1 .. i]; entries
// before index window-1 are NaN. A NaN inside a window makes exactly the
// windows containing it NaN, so each window is summed independently.
func RollingMean(values []float64, window int) []float64 {
	means := make([]float64, len(values))
	for i := range values {
		if i < window-1 {
			means[i] = math.NaN()
			continue
		}
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += values[j]
		}
		means[i] = sum / float64(window)
	}
	return means
}
