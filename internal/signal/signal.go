package signal

// Crossover derives the binary crossover signal: 1 where the value strictly
// exceeds its trailing mean, else 0. NaN comparisons are never greater, so
// rows with an undefined rolling mean always yield 0.
func Crossover(values, rollingMean []float64) []int {
	signals := make([]int, len(values))
	for i := range values {
		if values[i] > rollingMean[i] {
			signals[i] = 1
		}
	}
	return signals
}

// Rate returns the fraction of rows with signal 1.
func Rate(signals []int) float64 {
	if len(signals) == 0 {
		return 0
	}
	count := 0
	for _, s := range signals {
		count += s
	}
	return float64(count) / float64(len(signals))
}
