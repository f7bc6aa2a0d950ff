package calculator

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRollingMean_Window2(t *testing.T) {
	values := []float64{10, 20, 15, 25, 30}
	want := []float64{math.NaN(), 15, 17.5, 20, 27.5}

	got := RollingMean(values, 2)
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if math.IsNaN(want[i]) {
			if !math.IsNaN(got[i]) {
				t.Errorf("index %d: expected NaN, got %v", i, got[i])
			}
			continue
		}
		if !almostEqual(got[i], want[i]) {
			t.Errorf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestRollingMean_WindowOne(t *testing.T) {
	values := []float64{5, 3, 8}
	got := RollingMean(values, 1)
	for i := range values {
		if !almostEqual(got[i], values[i]) {
			t.Errorf("index %d: window=1 mean should equal value %v, got %v", i, values[i], got[i])
		}
	}
}

func TestRollingMean_WindowLargerThanData(t *testing.T) {
	got := RollingMean([]float64{1, 2, 3}, 5)
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("index %d: expected NaN when window exceeds data, got %v", i, v)
		}
	}
}

func TestRollingMean_NaNWindowRecovers(t *testing.T) {
	values := []float64{1, math.NaN(), 3, 4, 5}
	got := RollingMean(values, 2)

	// Windows touching the NaN stay NaN; later windows recover.
	for _, i := range []int{0, 1, 2} {
		if !math.IsNaN(got[i]) {
			t.Errorf("index %d: expected NaN, got %v", i, got[i])
		}
	}
	if !almostEqual(got[3], 3.5) {
		t.Errorf("index 3: expected 3.5, got %v", got[3])
	}
	if !almostEqual(got[4], 4.5) {
		t.Errorf("index 4: expected 4.5, got %v", got[4])
	}
}

func TestRollingMean_Empty(t *testing.T) {
	if got := RollingMean(nil, 3); len(got) != 0 {
		t.Errorf("expected empty result for empty input, got %d entries", len(got))
	}
}
