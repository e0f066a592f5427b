package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireMatrixNearlyEqual is RequireSliceNearlyEqual with row/column
// coordinates in the failure message, for row-major matrix buffers.
func RequireMatrixNearlyEqual(t *testing.T, got, want []float64, numRows, numCols int, eps float64) {
	t.Helper()
	if len(got) < numRows*numCols || len(want) < numRows*numCols {
		t.Fatalf("buffer too short for %dx%d matrix: got %d, want %d", numRows, numCols, len(got), len(want))
	}
	for row := 0; row < numRows; row++ {
		for col := 0; col < numCols; col++ {
			i := row*numCols + col
			diff := math.Abs(got[i] - want[i])
			if diff > eps {
				t.Fatalf("(%d,%d): got %v, want %v (diff %v > eps %v)", row, col, got[i], want[i], diff, eps)
			}
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
