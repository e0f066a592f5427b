package boxblur

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-boxblur/internal/testutil"
)

func TestSmooth_AllOnesStaysAllOnes(t *testing.T) {
	const numRows, numCols = 4, 4
	bufA := testutil.Ones(numRows * numCols)
	bufB := make([]float64, numRows*numCols)

	if err := Smooth(bufA, bufB, numRows, numCols, 3, 3, 1); err != nil {
		t.Fatal(err)
	}

	testutil.RequireMatrixNearlyEqual(t, bufA, testutil.Ones(numRows*numCols), numRows, numCols, eps)
}

func TestSmooth_ZeroPassesLeavesInputUntouched(t *testing.T) {
	const numRows, numCols = 8, 13
	bufA := testutil.DeterministicNoise(17, 1.0, numRows*numCols)
	orig := append([]float64(nil), bufA...)
	bufB := make([]float64, numRows*numCols)

	if err := Smooth(bufA, bufB, numRows, numCols, 3, 3, 0); err != nil {
		t.Fatal(err)
	}

	for i := range bufA {
		if bufA[i] != orig[i] {
			t.Fatalf("index %d modified: got %v, want %v", i, bufA[i], orig[i])
		}
	}
}

func TestSmooth_MatchesManualPassSequence(t *testing.T) {
	const numRows, numCols = 19, 23
	const windowRows, windowCols = 4, 3
	const nreps = 3

	bufA := testutil.DeterministicNoise(29, 1.0, numRows*numCols)
	bufB := make([]float64, numRows*numCols)

	wantA := append([]float64(nil), bufA...)
	wantB := make([]float64, numRows*numCols)

	if err := Smooth(bufA, bufB, numRows, numCols, windowRows, windowCols, nreps); err != nil {
		t.Fatal(err)
	}

	for rep := 0; rep < nreps; rep++ {
		if err := FilterRows(wantB, wantA, numRows, numCols, windowRows); err != nil {
			t.Fatal(err)
		}
		if err := FilterCols(wantA, wantB, numRows, numCols, windowCols); err != nil {
			t.Fatal(err)
		}
	}

	testutil.RequireMatrixNearlyEqual(t, bufA, wantA, numRows, numCols, 0)
}

func TestSmooth_SmoothsSpikeSymmetrically(t *testing.T) {
	// A centered spike blurred with odd windows must stay symmetric in
	// both axes.
	const numRows, numCols = 9, 9
	bufA := make([]float64, numRows*numCols)
	bufA[4*numCols+4] = 100
	bufB := make([]float64, numRows*numCols)

	if err := Smooth(bufA, bufB, numRows, numCols, 3, 3, 2); err != nil {
		t.Fatal(err)
	}

	testutil.RequireFinite(t, bufA)

	// Mirrored positions accumulate their sums in opposite order, so
	// allow last-ulp differences.
	for row := 0; row < numRows; row++ {
		for col := 0; col < numCols; col++ {
			mirrored := bufA[(numRows-1-row)*numCols+(numCols-1-col)]
			if diff := bufA[row*numCols+col] - mirrored; diff > eps || diff < -eps {
				t.Fatalf("(%d,%d) = %v, mirror = %v", row, col, bufA[row*numCols+col], mirrored)
			}
		}
	}

	if bufA[4*numCols+4] <= bufA[4*numCols+3] {
		t.Fatal("center no longer the maximum after blur")
	}
}

func TestSmooth_Validation(t *testing.T) {
	bufA := make([]float64, 12)
	bufB := make([]float64, 12)

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{
			name:    "negative passes",
			run:     func() error { return Smooth(bufA, bufB, 3, 4, 1, 1, -1) },
			wantErr: ErrInvalidPasses,
		},
		{
			name:    "aliased ping-pong buffers",
			run:     func() error { return Smooth(bufA, bufA, 3, 4, 1, 1, 1) },
			wantErr: ErrAliasedBuffers,
		},
		{
			name:    "row window too large",
			run:     func() error { return Smooth(bufA, bufB, 3, 4, 5, 1, 1) },
			wantErr: ErrInvalidWindowSize,
		},
		{
			name:    "column window too large",
			run:     func() error { return Smooth(bufA, bufB, 3, 4, 1, 4, 1) },
			wantErr: ErrInvalidWindowSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWindowSizeForDimension(t *testing.T) {
	tests := []struct {
		dim, want int
	}{
		{1, 1},
		{64, 1},
		{127, 1},
		{128, 1},
		{129, 2},
		{512, 4},
		{1024, 8},
	}

	for _, tt := range tests {
		if got := WindowSizeForDimension(tt.dim); got != tt.want {
			t.Errorf("WindowSizeForDimension(%d) = %d, want %d", tt.dim, got, tt.want)
		}
	}
}
