package boxblur

const (
	// DefaultWindowDivisor is the denominator of the default window-size
	// rule: a dimension of n pixels gets a window of ceil(n/128).
	DefaultWindowDivisor = 128

	// DefaultPasses is the default number of row+column blur repetitions.
	// Two passes give a close Gaussian approximation for most uses.
	DefaultPasses = 2
)

// WindowSizeForDimension returns the default box window size for a matrix
// dimension of dim elements: ceil(dim / DefaultWindowDivisor), never
// smaller than 1 for dim >= 1.
func WindowSizeForDimension(dim int) int {
	return (dim + DefaultWindowDivisor - 1) / DefaultWindowDivisor
}

// Smooth applies nreps repetitions of the separable box blur to the
// matrix in bufA, using bufB as scratch: each repetition filters rows
// from bufA into bufB with windowRows, then columns from bufB back into
// bufA with windowCols. The smoothed result is left in bufA; the final
// contents of bufB are scratch, not a meaningful result.
//
// bufA and bufB must be distinct buffers of at least numRows*numCols
// elements. nreps = 0 leaves bufA untouched. Zero-alloc.
func Smooth(bufA, bufB []float64, numRows, numCols, windowRows, windowCols, nreps int) error {
	if nreps < 0 {
		return ErrInvalidPasses
	}
	if err := validateMatrix(bufA, bufB, numRows, numCols); err != nil {
		return err
	}
	if windowRows < 1 || windowRows > numCols {
		return ErrInvalidWindowSize
	}
	if windowCols < 1 || windowCols > numRows {
		return ErrInvalidWindowSize
	}

	box1DInitOnce.Do(initBox1DKernel)

	for rep := 0; rep < nreps; rep++ {
		for row := 0; row < numRows; row++ {
			offset := row * numCols
			box1DImpl(bufB[offset:], bufA[offset:], numCols, 1, windowRows)
		}

		for col := 0; col < numCols; col++ {
			box1DImpl(bufA[col:], bufB[col:], numRows, numCols, windowCols)
		}
	}

	return nil
}
