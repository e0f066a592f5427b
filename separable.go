package boxblur

// FilterRows applies the 1D box filter independently to every row of a
// row-major numRows x numCols matrix. Each row is a contiguous sequence
// of numCols samples. dst and src must be distinct buffers of at least
// numRows*numCols elements. Zero-alloc.
func FilterRows(dst, src []float64, numRows, numCols, windowSize int) error {
	if err := validateMatrix(dst, src, numRows, numCols); err != nil {
		return err
	}
	if windowSize < 1 || windowSize > numCols {
		return ErrInvalidWindowSize
	}

	box1DInitOnce.Do(initBox1DKernel)

	for row := 0; row < numRows; row++ {
		offset := row * numCols
		box1DImpl(dst[offset:], src[offset:], numCols, 1, windowSize)
	}

	return nil
}

// FilterCols applies the 1D box filter independently to every column of a
// row-major numRows x numCols matrix. Each column is a strided sequence
// of numRows samples with stride numCols. dst and src must be distinct
// buffers of at least numRows*numCols elements. Zero-alloc.
func FilterCols(dst, src []float64, numRows, numCols, windowSize int) error {
	if err := validateMatrix(dst, src, numRows, numCols); err != nil {
		return err
	}
	if windowSize < 1 || windowSize > numRows {
		return ErrInvalidWindowSize
	}

	box1DInitOnce.Do(initBox1DKernel)

	for col := 0; col < numCols; col++ {
		box1DImpl(dst[col:], src[col:], numRows, numCols, windowSize)
	}

	return nil
}
