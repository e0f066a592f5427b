package boxblur

import (
	"errors"
	"sync"

	archregistry "github.com/cwbudde/algo-boxblur/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Errors returned by the filter entry points.
var (
	ErrShortBuffer       = errors.New("boxblur: buffer shorter than described sequence")
	ErrInvalidStride     = errors.New("boxblur: stride must be >= 1")
	ErrInvalidWindowSize = errors.New("boxblur: window size must be in [1, length]")
	ErrInvalidDimensions = errors.New("boxblur: dimensions must be >= 1")
	ErrInvalidPasses     = errors.New("boxblur: number of passes must be >= 0")
	ErrAliasedBuffers    = errors.New("boxblur: input and output buffers must be distinct")
)

var (
	box1DImpl     archregistry.Box1DFn
	box1DInitOnce sync.Once
)

func initBox1DKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("boxblur: no box1D kernel registered (missing generic fallback?)")
	}

	if entry.Box1D == nil {
		panic("boxblur: selected kernel missing Box1D")
	}

	box1DImpl = entry.Box1D
}

// SelectedKernel returns the name of the kernel implementation chosen for
// the current CPU ("generic", "avx2", "neon").
func SelectedKernel() string {
	box1DInitOnce.Do(initBox1DKernel)

	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		return ""
	}
	return entry.Name
}

// Filter1D applies one moving-average pass to a strided sequence.
//
// The sequence is described by (length, stride): sample i lives at index
// i*stride of src, and the result is written to the same positions of
// dst. With stride 1 this filters a contiguous row; with stride numCols
// it filters one column of a row-major matrix.
//
// For each position i the output is the mean of the input samples in the
// window [i+h-windowSize, i+h-1] intersected with [0, length), where
// h = (windowSize+2)/2. The window shrinks at the boundaries; the divisor
// is always the count of contributing samples. Zero-alloc.
func Filter1D(dst, src []float64, length, stride, windowSize int) error {
	if err := validateSequence(dst, src, length, stride, windowSize); err != nil {
		return err
	}
	if length == 0 {
		return nil
	}

	box1DInitOnce.Do(initBox1DKernel)
	box1DImpl(dst, src, length, stride, windowSize)

	return nil
}

func validateSequence(dst, src []float64, length, stride, windowSize int) error {
	if length < 0 {
		return ErrInvalidDimensions
	}
	if length == 0 {
		return nil
	}
	if stride < 1 {
		return ErrInvalidStride
	}
	if windowSize < 1 || windowSize > length {
		return ErrInvalidWindowSize
	}

	need := (length-1)*stride + 1
	if len(src) < need || len(dst) < need {
		return ErrShortBuffer
	}
	if &dst[0] == &src[0] {
		return ErrAliasedBuffers
	}

	return nil
}

func validateMatrix(dst, src []float64, numRows, numCols int) error {
	if numRows < 1 || numCols < 1 {
		return ErrInvalidDimensions
	}

	need := numRows * numCols
	if len(src) < need || len(dst) < need {
		return ErrShortBuffer
	}
	if &dst[0] == &src[0] {
		return ErrAliasedBuffers
	}

	return nil
}
