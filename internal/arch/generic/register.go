// Package generic provides the pure Go fallback box-filter kernel.
package generic

import (
	"github.com/cwbudde/algo-boxblur/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Box1D:     Box1D,
	})
}

// Box1D applies one moving-average pass to a strided sequence.
//
// The filter runs in four phases over a single running sum:
//
//  1. accumulate the first halfWindow-1 samples, no output
//  2. grow the window to full size, dividing by the current count
//  3. slide the full window, scaling by a precomputed reciprocal
//  4. shrink the window at the right edge, dividing by the current count
//
// Phase 3 is the O(1)-per-sample core and is unrolled eight steps at a
// time through a serial recurrence; the remainder runs single-step. Both
// forms multiply by the same reciprocal, so their outputs are bit-identical.
func Box1D(dst, src []float64, length, stride, fullWindowSize int) {
	halfWindowSize := (fullWindowSize + 2) / 2
	phase1Nreps := halfWindowSize - 1
	phase2Nreps := fullWindowSize - halfWindowSize + 1
	phase3Nreps := length - fullWindowSize
	phase4Nreps := halfWindowSize - 1

	li := 0 // left edge of the read window
	ri := 0 // right edge of the read window
	oi := 0 // output position
	sum := 0.0
	currentWindowSize := 0.0

	// Phase 1: initial accumulation, no output.
	for i := 0; i < phase1Nreps; i++ {
		sum += src[ri]
		currentWindowSize++
		ri += stride
	}

	// Phase 2: initial writes with a growing window.
	for i := 0; i < phase2Nreps; i++ {
		sum += src[ri]
		currentWindowSize++
		dst[oi] = sum / currentWindowSize
		ri += stride
		oi += stride
	}

	// Phase 3: writes with the full window. The eight partial sums form a
	// serial recurrence, not independent lanes.
	recip := 1 / currentWindowSize

	i := 0
	for ; i+8 <= phase3Nreps; i += 8 {
		s0 := sum + src[ri] - src[li]
		s1 := s0 + src[ri+stride] - src[li+stride]
		s2 := s1 + src[ri+2*stride] - src[li+2*stride]
		s3 := s2 + src[ri+3*stride] - src[li+3*stride]
		s4 := s3 + src[ri+4*stride] - src[li+4*stride]
		s5 := s4 + src[ri+5*stride] - src[li+5*stride]
		s6 := s5 + src[ri+6*stride] - src[li+6*stride]
		s7 := s6 + src[ri+7*stride] - src[li+7*stride]

		dst[oi] = s0 * recip
		dst[oi+stride] = s1 * recip
		dst[oi+2*stride] = s2 * recip
		dst[oi+3*stride] = s3 * recip
		dst[oi+4*stride] = s4 * recip
		dst[oi+5*stride] = s5 * recip
		dst[oi+6*stride] = s6 * recip
		dst[oi+7*stride] = s7 * recip

		li += 8 * stride
		ri += 8 * stride
		oi += 8 * stride

		sum = s7
	}

	for ; i < phase3Nreps; i++ {
		sum += src[ri]
		sum -= src[li]
		dst[oi] = sum * recip
		li += stride
		ri += stride
		oi += stride
	}

	// Phase 4: final writes with a shrinking window.
	for i := 0; i < phase4Nreps; i++ {
		sum -= src[li]
		currentWindowSize--
		dst[oi] = sum / currentWindowSize
		li += stride
		oi += stride
	}
}
