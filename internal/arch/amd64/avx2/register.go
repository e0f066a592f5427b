//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-boxblur/internal/arch/registry"
	"github.com/cwbudde/algo-boxblur/lane"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Box1D:     box1D,
	})
}

// box1D is the kernel selected for AVX2-capable CPUs. The steady-state
// scaling goes through lane.Mul8 so the eight stores can compile to a
// single vector multiply; the recurrence feeding it stays serial.
// TODO: replace the recurrence with a prefix-sum formulation in asm.
func box1D(dst, src []float64, length, stride, fullWindowSize int) {
	halfWindowSize := (fullWindowSize + 2) / 2
	phase1Nreps := halfWindowSize - 1
	phase2Nreps := fullWindowSize - halfWindowSize + 1
	phase3Nreps := length - fullWindowSize
	phase4Nreps := halfWindowSize - 1

	li := 0
	ri := 0
	oi := 0
	sum := 0.0
	currentWindowSize := 0.0

	for i := 0; i < phase1Nreps; i++ {
		sum += src[ri]
		currentWindowSize++
		ri += stride
	}

	for i := 0; i < phase2Nreps; i++ {
		sum += src[ri]
		currentWindowSize++
		dst[oi] = sum / currentWindowSize
		ri += stride
		oi += stride
	}

	recip := 1 / currentWindowSize
	recipLane := lane.Splat8(recip)

	var sums, outs [8]float64

	i := 0
	for ; i+8 <= phase3Nreps; i += 8 {
		sums[0] = sum + src[ri] - src[li]
		sums[1] = sums[0] + src[ri+stride] - src[li+stride]
		sums[2] = sums[1] + src[ri+2*stride] - src[li+2*stride]
		sums[3] = sums[2] + src[ri+3*stride] - src[li+3*stride]
		sums[4] = sums[3] + src[ri+4*stride] - src[li+4*stride]
		sums[5] = sums[4] + src[ri+5*stride] - src[li+5*stride]
		sums[6] = sums[5] + src[ri+6*stride] - src[li+6*stride]
		sums[7] = sums[6] + src[ri+7*stride] - src[li+7*stride]

		lane.Mul8(&outs, &sums, &recipLane)

		dst[oi] = outs[0]
		dst[oi+stride] = outs[1]
		dst[oi+2*stride] = outs[2]
		dst[oi+3*stride] = outs[3]
		dst[oi+4*stride] = outs[4]
		dst[oi+5*stride] = outs[5]
		dst[oi+6*stride] = outs[6]
		dst[oi+7*stride] = outs[7]

		li += 8 * stride
		ri += 8 * stride
		oi += 8 * stride

		sum = sums[7]
	}

	for ; i < phase3Nreps; i++ {
		sum += src[ri]
		sum -= src[li]
		dst[oi] = sum * recip
		li += stride
		ri += stride
		oi += stride
	}

	for i := 0; i < phase4Nreps; i++ {
		sum -= src[li]
		currentWindowSize--
		dst[oi] = sum / currentWindowSize
		li += stride
		oi += stride
	}
}
