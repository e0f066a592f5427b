package boxblur

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ImpulseResponse returns the effective 1D kernel of nreps iterated box
// passes with the given window size, sampled over a sequence of the given
// length. It filters a unit impulse centered at length/2 through nreps
// ping-ponged passes. With nreps = 0 the impulse itself is returned.
//
// For windows small relative to length the weights sum to 1; repeated
// passes converge the rectangular kernel toward a Gaussian-like shape.
func ImpulseResponse(length, windowSize, nreps int) ([]float64, error) {
	if length < 1 {
		return nil, ErrInvalidDimensions
	}
	if windowSize < 1 || windowSize > length {
		return nil, ErrInvalidWindowSize
	}
	if nreps < 0 {
		return nil, ErrInvalidPasses
	}

	cur := make([]float64, length)
	next := make([]float64, length)
	cur[length/2] = 1

	box1DInitOnce.Do(initBox1DKernel)

	for rep := 0; rep < nreps; rep++ {
		box1DImpl(next, cur, length, 1, windowSize)
		cur, next = next, cur
	}

	return cur, nil
}

// MagnitudeResponse returns the magnitude spectrum of the effective
// iterated-box kernel, computed via FFT of the impulse response. The
// kernel is zero-padded to the next power of two >= length; the returned
// slice holds fftSize/2 + 1 bins from DC to Nyquist.
//
// Bin 0 equals the kernel weight sum (1 for interior-sized windows), and
// no bin exceeds it since all kernel weights are non-negative. The decay
// of the higher bins quantifies how closely the iterated box approaches
// a Gaussian response.
func MagnitudeResponse(length, windowSize, nreps int) ([]float64, error) {
	kernel, err := ImpulseResponse(length, windowSize, nreps)
	if err != nil {
		return nil, err
	}

	fftSize := nextPowerOf2(length)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("boxblur: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, padded); err != nil {
		return nil, fmt.Errorf("boxblur: forward FFT failed: %w", err)
	}

	numBins := fftSize/2 + 1
	re := make([]float64, numBins)
	im := make([]float64, numBins)
	for i := 0; i < numBins; i++ {
		re[i] = real(spectrum[i])
		im[i] = imag(spectrum[i])
	}

	mag := make([]float64, numBins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
