// Package boxblur provides a fast, edge-aware iterated box ("Jarosz") blur
// for 1D sequences and 2D row-major float matrices.
//
// The core is a sliding-window moving average with O(1) cost per output
// sample. At sequence boundaries the window shrinks instead of padding:
// the divisor is always the true count of in-range samples. Applying the
// 1D filter separably (rows, then columns) and repeating the two-pass
// blur a few times approximates a Gaussian at a fraction of the cost of
// direct convolution.
//
// # Usage
//
// For caller-managed ping-pong buffers (no allocation in the library):
//
//	err := boxblur.Smooth(bufA, bufB, rows, cols, winRows, winCols, 2)
//	// smoothed result is in bufA
//
// For repeated smoothing of same-sized images, a Smoother owns the
// scratch buffer and derives default window sizes from the dimensions:
//
//	s, err := boxblur.NewSmoother(rows, cols, boxblur.WithPasses(2))
//	err = s.Smooth(buf)
//
// # Kernel selection
//
// The 1D kernel is dispatched through an internal registry keyed on CPU
// features detected via algo-vecmath/cpu; all registered kernels produce
// bit-identical output. Build with the purego tag to force the generic
// kernel.
package boxblur
