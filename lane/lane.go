// Package lane provides fixed-width 8-element vector primitives.
//
// These are the elementwise building blocks used by the unrolled
// steady-state path of the box filter kernels. The *[8]float64 pointer
// arguments encode the exactly-eight-lanes contract in the type system,
// so no length checks are needed at call sites.
//
// All operations are pure and branch-free. Output and input lanes may
// alias each other.
package lane

// Div8 computes out[i] = num[i] / denom[i] for all eight lanes.
func Div8(out, num, denom *[8]float64) {
	out[0] = num[0] / denom[0]
	out[1] = num[1] / denom[1]
	out[2] = num[2] / denom[2]
	out[3] = num[3] / denom[3]
	out[4] = num[4] / denom[4]
	out[5] = num[5] / denom[5]
	out[6] = num[6] / denom[6]
	out[7] = num[7] / denom[7]
}

// Mul8 computes out[i] = num[i] * op[i] for all eight lanes.
func Mul8(out, num, op *[8]float64) {
	out[0] = num[0] * op[0]
	out[1] = num[1] * op[1]
	out[2] = num[2] * op[2]
	out[3] = num[3] * op[3]
	out[4] = num[4] * op[4]
	out[5] = num[5] * op[5]
	out[6] = num[6] * op[6]
	out[7] = num[7] * op[7]
}

// Splat8 returns a lane with v broadcast to all eight elements.
func Splat8(v float64) [8]float64 {
	return [8]float64{v, v, v, v, v, v, v, v}
}
