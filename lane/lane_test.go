package lane

import (
	"math"
	"testing"
)

func TestDiv8(t *testing.T) {
	num := [8]float64{1, 2, 3, 4, 5, 6, 7, 8}
	denom := [8]float64{2, 2, 4, 4, 5, 3, 7, 16}
	var out [8]float64

	Div8(&out, &num, &denom)

	for i := range out {
		want := num[i] / denom[i]
		if out[i] != want {
			t.Errorf("lane %d: got %v, want %v", i, out[i], want)
		}
	}
}

func TestMul8(t *testing.T) {
	num := [8]float64{1, -2, 3.5, 0, 5, 1e-9, 7, 1e12}
	op := [8]float64{2, 2, -4, 4, 0.2, 3e9, -1, 1e-12}
	var out [8]float64

	Mul8(&out, &num, &op)

	for i := range out {
		want := num[i] * op[i]
		if out[i] != want {
			t.Errorf("lane %d: got %v, want %v", i, out[i], want)
		}
	}
}

func TestMul8_InPlaceAliasing(t *testing.T) {
	buf := [8]float64{1, 2, 3, 4, 5, 6, 7, 8}
	op := Splat8(0.5)

	Mul8(&buf, &buf, &op)

	for i := range buf {
		want := float64(i+1) * 0.5
		if buf[i] != want {
			t.Errorf("lane %d: got %v, want %v", i, buf[i], want)
		}
	}
}

func TestSplat8(t *testing.T) {
	v := math.Pi
	got := Splat8(v)
	for i := range got {
		if got[i] != v {
			t.Errorf("lane %d: got %v, want %v", i, got[i], v)
		}
	}
}
