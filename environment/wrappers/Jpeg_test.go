package wrappers

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// TestJPEGRoundTripUniform ensures that a flat image survives the
// encode-decode round trip nearly unchanged. A uniform image has no
// high-frequency content, so even lossy encoding should preserve it
// to within a pixel intensity or two.
func TestJPEGRoundTripUniform(t *testing.T) {
	const rows, cols = 8, 8

	obs := mat.NewVecDense(rows*cols, nil)
	for i := 0; i < rows*cols; i++ {
		obs.SetVec(i, 128)
	}

	transform := JPEGRoundTrip(rows, cols, 95)
	out := transform(obs)

	if out.Len() != rows*cols {
		t.Fatalf("expected observation of length %v, got %v", rows*cols,
			out.Len())
	}
	for i := 0; i < out.Len(); i++ {
		if math.Abs(out.AtVec(i)-128) > 2 {
			t.Fatalf("pixel %v drifted from 128 to %v", i, out.AtVec(i))
		}
	}
}

// TestJPEGRoundTripClips ensures that out-of-range intensities are
// clipped before encoding and that decoded intensities stay within
// the valid pixel range.
func TestJPEGRoundTripClips(t *testing.T) {
	const rows, cols = 8, 8

	obs := mat.NewVecDense(rows*cols, nil)
	for i := 0; i < rows*cols; i++ {
		if i%2 == 0 {
			obs.SetVec(i, 300)
		} else {
			obs.SetVec(i, -40)
		}
	}

	transform := JPEGRoundTrip(rows, cols, 75)
	out := transform(obs)

	for i := 0; i < out.Len(); i++ {
		if out.AtVec(i) < 0 || out.AtVec(i) > 255 {
			t.Fatalf("pixel %v outside [0, 255]: %v", i, out.AtVec(i))
		}
	}
}

// TestJPEGRoundTripDeterministic ensures that transforming the same
// frame twice yields identical output and leaves the input untouched.
func TestJPEGRoundTripDeterministic(t *testing.T) {
	const rows, cols = 8, 8

	obs := mat.NewVecDense(rows*cols, nil)
	for i := 0; i < rows*cols; i++ {
		obs.SetVec(i, float64((i*31)%256))
	}

	transform := JPEGRoundTrip(rows, cols, 75)
	first := transform(obs)
	second := transform(obs)

	for i := 0; i < first.Len(); i++ {
		if first.AtVec(i) != second.AtVec(i) {
			t.Fatalf("pixel %v differs between applications: %v != %v",
				i, first.AtVec(i), second.AtVec(i))
		}
	}

	for i := 0; i < obs.Len(); i++ {
		if obs.AtVec(i) != float64((i*31)%256) {
			t.Fatalf("transform mutated its input at pixel %v", i)
		}
	}
}

// TestJPEGRoundTripInvalidSize ensures that observations that do not
// match the configured image dimensions are rejected loudly.
func TestJPEGRoundTripInvalidSize(t *testing.T) {
	transform := JPEGRoundTrip(4, 4, 95)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a mis-sized observation")
		}
	}()
	transform(mat.NewVecDense(3, nil))
}
