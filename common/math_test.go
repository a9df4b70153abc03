package common

import (
	"math"
	"testing"
)

func matEqual(a, b []float32, eps float32) bool {
	for i := 0; i < 16; i++ {
		d := a[i] - b[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)

	want := []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	if !matEqual(m, want, 0) {
		t.Fatalf("Identity produced %v", m)
	}
}

func TestMul4Identity(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)

	m := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	out := make([]float32, 16)
	Mul4(out, id, m)
	if !matEqual(out, m, 0) {
		t.Errorf("I*M != M: got %v", out)
	}

	Mul4(out, m, id)
	if !matEqual(out, m, 0) {
		t.Errorf("M*I != M: got %v", out)
	}
}

func TestMul4Translation(t *testing.T) {
	// Column-major translation by (2, 3, 4).
	ta := make([]float32, 16)
	Identity(ta)
	ta[12], ta[13], ta[14] = 2, 3, 4

	tb := make([]float32, 16)
	Identity(tb)
	tb[12], tb[13], tb[14] = -1, 1, -1

	out := make([]float32, 16)
	Mul4(out, ta, tb)

	if out[12] != 1 || out[13] != 4 || out[14] != 3 {
		t.Fatalf("translation compose: got (%v, %v, %v), want (1, 4, 3)", out[12], out[13], out[14])
	}
}

func TestMul4AliasesOutput(t *testing.T) {
	m := []float32{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	}
	want := []float32{
		4, 0, 0, 0,
		0, 4, 0, 0,
		0, 0, 4, 0,
		0, 0, 0, 1,
	}

	// out aliasing an input must still produce the correct product.
	Mul4(m, m, m)
	if !matEqual(m, want, 0) {
		t.Fatalf("aliased Mul4: got %v", m)
	}
}

func TestTranspose4(t *testing.T) {
	m := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	out := make([]float32, 16)
	Transpose4(out, m)

	want := []float32{
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
		4, 8, 12, 16,
	}
	if !matEqual(out, want, 0) {
		t.Fatalf("Transpose4: got %v", out)
	}

	// Double transpose round-trips, including the aliased form.
	Transpose4(out, out)
	if !matEqual(out, m, 0) {
		t.Fatalf("double transpose: got %v", out)
	}
}

func TestOrthographicMapsCorners(t *testing.T) {
	out := make([]float32, 16)
	Orthographic(out, -10, 10, -5, 5, 0.1, 100)

	// Transform a point on the right/top/near corner of the view volume;
	// it should land at clip (1, 1, 0).
	px, py, pz := applyPoint(out, 10, 5, -0.1)
	if math.Abs(float64(px-1)) > 1e-5 || math.Abs(float64(py-1)) > 1e-5 || math.Abs(float64(pz)) > 1e-5 {
		t.Errorf("near corner mapped to (%v, %v, %v), want (1, 1, 0)", px, py, pz)
	}

	// Far plane center maps to depth 1.
	_, _, fz := applyPoint(out, 0, 0, -100)
	if math.Abs(float64(fz-1)) > 1e-5 {
		t.Errorf("far depth = %v, want 1", fz)
	}
}

// applyPoint multiplies a column-major matrix by (x, y, z, 1).
func applyPoint(m []float32, x, y, z float32) (float32, float32, float32) {
	ox := m[0]*x + m[4]*y + m[8]*z + m[12]
	oy := m[1]*x + m[5]*y + m[9]*z + m[13]
	oz := m[2]*x + m[6]*y + m[10]*z + m[14]
	return ox, oy, oz
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float32
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(0) || !IsFinite(-123.5) {
		t.Error("finite values reported as non-finite")
	}
	if IsFinite(float32(math.NaN())) {
		t.Error("NaN reported as finite")
	}
	if IsFinite(float32(math.Inf(1))) || IsFinite(float32(math.Inf(-1))) {
		t.Error("infinity reported as finite")
	}
}
