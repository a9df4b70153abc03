package common

import "testing"

// orthoFrustum builds a frustum from a plain orthographic projection, so the
// view volume is the box (left,bottom,near)-(right,top,far) in world space.
func orthoFrustum(left, right, bottom, top, near, far float32) Frustum {
	var proj [16]float32
	Orthographic(proj[:], left, right, bottom, top, near, far)
	return ExtractFrustumFromMatrix(proj[:])
}

func TestFrustumPlanesUnitLength(t *testing.T) {
	f := orthoFrustum(-10, 10, -5, 5, -100, 100)
	for i, p := range f.Planes {
		lengthSq := p.Normal[0]*p.Normal[0] + p.Normal[1]*p.Normal[1] + p.Normal[2]*p.Normal[2]
		if lengthSq < 0.999 || lengthSq > 1.001 {
			t.Errorf("plane %d normal length^2 = %v, want 1", i, lengthSq)
		}
	}
}

func TestFrustumIntersectsAABB(t *testing.T) {
	f := orthoFrustum(-10, 10, -10, 10, -100, 100)

	tests := []struct {
		name     string
		min, max [3]float32
		want     bool
	}{
		{"inside", [3]float32{-1, -1, -1}, [3]float32{1, 1, 1}, true},
		{"straddles right plane", [3]float32{8, -1, -1}, [3]float32{15, 1, 1}, true},
		{"outside right", [3]float32{20, -1, -1}, [3]float32{30, 1, 1}, false},
		{"outside top", [3]float32{-1, 20, -1}, [3]float32{1, 30, 1}, false},
		{"outside far", [3]float32{-1, -1, 150}, [3]float32{1, 1, 200}, false},
		{"encloses frustum", [3]float32{-500, -500, -500}, [3]float32{500, 500, 500}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.IntersectsAABB(tc.min, tc.max); got != tc.want {
				t.Errorf("IntersectsAABB(%v, %v) = %v, want %v", tc.min, tc.max, got, tc.want)
			}
		})
	}
}
