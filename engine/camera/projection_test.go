package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/iso-go/engine/input"
)

func TestProjectionAnchor(t *testing.T) {
	c := NewCamera(WithWorldPosition(30, 10), WithHeight(50))

	s := c.State()
	cos30 := float32(math.Cos(math.Pi / 6))
	wantX := (30.0 - 10.0) * cos30
	wantY := float32((30.0+10.0)*0.5 - 50.0)
	if !approx(s.IsoX, wantX, 1e-4) || !approx(s.IsoY, wantY, 1e-4) {
		t.Errorf("anchor = (%v, %v), want (%v, %v)", s.IsoX, s.IsoY, wantX, wantY)
	}
}

func TestViewMatrixLayout(t *testing.T) {
	c := NewCamera(WithWorldPosition(30, 10), WithHeight(50))
	m := c.ViewMatrix()
	s := c.State()

	cos30 := float32(math.Cos(math.Pi / 6))
	sin30 := float32(0.5)
	sin60 := float32(math.Sin(math.Pi / 3))
	cos60 := float32(0.5)

	// Row-major: the fixed axonometric basis in the upper 3x3, translation
	// in the last column.
	if !approx(m[0], cos30, 1e-5) || !approx(m[2], -sin30, 1e-5) {
		t.Errorf("row 0 basis = (%v, %v, %v)", m[0], m[1], m[2])
	}
	if !approx(m[4], sin30*sin60, 1e-5) || !approx(m[5], cos60, 1e-5) || !approx(m[6], cos30*sin60, 1e-5) {
		t.Errorf("row 1 basis = (%v, %v, %v)", m[4], m[5], m[6])
	}
	if !approx(m[8], sin30*cos60, 1e-5) || !approx(m[9], -sin60, 1e-5) || !approx(m[10], cos30*cos60, 1e-5) {
		t.Errorf("row 2 basis = (%v, %v, %v)", m[8], m[9], m[10])
	}

	if !approx(m[3], -s.IsoX, 1e-5) || !approx(m[7], -s.IsoY, 1e-5) || !approx(m[11], -s.Height, 1e-5) {
		t.Errorf("translation column = (%v, %v, %v), want (%v, %v, %v)",
			m[3], m[7], m[11], -s.IsoX, -s.IsoY, -s.Height)
	}
	if m[12] != 0 || m[13] != 0 || m[14] != 0 || m[15] != 1 {
		t.Errorf("bottom row = (%v, %v, %v, %v)", m[12], m[13], m[14], m[15])
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	c := NewCamera()

	// Wander around for a while, then invert the frame's own anchor.
	for i := 0; i < 90; i++ {
		c.Update(input.Snapshot{
			Keys:           input.MaskRight | input.MaskUp,
			ScrollY:        int16(i % 2),
			MouseX:         800,
			MouseY:         400,
			ViewportWidth:  1920,
			ViewportHeight: 1080,
		}, tick)

		s := c.State()
		wx, wz := c.ScreenToWorld(s.IsoX, s.IsoY)
		if !approx(wx, s.WorldX, 1e-3) || !approx(wz, s.WorldZ, 1e-3) {
			t.Fatalf("tick %d: round trip (%v, %v), want (%v, %v)", i, wx, wz, s.WorldX, s.WorldZ)
		}
	}
}

func TestScreenToWorldOffsets(t *testing.T) {
	c := NewCamera(WithWorldPosition(20, 60), WithHeight(80))
	s := c.State()

	// A point one world unit along +x from the camera projects one basis
	// step away on screen; inverting that projection recovers it.
	cos30 := float32(math.Cos(math.Pi / 6))
	px := s.IsoX + cos30
	py := s.IsoY + 0.5
	wx, wz := c.ScreenToWorld(px, py)
	if !approx(wx, 21, 1e-3) || !approx(wz, 60, 1e-3) {
		t.Errorf("offset inverse = (%v, %v), want (21, 60)", wx, wz)
	}
}

func TestVisibleBounds(t *testing.T) {
	c := NewCamera(WithWorldPosition(40, 70), WithHeight(100))

	minX, minZ, maxX, maxZ := c.VisibleBounds()
	if !approx(minX, 38, 1e-4) || !approx(maxX, 42, 1e-4) {
		t.Errorf("x bounds = [%v, %v], want [38, 42]", minX, maxX)
	}
	if !approx(minZ, 68, 1e-4) || !approx(maxZ, 72, 1e-4) {
		t.Errorf("z bounds = [%v, %v], want [68, 72]", minZ, maxZ)
	}

	// The radius scales with altitude.
	c.SetHeight(500)
	c.Update(input.Snapshot{}, tick)
	minX, _, maxX, _ = c.VisibleBounds()
	if !approx(maxX-minX, 20, 1e-3) {
		t.Errorf("bounds width at height 500 = %v, want 20", maxX-minX)
	}
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	u := GPUCameraUniform{
		CameraPosition: [3]float32{1, 2, 3},
	}
	for i := range u.ViewProj {
		u.ViewProj[i] = float32(i)
	}

	if u.Size() != 80 {
		t.Fatalf("uniform size = %d, want 80", u.Size())
	}

	buf := u.Marshal()
	if len(buf) != 80 {
		t.Fatalf("marshal length = %d, want 80", len(buf))
	}

	for i := 0; i < 16; i++ {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != float32(i) {
			t.Errorf("matrix element %d = %v", i, got)
		}
	}
	for i := 0; i < 3; i++ {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[64+i*4:]))
		if got != float32(i+1) {
			t.Errorf("position element %d = %v", i, got)
		}
	}
}
