package light

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestNewDirectionalLightDefaults(t *testing.T) {
	l := NewDirectionalLight()

	d := l.Direction()
	length := math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
	if math.Abs(length-1) > 1e-5 {
		t.Errorf("default direction length = %v, want 1", length)
	}
	if l.Intensity() != 1 {
		t.Errorf("default intensity = %v, want 1", l.Intensity())
	}
	if l.Ambient() != 0.35 {
		t.Errorf("default ambient = %v, want 0.35", l.Ambient())
	}
}

func TestSetDirectionNormalizes(t *testing.T) {
	l := NewDirectionalLight()
	l.SetDirection(0, 10, 0)
	if l.Direction() != [3]float32{0, 1, 0} {
		t.Errorf("direction = %v, want (0,1,0)", l.Direction())
	}

	// A zero vector is ignored.
	l.SetDirection(0, 0, 0)
	if l.Direction() != [3]float32{0, 1, 0} {
		t.Errorf("zero direction overwrote previous value: %v", l.Direction())
	}
}

func TestSetAmbientClamps(t *testing.T) {
	l := NewDirectionalLight()
	l.SetAmbient(2)
	if l.Ambient() != 1 {
		t.Errorf("ambient = %v, want 1", l.Ambient())
	}
	l.SetAmbient(-1)
	if l.Ambient() != 0 {
		t.Errorf("ambient = %v, want 0", l.Ambient())
	}
}

func TestGPULightUniformMarshal(t *testing.T) {
	l := NewDirectionalLight(
		WithDirection(0, 1, 0),
		WithColor(0.5, 0.25, 0.125),
		WithIntensity(2),
		WithAmbient(0.5),
	)
	u := UniformFromLight(l)

	if u.Size() != 32 {
		t.Fatalf("uniform size = %d, want 32", u.Size())
	}

	buf := u.Marshal()
	if len(buf) != 32 {
		t.Fatalf("marshaled size = %d, want 32", len(buf))
	}

	at := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	if at(4) != 1 {
		t.Errorf("direction y at offset 4 = %v, want 1", at(4))
	}
	if at(12) != 2 {
		t.Errorf("intensity at offset 12 = %v, want 2", at(12))
	}
	if at(16) != 0.5 {
		t.Errorf("color r at offset 16 = %v, want 0.5", at(16))
	}
	if at(28) != 0.5 {
		t.Errorf("ambient at offset 28 = %v, want 0.5", at(28))
	}
}
