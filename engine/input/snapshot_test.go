package input

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestDecodeFullLayout(t *testing.T) {
	buf := make([]byte, SnapshotSize)
	deltaX := int32(-12)
	scrollY := int16(-2)
	binary.LittleEndian.PutUint32(buf[0x00:], MaskUp|MaskShift)
	binary.LittleEndian.PutUint32(buf[0x10:], uint32(int32(640)))
	binary.LittleEndian.PutUint32(buf[0x14:], uint32(int32(360)))
	binary.LittleEndian.PutUint32(buf[0x18:], uint32(deltaX))
	binary.LittleEndian.PutUint32(buf[0x1C:], uint32(int32(7)))
	binary.LittleEndian.PutUint32(buf[0x20:], ButtonRight)
	binary.LittleEndian.PutUint16(buf[0x24:], uint16(scrollY))
	binary.LittleEndian.PutUint32(buf[0x28:], uint32(int32(1280)))
	binary.LittleEndian.PutUint32(buf[0x2C:], uint32(int32(720)))

	s, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !s.KeyDown(MaskUp) || !s.KeyDown(MaskShift) || s.KeyDown(MaskW) {
		t.Errorf("keys decoded as %#x", s.Keys)
	}
	if s.MouseX != 640 || s.MouseY != 360 {
		t.Errorf("mouse position = (%d, %d)", s.MouseX, s.MouseY)
	}
	if s.MouseDeltaX != -12 || s.MouseDeltaY != 7 {
		t.Errorf("mouse delta = (%d, %d)", s.MouseDeltaX, s.MouseDeltaY)
	}
	if !s.ButtonDown(ButtonRight) || s.ButtonDown(ButtonLeft) {
		t.Errorf("buttons decoded as %#x", s.Buttons)
	}
	if s.ScrollY != -2 {
		t.Errorf("scroll = %d, want -2", s.ScrollY)
	}
	if s.ViewportWidth != 1280 || s.ViewportHeight != 720 {
		t.Errorf("viewport = %dx%d", s.ViewportWidth, s.ViewportHeight)
	}
}

func TestDecodeLegacyLayout(t *testing.T) {
	buf := make([]byte, legacySnapshotSize)
	binary.LittleEndian.PutUint32(buf[0x00:], MaskD)
	binary.LittleEndian.PutUint32(buf[0x10:], uint32(int32(100)))

	s, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !s.KeyDown(MaskD) {
		t.Errorf("keys decoded as %#x", s.Keys)
	}
	if s.ViewportWidth != 0 || s.ViewportHeight != 0 {
		t.Errorf("legacy decode set viewport %dx%d", s.ViewportWidth, s.ViewportHeight)
	}

	w, h := s.Viewport()
	if w != DefaultViewportWidth || h != DefaultViewportHeight {
		t.Errorf("Viewport() = %vx%v, want defaults", w, h)
	}
}

func TestDecodeShortBuffer(t *testing.T) {
	for _, n := range []int{0, 1, 16, legacySnapshotSize - 1} {
		if _, err := Decode(make([]byte, n)); err == nil {
			t.Errorf("Decode accepted %d-byte buffer", n)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	s := Snapshot{
		Keys:           MaskW | MaskA | MaskQ,
		MouseX:         15,
		MouseY:         -3,
		MouseDeltaX:    2,
		MouseDeltaY:    -8,
		Buttons:        ButtonLeft,
		ScrollY:        5,
		ViewportWidth:  800,
		ViewportHeight: 600,
	}

	got, err := Decode(s.Marshal())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != s {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, s)
	}
}

func TestMarshalPadBytesZero(t *testing.T) {
	s := Snapshot{Keys: 0xFFFFFFFF, ScrollY: -1}
	buf := s.Marshal()

	if !bytes.Equal(buf[0x04:0x10], make([]byte, 12)) {
		t.Errorf("pad bytes 0x04..0x0F not zero: %v", buf[0x04:0x10])
	}
	if buf[0x26] != 0 || buf[0x27] != 0 {
		t.Errorf("pad bytes 0x26..0x27 not zero: %v", buf[0x26:0x28])
	}
}
