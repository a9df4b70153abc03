package input

import (
	"encoding/binary"
	"fmt"
)

// Key bitmask positions within Snapshot.Keys. The layout is fixed wire format:
// arrow keys occupy the low bits, WASD occupies the extended bits and aliases
// the arrows additively, Q/E rotate the camera.
const (
	MaskUp    uint32 = 1 << 0
	MaskDown  uint32 = 1 << 1
	MaskLeft  uint32 = 1 << 2
	MaskRight uint32 = 1 << 3
	MaskShift uint32 = 1 << 4
	MaskW     uint32 = 1 << 5
	MaskA     uint32 = 1 << 6
	MaskS     uint32 = 1 << 7
	MaskD     uint32 = 1 << 8
	MaskQ     uint32 = 1 << 9
	MaskE     uint32 = 1 << 10
)

// Mouse button bitmask positions within Snapshot.Buttons.
const (
	ButtonLeft  uint32 = 1 << 0
	ButtonRight uint32 = 1 << 1
)

// Snapshot byte-layout sizes. The legacy layout predates the viewport fields;
// decoding a legacy blob leaves the viewport zeroed so consumers fall back to
// the default dimensions.
const (
	// SnapshotSize is the full wire size of an encoded Snapshot in bytes.
	SnapshotSize = 48

	// legacySnapshotSize is the wire size without the trailing viewport fields.
	legacySnapshotSize = 40
)

// Default viewport dimensions used when a snapshot carries no viewport data.
const (
	DefaultViewportWidth  = 1920
	DefaultViewportHeight = 1080
)

// Snapshot is one frame's worth of raw input state, consumed by the camera
// once per tick. The wire encoding is little-endian with fixed offsets:
//
//	0x00  keys            u32
//	0x04  (12 bytes pad)
//	0x10  mouse_x         i32
//	0x14  mouse_y         i32
//	0x18  mouse_delta_x   i32
//	0x1C  mouse_delta_y   i32
//	0x20  mouse_buttons   u32
//	0x24  scroll_y        i16
//	0x26  (2 bytes pad)
//	0x28  viewport_width  i32 (optional)
//	0x2C  viewport_height i32 (optional)
type Snapshot struct {
	// Keys is the pressed-key bitmask (see Mask* constants).
	Keys uint32

	// MouseX and MouseY are the cursor position in viewport pixels.
	MouseX, MouseY int32

	// MouseDeltaX and MouseDeltaY are the cursor movement since the last
	// snapshot, in pixels.
	MouseDeltaX, MouseDeltaY int32

	// Buttons is the pressed-mouse-button bitmask (see Button* constants).
	Buttons uint32

	// ScrollY is the accumulated scroll wheel movement since the last
	// snapshot, in wheel notches (positive = away from the user).
	ScrollY int16

	// ViewportWidth and ViewportHeight are the window client area size in
	// pixels. Zero means unknown; use Viewport() to read with defaults.
	ViewportWidth, ViewportHeight int32
}

// KeyDown reports whether any key in the given mask is pressed.
//
// Parameters:
//   - mask: one or more Mask* constants ORed together
//
// Returns:
//   - bool: true if at least one masked key is down
func (s Snapshot) KeyDown(mask uint32) bool {
	return s.Keys&mask != 0
}

// ButtonDown reports whether any button in the given mask is pressed.
//
// Parameters:
//   - mask: one or more Button* constants ORed together
//
// Returns:
//   - bool: true if at least one masked button is down
func (s Snapshot) ButtonDown(mask uint32) bool {
	return s.Buttons&mask != 0
}

// Viewport returns the viewport dimensions, substituting the defaults for
// absent or non-positive values so downstream math never divides by zero.
//
// Returns:
//   - width, height: viewport dimensions in pixels, always positive
func (s Snapshot) Viewport() (width, height float32) {
	w, h := s.ViewportWidth, s.ViewportHeight
	if w <= 0 {
		w = DefaultViewportWidth
	}
	if h <= 0 {
		h = DefaultViewportHeight
	}
	return float32(w), float32(h)
}

// Decode parses an encoded snapshot from buf. Both the full 48-byte layout
// and the 40-byte legacy layout (no viewport) are accepted.
//
// Parameters:
//   - buf: the encoded snapshot bytes
//
// Returns:
//   - Snapshot: the decoded snapshot
//   - error: an error if buf is shorter than the legacy layout
func Decode(buf []byte) (Snapshot, error) {
	if len(buf) < legacySnapshotSize {
		return Snapshot{}, fmt.Errorf("input: snapshot buffer too short: %d bytes, need at least %d", len(buf), legacySnapshotSize)
	}

	s := Snapshot{
		Keys:        binary.LittleEndian.Uint32(buf[0x00:]),
		MouseX:      int32(binary.LittleEndian.Uint32(buf[0x10:])),
		MouseY:      int32(binary.LittleEndian.Uint32(buf[0x14:])),
		MouseDeltaX: int32(binary.LittleEndian.Uint32(buf[0x18:])),
		MouseDeltaY: int32(binary.LittleEndian.Uint32(buf[0x1C:])),
		Buttons:     binary.LittleEndian.Uint32(buf[0x20:]),
		ScrollY:     int16(binary.LittleEndian.Uint16(buf[0x24:])),
	}

	if len(buf) >= SnapshotSize {
		s.ViewportWidth = int32(binary.LittleEndian.Uint32(buf[0x28:]))
		s.ViewportHeight = int32(binary.LittleEndian.Uint32(buf[0x2C:]))
	}

	return s, nil
}

// Marshal serializes the snapshot into the full 48-byte wire layout.
//
// Returns:
//   - []byte: the encoded snapshot
func (s Snapshot) Marshal() []byte {
	buf := make([]byte, SnapshotSize)
	binary.LittleEndian.PutUint32(buf[0x00:], s.Keys)
	binary.LittleEndian.PutUint32(buf[0x10:], uint32(s.MouseX))
	binary.LittleEndian.PutUint32(buf[0x14:], uint32(s.MouseY))
	binary.LittleEndian.PutUint32(buf[0x18:], uint32(s.MouseDeltaX))
	binary.LittleEndian.PutUint32(buf[0x1C:], uint32(s.MouseDeltaY))
	binary.LittleEndian.PutUint32(buf[0x20:], s.Buttons)
	binary.LittleEndian.PutUint16(buf[0x24:], uint16(s.ScrollY))
	binary.LittleEndian.PutUint32(buf[0x28:], uint32(s.ViewportWidth))
	binary.LittleEndian.PutUint32(buf[0x2C:], uint32(s.ViewportHeight))
	return buf
}
