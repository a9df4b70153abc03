package input

import (
	"testing"

	"github.com/Carmen-Shannon/iso-go/common"
)

func TestCollectorKeyTracking(t *testing.T) {
	c := NewCollector()

	c.KeyEvent(common.KeyW, true)
	c.KeyEvent(common.KeyLeftShift, true)

	s := c.Collect()
	if !s.KeyDown(MaskW) || !s.KeyDown(MaskShift) {
		t.Errorf("keys = %#x after W+Shift press", s.Keys)
	}

	// Held keys persist across snapshots; released keys clear.
	c.KeyEvent(common.KeyW, false)
	s = c.Collect()
	if s.KeyDown(MaskW) {
		t.Error("W still down after release")
	}
	if !s.KeyDown(MaskShift) {
		t.Error("Shift dropped without release")
	}
}

func TestCollectorIgnoresUnmappedKeys(t *testing.T) {
	c := NewCollector()
	c.KeyEvent(common.KeyEsc, true)
	c.KeyEvent(12345, true)

	if s := c.Collect(); s.Keys != 0 {
		t.Errorf("unmapped keys produced mask %#x", s.Keys)
	}
}

func TestCollectorMouseDeltas(t *testing.T) {
	c := NewCollector()

	// First cursor event establishes the baseline.
	c.CursorEvent(100, 200)
	s := c.Collect()
	if s.MouseDeltaX != 0 || s.MouseDeltaY != 0 {
		t.Errorf("initial delta = (%d, %d), want (0, 0)", s.MouseDeltaX, s.MouseDeltaY)
	}

	c.CursorEvent(130, 190)
	s = c.Collect()
	if s.MouseX != 130 || s.MouseY != 190 {
		t.Errorf("position = (%d, %d)", s.MouseX, s.MouseY)
	}
	if s.MouseDeltaX != 30 || s.MouseDeltaY != -10 {
		t.Errorf("delta = (%d, %d), want (30, -10)", s.MouseDeltaX, s.MouseDeltaY)
	}

	// Deltas are per-tick: no movement means zero.
	s = c.Collect()
	if s.MouseDeltaX != 0 || s.MouseDeltaY != 0 {
		t.Errorf("stale delta = (%d, %d)", s.MouseDeltaX, s.MouseDeltaY)
	}
}

func TestCollectorScrollAccumulates(t *testing.T) {
	c := NewCollector()

	c.ScrollEvent(1)
	c.ScrollEvent(1)
	c.ScrollEvent(-0.5)

	s := c.Collect()
	if s.ScrollY != 1 {
		t.Errorf("scroll = %d, want 1", s.ScrollY)
	}

	// The 0.5 remainder carries into the next tick.
	c.ScrollEvent(0.5)
	s = c.Collect()
	if s.ScrollY != 1 {
		t.Errorf("carried scroll = %d, want 1", s.ScrollY)
	}
}

func TestCollectorButtonsAndViewport(t *testing.T) {
	c := NewCollector()

	c.MouseButtonEvent(mouseButtonLeft, true)
	c.MouseButtonEvent(mouseButtonRight, true)
	c.MouseButtonEvent(mouseButtonRight, false)
	c.MouseButtonEvent(7, true)
	c.ResizeEvent(1600, 900)

	s := c.Collect()
	if !s.ButtonDown(ButtonLeft) || s.ButtonDown(ButtonRight) {
		t.Errorf("buttons = %#x", s.Buttons)
	}
	if s.ViewportWidth != 1600 || s.ViewportHeight != 900 {
		t.Errorf("viewport = %dx%d", s.ViewportWidth, s.ViewportHeight)
	}
}
