package input

import (
	"sync"

	"github.com/Carmen-Shannon/iso-go/common"
)

// Collector accumulates raw input events from window callbacks and produces
// one Snapshot per tick. Callbacks run on the main thread while the engine
// tick goroutine drains snapshots, so all state is mutex-guarded.
type Collector interface {
	// KeyEvent records a key press or release.
	KeyEvent(keyCode int, pressed bool)

	// MouseButtonEvent records a mouse button press or release.
	MouseButtonEvent(button int, pressed bool)

	// CursorEvent records the current cursor position in viewport pixels.
	CursorEvent(x, y float64)

	// ScrollEvent records scroll wheel movement in notches.
	ScrollEvent(yoff float64)

	// ResizeEvent records the viewport dimensions in pixels.
	ResizeEvent(width, height int)

	// Collect returns the snapshot for the current tick and clears the
	// per-tick accumulators (mouse deltas and scroll).
	Collect() Snapshot
}

// Mouse button indices as reported by the windowing layer.
const (
	mouseButtonLeft  = 0
	mouseButtonRight = 1
)

type collectorImpl struct {
	mu sync.Mutex

	keys    uint32
	buttons uint32

	mouseX, mouseY int32
	lastX, lastY   int32
	cursorSeen     bool

	scrollAccum float64

	viewportW, viewportH int32
}

var _ Collector = &collectorImpl{}

// NewCollector creates an empty input collector.
//
// Returns:
//   - Collector: a collector ready to receive window callbacks
func NewCollector() Collector {
	return &collectorImpl{}
}

// keyMask maps a windowing-layer key code to its snapshot bitmask, or 0 for
// keys the camera does not consume.
func keyMask(keyCode int) uint32 {
	switch keyCode {
	case common.KeyUp:
		return MaskUp
	case common.KeyDown:
		return MaskDown
	case common.KeyLeft:
		return MaskLeft
	case common.KeyRight:
		return MaskRight
	case common.KeyLeftShift, common.KeyRightShift:
		return MaskShift
	case common.KeyW:
		return MaskW
	case common.KeyA:
		return MaskA
	case common.KeyS:
		return MaskS
	case common.KeyD:
		return MaskD
	case common.KeyQ:
		return MaskQ
	case common.KeyE:
		return MaskE
	}
	return 0
}

func (c *collectorImpl) KeyEvent(keyCode int, pressed bool) {
	mask := keyMask(keyCode)
	if mask == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if pressed {
		c.keys |= mask
	} else {
		c.keys &^= mask
	}
}

func (c *collectorImpl) MouseButtonEvent(button int, pressed bool) {
	var mask uint32
	switch button {
	case mouseButtonLeft:
		mask = ButtonLeft
	case mouseButtonRight:
		mask = ButtonRight
	default:
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if pressed {
		c.buttons |= mask
	} else {
		c.buttons &^= mask
	}
}

func (c *collectorImpl) CursorEvent(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mouseX = int32(x)
	c.mouseY = int32(y)
	if !c.cursorSeen {
		// First event establishes the baseline so the initial delta is zero.
		c.lastX, c.lastY = c.mouseX, c.mouseY
		c.cursorSeen = true
	}
}

func (c *collectorImpl) ScrollEvent(yoff float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scrollAccum += yoff
}

func (c *collectorImpl) ResizeEvent(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewportW = int32(width)
	c.viewportH = int32(height)
}

func (c *collectorImpl) Collect() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Keys:           c.keys,
		MouseX:         c.mouseX,
		MouseY:         c.mouseY,
		MouseDeltaX:    c.mouseX - c.lastX,
		MouseDeltaY:    c.mouseY - c.lastY,
		Buttons:        c.buttons,
		ScrollY:        int16(c.scrollAccum),
		ViewportWidth:  c.viewportW,
		ViewportHeight: c.viewportH,
	}

	c.lastX, c.lastY = c.mouseX, c.mouseY
	// Keep the fractional remainder so slow trackpad scrolling still
	// registers over multiple ticks.
	c.scrollAccum -= float64(int16(c.scrollAccum))

	return s
}
