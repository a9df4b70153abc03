package camera

import (
	"math"

	"github.com/Carmen-Shannon/iso-go/common"
	"github.com/Carmen-Shannon/iso-go/engine/input"
)

// keyFlags is the decoded form of the snapshot key bitmask. Decoding happens
// once at the input boundary so the movement logic works on named flags.
type keyFlags struct {
	forward, backward, left, right bool
	boost                          bool
	rotateCCW, rotateCW            bool
}

// decodeKeys expands the key bitmask. WASD aliases the arrow keys
// additively.
func decodeKeys(keys uint32) keyFlags {
	return keyFlags{
		forward:   keys&(input.MaskUp|input.MaskW) != 0,
		backward:  keys&(input.MaskDown|input.MaskS) != 0,
		left:      keys&(input.MaskLeft|input.MaskA) != 0,
		right:     keys&(input.MaskRight|input.MaskD) != 0,
		boost:     keys&input.MaskShift != 0,
		rotateCCW: keys&input.MaskQ != 0,
		rotateCW:  keys&input.MaskE != 0,
	}
}

// moveAxes builds the unit movement vector from the directional flags.
// Opposing keys cancel; diagonals are normalized so they never exceed
// single-axis speed.
func (f keyFlags) moveAxes() (mx, mz float32) {
	if f.right {
		mx += 1
	}
	if f.left {
		mx -= 1
	}
	if f.forward {
		mz += 1
	}
	if f.backward {
		mz -= 1
	}
	if mx != 0 && mz != 0 {
		inv := float32(1.0 / math.Sqrt2)
		mx *= inv
		mz *= inv
	}
	return mx, mz
}

// applyInput folds one input snapshot into the camera state: keyboard
// movement and rotation targets via exponential smoothing, absolute drag
// panning, right-drag rotation, edge panning, and scroll zoom.
func (c *cameraImpl) applyInput(in input.Snapshot, dt float32) {
	cfg := &c.cfg
	s := &c.state
	flags := decodeKeys(in.Keys)

	// Keyboard movement: first-order low-pass toward the target velocity.
	// The smoothing factor is clamped so a long dt cannot overshoot.
	mx, mz := flags.moveAxes()
	speed := cfg.BaseSpeed
	if flags.boost {
		speed *= cfg.SpeedBoost
	}
	alpha := common.Clamp(cfg.AccelRate*dt*cfg.Smoothing, 0, 1)
	s.VelocityX += (mx*speed - s.VelocityX) * alpha
	s.VelocityZ += (mz*speed - s.VelocityZ) * alpha

	// Q/E rotation uses the same smoothing model as movement.
	var rotTarget float32
	if flags.rotateCCW {
		rotTarget -= cfg.RotateKeySpeed
	}
	if flags.rotateCW {
		rotTarget += cfg.RotateKeySpeed
	}
	s.RotationVelocity += (rotTarget - s.RotationVelocity) * alpha

	// Left-button drag pans the world under the cursor: the pixel delta is
	// mapped through the inverse isometric transform and applied directly
	// to position, not routed through velocity.
	if in.ButtonDown(input.ButtonLeft) {
		dwx, dwz := isoDeltaToWorld(
			float32(in.MouseDeltaX)*cfg.PanSensitivity,
			float32(in.MouseDeltaY)*cfg.PanSensitivity,
		)
		s.WorldX -= dwx
		s.WorldZ -= dwz
	}

	// Right-button drag rotates, degrees per pixel.
	if in.ButtonDown(input.ButtonRight) {
		s.Rotation += float32(in.MouseDeltaX) * cfg.RotationSensitivity
	}

	// Edge panning adds into velocity on top of keyboard movement.
	s.EdgePanX, s.EdgePanZ = edgePan(in, cfg)
	s.VelocityX += s.EdgePanX
	s.VelocityZ += s.EdgePanZ

	// Scroll zoom is multiplicative and clamped immediately.
	if in.ScrollY != 0 {
		s.Height *= 1 + float32(in.ScrollY)*cfg.ZoomSensitivity
		s.Height = common.Clamp(s.Height, cfg.MinHeight, cfg.MaxHeight)
	}
}

// edgePan computes the per-tick velocity contribution from cursor proximity
// to the viewport edges. The falloff is linear: full EdgeSpeed at the edge,
// zero at EdgeThreshold pixels in. Both axes contribute independently.
func edgePan(in input.Snapshot, cfg *Config) (px, pz float32) {
	// A zeroed snapshot reports the cursor at the origin before any mouse
	// event arrives; treat that as no cursor rather than a corner hover.
	if in.MouseX == 0 && in.MouseY == 0 {
		return 0, 0
	}

	w, h := in.Viewport()
	mx, my := float32(in.MouseX), float32(in.MouseY)
	if mx < 0 || my < 0 || mx >= w || my >= h {
		return 0, 0
	}

	t := cfg.EdgeThreshold
	if mx < t {
		px -= (t - mx) / t * cfg.EdgeSpeed
	} else if mx > w-t {
		px += (mx - (w - t)) / t * cfg.EdgeSpeed
	}
	if my < t {
		pz += (t - my) / t * cfg.EdgeSpeed
	} else if my > h-t {
		pz -= (my - (h - t)) / t * cfg.EdgeSpeed
	}
	return px, pz
}
