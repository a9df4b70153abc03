package camera

import (
	"github.com/Carmen-Shannon/iso-go/common"
	"github.com/Carmen-Shannon/iso-go/engine/input"
)

// Tick delta fallbacks. A non-positive or non-finite dt is replaced with the
// 60 Hz nominal step; anything above maxTickDelta (a stalled frame) is capped
// so a single late tick cannot teleport the camera.
const (
	defaultTickDelta float32 = 1.0 / 60.0
	maxTickDelta     float32 = 0.1
)

// State is the camera's persistent simulation record. It is returned by
// value for diagnostics and tests; Update is the only writer.
type State struct {
	// WorldX and WorldZ are the camera's position on the ground plane.
	WorldX, WorldZ float32

	// Height is the camera altitude (zoom level).
	Height float32

	// Rotation is the camera yaw in degrees, kept in [0, 360).
	Rotation float32

	// IsoX and IsoY are the derived screen-space anchor, recomputed from
	// position and height every tick.
	IsoX, IsoY float32

	// VelocityX and VelocityZ are the smoothed movement velocity.
	VelocityX, VelocityZ float32

	// ZoomVelocity is the smoothed altitude velocity.
	ZoomVelocity float32

	// RotationVelocity is the smoothed yaw velocity in degrees per second.
	RotationVelocity float32

	// EdgePanX and EdgePanZ are the current tick's edge-pan contribution.
	// Transient: recomputed every tick, never carried over.
	EdgePanX, EdgePanZ float32

	// BounceTimer is the number of ticks remaining in an elastic height
	// correction. Zero means the camera is free.
	BounceTimer uint32
}

type cameraImpl struct {
	cfg   Config
	state State

	// initial is the post-option state captured at construction; Reset
	// restores it.
	initial State

	// Elastic bounce endpoints, valid while state.BounceTimer > 0.
	bounceFrom  float32
	bounceLimit float32

	viewMatrix [16]float32
}

// Camera is an isometric game camera. One Update call per simulation tick
// consumes an input snapshot and advances the state through input
// processing, physics integration, constraint enforcement, and projection.
//
// The camera is deliberately unsynchronized: it has exactly one writer (the
// tick loop) and callers must not read while an Update is in progress.
type Camera interface {
	// Update advances the camera one tick. It never fails: malformed input
	// and non-finite values are repaired with defaults rather than rejected.
	//
	// Parameters:
	//   - in: the tick's input snapshot
	//   - dt: elapsed time in seconds; non-positive or non-finite values
	//     fall back to the 60 Hz step
	Update(in input.Snapshot, dt float32)

	// Reset restores the state captured at construction.
	Reset()

	// State returns a copy of the current simulation state.
	//
	// Returns:
	//   - State: the current state
	State() State

	// WorldPosition returns the camera's position and altitude.
	//
	// Returns:
	//   - x, z: ground-plane position
	//   - height: camera altitude
	WorldPosition() (x, z, height float32)

	// ViewMatrix returns the current 4x4 view matrix in row-major order.
	// The value is a snapshot, valid until the next Update.
	//
	// Returns:
	//   - [16]float32: the row-major view matrix
	ViewMatrix() [16]float32

	// ScreenToWorld maps an isometric-plane coordinate back to the ground
	// plane at the camera's current altitude.
	//
	// Parameters:
	//   - sx, sy: isometric screen coordinates
	//
	// Returns:
	//   - wx, wz: the corresponding world position
	ScreenToWorld(sx, sy float32) (wx, wz float32)

	// VisibleBounds returns a conservative axis-aligned box around the
	// camera's footprint for upstream culling. The radius scales with
	// altitude.
	//
	// Returns:
	//   - minX, minZ, maxX, maxZ: the bounding box
	VisibleBounds() (minX, minZ, maxX, maxZ float32)

	// Validate is a read-only diagnostic check of the numeric invariants.
	// It never mutates state and never halts the simulation.
	//
	// Returns:
	//   - ErrorCode: CodeOK, or the first violated invariant
	Validate() ErrorCode

	// Config returns the active tuning constants.
	//
	// Returns:
	//   - Config: the camera configuration
	Config() Config

	// SetWorldPosition moves the camera on the ground plane. The value is
	// stored as-is; the next Update clamps it into map bounds.
	//
	// Parameters:
	//   - x, z: the new ground-plane position
	SetWorldPosition(x, z float32)

	// SetHeight sets the camera altitude. The value is stored as-is; an
	// out-of-range altitude starts an elastic bounce on the next Update.
	//
	// Parameters:
	//   - height: the new altitude
	SetHeight(height float32)

	// SetRotation sets the camera yaw in degrees. The next Update wraps it
	// into [0, 360).
	//
	// Parameters:
	//   - degrees: the new yaw
	SetRotation(degrees float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a camera at the map center with default tuning. Options
// may override the configuration and the starting state; the post-option
// state becomes the Reset target.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		cfg: DefaultConfig(),
		state: State{
			WorldX: 50.0,
			WorldZ: 50.0,
			Height: 100.0,
		},
	}
	for _, option := range options {
		option(c)
	}
	c.cfg.normalize()
	c.initial = c.state
	c.project()
	return c
}

func (c *cameraImpl) Update(in input.Snapshot, dt float32) {
	if !common.IsFinite(dt) || dt <= 0 {
		dt = defaultTickDelta
	} else if dt > maxTickDelta {
		dt = maxTickDelta
	}

	c.sanitize()
	c.applyInput(in, dt)
	c.integrate(dt)
	c.enforce()
	c.project()
}

func (c *cameraImpl) Reset() {
	c.state = c.initial
	c.bounceFrom = 0
	c.bounceLimit = 0
	c.project()
}

func (c *cameraImpl) State() State {
	return c.state
}

func (c *cameraImpl) WorldPosition() (x, z, height float32) {
	return c.state.WorldX, c.state.WorldZ, c.state.Height
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	return c.viewMatrix
}

func (c *cameraImpl) Config() Config {
	return c.cfg
}

func (c *cameraImpl) SetWorldPosition(x, z float32) {
	c.state.WorldX = x
	c.state.WorldZ = z
}

func (c *cameraImpl) SetHeight(height float32) {
	c.state.Height = height
}

func (c *cameraImpl) SetRotation(degrees float32) {
	c.state.Rotation = degrees
}

// sanitize repairs non-finite state fields so one bad tick cannot poison
// every tick after it. Positions fall back to their initial values,
// velocities to zero.
func (c *cameraImpl) sanitize() {
	s := &c.state
	if !common.IsFinite(s.WorldX) {
		s.WorldX = c.initial.WorldX
	}
	if !common.IsFinite(s.WorldZ) {
		s.WorldZ = c.initial.WorldZ
	}
	if !common.IsFinite(s.Height) {
		s.Height = c.initial.Height
	}
	if !common.IsFinite(s.Rotation) {
		s.Rotation = c.initial.Rotation
	}
	if !common.IsFinite(s.VelocityX) {
		s.VelocityX = 0
	}
	if !common.IsFinite(s.VelocityZ) {
		s.VelocityZ = 0
	}
	if !common.IsFinite(s.ZoomVelocity) {
		s.ZoomVelocity = 0
	}
	if !common.IsFinite(s.RotationVelocity) {
		s.RotationVelocity = 0
	}
}
