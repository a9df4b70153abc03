package camera

import "github.com/Carmen-Shannon/iso-go/common"

// Config holds the tuning constants for camera motion, constraints, and
// projection. Zero values are replaced by defaults at construction, so a
// partially filled Config only overrides what it sets.
type Config struct {
	// BaseSpeed is the keyboard movement speed in world units per second.
	BaseSpeed float32

	// SpeedBoost is the multiplier applied to BaseSpeed while shift is held.
	SpeedBoost float32

	// AccelRate scales how quickly velocity converges on its target.
	AccelRate float32

	// Smoothing scales the exponential smoothing factor alongside AccelRate.
	Smoothing float32

	// Damping is the per-tick multiplicative velocity decay, in (0, 1].
	Damping float32

	// PanSensitivity converts drag pixels to world units before the inverse
	// isometric transform.
	PanSensitivity float32

	// RotationSensitivity is degrees of rotation per pixel of right-drag.
	RotationSensitivity float32

	// RotateKeySpeed is the target rotation speed in degrees per second
	// while Q or E is held.
	RotateKeySpeed float32

	// EdgeThreshold is the distance from a viewport edge, in pixels, within
	// which edge panning engages.
	EdgeThreshold float32

	// EdgeSpeed scales the edge-pan velocity contribution.
	EdgeSpeed float32

	// ZoomSensitivity scales the multiplicative height change per scroll
	// notch.
	ZoomSensitivity float32

	// MinHeight and MaxHeight bound the camera height. Crossing them starts
	// an elastic bounce back into range.
	MinHeight float32
	MaxHeight float32

	// BounceDuration is the elastic correction length in ticks.
	BounceDuration uint32

	// MapMinX, MapMaxX, MapMinZ, MapMaxZ are the hard position bounds.
	MapMinX float32
	MapMaxX float32
	MapMinZ float32
	MapMaxZ float32

	// SoftBound is the diagnostic position range checked by Validate; it is
	// never enforced by clamping.
	SoftBound float32
}

// DefaultConfig returns the standard camera tuning.
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	return Config{
		BaseSpeed:           20.0,
		SpeedBoost:          2.5,
		AccelRate:           10.0,
		Smoothing:           1.0,
		Damping:             0.95,
		PanSensitivity:      0.05,
		RotationSensitivity: 0.5,
		RotateKeySpeed:      90.0,
		EdgeThreshold:       15.0,
		EdgeSpeed:           15.0,
		ZoomSensitivity:     0.03,
		MinHeight:           5.0,
		MaxHeight:           1000.0,
		BounceDuration:      18,
		MapMinX:             0.0,
		MapMaxX:             100.0,
		MapMinZ:             0.0,
		MapMaxZ:             100.0,
		SoftBound:           10000.0,
	}
}

// normalize fills zeroed fields from the defaults. MapMinX and MapMinZ are
// left alone: zero is their real default.
func (c *Config) normalize() {
	def := DefaultConfig()
	c.BaseSpeed = common.Coalesce(c.BaseSpeed, def.BaseSpeed)
	c.SpeedBoost = common.Coalesce(c.SpeedBoost, def.SpeedBoost)
	c.AccelRate = common.Coalesce(c.AccelRate, def.AccelRate)
	c.Smoothing = common.Coalesce(c.Smoothing, def.Smoothing)
	c.Damping = common.Coalesce(c.Damping, def.Damping)
	c.PanSensitivity = common.Coalesce(c.PanSensitivity, def.PanSensitivity)
	c.RotationSensitivity = common.Coalesce(c.RotationSensitivity, def.RotationSensitivity)
	c.RotateKeySpeed = common.Coalesce(c.RotateKeySpeed, def.RotateKeySpeed)
	c.EdgeThreshold = common.Coalesce(c.EdgeThreshold, def.EdgeThreshold)
	c.EdgeSpeed = common.Coalesce(c.EdgeSpeed, def.EdgeSpeed)
	c.ZoomSensitivity = common.Coalesce(c.ZoomSensitivity, def.ZoomSensitivity)
	c.MinHeight = common.Coalesce(c.MinHeight, def.MinHeight)
	c.MaxHeight = common.Coalesce(c.MaxHeight, def.MaxHeight)
	c.BounceDuration = common.Coalesce(c.BounceDuration, def.BounceDuration)
	c.MapMaxX = common.Coalesce(c.MapMaxX, def.MapMaxX)
	c.MapMaxZ = common.Coalesce(c.MapMaxZ, def.MapMaxZ)
	c.SoftBound = common.Coalesce(c.SoftBound, def.SoftBound)
}
