package camera

type CameraBuilderOption func(*cameraImpl)

// WithConfig replaces the camera's tuning constants. Zeroed fields are
// filled from the defaults after all options run.
//
// Parameters:
//   - cfg: the configuration to apply
//
// Returns:
//   - CameraBuilderOption: a function that sets the configuration
func WithConfig(cfg Config) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.cfg = cfg
	}
}

// WithWorldPosition sets the camera's starting ground-plane position.
//
// Parameters:
//   - x, z: starting position
//
// Returns:
//   - CameraBuilderOption: a function that sets the starting position
func WithWorldPosition(x, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.state.WorldX = x
		c.state.WorldZ = z
	}
}

// WithHeight sets the camera's starting altitude.
//
// Parameters:
//   - height: starting altitude
//
// Returns:
//   - CameraBuilderOption: a function that sets the starting altitude
func WithHeight(height float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.state.Height = height
	}
}

// WithRotation sets the camera's starting yaw in degrees.
//
// Parameters:
//   - degrees: starting yaw
//
// Returns:
//   - CameraBuilderOption: a function that sets the starting yaw
func WithRotation(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.state.Rotation = degrees
	}
}

// WithMapBounds sets the hard position clamp range per axis.
//
// Parameters:
//   - minX, maxX: x-axis bounds
//   - minZ, maxZ: z-axis bounds
//
// Returns:
//   - CameraBuilderOption: a function that sets the map bounds
func WithMapBounds(minX, maxX, minZ, maxZ float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.cfg.MapMinX = minX
		c.cfg.MapMaxX = maxX
		c.cfg.MapMinZ = minZ
		c.cfg.MapMaxZ = maxZ
	}
}
