package camera

// integrate advances the state by dt: multiplicative damping first, then an
// explicit Euler step. No branching; deterministic given (state, dt).
func (c *cameraImpl) integrate(dt float32) {
	s := &c.state
	d := c.cfg.Damping

	s.VelocityX *= d
	s.VelocityZ *= d
	s.ZoomVelocity *= d
	s.RotationVelocity *= d

	s.WorldX += s.VelocityX * dt
	s.WorldZ += s.VelocityZ * dt
	s.Height += s.ZoomVelocity * dt
	s.Rotation += s.RotationVelocity * dt
}
