package camera

import (
	"github.com/Carmen-Shannon/iso-go/common"
)

// enforce applies the post-integration constraints: hard position clamp,
// the elastic height bounce state machine, and rotation wrap.
func (c *cameraImpl) enforce() {
	cfg := &c.cfg
	s := &c.state

	// Position is hard-clamped every tick; there is no elasticity on it.
	s.WorldX = common.Clamp(s.WorldX, cfg.MapMinX, cfg.MapMaxX)
	s.WorldZ = common.Clamp(s.WorldZ, cfg.MapMinZ, cfg.MapMaxZ)

	// Height is a soft elastic constraint: crossing a limit starts a timed
	// ease-out correction instead of an instant clamp. While a bounce is
	// running it owns the height; the safety clamp applies only to the
	// free state so the correction stays observable.
	if s.BounceTimer == 0 {
		switch {
		case s.Height < cfg.MinHeight:
			c.startBounce(cfg.MinHeight)
		case s.Height > cfg.MaxHeight:
			c.startBounce(cfg.MaxHeight)
		default:
			s.Height = common.Clamp(s.Height, cfg.MinHeight, cfg.MaxHeight)
		}
	} else {
		c.stepBounce()
	}

	// Single-step rotation wrap. Assumes the per-tick delta never exceeds
	// 360 degrees in magnitude.
	if s.Rotation >= 360 {
		s.Rotation -= 360
	} else if s.Rotation < 0 {
		s.Rotation += 360
	}
}

// startBounce begins an elastic correction from the current height toward
// the violated limit. The first easing step lands on the trigger tick; the
// timer starts counting down on the next one, so a full bounce spans
// BounceDuration+1 ticks.
func (c *cameraImpl) startBounce(limit float32) {
	s := &c.state
	c.bounceFrom = s.Height
	c.bounceLimit = limit
	s.BounceTimer = c.cfg.BounceDuration
	s.Height = c.bounceHeight(1)
}

// stepBounce advances a running correction by one tick and lands exactly on
// the limit when the timer expires.
func (c *cameraImpl) stepBounce() {
	s := &c.state
	s.BounceTimer--
	if s.BounceTimer == 0 {
		s.Height = c.bounceLimit
		return
	}
	step := c.cfg.BounceDuration - s.BounceTimer + 1
	s.Height = c.bounceHeight(step)
}

// bounceHeight evaluates the ease-out curve at the given step in
// [1, BounceDuration]: fast initial correction that decelerates as it
// approaches the limit.
func (c *cameraImpl) bounceHeight(step uint32) float32 {
	e := float32(step) / float32(c.cfg.BounceDuration)
	if e > 1 {
		e = 1
	}
	w := 1 - (1-e)*(1-e)
	return c.bounceFrom + (c.bounceLimit-c.bounceFrom)*w
}
