package camera

import "math"

// Fixed 30/60 degree axonometric basis. Rotation is a camera-state scalar
// and is not folded into this basis.
var (
	isoCos30 = float32(math.Cos(math.Pi / 6))
	isoSin30 = float32(math.Sin(math.Pi / 6))
	isoCos60 = float32(math.Cos(math.Pi / 3))
	isoSin60 = float32(math.Sin(math.Pi / 3))
)

// visibleBoundsScale converts altitude to the conservative culling radius.
const visibleBoundsScale float32 = 0.02

// project recomputes the isometric screen anchor and the row-major view
// matrix from the current state.
func (c *cameraImpl) project() {
	s := &c.state

	s.IsoX = (s.WorldX - s.WorldZ) * isoCos30
	s.IsoY = (s.WorldX+s.WorldZ)*isoSin30 - s.Height

	c.viewMatrix = [16]float32{
		isoCos30, 0, -isoSin30, -s.IsoX,
		isoSin30 * isoSin60, isoCos60, isoCos30 * isoSin60, -s.IsoY,
		isoSin30 * isoCos60, -isoSin60, isoCos30 * isoCos60, -s.Height,
		0, 0, 0, 1,
	}
}

// isoDeltaToWorld maps a screen-plane delta through the linear part of the
// inverse isometric transform. Height does not enter because deltas are
// translation-free.
func isoDeltaToWorld(sx, sy float32) (wx, wz float32) {
	wx = sx/(2*isoCos30) + sy/(2*isoSin30)
	wz = sy/(2*isoSin30) - sx/(2*isoCos30)
	return wx, wz
}

func (c *cameraImpl) ScreenToWorld(sx, sy float32) (wx, wz float32) {
	// Undo the altitude offset baked into the forward projection, then
	// invert the linear 30/60 degree basis. Feeding the current anchor
	// back in returns the camera's own world position exactly.
	sy += c.state.Height
	return isoDeltaToWorld(sx, sy)
}

func (c *cameraImpl) VisibleBounds() (minX, minZ, maxX, maxZ float32) {
	s := &c.state
	radius := s.Height * visibleBoundsScale
	return s.WorldX - radius, s.WorldZ - radius, s.WorldX + radius, s.WorldZ + radius
}
