package camera

import "math"

// ErrorCode is the diagnostic result of a Validate call.
type ErrorCode int

const (
	// CodeOK means every checked invariant holds.
	CodeOK ErrorCode = iota

	// CodeMathNaN means a position or height field is NaN.
	CodeMathNaN

	// CodePhysicsBounds means the position escaped the diagnostic soft
	// bounds. Soft bounds are never enforced by clamping; tripping this
	// indicates a physics or constraint bug.
	CodePhysicsBounds
)

// String returns the code's name for logging.
//
// Returns:
//   - string: the code name
func (e ErrorCode) String() string {
	switch e {
	case CodeOK:
		return "OK"
	case CodeMathNaN:
		return "ERR_MATH_NAN"
	case CodePhysicsBounds:
		return "ERR_PHYSICS_BOUNDS"
	}
	return "ERR_UNKNOWN"
}

func (c *cameraImpl) Validate() ErrorCode {
	s := &c.state

	if isNaN(s.WorldX) || isNaN(s.WorldZ) || isNaN(s.Height) {
		return CodeMathNaN
	}

	b := c.cfg.SoftBound
	if s.WorldX < -b || s.WorldX > b || s.WorldZ < -b || s.WorldZ > b {
		return CodePhysicsBounds
	}

	return CodeOK
}

func isNaN(v float32) bool {
	return math.IsNaN(float64(v))
}
