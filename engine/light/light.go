package light

import "math"

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	direction [3]float32
	color     [3]float32
	intensity float32
	ambient   float32
}

// Light is a directional sun light shared by every pipeline in a scene.
//
// The direction points from the surface toward the light, matching the dot
// product in the terrain shader. Ambient is the fraction of the light's color
// that reaches fragments facing away from it, keeping unlit slopes readable
// in an overhead isometric view.
//
// Lights are marshaled into a GPU uniform buffer each frame via the
// gpu_types helpers.
type Light interface {
	// Direction returns the normalized surface-to-light direction.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Ambient returns the ambient fraction in [0, 1].
	//
	// Returns:
	//   - float32: the ambient fraction
	Ambient() float32

	// SetDirection sets the surface-to-light direction and normalizes it.
	// A zero vector is ignored.
	//
	// Parameters:
	//   - x, y, z: direction components (will be normalized)
	SetDirection(x, y, z float32)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetAmbient sets the ambient fraction, clamped to [0, 1].
	//
	// Parameters:
	//   - ambient: the ambient fraction
	SetAmbient(ambient float32)
}

// Ensure lightImpl implements Light interface.
var _ Light = &lightImpl{}

// NewDirectionalLight creates a directional sun light. Defaults to a warm
// white sun from the north-east at intensity 1 with 0.35 ambient.
//
// Parameters:
//   - options: functional options to further configure the light
//
// Returns:
//   - Light: the newly created light
func NewDirectionalLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		direction: normalize(0.45, 0.8, 0.4),
		color:     [3]float32{1.0, 0.97, 0.9},
		intensity: 1.0,
		ambient:   0.35,
	}

	for _, option := range options {
		option(l)
	}

	return l
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Ambient() float32 {
	return l.ambient
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	if x == 0 && y == 0 && z == 0 {
		return
	}
	l.direction = normalize(x, y, z)
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetAmbient(ambient float32) {
	if ambient < 0 {
		ambient = 0
	} else if ambient > 1 {
		ambient = 1
	}
	l.ambient = ambient
}

// normalize returns the unit vector for (x, y, z).
func normalize(x, y, z float32) [3]float32 {
	length := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	return [3]float32{x / length, y / length, z / length}
}
