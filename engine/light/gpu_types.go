package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULightUniform is the GPU-aligned representation of the sun light uniform.
// Matches the WGSL SunUniform struct used by the terrain shader.
// Size: 32 bytes (std430 / WGSL aligned).
type GPULightUniform struct {
	Direction [3]float32 // offset  0: normalized surface-to-light direction
	Intensity float32    // offset 12: scalar multiplier
	Color     [3]float32 // offset 16: RGB color
	Ambient   float32    // offset 28: ambient fraction in [0, 1]
}

// Size returns the size of the GPULightUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPULightUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULightUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPULightUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Direction[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(g.Intensity))
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Color[i]))
	}
	binary.LittleEndian.PutUint32(buf[28:], math.Float32bits(g.Ambient))
	return buf
}

// UniformFromLight packs a Light into its GPU uniform representation.
//
// Parameters:
//   - l: the light to pack
//
// Returns:
//   - GPULightUniform: the packed uniform
func UniformFromLight(l Light) GPULightUniform {
	return GPULightUniform{
		Direction: l.Direction(),
		Intensity: l.Intensity(),
		Color:     l.Color(),
		Ambient:   l.Ambient(),
	}
}
