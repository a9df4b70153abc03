package terrain

import (
	_ "embed"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUTerrainShaderSource is the WGSL source for the terrain render pipeline.
// The vertex stage consumes the Vertex layout below; group 0 binding 0 is the
// camera uniform shared with every other pipeline in the scene.
//
//go:embed assets/terrain.wgsl
var GPUTerrainShaderSource string

// VertexBufferLayout returns the wgpu vertex buffer layout matching the Vertex
// struct, for declaring on the terrain vertex shader at slot 0.
//
// Returns:
//   - []wgpu.VertexBufferLayout: the vertex buffer layout for terrain meshes
func VertexBufferLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{
					Format:         wgpu.VertexFormatFloat32x3,
					Offset:         uint64(unsafe.Offsetof(Vertex{}.Position)),
					ShaderLocation: 0,
				},
				{
					Format:         wgpu.VertexFormatFloat32x3,
					Offset:         uint64(unsafe.Offsetof(Vertex{}.Normal)),
					ShaderLocation: 1,
				},
			},
		},
	}
}
