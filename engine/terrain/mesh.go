package terrain

import (
	"math"

	"github.com/Carmen-Shannon/iso-go/common"
)

// Vertex is a single terrain mesh vertex. Layout matches the vertex buffer
// layout declared in gpu_types.go: position at location 0, normal at location 1.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Chunk is one generated tile of the terrain grid: a (resolution+1)² vertex
// grid with indexed triangles, plus its world-space footprint for culling.
type Chunk struct {
	// X, Z are the chunk's grid coordinates.
	X, Z int

	// MinX, MinZ, MaxX, MaxZ are the chunk's world-space footprint.
	MinX, MinZ float32
	MaxX, MaxZ float32

	// MinY, MaxY are the elevation range of the chunk's vertices, for
	// bounding-box culling.
	MinY, MaxY float32

	Vertices []Vertex
	Indices  []uint32
}

// VertexBytes returns the vertex data as raw bytes for GPU upload.
//
// Returns:
//   - []byte: the vertex data (shares memory with Vertices — do not modify)
func (c *Chunk) VertexBytes() []byte {
	return common.SliceToBytes(c.Vertices)
}

// IndexBytes returns the index data as raw bytes for GPU upload.
//
// Returns:
//   - []byte: the index data (shares memory with Indices — do not modify)
func (c *Chunk) IndexBytes() []byte {
	return common.SliceToBytes(c.Indices)
}

// IndexCount returns the number of indices in the chunk mesh.
//
// Returns:
//   - int: the index count
func (c *Chunk) IndexCount() int {
	return len(c.Indices)
}

// RollingHills is the default height function: low-amplitude sine waves that
// give the ground some relief without hiding the grid structure.
func RollingHills(x, z float32) float32 {
	fx, fz := float64(x), float64(z)
	return float32(1.5*math.Sin(fx*0.15)*math.Cos(fz*0.12) + 0.5*math.Sin(fx*0.45+fz*0.3))
}

// Flat is a height function that produces level ground at elevation zero.
func Flat(x, z float32) float32 {
	return 0
}

// buildChunk generates the mesh for the chunk at grid coordinate (cx, cz).
// Vertices are in world space, so chunks need no per-chunk model matrix.
// Normals come from central differences of the height function, which keeps
// shading continuous across chunk borders.
func (t *terrainImpl) buildChunk(cx, cz int) *Chunk {
	res := t.resolution
	step := t.chunkSize / float32(res)
	originX := t.minX + float32(cx)*t.chunkSize
	originZ := t.minZ + float32(cz)*t.chunkSize

	c := &Chunk{
		X:        cx,
		Z:        cz,
		MinX:     originX,
		MinZ:     originZ,
		MaxX:     originX + t.chunkSize,
		MaxZ:     originZ + t.chunkSize,
		Vertices: make([]Vertex, 0, (res+1)*(res+1)),
		Indices:  make([]uint32, 0, res*res*6),
	}

	c.MinY = float32(math.Inf(1))
	c.MaxY = float32(math.Inf(-1))
	for iz := 0; iz <= res; iz++ {
		for ix := 0; ix <= res; ix++ {
			wx := originX + float32(ix)*step
			wz := originZ + float32(iz)*step
			height := t.heightFunc(wx, wz)
			if height < c.MinY {
				c.MinY = height
			}
			if height > c.MaxY {
				c.MaxY = height
			}
			c.Vertices = append(c.Vertices, Vertex{
				Position: [3]float32{wx, height, wz},
				Normal:   t.normalAt(wx, wz, step),
			})
		}
	}

	stride := uint32(res + 1)
	for iz := 0; iz < res; iz++ {
		for ix := 0; ix < res; ix++ {
			topLeft := uint32(iz)*stride + uint32(ix)
			topRight := topLeft + 1
			bottomLeft := topLeft + stride
			bottomRight := bottomLeft + 1
			// Two CCW triangles per quad, viewed from +y.
			c.Indices = append(c.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return c
}

// normalAt computes the surface normal at a world position from central
// differences of the height function.
func (t *terrainImpl) normalAt(x, z, step float32) [3]float32 {
	hl := t.heightFunc(x-step, z)
	hr := t.heightFunc(x+step, z)
	hd := t.heightFunc(x, z-step)
	hu := t.heightFunc(x, z+step)

	nx := float64(hl - hr)
	ny := float64(2 * step)
	nz := float64(hd - hu)
	length := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if length == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{
		float32(nx / length),
		float32(ny / length),
		float32(nz / length),
	}
}
