package terrain

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// HeightFunc returns the terrain elevation at a world position.
type HeightFunc func(x, z float32) float32

// terrainImpl is the implementation of the Terrain interface.
type terrainImpl struct {
	mu sync.Mutex

	minX, minZ float32
	maxX, maxZ float32

	chunkSize  float32
	resolution int
	heightFunc HeightFunc

	chunks map[[2]int]*Chunk

	// genPool manages a bounded set of reusable goroutines for chunk mesh
	// generation. Chunks are independent, so each one is a separate task.
	genPool worker.DynamicWorkerPool
	workers int
}

// Terrain manages a grid of chunked ground meshes covering a rectangular world area.
// Chunk meshes are generated in parallel and held on the CPU; the scene uploads them
// to the GPU and culls them against the camera's visible bounds each frame.
type Terrain interface {
	// Generate builds the meshes for every chunk in the terrain grid.
	// Safe to call again to regenerate after changing nothing — generation is deterministic.
	//
	// Returns:
	//   - error: an error if the terrain configuration is invalid
	Generate() error

	// Chunk retrieves the chunk at the given grid coordinate, or nil if out of range
	// or Generate has not been called.
	//
	// Parameters:
	//   - cx: the chunk grid x coordinate
	//   - cz: the chunk grid z coordinate
	//
	// Returns:
	//   - *Chunk: the chunk at the coordinate, or nil
	Chunk(cx, cz int) *Chunk

	// Chunks retrieves all generated chunks in deterministic row-major order.
	//
	// Returns:
	//   - []*Chunk: the generated chunks
	Chunks() []*Chunk

	// ChunksInBounds retrieves the chunks whose world-space footprint overlaps the
	// given rectangle. Used for visibility culling against the camera's bounds.
	//
	// Parameters:
	//   - minX, minZ: the rectangle's minimum corner in world space
	//   - maxX, maxZ: the rectangle's maximum corner in world space
	//
	// Returns:
	//   - []*Chunk: the overlapping chunks in row-major order
	ChunksInBounds(minX, minZ, maxX, maxZ float32) []*Chunk

	// HeightAt samples the terrain elevation at a world position.
	//
	// Parameters:
	//   - x, z: the world position to sample
	//
	// Returns:
	//   - float32: the elevation at the position
	HeightAt(x, z float32) float32

	// GridSize returns the number of chunks along each axis.
	//
	// Returns:
	//   - int: chunk count along x
	//   - int: chunk count along z
	GridSize() (int, int)

	// ChunkSize returns the world-space edge length of one chunk.
	//
	// Returns:
	//   - float32: the chunk edge length
	ChunkSize() float32

	// Resolution returns the number of quads along each chunk edge.
	//
	// Returns:
	//   - int: quads per chunk edge
	Resolution() int
}

var _ Terrain = &terrainImpl{}

// NewTerrain creates a new Terrain with the specified options.
// Defaults cover a 100x100 world area with 25-unit chunks at 16 quads per edge
// and a gently rolling height function.
//
// Parameters:
//   - options: functional options to configure the terrain
//
// Returns:
//   - Terrain: the configured terrain (chunks not yet generated)
func NewTerrain(options ...TerrainBuilderOption) Terrain {
	t := &terrainImpl{
		minX:       0,
		minZ:       0,
		maxX:       100,
		maxZ:       100,
		chunkSize:  25,
		resolution: 16,
		heightFunc: RollingHills,
		chunks:     make(map[[2]int]*Chunk),
		workers:    max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range options {
		opt(t)
	}
	// Queue size of 256 covers the chunk counts of any reasonable grid with headroom.
	t.genPool = worker.NewDynamicWorkerPool(t.workers, 256, 1*time.Second)
	return t
}

func (t *terrainImpl) Generate() error {
	if t.chunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %v", t.chunkSize)
	}
	if t.resolution < 1 {
		return fmt.Errorf("resolution must be at least 1, got %d", t.resolution)
	}
	if t.maxX <= t.minX || t.maxZ <= t.minZ {
		return fmt.Errorf("terrain bounds are empty: [%v,%v]x[%v,%v]", t.minX, t.maxX, t.minZ, t.maxZ)
	}

	countX, countZ := t.GridSize()

	var wg sync.WaitGroup
	built := make([]*Chunk, countX*countZ)
	taskID := 0
	for cz := 0; cz < countZ; cz++ {
		for cx := 0; cx < countX; cx++ {
			wg.Add(1)
			cxCap, czCap := cx, cz
			slot := cz*countX + cx
			t.genPool.SubmitTask(worker.Task{
				ID: taskID,
				Do: func() (any, error) {
					defer wg.Done()
					built[slot] = t.buildChunk(cxCap, czCap)
					return nil, nil
				},
			})
			taskID++
		}
	}
	wg.Wait()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.chunks = make(map[[2]int]*Chunk, len(built))
	for _, c := range built {
		t.chunks[[2]int{c.X, c.Z}] = c
	}
	return nil
}

func (t *terrainImpl) Chunk(cx, cz int) *Chunk {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.chunks[[2]int{cx, cz}]
}

func (t *terrainImpl) Chunks() []*Chunk {
	t.mu.Lock()
	defer t.mu.Unlock()

	countX, countZ := t.GridSize()
	out := make([]*Chunk, 0, len(t.chunks))
	for cz := 0; cz < countZ; cz++ {
		for cx := 0; cx < countX; cx++ {
			if c, ok := t.chunks[[2]int{cx, cz}]; ok {
				out = append(out, c)
			}
		}
	}
	return out
}

func (t *terrainImpl) ChunksInBounds(minX, minZ, maxX, maxZ float32) []*Chunk {
	out := make([]*Chunk, 0)
	for _, c := range t.Chunks() {
		if c.MaxX < minX || c.MinX > maxX || c.MaxZ < minZ || c.MinZ > maxZ {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (t *terrainImpl) HeightAt(x, z float32) float32 {
	return t.heightFunc(x, z)
}

func (t *terrainImpl) GridSize() (int, int) {
	countX := int((t.maxX-t.minX)/t.chunkSize + 0.5)
	countZ := int((t.maxZ-t.minZ)/t.chunkSize + 0.5)
	if countX < 1 {
		countX = 1
	}
	if countZ < 1 {
		countZ = 1
	}
	return countX, countZ
}

func (t *terrainImpl) ChunkSize() float32 {
	return t.chunkSize
}

func (t *terrainImpl) Resolution() int {
	return t.resolution
}
