package terrain

// TerrainBuilderOption is a functional option used to configure a Terrain during construction.
type TerrainBuilderOption func(*terrainImpl)

// WithBounds sets the rectangular world area the terrain covers.
//
// Parameters:
//   - minX, minZ: the minimum corner of the area
//   - maxX, maxZ: the maximum corner of the area
//
// Returns:
//   - TerrainBuilderOption: a function that sets the terrain bounds
func WithBounds(minX, minZ, maxX, maxZ float32) TerrainBuilderOption {
	return func(t *terrainImpl) {
		t.minX = minX
		t.minZ = minZ
		t.maxX = maxX
		t.maxZ = maxZ
	}
}

// WithChunkSize sets the world-space edge length of one chunk.
//
// Parameters:
//   - size: the chunk edge length in world units
//
// Returns:
//   - TerrainBuilderOption: a function that sets the chunk size
func WithChunkSize(size float32) TerrainBuilderOption {
	return func(t *terrainImpl) {
		t.chunkSize = size
	}
}

// WithResolution sets the number of quads along each chunk edge.
// Higher values produce denser meshes.
//
// Parameters:
//   - resolution: quads per chunk edge
//
// Returns:
//   - TerrainBuilderOption: a function that sets the resolution
func WithResolution(resolution int) TerrainBuilderOption {
	return func(t *terrainImpl) {
		t.resolution = resolution
	}
}

// WithHeightFunc sets the elevation function sampled during mesh generation.
// The function must be deterministic — chunks are generated concurrently and
// may sample the same border positions from different goroutines.
//
// Parameters:
//   - fn: the height function to use
//
// Returns:
//   - TerrainBuilderOption: a function that sets the height function
func WithHeightFunc(fn HeightFunc) TerrainBuilderOption {
	return func(t *terrainImpl) {
		t.heightFunc = fn
	}
}

// WithWorkers sets the number of goroutines used for chunk generation.
// Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - TerrainBuilderOption: a function that sets the worker count
func WithWorkers(n int) TerrainBuilderOption {
	return func(t *terrainImpl) {
		if n > 0 {
			t.workers = n
		}
	}
}
