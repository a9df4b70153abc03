package terrain

import (
	"math"
	"testing"
)

func TestGenerateChunkGrid(t *testing.T) {
	tr := NewTerrain(WithBounds(0, 0, 100, 100), WithChunkSize(25), WithResolution(8))
	if err := tr.Generate(); err != nil {
		t.Fatal(err)
	}

	cx, cz := tr.GridSize()
	if cx != 4 || cz != 4 {
		t.Fatalf("grid size = %dx%d, want 4x4", cx, cz)
	}
	chunks := tr.Chunks()
	if len(chunks) != 16 {
		t.Fatalf("chunk count = %d, want 16", len(chunks))
	}

	// Row-major order and contiguous footprints.
	first := chunks[0]
	if first.X != 0 || first.Z != 0 || first.MinX != 0 || first.MinZ != 0 {
		t.Errorf("first chunk = %+v", first)
	}
	last := chunks[15]
	if last.MaxX != 100 || last.MaxZ != 100 {
		t.Errorf("last chunk footprint ends at (%v, %v), want (100, 100)", last.MaxX, last.MaxZ)
	}
}

func TestChunkMeshDimensions(t *testing.T) {
	tr := NewTerrain(WithBounds(0, 0, 50, 50), WithChunkSize(50), WithResolution(4))
	if err := tr.Generate(); err != nil {
		t.Fatal(err)
	}

	c := tr.Chunk(0, 0)
	if c == nil {
		t.Fatal("chunk (0,0) missing")
	}
	if len(c.Vertices) != 25 {
		t.Errorf("vertex count = %d, want 25", len(c.Vertices))
	}
	if c.IndexCount() != 4*4*6 {
		t.Errorf("index count = %d, want %d", c.IndexCount(), 4*4*6)
	}
	if len(c.VertexBytes()) != 25*24 {
		t.Errorf("vertex bytes = %d, want %d", len(c.VertexBytes()), 25*24)
	}
	if len(c.IndexBytes()) != c.IndexCount()*4 {
		t.Errorf("index bytes = %d", len(c.IndexBytes()))
	}
	for _, idx := range c.Indices {
		if int(idx) >= len(c.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestFlatTerrainNormals(t *testing.T) {
	tr := NewTerrain(WithBounds(0, 0, 25, 25), WithChunkSize(25), WithResolution(4), WithHeightFunc(Flat))
	if err := tr.Generate(); err != nil {
		t.Fatal(err)
	}

	for _, v := range tr.Chunk(0, 0).Vertices {
		if v.Position[1] != 0 {
			t.Fatalf("flat terrain has elevation %v", v.Position[1])
		}
		if v.Normal != [3]float32{0, 1, 0} {
			t.Fatalf("flat terrain normal = %v, want (0,1,0)", v.Normal)
		}
	}
}

func TestNormalsUnitLength(t *testing.T) {
	tr := NewTerrain(WithBounds(0, 0, 25, 25), WithChunkSize(25), WithResolution(8))
	if err := tr.Generate(); err != nil {
		t.Fatal(err)
	}

	for _, v := range tr.Chunk(0, 0).Vertices {
		n := v.Normal
		length := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		if math.Abs(length-1) > 1e-4 {
			t.Fatalf("normal %v has length %v", n, length)
		}
	}
}

func TestChunksInBounds(t *testing.T) {
	tr := NewTerrain(WithBounds(0, 0, 100, 100), WithChunkSize(25), WithResolution(2))
	if err := tr.Generate(); err != nil {
		t.Fatal(err)
	}

	// A rectangle entirely inside one chunk.
	got := tr.ChunksInBounds(5, 5, 10, 10)
	if len(got) != 1 || got[0].X != 0 || got[0].Z != 0 {
		t.Errorf("inside-one-chunk query returned %d chunks", len(got))
	}

	// A rectangle straddling a 2x2 chunk corner.
	got = tr.ChunksInBounds(20, 20, 30, 30)
	if len(got) != 4 {
		t.Errorf("corner query returned %d chunks, want 4", len(got))
	}

	// A rectangle outside the terrain.
	got = tr.ChunksInBounds(200, 200, 300, 300)
	if len(got) != 0 {
		t.Errorf("outside query returned %d chunks, want 0", len(got))
	}

	// A rectangle covering everything.
	got = tr.ChunksInBounds(-50, -50, 500, 500)
	if len(got) != 16 {
		t.Errorf("covering query returned %d chunks, want 16", len(got))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewTerrain(WithBounds(0, 0, 50, 50), WithChunkSize(25), WithResolution(8))
	b := NewTerrain(WithBounds(0, 0, 50, 50), WithChunkSize(25), WithResolution(8))
	if err := a.Generate(); err != nil {
		t.Fatal(err)
	}
	if err := b.Generate(); err != nil {
		t.Fatal(err)
	}

	ca, cb := a.Chunks(), b.Chunks()
	if len(ca) != len(cb) {
		t.Fatalf("chunk counts differ: %d vs %d", len(ca), len(cb))
	}
	for i := range ca {
		if len(ca[i].Vertices) != len(cb[i].Vertices) {
			t.Fatalf("chunk %d vertex counts differ", i)
		}
		for j := range ca[i].Vertices {
			if ca[i].Vertices[j] != cb[i].Vertices[j] {
				t.Fatalf("chunk %d vertex %d differs", i, j)
			}
		}
	}
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	if err := NewTerrain(WithChunkSize(-1)).Generate(); err == nil {
		t.Error("negative chunk size should error")
	}
	if err := NewTerrain(WithResolution(0)).Generate(); err == nil {
		t.Error("zero resolution should error")
	}
	if err := NewTerrain(WithBounds(10, 10, 10, 10)).Generate(); err == nil {
		t.Error("empty bounds should error")
	}
}

func TestChunkElevationBounds(t *testing.T) {
	tr := NewTerrain(WithBounds(0, 0, 25, 25), WithChunkSize(25), WithResolution(8))
	if err := tr.Generate(); err != nil {
		t.Fatal(err)
	}

	c := tr.Chunk(0, 0)
	if c.MinY > c.MaxY {
		t.Fatalf("elevation bounds inverted: [%v, %v]", c.MinY, c.MaxY)
	}
	for _, v := range c.Vertices {
		if v.Position[1] < c.MinY || v.Position[1] > c.MaxY {
			t.Fatalf("vertex elevation %v outside bounds [%v, %v]", v.Position[1], c.MinY, c.MaxY)
		}
	}
}

func TestHeightAtMatchesHeightFunc(t *testing.T) {
	tr := NewTerrain(WithHeightFunc(func(x, z float32) float32 { return x + 2*z }))
	if tr.HeightAt(3, 4) != 11 {
		t.Errorf("HeightAt(3,4) = %v, want 11", tr.HeightAt(3, 4))
	}
}
