package scene

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/iso-go/common"
	"github.com/Carmen-Shannon/iso-go/engine/camera"
	"github.com/Carmen-Shannon/iso-go/engine/input"
	"github.com/Carmen-Shannon/iso-go/engine/light"
	"github.com/Carmen-Shannon/iso-go/engine/renderer"
	"github.com/Carmen-Shannon/iso-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/iso-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/iso-go/engine/renderer/shader"
	"github.com/Carmen-Shannon/iso-go/engine/terrain"
	"github.com/cogentcore/webgpu/wgpu"
)

const terrainPipelineKey = "terrain"

// Scene ties a Camera, a Renderer, and a Terrain together into a renderable view.
// It owns the camera uniform buffer, the terrain render pipeline, and the per-chunk
// GPU mesh resources, and culls chunks against the camera's visible bounds each frame.
// Scenes can be hot-swapped via the Active flag to switch between different views.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// Terrain returns the scene's terrain.
	Terrain() terrain.Terrain

	// Sun returns the scene's directional light.
	Sun() light.Light

	// Load generates the terrain chunks and uploads their meshes to the GPU.
	// Must be called once before the first Update/DrawCalls.
	//
	// Returns:
	//   - error: error if terrain generation or GPU upload fails
	Load() error

	// Update advances the camera with the latest input snapshot and stages the
	// updated camera uniform for the GPU. Call once per simulation tick.
	//
	// Parameters:
	//   - in: the input snapshot for this tick
	//   - deltaTime: elapsed time since the last tick in seconds
	Update(in input.Snapshot, deltaTime float32)

	// DrawCalls issues one instanced draw call per visible terrain chunk.
	// Must be called within a BeginFrame/EndFrame block on the renderer.
	//
	// Returns:
	//   - error: error if a draw call fails
	DrawCalls() error

	// Resize updates the projection for a new surface size and reconfigures the
	// renderer's surface.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// VisibleChunks returns the terrain chunks that passed culling in the most
	// recent Update.
	//
	// Returns:
	//   - []*terrain.Chunk: the visible chunks
	VisibleChunks() []*terrain.Chunk
}

// chunkMesh pairs a terrain chunk with its GPU mesh resources.
type chunkMesh struct {
	chunk    *terrain.Chunk
	provider bind_group_provider.BindGroupProvider
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	cam   camera.Camera
	r     renderer.Renderer
	terra terrain.Terrain
	sun   light.Light

	sceneBGP bind_group_provider.BindGroupProvider
	meshes   []chunkMesh
	visible  []*terrain.Chunk

	cullingDisabled bool

	// viewExtent is the vertical half-size of the orthographic view volume in
	// projected (isometric screen) units.
	viewExtent float32
	width      int
	height     int

	// Pre-allocated scratch reused each frame to avoid per-frame allocations.
	projection [16]float32
	viewColumn [16]float32
	viewProj   [16]float32
	writePool  []bind_group_provider.BufferWrite
	drawGroups []bind_group_provider.BindGroupProvider
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera, renderer, and terrain.
// All three are required and NewScene panics if any of them is nil. The terrain
// render pipeline is registered and the camera uniform bind group is initialized
// on the GPU during construction.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - terra: the terrain to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, terra terrain.Terrain, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}
	if terra == nil {
		panic("scene: NewScene requires a non-nil Terrain")
	}

	s := &scene{
		mu:         &sync.RWMutex{},
		name:       name,
		active:     false,
		cam:        cam,
		r:          r,
		terra:      terra,
		sun:        light.NewDirectionalLight(),
		viewExtent: 40,
		width:      1280,
		height:     720,
		drawGroups: make([]bind_group_provider.BindGroupProvider, 0, 1),
	}

	for _, option := range options {
		option(s)
	}

	sceneLayout := sceneBindGroupLayout()
	vs := shader.NewShader("terrain_vs", shader.ShaderTypeVertex, terrain.GPUTerrainShaderSource,
		shader.WithBindGroupLayout(0, sceneLayout),
		shader.WithVertexLayout(0, terrain.VertexBufferLayout()),
	)
	fs := shader.NewShader("terrain_fs", shader.ShaderTypeFragment, terrain.GPUTerrainShaderSource)

	if err := r.RegisterPipelines(pipeline.NewPipeline(terrainPipelineKey,
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
		pipeline.WithCullMode(wgpu.CullModeBack),
	)); err != nil {
		panic(fmt.Sprintf("scene: failed to register terrain pipeline: %v", err))
	}

	s.sceneBGP = bind_group_provider.NewBindGroupProvider(name + " scene uniforms")
	if err := r.InitBindGroup(s.sceneBGP, sceneLayout, nil, nil); err != nil {
		panic(fmt.Sprintf("scene: failed to init scene uniform bind group: %v", err))
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Renderer() renderer.Renderer {
	return s.r
}

func (s *scene) Terrain() terrain.Terrain {
	return s.terra
}

func (s *scene) Sun() light.Light {
	return s.sun
}

func (s *scene) Load() error {
	if err := s.terra.Generate(); err != nil {
		return fmt.Errorf("scene: terrain generation failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	chunks := s.terra.Chunks()
	s.meshes = make([]chunkMesh, 0, len(chunks))
	for _, c := range chunks {
		provider := bind_group_provider.NewBindGroupProvider(
			fmt.Sprintf("%s chunk (%d,%d)", s.name, c.X, c.Z))
		if err := s.r.InitMeshBuffers(provider, c.VertexBytes(), c.IndexBytes(), c.IndexCount()); err != nil {
			return fmt.Errorf("scene: failed to upload chunk (%d,%d): %w", c.X, c.Z, err)
		}
		s.meshes = append(s.meshes, chunkMesh{chunk: c, provider: provider})
	}
	return nil
}

func (s *scene) Update(in input.Snapshot, deltaTime float32) {
	s.cam.Update(in, deltaTime)

	s.mu.Lock()
	defer s.mu.Unlock()

	centerX, centerY := viewCenter(s.cam)
	computeProjection(s.projection[:], s.viewExtent, float32(s.width)/float32(s.height), centerX, centerY)
	uniform := buildCameraUniform(s.cam, s.projection[:], s.viewColumn[:], s.viewProj[:])
	sunUniform := light.UniformFromLight(s.sun)

	s.writePool = s.writePool[:0]
	s.writePool = append(s.writePool,
		bind_group_provider.BufferWrite{
			Provider: s.sceneBGP,
			Binding:  0,
			Offset:   0,
			Data:     uniform.Marshal(),
		},
		bind_group_provider.BufferWrite{
			Provider: s.sceneBGP,
			Binding:  1,
			Offset:   0,
			Data:     sunUniform.Marshal(),
		},
	)
	s.r.WriteBuffers(s.writePool)

	if s.cullingDisabled {
		s.visible = s.terra.Chunks()
		return
	}

	// Coarse pass first: a conservative world rectangle narrows the candidate
	// set, then the extracted frustum trims chunks whose elevation range puts
	// them outside the view volume.
	minX, minZ, maxX, maxZ := cullRect(s.cam, s.viewExtent, float32(s.width)/float32(s.height))
	candidates := s.terra.ChunksInBounds(minX, minZ, maxX, maxZ)

	frustum := common.ExtractFrustumFromMatrix(s.viewProj[:])
	s.visible = s.visible[:0]
	for _, c := range candidates {
		if frustum.IntersectsAABB([3]float32{c.MinX, c.MinY, c.MinZ}, [3]float32{c.MaxX, c.MaxY, c.MaxZ}) {
			s.visible = append(s.visible, c)
		}
	}
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.drawGroups = s.drawGroups[:0]
	s.drawGroups = append(s.drawGroups, s.sceneBGP)

	for _, m := range s.meshes {
		if !s.chunkVisible(m.chunk) {
			continue
		}
		if err := s.r.DrawCall(terrainPipelineKey, m.provider, 1, s.drawGroups); err != nil {
			return err
		}
	}
	return nil
}

func (s *scene) Resize(width, height int) {
	s.mu.Lock()
	if width > 0 && height > 0 {
		s.width = width
		s.height = height
	}
	s.mu.Unlock()

	s.r.Resize(width, height)
}

func (s *scene) VisibleChunks() []*terrain.Chunk {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*terrain.Chunk, len(s.visible))
	copy(out, s.visible)
	return out
}

// chunkVisible reports whether the chunk is in the most recent culling result.
// Caller must hold s.mu.
func (s *scene) chunkVisible(c *terrain.Chunk) bool {
	for _, v := range s.visible {
		if v == c {
			return true
		}
	}
	return false
}

// sceneBindGroupLayout is the layout for the scene-wide uniforms at group 0:
// the camera at binding 0, shared by the vertex stage (view-projection) and
// fragment stage (camera position), and the sun light at binding 1.
func sceneBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	var cameraUniform camera.GPUCameraUniform
	var sunUniform light.GPULightUniform
	return wgpu.BindGroupLayoutDescriptor{
		Label: "scene uniforms",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(cameraUniform.Size()),
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(sunUniform.Size()),
				},
			},
		},
	}
}

// computeProjection fills out with the column-major orthographic projection for
// the given view extent and aspect ratio, centered on (centerX, centerY) in
// view space. The view matrix leaves the camera's anchor at a nonzero view
// position, so the window is re-centered on it each tick to keep the camera in
// the middle of the screen. The near/far range is generous so the full map
// depth stays inside the view volume at any camera altitude.
func computeProjection(out []float32, viewExtent, aspect, centerX, centerY float32) {
	halfH := viewExtent
	halfW := viewExtent * aspect
	common.Orthographic(out, centerX-halfW, centerX+halfW, centerY-halfH, centerY+halfH, -2000, 2000)
}

// viewCenter returns the view-space position of the camera's ground anchor,
// the point the orthographic window should center on.
func viewCenter(cam camera.Camera) (x, y float32) {
	view := cam.ViewMatrix()
	wx, wz, _ := cam.WorldPosition()

	x = view[0]*wx + view[2]*wz + view[3]
	y = view[4]*wx + view[6]*wz + view[7]
	return x, y
}

// buildCameraUniform composes the GPU camera uniform from the camera's row-major
// view matrix and a column-major projection. The scratch slices must each hold
// 16 elements and are overwritten.
func buildCameraUniform(cam camera.Camera, projection, viewScratch, vpScratch []float32) camera.GPUCameraUniform {
	view := cam.ViewMatrix()

	// The camera hands out a row-major matrix; WGSL uniforms are column-major.
	common.Transpose4(viewScratch, view[:])
	common.Mul4(vpScratch, projection, viewScratch)

	x, z, height := cam.WorldPosition()
	var uniform camera.GPUCameraUniform
	copy(uniform.ViewProj[:], vpScratch)
	uniform.CameraPosition = [3]float32{x, height, z}
	return uniform
}

// cullRect computes a conservative world-space rectangle of terrain that can
// appear inside the orthographic view volume. It starts from the camera's
// visible bounds and inflates them by the world-space reach of the view window,
// since the window is usually far wider than the altitude-scaled bounds radius.
// Inverting the axonometric basis maps one view unit to under one world unit
// along each axis; the extra margin absorbs the elevation term in view y. The
// frustum pass trims the remainder.
func cullRect(cam camera.Camera, viewExtent, aspect float32) (minX, minZ, maxX, maxZ float32) {
	minX, minZ, maxX, maxZ = cam.VisibleBounds()

	halfW := viewExtent * aspect
	halfH := viewExtent
	pad := halfW + halfH + 64

	return minX - pad, minZ - pad, maxX + pad, maxZ + pad
}
