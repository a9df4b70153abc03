package scene

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/iso-go/common"
	"github.com/Carmen-Shannon/iso-go/engine/camera"
)

// applyColumnMajor multiplies a column-major 4x4 matrix by a vec4.
func applyColumnMajor(m []float32, v [4]float32) [4]float32 {
	var out [4]float32
	for i := range 4 {
		out[i] = m[0*4+i]*v[0] + m[1*4+i]*v[1] + m[2*4+i]*v[2] + m[3*4+i]*v[3]
	}
	return out
}

// applyRowMajor multiplies a row-major 4x4 matrix by a vec4.
func applyRowMajor(m [16]float32, v [4]float32) [4]float32 {
	var out [4]float32
	for i := range 4 {
		out[i] = m[i*4+0]*v[0] + m[i*4+1]*v[1] + m[i*4+2]*v[2] + m[i*4+3]*v[3]
	}
	return out
}

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestComputeProjectionClipMapping(t *testing.T) {
	var proj [16]float32
	viewExtent := float32(40)
	aspect := float32(2)
	computeProjection(proj[:], viewExtent, aspect, 0, 0)

	// The right edge of the view window lands at clip x = 1.
	right := applyColumnMajor(proj[:], [4]float32{viewExtent * aspect, 0, 0, 1})
	if !approxEqual(right[0], 1) {
		t.Errorf("right edge clip x = %v, want 1", right[0])
	}

	// The bottom edge lands at clip y = -1.
	bottom := applyColumnMajor(proj[:], [4]float32{0, -viewExtent, 0, 1})
	if !approxEqual(bottom[1], -1) {
		t.Errorf("bottom edge clip y = %v, want -1", bottom[1])
	}

	// The center maps to the origin with depth inside [0, 1].
	center := applyColumnMajor(proj[:], [4]float32{0, 0, 0, 1})
	if !approxEqual(center[0], 0) || !approxEqual(center[1], 0) {
		t.Errorf("center maps to (%v, %v), want origin", center[0], center[1])
	}
	if center[2] < 0 || center[2] > 1 {
		t.Errorf("center depth = %v, want within [0, 1]", center[2])
	}
}

func TestProjectionCentersOnCameraAnchor(t *testing.T) {
	cam := camera.NewCamera(camera.WithWorldPosition(50, 50), camera.WithHeight(100))

	centerX, centerY := viewCenter(cam)
	var proj, viewScratch, vpScratch [16]float32
	computeProjection(proj[:], 40, 16.0/9.0, centerX, centerY)
	uniform := buildCameraUniform(cam, proj[:], viewScratch[:], vpScratch[:])

	// The camera's own ground anchor lands in the middle of the screen.
	wx, wz, _ := cam.WorldPosition()
	clip := applyColumnMajor(uniform.ViewProj[:], [4]float32{wx, 0, wz, 1})
	if !approxEqual(clip[0], 0) || !approxEqual(clip[1], 0) {
		t.Errorf("camera anchor maps to clip (%v, %v), want origin", clip[0], clip[1])
	}
}

func TestBuildCameraUniformPosition(t *testing.T) {
	cam := camera.NewCamera(camera.WithWorldPosition(10, 20), camera.WithHeight(50))

	centerX, centerY := viewCenter(cam)
	var proj, viewScratch, vpScratch [16]float32
	computeProjection(proj[:], 40, 16.0/9.0, centerX, centerY)
	uniform := buildCameraUniform(cam, proj[:], viewScratch[:], vpScratch[:])

	want := [3]float32{10, 50, 20}
	if uniform.CameraPosition != want {
		t.Errorf("camera position = %v, want %v", uniform.CameraPosition, want)
	}
}

func TestBuildCameraUniformComposesViewAndProjection(t *testing.T) {
	cam := camera.NewCamera(camera.WithWorldPosition(30, 40), camera.WithHeight(80))

	centerX, centerY := viewCenter(cam)
	var proj, viewScratch, vpScratch [16]float32
	computeProjection(proj[:], 40, 1, centerX, centerY)
	uniform := buildCameraUniform(cam, proj[:], viewScratch[:], vpScratch[:])

	// Applying the combined matrix to a world point must match applying the
	// view then the projection separately.
	point := [4]float32{12, 3, 45, 1}
	viewed := applyRowMajor(cam.ViewMatrix(), point)
	want := applyColumnMajor(proj[:], viewed)
	got := applyColumnMajor(uniform.ViewProj[:], point)

	for i := range 4 {
		if !approxEqual(got[i], want[i]) {
			t.Fatalf("component %d = %v, want %v (got %v want %v)", i, got[i], want[i], got, want)
		}
	}
}

func TestFrustumCullingAgainstChunkBoxes(t *testing.T) {
	cam := camera.NewCamera(camera.WithWorldPosition(50, 50), camera.WithHeight(100))

	// A narrow view window so only nearby chunks fit.
	centerX, centerY := viewCenter(cam)
	var proj, viewScratch, vpScratch [16]float32
	computeProjection(proj[:], 5, 1, centerX, centerY)
	uniform := buildCameraUniform(cam, proj[:], viewScratch[:], vpScratch[:])
	frustum := common.ExtractFrustumFromMatrix(uniform.ViewProj[:])

	// The chunk directly under the camera is visible.
	if !frustum.IntersectsAABB([3]float32{45, -5, 45}, [3]float32{55, 5, 55}) {
		t.Error("chunk under the camera was culled")
	}

	// The far map corner projects well outside the narrow window.
	if frustum.IntersectsAABB([3]float32{90, 0, 90}, [3]float32{100, 5, 100}) {
		t.Error("far corner chunk was not culled")
	}
}

func TestCullRectContainsVisibleBounds(t *testing.T) {
	cam := camera.NewCamera(camera.WithWorldPosition(50, 50), camera.WithHeight(200))

	minX, minZ, maxX, maxZ := cullRect(cam, 40, 16.0/9.0)
	bMinX, bMinZ, bMaxX, bMaxZ := cam.VisibleBounds()

	if minX > bMinX || minZ > bMinZ || maxX < bMaxX || maxZ < bMaxZ {
		t.Errorf("cull rect (%v,%v)-(%v,%v) does not contain visible bounds (%v,%v)-(%v,%v)",
			minX, minZ, maxX, maxZ, bMinX, bMinZ, bMaxX, bMaxZ)
	}
}

func TestCullRectGrowsWithViewExtent(t *testing.T) {
	cam := camera.NewCamera(camera.WithWorldPosition(50, 50), camera.WithHeight(100))

	minSmall, _, maxSmall, _ := cullRect(cam, 20, 1)
	minLarge, _, maxLarge, _ := cullRect(cam, 60, 1)

	if maxLarge-minLarge <= maxSmall-minSmall {
		t.Errorf("larger view extent produced a smaller cull rect: %v vs %v",
			maxLarge-minLarge, maxSmall-minSmall)
	}
}
