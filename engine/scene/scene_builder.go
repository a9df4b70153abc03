package scene

import "github.com/Carmen-Shannon/iso-go/engine/light"

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithViewExtent sets the vertical half-size of the orthographic view volume in
// projected units. Larger values show more of the map at once. Values <= 0 are
// ignored and the default of 40 is kept.
//
// Parameters:
//   - extent: the vertical half-extent of the view volume
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithViewExtent(extent float32) SceneBuilderOption {
	return func(s *scene) {
		if extent > 0 {
			s.viewExtent = extent
		}
	}
}

// WithLight replaces the scene's directional sun light.
//
// Parameters:
//   - sun: the light to use (nil is ignored)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(sun light.Light) SceneBuilderOption {
	return func(s *scene) {
		if sun != nil {
			s.sun = sun
		}
	}
}

// WithCullingDisabled disables chunk culling; every generated chunk is drawn
// each frame. Useful for debugging culling artifacts.
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCullingDisabled() SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = true
	}
}

// WithSurfaceSize sets the initial surface dimensions used for the projection's
// aspect ratio, before the first Resize arrives from the window. Non-positive
// dimensions are ignored.
//
// Parameters:
//   - width: the initial surface width in pixels
//   - height: the initial surface height in pixels
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSurfaceSize(width, height int) SceneBuilderOption {
	return func(s *scene) {
		if width > 0 && height > 0 {
			s.width = width
			s.height = height
		}
	}
}
