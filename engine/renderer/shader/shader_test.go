package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

const testSource = `
@vertex
fn vs_main() -> @builtin(position) vec4<f32> {
	return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`

func TestNewShaderDefaults(t *testing.T) {
	vs := NewShader("test_vs", ShaderTypeVertex, testSource)
	if vs.EntryPoint() != "vs_main" {
		t.Errorf("vertex entry point = %q, want vs_main", vs.EntryPoint())
	}
	fs := NewShader("test_fs", ShaderTypeFragment, testSource)
	if fs.EntryPoint() != "fs_main" {
		t.Errorf("fragment entry point = %q, want fs_main", fs.EntryPoint())
	}
	if vs.Key() != "test_vs" || vs.ShaderType() != ShaderTypeVertex {
		t.Errorf("key/type = %q/%v", vs.Key(), vs.ShaderType())
	}
	if vs.Module() == nil || vs.Module().WGSLDescriptor.Code != testSource {
		t.Error("module descriptor does not carry the source")
	}
}

func TestNewShaderOptions(t *testing.T) {
	layout := wgpu.BindGroupLayoutDescriptor{
		Label: "camera",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: 80,
				},
			},
		},
	}
	vertexLayout := []wgpu.VertexBufferLayout{
		{
			ArrayStride: 24,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			},
		},
	}

	s := NewShader("terrain_vs", ShaderTypeVertex, testSource,
		WithEntryPoint("main"),
		WithBindGroupLayout(0, layout),
		WithVertexLayout(0, vertexLayout),
	)

	if s.EntryPoint() != "main" {
		t.Errorf("entry point = %q, want main", s.EntryPoint())
	}
	got := s.BindGroupLayoutDescriptor(0)
	if got.Label != "camera" || len(got.Entries) != 1 {
		t.Errorf("bind group layout 0 = %+v", got)
	}
	if len(s.VertexLayout(0)) != 1 || s.VertexLayout(0)[0].ArrayStride != 24 {
		t.Errorf("vertex layout 0 = %+v", s.VertexLayout(0))
	}
	if s.VertexLayout(1) != nil {
		t.Error("undeclared slot should return nil")
	}
	if len(s.BindGroupLayoutDescriptors()) != 1 || len(s.VertexLayouts()) != 1 {
		t.Error("maps should hold exactly the declared entries")
	}
}

func TestNewShaderEmptySourcePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty source")
		}
	}()
	NewShader("broken", ShaderTypeVertex, "")
}
