package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/iso-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

const stubSource = "fn stub() {}"

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("terrain")

	if p.PipelineKey() != "terrain" {
		t.Errorf("key = %q", p.PipelineKey())
	}
	if !p.DepthTestEnabled() || !p.DepthWriteEnabled() {
		t.Error("depth test and write should default on")
	}
	if p.BlendEnabled() {
		t.Error("blending should default off")
	}
	if p.CullMode() != wgpu.CullModeNone {
		t.Errorf("cull mode = %v", p.CullMode())
	}
	if p.Topology() != wgpu.PrimitiveTopologyTriangleList {
		t.Errorf("topology = %v", p.Topology())
	}
	if p.FrontFace() != wgpu.FrontFaceCCW {
		t.Errorf("front face = %v", p.FrontFace())
	}
	if p.WriteMask() != wgpu.ColorWriteMaskAll {
		t.Errorf("write mask = %v", p.WriteMask())
	}
	if p.BlendState() == nil {
		t.Error("default blend state should be set")
	}
	if p.Pipeline() != nil {
		t.Error("render pipeline should be nil before registration")
	}
}

func TestNewPipelineOptions(t *testing.T) {
	vs := shader.NewShader("vs", shader.ShaderTypeVertex, stubSource)
	fs := shader.NewShader("fs", shader.ShaderTypeFragment, stubSource)

	p := NewPipeline("grid",
		WithVertexShader(vs),
		WithFragmentShader(fs),
		WithDepthTestEnabled(false),
		WithDepthWriteEnabled(false),
		WithBlendEnabled(true),
		WithCullMode(wgpu.CullModeBack),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithDepthBias(2, 1.5),
	)

	if p.Shader(shader.ShaderTypeVertex) != vs || p.Shader(shader.ShaderTypeFragment) != fs {
		t.Error("shaders not stored")
	}
	if p.DepthTestEnabled() || p.DepthWriteEnabled() {
		t.Error("depth options not applied")
	}
	if !p.BlendEnabled() {
		t.Error("blend option not applied")
	}
	if p.CullMode() != wgpu.CullModeBack || p.Topology() != wgpu.PrimitiveTopologyLineList {
		t.Error("cull/topology options not applied")
	}
	if p.DepthBias() != 2 || p.DepthBiasSlopeScale() != 1.5 {
		t.Error("depth bias options not applied")
	}
}
