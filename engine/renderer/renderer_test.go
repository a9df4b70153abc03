package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func uniformEntry(binding uint32, visibility wgpu.ShaderStage, size uint64) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: visibility,
		Buffer: wgpu.BufferBindingLayout{
			Type:           wgpu.BufferBindingTypeUniform,
			MinBindingSize: size,
		},
	}
}

func TestMergeBindGroupLayoutsDisjointGroups(t *testing.T) {
	vertex := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Label: "camera", Entries: []wgpu.BindGroupLayoutEntry{uniformEntry(0, wgpu.ShaderStageVertex, 80)}},
	}
	fragment := map[int]wgpu.BindGroupLayoutDescriptor{
		1: {Label: "tint", Entries: []wgpu.BindGroupLayoutEntry{uniformEntry(0, wgpu.ShaderStageFragment, 16)}},
	}

	merged := mergeBindGroupLayouts(vertex, fragment)
	if len(merged) != 2 {
		t.Fatalf("merged %d groups, want 2", len(merged))
	}
	if merged[0].Entries[0].Visibility != wgpu.ShaderStageVertex {
		t.Errorf("group 0 visibility = %v", merged[0].Entries[0].Visibility)
	}
	if merged[1].Entries[0].Visibility != wgpu.ShaderStageFragment {
		t.Errorf("group 1 visibility = %v", merged[1].Entries[0].Visibility)
	}
}

func TestMergeBindGroupLayoutsSharedBinding(t *testing.T) {
	vertex := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Label: "camera", Entries: []wgpu.BindGroupLayoutEntry{uniformEntry(0, wgpu.ShaderStageVertex, 80)}},
	}
	fragment := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Label: "camera", Entries: []wgpu.BindGroupLayoutEntry{uniformEntry(0, wgpu.ShaderStageFragment, 80)}},
	}

	merged := mergeBindGroupLayouts(vertex, fragment)
	if len(merged) != 1 {
		t.Fatalf("merged %d groups, want 1", len(merged))
	}
	want := wgpu.ShaderStageVertex | wgpu.ShaderStageFragment
	if merged[0].Entries[0].Visibility != want {
		t.Errorf("shared binding visibility = %v, want %v", merged[0].Entries[0].Visibility, want)
	}
}

func TestMergeBindGroupLayoutsSortsEntries(t *testing.T) {
	vertex := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Entries: []wgpu.BindGroupLayoutEntry{uniformEntry(2, wgpu.ShaderStageVertex, 16)}},
	}
	fragment := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Entries: []wgpu.BindGroupLayoutEntry{
			uniformEntry(1, wgpu.ShaderStageFragment, 16),
			uniformEntry(0, wgpu.ShaderStageFragment, 16),
		}},
	}

	merged := mergeBindGroupLayouts(vertex, fragment)
	entries := merged[0].Entries
	if len(entries) != 3 {
		t.Fatalf("merged %d entries, want 3", len(entries))
	}
	for i, e := range entries {
		if e.Binding != uint32(i) {
			t.Errorf("entry %d has binding %d, want %d", i, e.Binding, i)
		}
	}
}
