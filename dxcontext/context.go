package dxcontext

import (
	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/otable"
	"github.com/gogpu/svga3d/wire"
)

// contextLocalTables lists the per-context COTable types (spec §3.5): the
// object tables that are scoped to one DX context rather than shared
// device-wide like wire.OTableMOB/Surface/Context/Shader/ScreenTarget.
// DESIGN.md documents why this module keeps all seventeen wire.OTableType
// values (matching the global otable.Tables array) while only these twelve
// are ever bound per-context.
var contextLocalTables = [...]wire.OTableType{
	wire.OTableRTView,
	wire.OTableDSView,
	wire.OTableSRView,
	wire.OTableElementLayout,
	wire.OTableBlend,
	wire.OTableDepthStencil,
	wire.OTableRasterizer,
	wire.OTableSampler,
	wire.OTableStreamOutput,
	wire.OTableQuery,
	wire.OTableDXShader,
	wire.OTableUAView,
}

// IsContextLocal reports whether typ is one of the twelve per-context
// COTable types DX_SET_COTABLE may target.
func IsContextLocal(typ wire.OTableType) bool {
	for _, t := range contextLocalTables {
		if t == typ {
			return true
		}
	}
	return false
}

// Viewport is one DX_SET_VIEWPORTS entry (spec §3.5).
type Viewport struct {
	X, Y, Width, Height float32
	MinDepth, MaxDepth  float32
}

// ConstantBufferBinding is one DX_SET_SINGLE_CONSTANT_BUFFER slot.
type ConstantBufferBinding struct {
	SID           uint32
	OffsetInBytes uint32
	SizeInBytes   uint32
}

const (
	maxShaderStages     = 6  // VS, PS, GS, HS, DS, CS
	maxConstantBuffers  = 14 // D3D11_COMMONSHADER_CONSTANT_BUFFER_API_SLOT_COUNT
	maxVertexBuffers    = 32
	maxRenderTargets    = 8
	maxShaderResources  = 128
	maxSamplers         = 16
	maxStreamOutTargets = 4
	maxUAViews          = 8
)

// PipelineState is the fixed-layout scalar pipeline state a DX context
// carries, modeled as a struct of plain arrays so it can be copied
// wholesale to and from a bound MOB with encoding/binary by BindContext
// and ReadbackContext (spec §4.5.3 "DX context binding"), the same
// fixed-struct convention wire/decode.go uses for command payloads. It
// records only which view, state, layout, shader and query ids are bound;
// the definitions of those objects live in Context.COTables, addressed by
// otable.Table-style fixed-stride entries, not inline here.
type PipelineState struct {
	DepthStencilViewID uint32
	RenderTargetViewID [maxRenderTargets]uint32
	NumRenderTargets    uint32

	ShaderID [maxShaderStages]uint32

	Topology uint32

	IndexBufferSID    uint32
	IndexBufferFormat uint32
	IndexBufferOffset uint32

	VertexBufferSID    [maxVertexBuffers]uint32
	VertexBufferStride [maxVertexBuffers]uint32
	VertexBufferOffset [maxVertexBuffers]uint32
	NumVertexBuffers    uint32

	BlendStateID        uint32
	DepthStencilStateID uint32
	RasterizerStateID   uint32
	ElementLayoutID     uint32

	PredicateQueryID    uint32
	PredicateValue      uint32
}

// Context is one DX (VGPU10) rendering context (spec §3.5). A context's
// view/state-object/shader/sampler/query resource ids live in its
// per-context COTables (COTables field); its remaining scalar pipeline
// state (bound shaders, topology, vertex/index buffers, render targets,
// predication) lives in Pipeline; variable-length state that has no
// fixed wire-struct home (viewports, scissor rects) is kept as slices.
type Context struct {
	CID uint32

	// COTables holds one otable.Table per wire.OTableType, but only the
	// twelve contextLocalTables entries are ever Defined (spec §3.5).
	// Indexing by wire.OTableType keeps this parallel to otable.Tables.
	COTables [wire.NumOTableTypes]otable.Table

	Pipeline PipelineState

	Viewports    []Viewport
	ScissorRects []wire.SVGA3dRect

	ConstantBuffers [maxShaderStages][maxConstantBuffers]ConstantBufferBinding
	ShaderResources [maxShaderStages][]uint32 // shader-resource-view ids, variable count per DX_SET_SHADER_RESOURCES
	Samplers        [maxShaderStages][]uint32

	StreamOutputTargets [maxStreamOutTargets]uint32
	UnorderedAccessViews [maxUAViews]uint32

	// MobID is the MOB currently backing this context's bind/readback
	// state, or svga3d.InvalidID if unbound (spec §4.5.3 DX_BIND_CONTEXT).
	MobID uint32
}

// NewContext returns a freshly defined, unbound context (spec §4.5.3
// DX_DEFINE_CONTEXT). Its COTables are all undefined until DX_SET_COTABLE
// binds them.
func NewContext(cid uint32) *Context {
	c := &Context{CID: cid, MobID: svga3d.InvalidID}
	for _, typ := range contextLocalTables {
		c.COTables[typ] = *otable.NewTable(typ)
	}
	c.Pipeline.DepthStencilViewID = svga3d.InvalidID
	for i := range c.Pipeline.RenderTargetViewID {
		c.Pipeline.RenderTargetViewID[i] = svga3d.InvalidID
	}
	for i := range c.Pipeline.ShaderID {
		c.Pipeline.ShaderID[i] = svga3d.InvalidID
	}
	c.Pipeline.IndexBufferSID = svga3d.InvalidID
	for i := range c.Pipeline.VertexBufferSID {
		c.Pipeline.VertexBufferSID[i] = svga3d.InvalidID
	}
	c.Pipeline.BlendStateID = svga3d.InvalidID
	c.Pipeline.DepthStencilStateID = svga3d.InvalidID
	c.Pipeline.RasterizerStateID = svga3d.InvalidID
	c.Pipeline.ElementLayoutID = svga3d.InvalidID
	c.Pipeline.PredicateQueryID = svga3d.InvalidID
	for i := range c.StreamOutputTargets {
		c.StreamOutputTargets[i] = svga3d.InvalidID
	}
	for i := range c.UnorderedAccessViews {
		c.UnorderedAccessViews[i] = svga3d.InvalidID
	}
	return c
}
