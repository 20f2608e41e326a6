package svga3d

import "github.com/gogpu/svga3d/wire"

// vgpu9MaxRenderTargets bounds the legacy fixed-function render-target
// slots (SVGA3D_RT_*), independent of the DX COTable-backed RTV slots in
// dxcontext.Context.
const vgpu9MaxRenderTargets = 8

// vgpu9MaxShaderStages is VERTEX/PIXEL for the legacy shader model.
const vgpu9MaxShaderStages = 2

// VGPU9Context is one legacy fixed-function 3D context (spec §3.5,
// CONTEXT_DEFINE/CONTEXT_DESTROY). Unlike a DX context its render-target
// and texture bindings reference a surface directly
// (wire.SurfaceImageId), not an indirection through a view object, which
// is exactly the shape spec §8 seed scenario #6 exercises
// ("bind surface 42 as render target 0").
type VGPU9Context struct {
	CID uint32

	RenderTargets [vgpu9MaxRenderTargets]wire.SurfaceImageId
	ShaderIDs     [vgpu9MaxShaderStages]uint32
}

func newVGPU9Context(cid uint32) *VGPU9Context {
	c := &VGPU9Context{CID: cid}
	for i := range c.RenderTargets {
		c.RenderTargets[i] = wire.SurfaceImageId{SID: InvalidID}
	}
	for i := range c.ShaderIDs {
		c.ShaderIDs[i] = InvalidID
	}
	return c
}

// vgpu9ContextSet is the sparse, auto-growing array of legacy contexts,
// mirroring dxcontext.Manager's shape but for the VGPU9 command family.
type vgpu9ContextSet struct {
	contexts []*VGPU9Context
}

func (s *vgpu9ContextSet) growTo(cid uint32) {
	need := AlignGrowTo(cid)
	if uint32(len(s.contexts)) >= need {
		return
	}
	grown := make([]*VGPU9Context, need)
	copy(grown, s.contexts)
	s.contexts = grown
}

// get returns the context at cid, or nil if undefined or out of range.
func (s *vgpu9ContextSet) get(cid uint32) *VGPU9Context {
	if cid >= uint32(len(s.contexts)) {
		return nil
	}
	return s.contexts[cid]
}

// define creates or replaces the context at cid.
func (s *vgpu9ContextSet) define(cid uint32) (*VGPU9Context, error) {
	if cid >= MaxContextIDs {
		return nil, Invalidf("vgpu9Context.Define", "cid %d exceeds MaxContextIDs", cid)
	}
	s.growTo(cid)
	ctx := newVGPU9Context(cid)
	s.contexts[cid] = ctx
	return ctx, nil
}

// destroy removes the context at cid.
func (s *vgpu9ContextSet) destroy(cid uint32) error {
	ctx := s.get(cid)
	if ctx == nil {
		return Invalidf("vgpu9Context.Destroy", "context %d not defined", cid)
	}
	s.contexts[cid] = nil
	return nil
}

// unbindSurface clears every render-target slot across every legacy
// context that references sid (spec §4.4 destroy: "Scan every ... context:
// if this surface is bound ... clear that binding").
func (s *vgpu9ContextSet) unbindSurface(sid uint32) {
	for _, ctx := range s.contexts {
		if ctx == nil {
			continue
		}
		for i := range ctx.RenderTargets {
			if ctx.RenderTargets[i].SID == sid {
				ctx.RenderTargets[i] = wire.SurfaceImageId{SID: InvalidID}
			}
		}
	}
}

// reset clears every legacy context (device reset, spec §5).
func (s *vgpu9ContextSet) reset() {
	s.contexts = nil
}
