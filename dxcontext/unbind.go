package dxcontext

import "github.com/gogpu/svga3d"

// ClearViewBinding replaces every live reference to viewID across every DX
// context's pipeline bindings with svga3d.InvalidID (spec §8: "Destroying
// a surface implies: for every DX context, every slot that referenced sid
// is now INVALID_ID"). Core calls this once per bound view object (RTV,
// DSV, SRV, UAV) whose surface is being destroyed, since the pipeline
// state here is expressed in terms of view ids, not surface ids directly.
func (m *Manager) ClearViewBinding(viewID uint32) {
	for _, ctx := range m.contexts {
		if ctx == nil {
			continue
		}
		if ctx.Pipeline.DepthStencilViewID == viewID {
			ctx.Pipeline.DepthStencilViewID = svga3d.InvalidID
		}
		for i := range ctx.Pipeline.RenderTargetViewID {
			if ctx.Pipeline.RenderTargetViewID[i] == viewID {
				ctx.Pipeline.RenderTargetViewID[i] = svga3d.InvalidID
			}
		}
		for stage := range ctx.ShaderResources {
			for i, id := range ctx.ShaderResources[stage] {
				if id == viewID {
					ctx.ShaderResources[stage][i] = svga3d.InvalidID
				}
			}
		}
		for i := range ctx.UnorderedAccessViews {
			if ctx.UnorderedAccessViews[i] == viewID {
				ctx.UnorderedAccessViews[i] = svga3d.InvalidID
			}
		}
		for i := range ctx.StreamOutputTargets {
			if ctx.StreamOutputTargets[i] == viewID {
				ctx.StreamOutputTargets[i] = svga3d.InvalidID
			}
		}
	}
}

// Each calls fn for every defined DX context, in ascending cid order.
func (m *Manager) Each(fn func(*Context)) {
	for _, ctx := range m.contexts {
		if ctx != nil {
			fn(ctx)
		}
	}
}
