package svga3d

// dxView is the core-side bookkeeping record for a DX view object
// (render-target, depth-stencil, shader-resource, or unordered-access
// view): just enough to validate later references and to unbind it when
// its underlying surface is destroyed (spec §8: "every slot that
// referenced sid is now INVALID_ID"). The backend interface (§6.2) has no
// view-creation method of its own — a view's hardware identity, if any,
// lives entirely inside the backend's own cid/sid-keyed state.
type dxView struct {
	ID  uint32
	SID uint32
}

// DefineRenderTargetView records viewID as a render-target view over sid
// (DX_DEFINE_RENDERTARGET_VIEW, spec §6.1 family).
func (c *Core) DefineRenderTargetView(viewID, sid uint32) error {
	if c.Surfaces.Get(sid) == nil {
		return Invalidf("Core.DefineRenderTargetView", "sid %d not defined", sid)
	}
	c.rtViews[viewID] = dxView{ID: viewID, SID: sid}
	return nil
}

// DestroyRenderTargetView removes viewID and clears every context binding
// that referenced it (DX_DESTROY_RENDERTARGET_VIEW).
func (c *Core) DestroyRenderTargetView(viewID uint32) error {
	if _, ok := c.rtViews[viewID]; !ok {
		return Invalidf("Core.DestroyRenderTargetView", "view %d not defined", viewID)
	}
	delete(c.rtViews, viewID)
	c.DXContexts.ClearViewBinding(viewID)
	return nil
}

// DefineDepthStencilView records viewID as a depth-stencil view over sid
// (DX_DEFINE_DEPTHSTENCIL_VIEW).
func (c *Core) DefineDepthStencilView(viewID, sid uint32) error {
	if c.Surfaces.Get(sid) == nil {
		return Invalidf("Core.DefineDepthStencilView", "sid %d not defined", sid)
	}
	c.dsViews[viewID] = dxView{ID: viewID, SID: sid}
	return nil
}

// DestroyDepthStencilView removes viewID (DX_DESTROY_DEPTHSTENCIL_VIEW).
func (c *Core) DestroyDepthStencilView(viewID uint32) error {
	if _, ok := c.dsViews[viewID]; !ok {
		return Invalidf("Core.DestroyDepthStencilView", "view %d not defined", viewID)
	}
	delete(c.dsViews, viewID)
	c.DXContexts.ClearViewBinding(viewID)
	return nil
}

// DefineShaderResourceView records viewID as a shader-resource view over
// sid (DX_DEFINE_SHADERRESOURCE_VIEW).
func (c *Core) DefineShaderResourceView(viewID, sid uint32) error {
	if c.Surfaces.Get(sid) == nil {
		return Invalidf("Core.DefineShaderResourceView", "sid %d not defined", sid)
	}
	c.srViews[viewID] = dxView{ID: viewID, SID: sid}
	return nil
}

// DestroyShaderResourceView removes viewID (DX_DESTROY_SHADERRESOURCE_VIEW).
func (c *Core) DestroyShaderResourceView(viewID uint32) error {
	if _, ok := c.srViews[viewID]; !ok {
		return Invalidf("Core.DestroyShaderResourceView", "view %d not defined", viewID)
	}
	delete(c.srViews, viewID)
	c.DXContexts.ClearViewBinding(viewID)
	return nil
}

// DefineUAView records viewID as an unordered-access view over sid
// (DX_DEFINE_UA_VIEW, §4 supplemented feature).
func (c *Core) DefineUAView(viewID, sid uint32) error {
	if c.Surfaces.Get(sid) == nil {
		return Invalidf("Core.DefineUAView", "sid %d not defined", sid)
	}
	c.uaViews[viewID] = dxView{ID: viewID, SID: sid}
	return nil
}

// DestroyUAView removes viewID (DX_DESTROY_UA_VIEW).
func (c *Core) DestroyUAView(viewID uint32) error {
	if _, ok := c.uaViews[viewID]; !ok {
		return Invalidf("Core.DestroyUAView", "view %d not defined", viewID)
	}
	delete(c.uaViews, viewID)
	c.DXContexts.ClearViewBinding(viewID)
	return nil
}

// unbindSurfaceViews removes every RTV/DSV/SRV/UAV referencing sid and
// clears the corresponding DX context bindings (spec §8, §4.4 destroy).
// Called from Core's surface.Catalog onUnbind hook.
func (c *Core) unbindSurfaceViews(sid uint32) {
	for id, v := range c.rtViews {
		if v.SID == sid {
			delete(c.rtViews, id)
			c.DXContexts.ClearViewBinding(id)
		}
	}
	for id, v := range c.dsViews {
		if v.SID == sid {
			delete(c.dsViews, id)
			c.DXContexts.ClearViewBinding(id)
		}
	}
	for id, v := range c.srViews {
		if v.SID == sid {
			delete(c.srViews, id)
			c.DXContexts.ClearViewBinding(id)
		}
	}
	for id, v := range c.uaViews {
		if v.SID == sid {
			delete(c.uaViews, id)
			c.DXContexts.ClearViewBinding(id)
		}
	}
}
