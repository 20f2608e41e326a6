package svga3d

import (
	"github.com/gogpu/svga3d/backend"
	"github.com/gogpu/svga3d/wire"
)

// ---- Legacy VGPU9 fixed-function contexts -------------------------------

// ContextDefine creates or replaces cid in the legacy immediate-mode
// context array (spec §3.5, CONTEXT_DEFINE/DEFINE_GB_CONTEXT).
func (c *Core) ContextDefine(cid uint32) (*VGPU9Context, error) {
	ctx, err := c.vgpu9.define(cid)
	if err != nil {
		return nil, err
	}
	if bv9, err := c.caps.RequireVGPU9(); err == nil {
		if err := bv9.ContextDefine(cid); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}

// ContextDestroy removes cid (CONTEXT_DESTROY/DESTROY_GB_CONTEXT). Every
// surface bound as one of its render targets is left untouched — the
// binding lived on the context, which no longer exists.
func (c *Core) ContextDestroy(cid uint32) error {
	if err := c.vgpu9.destroy(cid); err != nil {
		return err
	}
	if bv9, err := c.caps.RequireVGPU9(); err == nil {
		_ = bv9.ContextDestroy(cid)
	}
	return nil
}

// VGPU9Ctx returns the legacy context at cid, or nil if undefined.
func (c *Core) VGPU9Ctx(cid uint32) *VGPU9Context {
	return c.vgpu9.get(cid)
}

// SetRenderTarget binds target as cid's render target slot rtType
// (SET_RENDER_TARGET, spec §8 seed scenario #6's legacy shape: a surface
// bound directly, with no view-object indirection).
func (c *Core) SetRenderTarget(cid, rtType uint32, target wire.SurfaceImageId) error {
	ctx := c.vgpu9.get(cid)
	if ctx == nil {
		return Invalidf("Core.SetRenderTarget", "context %d not defined", cid)
	}
	if rtType >= vgpu9MaxRenderTargets {
		return Invalidf("Core.SetRenderTarget", "render target type %d out of range", rtType)
	}
	if target.SID != InvalidID && c.Surfaces.Get(target.SID) == nil {
		return Invalidf("Core.SetRenderTarget", "sid %d not defined", target.SID)
	}
	ctx.RenderTargets[rtType] = target
	if bv9, err := c.caps.RequireVGPU9(); err == nil {
		ref := backend.SurfaceRef{SID: target.SID, Face: target.Face, Mip: target.Mip}
		return bv9.SetRenderTarget(cid, rtType, ref)
	}
	return nil
}

// ShaderDefine uploads bytecode for (cid, shaderID) (SHADER_DEFINE).
func (c *Core) ShaderDefine(cid, shaderID, shaderType uint32, bytecode []byte) error {
	if c.vgpu9.get(cid) == nil {
		return Invalidf("Core.ShaderDefine", "context %d not defined", cid)
	}
	bv9, err := c.caps.RequireVGPU9()
	if err != nil {
		return err
	}
	return bv9.ShaderDefine(cid, shaderID, shaderType, bytecode)
}

// ShaderDestroy releases (cid, shaderID) (SHADER_DESTROY).
func (c *Core) ShaderDestroy(cid, shaderID uint32) error {
	if c.vgpu9.get(cid) == nil {
		return Invalidf("Core.ShaderDestroy", "context %d not defined", cid)
	}
	bv9, err := c.caps.RequireVGPU9()
	if err != nil {
		return err
	}
	return bv9.ShaderDestroy(cid, shaderID)
}

// SetShader binds shaderID to shaderType (VERTEX=0/PIXEL=1) on cid
// (SET_SHADER).
func (c *Core) SetShader(cid, shaderType, shaderID uint32) error {
	ctx := c.vgpu9.get(cid)
	if ctx == nil {
		return Invalidf("Core.SetShader", "context %d not defined", cid)
	}
	if shaderType >= vgpu9MaxShaderStages {
		return Invalidf("Core.SetShader", "shader type %d out of range", shaderType)
	}
	ctx.ShaderIDs[shaderType] = shaderID
	bv9, err := c.caps.RequireVGPU9()
	if err != nil {
		return err
	}
	return bv9.SetShader(cid, shaderType, shaderID)
}

// DrawPrimitives issues DRAW_PRIMITIVES for cid; declBytes/rangeBytes are
// forwarded to the backend as raw bytes (spec §6.1: "range and decl
// arrays follow, forwarded to the backend as raw bytes").
func (c *Core) DrawPrimitives(cid uint32, declBytes, rangeBytes []byte) error {
	if c.vgpu9.get(cid) == nil {
		return Invalidf("Core.DrawPrimitives", "context %d not defined", cid)
	}
	bv9, err := c.caps.RequireVGPU9()
	if err != nil {
		return err
	}
	return bv9.DrawPrimitives(cid, declBytes, rangeBytes)
}
