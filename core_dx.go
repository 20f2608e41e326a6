package svga3d

import (
	"github.com/gogpu/svga3d/backend"
	"github.com/gogpu/svga3d/surface"
	"github.com/gogpu/svga3d/wire"
)

// ---- DX (VGPU10) context lifecycle --------------------------------------
//
// These are thin wraps around dxcontext.Manager that supply Core's
// backend.Capabilities; the interesting bookkeeping (COTables, pipeline
// state encode/decode, the query state machine) lives in dxcontext
// itself (spec §3.5, §4.5.3).

// DXDefineContext is DX_DEFINE_CONTEXT.
func (c *Core) DXDefineContext(cid uint32) error {
	_, err := c.DXContexts.DefineContext(c.caps, cid)
	return err
}

// DXDestroyContext is DX_DESTROY_CONTEXT.
func (c *Core) DXDestroyContext(cid uint32) error {
	return c.DXContexts.DestroyContext(c.caps, cid)
}

// DXBindContext is DX_BIND_CONTEXT.
func (c *Core) DXBindContext(cid, mobid uint32, validContents bool) error {
	return c.DXContexts.BindContext(c.caps, cid, mobid, validContents)
}

// DXReadbackContext is DX_READBACK_CONTEXT.
func (c *Core) DXReadbackContext(cid uint32) error {
	return c.DXContexts.ReadbackContext(c.caps, cid)
}

// DXInvalidateContext is DX_INVALIDATE_CONTEXT.
func (c *Core) DXInvalidateContext(cid uint32) error {
	return c.DXContexts.InvalidateContext(cid)
}

// DXSetCOTable is DX_SET_COTABLE.
func (c *Core) DXSetCOTable(cid uint32, typ wire.OTableType, mobid, validSizeBytes uint32) error {
	return c.DXContexts.SetCotable(cid, typ, mobid, validSizeBytes)
}

// DXReadbackCOTable is DX_READBACK_COTABLE.
func (c *Core) DXReadbackCOTable(cid uint32, typ wire.OTableType) error {
	return c.DXContexts.ReadbackCotable(cid, typ)
}

// DXGrowCOTable is DX_GROW_COTABLE (§4 supplemented feature).
func (c *Core) DXGrowCOTable(cid uint32, typ wire.OTableType, mobid, validSizeBytes uint32) error {
	return c.DXContexts.GrowCotable(cid, typ, mobid, validSizeBytes)
}

// ---- DX pipeline state setters -----------------------------------------

func (c *Core) requireDXContext(op string, cid uint32) error {
	if c.DXContexts.Get(cid) == nil {
		return Invalidf(op, "context %d not defined", cid)
	}
	return nil
}

// DXSetRenderTargets is DX_SET_RENDERTARGETS: dsvID and every id in
// rtvIDs must be either svga3d.InvalidID or a currently-defined view
// (spec §4.5.2 "all id fields are in range of their catalog ... or equal
// to the sentinel INVALID_ID").
func (c *Core) DXSetRenderTargets(cid, dsvID uint32, rtvIDs []uint32) error {
	ctx := c.DXContexts.Get(cid)
	if ctx == nil {
		return Invalidf("Core.DXSetRenderTargets", "context %d not defined", cid)
	}
	if dsvID != InvalidID {
		if _, ok := c.dsViews[dsvID]; !ok {
			return Invalidf("Core.DXSetRenderTargets", "dsv %d not defined", dsvID)
		}
	}
	if len(rtvIDs) > len(ctx.Pipeline.RenderTargetViewID) {
		return Invalidf("Core.DXSetRenderTargets", "%d render targets exceeds limit %d", len(rtvIDs), len(ctx.Pipeline.RenderTargetViewID))
	}
	for _, id := range rtvIDs {
		if id != InvalidID {
			if _, ok := c.rtViews[id]; !ok {
				return Invalidf("Core.DXSetRenderTargets", "rtv %d not defined", id)
			}
		}
	}
	ctx.Pipeline.DepthStencilViewID = dsvID
	for i := range ctx.Pipeline.RenderTargetViewID {
		ctx.Pipeline.RenderTargetViewID[i] = InvalidID
	}
	copy(ctx.Pipeline.RenderTargetViewID[:], rtvIDs)
	ctx.Pipeline.NumRenderTargets = uint32(len(rtvIDs))

	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxSetRenderTargets(cid, dsvID, rtvIDs)
}

// DXSetShader is DX_SET_SHADER.
func (c *Core) DXSetShader(cid, shaderType, shaderID uint32) error {
	ctx := c.DXContexts.Get(cid)
	if ctx == nil {
		return Invalidf("Core.DXSetShader", "context %d not defined", cid)
	}
	if int(shaderType) >= len(ctx.Pipeline.ShaderID) {
		return Invalidf("Core.DXSetShader", "shader type %d out of range", shaderType)
	}
	ctx.Pipeline.ShaderID[shaderType] = shaderID
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxSetShader(cid, shaderType, shaderID)
}

// DXSetTopology is DX_SET_TOPOLOGY.
func (c *Core) DXSetTopology(cid, topology uint32) error {
	ctx := c.DXContexts.Get(cid)
	if ctx == nil {
		return Invalidf("Core.DXSetTopology", "context %d not defined", cid)
	}
	ctx.Pipeline.Topology = topology
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxSetTopology(cid, topology)
}

// DXSetVertexBuffers is DX_SET_VERTEX_BUFFERS.
func (c *Core) DXSetVertexBuffers(cid, startSlot uint32, sids, strides, offsets []uint32) error {
	ctx := c.DXContexts.Get(cid)
	if ctx == nil {
		return Invalidf("Core.DXSetVertexBuffers", "context %d not defined", cid)
	}
	n := len(ctx.Pipeline.VertexBufferSID)
	if int(startSlot)+len(sids) > n {
		return Invalidf("Core.DXSetVertexBuffers", "start slot %d + count %d exceeds %d vertex buffer slots", startSlot, len(sids), n)
	}
	for _, sid := range sids {
		if sid != InvalidID && c.Surfaces.Get(sid) == nil {
			return Invalidf("Core.DXSetVertexBuffers", "sid %d not defined", sid)
		}
	}
	for i, sid := range sids {
		ctx.Pipeline.VertexBufferSID[int(startSlot)+i] = sid
		ctx.Pipeline.VertexBufferStride[int(startSlot)+i] = strides[i]
		ctx.Pipeline.VertexBufferOffset[int(startSlot)+i] = offsets[i]
	}
	if uint32(len(sids))+startSlot > ctx.Pipeline.NumVertexBuffers {
		ctx.Pipeline.NumVertexBuffers = uint32(len(sids)) + startSlot
	}
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxSetVertexBuffers(cid, startSlot, sids, strides, offsets)
}

// DXSetIndexBuffer is DX_SET_INDEX_BUFFER.
func (c *Core) DXSetIndexBuffer(cid, sid, format, offset uint32) error {
	ctx := c.DXContexts.Get(cid)
	if ctx == nil {
		return Invalidf("Core.DXSetIndexBuffer", "context %d not defined", cid)
	}
	if sid != InvalidID && c.Surfaces.Get(sid) == nil {
		return Invalidf("Core.DXSetIndexBuffer", "sid %d not defined", sid)
	}
	ctx.Pipeline.IndexBufferSID = sid
	ctx.Pipeline.IndexBufferFormat = format
	ctx.Pipeline.IndexBufferOffset = offset
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxSetIndexBuffer(cid, sid, format, offset)
}

// DXSetPredication is DX_SET_PREDICATION (§4 supplemented feature).
// queryID == svga3d.InvalidID means unconditional (no predicate). The
// predicate itself is never evaluated here (spec §9 Open Question 3) —
// only that queryID, if set, names a real query.
func (c *Core) DXSetPredication(cid, queryID, predicateValue uint32) error {
	ctx := c.DXContexts.Get(cid)
	if ctx == nil {
		return Invalidf("Core.DXSetPredication", "context %d not defined", cid)
	}
	if queryID != InvalidID && c.DXContexts.Query(queryID) == nil {
		return Invalidf("Core.DXSetPredication", "query %d not defined", queryID)
	}
	ctx.Pipeline.PredicateQueryID = queryID
	ctx.Pipeline.PredicateValue = predicateValue
	return nil
}

// ---- DX draw / clear ----------------------------------------------------

// DXDraw is DX_DRAW.
func (c *Core) DXDraw(cid, vertexCount, startVertexLocation uint32) error {
	if err := c.requireDXContext("Core.DXDraw", cid); err != nil {
		return err
	}
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxDraw(cid, vertexCount, startVertexLocation)
}

// DXDrawIndexed is DX_DRAW_INDEXED.
func (c *Core) DXDrawIndexed(cid, indexCount, startIndexLocation uint32, baseVertexLocation int32) error {
	if err := c.requireDXContext("Core.DXDrawIndexed", cid); err != nil {
		return err
	}
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxDrawIndexed(cid, indexCount, startIndexLocation, baseVertexLocation)
}

// DXDrawIndexedInstanced is DX_DRAW_INDEXED_INSTANCED.
func (c *Core) DXDrawIndexedInstanced(cid, indexCountPerInstance, instanceCount, startIndexLocation uint32, baseVertexLocation int32, startInstanceLocation uint32) error {
	if err := c.requireDXContext("Core.DXDrawIndexedInstanced", cid); err != nil {
		return err
	}
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxDrawIndexedInstanced(cid, indexCountPerInstance, instanceCount, startIndexLocation, baseVertexLocation, startInstanceLocation)
}

// DXClearRenderTargetView is DX_CLEAR_RENDERTARGET_VIEW.
func (c *Core) DXClearRenderTargetView(viewID uint32, rgba [4]float32) error {
	if _, ok := c.rtViews[viewID]; !ok {
		return Invalidf("Core.DXClearRenderTargetView", "view %d not defined", viewID)
	}
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxClearRenderTargetView(viewID, rgba)
}

// DXClearDepthStencilView is DX_CLEAR_DEPTHSTENCIL_VIEW.
func (c *Core) DXClearDepthStencilView(viewID uint32, flags uint16, depth float32, stencil uint16) error {
	if _, ok := c.dsViews[viewID]; !ok {
		return Invalidf("Core.DXClearDepthStencilView", "view %d not defined", viewID)
	}
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxClearDepthStencilView(viewID, flags, depth, stencil)
}

// DXGenMips is DX_GENMIPS.
func (c *Core) DXGenMips(shaderResourceViewID uint32) error {
	if _, ok := c.srViews[shaderResourceViewID]; !ok {
		return Invalidf("Core.DXGenMips", "srv %d not defined", shaderResourceViewID)
	}
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxGenMips(shaderResourceViewID)
}

// DXPresentBlt is DX_PRESENT_BLT.
func (c *Core) DXPresentBlt(src wire.SurfaceImageId, srcBox wire.SVGA3dBox, dst wire.SurfaceImageId, dstBox wire.SVGA3dBox, mode uint32) error {
	if c.Surfaces.Get(src.SID) == nil || c.Surfaces.Get(dst.SID) == nil {
		return Invalidf("Core.DXPresentBlt", "src %d or dst %d not defined", src.SID, dst.SID)
	}
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxPresentBlt(
		backend.SurfaceRef{SID: src.SID, Face: src.Face, Mip: src.Mip}, srcBox,
		backend.SurfaceRef{SID: dst.SID, Face: dst.Face, Mip: dst.Mip}, dstBox, mode)
}

// ---- DX shaders -----------------------------------------------------------

// DXDefineShader is DX_DEFINE_SHADER.
func (c *Core) DXDefineShader(cid, shaderID, shaderType uint32, bytecode []byte) error {
	if err := c.requireDXContext("Core.DXDefineShader", cid); err != nil {
		return err
	}
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxDefineShader(cid, shaderID, shaderType, bytecode)
}

// DXDestroyShader is DX_DESTROY_SHADER.
func (c *Core) DXDestroyShader(cid, shaderID uint32) error {
	if err := c.requireDXContext("Core.DXDestroyShader", cid); err != nil {
		return err
	}
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxDestroyShader(cid, shaderID)
}

// DXBindShader is DX_BIND_SHADER.
func (c *Core) DXBindShader(cid, shaderID uint32) error {
	if err := c.requireDXContext("Core.DXBindShader", cid); err != nil {
		return err
	}
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxBindShader(cid, shaderID)
}

// ---- DX queries -----------------------------------------------------------

// DXDefineQuery is DX_DEFINE_QUERY.
func (c *Core) DXDefineQuery(cid, qid, queryType, flags uint32) error {
	_, err := c.DXContexts.DefineQuery(cid, qid, queryType, flags)
	if err != nil {
		return err
	}
	if bdx, berr := c.caps.RequireDX(); berr == nil {
		return bdx.DxDefineQuery(cid, qid, queryType)
	}
	return nil
}

// DXDestroyQuery is DX_DESTROY_QUERY.
func (c *Core) DXDestroyQuery(cid, qid uint32) error {
	if err := c.DXContexts.DestroyQuery(qid); err != nil {
		return err
	}
	if bdx, err := c.caps.RequireDX(); err == nil {
		_ = bdx.DxDestroyQuery(cid, qid)
	}
	return nil
}

// DXBindQuery is DX_BIND_QUERY.
func (c *Core) DXBindQuery(qid, mobid uint32) error {
	return c.DXContexts.BindQuery(qid, mobid)
}

// DXSetQueryOffset is DX_SET_QUERY_OFFSET.
func (c *Core) DXSetQueryOffset(qid, offset uint32) error {
	return c.DXContexts.SetQueryOffset(qid, offset)
}

// DXMoveQuery is DX_MOVE_QUERY (§4 supplemented feature).
func (c *Core) DXMoveQuery(qid, mobid, mobOffset uint32) error {
	return c.DXContexts.MoveQuery(qid, mobid, mobOffset)
}

// DXBeginQuery is DX_BEGIN_QUERY.
func (c *Core) DXBeginQuery(cid, qid uint32) error {
	if err := c.DXContexts.BeginQuery(qid); err != nil {
		return err
	}
	if bdx, err := c.caps.RequireDX(); err == nil {
		return bdx.DxBeginQuery(cid, qid)
	}
	return nil
}

// DXEndQuery is DX_END_QUERY.
func (c *Core) DXEndQuery(qid uint32) error {
	return c.DXContexts.EndQuery(c.caps, qid)
}

// DXReadbackQuery is DX_READBACK_QUERY.
func (c *Core) DXReadbackQuery(qid uint32) error {
	return c.DXContexts.ReadbackQuery(qid)
}

// ---- DX buffer helpers (§4 supplemented features) ------------------------

// DXBufferCopy is DX_BUFFER_COPY: validated only to the extent the
// backend needs to be memory-safe (spec §9 Open Question 3) — ids in
// range, nothing else.
func (c *Core) DXBufferCopy(dstSID, srcSID, dstOffset, srcOffset, width uint32) error {
	if c.Surfaces.Get(dstSID) == nil || c.Surfaces.Get(srcSID) == nil {
		return Invalidf("Core.DXBufferCopy", "dst %d or src %d not defined", dstSID, srcSID)
	}
	bdx, err := c.caps.RequireDX()
	if err != nil {
		return err
	}
	return bdx.DxBufferCopy(dstSID, srcSID, dstOffset, srcOffset, width)
}

// DXBufferUpdate is DX_BUFFER_UPDATE (§4 supplemented feature): pushes a
// byte range of sid's bound MOB into its hardware buffer.
func (c *Core) DXBufferUpdate(sid, offset, width uint32) error {
	mb, err := c.mobForSurface("Core.DXBufferUpdate", sid)
	if err != nil {
		return err
	}
	box := wire.SVGA3dBox{X: offset, W: width, H: 1, D: 1}
	return c.Surfaces.TransferSurfaceLevel(c.caps, mb.GBO, uint64(offset), wire.SurfaceImageId{SID: sid}, &box, surface.TransferGuestToHost)
}

// DXPredCopyRegion is DX_PRED_COPY_REGION (spec §8 seed scenario #3): a
// predicated surface-to-surface box copy, clipped exactly like
// SURFACE_COPY. No predicate id is carried or evaluated here; the copy is
// always performed (spec §9 Open Question 3).
func (c *Core) DXPredCopyRegion(dstSID, srcSID uint32, dstBox wire.SVGA3dBox) error {
	if c.Surfaces.Get(dstSID) == nil || c.Surfaces.Get(srcSID) == nil {
		return Invalidf("Core.DXPredCopyRegion", "dst %d or src %d not defined", dstSID, srcSID)
	}
	copyBox := wire.SVGA3dCopyBox{X: dstBox.X, Y: dstBox.Y, Z: dstBox.Z, W: dstBox.W, H: dstBox.H, D: dstBox.D}
	return c.Surfaces.SurfaceCopy(c.caps,
		wire.SurfaceImageId{SID: dstSID}, wire.SurfaceImageId{SID: srcSID}, copyBox)
}
