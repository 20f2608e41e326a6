package dispatch

import (
	"github.com/gogpu/svga3d/backend"
	"github.com/gogpu/svga3d/wire"
)

func init() {
	registerDXHandlers(dispatchTable)
}

// DX (VGPU10) commands, ids 1143+. Every handler here ignores any CID
// field its own payload struct happens to carry and uses the dxContextID
// argument instead, per spec §4.5.1: "each carries an implicit
// dx_context_id supplied by the surrounding command-buffer header." The
// five context-lifecycle commands are the one exception — their CID
// names the context being defined/destroyed/bound, not "the current
// context", so it is read from the payload as normal.
func registerDXHandlers(t map[wire.CmdID]cmdHandler) {
	t[wire.CmdDxDefineContext] = dxDefineContext
	t[wire.CmdDxDestroyContext] = dxDestroyContext
	t[wire.CmdDxBindContext] = dxBindContext
	t[wire.CmdDxReadbackContext] = dxReadbackContext
	t[wire.CmdDxInvalidateContext] = dxInvalidateContext

	t[wire.CmdDxSetCotable] = dxSetCotable
	t[wire.CmdDxReadbackCotable] = dxReadbackCotable
	t[wire.CmdDxGrowCotable] = dxGrowCotable

	t[wire.CmdDxSetShader] = dxSetShader
	t[wire.CmdDxSetTopology] = dxSetTopology
	t[wire.CmdDxSetVertexBuffers] = dxSetVertexBuffers
	t[wire.CmdDxSetIndexBuffer] = dxSetIndexBuffer
	t[wire.CmdDxSetRendertargets] = dxSetRendertargets
	t[wire.CmdDxSetPredication] = dxSetPredication

	t[wire.CmdDxDraw] = dxDraw
	t[wire.CmdDxDrawIndexed] = dxDrawIndexed
	t[wire.CmdDxDrawIndexedInstanced] = dxDrawIndexedInstanced

	t[wire.CmdDxClearRendertargetView] = dxClearRendertargetView
	t[wire.CmdDxClearDepthstencilView] = dxClearDepthstencilView
	t[wire.CmdDxGenMips] = dxGenMips
	t[wire.CmdDxPresentBlt] = dxPresentBlt

	t[wire.CmdDxDefineShaderresourceView] = dxDefineShaderResourceView
	t[wire.CmdDxDestroyShaderresourceView] = dxDestroyShaderResourceView
	t[wire.CmdDxDefineRendertargetView] = dxDefineRendertargetView
	t[wire.CmdDxDestroyRendertargetView] = dxDestroyRendertargetView
	t[wire.CmdDxDefineDepthstencilView] = dxDefineDepthstencilView
	t[wire.CmdDxDestroyDepthstencilView] = dxDestroyDepthstencilView
	t[wire.CmdDxDefineUaView] = dxDefineUaView
	t[wire.CmdDxDestroyUaView] = dxDestroyUaView

	t[wire.CmdDxDefineShader] = dxDefineShader
	t[wire.CmdDxDestroyShader] = dxDestroyShader
	t[wire.CmdDxBindShader] = dxBindShader

	t[wire.CmdDxDefineQuery] = dxDefineQuery
	t[wire.CmdDxDestroyQuery] = dxDestroyQuery
	t[wire.CmdDxBindQuery] = dxBindQuery
	t[wire.CmdDxSetQueryOffset] = dxSetQueryOffset
	t[wire.CmdDxBeginQuery] = dxBeginQuery
	t[wire.CmdDxEndQuery] = dxEndQuery
	t[wire.CmdDxReadbackQuery] = dxReadbackQuery
	t[wire.CmdDxMoveQuery] = dxMoveQuery

	t[wire.CmdDxBufferCopy] = dxBufferCopy
	t[wire.CmdDxBufferUpdate] = dxBufferUpdate
	t[wire.CmdDxPredCopyRegion] = dxPredCopyRegion
}

// ---- context lifecycle ---------------------------------------------------

func dxDefineContext(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDefineContextPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXDefineContext(hdr.CID)
}

func dxDestroyContext(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDestroyContextPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXDestroyContext(hdr.CID)
}

func dxBindContext(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxBindContextPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXBindContext(hdr.CID, hdr.MobID, hdr.ValidityLength > 0)
}

func dxReadbackContext(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxReadbackContextPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXReadbackContext(hdr.CID)
}

func dxInvalidateContext(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxInvalidateContextPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXInvalidateContext(hdr.CID)
}

// ---- COTables -------------------------------------------------------------

func dxSetCotable(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxSetCotablePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXSetCOTable(dxContextID, hdr.Type, hdr.MobID, hdr.ValidSizeBytes)
}

func dxReadbackCotable(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxReadbackCotablePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXReadbackCOTable(dxContextID, hdr.Type)
}

func dxGrowCotable(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxGrowCotablePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXGrowCOTable(dxContextID, hdr.Type, hdr.MobID, hdr.ValidSizeBytes)
}

// ---- pipeline state --------------------------------------------------------

func dxSetShader(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxSetShaderPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXSetShader(dxContextID, hdr.Type, hdr.ShaderID)
}

func dxSetTopology(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxSetTopologyPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXSetTopology(dxContextID, hdr.Topology)
}

func dxSetVertexBuffers(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, rest, err := wire.SplitHeader[wire.CmdDxSetVertexBuffersPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	slots, err := wire.Elements[wire.CmdDxVertexBufferPayload](rest)
	if err != nil {
		return decodeErr(err)
	}
	sids := make([]uint32, len(slots))
	strides := make([]uint32, len(slots))
	offsets := make([]uint32, len(slots))
	for i, s := range slots {
		sids[i], strides[i], offsets[i] = s.SID, s.Stride, s.Offset
	}
	return d.core.DXSetVertexBuffers(dxContextID, hdr.StartSlot, sids, strides, offsets)
}

func dxSetIndexBuffer(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxSetIndexBufferPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXSetIndexBuffer(dxContextID, hdr.SID, hdr.Format, hdr.Offset)
}

func dxSetRendertargets(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, rest, err := wire.SplitHeader[wire.CmdDxSetRendertargetsPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	rtvIDs, err := wire.Elements[uint32](rest)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXSetRenderTargets(dxContextID, hdr.DepthStencilViewID, rtvIDs)
}

func dxSetPredication(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxSetPredicationPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXSetPredication(dxContextID, hdr.QueryID, hdr.PredicateValue)
}

// ---- draw / clear -----------------------------------------------------------

func dxDraw(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDrawPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXDraw(dxContextID, hdr.VertexCount, hdr.StartVertexLocation)
}

func dxDrawIndexed(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDrawIndexedPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXDrawIndexed(dxContextID, hdr.IndexCount, hdr.StartIndexLocation, hdr.BaseVertexLocation)
}

func dxDrawIndexedInstanced(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDrawIndexedInstancedPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXDrawIndexedInstanced(dxContextID, hdr.IndexCountPerInstance, hdr.InstanceCount,
		hdr.StartIndexLocation, hdr.BaseVertexLocation, hdr.StartInstanceLocation)
}

func dxClearRendertargetView(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxClearRendertargetViewPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXClearRenderTargetView(hdr.ViewID, hdr.RGBA)
}

func dxClearDepthstencilView(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxClearDepthstencilViewPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXClearDepthStencilView(hdr.ViewID, hdr.Flags, hdr.Depth, hdr.Stencil)
}

func dxGenMips(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxGenMipsPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXGenMips(hdr.ShaderResourceViewID)
}

func dxPresentBlt(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxPresentBltPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	src := wire.SurfaceImageId{SID: hdr.SrcSID}
	dst := wire.SurfaceImageId{SID: hdr.DestSID}
	return d.core.DXPresentBlt(src, hdr.SrcBox, dst, hdr.DestBox, hdr.Mode)
}

// ---- views ------------------------------------------------------------------

func dxDefineShaderResourceView(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDefineShaderResourceViewPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DefineShaderResourceView(hdr.ViewID, hdr.SID)
}

func dxDestroyShaderResourceView(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDestroyShaderResourceViewPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DestroyShaderResourceView(hdr.ViewID)
}

func dxDefineRendertargetView(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDefineRendertargetViewPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DefineRenderTargetView(hdr.ViewID, hdr.SID)
}

func dxDestroyRendertargetView(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDestroyRendertargetViewPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DestroyRenderTargetView(hdr.ViewID)
}

func dxDefineDepthstencilView(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDefineDepthstencilViewPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DefineDepthStencilView(hdr.ViewID, hdr.SID)
}

func dxDestroyDepthstencilView(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDestroyDepthstencilViewPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DestroyDepthStencilView(hdr.ViewID)
}

func dxDefineUaView(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDefineUaViewPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DefineUAView(hdr.ViewID, hdr.SID)
}

func dxDestroyUaView(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDestroyUaViewPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DestroyUAView(hdr.ViewID)
}

// ---- shaders ------------------------------------------------------------------

func dxDefineShader(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, rest, err := wire.SplitHeader[wire.CmdDxDefineShaderPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXDefineShader(dxContextID, hdr.ShaderID, hdr.ShaderType, rest)
}

func dxDestroyShader(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDestroyShaderPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXDestroyShader(dxContextID, hdr.ShaderID)
}

func dxBindShader(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxBindShaderPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXBindShader(dxContextID, hdr.ShaderID)
}

// ---- queries ------------------------------------------------------------------

func dxDefineQuery(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDefineQueryPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXDefineQuery(dxContextID, hdr.QueryID, hdr.Type, hdr.Flags)
}

func dxDestroyQuery(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxDestroyQueryPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXDestroyQuery(dxContextID, hdr.QueryID)
}

func dxBindQuery(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxBindQueryPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXBindQuery(hdr.QueryID, hdr.MobID)
}

func dxSetQueryOffset(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxSetQueryOffsetPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXSetQueryOffset(hdr.QueryID, hdr.Offset)
}

func dxBeginQuery(d *Dispatcher, payload []byte, dxContextID uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxBeginQueryPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXBeginQuery(dxContextID, hdr.QueryID)
}

func dxEndQuery(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxEndQueryPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXEndQuery(hdr.QueryID)
}

func dxReadbackQuery(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxReadbackQueryPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXReadbackQuery(hdr.QueryID)
}

func dxMoveQuery(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxMoveQueryPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXMoveQuery(hdr.QueryID, hdr.MobID, hdr.MobOffset)
}

// ---- buffers ------------------------------------------------------------------

func dxBufferCopy(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxBufferCopyPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXBufferCopy(hdr.DstSID, hdr.SrcSID, hdr.DstOffset, hdr.SrcOffset, hdr.Width)
}

func dxBufferUpdate(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxBufferUpdatePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXBufferUpdate(hdr.SID, hdr.Offset, hdr.Width)
}

func dxPredCopyRegion(d *Dispatcher, payload []byte, _ uint32) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDxPredCopyRegionPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DXPredCopyRegion(hdr.DstSID, hdr.SrcSID, hdr.DstBox)
}

var _ = backend.SurfaceRef{}
