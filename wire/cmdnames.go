package wire

// cmdNames maps a CmdID back to its protocol name, used for diagnostic
// logging when the dispatcher rejects an unrecognized or unimplemented
// command (spec §4.5.5).
var cmdNames = map[CmdID]string{
	CmdSurfaceDefine: "SVGA_3D_CMD_SURFACE_DEFINE",
	CmdSurfaceDestroy: "SVGA_3D_CMD_SURFACE_DESTROY",
	CmdSurfaceCopy: "SVGA_3D_CMD_SURFACE_COPY",
	CmdSurfaceStretchBlt: "SVGA_3D_CMD_SURFACE_STRETCHBLT",
	CmdSurfaceDMA: "SVGA_3D_CMD_SURFACE_DMA",
	CmdContextDefine: "SVGA_3D_CMD_CONTEXT_DEFINE",
	CmdContextDestroy: "SVGA_3D_CMD_CONTEXT_DESTROY",
	CmdSetTransform: "SVGA_3D_CMD_SETTRANSFORM",
	CmdSetZRange: "SVGA_3D_CMD_SETZRANGE",
	CmdSetRenderState: "SVGA_3D_CMD_SETRENDERSTATE",
	CmdSetRenderTarget: "SVGA_3D_CMD_SETRENDERTARGET",
	CmdSetTextureState: "SVGA_3D_CMD_SETTEXTURESTATE",
	CmdSetMaterial: "SVGA_3D_CMD_SETMATERIAL",
	CmdSetLightData: "SVGA_3D_CMD_SETLIGHTDATA",
	CmdSetLightEnabled: "SVGA_3D_CMD_SETLIGHTENABLED",
	CmdSetViewport: "SVGA_3D_CMD_SETVIEWPORT",
	CmdSetClipPlane: "SVGA_3D_CMD_SETCLIPPLANE",
	CmdClear: "SVGA_3D_CMD_CLEAR",
	CmdPresent: "SVGA_3D_CMD_PRESENT",
	CmdShaderDefine: "SVGA_3D_CMD_SHADER_DEFINE",
	CmdShaderDestroy: "SVGA_3D_CMD_SHADER_DESTROY",
	CmdSetShader: "SVGA_3D_CMD_SET_SHADER",
	CmdSetShaderConst: "SVGA_3D_CMD_SET_SHADER_CONST",
	CmdDrawPrimitives: "SVGA_3D_CMD_DRAW_PRIMITIVES",
	CmdSetScissorRect: "SVGA_3D_CMD_SETSCISSORRECT",
	CmdBeginQuery: "SVGA_3D_CMD_BEGIN_QUERY",
	CmdEndQuery: "SVGA_3D_CMD_END_QUERY",
	CmdWaitForQuery: "SVGA_3D_CMD_WAIT_FOR_QUERY",
	CmdPresentReadback: "SVGA_3D_CMD_PRESENT_READBACK",
	CmdBlitSurfaceToScreen: "SVGA_3D_CMD_BLIT_SURFACE_TO_SCREEN",
	CmdSurfaceDefineV2: "SVGA_3D_CMD_SURFACE_DEFINE_V2",
	CmdGenerateMipmaps: "SVGA_3D_CMD_GENERATE_MIPMAPS",
	CmdActivateSurface: "SVGA_3D_CMD_ACTIVATE_SURFACE",
	CmdDeactivateSurface: "SVGA_3D_CMD_DEACTIVATE_SURFACE",
	CmdScreenDMA: "SVGA_3D_CMD_SCREEN_DMA",
	CmdVbDxClearRendertargetViewRegion: "SVGA_3D_CMD_VB_DX_CLEAR_RENDERTARGET_VIEW_REGION",
	CmdSetOtableBase: "SVGA_3D_CMD_SET_OTABLE_BASE",
	CmdReadbackOtable: "SVGA_3D_CMD_READBACK_OTABLE",
	CmdDefineGbMob: "SVGA_3D_CMD_DEFINE_GB_MOB",
	CmdDestroyGbMob: "SVGA_3D_CMD_DESTROY_GB_MOB",
	CmdUpdateGbMobMapping: "SVGA_3D_CMD_UPDATE_GB_MOB_MAPPING",
	CmdDefineGbSurface: "SVGA_3D_CMD_DEFINE_GB_SURFACE",
	CmdDestroyGbSurface: "SVGA_3D_CMD_DESTROY_GB_SURFACE",
	CmdBindGbSurface: "SVGA_3D_CMD_BIND_GB_SURFACE",
	CmdCondBindGbSurface: "SVGA_3D_CMD_COND_BIND_GB_SURFACE",
	CmdUpdateGbImage: "SVGA_3D_CMD_UPDATE_GB_IMAGE",
	CmdUpdateGbSurface: "SVGA_3D_CMD_UPDATE_GB_SURFACE",
	CmdReadbackGbImage: "SVGA_3D_CMD_READBACK_GB_IMAGE",
	CmdReadbackGbSurface: "SVGA_3D_CMD_READBACK_GB_SURFACE",
	CmdInvalidateGbImage: "SVGA_3D_CMD_INVALIDATE_GB_IMAGE",
	CmdInvalidateGbSurface: "SVGA_3D_CMD_INVALIDATE_GB_SURFACE",
	CmdDefineGbContext: "SVGA_3D_CMD_DEFINE_GB_CONTEXT",
	CmdDestroyGbContext: "SVGA_3D_CMD_DESTROY_GB_CONTEXT",
	CmdBindGbContext: "SVGA_3D_CMD_BIND_GB_CONTEXT",
	CmdReadbackGbContext: "SVGA_3D_CMD_READBACK_GB_CONTEXT",
	CmdInvalidateGbContext: "SVGA_3D_CMD_INVALIDATE_GB_CONTEXT",
	CmdDefineGbShader: "SVGA_3D_CMD_DEFINE_GB_SHADER",
	CmdDestroyGbShader: "SVGA_3D_CMD_DESTROY_GB_SHADER",
	CmdBindGbShader: "SVGA_3D_CMD_BIND_GB_SHADER",
	CmdSetOtableBase64: "SVGA_3D_CMD_SET_OTABLE_BASE64",
	CmdBeginGbQuery: "SVGA_3D_CMD_BEGIN_GB_QUERY",
	CmdEndGbQuery: "SVGA_3D_CMD_END_GB_QUERY",
	CmdWaitForGbQuery: "SVGA_3D_CMD_WAIT_FOR_GB_QUERY",
	CmdNop: "SVGA_3D_CMD_NOP",
	CmdEnableGart: "SVGA_3D_CMD_ENABLE_GART",
	CmdDisableGart: "SVGA_3D_CMD_DISABLE_GART",
	CmdMapMobIntoGart: "SVGA_3D_CMD_MAP_MOB_INTO_GART",
	CmdUnmapGartRange: "SVGA_3D_CMD_UNMAP_GART_RANGE",
	CmdDefineGbScreentarget: "SVGA_3D_CMD_DEFINE_GB_SCREENTARGET",
	CmdDestroyGbScreentarget: "SVGA_3D_CMD_DESTROY_GB_SCREENTARGET",
	CmdBindGbScreentarget: "SVGA_3D_CMD_BIND_GB_SCREENTARGET",
	CmdUpdateGbScreentarget: "SVGA_3D_CMD_UPDATE_GB_SCREENTARGET",
	CmdReadbackGbImagePartial: "SVGA_3D_CMD_READBACK_GB_IMAGE_PARTIAL",
	CmdInvalidateGbImagePartial: "SVGA_3D_CMD_INVALIDATE_GB_IMAGE_PARTIAL",
	CmdSetGbShaderconstsInline: "SVGA_3D_CMD_SET_GB_SHADERCONSTS_INLINE",
	CmdGbScreenDMA: "SVGA_3D_CMD_GB_SCREEN_DMA",
	CmdBindGbSurfaceWithPitch: "SVGA_3D_CMD_BIND_GB_SURFACE_WITH_PITCH",
	CmdGbMobFence: "SVGA_3D_CMD_GB_MOB_FENCE",
	CmdDefineGbSurfaceV2: "SVGA_3D_CMD_DEFINE_GB_SURFACE_V2",
	CmdDefineGbMob64: "SVGA_3D_CMD_DEFINE_GB_MOB64",
	CmdRedefineGbMob64: "SVGA_3D_CMD_REDEFINE_GB_MOB64",
	CmdNopError: "SVGA_3D_CMD_NOP_ERROR",
	CmdSetVertexStreams: "SVGA_3D_CMD_SET_VERTEX_STREAMS",
	CmdSetVertexDecls: "SVGA_3D_CMD_SET_VERTEX_DECLS",
	CmdSetVertexDivisors: "SVGA_3D_CMD_SET_VERTEX_DIVISORS",
	CmdDraw: "SVGA_3D_CMD_DRAW",
	CmdDrawIndexed: "SVGA_3D_CMD_DRAW_INDEXED",
	CmdDxDefineContext: "SVGA_3D_CMD_DX_DEFINE_CONTEXT",
	CmdDxDestroyContext: "SVGA_3D_CMD_DX_DESTROY_CONTEXT",
	CmdDxBindContext: "SVGA_3D_CMD_DX_BIND_CONTEXT",
	CmdDxReadbackContext: "SVGA_3D_CMD_DX_READBACK_CONTEXT",
	CmdDxInvalidateContext: "SVGA_3D_CMD_DX_INVALIDATE_CONTEXT",
	CmdDxSetSingleConstantBuffer: "SVGA_3D_CMD_DX_SET_SINGLE_CONSTANT_BUFFER",
	CmdDxSetShaderResources: "SVGA_3D_CMD_DX_SET_SHADER_RESOURCES",
	CmdDxSetShader: "SVGA_3D_CMD_DX_SET_SHADER",
	CmdDxSetSamplers: "SVGA_3D_CMD_DX_SET_SAMPLERS",
	CmdDxDraw: "SVGA_3D_CMD_DX_DRAW",
	CmdDxDrawIndexed: "SVGA_3D_CMD_DX_DRAW_INDEXED",
	CmdDxDrawInstanced: "SVGA_3D_CMD_DX_DRAW_INSTANCED",
	CmdDxDrawIndexedInstanced: "SVGA_3D_CMD_DX_DRAW_INDEXED_INSTANCED",
	CmdDxDrawAuto: "SVGA_3D_CMD_DX_DRAW_AUTO",
	CmdDxSetInputLayout: "SVGA_3D_CMD_DX_SET_INPUT_LAYOUT",
	CmdDxSetVertexBuffers: "SVGA_3D_CMD_DX_SET_VERTEX_BUFFERS",
	CmdDxSetIndexBuffer: "SVGA_3D_CMD_DX_SET_INDEX_BUFFER",
	CmdDxSetTopology: "SVGA_3D_CMD_DX_SET_TOPOLOGY",
	CmdDxSetRendertargets: "SVGA_3D_CMD_DX_SET_RENDERTARGETS",
	CmdDxSetBlendState: "SVGA_3D_CMD_DX_SET_BLEND_STATE",
	CmdDxSetDepthstencilState: "SVGA_3D_CMD_DX_SET_DEPTHSTENCIL_STATE",
	CmdDxSetRasterizerState: "SVGA_3D_CMD_DX_SET_RASTERIZER_STATE",
	CmdDxDefineQuery: "SVGA_3D_CMD_DX_DEFINE_QUERY",
	CmdDxDestroyQuery: "SVGA_3D_CMD_DX_DESTROY_QUERY",
	CmdDxBindQuery: "SVGA_3D_CMD_DX_BIND_QUERY",
	CmdDxSetQueryOffset: "SVGA_3D_CMD_DX_SET_QUERY_OFFSET",
	CmdDxBeginQuery: "SVGA_3D_CMD_DX_BEGIN_QUERY",
	CmdDxEndQuery: "SVGA_3D_CMD_DX_END_QUERY",
	CmdDxReadbackQuery: "SVGA_3D_CMD_DX_READBACK_QUERY",
	CmdDxSetPredication: "SVGA_3D_CMD_DX_SET_PREDICATION",
	CmdDxSetSotargets: "SVGA_3D_CMD_DX_SET_SOTARGETS",
	CmdDxSetViewports: "SVGA_3D_CMD_DX_SET_VIEWPORTS",
	CmdDxSetScissorrects: "SVGA_3D_CMD_DX_SET_SCISSORRECTS",
	CmdDxClearRendertargetView: "SVGA_3D_CMD_DX_CLEAR_RENDERTARGET_VIEW",
	CmdDxClearDepthstencilView: "SVGA_3D_CMD_DX_CLEAR_DEPTHSTENCIL_VIEW",
	CmdDxPredCopyRegion: "SVGA_3D_CMD_DX_PRED_COPY_REGION",
	CmdDxPredCopy: "SVGA_3D_CMD_DX_PRED_COPY",
	CmdDxPresentBlt: "SVGA_3D_CMD_DX_PRESENTBLT",
	CmdDxGenMips: "SVGA_3D_CMD_DX_GENMIPS",
	CmdDxUpdateSubresource: "SVGA_3D_CMD_DX_UPDATE_SUBRESOURCE",
	CmdDxReadbackSubresource: "SVGA_3D_CMD_DX_READBACK_SUBRESOURCE",
	CmdDxInvalidateSubresource: "SVGA_3D_CMD_DX_INVALIDATE_SUBRESOURCE",
	CmdDxDefineShaderresourceView: "SVGA_3D_CMD_DX_DEFINE_SHADERRESOURCE_VIEW",
	CmdDxDestroyShaderresourceView: "SVGA_3D_CMD_DX_DESTROY_SHADERRESOURCE_VIEW",
	CmdDxDefineRendertargetView: "SVGA_3D_CMD_DX_DEFINE_RENDERTARGET_VIEW",
	CmdDxDestroyRendertargetView: "SVGA_3D_CMD_DX_DESTROY_RENDERTARGET_VIEW",
	CmdDxDefineDepthstencilView: "SVGA_3D_CMD_DX_DEFINE_DEPTHSTENCIL_VIEW",
	CmdDxDestroyDepthstencilView: "SVGA_3D_CMD_DX_DESTROY_DEPTHSTENCIL_VIEW",
	CmdDxDefineElementlayout: "SVGA_3D_CMD_DX_DEFINE_ELEMENTLAYOUT",
	CmdDxDestroyElementlayout: "SVGA_3D_CMD_DX_DESTROY_ELEMENTLAYOUT",
	CmdDxDefineBlendState: "SVGA_3D_CMD_DX_DEFINE_BLEND_STATE",
	CmdDxDestroyBlendState: "SVGA_3D_CMD_DX_DESTROY_BLEND_STATE",
	CmdDxDefineDepthstencilState: "SVGA_3D_CMD_DX_DEFINE_DEPTHSTENCIL_STATE",
	CmdDxDestroyDepthstencilState: "SVGA_3D_CMD_DX_DESTROY_DEPTHSTENCIL_STATE",
	CmdDxDefineRasterizerState: "SVGA_3D_CMD_DX_DEFINE_RASTERIZER_STATE",
	CmdDxDestroyRasterizerState: "SVGA_3D_CMD_DX_DESTROY_RASTERIZER_STATE",
	CmdDxDefineSamplerState: "SVGA_3D_CMD_DX_DEFINE_SAMPLER_STATE",
	CmdDxDestroySamplerState: "SVGA_3D_CMD_DX_DESTROY_SAMPLER_STATE",
	CmdDxDefineShader: "SVGA_3D_CMD_DX_DEFINE_SHADER",
	CmdDxDestroyShader: "SVGA_3D_CMD_DX_DESTROY_SHADER",
	CmdDxBindShader: "SVGA_3D_CMD_DX_BIND_SHADER",
	CmdDxDefineStreamoutput: "SVGA_3D_CMD_DX_DEFINE_STREAMOUTPUT",
	CmdDxDestroyStreamoutput: "SVGA_3D_CMD_DX_DESTROY_STREAMOUTPUT",
	CmdDxSetStreamoutput: "SVGA_3D_CMD_DX_SET_STREAMOUTPUT",
	CmdDxSetCotable: "SVGA_3D_CMD_DX_SET_COTABLE",
	CmdDxReadbackCotable: "SVGA_3D_CMD_DX_READBACK_COTABLE",
	CmdDxBufferCopy: "SVGA_3D_CMD_DX_BUFFER_COPY",
	CmdDxTransferFromBuffer: "SVGA_3D_CMD_DX_TRANSFER_FROM_BUFFER",
	CmdDxSurfaceCopyAndReadback: "SVGA_3D_CMD_DX_SURFACE_COPY_AND_READBACK",
	CmdDxMoveQuery: "SVGA_3D_CMD_DX_MOVE_QUERY",
	CmdDxBindAllQuery: "SVGA_3D_CMD_DX_BIND_ALL_QUERY",
	CmdDxReadbackAllQuery: "SVGA_3D_CMD_DX_READBACK_ALL_QUERY",
	CmdDxPredTransferFromBuffer: "SVGA_3D_CMD_DX_PRED_TRANSFER_FROM_BUFFER",
	CmdDxMobFence64: "SVGA_3D_CMD_DX_MOB_FENCE_64",
	CmdDxBindAllShader: "SVGA_3D_CMD_DX_BIND_ALL_SHADER",
	CmdDxHint: "SVGA_3D_CMD_DX_HINT",
	CmdDxBufferUpdate: "SVGA_3D_CMD_DX_BUFFER_UPDATE",
	CmdDxSetVsConstantBufferOffset: "SVGA_3D_CMD_DX_SET_VS_CONSTANT_BUFFER_OFFSET",
	CmdDxSetPsConstantBufferOffset: "SVGA_3D_CMD_DX_SET_PS_CONSTANT_BUFFER_OFFSET",
	CmdDxSetGsConstantBufferOffset: "SVGA_3D_CMD_DX_SET_GS_CONSTANT_BUFFER_OFFSET",
	CmdDxSetHsConstantBufferOffset: "SVGA_3D_CMD_DX_SET_HS_CONSTANT_BUFFER_OFFSET",
	CmdDxSetDsConstantBufferOffset: "SVGA_3D_CMD_DX_SET_DS_CONSTANT_BUFFER_OFFSET",
	CmdDxSetCsConstantBufferOffset: "SVGA_3D_CMD_DX_SET_CS_CONSTANT_BUFFER_OFFSET",
	CmdDxCondBindAllShader: "SVGA_3D_CMD_DX_COND_BIND_ALL_SHADER",
	CmdScreenCopy: "SVGA_3D_CMD_SCREEN_COPY",
	CmdGrowOtable: "SVGA_3D_CMD_GROW_OTABLE",
	CmdDxGrowCotable: "SVGA_3D_CMD_DX_GROW_COTABLE",
	CmdIntraSurfaceCopy: "SVGA_3D_CMD_INTRA_SURFACE_COPY",
	CmdDefineGbSurfaceV3: "SVGA_3D_CMD_DEFINE_GB_SURFACE_V3",
	CmdDxResolveCopy: "SVGA_3D_CMD_DX_RESOLVE_COPY",
	CmdDxPredResolveCopy: "SVGA_3D_CMD_DX_PRED_RESOLVE_COPY",
	CmdDxPredConvertRegion: "SVGA_3D_CMD_DX_PRED_CONVERT_REGION",
	CmdDxPredConvert: "SVGA_3D_CMD_DX_PRED_CONVERT",
	CmdWholeSurfaceCopy: "SVGA_3D_CMD_WHOLE_SURFACE_COPY",
	CmdDxDefineUaView: "SVGA_3D_CMD_DX_DEFINE_UA_VIEW",
	CmdDxDestroyUaView: "SVGA_3D_CMD_DX_DESTROY_UA_VIEW",
	CmdDxClearUaViewUint: "SVGA_3D_CMD_DX_CLEAR_UA_VIEW_UINT",
	CmdDxClearUaViewFloat: "SVGA_3D_CMD_DX_CLEAR_UA_VIEW_FLOAT",
	CmdDxCopyStructureCount: "SVGA_3D_CMD_DX_COPY_STRUCTURE_COUNT",
	CmdDxSetUaViews: "SVGA_3D_CMD_DX_SET_UA_VIEWS",
	CmdDxDrawIndexedInstancedIndirect: "SVGA_3D_CMD_DX_DRAW_INDEXED_INSTANCED_INDIRECT",
	CmdDxDrawInstancedIndirect: "SVGA_3D_CMD_DX_DRAW_INSTANCED_INDIRECT",
	CmdDxDispatch: "SVGA_3D_CMD_DX_DISPATCH",
	CmdDxDispatchIndirect: "SVGA_3D_CMD_DX_DISPATCH_INDIRECT",
	CmdWriteZeroSurface: "SVGA_3D_CMD_WRITE_ZERO_SURFACE",
	CmdHintZeroSurface: "SVGA_3D_CMD_HINT_ZERO_SURFACE",
	CmdDxTransferToBuffer: "SVGA_3D_CMD_DX_TRANSFER_TO_BUFFER",
	CmdDxSetStructureCount: "SVGA_3D_CMD_DX_SET_STRUCTURE_COUNT",
	CmdLogicopsBitblt: "SVGA_3D_CMD_LOGICOPS_BITBLT",
	CmdLogicopsTransblt: "SVGA_3D_CMD_LOGICOPS_TRANSBLT",
	CmdLogicopsStretchblt: "SVGA_3D_CMD_LOGICOPS_STRETCHBLT",
	CmdLogicopsColorfill: "SVGA_3D_CMD_LOGICOPS_COLORFILL",
	CmdLogicopsAlphablend: "SVGA_3D_CMD_LOGICOPS_ALPHABLEND",
	CmdLogicopsCleartypeblend: "SVGA_3D_CMD_LOGICOPS_CLEARTYPEBLEND",
	CmdDefineGbSurfaceV4: "SVGA_3D_CMD_DEFINE_GB_SURFACE_V4",
	CmdDxSetCsUaViews: "SVGA_3D_CMD_DX_SET_CS_UA_VIEWS",
	CmdDxSetMinLod: "SVGA_3D_CMD_DX_SET_MIN_LOD",
	CmdDxDefineDepthstencilViewV2: "SVGA_3D_CMD_DX_DEFINE_DEPTHSTENCIL_VIEW_V2",
	CmdDxDefineStreamoutputWithMob: "SVGA_3D_CMD_DX_DEFINE_STREAMOUTPUT_WITH_MOB",
	CmdDxSetShaderIface: "SVGA_3D_CMD_DX_SET_SHADER_IFACE",
	CmdDxBindStreamoutput: "SVGA_3D_CMD_DX_BIND_STREAMOUTPUT",
	CmdSurfaceStretchbltNonMsToMs: "SVGA_3D_CMD_SURFACE_STRETCHBLT_NON_MS_TO_MS",
	CmdDxBindShaderIface: "SVGA_3D_CMD_DX_BIND_SHADER_IFACE",
	CmdMax: "SVGA_3D_CMD_MAX",
	CmdFutureMax: "SVGA_3D_CMD_FUTURE_MAX",
}

// String returns the protocol name of id, or a numeric fallback if id is
// not a known command.
func (id CmdID) String() string {
	if n, ok := cmdNames[id]; ok {
		return n
	}
	return "SVGA_3D_CMD_UNKNOWN"
}

