package wire

// GB (guest-backed) and DX command payloads (SVGA_3D_CMD_* in the
// 1086-1277 range): MOB lifecycle, GB surfaces, and the DX10-style
// pipeline. As with vgpu9.go, each type is the fixed header immediately
// following the FIFO record's cmd_id/cmd_size pair.

// CmdDefineGbMobPayload is DEFINE_GB_MOB (1086).
type CmdDefineGbMobPayload struct {
	MobID   uint32
	PTDepth PTDepth
	Base    uint32 // PPN of the root page
	SizeInBytes uint32
}

// CmdDefineGbMob64Payload is DEFINE_GB_MOB64, the 64-bit-PPN variant used
// when Base would overflow 32 bits.
type CmdDefineGbMob64Payload struct {
	MobID       uint32
	PTDepth     PTDepth
	Base        uint64
	SizeInBytes uint32
}

// CmdDestroyGbMobPayload is DESTROY_GB_MOB (1087).
type CmdDestroyGbMobPayload struct {
	MobID uint32
}

// CmdDefineGbSurfacePayload is DEFINE_GB_SURFACE (1097, spec §6.1).
type CmdDefineGbSurfacePayload struct {
	SID              uint32
	SurfaceFlags     uint32
	Format           uint32
	NumMipLevels     uint32
	MultisampleCount uint32
	AutogenFilter    uint32
	Size             SVGA3dSize
}

// CmdDefineGbSurfaceV2Payload is DEFINE_GB_SURFACE_V2: adds array size
// (followed by a padding word) over v1.
type CmdDefineGbSurfaceV2Payload struct {
	CmdDefineGbSurfacePayload
	ArraySize uint32
	Padding   uint32
}

// CmdDefineGbSurfaceV3Payload is DEFINE_GB_SURFACE_V3: adds multisample
// pattern and quality level (§4 supplemented features).
type CmdDefineGbSurfaceV3Payload struct {
	CmdDefineGbSurfaceV2Payload
	MultisamplePattern uint32
	QualityLevel       uint32
}

// CmdDefineGbSurfaceV4Payload is DEFINE_GB_SURFACE_V4: adds an explicit
// buffer byte stride, used for raw-buffer-typed surfaces.
type CmdDefineGbSurfaceV4Payload struct {
	CmdDefineGbSurfaceV3Payload
	BufferByteStride uint32
}

// CmdDestroyGbSurfacePayload is DESTROY_GB_SURFACE (1098).
type CmdDestroyGbSurfacePayload struct {
	SID uint32
}

// CmdBindGbSurfacePayload is BIND_GB_SURFACE (1099).
type CmdBindGbSurfacePayload struct {
	SID   uint32
	MobID uint32
}

// CmdUpdateGbImagePayload is UPDATE_GB_IMAGE (1101); marks a subresource
// dirty so the backend can pull it from its MOB.
type CmdUpdateGbImagePayload struct {
	Image SurfaceImageId
	Box   SVGA3dBox
}

// CmdUpdateGbSurfacePayload is UPDATE_GB_SURFACE (1102): every subresource.
type CmdUpdateGbSurfacePayload struct {
	SID uint32
}

// CmdReadbackGbImagePayload is READBACK_GB_IMAGE (1103).
type CmdReadbackGbImagePayload struct {
	Image SurfaceImageId
}

// CmdReadbackGbSurfacePayload is READBACK_GB_SURFACE (1104).
type CmdReadbackGbSurfacePayload struct {
	SID uint32
}

// CmdInvalidateGbImagePayload is INVALIDATE_GB_IMAGE (1105).
type CmdInvalidateGbImagePayload struct {
	Image SurfaceImageId
}

// CmdInvalidateGbSurfacePayload is INVALIDATE_GB_SURFACE (1106).
type CmdInvalidateGbSurfacePayload struct {
	SID uint32
}

// CmdDefineGbContextPayload is DEFINE_GB_CONTEXT (1107): a legacy-shader
// context backed by guest memory rather than an immediate-mode context.
type CmdDefineGbContextPayload struct {
	CID uint32
}

// CmdDestroyGbContextPayload is DESTROY_GB_CONTEXT (1108).
type CmdDestroyGbContextPayload struct {
	CID uint32
}

// CmdBindGbContextPayload is BIND_GB_CONTEXT (1109).
type CmdBindGbContextPayload struct {
	CID            uint32
	MobID          uint32
	ValidityLength uint32
}

// CmdDxDefineContextPayload is DX_DEFINE_CONTEXT (1143, spec §6.1).
type CmdDxDefineContextPayload struct {
	CID uint32
}

// CmdDxDestroyContextPayload is DX_DESTROY_CONTEXT (1144).
type CmdDxDestroyContextPayload struct {
	CID uint32
}

// CmdDxBindContextPayload is DX_BIND_CONTEXT (1145).
type CmdDxBindContextPayload struct {
	CID            uint32
	MobID          uint32
	ValidityLength uint32
}

// CmdDxReadbackContextPayload is DX_READBACK_CONTEXT (1146).
type CmdDxReadbackContextPayload struct {
	CID uint32
}

// CmdDxInvalidateContextPayload is DX_INVALIDATE_CONTEXT (1147).
type CmdDxInvalidateContextPayload struct {
	CID uint32
}

// CmdDxSetShaderPayload is DX_SET_SHADER (1150).
type CmdDxSetShaderPayload struct {
	ShaderID uint32
	Type     uint32
}

// CmdDxSetRendertargetsPayload is DX_SET_RENDERTARGETS (1161, spec §6.1);
// render_target_view_id[n] follows as a trailing uint32 array.
type CmdDxSetRendertargetsPayload struct {
	DepthStencilViewID uint32
}

// CmdDxDrawPayload is DX_DRAW (1152).
type CmdDxDrawPayload struct {
	VertexCount        uint32
	StartVertexLocation uint32
}

// CmdDxDrawIndexedPayload is DX_DRAW_INDEXED (1153).
type CmdDxDrawIndexedPayload struct {
	IndexCount         uint32
	StartIndexLocation uint32
	BaseVertexLocation int32
}

// CmdDxDrawIndexedInstancedPayload is DX_DRAW_INDEXED_INSTANCED (1155).
type CmdDxDrawIndexedInstancedPayload struct {
	IndexCountPerInstance uint32
	InstanceCount         uint32
	StartIndexLocation    uint32
	BaseVertexLocation    int32
	StartInstanceLocation uint32
}

// CmdDxClearRendertargetViewPayload is DX_CLEAR_RENDERTARGET_VIEW (1176).
type CmdDxClearRendertargetViewPayload struct {
	ViewID uint32
	RGBA   [4]float32
}

// CmdDxClearDepthstencilViewPayload is DX_CLEAR_DEPTHSTENCIL_VIEW (1177).
type CmdDxClearDepthstencilViewPayload struct {
	Flags   uint16
	Stencil uint16
	ViewID  uint32
	Depth   float32
}

// CmdDxDefineQueryPayload is DX_DEFINE_QUERY (1165).
type CmdDxDefineQueryPayload struct {
	QueryID uint32
	Type    uint32
	Flags   uint32
}

// CmdDxDestroyQueryPayload is DX_DESTROY_QUERY (1166).
type CmdDxDestroyQueryPayload struct {
	QueryID uint32
}

// CmdDxBindQueryPayload is DX_BIND_QUERY (1167).
type CmdDxBindQueryPayload struct {
	QueryID uint32
	MobID   uint32
}

// CmdDxSetQueryOffsetPayload is DX_SET_QUERY_OFFSET (1168).
type CmdDxSetQueryOffsetPayload struct {
	QueryID uint32
	Offset  uint32
}

// CmdDxBeginQueryPayload is DX_BEGIN_QUERY (1169).
type CmdDxBeginQueryPayload struct {
	QueryID uint32
}

// CmdDxEndQueryPayload is DX_END_QUERY (1170).
type CmdDxEndQueryPayload struct {
	QueryID uint32
}

// CmdDxReadbackQueryPayload is DX_READBACK_QUERY (1171).
type CmdDxReadbackQueryPayload struct {
	QueryID uint32
}

// CmdDxMoveQueryPayload is DX_MOVE_QUERY (1212, §4 supplemented feature):
// reassigns a query's result MOB without disturbing its state machine
// phase.
type CmdDxMoveQueryPayload struct {
	QueryID  uint32
	MobID    uint32
	MobOffset uint32
}

// CmdDxSetPredicationPayload is DX_SET_PREDICATION (1172, §4 supplemented
// feature). QueryID == InvalidID means "no predicate" (unconditional).
type CmdDxSetPredicationPayload struct {
	QueryID       uint32
	PredicateValue uint32
}

// CmdDxPredCopyRegionPayload is DX_PRED_COPY_REGION (1178): a predicated
// surface-to-surface box copy, clipped against both surfaces' extents
// (spec §8 seed scenario #3).
type CmdDxPredCopyRegionPayload struct {
	DstSID uint32
	SrcSID uint32
	DstBox SVGA3dBox
}

// CmdDxBufferCopyPayload is DX_BUFFER_COPY (1209, §4 supplemented
// feature): byte-range copy between two buffer-typed surfaces, no mip or
// box clipping.
type CmdDxBufferCopyPayload struct {
	DstSID uint32
	SrcSID uint32
	DstOffset uint32
	SrcOffset uint32
	Width     uint32
}

// CmdDxBufferUpdatePayload is DX_BUFFER_UPDATE (1219, §4 supplemented
// feature).
type CmdDxBufferUpdatePayload struct {
	SID    uint32
	Offset uint32
	Width  uint32
}

// CmdDxSetCotablePayload is DX_SET_COTABLE (1207, spec §6.1).
type CmdDxSetCotablePayload struct {
	CID           uint32
	MobID         uint32
	Type          OTableType
	ValidSizeBytes uint32
}

// CmdDxReadbackCotablePayload is DX_READBACK_COTABLE (1208).
type CmdDxReadbackCotablePayload struct {
	CID  uint32
	Type OTableType
}

// CmdDxGrowCotablePayload is DX_GROW_COTABLE (1237, §4 supplemented
// feature): grow a bound COTable in place, preserving its live entries.
type CmdDxGrowCotablePayload struct {
	CID            uint32
	Type           OTableType
	MobID          uint32
	ValidSizeBytes uint32
}

// CmdDxPresentBltPayload is DX_PRESENT_BLT (1180).
type CmdDxPresentBltPayload struct {
	SrcSID  uint32
	DestSID uint32
	SrcBox  SVGA3dBox
	DestBox SVGA3dBox
	Mode    uint32
}

// CmdDxGenMipsPayload is DX_GENMIPS (1181).
type CmdDxGenMipsPayload struct {
	ShaderResourceViewID uint32
}

// CmdDxDefineShaderResourceViewPayload is DX_DEFINE_SHADERRESOURCE_VIEW
// (1185). The real protocol also carries a resource-dimension union
// (texture type, mip range); this module tracks only the binding a view
// id needs to be validated and unbound (spec §9 "arena + index").
type CmdDxDefineShaderResourceViewPayload struct {
	ViewID uint32
	SID    uint32
}

// CmdDxDestroyShaderResourceViewPayload is DX_DESTROY_SHADERRESOURCE_VIEW
// (1186).
type CmdDxDestroyShaderResourceViewPayload struct {
	ViewID uint32
}

// CmdDxDefineRendertargetViewPayload is DX_DEFINE_RENDERTARGET_VIEW
// (1187).
type CmdDxDefineRendertargetViewPayload struct {
	ViewID uint32
	SID    uint32
}

// CmdDxDestroyRendertargetViewPayload is DX_DESTROY_RENDERTARGET_VIEW
// (1188).
type CmdDxDestroyRendertargetViewPayload struct {
	ViewID uint32
}

// CmdDxDefineDepthstencilViewPayload is DX_DEFINE_DEPTHSTENCIL_VIEW
// (1189).
type CmdDxDefineDepthstencilViewPayload struct {
	ViewID uint32
	SID    uint32
}

// CmdDxDestroyDepthstencilViewPayload is DX_DESTROY_DEPTHSTENCIL_VIEW
// (1190).
type CmdDxDestroyDepthstencilViewPayload struct {
	ViewID uint32
}

// CmdDxDefineUaViewPayload is DX_DEFINE_UA_VIEW (1245, §4 supplemented
// feature).
type CmdDxDefineUaViewPayload struct {
	ViewID uint32
	SID    uint32
}

// CmdDxDestroyUaViewPayload is DX_DESTROY_UA_VIEW (1246).
type CmdDxDestroyUaViewPayload struct {
	ViewID uint32
}

// CmdDxDefineShaderPayload is DX_DEFINE_SHADER (1201); shader bytecode
// follows as a trailing byte array, handed to naga for translation by the
// wgpuref reference backend.
type CmdDxDefineShaderPayload struct {
	CID        uint32
	ShaderID   uint32
	ShaderType uint32
}

// CmdDxDestroyShaderPayload is DX_DESTROY_SHADER (1202).
type CmdDxDestroyShaderPayload struct {
	CID      uint32
	ShaderID uint32
}

// CmdDxBindShaderPayload is DX_BIND_SHADER (1203).
type CmdDxBindShaderPayload struct {
	CID      uint32
	ShaderID uint32
}

// CmdDxSetTopologyPayload is DX_SET_TOPOLOGY (1160).
type CmdDxSetTopologyPayload struct {
	CID      uint32
	Topology uint32
}

// CmdDxSetIndexBufferPayload is DX_SET_INDEX_BUFFER (1159).
type CmdDxSetIndexBufferPayload struct {
	CID    uint32
	SID    uint32
	Format uint32
	Offset uint32
}

// CmdDxVertexBufferPayload is one element of the trailing array following
// CmdDxSetVertexBuffersPayload's fixed header (1158).
type CmdDxVertexBufferPayload struct {
	SID    uint32
	Stride uint32
	Offset uint32
}

// CmdDxSetVertexBuffersPayload is DX_SET_VERTEX_BUFFERS (1158)'s fixed
// header; a CmdDxVertexBufferPayload array follows, one per slot starting
// at StartSlot.
type CmdDxSetVertexBuffersPayload struct {
	CID       uint32
	StartSlot uint32
}
