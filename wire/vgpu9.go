package wire

// Legacy VGPU9 command payloads (SVGA_3D_CMD_* in the 1040-1096 range):
// fixed-function surfaces, contexts, and immediate-mode drawing. Each
// payload type is the fixed header that follows the 8-byte cmd_id/cmd_size
// FIFO record header; variable-length trailing arrays are decoded
// separately with wire.Elements.

// SVGA3dSurfaceFace is one of the (up to 6) cube faces' mip-chain length.
type SVGA3dSurfaceFace struct {
	NumMipLevels uint32
}

// MaxSurfaceFaces bounds the fixed Faces array in CmdSurfaceDefinePayload
// (spec §6.1: `Face[6] faces`).
const MaxSurfaceFaces = 6

// CmdSurfaceDefinePayload is SURFACE_DEFINE (1040). An SVGA3dSize entry
// follows per mip level across all non-empty faces (spec §6.1).
type CmdSurfaceDefinePayload struct {
	SID          uint32
	SurfaceFlags uint32
	Format       uint32
	Faces        [MaxSurfaceFaces]SVGA3dSurfaceFace
}

// CmdSurfaceDefineV2Payload is SURFACE_DEFINE_V2: adds a multisample count
// and autogen filter over the V1 layout (spec §9 Open Question 2).
type CmdSurfaceDefineV2Payload struct {
	SID              uint32
	SurfaceFlags     uint32
	Format           uint32
	Faces            [MaxSurfaceFaces]SVGA3dSurfaceFace
	MultisampleCount uint32
	AutogenFilter    uint32
}

// CmdSurfaceDestroyPayload is SURFACE_DESTROY (1041).
type CmdSurfaceDestroyPayload struct {
	SID uint32
}

// CmdSurfaceCopyPayload is SURFACE_COPY (1042); an SVGA3dCopyBox array
// follows.
type CmdSurfaceCopyPayload struct {
	Src  SurfaceImageId
	Dest SurfaceImageId
}

// CmdSurfaceStretchBltPayload is SURFACE_STRETCHBLT (1043).
type CmdSurfaceStretchBltPayload struct {
	Src     SurfaceImageId
	Dest    SurfaceImageId
	BoxSrc  SVGA3dBox
	BoxDest SVGA3dBox
	Mode    uint32
}

// CmdSurfaceDMAPayload is SURFACE_DMA (1052, spec §6.1). An SVGA3dCopyBox
// array follows.
type CmdSurfaceDMAPayload struct {
	Guest    SVGAGuestPtr
	Host     SurfaceImageId
	Transfer uint32
}

// CmdContextDefinePayload is CONTEXT_DEFINE (1053).
type CmdContextDefinePayload struct {
	CID uint32
}

// CmdContextDestroyPayload is CONTEXT_DESTROY (1054).
type CmdContextDestroyPayload struct {
	CID uint32
}

// CmdSetRenderTargetPayload is SET_RENDER_TARGET (1058).
type CmdSetRenderTargetPayload struct {
	CID    uint32
	Type   uint32
	Target SurfaceImageId
}

// CmdShaderDefinePayload is SHADER_DEFINE (1067); the shader bytecode
// follows as a trailing byte array.
type CmdShaderDefinePayload struct {
	CID        uint32
	ShaderID   uint32
	ShaderType uint32
}

// CmdShaderDestroyPayload is SHADER_DESTROY (1068).
type CmdShaderDestroyPayload struct {
	CID      uint32
	ShaderID uint32
}

// CmdSetShaderPayload is SET_SHADER (1069).
type CmdSetShaderPayload struct {
	CID        uint32
	ShaderType uint32
	ShaderID   uint32
}

// CmdDrawPrimitivesPayload is DRAW_PRIMITIVES (1071); range and decl arrays
// follow (omitted here, forwarded to the backend as raw bytes).
type CmdDrawPrimitivesPayload struct {
	CID           uint32
	NumVertexDecls uint32
	NumRanges     uint32
}

// CmdPresentPayload is PRESENT (1066); an SVGA3dRect array follows.
type CmdPresentPayload struct {
	SID uint32
}

// CmdBlitSurfaceToScreenPayload is BLIT_SURFACE_TO_SCREEN (1077).
type CmdBlitSurfaceToScreenPayload struct {
	Src      SurfaceImageId
	DestRect SVGA3dRect
	DestScreenID uint32
}
