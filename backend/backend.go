package backend

import "github.com/gogpu/svga3d/wire"

// SurfaceRef identifies a (surface, face, mip, array-slice) subresource
// passed across the backend boundary. It widens wire.SurfaceImageId with
// an explicit array slice so DX-era array/cubemap surfaces address the
// right subresource without the backend needing to know the surface
// catalog's internal layout.
type SurfaceRef struct {
	SID        uint32
	Face       uint32
	Mip        uint32
	ArraySlice uint32
}

// Backend3D covers the 3D operations shared by both the legacy VGPU9
// fixed-function pipeline and the DX pipeline: surface-to-surface
// transfers and presentation. Every box/rect argument has already been
// clipped against both surfaces' dimensions by the caller (spec §4.4).
type Backend3D interface {
	// SurfaceCopy copies one subresource region into another, both
	// already realized on the backend.
	SurfaceCopy(dst, src SurfaceRef, box wire.SVGA3dCopyBox) error

	// SurfaceStretchBlt performs a filtered blit between two
	// (possibly differently sized) boxes.
	SurfaceStretchBlt(dst SurfaceRef, dstBox wire.SVGA3dBox, src SurfaceRef, srcBox wire.SVGA3dBox, mode uint32) error

	// Present flips or copies sid to the screen.
	Present(sid uint32, rects []wire.SVGA3dRect) error

	// BlitSurfaceToScreen blits one surface subresource directly onto a
	// screen's framebuffer region.
	BlitSurfaceToScreen(src SurfaceRef, destScreenID uint32, destRect wire.SVGA3dRect) error
}

// BackendVGPU9 covers the legacy fixed-function 3D command set: immediate
// contexts, fixed-function render/texture state, and DRAW_PRIMITIVES.
type BackendVGPU9 interface {
	ContextDefine(cid uint32) error
	ContextDestroy(cid uint32) error

	SetRenderTarget(cid uint32, targetType uint32, target SurfaceRef) error

	ShaderDefine(cid, shaderID, shaderType uint32, bytecode []byte) error
	ShaderDestroy(cid, shaderID uint32) error
	SetShader(cid, shaderType, shaderID uint32) error

	DrawPrimitives(cid uint32, declBytes, rangeBytes []byte) error
}

// MapType selects the access mode of a Surface.Map call (spec §4.4).
type MapType int

const (
	MapRead MapType = iota
	MapWrite
	MapReadWrite
	MapWriteDiscard
)

// MappedRegion is what a backend hands back from MapSurface: a host
// pointer plus the pitches needed to walk it row-by-row and
// plane-by-plane (spec §4.4 MappedSurface).
type MappedRegion struct {
	Pointer    []byte
	RowBytes   int
	RowPitch   int
	Rows       int
	DepthPitch int
}

// BackendMap covers mapping a hardware-backed surface's memory into the
// host's address space for direct CPU access, used when a surface has no
// software shadow of its own.
type BackendMap interface {
	MapSurface(ref SurfaceRef, mapType MapType, box wire.SVGA3dBox) (MappedRegion, error)
	UnmapSurface(ref SurfaceRef, written bool) error
}

// BackendGBO covers realizing and transferring guest-backed surfaces: the
// lazy hardware-texture creation path and the MOB-driven update/readback
// commands that move bytes between a MOB and a surface's hardware image.
type BackendGBO interface {
	// CreateSurfaceResource lazily realizes sid as a hardware resource.
	// Called exactly once, on first use requiring a backend handle (spec
	// §4.5.3 Surface realization).
	CreateSurfaceResource(sid uint32, flags uint64, format wire.SurfaceFormat, numMips, arraySize uint32, baseSize wire.SVGA3dSize) error

	// DestroySurfaceResource releases sid's hardware handle, if any.
	DestroySurfaceResource(sid uint32) error

	// UpdateGBImage pushes MOB-shadowed bytes into the hardware image for
	// one subresource box.
	UpdateGBImage(ref SurfaceRef, box wire.SVGA3dBox, mobBytes []byte) error

	// ReadbackGBImage pulls hardware image bytes back into the caller's
	// buffer for one subresource box.
	ReadbackGBImage(ref SurfaceRef, box wire.SVGA3dBox, out []byte) error
}

// QueryResult is what EndQuery asks the backend for (spec §4.5.3 DX Query
// lifecycle): the raw sample data plus whether it succeeded.
type QueryResult struct {
	Data []byte
	OK   bool
}

// BackendDX covers the VGPU10/DirectX-style pipeline: contexts, pipeline
// state objects, views, shaders, draws, and queries.
type BackendDX interface {
	DxDefineContext(cid uint32) error
	DxDestroyContext(cid uint32) error
	// DxBindContext notifies the backend that cid's pipeline state has
	// just been swapped in from a MOB, so any host-side pipeline object
	// it caches for cid can be refreshed before the next draw. validContents
	// mirrors DX_BIND_CONTEXT's own flag: false means the new MOB's bytes
	// are not meaningful yet and the backend should fall back to defaults.
	DxBindContext(cid uint32, validContents bool) error
	// DxReadbackContext notifies the backend that cid's live pipeline
	// state has just been flushed to its bound MOB, in case the backend
	// holds state the core's PipelineState mirror doesn't capture.
	DxReadbackContext(cid uint32) error

	DxSetRenderTargets(cid uint32, depthStencilViewID uint32, rtViewIDs []uint32) error
	DxSetShader(cid uint32, shaderType uint32, shaderID uint32) error
	DxSetTopology(cid uint32, topology uint32) error
	DxSetVertexBuffers(cid uint32, startSlot uint32, sids []uint32, strides, offsets []uint32) error
	DxSetIndexBuffer(cid uint32, sid uint32, format uint32, offset uint32) error

	DxDraw(cid uint32, vertexCount, startVertexLocation uint32) error
	DxDrawIndexed(cid uint32, indexCount, startIndexLocation uint32, baseVertexLocation int32) error
	DxDrawIndexedInstanced(cid uint32, indexCountPerInstance, instanceCount, startIndexLocation uint32, baseVertexLocation int32, startInstanceLocation uint32) error

	DxClearRenderTargetView(viewID uint32, rgba [4]float32) error
	DxClearDepthStencilView(viewID uint32, flags uint16, depth float32, stencil uint16) error

	DxDefineShader(cid, shaderID uint32, shaderType uint32, bytecode []byte) error
	DxDestroyShader(cid, shaderID uint32) error
	DxBindShader(cid, shaderID uint32) error

	DxDefineQuery(cid, queryID uint32, queryType uint32) error
	DxBeginQuery(cid, queryID uint32) error
	DxEndQuery(cid, queryID uint32) (QueryResult, error)
	DxDestroyQuery(cid, queryID uint32) error

	DxGenMips(shaderResourceViewID uint32) error
	DxPresentBlt(src SurfaceRef, srcBox wire.SVGA3dBox, dst SurfaceRef, dstBox wire.SVGA3dBox, mode uint32) error

	DxBufferCopy(dstSID, srcSID uint32, dstOffset, srcOffset, width uint32) error
}
