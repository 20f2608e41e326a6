package wire

// SVGAGuestPtr identifies a location in guest memory by GMR id + byte
// offset (spec §6.1). GMRFramebuffer is the legacy sentinel meaning "read
// directly from VRAM" rather than through a GMR/MOB indirection.
type SVGAGuestPtr struct {
	GMRID  uint32
	Offset uint32
}

// CmdHeader is the 8-byte record header every FIFO-framed 3D command
// carries in front of its payload (spec §6.1 SVGA3dCmdHeader): a command
// id followed by the payload's byte length, not counting the header
// itself.
type CmdHeader struct {
	ID   CmdID
	Size uint32
}

// GMRFramebuffer is the reserved gmr_id meaning SVGA_GMR_FRAMEBUFFER.
const GMRFramebuffer uint32 = 0xFFFFFFFE

// SVGA3dSize is a 3D extent in texels/pixels.
type SVGA3dSize struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// SVGA3dPoint is an integer 3D coordinate.
type SVGA3dPoint struct {
	X, Y, Z uint32
}

// SVGA3dBox is an axis-aligned box with unsigned extents, used for mip
// sub-region addressing (update/invalidate/stretch-blt targets).
type SVGA3dBox struct {
	X, Y, Z          uint32
	W, H, D          uint32
}

// SVGA3dCopyBox pairs a source box with a destination origin, used by
// SURFACE_DMA and surface-to-surface copies.
type SVGA3dCopyBox struct {
	X, Y, Z    uint32
	W, H, D    uint32
	SrcX, SrcY, SrcZ uint32
}

// SVGA3dRect is a 2D rectangle (legacy FIFO commands: blits, screen updates).
type SVGA3dRect struct {
	X, Y, W, H uint32
}

// SurfaceImageId identifies one (surface, face, mip) subresource.
type SurfaceImageId struct {
	SID  uint32
	Face uint32
	Mip  uint32
}

// PTDepth selects the guest page-table indirection used to build a GBO
// (spec §3.1/§4.1). The 32-bit and 64-bit PPN variants share semantics and
// differ only in the on-the-wire PPN element width.
type PTDepth uint32

const (
	PTDepth0    PTDepth = iota // single page, no indirection beyond the PPN itself
	PTDepth1                   // one level of 32-bit PPNs
	PTDepth2                   // two levels of 32-bit PPNs
	PTDepthRange               // single contiguous run, root_gpa is its base
	PTDepth64_0                // single page, 64-bit PPN width (same shape as PTDepth0)
	PTDepth64_1                // one level of 64-bit PPNs
	PTDepth64_2                // two levels of 64-bit PPNs
)

// Is64 reports whether d addresses page tables with 64-bit PPN entries.
func (d PTDepth) Is64() bool {
	return d == PTDepth64_0 || d == PTDepth64_1 || d == PTDepth64_2
}

// Levels returns how many levels of indirection this depth implies (0 for
// PTDepthRange and the depth-0 variants, which point straight at data).
func (d PTDepth) Levels() int {
	switch d {
	case PTDepth1, PTDepth64_1:
		return 1
	case PTDepth2, PTDepth64_2:
		return 2
	default:
		return 0
	}
}

// GuestAddrMask strips the unauthorized high bits every raw guest-physical
// address is masked with before use (spec §3.1, §4.1): buggy guest drivers
// sometimes emit garbage in the top 20 bits of a PPN-derived address.
const GuestAddrMask uint64 = 0x0000_0FFF_FFFF_FFFF

// MaskGPA applies GuestAddrMask to a raw guest-physical address.
func MaskGPA(gpa uint64) uint64 {
	return gpa & GuestAddrMask
}

// OTableType enumerates the seventeen typed object tables (spec §3.3).
type OTableType uint32

const (
	OTableMOB OTableType = iota
	OTableSurface
	OTableContext
	OTableShader
	OTableScreenTarget
	OTableRTView
	OTableDSView
	OTableSRView
	OTableElementLayout
	OTableBlend
	OTableDepthStencil
	OTableRasterizer
	OTableSampler
	OTableStreamOutput
	OTableQuery
	OTableDXShader
	OTableUAView

	otableTypeCount
)

// NumOTableTypes is the number of distinct OTableType values.
const NumOTableTypes = int(otableTypeCount)

var otableTypeNames = [...]string{
	OTableMOB:           "MOB",
	OTableSurface:       "SURFACE",
	OTableContext:       "CONTEXT",
	OTableShader:        "SHADER",
	OTableScreenTarget:  "SCREENTARGET",
	OTableRTView:        "RTVIEW",
	OTableDSView:        "DSVIEW",
	OTableSRView:        "SRVIEW",
	OTableElementLayout: "ELEMENTLAYOUT",
	OTableBlend:         "BLEND",
	OTableDepthStencil:  "DEPTHSTENCIL",
	OTableRasterizer:    "RASTERIZER",
	OTableSampler:       "SAMPLER",
	OTableStreamOutput:  "STREAMOUTPUT",
	OTableQuery:         "QUERY",
	OTableDXShader:      "DXSHADER",
	OTableUAView:        "UAVIEW",
}

// String returns the table type's protocol name.
func (t OTableType) String() string {
	if int(t) < len(otableTypeNames) && otableTypeNames[t] != "" {
		return otableTypeNames[t]
	}
	return "UNKNOWN"
}

// otableEntrySize gives the fixed per-entry stride, in bytes, for each
// table type's storage layout. These mirror the wire-format COTable entry
// structs (SVGACOTableDXRTViewEntry and friends); sizes are representative
// of the real protocol rather than a literal transcription of all fields.
var otableEntrySize = [...]uint32{
	OTableMOB:           8,
	OTableSurface:       64,
	OTableContext:       8,
	OTableShader:        16,
	OTableScreenTarget:  48,
	OTableRTView:        24,
	OTableDSView:        24,
	OTableSRView:        32,
	OTableElementLayout: 16,
	OTableBlend:         32,
	OTableDepthStencil:  16,
	OTableRasterizer:    32,
	OTableSampler:       32,
	OTableStreamOutput:  24,
	OTableQuery:         16,
	OTableDXShader:      16,
	OTableUAView:        32,
}

// EntrySize returns the per-entry byte stride for table type t, or 0 if t
// is not a recognized table type.
func (t OTableType) EntrySize() uint32 {
	if int(t) < len(otableEntrySize) {
		return otableEntrySize[t]
	}
	return 0
}

// Valid reports whether t is one of the seventeen known table types.
func (t OTableType) Valid() bool {
	return t < otableTypeCount
}
