package surface

import (
	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/wire"
)

// Flag is one bit of Surface.Flags (spec §3.4). The real protocol has
// roughly 40 named bits; this is the representative subset this module's
// components actually branch on, following the same deliberate scope
// reduction documented in DESIGN.md for command ids and formats.
type Flag uint64

const (
	FlagCubemap Flag = 1 << iota
	FlagVolume
	FlagHintTexture
	FlagHintRenderTarget
	FlagHintDepthStencil
	FlagScreenTarget
	FlagBindVertexBuffer
	FlagBindIndexBuffer
	FlagBindConstantBuffer
	FlagBindShaderResource
	FlagBindRenderTarget
	FlagBindDepthStencil
	FlagBindStreamOutput
	FlagBindUAView
	FlagMultisample
)

// Has reports whether all bits in want are set in f.
func (f Flag) Has(want Flag) bool { return f&want == want }

// InvalidID mirrors svga3d.InvalidID for this package's "slot free"
// sentinel (spec §3.4: "id: 0xFFFFFFFF means slot free").
const InvalidID = svga3d.InvalidID

// Surface is one entry in the catalog (spec §3.4).
type Surface struct {
	ID    uint32
	Flags Flag

	Format           wire.SurfaceFormat
	NumMipLevels     uint32
	ArraySize        uint32
	MultisampleCount uint32
	AutogenFilter    uint32
	BaseSize         wire.SVGA3dSize

	// MipLevels is indexed by subresourceIndex(arraySlice, mip, numMips):
	// array slice major, mip minor, matching DX subresource addressing.
	MipLevels []MipLevel

	AssociatedContextID uint32 // svga3d.InvalidID if unbound
	MobID               uint32 // svga3d.InvalidID if not GB-bound

	BackendHandle any // opaque; core never dereferences this (spec §9)
	Dirty         bool
}

// subresourceIndex computes the flat index into Surface.MipLevels for
// (arraySlice, mip), matching DX10+'s D3D11CalcSubresource addressing
// (slice-major, mip-minor).
func subresourceIndex(arraySlice, mip, numMips uint32) uint32 {
	return arraySlice*numMips + mip
}

// MipLevelAt returns the MipLevel for (arraySlice, mip), or nil if out of
// range.
func (s *Surface) MipLevelAt(arraySlice, mip uint32) *MipLevel {
	if mip >= s.NumMipLevels || arraySlice >= s.ArraySize {
		return nil
	}
	idx := subresourceIndex(arraySlice, mip, s.NumMipLevels)
	if int(idx) >= len(s.MipLevels) {
		return nil
	}
	return &s.MipLevels[idx]
}

// HardwareBacked reports whether this surface has a realized backend
// handle (spec §4.5.3 Surface realization).
func (s *Surface) HardwareBacked() bool {
	return s.BackendHandle != nil
}

// TotalBytes sums TotalBytes across every mip level and array slice
// (spec §3.4 invariant, §8 "s.total_bytes <= 2 GiB").
func (s *Surface) TotalBytes() uint64 {
	var sum uint64
	for _, m := range s.MipLevels {
		sum += m.TotalBytes
	}
	return sum
}

// DefineParams is the fully-populated parameter struct every
// SURFACE_DEFINE/SURFACE_DEFINE_V2/DEFINE_GB_SURFACE_v{1..4} wire handler
// builds before calling Catalog.Define, per spec §9 Open Question 2 and
// SPEC_FULL.md §5.2's single shared internal entry point.
type DefineParams struct {
	SID              uint32
	Flags            Flag
	Format           wire.SurfaceFormat
	NumMipLevels     uint32
	ArraySize        uint32
	MultisampleCount uint32
	AutogenFilter    uint32
	BaseSize         wire.SVGA3dSize
	AllocMipShadows  bool
}
