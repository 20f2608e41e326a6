package svga3d

// Resource limits from spec §5 "Resource limits".
const (
	// InvalidID is the sentinel meaning "no object" for every 32-bit id
	// namespace in the wire protocol (surface id, context id, mobid, view
	// ids, ...). Guest structs use 0xFFFFFFFF for "none"; see spec §9
	// "Optional fields".
	InvalidID uint32 = 0xFFFFFFFF

	// PageSize is the guest page size assumed by the GBO page-table walk.
	PageSize = 4096

	// MaxSurfaceIDs bounds the surface id namespace (sid < 2^20).
	MaxSurfaceIDs = 1 << 20

	// MaxContextIDs bounds the DX/VGPU9 context id namespace.
	MaxContextIDs = 256

	// MaxMipLevels is the maximum mip chain length for a surface.
	MaxMipLevels = 16

	// MaxSurfaceFaces is the maximum number of cubemap faces.
	MaxSurfaceFaces = 6

	// MaxGBOBytes bounds a single GBO's logical size (128 MiB).
	MaxGBOBytes = 128 << 20

	// MaxSurfaceBytes bounds the total backing memory of one surface,
	// summed across all mip levels and array slices (2 GiB).
	MaxSurfaceBytes = 2 << 30

	// IDGrowChunk is the power-of-16 chunk size used to grow arrays keyed
	// by guest-supplied ids (surfaces, contexts): align_up(id+15, 16).
	IDGrowChunk = 16
)

// AlignGrowTo implements align_up(id+15, 16) from spec §5: the minimum
// array length (in power-of-16 chunks) needed to hold index id.
func AlignGrowTo(id uint32) uint32 {
	const chunk = IDGrowChunk
	x := id + (chunk - 1)
	return ((x + chunk - 1) / chunk) * chunk
}

// IsValidID reports whether id is not the InvalidID sentinel.
func IsValidID(id uint32) bool {
	return id != InvalidID
}
