package surface

import "github.com/gogpu/svga3d/wire"

// MipLevel records the pre-computed byte layout of one (mip, array-slice)
// subresource, plus its dirty tracking and optional host shadow (spec
// §3.4).
type MipLevel struct {
	MipSize    wire.SVGA3dSize
	BlocksX    uint32
	BlocksY    uint32
	RowPitch   uint64
	PlanePitch uint64
	TotalBytes uint64
	Dirty      bool
	HostShadow []byte
}

func ceilDivU32(n, d uint32) uint32 {
	if d == 0 {
		return 0
	}
	return (n + d - 1) / d
}

func shiftDim(v uint32, mip uint32) uint32 {
	s := v >> mip
	if s == 0 {
		s = 1
	}
	return s
}

// mipSize computes mip level i's extent from base, per spec §3.4:
// mip_size[i] = max(base_size >> i, 1) component-wise.
func mipSize(base wire.SVGA3dSize, mip uint32) wire.SVGA3dSize {
	return wire.SVGA3dSize{
		Width:  shiftDim(base.Width, mip),
		Height: shiftDim(base.Height, mip),
		Depth:  shiftDim(base.Depth, mip),
	}
}

// computeMipLevel derives a MipLevel's geometry from format and the base
// surface size (spec §3.4 invariants).
func computeMipLevel(format wire.SurfaceFormat, base wire.SVGA3dSize, mip uint32) MipLevel {
	bi := format.BlockInfo()
	size := mipSize(base, mip)

	blocksX := ceilDivU32(size.Width, uint32(bi.BlockW))
	blocksY := ceilDivU32(size.Height, uint32(bi.BlockH))

	rowPitch := uint64(blocksX) * uint64(bi.BlockBytes)
	planePitch := rowPitch * uint64(blocksY)
	totalBytes := planePitch * uint64(size.Depth)

	return MipLevel{
		MipSize:    size,
		BlocksX:    blocksX,
		BlocksY:    blocksY,
		RowPitch:   rowPitch,
		PlanePitch: planePitch,
		TotalBytes: totalBytes,
	}
}
