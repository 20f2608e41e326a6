package svga3d

import (
	"github.com/gogpu/svga3d/surface"
	"github.com/gogpu/svga3d/wire"
)

// TransferWriteHostVRAM/TransferReadHostVRAM are the wire SVGA3D_TRANSFER_*
// values carried in SURFACE_DMA's transfer field (spec §6.1).
const (
	TransferWriteHostVRAM uint32 = 0 // guest -> host (SVGA3D_WRITE_HOST_VRAM)
	TransferReadHostVRAM  uint32 = 1 // host -> guest (SVGA3D_READ_HOST_VRAM)
)

// SurfaceDMA is SURFACE_DMA (spec §6.1, §4.4 surface_dma): a row-by-row
// transfer between a guest memory region and one surface subresource,
// driven by a caller-supplied list of copy boxes. guest.GMRID is treated
// as a mobid (spec GLOSSARY: "GMR ... identical in spirit" to a MOB);
// SVGA_GMR_FRAMEBUFFER has no modeled VRAM aperture in this core, so it is
// rejected with ErrNotSupported rather than silently no-op'd.
func (c *Core) SurfaceDMA(guest wire.SVGAGuestPtr, host wire.SurfaceImageId, transfer uint32, boxes []wire.SVGA3dCopyBox) error {
	if guest.GMRID == wire.GMRFramebuffer {
		return NotSupportedf("Core.SurfaceDMA", "direct framebuffer GMR transfers are not modeled")
	}
	mb, ok := c.Mobs.Get(guest.GMRID)
	if !ok {
		return Invalidf("Core.SurfaceDMA", "gmr/mob %d not defined", guest.GMRID)
	}
	if c.Surfaces.Get(host.SID) == nil {
		return Invalidf("Core.SurfaceDMA", "sid %d not defined", host.SID)
	}
	dir := surface.TransferGuestToHost
	if transfer == TransferReadHostVRAM {
		dir = surface.TransferHostToGuest
	}
	return c.Surfaces.SurfaceDMA(c.caps, mb.GBO, uint64(guest.Offset), host, boxes, dir)
}
