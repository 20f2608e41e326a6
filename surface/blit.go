package surface

import (
	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/backend"
	"github.com/gogpu/svga3d/gbo"
	"github.com/gogpu/svga3d/wire"
)

// TransferDirection selects which way TransferSurfaceLevel moves bytes.
type TransferDirection int

const (
	// TransferGuestToHost is SVGA3D_WRITE_HOST_VRAM: guest MOB -> surface
	// (UPDATE_GB_IMAGE et al).
	TransferGuestToHost TransferDirection = iota
	// TransferHostToGuest is SVGA3D_READ_HOST_VRAM: surface -> guest MOB
	// (READBACK_GB_IMAGE et al).
	TransferHostToGuest
)

// TransferSurfaceLevel moves bytes between a MOB and one (clipped)
// subresource box of a surface, row by row and Z-slice by Z-slice, per
// spec §4.4 transfer_surface_level. Every row's surface offset is
// recomputed from the stored pitches and checked against the mapped region;
// the MOB offset advances by one row's bytes and each MOB access is
// bounds-checked by the GBO, so a malformed box can never walk off either
// end (spec §4.5.2: "offsets into MOB/surface memory are re-checked in the
// transfer path").
func (c *Catalog) TransferSurfaceLevel(caps backend.Capabilities, mob *gbo.GBO, mobOffset uint64, image wire.SurfaceImageId, box *wire.SVGA3dBox, dir TransferDirection) error {
	s := c.Get(image.SID)
	if s == nil {
		return svga3d.Invalidf("surface.TransferSurfaceLevel", "sid %d not defined", image.SID)
	}
	ml := s.MipLevelAt(image.Face, image.Mip)
	if ml == nil {
		return svga3d.Invalidf("surface.TransferSurfaceLevel", "face %d mip %d out of range for surface %d", image.Face, image.Mip, image.SID)
	}

	full := wire.SVGA3dBox{W: ml.MipSize.Width, H: ml.MipSize.Height, D: ml.MipSize.Depth}
	if box != nil {
		full = *box
	}
	clipped := ClipBox(ml, full)

	bi := s.Format.BlockInfo()
	blocksWide := ceilDivU32(clipped.W, uint32(bi.BlockW))
	rowBytes := uint64(blocksWide) * uint64(bi.BlockBytes)
	blockRowStart := clipped.Y / uint32(bi.BlockH)
	blockColStart := clipped.X / uint32(bi.BlockW)

	mapType := backend.MapWriteDiscard
	if dir == TransferHostToGuest {
		mapType = backend.MapRead
	}
	mapped, err := c.Map(caps, image.SID, image.Face, image.Mip, mapType, clipped)
	if err != nil {
		return err
	}
	defer c.Unmap(caps, mapped, dir == TransferGuestToHost)

	mOff := mobOffset
	for z := uint32(0); z < clipped.D; z++ {
		planeBase := uint64(clipped.Z+z) * ml.PlanePitch
		for row := uint32(0); row < ml.BlocksY && row < blockRowStart+ceilDivU32(clipped.H, uint32(bi.BlockH)); row++ {
			if row < blockRowStart {
				continue
			}
			rowOffset := planeBase + uint64(row)*ml.RowPitch + uint64(blockColStart)*uint64(bi.BlockBytes)
			if rowOffset+rowBytes > uint64(len(mapped.Pointer)) {
				return svga3d.Internalf("surface.TransferSurfaceLevel", "row offset %d exceeds mapped region", rowOffset)
			}
			dst := mapped.Pointer[rowOffset : rowOffset+rowBytes]

			var terr error
			if dir == TransferGuestToHost {
				terr = mob.Read(mOff, dst)
			} else {
				terr = mob.Write(mOff, dst)
			}
			if terr != nil {
				return terr
			}
			mOff += rowBytes
		}
	}
	return nil
}

// SurfaceCopy forwards a clipped copy between two subresources to the
// backend (spec §4.4 surface_copy/surface_dma). Both surfaces are
// realized first.
func (c *Catalog) SurfaceCopy(caps backend.Capabilities, dst, src wire.SurfaceImageId, box wire.SVGA3dCopyBox) error {
	if err := c.Realize(caps, dst.SID); err != nil {
		return err
	}
	if err := c.Realize(caps, src.SID); err != nil {
		return err
	}
	dstS, srcS := c.Get(dst.SID), c.Get(src.SID)
	if dstS == nil || srcS == nil {
		return svga3d.Invalidf("surface.SurfaceCopy", "dst %d or src %d not defined", dst.SID, src.SID)
	}
	dstML := dstS.MipLevelAt(dst.Face, dst.Mip)
	if dstML == nil {
		return svga3d.Invalidf("surface.SurfaceCopy", "dst face/mip out of range")
	}
	clippedDst := ClipBox(dstML, wire.SVGA3dBox{X: box.X, Y: box.Y, Z: box.Z, W: box.W, H: box.H, D: box.D})
	box.X, box.Y, box.Z = clippedDst.X, clippedDst.Y, clippedDst.Z
	box.W, box.H, box.D = clippedDst.W, clippedDst.H, clippedDst.D

	b3d, err := caps.Require3D()
	if err != nil {
		return err
	}
	return b3d.SurfaceCopy(
		backend.SurfaceRef{SID: dst.SID, Face: dst.Face, Mip: dst.Mip},
		backend.SurfaceRef{SID: src.SID, Face: src.Face, Mip: src.Mip},
		box)
}

// StretchBlt clips both boxes against their surfaces and forwards to the
// backend (spec §4.4 stretch_blt).
func (c *Catalog) StretchBlt(caps backend.Capabilities, dst wire.SurfaceImageId, dstBox wire.SVGA3dBox, src wire.SurfaceImageId, srcBox wire.SVGA3dBox, mode uint32) error {
	if err := c.Realize(caps, dst.SID); err != nil {
		return err
	}
	if err := c.Realize(caps, src.SID); err != nil {
		return err
	}
	dstS, srcS := c.Get(dst.SID), c.Get(src.SID)
	if dstS == nil || srcS == nil {
		return svga3d.Invalidf("surface.StretchBlt", "dst %d or src %d not defined", dst.SID, src.SID)
	}
	dstML, srcML := dstS.MipLevelAt(dst.Face, dst.Mip), srcS.MipLevelAt(src.Face, src.Mip)
	if dstML == nil || srcML == nil {
		return svga3d.Invalidf("surface.StretchBlt", "face/mip out of range")
	}
	clippedDst := ClipBox(dstML, dstBox)
	clippedSrc := ClipBox(srcML, srcBox)

	b3d, err := caps.Require3D()
	if err != nil {
		return err
	}
	return b3d.SurfaceStretchBlt(
		backend.SurfaceRef{SID: dst.SID, Face: dst.Face, Mip: dst.Mip}, clippedDst,
		backend.SurfaceRef{SID: src.SID, Face: src.Face, Mip: src.Mip}, clippedSrc,
		mode)
}

// SurfaceDMA iterates a caller-supplied list of copy boxes between a MOB
// (addressed through guest) and one surface image, re-validating every
// box's src coordinates against the clipped host box before each transfer
// (spec §4.4 surface_dma).
func (c *Catalog) SurfaceDMA(caps backend.Capabilities, mob *gbo.GBO, mobBaseOffset uint64, image wire.SurfaceImageId, boxes []wire.SVGA3dCopyBox, dir TransferDirection) error {
	s := c.Get(image.SID)
	if s == nil {
		return svga3d.Invalidf("surface.SurfaceDMA", "sid %d not defined", image.SID)
	}
	ml := s.MipLevelAt(image.Face, image.Mip)
	if ml == nil {
		return svga3d.Invalidf("surface.SurfaceDMA", "face %d mip %d out of range", image.Face, image.Mip)
	}

	bi := s.Format.BlockInfo()
	for _, cb := range boxes {
		dstBox := wire.SVGA3dBox{X: cb.X, Y: cb.Y, Z: cb.Z, W: cb.W, H: cb.H, D: cb.D}
		clipped := ClipBox(ml, dstBox)
		if clipped.W == 0 || clipped.H == 0 || clipped.D == 0 {
			continue // fully clipped away; nothing to transfer
		}
		if cb.SrcX >= ml.MipSize.Width || cb.SrcY >= ml.MipSize.Height || cb.SrcZ >= ml.MipSize.Depth {
			return svga3d.Invalidf("surface.SurfaceDMA", "src offset (%d,%d,%d) out of range", cb.SrcX, cb.SrcY, cb.SrcZ)
		}

		rowBytes := uint64(ceilDivU32(clipped.W, uint32(bi.BlockW))) * uint64(bi.BlockBytes)
		mobOffset := mobBaseOffset
		for z := uint32(0); z < clipped.D; z++ {
			for row := uint32(0); row < ceilDivU32(clipped.H, uint32(bi.BlockH)); row++ {
				surfOff := uint64(clipped.Z+z)*ml.PlanePitch + uint64((clipped.Y/uint32(bi.BlockH))+row)*ml.RowPitch + uint64(clipped.X/uint32(bi.BlockW))*uint64(bi.BlockBytes)

				if !s.HardwareBacked() {
					shadow := ml.HostShadow
					if shadow == nil {
						return svga3d.InvalidStatef("surface.SurfaceDMA", "surface %d has neither hardware nor shadow backing", image.SID)
					}
					if surfOff+rowBytes > uint64(len(shadow)) {
						return svga3d.Internalf("surface.SurfaceDMA", "row offset exceeds shadow bounds")
					}
					dst := shadow[surfOff : surfOff+rowBytes]
					var terr error
					if dir == TransferGuestToHost {
						terr = mob.Read(mobOffset, dst)
					} else {
						terr = mob.Write(mobOffset, dst)
					}
					if terr != nil {
						return terr
					}
				} else {
					gboBackend, err := caps.RequireGBO()
					if err != nil {
						return err
					}
					ref := backend.SurfaceRef{SID: image.SID, Face: image.Face, Mip: image.Mip}
					rowBox := wire.SVGA3dBox{X: clipped.X, Y: clipped.Y + row*uint32(bi.BlockH), Z: clipped.Z + z, W: clipped.W, H: uint32(bi.BlockH), D: 1}
					if dir == TransferGuestToHost {
						buf := make([]byte, rowBytes)
						if err := mob.Read(mobOffset, buf); err != nil {
							return err
						}
						if err := gboBackend.UpdateGBImage(ref, rowBox, buf); err != nil {
							return err
						}
					} else {
						buf := make([]byte, rowBytes)
						if err := gboBackend.ReadbackGBImage(ref, rowBox, buf); err != nil {
							return err
						}
						if err := mob.Write(mobOffset, buf); err != nil {
							return err
						}
					}
				}
				mobOffset += rowBytes
			}
		}
	}
	return nil
}

// BlitToScreen forwards a clipped surface-to-screen blit to the backend
// (spec §4.4 blit_to_screen).
func (c *Catalog) BlitToScreen(caps backend.Capabilities, src wire.SurfaceImageId, destScreenID uint32, destRect wire.SVGA3dRect) error {
	if err := c.Realize(caps, src.SID); err != nil {
		return err
	}
	b3d, err := caps.Require3D()
	if err != nil {
		return err
	}
	return b3d.BlitSurfaceToScreen(backend.SurfaceRef{SID: src.SID, Face: src.Face, Mip: src.Mip}, destScreenID, destRect)
}
