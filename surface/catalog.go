package surface

import (
	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/backend"
	"github.com/gogpu/svga3d/wire"
)

// Catalog is the sparse, auto-growing array of Surfaces (spec §4.4 C4).
// Like mob.Registry and otable.Tables, Catalog is not safe for concurrent
// use — the command processor is single-threaded per virtual GPU (spec
// §5).
type Catalog struct {
	surfaces []*Surface
}

// NewCatalog returns an empty surface catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Get returns the surface at sid, or nil if the slot is free or sid is
// out of range.
func (c *Catalog) Get(sid uint32) *Surface {
	if sid >= uint32(len(c.surfaces)) {
		return nil
	}
	return c.surfaces[sid]
}

// Len returns the current length of the backing array (not the number of
// live surfaces).
func (c *Catalog) Len() int { return len(c.surfaces) }

func (c *Catalog) growTo(sid uint32) {
	need := svga3d.AlignGrowTo(sid)
	if uint32(len(c.surfaces)) >= need {
		return
	}
	grown := make([]*Surface, need)
	copy(grown, c.surfaces)
	c.surfaces = grown
}

// Define creates or replaces the surface at p.SID (spec §4.4 define). If
// a surface already occupies the slot it is destroyed first (onUnbind and
// caps are forwarded to that implicit destroy exactly as an explicit
// Destroy call would).
func (c *Catalog) Define(caps backend.Capabilities, onUnbind func(sid uint32), p DefineParams) (*Surface, error) {
	if p.SID >= svga3d.MaxSurfaceIDs {
		return nil, svga3d.Invalidf("surface.Define", "sid %d exceeds MaxSurfaceIDs", p.SID)
	}
	if p.NumMipLevels < 1 || p.NumMipLevels > svga3d.MaxMipLevels {
		return nil, svga3d.Invalidf("surface.Define", "num_mip_levels %d out of [1,%d]", p.NumMipLevels, svga3d.MaxMipLevels)
	}
	arraySize := p.ArraySize
	if p.Flags.Has(FlagCubemap) && arraySize == 0 {
		arraySize = svga3d.MaxSurfaceFaces
	}
	if arraySize == 0 {
		arraySize = 1
	}
	if arraySize > svga3d.MaxSurfaceFaces && !p.Flags.Has(FlagCubemap) {
		// Non-cubemap array surfaces aren't bounded by MaxSurfaceFaces in
		// the real protocol; this module accepts them up to 16 slices and
		// rejects anything wider rather than silently truncating it.
		if arraySize > 16 {
			return nil, svga3d.Invalidf("surface.Define", "array_size %d exceeds limit", arraySize)
		}
	}

	c.growTo(p.SID)
	if existing := c.surfaces[p.SID]; existing != nil {
		if err := c.Destroy(caps, onUnbind, p.SID); err != nil {
			return nil, err
		}
	}

	mips := make([]MipLevel, arraySize*p.NumMipLevels)
	var total uint64
	for slice := uint32(0); slice < arraySize; slice++ {
		for mip := uint32(0); mip < p.NumMipLevels; mip++ {
			ml := computeMipLevel(p.Format, p.BaseSize, mip)
			total += ml.TotalBytes
			if total > svga3d.MaxSurfaceBytes {
				return nil, svga3d.Invalidf("surface.Define", "surface %d exceeds max surface bytes %d", p.SID, svga3d.MaxSurfaceBytes)
			}
			if p.AllocMipShadows {
				ml.HostShadow = make([]byte, ml.TotalBytes)
			}
			mips[subresourceIndex(slice, mip, p.NumMipLevels)] = ml
		}
	}

	s := &Surface{
		ID:                  p.SID,
		Flags:               p.Flags,
		Format:              p.Format,
		NumMipLevels:        p.NumMipLevels,
		ArraySize:           arraySize,
		MultisampleCount:    p.MultisampleCount,
		AutogenFilter:       p.AutogenFilter,
		BaseSize:            p.BaseSize,
		MipLevels:           mips,
		AssociatedContextID: svga3d.InvalidID,
		MobID:               svga3d.InvalidID,
	}
	c.surfaces[p.SID] = s
	return s, nil
}

// Destroy removes the surface at sid (spec §4.4 destroy). onUnbind, if
// non-nil, is called so the owner (Core) can clear every DX context
// binding referencing sid (spec §8: "Destroying a surface implies ...
// every slot that referenced sid is now INVALID_ID").
func (c *Catalog) Destroy(caps backend.Capabilities, onUnbind func(sid uint32), sid uint32) error {
	s := c.Get(sid)
	if s == nil {
		return svga3d.Invalidf("surface.Destroy", "sid %d not defined", sid)
	}
	if onUnbind != nil {
		onUnbind(sid)
	}
	if s.HardwareBacked() {
		if gbo, err := caps.RequireGBO(); err == nil {
			_ = gbo.DestroySurfaceResource(sid)
		}
	}
	c.surfaces[sid] = nil
	return nil
}

// Invalidate marks part or all of a surface's content dirty (spec §4.4
// invalidate). face==InvalidID && mip==InvalidID means the whole surface's
// hardware content is lost; the backend is asked to drop it.
func (c *Catalog) Invalidate(caps backend.Capabilities, sid uint32, face, mip uint32) error {
	s := c.Get(sid)
	if s == nil {
		return svga3d.Invalidf("surface.Invalidate", "sid %d not defined", sid)
	}
	if face == svga3d.InvalidID && mip == svga3d.InvalidID {
		s.Dirty = true
		for i := range s.MipLevels {
			s.MipLevels[i].Dirty = true
		}
		if s.HardwareBacked() {
			if gbo, err := caps.RequireGBO(); err == nil {
				_ = gbo.DestroySurfaceResource(sid)
			}
			s.BackendHandle = nil
		}
		return nil
	}
	ml := s.MipLevelAt(face, mip)
	if ml == nil {
		return svga3d.Invalidf("surface.Invalidate", "face %d mip %d out of range for surface %d", face, mip, sid)
	}
	ml.Dirty = true
	return nil
}

// Realize lazily creates sid's hardware resource if it does not already
// have one (spec §4.5.3 Surface realization: "transitions to
// hardware-backed on first use that requires it").
func (c *Catalog) Realize(caps backend.Capabilities, sid uint32) error {
	s := c.Get(sid)
	if s == nil {
		return svga3d.Invalidf("surface.Realize", "sid %d not defined", sid)
	}
	if s.HardwareBacked() {
		return nil
	}
	gbo, err := caps.RequireGBO()
	if err != nil {
		return err
	}
	if err := gbo.CreateSurfaceResource(sid, uint64(s.Flags), s.Format, s.NumMipLevels, s.ArraySize, s.BaseSize); err != nil {
		return err
	}
	s.BackendHandle = struct{}{}
	return nil
}

// ClipBox clips box against the bounds of mip level (face, mip) of sid,
// returning the clipped box. Used by every blit/copy/DMA path to enforce
// "all box/rect arguments are clipped against the target resource's
// dimensions before use" (spec §4.5.2).
func ClipBox(ml *MipLevel, box wire.SVGA3dBox) wire.SVGA3dBox {
	clip := func(origin, extent, bound uint32) (uint32, uint32) {
		if origin >= bound {
			return origin, 0
		}
		if origin+extent > bound {
			extent = bound - origin
		}
		return origin, extent
	}
	out := box
	out.X, out.W = clip(box.X, box.W, ml.MipSize.Width)
	out.Y, out.H = clip(box.Y, box.H, ml.MipSize.Height)
	out.Z, out.D = clip(box.Z, box.D, ml.MipSize.Depth)
	return out
}
