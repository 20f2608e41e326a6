package surface

import (
	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/backend"
	"github.com/gogpu/svga3d/wire"
)

// MappedSurface is the result of Catalog.Map (spec §4.4 map/unmap).
type MappedSurface struct {
	MapType    backend.MapType
	Format     wire.SurfaceFormat
	ClippedBox wire.SVGA3dBox
	BlockBytes int
	RowBytes   int
	RowPitch   uint64
	Rows       uint32
	DepthPitch uint64
	Pointer    []byte

	ref       backend.SurfaceRef
	software  bool
}

// Map returns a MappedSurface over (sid, face, mip) clipped to box (spec
// §4.4). For a pure-software surface the pointer aliases the mip shadow
// directly; for a hardware-backed surface the backend's BackendMap is
// consulted.
func (c *Catalog) Map(caps backend.Capabilities, sid uint32, face, mip uint32, mapType backend.MapType, box wire.SVGA3dBox) (*MappedSurface, error) {
	s := c.Get(sid)
	if s == nil {
		return nil, svga3d.Invalidf("surface.Map", "sid %d not defined", sid)
	}
	ml := s.MipLevelAt(face, mip)
	if ml == nil {
		return nil, svga3d.Invalidf("surface.Map", "face %d mip %d out of range for surface %d", face, mip, sid)
	}
	clipped := ClipBox(ml, box)
	bi := s.Format.BlockInfo()
	ref := backend.SurfaceRef{SID: sid, Face: face, Mip: mip}

	if ml.HostShadow != nil {
		return &MappedSurface{
			MapType:    mapType,
			Format:     s.Format,
			ClippedBox: clipped,
			BlockBytes: bi.BlockBytes,
			RowBytes:   int(ml.BlocksX) * bi.BlockBytes,
			RowPitch:   ml.RowPitch,
			Rows:       ml.BlocksY,
			DepthPitch: ml.PlanePitch,
			Pointer:    ml.HostShadow,
			ref:        ref,
			software:   true,
		}, nil
	}

	bm, err := caps.RequireMap()
	if err != nil {
		return nil, err
	}
	region, err := bm.MapSurface(ref, mapType, clipped)
	if err != nil {
		return nil, err
	}
	return &MappedSurface{
		MapType:    mapType,
		Format:     s.Format,
		ClippedBox: clipped,
		BlockBytes: bi.BlockBytes,
		RowBytes:   region.RowBytes,
		RowPitch:   uint64(region.RowPitch),
		Rows:       uint32(region.Rows),
		DepthPitch: uint64(region.DepthPitch),
		Pointer:    region.Pointer,
		ref:        ref,
		software:   false,
	}, nil
}

// Unmap commits writes iff the map was write-capable and written is true
// (spec §4.4 "Unmap commits writes iff ... written=true").
func (c *Catalog) Unmap(caps backend.Capabilities, m *MappedSurface, written bool) error {
	if m.software {
		return nil
	}
	writable := m.MapType == backend.MapWrite || m.MapType == backend.MapReadWrite || m.MapType == backend.MapWriteDiscard
	bm, err := caps.RequireMap()
	if err != nil {
		return err
	}
	return bm.UnmapSurface(m.ref, writable && written)
}
