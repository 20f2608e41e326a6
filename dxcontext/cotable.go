package dxcontext

import (
	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/otable"
	"github.com/gogpu/svga3d/wire"
)

// SetCotable binds one of cid's twelve per-context COTables to mobid (spec
// §4.5.3 DX_SET_COTABLE), or unbinds it if mobid is svga3d.InvalidID.
// Unlike the device-wide otable.Tables, a context COTable's storage is
// always an existing MOB from the registry rather than a GBO built
// straight from a guest page-table root: the guest allocates the MOB with
// DEFINE_GB_MOB first, then simply points the context at it here.
func (m *Manager) SetCotable(cid uint32, typ wire.OTableType, mobid uint32, validSizeBytes uint32) error {
	ctx := m.Get(cid)
	if ctx == nil {
		return svga3d.Invalidf("dxcontext.SetCotable", "context %d not defined", cid)
	}
	if !IsContextLocal(typ) {
		return svga3d.Invalidf("dxcontext.SetCotable", "table type %s is not a per-context COTable", typ)
	}

	if mobid == svga3d.InvalidID {
		ctx.COTables[typ] = *otable.NewTable(typ)
		return nil
	}
	mb, ok := m.mobs.Get(mobid)
	if !ok {
		return svga3d.Invalidf("dxcontext.SetCotable", "mobid %d not defined", mobid)
	}
	if validSizeBytes > mb.GBO.TotalBytes {
		return svga3d.Invalidf("dxcontext.SetCotable", "valid_size_bytes %d exceeds mob %d size %d", validSizeBytes, mobid, mb.GBO.TotalBytes)
	}
	ctx.COTables[typ].Type = typ
	ctx.COTables[typ].EntrySize = typ.EntrySize()
	ctx.COTables[typ].GBO = mb.GBO
	ctx.COTables[typ].SizeBytes = mb.GBO.TotalBytes
	ctx.COTables[typ].ValidBytes = uint64(validSizeBytes)
	return nil
}

// ReadbackCotable is DX_READBACK_COTABLE (spec §4.5.3). This module never
// caches a COTable's contents outside the bound MOB's GBO, so there is
// nothing to flush; the command is accepted as a no-op once the table and
// context are confirmed to exist.
func (m *Manager) ReadbackCotable(cid uint32, typ wire.OTableType) error {
	ctx := m.Get(cid)
	if ctx == nil {
		return svga3d.Invalidf("dxcontext.ReadbackCotable", "context %d not defined", cid)
	}
	if !IsContextLocal(typ) {
		return svga3d.Invalidf("dxcontext.ReadbackCotable", "table type %s is not a per-context COTable", typ)
	}
	if !ctx.COTables[typ].Defined() {
		return svga3d.InvalidStatef("dxcontext.ReadbackCotable", "table %s is not bound on context %d", typ, cid)
	}
	return nil
}

// GrowCotable is DX_GROW_COTABLE (spec §4 supplemented feature): like
// SetCotable but requires the new MOB's valid bytes to be >= the old
// table's, so growth never silently drops live entries.
func (m *Manager) GrowCotable(cid uint32, typ wire.OTableType, mobid uint32, validSizeBytes uint32) error {
	ctx := m.Get(cid)
	if ctx == nil {
		return svga3d.Invalidf("dxcontext.GrowCotable", "context %d not defined", cid)
	}
	old := ctx.COTables[typ]
	if old.Defined() && uint64(validSizeBytes) < old.ValidBytes {
		return svga3d.Invalidf("dxcontext.GrowCotable", "new valid_size_bytes %d smaller than current %d", validSizeBytes, old.ValidBytes)
	}
	return m.SetCotable(cid, typ, mobid, validSizeBytes)
}
