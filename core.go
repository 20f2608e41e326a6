package svga3d

import (
	"log/slog"

	"github.com/gogpu/svga3d/backend"
	"github.com/gogpu/svga3d/display"
	"github.com/gogpu/svga3d/dxcontext"
	"github.com/gogpu/svga3d/gbo"
	"github.com/gogpu/svga3d/hostmem"
	"github.com/gogpu/svga3d/mob"
	"github.com/gogpu/svga3d/otable"
	"github.com/gogpu/svga3d/surface"
	"github.com/gogpu/svga3d/wire"
)

// Core is the command-processor core (spec §2): it owns every object
// namespace (MOBs, object tables, surfaces, DX/VGPU9 contexts, screens)
// and exposes the ~150 entry points a host's dispatch loop calls into,
// grouped into surface_*, context_*, dx_*, mob_*, otable_* families (spec
// §6.5). Core is not safe for concurrent use: exactly one FIFO worker
// drives it per virtual GPU (spec §5).
type Core struct {
	logger  *slog.Logger
	mem     hostmem.Memory
	caps    backend.Capabilities
	display display.Callbacks

	Mobs       *mob.Registry
	OTables    *otable.Tables
	Surfaces   *surface.Catalog
	DXContexts *dxcontext.Manager

	vgpu9   vgpu9ContextSet
	screens map[uint32]*Screen
	gbScreenTargets map[uint32]*Screen

	rtViews map[uint32]dxView
	dsViews map[uint32]dxView
	srViews map[uint32]dxView
	uaViews map[uint32]dxView
}

// CoreOption configures a Core at construction time (spec SPEC_FULL.md §1
// "Configuration": functional options mirroring gg.ContextOption).
type CoreOption func(*Core)

// WithGuestMemory attaches the host's guest-physical memory service (spec
// §6.3). Required for any command that builds or reads a GBO/MOB; a Core
// with no guest memory attached fails every such command with
// ErrInvalidState.
func WithGuestMemory(mem hostmem.Memory) CoreOption {
	return func(c *Core) { c.mem = mem }
}

// WithBackend3D attaches the shared surface-transfer/present backend
// (spec §6.2 Backend3D).
func WithBackend3D(b backend.Backend3D) CoreOption {
	return func(c *Core) { c.caps.Backend3D = b }
}

// WithBackendVGPU9 attaches the legacy fixed-function backend (spec §6.2
// BackendVGPU9).
func WithBackendVGPU9(b backend.BackendVGPU9) CoreOption {
	return func(c *Core) { c.caps.BackendVGPU9 = b }
}

// WithBackendMap attaches the hardware surface-mapping backend (spec §6.2
// BackendMap).
func WithBackendMap(b backend.BackendMap) CoreOption {
	return func(c *Core) { c.caps.BackendMap = b }
}

// WithBackendGBO attaches the guest-backed-surface realization/transfer
// backend (spec §6.2 BackendGBO).
func WithBackendGBO(b backend.BackendGBO) CoreOption {
	return func(c *Core) { c.caps.BackendGBO = b }
}

// WithBackendDX attaches the VGPU10/DX pipeline backend (spec §6.2
// BackendDX).
func WithBackendDX(b backend.BackendDX) CoreOption {
	return func(c *Core) { c.caps.BackendDX = b }
}

// WithDisplayCallbacks attaches the frontend display-pipe notifications
// (spec §6.4).
func WithDisplayCallbacks(cb display.Callbacks) CoreOption {
	return func(c *Core) { c.display = cb }
}

// WithLogger overrides the package-level logger for this Core instance
// only.
func WithLogger(l *slog.Logger) CoreOption {
	return func(c *Core) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCore returns a freshly reset Core. With no options it has no backend
// and no guest memory attached; every command family is then rejected
// with ErrNotSupported/ErrInvalidState respectively unless options supply
// them.
func NewCore(opts ...CoreOption) *Core {
	c := &Core{
		logger:          Logger(),
		Mobs:            mob.NewRegistry(),
		OTables:         otable.NewTables(),
		Surfaces:        surface.NewCatalog(),
		screens:         make(map[uint32]*Screen),
		gbScreenTargets: make(map[uint32]*Screen),
		rtViews:         make(map[uint32]dxView),
		dsViews:         make(map[uint32]dxView),
		srViews:         make(map[uint32]dxView),
		uaViews:         make(map[uint32]dxView),
	}
	c.DXContexts = dxcontext.NewManager(c.Mobs)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Capabilities returns the backend interfaces currently attached.
func (c *Core) Capabilities() backend.Capabilities { return c.caps }

// Memory returns the guest-physical memory service currently attached, or
// nil.
func (c *Core) Memory() hostmem.Memory { return c.mem }

// Display returns the display-pipe callbacks currently attached.
func (c *Core) Display() display.Callbacks { return c.display }

// requireMemory returns c.mem or ErrInvalidState if no guest memory
// service has been attached (spec §6.3 is a required collaborator for
// every GBO-backed command).
func (c *Core) requireMemory(op string) (hostmem.Memory, error) {
	if c.mem == nil {
		return nil, InvalidStatef(op, "no guest memory service attached")
	}
	return c.mem, nil
}

// ---- C2: MOB registry -----------------------------------------------

// DefineGBMob creates or replaces mobid, walking the guest page table
// rooted at base (a 32-bit PPN) at the given depth (spec §4.2
// DEFINE_GB_MOB). The MOB OTable entry for mobid is written first (zeroed,
// when the MOB table is defined), then the GBO is built, then the registry
// is updated — mirroring mob_create's documented ordering (spec §4.2).
func (c *Core) DefineGBMob(mobid uint32, depth wire.PTDepth, base uint32, sizeBytes uint32) error {
	return c.defineGBMobCommon(mobid, depth, uint64(base), uint64(sizeBytes))
}

// DefineGBMob64 is DefineGBMob's 64-bit-PPN counterpart
// (DEFINE_GB_MOB64).
func (c *Core) DefineGBMob64(mobid uint32, depth wire.PTDepth, base uint64, sizeBytes uint32) error {
	return c.defineGBMobCommon(mobid, depth, base, uint64(sizeBytes))
}

// defineGBMobCommon takes rootPFN as the raw root page frame number carried
// on the wire (spec §4.1's "root_gpa << 12" shift happens inside gbo.Create/
// walk, not here — passing an already-shifted byte address would double it).
func (c *Core) defineGBMobCommon(mobid uint32, depth wire.PTDepth, rootPFN uint64, sizeBytes uint64) error {
	if mobid == mob.InvalidID {
		return Invalidf("Core.DefineGBMob", "mobid %#x is the reserved sentinel", mobid)
	}
	mem, err := c.requireMemory("Core.DefineGBMob")
	if err != nil {
		return err
	}
	if mobTable := c.OTables.Get(wire.OTableMOB); mobTable.Defined() {
		_ = mobTable.Zero(mobid)
	}
	g, err := gbo.Create(mem, depth, rootPFN, sizeBytes)
	if err != nil {
		return err
	}
	c.Mobs.Insert(&mob.Mob{ID: mobid, GBO: g})
	return nil
}

// DestroyGBMob removes mobid (spec §4.2 DESTROY_GB_MOB), zeroing its MOB
// OTable entry.
func (c *Core) DestroyGBMob(mobid uint32) error {
	if _, ok := c.Mobs.Destroy(mobid); !ok {
		return Invalidf("Core.DestroyGBMob", "mobid %d not defined", mobid)
	}
	if mobTable := c.OTables.Get(wire.OTableMOB); mobTable.Defined() {
		_ = mobTable.Zero(mobid)
	}
	return nil
}

// ---- C3: device-wide object tables -----------------------------------

// SetOTableBase (re)defines or grows one of the seventeen device-wide object
// tables (spec §4.3 set_or_grow; SET_OTABLE_BASE/SET_OTABLE_BASE64/
// GROW_OTABLE all funnel through here). rootPFN is the raw root-page frame
// number carried on the wire, not a pre-shifted byte address (spec §4.1's
// "root_gpa << 12" shift happens inside gbo.Create/walk).
func (c *Core) SetOTableBase(typ wire.OTableType, depth wire.PTDepth, rootPFN uint64, sizeBytes, validBytes uint64, grow bool) error {
	if !typ.Valid() {
		return Invalidf("Core.SetOTableBase", "table type %d out of range", typ)
	}
	mem, err := c.requireMemory("Core.SetOTableBase")
	if err != nil {
		return err
	}
	t := c.OTables.Get(typ)
	return t.SetOrGrow(mem, depth, rootPFN, sizeBytes, validBytes, grow)
}

// ---- C4: surface catalog ----------------------------------------------

// onUnbindSurface is Surfaces' onUnbind hook: every legacy and DX binding
// referencing sid is cleared (spec §8: "Destroying a surface implies: for
// every DX context, every slot that referenced sid is now INVALID_ID").
func (c *Core) onUnbindSurface(sid uint32) {
	c.vgpu9.unbindSurface(sid)
	c.unbindSurfaceViews(sid)
}

// DefineSurface creates or replaces a surface (spec §4.4 define). p is
// the fully-populated parameter struct every SURFACE_DEFINE/
// SURFACE_DEFINE_V2/DEFINE_GB_SURFACE_v{1..4} wire handler builds before
// calling this (spec §9 Open Question 2).
func (c *Core) DefineSurface(p surface.DefineParams) (*surface.Surface, error) {
	return c.Surfaces.Define(c.caps, c.onUnbindSurface, p)
}

// DestroySurface removes sid (spec §4.4 destroy / SURFACE_DESTROY /
// DESTROY_GB_SURFACE).
func (c *Core) DestroySurface(sid uint32) error {
	return c.Surfaces.Destroy(c.caps, c.onUnbindSurface, sid)
}

// BindGBSurface attaches mobid as sid's guest-backed storage
// (BIND_GB_SURFACE). mobid == InvalidID unbinds.
func (c *Core) BindGBSurface(sid, mobid uint32) error {
	s := c.Surfaces.Get(sid)
	if s == nil {
		return Invalidf("Core.BindGBSurface", "sid %d not defined", sid)
	}
	if mobid != InvalidID {
		if _, ok := c.Mobs.Get(mobid); !ok {
			return Invalidf("Core.BindGBSurface", "mobid %d not defined", mobid)
		}
	}
	s.MobID = mobid
	return nil
}

// InvalidateGBImage marks one subresource dirty (INVALIDATE_GB_IMAGE).
func (c *Core) InvalidateGBImage(image wire.SurfaceImageId) error {
	return c.Surfaces.Invalidate(c.caps, image.SID, image.Face, image.Mip)
}

// InvalidateGBSurface marks an entire surface's hardware content lost
// (INVALIDATE_GB_SURFACE).
func (c *Core) InvalidateGBSurface(sid uint32) error {
	return c.Surfaces.Invalidate(c.caps, sid, InvalidID, InvalidID)
}

// mobForSurface resolves sid's bound MOB, failing with ErrInvalidState if
// unbound.
func (c *Core) mobForSurface(op string, sid uint32) (*mob.Mob, error) {
	s := c.Surfaces.Get(sid)
	if s == nil {
		return nil, Invalidf(op, "sid %d not defined", sid)
	}
	if s.MobID == InvalidID {
		return nil, InvalidStatef(op, "surface %d has no bound mob", sid)
	}
	mb, ok := c.Mobs.Get(s.MobID)
	if !ok {
		return nil, InvalidStatef(op, "surface %d's mob %d no longer exists", sid, s.MobID)
	}
	return mb, nil
}

// UpdateGBImage pushes sid's bound MOB into one subresource's hardware
// image (UPDATE_GB_IMAGE), clipping box against the mip's extent.
func (c *Core) UpdateGBImage(image wire.SurfaceImageId, box wire.SVGA3dBox) error {
	mb, err := c.mobForSurface("Core.UpdateGBImage", image.SID)
	if err != nil {
		return err
	}
	return c.Surfaces.TransferSurfaceLevel(c.caps, mb.GBO, 0, image, &box, surface.TransferGuestToHost)
}

// UpdateGBSurface pushes every subresource of sid's bound MOB into
// hardware (UPDATE_GB_SURFACE).
func (c *Core) UpdateGBSurface(sid uint32) error {
	s := c.Surfaces.Get(sid)
	if s == nil {
		return Invalidf("Core.UpdateGBSurface", "sid %d not defined", sid)
	}
	mb, err := c.mobForSurface("Core.UpdateGBSurface", sid)
	if err != nil {
		return err
	}
	for slice := uint32(0); slice < s.ArraySize; slice++ {
		for mip := uint32(0); mip < s.NumMipLevels; mip++ {
			image := wire.SurfaceImageId{SID: sid, Face: slice, Mip: mip}
			if err := c.Surfaces.TransferSurfaceLevel(c.caps, mb.GBO, 0, image, nil, surface.TransferGuestToHost); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadbackGBImage pulls one subresource's hardware image back into sid's
// bound MOB (READBACK_GB_IMAGE).
func (c *Core) ReadbackGBImage(image wire.SurfaceImageId) error {
	mb, err := c.mobForSurface("Core.ReadbackGBImage", image.SID)
	if err != nil {
		return err
	}
	return c.Surfaces.TransferSurfaceLevel(c.caps, mb.GBO, 0, image, nil, surface.TransferHostToGuest)
}

// ReadbackGBSurface pulls every subresource of sid's hardware image back
// into its bound MOB (READBACK_GB_SURFACE).
func (c *Core) ReadbackGBSurface(sid uint32) error {
	s := c.Surfaces.Get(sid)
	if s == nil {
		return Invalidf("Core.ReadbackGBSurface", "sid %d not defined", sid)
	}
	mb, err := c.mobForSurface("Core.ReadbackGBSurface", sid)
	if err != nil {
		return err
	}
	for slice := uint32(0); slice < s.ArraySize; slice++ {
		for mip := uint32(0); mip < s.NumMipLevels; mip++ {
			image := wire.SurfaceImageId{SID: sid, Face: slice, Mip: mip}
			if err := c.Surfaces.TransferSurfaceLevel(c.caps, mb.GBO, 0, image, nil, surface.TransferHostToGuest); err != nil {
				return err
			}
		}
	}
	return nil
}

// SurfaceCopy is SURFACE_COPY: a clipped copy between two subresources.
func (c *Core) SurfaceCopy(dst, src wire.SurfaceImageId, box wire.SVGA3dCopyBox) error {
	return c.Surfaces.SurfaceCopy(c.caps, dst, src, box)
}

// SurfaceStretchBlt is SURFACE_STRETCHBLT.
func (c *Core) SurfaceStretchBlt(dst wire.SurfaceImageId, dstBox wire.SVGA3dBox, src wire.SurfaceImageId, srcBox wire.SVGA3dBox, mode uint32) error {
	return c.Surfaces.StretchBlt(c.caps, dst, dstBox, src, srcBox, mode)
}

// BlitSurfaceToScreen is BLIT_SURFACE_TO_SCREEN.
func (c *Core) BlitSurfaceToScreen(src wire.SurfaceImageId, destScreenID uint32, destRect wire.SVGA3dRect) error {
	return c.Surfaces.BlitToScreen(c.caps, src, destScreenID, destRect)
}

// Present is PRESENT: flips or copies sid to the screen across the given
// (possibly empty) set of dirty rects.
func (c *Core) Present(sid uint32, rects []wire.SVGA3dRect) error {
	if c.Surfaces.Get(sid) == nil {
		return Invalidf("Core.Present", "sid %d not defined", sid)
	}
	b3d, err := c.caps.Require3D()
	if err != nil {
		return err
	}
	return b3d.Present(sid, rects)
}

// ---- Reset --------------------------------------------------------------

// ResetScope selects how much of the device Core.Reset tears down (spec
// §4 supplemented feature: "the original supports both a full device
// reset and a narrower 3D-only reset").
type ResetScope int

const (
	// ResetFull tears down every object namespace, including screens.
	ResetFull ResetScope = iota
	// ResetSurfacesOnly tears down surfaces, contexts, MOBs, and object
	// tables but leaves the legacy/GB screen arrays intact.
	ResetSurfacesOnly
)

// Reset is vmsvga3dReset (spec §5 "Cancellation"): walks the surface
// array destroying every live surface, then the context arrays (legacy
// and DX), then the OTables, then the MOB registry. Reset is only ever
// invoked when the FIFO worker is idle; Core itself does not enforce
// that — the caller owns the single-threaded scheduling guarantee.
func (c *Core) Reset(scope ResetScope) {
	for sid := uint32(0); sid < uint32(c.Surfaces.Len()); sid++ {
		if c.Surfaces.Get(sid) != nil {
			_ = c.Surfaces.Destroy(c.caps, c.onUnbindSurface, sid)
		}
	}
	c.vgpu9.reset()
	c.DXContexts = dxcontext.NewManager(c.Mobs)
	c.rtViews = make(map[uint32]dxView)
	c.dsViews = make(map[uint32]dxView)
	c.srViews = make(map[uint32]dxView)
	c.uaViews = make(map[uint32]dxView)
	c.OTables.Reset()
	c.Mobs.Reset()

	if scope == ResetFull {
		c.screens = make(map[uint32]*Screen)
		c.gbScreenTargets = make(map[uint32]*Screen)
	}
}
