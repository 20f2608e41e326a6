package svga3d

import (
	"testing"

	"github.com/gogpu/svga3d/hostmem"
	"github.com/gogpu/svga3d/surface"
	"github.com/gogpu/svga3d/wire"
)

// TestMobRoundTripSeedScenario2 implements spec §8 seed scenario #2:
// define_gb_mob(mobid=7, depth=RANGE, base, size=4096), then
// destroy_gb_mob(mobid=7). The registry must end up empty and the MOB
// OTable entry for mob 7 zeroed. base/rootPFN values below are small page
// frame numbers (not byte addresses): gbo.Create shifts them by 12 itself.
func TestMobRoundTripSeedScenario2(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	c := NewCore(WithGuestMemory(mem))

	// Give the MOB OTable somewhere to live before defining mob 7, so the
	// zero-on-destroy path has an entry to actually clear.
	if err := c.SetOTableBase(wire.OTableMOB, wire.PTDepthRange, 0x20, 4096, 0, false); err != nil {
		t.Fatalf("SetOTableBase: %v", err)
	}

	if err := c.DefineGBMob(7, wire.PTDepthRange, 0x40, 4096); err != nil {
		t.Fatalf("DefineGBMob: %v", err)
	}
	if _, ok := c.Mobs.Get(7); !ok {
		t.Fatal("expected mob 7 to be registered after DefineGBMob")
	}

	if err := c.DestroyGBMob(7); err != nil {
		t.Fatalf("DestroyGBMob: %v", err)
	}
	if _, ok := c.Mobs.Get(7); ok {
		t.Error("expected mob 7 to be gone after DestroyGBMob")
	}

	mobTable := c.OTables.Get(wire.OTableMOB)
	entry := make([]byte, mobTable.EntrySize)
	if err := mobTable.Read(7, entry); err != nil {
		t.Fatalf("read mob otable entry 7: %v", err)
	}
	for _, b := range entry {
		if b != 0 {
			t.Errorf("mob otable entry 7 = %v, want all zero", entry)
			break
		}
	}

	// Destroying an already-destroyed mob is an error, not a silent no-op.
	if err := c.DestroyGBMob(7); err == nil {
		t.Error("expected DestroyGBMob on an absent mob to fail")
	}
}

// TestContextDestroyUnbindsSurfaceSeedScenario6 implements spec §8 seed
// scenario #6: create surface 42, create DX context 3, bind surface 42 as
// render target 0 in context 3, then call surface_destroy(42). Context
// 3's render_target_view_ids[0] must read back INVALID_ID, and no later
// draw may reference 42.
func TestContextDestroyUnbindsSurfaceSeedScenario6(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	c := NewCore(WithGuestMemory(mem))

	if _, err := c.DefineSurface(surface.DefineParams{
		SID:          42,
		Format:       wire.FormatR8G8B8A8_UNORM,
		NumMipLevels: 1,
		ArraySize:    1,
		BaseSize:     wire.SVGA3dSize{Width: 64, Height: 64, Depth: 1},
	}); err != nil {
		t.Fatalf("DefineSurface: %v", err)
	}

	if err := c.DXDefineContext(3); err != nil {
		t.Fatalf("DXDefineContext: %v", err)
	}

	if err := c.DefineRenderTargetView(100, 42); err != nil {
		t.Fatalf("DefineRenderTargetView: %v", err)
	}
	if err := c.DXSetRenderTargets(3, InvalidID, []uint32{100}); err != nil {
		t.Fatalf("DXSetRenderTargets: %v", err)
	}

	ctx := c.DXContexts.Get(3)
	if ctx == nil {
		t.Fatal("expected context 3 to exist")
	}
	if ctx.Pipeline.RenderTargetViewID[0] != 100 {
		t.Fatalf("RenderTargetViewID[0] = %d, want 100 before destroy", ctx.Pipeline.RenderTargetViewID[0])
	}

	if err := c.DestroySurface(42); err != nil {
		t.Fatalf("DestroySurface: %v", err)
	}

	if ctx.Pipeline.RenderTargetViewID[0] != InvalidID {
		t.Errorf("RenderTargetViewID[0] after surface destroy = %d, want InvalidID", ctx.Pipeline.RenderTargetViewID[0])
	}
	if _, ok := c.rtViews[100]; ok {
		t.Error("expected render-target view 100 to be removed once its surface was destroyed")
	}

	// The view id itself is gone too: redefining it against a fresh
	// surface should succeed rather than colliding with stale state.
	if _, err := c.DefineSurface(surface.DefineParams{
		SID:          43,
		Format:       wire.FormatR8G8B8A8_UNORM,
		NumMipLevels: 1,
		ArraySize:    1,
		BaseSize:     wire.SVGA3dSize{Width: 32, Height: 32, Depth: 1},
	}); err != nil {
		t.Fatalf("DefineSurface 43: %v", err)
	}
	if err := c.DefineRenderTargetView(100, 43); err != nil {
		t.Fatalf("DefineRenderTargetView 100 over surface 43: %v", err)
	}
}

// TestResetTearsDownEverything exercises Core.Reset(ResetFull): every
// object namespace is empty afterward, and a subsequent define on a
// previously-occupied id succeeds cleanly (spec §5 Cancellation).
func TestResetTearsDownEverything(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	c := NewCore(WithGuestMemory(mem))

	if err := c.DefineGBMob(1, wire.PTDepthRange, 0x40, 4096); err != nil {
		t.Fatalf("DefineGBMob: %v", err)
	}
	if _, err := c.DefineSurface(surface.DefineParams{
		SID:          5,
		Format:       wire.FormatR8G8B8A8_UNORM,
		NumMipLevels: 1,
		ArraySize:    1,
		BaseSize:     wire.SVGA3dSize{Width: 16, Height: 16, Depth: 1},
	}); err != nil {
		t.Fatalf("DefineSurface: %v", err)
	}
	if err := c.DXDefineContext(2); err != nil {
		t.Fatalf("DXDefineContext: %v", err)
	}

	c.Reset(ResetFull)

	if _, ok := c.Mobs.Get(1); ok {
		t.Error("expected mob 1 to be gone after Reset")
	}
	if c.Surfaces.Get(5) != nil {
		t.Error("expected surface 5 to be gone after Reset")
	}
	if c.DXContexts.Get(2) != nil {
		t.Error("expected context 2 to be gone after Reset")
	}

	if _, err := c.DefineSurface(surface.DefineParams{
		SID:          5,
		Format:       wire.FormatR8G8B8A8_UNORM,
		NumMipLevels: 1,
		ArraySize:    1,
		BaseSize:     wire.SVGA3dSize{Width: 16, Height: 16, Depth: 1},
	}); err != nil {
		t.Fatalf("DefineSurface after reset: %v", err)
	}
}

// TestCommandsFailCleanlyWithoutGuestMemory covers spec §7's "the guest
// observes errors only through content" contract at the collaborator
// level: every GBO-backed entry point must fail with ErrInvalidState, not
// panic, when no guest memory service is attached.
func TestCommandsFailCleanlyWithoutGuestMemory(t *testing.T) {
	c := NewCore()
	err := c.DefineGBMob(1, wire.PTDepthRange, 0x1000, 4096)
	if err == nil {
		t.Fatal("expected DefineGBMob without guest memory to fail")
	}
	if Kind(err) != ErrInvalidState {
		t.Errorf("Kind(err) = %v, want ErrInvalidState", Kind(err))
	}
}
