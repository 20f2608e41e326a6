package surface

import (
	"testing"

	"github.com/gogpu/svga3d/backend"
	"github.com/gogpu/svga3d/wire"
)

func TestDefineRGBA8ComputesMipLayout(t *testing.T) {
	c := NewCatalog()
	s, err := c.Define(backend.Capabilities{}, nil, DefineParams{
		SID:          1,
		Format:       wire.FormatR8G8B8A8_UNORM,
		NumMipLevels: 1,
		ArraySize:    1,
		BaseSize:     wire.SVGA3dSize{Width: 256, Height: 256, Depth: 1},
	})
	if err != nil {
		t.Fatalf("Define: %v", err)
	}
	ml := s.MipLevelAt(0, 0)
	if ml == nil {
		t.Fatal("expected mip 0 present")
	}
	if ml.RowPitch != 256*4 {
		t.Errorf("RowPitch = %d, want %d", ml.RowPitch, 256*4)
	}
	if ml.TotalBytes != 256*256*4 {
		t.Errorf("TotalBytes = %d, want %d", ml.TotalBytes, 256*256*4)
	}
}

func TestDefineRejectsTooManyMips(t *testing.T) {
	c := NewCatalog()
	_, err := c.Define(backend.Capabilities{}, nil, DefineParams{
		SID:          1,
		Format:       wire.FormatR8G8B8A8_UNORM,
		NumMipLevels: 17,
		BaseSize:     wire.SVGA3dSize{Width: 16, Height: 16, Depth: 1},
	})
	if err == nil {
		t.Fatal("expected error defining a surface with 17 mip levels")
	}
}

func TestDefineRejectsOversizeSurface(t *testing.T) {
	c := NewCatalog()
	_, err := c.Define(backend.Capabilities{}, nil, DefineParams{
		SID:          1,
		Format:       wire.FormatR32G32B32A32_FLOAT,
		NumMipLevels: 1,
		ArraySize:    1,
		BaseSize:     wire.SVGA3dSize{Width: 1 << 16, Height: 1 << 16, Depth: 1},
	})
	if err == nil {
		t.Fatal("expected error defining an oversize surface")
	}
}

func TestDestroyRedefineLeavesNoStaleSurface(t *testing.T) {
	c := NewCatalog()
	params := DefineParams{
		SID: 5, Format: wire.FormatR8G8B8A8_UNORM, NumMipLevels: 1, ArraySize: 1,
		BaseSize: wire.SVGA3dSize{Width: 4, Height: 4, Depth: 1},
	}
	if _, err := c.Define(backend.Capabilities{}, nil, params); err != nil {
		t.Fatalf("Define 1: %v", err)
	}
	if err := c.Destroy(backend.Capabilities{}, nil, 5); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if c.Get(5) != nil {
		t.Fatal("expected sid 5 to be free after Destroy")
	}
	if _, err := c.Define(backend.Capabilities{}, nil, params); err != nil {
		t.Fatalf("Define 2: %v", err)
	}
	if c.Get(5) == nil {
		t.Fatal("expected sid 5 redefined")
	}
}

// TestClipBoxSeedScenario3 is spec §8 seed scenario #3: a 256x256 surface,
// DX_PRED_COPY_REGION with dst_box=(250,250,0,16,16,1) must clip to
// (250,250,0,6,6,1).
func TestClipBoxSeedScenario3(t *testing.T) {
	c := NewCatalog()
	s, err := c.Define(backend.Capabilities{}, nil, DefineParams{
		SID: 1, Format: wire.FormatR8G8B8A8_UNORM, NumMipLevels: 1, ArraySize: 1,
		BaseSize: wire.SVGA3dSize{Width: 256, Height: 256, Depth: 1},
	})
	if err != nil {
		t.Fatalf("Define: %v", err)
	}
	ml := s.MipLevelAt(0, 0)
	clipped := ClipBox(ml, wire.SVGA3dBox{X: 250, Y: 250, Z: 0, W: 16, H: 16, D: 1})
	want := wire.SVGA3dBox{X: 250, Y: 250, Z: 0, W: 6, H: 6, D: 1}
	if clipped != want {
		t.Errorf("ClipBox = %+v, want %+v", clipped, want)
	}
}

func TestCubemapDefaultsArraySizeToSix(t *testing.T) {
	c := NewCatalog()
	s, err := c.Define(backend.Capabilities{}, nil, DefineParams{
		SID: 1, Format: wire.FormatR8G8B8A8_UNORM, NumMipLevels: 1,
		Flags:    FlagCubemap,
		BaseSize: wire.SVGA3dSize{Width: 8, Height: 8, Depth: 1},
	})
	if err != nil {
		t.Fatalf("Define: %v", err)
	}
	if s.ArraySize != 6 {
		t.Errorf("ArraySize = %d, want 6", s.ArraySize)
	}
}
