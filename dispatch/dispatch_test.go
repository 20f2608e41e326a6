package dispatch

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/wire"
)

func encode(t *testing.T, vs ...any) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, v := range vs {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	return buf.Bytes()
}

// TestDispatchSurfaceDefineAndDestroy exercises the dispatcher end to end:
// a SURFACE_DEFINE payload is built, dispatched, and the resulting surface
// is visible through Core; destroying it clears the slot again.
func TestDispatchSurfaceDefineAndDestroy(t *testing.T) {
	core := svga3d.NewCore()
	d := New(core)

	hdr := wire.CmdSurfaceDefinePayload{
		SID:          7,
		SurfaceFlags: 0,
		Format:       uint32(wire.FormatR8G8B8A8_UNORM),
	}
	hdr.Faces[0].NumMipLevels = 1
	size := wire.SVGA3dSize{Width: 32, Height: 32, Depth: 1}
	payload := encode(t, hdr, size)

	d.Dispatch(wire.CmdSurfaceDefine, uint32(len(payload)), payload, 0)
	if d.Stats.Processed != 1 {
		t.Fatalf("Processed = %d, want 1 (err-path stats: malformed=%d unsupported=%d backend=%d)",
			d.Stats.Processed, d.Stats.Malformed, d.Stats.Unsupported, d.Stats.BackendErrors)
	}
	if core.Surfaces.Get(7) == nil {
		t.Fatal("expected surface 7 to exist after dispatching SURFACE_DEFINE")
	}

	destroyPayload := encode(t, wire.CmdSurfaceDestroyPayload{SID: 7})
	d.Dispatch(wire.CmdSurfaceDestroy, uint32(len(destroyPayload)), destroyPayload, 0)
	if d.Stats.Processed != 2 {
		t.Fatalf("Processed after destroy = %d, want 2", d.Stats.Processed)
	}
	if core.Surfaces.Get(7) != nil {
		t.Error("expected surface 7 to be gone after dispatching SURFACE_DESTROY")
	}
}

// TestDispatchMalformedSizeMismatch covers spec §4.5.1 step 1: cmd_size
// must match the payload actually supplied.
func TestDispatchMalformedSizeMismatch(t *testing.T) {
	d := New(svga3d.NewCore())
	payload := encode(t, wire.CmdSurfaceDestroyPayload{SID: 1})

	d.Dispatch(wire.CmdSurfaceDestroy, uint32(len(payload)+4), payload, 0)
	if d.Stats.Malformed != 1 {
		t.Fatalf("Malformed = %d, want 1", d.Stats.Malformed)
	}
	if d.Stats.Processed != 0 {
		t.Fatalf("Processed = %d, want 0", d.Stats.Processed)
	}
}

// TestDispatchMalformedShortPayload covers a header that is too small to
// decode at all (truncated payload reaching a real cmd_id).
func TestDispatchMalformedShortPayload(t *testing.T) {
	d := New(svga3d.NewCore())
	payload := []byte{1, 2, 3} // CmdSurfaceDestroyPayload needs 4 bytes

	d.Dispatch(wire.CmdSurfaceDestroy, uint32(len(payload)), payload, 0)
	if d.Stats.Malformed != 1 {
		t.Fatalf("Malformed = %d, want 1", d.Stats.Malformed)
	}
}

// TestDispatchUnsupportedKnownID covers spec §4.5.5 category 2: a real,
// named command id with no dispatch table entry is counted as
// Unsupported, not Malformed, and never panics.
func TestDispatchUnsupportedKnownID(t *testing.T) {
	d := New(svga3d.NewCore())
	d.Dispatch(wire.CmdSetTransform, 0, nil, 0)
	if d.Stats.Unsupported != 1 {
		t.Fatalf("Unsupported = %d, want 1", d.Stats.Unsupported)
	}
	// A second dispatch of the same unimplemented id must not re-log but
	// must still count.
	d.Dispatch(wire.CmdSetTransform, 0, nil, 0)
	if d.Stats.Unsupported != 2 {
		t.Fatalf("Unsupported after repeat = %d, want 2", d.Stats.Unsupported)
	}
}

// TestDispatchUnknownCmdIDIsMalformed covers spec §4.5.5 category 1: an
// id outside the entire known range is malformed, not merely unsupported.
func TestDispatchUnknownCmdIDIsMalformed(t *testing.T) {
	d := New(svga3d.NewCore())
	d.Dispatch(wire.CmdID(999999), 0, nil, 0)
	if d.Stats.Malformed != 1 {
		t.Fatalf("Malformed = %d, want 1", d.Stats.Malformed)
	}
}

// TestDispatchBackendErrorIsCountedNotFatal covers spec §4.5.5 category 3:
// a well-formed command that fails Core-side validation is counted as a
// backend error and the dispatcher keeps running.
func TestDispatchBackendErrorIsCountedNotFatal(t *testing.T) {
	d := New(svga3d.NewCore())
	payload := encode(t, wire.CmdSurfaceDestroyPayload{SID: 123})
	d.Dispatch(wire.CmdSurfaceDestroy, uint32(len(payload)), payload, 0)
	if d.Stats.BackendErrors != 1 {
		t.Fatalf("BackendErrors = %d, want 1", d.Stats.BackendErrors)
	}

	// The dispatcher must still be usable afterward.
	hdr := wire.CmdSurfaceDefinePayload{SID: 1, Format: uint32(wire.FormatR8G8B8A8_UNORM)}
	hdr.Faces[0].NumMipLevels = 1
	definePayload := encode(t, hdr, wire.SVGA3dSize{Width: 4, Height: 4, Depth: 1})
	d.Dispatch(wire.CmdSurfaceDefine, uint32(len(definePayload)), definePayload, 0)
	if d.Stats.Processed != 1 {
		t.Fatalf("Processed after recovering = %d, want 1", d.Stats.Processed)
	}
}

// TestDispatchLegacyDefineScreen exercises the legacy 2D dispatch table
// (spec §4.5.1: "handled by distinct top-level handlers invoked from
// outside process_3d_cmd").
func TestDispatchLegacyDefineScreen(t *testing.T) {
	core := svga3d.NewCore()
	d := New(core)

	payload := encode(t, wire.CmdDefineScreenPayload{
		ScreenID: 0,
		Width:    1024,
		Height:   768,
	})
	d.DispatchLegacy(wire.CmdDefineScreen, uint32(len(payload)), payload)
	if d.Stats.Processed != 1 {
		t.Fatalf("Processed = %d, want 1 (malformed=%d backend=%d)", d.Stats.Processed, d.Stats.Malformed, d.Stats.BackendErrors)
	}
}
