package wire

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestSplitHeaderDxSetCotable(t *testing.T) {
	want := CmdDxSetCotablePayload{
		CID:            3,
		MobID:          5,
		Type:           OTableSRView,
		ValidSizeBytes: 128,
	}
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, want); err != nil {
		t.Fatalf("encode: %v", err)
	}
	buf.Write([]byte{0xAA, 0xBB}) // trailing garbage should be returned, not consumed

	got, rest, err := SplitHeader[CmdDxSetCotablePayload](buf.Bytes())
	if err != nil {
		t.Fatalf("SplitHeader: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if len(rest) != 2 || rest[0] != 0xAA || rest[1] != 0xBB {
		t.Fatalf("rest = %v, want [0xAA 0xBB]", rest)
	}
}

func TestSplitHeaderTooSmall(t *testing.T) {
	_, _, err := SplitHeader[CmdDxDefineContextPayload]([]byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected error for undersized payload")
	}
}

func TestElementsTrailingUint32Array(t *testing.T) {
	ids := []uint32{10, 11, 12}
	var buf bytes.Buffer
	for _, id := range ids {
		if err := binary.Write(&buf, binary.LittleEndian, id); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}

	got, err := Elements[uint32](buf.Bytes())
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	if len(got) != len(ids) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(ids))
	}
	for i, id := range ids {
		if got[i] != id {
			t.Errorf("got[%d] = %d, want %d", i, got[i], id)
		}
	}
}

func TestElementsNotAMultipleFails(t *testing.T) {
	_, err := Elements[uint32]([]byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected error for non-multiple trailing length")
	}
}

func TestCmdIDStringRoundTrip(t *testing.T) {
	cases := map[CmdID]string{
		CmdSurfaceDefine:  "SVGA_3D_CMD_SURFACE_DEFINE",
		CmdSurfaceDMA:     "SVGA_3D_CMD_SURFACE_DMA",
		CmdDefineGbSurface: "SVGA_3D_CMD_DEFINE_GB_SURFACE",
		CmdDxDefineContext: "SVGA_3D_CMD_DX_DEFINE_CONTEXT",
		CmdDxSetCotable:   "SVGA_3D_CMD_DX_SET_COTABLE",
	}
	for id, want := range cases {
		if got := id.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", id, got, want)
		}
	}
	if got := CmdID(0).String(); got != "SVGA_3D_CMD_UNKNOWN" {
		t.Errorf("unknown id String() = %q, want SVGA_3D_CMD_UNKNOWN", got)
	}
}
