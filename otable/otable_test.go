package otable

import (
	"testing"

	"github.com/gogpu/svga3d/hostmem"
	"github.com/gogpu/svga3d/wire"
)

func TestSetOrGrowDestroyWithZeroSize(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	tbl := NewTable(wire.OTableMOB)

	if err := tbl.SetOrGrow(mem, wire.PTDepthRange, 0x10, 4096, 0, false); err != nil {
		t.Fatalf("SetOrGrow: %v", err)
	}
	if !tbl.Defined() {
		t.Fatal("expected table defined after nonzero SetOrGrow")
	}

	if err := tbl.SetOrGrow(mem, wire.PTDepthRange, 0x10, 0, 0, false); err != nil {
		t.Fatalf("SetOrGrow(0): %v", err)
	}
	if tbl.Defined() {
		t.Fatal("expected table undefined after zero-size SetOrGrow")
	}
}

func TestSetOrGrowPreservesData(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	tbl := NewTable(wire.OTableSurface)
	tbl.EntrySize = 8

	if err := tbl.SetOrGrow(mem, wire.PTDepthRange, 0x10, 64, 0, false); err != nil {
		t.Fatalf("SetOrGrow: %v", err)
	}
	entry := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if err := tbl.Write(0, entry); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := tbl.SetOrGrow(mem, wire.PTDepthRange, 0x20, 128, 64, true); err != nil {
		t.Fatalf("SetOrGrow grow: %v", err)
	}

	got := make([]byte, 8)
	if err := tbl.Read(0, got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	for i, b := range entry {
		if got[i] != b {
			t.Fatalf("byte %d = %d, want %d", i, got[i], b)
		}
	}
}

func TestVerifyIndexOutOfBounds(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	tbl := NewTable(wire.OTableContext)
	tbl.EntrySize = 8
	if err := tbl.SetOrGrow(mem, wire.PTDepthRange, 0x10, 16, 0, false); err != nil {
		t.Fatalf("SetOrGrow: %v", err)
	}

	if err := tbl.VerifyIndex(1); err != nil {
		t.Fatalf("VerifyIndex(1) on 2-entry table: %v", err)
	}
	if err := tbl.VerifyIndex(2); err == nil {
		t.Fatal("VerifyIndex(2) on 2-entry table should fail")
	}
}

func TestZeroClearsEntry(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	tbl := NewTable(wire.OTableMOB)
	tbl.EntrySize = 8
	if err := tbl.SetOrGrow(mem, wire.PTDepthRange, 0x10, 32, 0, false); err != nil {
		t.Fatalf("SetOrGrow: %v", err)
	}
	if err := tbl.Write(1, []byte{9, 9, 9, 9, 9, 9, 9, 9}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := tbl.Zero(1); err != nil {
		t.Fatalf("Zero: %v", err)
	}
	got := make([]byte, 8)
	if err := tbl.Read(1, got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	for _, b := range got {
		if b != 0 {
			t.Fatalf("entry not zeroed: %v", got)
		}
	}
}

func TestTablesResetClearsAllTypes(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	ts := NewTables()
	tbl := ts.Get(wire.OTableMOB)
	if err := tbl.SetOrGrow(mem, wire.PTDepthRange, 0x10, 32, 0, false); err != nil {
		t.Fatalf("SetOrGrow: %v", err)
	}
	ts.Reset()
	if ts.Get(wire.OTableMOB).Defined() {
		t.Fatal("expected table undefined after Tables.Reset")
	}
}
