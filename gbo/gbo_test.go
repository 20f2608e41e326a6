package gbo

import (
	"encoding/binary"
	"testing"

	"github.com/gogpu/svga3d/hostmem"
	"github.com/gogpu/svga3d/wire"
)

// writePageTable writes a PTDEPTH_1 page table of 32-bit PPNs at pfn.
func writePageTable(t *testing.T, mem *hostmem.Fake, pfn uint64, ppns []uint32) {
	t.Helper()
	buf := make([]byte, len(ppns)*4)
	for i, p := range ppns {
		binary.LittleEndian.PutUint32(buf[i*4:], p)
	}
	mem.Poke(pfn<<12, buf)
}

func TestCreateDepth1BasicWalk(t *testing.T) {
	mem := hostmem.NewFake(1 << 24)
	writePageTable(t, mem, 0x100, []uint32{0x200, 0x201, 0x202, 0x205})

	g, err := Create(mem, wire.PTDepth1, 0x100, 16384)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.TotalPages != 4 {
		t.Fatalf("TotalPages = %d, want 4", g.TotalPages)
	}

	want := []Descriptor{
		{Base: 0x200_000, PageCount: 3},
		{Base: 0x205_000, PageCount: 1},
	}
	if len(g.Descriptors) != len(want) {
		t.Fatalf("Descriptors = %+v, want %+v", g.Descriptors, want)
	}
	for i, d := range g.Descriptors {
		if d != want[i] {
			t.Errorf("Descriptors[%d] = %+v, want %+v", i, d, want[i])
		}
	}
}

func TestCreateDepth0RejectsMultiPage(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	if _, err := Create(mem, wire.PTDepth0, 0x10, 8192); err == nil {
		t.Fatal("expected error for PTDEPTH_0 with size > 1 page")
	}
}

func TestCreateDepth1RejectsOversize(t *testing.T) {
	mem := hostmem.NewFake(1 << 24)
	// One depth-1 page of 32-bit PPNs holds 4096/4 = 1024 pages.
	if _, err := Create(mem, wire.PTDepth1, 0x10, (1025)*hostmem.PageSize); err == nil {
		t.Fatal("expected error for PTDEPTH_1 exceeding one page of PPNs")
	}
}

func TestCreateRange(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	g, err := Create(mem, wire.PTDepthRange, 0x40, 3*hostmem.PageSize)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	want := Descriptor{Base: 0x40 << 12, PageCount: 3}
	if len(g.Descriptors) != 1 || g.Descriptors[0] != want {
		t.Fatalf("Descriptors = %+v, want [%+v]", g.Descriptors, want)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	g, err := Create(mem, wire.PTDepthRange, 0x40, 3*hostmem.PageSize)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	data := []byte("hello, guest-backed object")
	if err := g.Write(100, data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := make([]byte, len(data))
	if err := g.Read(100, got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("round trip = %q, want %q", got, data)
	}
}

func TestTransferRejectsOutOfBounds(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	g, err := Create(mem, wire.PTDepthRange, 0x40, hostmem.PageSize)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	buf := make([]byte, 10)
	if err := g.Read(hostmem.PageSize-5, buf); err == nil {
		t.Fatal("expected error reading past TotalBytes")
	}
}

func TestBackingStoreRoundTrip(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	g, err := Create(mem, wire.PTDepthRange, 0x40, hostmem.PageSize)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := g.Write(0, []byte("seed data")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := g.BackingStoreCreate(g.TotalBytes); err != nil {
		t.Fatalf("BackingStoreCreate: %v", err)
	}
	if !g.HostBacked() {
		t.Fatal("expected HostBacked after BackingStoreCreate")
	}
	if err := g.BackingStoreWriteToGuest(); err != nil {
		t.Fatalf("BackingStoreWriteToGuest: %v", err)
	}

	got := make([]byte, len("seed data"))
	if err := g.Read(0, got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "seed data" {
		t.Fatalf("guest memory = %q, want %q", got, "seed data")
	}

	g.BackingStoreDelete()
	if g.HostBacked() {
		t.Fatal("expected HostBacked false after BackingStoreDelete")
	}
}

func TestCopy(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	src, err := Create(mem, wire.PTDepthRange, 0x40, 3*hostmem.PageSize)
	if err != nil {
		t.Fatalf("Create src: %v", err)
	}
	dst, err := Create(mem, wire.PTDepthRange, 0x80, 3*hostmem.PageSize)
	if err != nil {
		t.Fatalf("Create dst: %v", err)
	}

	payload := make([]byte, 9000)
	for i := range payload {
		payload[i] = byte(i)
	}
	if err := src.Write(0, payload); err != nil {
		t.Fatalf("Write src: %v", err)
	}
	if err := Copy(dst, 0, src, 0, uint64(len(payload))); err != nil {
		t.Fatalf("Copy: %v", err)
	}

	got := make([]byte, len(payload))
	if err := dst.Read(0, got); err != nil {
		t.Fatalf("Read dst: %v", err)
	}
	for i := range payload {
		if got[i] != payload[i] {
			t.Fatalf("byte %d = %d, want %d", i, got[i], payload[i])
		}
	}
}
