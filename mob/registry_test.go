package mob

import (
	"testing"

	"github.com/gogpu/svga3d/gbo"
	"github.com/gogpu/svga3d/hostmem"
	"github.com/gogpu/svga3d/wire"
)

func newTestMob(t *testing.T, mem hostmem.Memory, id uint32) *Mob {
	t.Helper()
	g, err := gbo.Create(mem, wire.PTDepthRange, 0x1000>>12, 4096)
	if err != nil {
		t.Fatalf("gbo.Create: %v", err)
	}
	return &Mob{ID: id, GBO: g}
}

func TestRegistryCreateDestroyRoundTrip(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	r := NewRegistry()

	r.Insert(newTestMob(t, mem, 7))
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}

	if _, ok := r.Destroy(7); !ok {
		t.Fatal("Destroy(7) = false, want true")
	}
	if r.Len() != 0 {
		t.Fatalf("Len() after Destroy = %d, want 0", r.Len())
	}
	if _, ok := r.Get(7); ok {
		t.Fatal("Get(7) after Destroy returned ok=true")
	}
}

func TestRegistryGetMovesToFront(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	r := NewRegistry()
	r.Insert(newTestMob(t, mem, 1))
	r.Insert(newTestMob(t, mem, 2))
	r.Insert(newTestMob(t, mem, 3))

	if oldest, _ := r.Oldest(); oldest != 1 {
		t.Fatalf("Oldest() = %d, want 1", oldest)
	}

	r.Get(1)
	if oldest, _ := r.Oldest(); oldest != 2 {
		t.Fatalf("after Get(1), Oldest() = %d, want 2", oldest)
	}
}

func TestRegistryReset(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	r := NewRegistry()
	r.Insert(newTestMob(t, mem, 1))
	r.Insert(newTestMob(t, mem, 2))

	r.Reset()
	if r.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", r.Len())
	}
	if _, ok := r.Oldest(); ok {
		t.Fatal("Oldest() after Reset returned ok=true")
	}
}

func TestRegistryEachOrder(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	r := NewRegistry()
	r.Insert(newTestMob(t, mem, 1))
	r.Insert(newTestMob(t, mem, 2))
	r.Insert(newTestMob(t, mem, 3))

	var ids []uint32
	r.Each(func(m *Mob) { ids = append(ids, m.ID) })

	want := []uint32{3, 2, 1}
	if len(ids) != len(want) {
		t.Fatalf("Each order = %v, want %v", ids, want)
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("Each order[%d] = %d, want %d", i, ids[i], id)
		}
	}
}
