package dxcontext

import (
	"encoding/binary"
	"testing"

	"github.com/gogpu/svga3d/backend"
	"github.com/gogpu/svga3d/gbo"
	"github.com/gogpu/svga3d/hostmem"
	"github.com/gogpu/svga3d/mob"
	"github.com/gogpu/svga3d/wire"
)

// fakeDX is a minimal backend.BackendDX for Manager's tests: DxEndQuery
// returns occlusionCount as the query result; every other method, including
// DxDefineContext/DxDestroyContext/DxBindContext/DxReadbackContext, is a
// no-op stub satisfying the interface.
type fakeDX struct {
	occlusionCount uint32
}

func (f *fakeDX) DxDefineContext(cid uint32) error                   { return nil }
func (f *fakeDX) DxDestroyContext(cid uint32) error                  { return nil }
func (f *fakeDX) DxBindContext(cid uint32, validContents bool) error { return nil }
func (f *fakeDX) DxReadbackContext(cid uint32) error                 { return nil }
func (f *fakeDX) DxSetRenderTargets(cid uint32, depthStencilViewID uint32, rtViewIDs []uint32) error {
	return nil
}
func (f *fakeDX) DxSetShader(cid uint32, shaderType uint32, shaderID uint32) error { return nil }
func (f *fakeDX) DxSetTopology(cid uint32, topology uint32) error                 { return nil }
func (f *fakeDX) DxSetVertexBuffers(cid uint32, startSlot uint32, sids []uint32, strides, offsets []uint32) error {
	return nil
}
func (f *fakeDX) DxSetIndexBuffer(cid uint32, sid uint32, format uint32, offset uint32) error {
	return nil
}
func (f *fakeDX) DxDraw(cid uint32, vertexCount, startVertexLocation uint32) error { return nil }
func (f *fakeDX) DxDrawIndexed(cid uint32, indexCount, startIndexLocation uint32, baseVertexLocation int32) error {
	return nil
}
func (f *fakeDX) DxDrawIndexedInstanced(cid uint32, indexCountPerInstance, instanceCount, startIndexLocation uint32, baseVertexLocation int32, startInstanceLocation uint32) error {
	return nil
}
func (f *fakeDX) DxClearRenderTargetView(viewID uint32, rgba [4]float32) error { return nil }
func (f *fakeDX) DxClearDepthStencilView(viewID uint32, flags uint16, depth float32, stencil uint16) error {
	return nil
}
func (f *fakeDX) DxDefineShader(cid, shaderID uint32, shaderType uint32, bytecode []byte) error {
	return nil
}
func (f *fakeDX) DxDestroyShader(cid, shaderID uint32) error { return nil }
func (f *fakeDX) DxBindShader(cid, shaderID uint32) error    { return nil }
func (f *fakeDX) DxDefineQuery(cid, queryID uint32, queryType uint32) error { return nil }
func (f *fakeDX) DxBeginQuery(cid, queryID uint32) error                   { return nil }
func (f *fakeDX) DxEndQuery(cid, queryID uint32) (backend.QueryResult, error) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, f.occlusionCount)
	return backend.QueryResult{Data: buf, OK: true}, nil
}
func (f *fakeDX) DxDestroyQuery(cid, queryID uint32) error { return nil }
func (f *fakeDX) DxGenMips(shaderResourceViewID uint32) error { return nil }
func (f *fakeDX) DxPresentBlt(src backend.SurfaceRef, srcBox wire.SVGA3dBox, dst backend.SurfaceRef, dstBox wire.SVGA3dBox, mode uint32) error {
	return nil
}
func (f *fakeDX) DxBufferCopy(dstSID, srcSID uint32, dstOffset, srcOffset, width uint32) error {
	return nil
}

func newTestMob(t *testing.T, mem hostmem.Memory, id uint32, size uint64) *mob.Mob {
	t.Helper()
	g, err := gbo.Create(mem, wire.PTDepthRange, uint64(id), size)
	if err != nil {
		t.Fatalf("gbo.Create: %v", err)
	}
	return &mob.Mob{ID: id, GBO: g}
}

// TestQueryStateMachineSeedScenario4 implements spec §8 seed scenario #4:
// DefineQuery(qid=3, OCCLUSION); BindQuery(qid=3, mobid=5, offset=0);
// BeginQuery(qid=3); EndQuery(qid=3). After EndQuery, bytes [0,4) of MOB 5
// must read SUCCEEDED (0x02) and bytes [4,...) the occlusion sample count.
func TestQueryStateMachineSeedScenario4(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	registry := mob.NewRegistry()
	registry.Insert(newTestMob(t, mem, 5, 4096))

	m := NewManager(registry)
	caps := backend.Capabilities{BackendDX: &fakeDX{occlusionCount: 42}}

	if _, err := m.DefineContext(caps, 1); err != nil {
		t.Fatalf("DefineContext: %v", err)
	}
	q, err := m.DefineQuery(1, 3, 0 /*OCCLUSION*/, 0)
	if err != nil {
		t.Fatalf("DefineQuery: %v", err)
	}
	if q.State != QueryIdle {
		t.Fatalf("new query state = %s, want IDLE", q.State)
	}

	if err := m.BindQuery(3, 5); err != nil {
		t.Fatalf("BindQuery: %v", err)
	}
	if err := m.SetQueryOffset(3, 0); err != nil {
		t.Fatalf("SetQueryOffset: %v", err)
	}
	if err := m.BeginQuery(3); err != nil {
		t.Fatalf("BeginQuery: %v", err)
	}
	if m.Query(3).State != QueryActive {
		t.Fatalf("state after BeginQuery = %s, want ACTIVE", m.Query(3).State)
	}

	if err := m.EndQuery(caps, 3); err != nil {
		t.Fatalf("EndQuery: %v", err)
	}
	if m.Query(3).State != QueryFinished {
		t.Fatalf("state after EndQuery = %s, want FINISHED", m.Query(3).State)
	}

	mb, _ := registry.Get(5)
	status := make([]byte, 4)
	if err := mb.GBO.Read(0, status); err != nil {
		t.Fatalf("read status: %v", err)
	}
	if got := binary.LittleEndian.Uint32(status); got != queryStatusSucceeded {
		t.Errorf("status word = %d, want SUCCEEDED (%d)", got, queryStatusSucceeded)
	}

	sample := make([]byte, 4)
	if err := mb.GBO.Read(4, sample); err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if got := binary.LittleEndian.Uint32(sample); got != 42 {
		t.Errorf("occlusion sample = %d, want 42", got)
	}
}

func TestBeginQueryRejectsDoubleActive(t *testing.T) {
	registry := mob.NewRegistry()
	m := NewManager(registry)
	caps := backend.Capabilities{BackendDX: &fakeDX{}}
	_, _ = m.DefineContext(caps, 1)
	_, _ = m.DefineQuery(1, 3, 0, 0)

	if err := m.BeginQuery(3); err != nil {
		t.Fatalf("first BeginQuery: %v", err)
	}
	if err := m.BeginQuery(3); err == nil {
		t.Fatal("expected second BeginQuery on an ACTIVE query to fail")
	}
}

// TestBindContextRoundTrip exercises DX_BIND_CONTEXT/DX_READBACK_CONTEXT:
// pipeline state survives a write-then-rebind-then-read cycle (spec
// §4.5.3 "DX context binding").
func TestBindContextRoundTrip(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	registry := mob.NewRegistry()
	registry.Insert(newTestMob(t, mem, 10, 4096))
	registry.Insert(newTestMob(t, mem, 11, 4096))

	m := NewManager(registry)
	caps := backend.Capabilities{BackendDX: &fakeDX{}}
	ctx, err := m.DefineContext(caps, 1)
	if err != nil {
		t.Fatalf("DefineContext: %v", err)
	}

	if err := m.BindContext(caps, 1, 10, false); err != nil {
		t.Fatalf("BindContext: %v", err)
	}
	ctx.Pipeline.Topology = 4
	ctx.Pipeline.DepthStencilViewID = 99
	if err := m.ReadbackContext(caps, 1); err != nil {
		t.Fatalf("ReadbackContext: %v", err)
	}

	// Rebinding to a different mob must first flush current state into
	// mob 10, then reset the live struct to zero values (validContents=false).
	if err := m.BindContext(caps, 1, 11, false); err != nil {
		t.Fatalf("BindContext rebind: %v", err)
	}
	if ctx.Pipeline.Topology != 0 {
		t.Errorf("Topology after unvalidated rebind = %d, want 0 (reset)", ctx.Pipeline.Topology)
	}

	mb10, _ := registry.Get(10)
	raw := make([]byte, binary.Size(PipelineState{}))
	if err := mb10.GBO.Read(0, raw); err != nil {
		t.Fatalf("read mob 10: %v", err)
	}
	var flushed PipelineState
	if err := decodeState(raw, &flushed); err != nil {
		t.Fatalf("decodeState: %v", err)
	}
	if flushed.Topology != 4 || flushed.DepthStencilViewID != 99 {
		t.Errorf("flushed state = %+v, want Topology=4 DepthStencilViewID=99", flushed)
	}

	// Binding back to mob 10 with validContents=true restores it.
	if err := m.BindContext(caps, 1, 10, true); err != nil {
		t.Fatalf("BindContext restore: %v", err)
	}
	if ctx.Pipeline.Topology != 4 || ctx.Pipeline.DepthStencilViewID != 99 {
		t.Errorf("restored state = %+v, want Topology=4 DepthStencilViewID=99", ctx.Pipeline)
	}
}

func TestSetCotableRejectsOversizeValidBytes(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	registry := mob.NewRegistry()
	registry.Insert(newTestMob(t, mem, 20, 64))

	m := NewManager(registry)
	caps := backend.Capabilities{BackendDX: &fakeDX{}}
	if _, err := m.DefineContext(caps, 1); err != nil {
		t.Fatalf("DefineContext: %v", err)
	}
	if err := m.SetCotable(1, wire.OTableRTView, 20, 1<<20); err == nil {
		t.Fatal("expected error binding a COTable with valid_size_bytes > mob size")
	}
}

func TestInvalidateContextPreservesCotablesAndMob(t *testing.T) {
	mem := hostmem.NewFake(1 << 20)
	registry := mob.NewRegistry()
	registry.Insert(newTestMob(t, mem, 30, 4096))
	registry.Insert(newTestMob(t, mem, 31, 4096))

	m := NewManager(registry)
	caps := backend.Capabilities{BackendDX: &fakeDX{}}
	ctx, _ := m.DefineContext(caps, 1)
	if err := m.SetCotable(1, wire.OTableRTView, 30, 32); err != nil {
		t.Fatalf("SetCotable: %v", err)
	}
	if err := m.BindContext(caps, 1, 31, false); err != nil {
		t.Fatalf("BindContext: %v", err)
	}
	ctx.Pipeline.Topology = 7

	if err := m.InvalidateContext(1); err != nil {
		t.Fatalf("InvalidateContext: %v", err)
	}
	if ctx.Pipeline.Topology != 0 {
		t.Errorf("Topology after invalidate = %d, want 0", ctx.Pipeline.Topology)
	}
	if !ctx.COTables[wire.OTableRTView].Defined() {
		t.Error("expected RTView COTable to survive invalidate")
	}
	if ctx.MobID != 31 {
		t.Errorf("MobID after invalidate = %d, want 31", ctx.MobID)
	}
}

func TestDestroyContextUnsetsSlot(t *testing.T) {
	registry := mob.NewRegistry()
	m := NewManager(registry)
	caps := backend.Capabilities{BackendDX: &fakeDX{}}
	if _, err := m.DefineContext(caps, 2); err != nil {
		t.Fatalf("DefineContext: %v", err)
	}
	if err := m.DestroyContext(caps, 2); err != nil {
		t.Fatalf("DestroyContext: %v", err)
	}
	if m.Get(2) != nil {
		t.Error("expected context 2 to be nil after destroy")
	}
}
