package backend

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/wire"
)

// DeviceProvider is an alias for gpucontext.DeviceProvider, the shared
// device-handle interface gogpu/gg's render package also builds on
// (render.DeviceHandle). A host that already obtained a GPU device through
// the gogpu ecosystem (e.g. for compositing the virtual screen alongside
// other GPU work) can hand that same provider to svga3d instead of this
// module standing up its own device.
type DeviceProvider = gpucontext.DeviceProvider

// GPUContextAdapter is a minimal BackendGBO built directly on a shared
// gpucontext.DeviceProvider. It does not implement the full DX pipeline —
// it exists to prove the device-sharing seam works, not to be a complete
// renderer (see backend/wgpuref for that). Every DX-only capability is
// left nil so Capabilities.RequireDX correctly reports ErrNotSupported
// when only this adapter is attached.
type GPUContextAdapter struct {
	provider DeviceProvider
}

// NewGPUContextAdapter wraps provider as a BackendGBO. provider must not
// be nil.
func NewGPUContextAdapter(provider DeviceProvider) *GPUContextAdapter {
	return &GPUContextAdapter{provider: provider}
}

// Provider returns the wrapped gpucontext.DeviceProvider.
func (a *GPUContextAdapter) Provider() DeviceProvider {
	return a.provider
}

var _ BackendGBO = (*GPUContextAdapter)(nil)

func (a *GPUContextAdapter) CreateSurfaceResource(sid uint32, flags uint64, format wire.SurfaceFormat, numMips, arraySize uint32, baseSize wire.SVGA3dSize) error {
	if a.provider.Device() == nil {
		return svga3d.NoMemoryf("GPUContextAdapter.CreateSurfaceResource", "device provider has no live Device")
	}
	return nil
}

func (a *GPUContextAdapter) DestroySurfaceResource(sid uint32) error {
	return nil
}

func (a *GPUContextAdapter) UpdateGBImage(ref SurfaceRef, box wire.SVGA3dBox, mobBytes []byte) error {
	return nil
}

func (a *GPUContextAdapter) ReadbackGBImage(ref SurfaceRef, box wire.SVGA3dBox, out []byte) error {
	return nil
}
