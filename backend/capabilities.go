package backend

import "github.com/gogpu/svga3d"

// Capabilities bundles the five backend interfaces a Core holds. Any
// subset may be nil; a command family whose interface is nil is rejected
// with ErrNotSupported (spec §6.2 "absence means the corresponding
// command family is rejected").
//
// This mirrors gogpu/gg's single RenderBackend interface, widened from one
// monolithic interface to five independent capability slots since a real
// SVGA3D backend plausibly supports the legacy VGPU9 family without DX10,
// or vice versa.
type Capabilities struct {
	Backend3D    Backend3D
	BackendVGPU9 BackendVGPU9
	BackendMap   BackendMap
	BackendGBO   BackendGBO
	BackendDX    BackendDX
}

// Require3D returns caps.Backend3D or ErrNotSupported.
func (caps Capabilities) Require3D() (Backend3D, error) {
	if caps.Backend3D == nil {
		return nil, svga3d.NotSupportedf("backend.Require3D", "no Backend3D implementation attached")
	}
	return caps.Backend3D, nil
}

// RequireVGPU9 returns caps.BackendVGPU9 or ErrNotSupported.
func (caps Capabilities) RequireVGPU9() (BackendVGPU9, error) {
	if caps.BackendVGPU9 == nil {
		return nil, svga3d.NotSupportedf("backend.RequireVGPU9", "no BackendVGPU9 implementation attached")
	}
	return caps.BackendVGPU9, nil
}

// RequireMap returns caps.BackendMap or ErrNotSupported.
func (caps Capabilities) RequireMap() (BackendMap, error) {
	if caps.BackendMap == nil {
		return nil, svga3d.NotSupportedf("backend.RequireMap", "no BackendMap implementation attached")
	}
	return caps.BackendMap, nil
}

// RequireGBO returns caps.BackendGBO or ErrNotSupported.
func (caps Capabilities) RequireGBO() (BackendGBO, error) {
	if caps.BackendGBO == nil {
		return nil, svga3d.NotSupportedf("backend.RequireGBO", "no BackendGBO implementation attached")
	}
	return caps.BackendGBO, nil
}

// RequireDX returns caps.BackendDX or ErrNotSupported.
func (caps Capabilities) RequireDX() (BackendDX, error) {
	if caps.BackendDX == nil {
		return nil, svga3d.NotSupportedf("backend.RequireDX", "no BackendDX implementation attached")
	}
	return caps.BackendDX, nil
}
