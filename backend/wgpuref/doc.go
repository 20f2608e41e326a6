// Package wgpuref is a reference Backend3D/BackendDX implementation built
// on github.com/gogpu/wgpu and github.com/gogpu/naga, analogous to
// gogpu/gg's backend/wgpu package. It is gated behind the wgpuref build
// tag the way the teacher gates its GPU accelerator behind !nogpu — most
// hosts bring their own backend and never import this package; it exists
// to demonstrate that backend.Capabilities is genuinely implementable
// against a real GPU stack, not just an interface on paper.
//
// Texture residency is intentionally minimal: this reference backend
// keeps surface contents in host memory and only exercises the real
// dependency surface the spec calls out explicitly — naga shader
// translation for DX_DEFINE_SHADER and the gpucontext device-provider
// handshake — rather than re-implementing a full DX10 rasterizer.
package wgpuref
