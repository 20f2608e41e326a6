// Package surface implements the surface catalog (spec §3.4/§4.4, core
// component C4): a sparse, auto-growing array of surface descriptors.
// Each surface records format, dimensions, mip-level layout with
// pre-computed per-subresource byte offsets, and may own a host-memory
// shadow (the software path), an opaque backend handle (the hardware
// path), or both during the transition the spec calls "surface
// realization" (§4.5.3).
//
// Catalog never dereferences a backend handle; it forwards calls through
// the backend.Capabilities vtables supplied by its caller, keyed on
// backend.SurfaceRef.
package surface
