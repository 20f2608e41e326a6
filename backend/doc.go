// Package backend declares the pluggable rendering-backend interfaces the
// command processor core invokes (spec §6.2): five small vtable-shaped
// interfaces — Backend3D, BackendVGPU9, BackendMap, BackendGBO, BackendDX —
// one per command family. A host wires in a concrete implementation for
// whichever families it supports; the core holds each as an optional
// reference and rejects a command family with ErrNotSupported when its
// interface is nil, the same way gogpu/gg's backend.RenderBackend is an
// interface selected at runtime from backend.Registry rather than compiled
// in directly.
//
// The core never dereferences a backend's internal state: it passes typed
// ids (surface id, context id, view id, ...) and the backend owns its own
// id-to-handle mapping. This keeps the core free of any reference to a
// concrete GPU API.
package backend
