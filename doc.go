// Package svga3d implements the command processor core of a paravirtualized
// VMware-SVGA-compatible 3D graphics device: the parser, validator,
// memory-object manager and object-table bookkeeper that sits between an
// untrusted guest command stream and a pluggable 3D rendering backend.
//
// # Architecture
//
// The core is organized in five layered components, leaves first:
//
//   - gbo:       guest-backed memory objects (page-table walk, bounded
//     read/write/copy against guest-physical memory).
//   - mob:       a keyed registry of GBOs with LRU-ordered bookkeeping.
//   - otable:    seventeen typed, resizable object tables, each backed by a GBO.
//   - surface:   the surface catalog (formats, mip layout, mapping, blits).
//   - dispatch:  the FIFO/VGPU9/DX command dispatch tables that tie the
//     above together and invoke a pluggable backend.
//
// Core ties these together and exposes the ~150 entry points a host uses to
// feed it a guest command stream (surface_*, context_*, dx_*, mob_*,
// otable_*), per spec §6.5.
//
// # Trust model
//
// Every value that originates from the guest is untrusted. Validation
// happens at the boundary of every core entry point; internal helper
// functions assume their inputs have already been checked. No core
// function panics on guest input — failures are returned as *Error and
// the dispatcher logs and continues (spec §4.5.5, §7).
package svga3d
