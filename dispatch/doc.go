// Package dispatch is the command processor's wire edge (spec §2, §4.5,
// §6.1): it decodes a (cmd_id, cmd_size, payload) FIFO record into a
// typed wire struct and routes it to the matching svga3d.Core method.
//
// Two independent id spaces are dispatched here, mirroring the real
// device: the unified SVGA3D/GB/DX command set (wire.CmdID, ids 1039+)
// through Dispatch, and the small, historically-first legacy 2D FIFO
// family (wire.LegacyCmdID) through DispatchLegacy. Both share one
// Dispatcher and one Stats counter.
//
// Every dispatch path honors spec §4.5.5's three-way failure split: a
// malformed record (bad size, undecodable payload, unrecognized cmd_id)
// or an unsupported-but-recognized command never reaches svga3d.Core and
// never returns an error to the caller — only a backend/validation error
// surfacing from a Core method does, and even that is logged and
// swallowed rather than propagated, matching "the top-level dispatcher
// swallows every error after logging" (spec §7).
package dispatch
