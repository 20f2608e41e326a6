// Package dxcontext implements the DX (VGPU10) context: per-virtual-device
// rendering pipeline state, the twelve per-context COTable bindings, and
// the query state machine (spec §3.5, §4.5.3).
//
// A Context's pipeline state is modeled as a fixed-layout PipelineState
// struct so DX_BIND_CONTEXT/DX_READBACK_CONTEXT can copy it to and from a
// guest MOB with encoding/binary, the same fixed-struct convention
// wire/decode.go uses for command payloads.
package dxcontext
