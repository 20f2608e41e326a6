package dispatch

import (
	"fmt"

	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/wire"
)

// Stats counts every command Dispatch/DispatchLegacy has seen, broken
// down the way spec §4.5.5 categorizes dispatcher outcomes. It is safe to
// read concurrently with a live Dispatcher only if the caller is not also
// calling Dispatch/DispatchLegacy concurrently — Core itself is single-
// threaded (spec §5).
type Stats struct {
	Processed     uint64 // handler ran and its Core call succeeded
	Malformed     uint64 // bad cmd_size, undecodable payload, or unknown cmd_id
	Unsupported   uint64 // recognized cmd_id with no dispatch table entry
	BackendErrors uint64 // handler ran but the Core call returned an error
}

// Dispatcher routes decoded FIFO records to a *svga3d.Core (spec §2's
// "dispatch table lookup" step of the per-command control flow).
type Dispatcher struct {
	core  *svga3d.Core
	Stats Stats

	loggedUnsupported       map[wire.CmdID]bool
	loggedUnsupportedLegacy map[wire.LegacyCmdID]bool
}

// New wraps core in a Dispatcher.
func New(core *svga3d.Core) *Dispatcher {
	return &Dispatcher{
		core:                    core,
		loggedUnsupported:       make(map[wire.CmdID]bool),
		loggedUnsupportedLegacy: make(map[wire.LegacyCmdID]bool),
	}
}

// Core returns the wrapped core.
func (d *Dispatcher) Core() *svga3d.Core { return d.core }

type cmdHandler func(d *Dispatcher, payload []byte, dxContextID uint32) error

type legacyCmdHandler func(d *Dispatcher, payload []byte) error

// Dispatch processes one SVGA3D/GB/DX command (spec §4.5.1). dxContextID
// is the context id the surrounding command-buffer header carries for
// VGPU10 (DX) commands — ids 1143 and up read it from here, not from any
// CID-shaped field their own payload struct happens to carry (spec
// §4.5.1: "each carries an implicit dx_context_id supplied by the
// surrounding command-buffer header"). Commands outside the DX range
// ignore it.
func (d *Dispatcher) Dispatch(cmdID wire.CmdID, cmdSize uint32, payload []byte, dxContextID uint32) {
	if int(cmdSize) != len(payload) {
		d.malformed(cmdID.String(), fmt.Errorf("cmd_size %d does not match payload length %d", cmdSize, len(payload)))
		return
	}
	h, ok := dispatchTable[cmdID]
	if !ok {
		if cmdID.String() == "SVGA_3D_CMD_UNKNOWN" {
			d.malformed("cmd_id", fmt.Errorf("unrecognized cmd_id %d", uint32(cmdID)))
			return
		}
		d.unsupported(cmdID)
		return
	}
	if err := h(d, payload, dxContextID); err != nil {
		if mp, ok := err.(*malformedPayload); ok {
			d.malformed(cmdID.String(), mp.err)
			return
		}
		d.Stats.BackendErrors++
		svga3d.Logger().Warn("command failed", "cmd", cmdID.String(), "err", err)
		return
	}
	d.Stats.Processed++
}

// DispatchLegacy processes one legacy 2D FIFO command (spec §4.5.1:
// "handled by distinct top-level handlers invoked from outside the
// process_3d_cmd function").
func (d *Dispatcher) DispatchLegacy(cmdID wire.LegacyCmdID, cmdSize uint32, payload []byte) {
	if int(cmdSize) != len(payload) {
		d.malformed(cmdID.String(), fmt.Errorf("cmd_size %d does not match payload length %d", cmdSize, len(payload)))
		return
	}
	h, ok := legacyDispatchTable[cmdID]
	if !ok {
		if cmdID.String() == "SVGA_CMD_UNKNOWN" {
			d.malformed("cmd_id", fmt.Errorf("unrecognized legacy cmd_id %d", uint32(cmdID)))
			return
		}
		d.unsupportedLegacy(cmdID)
		return
	}
	if err := h(d, payload); err != nil {
		if mp, ok := err.(*malformedPayload); ok {
			d.malformed(cmdID.String(), mp.err)
			return
		}
		d.Stats.BackendErrors++
		svga3d.Logger().Warn("legacy command failed", "cmd", cmdID.String(), "err", err)
		return
	}
	d.Stats.Processed++
}

func (d *Dispatcher) malformed(what string, err error) {
	d.Stats.Malformed++
	svga3d.Logger().Warn("malformed command", "cmd", what, "err", err)
}

func (d *Dispatcher) unsupported(cmdID wire.CmdID) {
	d.Stats.Unsupported++
	if !d.loggedUnsupported[cmdID] {
		d.loggedUnsupported[cmdID] = true
		svga3d.Logger().Info("unsupported command", "cmd", cmdID.String(), "id", uint32(cmdID))
	}
}

func (d *Dispatcher) unsupportedLegacy(cmdID wire.LegacyCmdID) {
	d.Stats.Unsupported++
	if !d.loggedUnsupportedLegacy[cmdID] {
		d.loggedUnsupportedLegacy[cmdID] = true
		svga3d.Logger().Info("unsupported legacy command", "cmd", cmdID.String(), "id", uint32(cmdID))
	}
}

// decodeErr wraps a wire-decode failure so handler bodies can report it
// through the malformed path via a single early return, e.g.:
//
//	hdr, rest, err := wire.SplitHeader[wire.CmdFooPayload](payload)
//	if err != nil { return decodeErr(err) }
func decodeErr(err error) error {
	return &malformedPayload{err}
}

// malformedPayload marks an error as a decode failure rather than a Core
// validation/backend failure; Dispatch and DispatchLegacy report it through
// the malformed counter instead of BackendErrors.
type malformedPayload struct{ err error }

func (e *malformedPayload) Error() string { return e.err.Error() }
func (e *malformedPayload) Unwrap() error { return e.err }
