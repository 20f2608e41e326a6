package dxcontext

import (
	"bytes"
	"encoding/binary"

	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/backend"
	"github.com/gogpu/svga3d/mob"
)

// Manager is the sparse, auto-growing array of DX contexts plus the
// device-wide query set (spec §3.5 C5 supporting state). Like
// surface.Catalog, Manager is not safe for concurrent use.
type Manager struct {
	contexts []*Context
	queries  map[uint32]*Query
	mobs     *mob.Registry
}

// NewManager returns an empty context manager backed by mobs, the same
// MOB registry a Core uses for GBOs and object tables.
func NewManager(mobs *mob.Registry) *Manager {
	return &Manager{queries: make(map[uint32]*Query), mobs: mobs}
}

// Get returns the context at cid, or nil if undefined or out of range.
func (m *Manager) Get(cid uint32) *Context {
	if cid >= uint32(len(m.contexts)) {
		return nil
	}
	return m.contexts[cid]
}

// Len returns the current length of the backing array (not the number of
// live contexts).
func (m *Manager) Len() int { return len(m.contexts) }

func (m *Manager) growTo(cid uint32) {
	need := svga3d.AlignGrowTo(cid)
	if uint32(len(m.contexts)) >= need {
		return
	}
	grown := make([]*Context, need)
	copy(grown, m.contexts)
	m.contexts = grown
}

// DefineContext creates or replaces the context at cid (spec §4.5.3
// DX_DEFINE_CONTEXT). If DX backend support is attached, the backend is
// notified so it can allocate whatever host-side pipeline object the
// context needs; a purely software/no-backend configuration still tracks
// the context's bookkeeping state.
func (m *Manager) DefineContext(caps backend.Capabilities, cid uint32) (*Context, error) {
	if cid >= svga3d.MaxContextIDs {
		return nil, svga3d.Invalidf("dxcontext.DefineContext", "cid %d exceeds MaxContextIDs", cid)
	}
	m.growTo(cid)
	if m.contexts[cid] != nil {
		if err := m.DestroyContext(caps, cid); err != nil {
			return nil, err
		}
	}
	if bdx, err := caps.RequireDX(); err == nil {
		if err := bdx.DxDefineContext(cid); err != nil {
			return nil, err
		}
	}
	ctx := NewContext(cid)
	m.contexts[cid] = ctx
	return ctx, nil
}

// DestroyContext removes the context at cid (spec §4.5.3
// DX_DESTROY_CONTEXT), notifying the DX backend if attached. Any queries
// owned by cid are left alone: the real protocol requires the guest to
// destroy them itself, and nothing elsewhere keys off a query's CID
// except bookkeeping (spec §9 Open Question territory, not exercised by
// the seed scenarios).
func (m *Manager) DestroyContext(caps backend.Capabilities, cid uint32) error {
	ctx := m.Get(cid)
	if ctx == nil {
		return svga3d.Invalidf("dxcontext.DestroyContext", "context %d not defined", cid)
	}
	if bdx, err := caps.RequireDX(); err == nil {
		_ = bdx.DxDestroyContext(cid)
	}
	m.contexts[cid] = nil
	return nil
}

// InvalidateContext resets cid's scalar pipeline state and variable-length
// bindings to their just-defined defaults while leaving its COTables and
// bound MOB intact (spec §4.5.3 DX_INVALIDATE_CONTEXT: "rendering state
// becomes invalid; object table bindings survive").
func (m *Manager) InvalidateContext(cid uint32) error {
	ctx := m.Get(cid)
	if ctx == nil {
		return svga3d.Invalidf("dxcontext.InvalidateContext", "context %d not defined", cid)
	}
	cotables := ctx.COTables
	mobid := ctx.MobID
	*ctx = *NewContext(cid)
	ctx.COTables = cotables
	ctx.MobID = mobid
	return nil
}

// encodeState serializes PipelineState with a fixed little-endian layout.
func encodeState(s *PipelineState) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, s)
	return buf.Bytes()
}

// decodeState deserializes PipelineState from raw bytes previously written
// by encodeState (or by a guest driver using the matching wire layout).
func decodeState(data []byte, s *PipelineState) error {
	return binary.Read(bytes.NewReader(data), binary.LittleEndian, s)
}

// BindContext is DX_BIND_CONTEXT (spec §4.5.3 "DX context binding"): swaps
// cid's backing pipeline-state MOB. If cid already has a different MOB
// bound, that MOB first receives a readback of the context's current
// state (mirroring a real DX_READBACK_CONTEXT) before the swap, so no
// state is silently lost on rebind. If validContents is true the new
// MOB's bytes are decoded into the context's live PipelineState;
// otherwise the context's state resets to defaults, matching a
// freshly-allocated, zero-filled MOB. The new mob's bytes are copied into
// the live context struct before the backend is invoked, matching the
// real device's vmsvga3dDXBindContext order of operations.
func (m *Manager) BindContext(caps backend.Capabilities, cid, mobid uint32, validContents bool) error {
	ctx := m.Get(cid)
	if ctx == nil {
		return svga3d.Invalidf("dxcontext.BindContext", "context %d not defined", cid)
	}
	if ctx.MobID != svga3d.InvalidID && ctx.MobID != mobid {
		if oldMob, ok := m.mobs.Get(ctx.MobID); ok {
			if err := oldMob.GBO.Write(0, encodeState(&ctx.Pipeline)); err != nil {
				return err
			}
		}
	}
	ctx.MobID = mobid
	if mobid != svga3d.InvalidID {
		newMob, ok := m.mobs.Get(mobid)
		if !ok {
			return svga3d.Invalidf("dxcontext.BindContext", "mobid %d not defined", mobid)
		}
		if !validContents {
			ctx.Pipeline = PipelineState{}
		} else {
			raw := make([]byte, binary.Size(PipelineState{}))
			if err := newMob.GBO.Read(0, raw); err != nil {
				return err
			}
			if err := decodeState(raw, &ctx.Pipeline); err != nil {
				return err
			}
		}
	}
	if bdx, err := caps.RequireDX(); err == nil {
		if err := bdx.DxBindContext(cid, validContents); err != nil {
			return err
		}
	}
	return nil
}

// ReadbackContext is DX_READBACK_CONTEXT: flushes cid's live PipelineState
// into its bound MOB (spec §4.5.3), then notifies the backend.
func (m *Manager) ReadbackContext(caps backend.Capabilities, cid uint32) error {
	ctx := m.Get(cid)
	if ctx == nil {
		return svga3d.Invalidf("dxcontext.ReadbackContext", "context %d not defined", cid)
	}
	if ctx.MobID == svga3d.InvalidID {
		return svga3d.InvalidStatef("dxcontext.ReadbackContext", "context %d has no bound mob", cid)
	}
	mb, ok := m.mobs.Get(ctx.MobID)
	if !ok {
		return svga3d.InvalidStatef("dxcontext.ReadbackContext", "context %d's mob %d no longer exists", cid, ctx.MobID)
	}
	if err := mb.GBO.Write(0, encodeState(&ctx.Pipeline)); err != nil {
		return err
	}
	if bdx, err := caps.RequireDX(); err == nil {
		return bdx.DxReadbackContext(cid)
	}
	return nil
}
