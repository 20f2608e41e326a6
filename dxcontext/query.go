package dxcontext

import (
	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/backend"
)

// QueryState is one phase of the DX query lifecycle (spec §4.5.3 DX Query
// lifecycle): INVALID -> IDLE -> ACTIVE -> PENDING -> FINISHED, then back
// to IDLE once the result has been consumed.
type QueryState int

const (
	QueryInvalid QueryState = iota
	QueryIdle
	QueryActive
	QueryPending
	QueryFinished
)

func (s QueryState) String() string {
	switch s {
	case QueryInvalid:
		return "INVALID"
	case QueryIdle:
		return "IDLE"
	case QueryActive:
		return "ACTIVE"
	case QueryPending:
		return "PENDING"
	case QueryFinished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

// Query is one DX query object (spec §3.5, §4.5.3).
type Query struct {
	ID    uint32
	CID   uint32
	Type  uint32
	Flags uint32
	State QueryState

	MobID     uint32
	MobOffset uint32

	Result backend.QueryResult
}

func newQuery(cid, qid, typ, flags uint32) *Query {
	return &Query{ID: qid, CID: cid, Type: typ, Flags: flags, State: QueryIdle, MobID: svga3d.InvalidID}
}

// DefineQuery creates qid in QueryIdle state (spec §4.5.3 DX_DEFINE_QUERY).
// Redefining an existing qid destroys and replaces it, matching
// Catalog.Define's implicit-destroy convention.
func (m *Manager) DefineQuery(cid, qid, typ, flags uint32) (*Query, error) {
	if m.Get(cid) == nil {
		return nil, svga3d.Invalidf("dxcontext.DefineQuery", "context %d not defined", cid)
	}
	if _, exists := m.queries[qid]; exists {
		delete(m.queries, qid)
	}
	q := newQuery(cid, qid, typ, flags)
	m.queries[qid] = q
	return q, nil
}

// DestroyQuery removes qid (spec §4.5.3 DX_DESTROY_QUERY).
func (m *Manager) DestroyQuery(qid uint32) error {
	if _, ok := m.queries[qid]; !ok {
		return svga3d.Invalidf("dxcontext.DestroyQuery", "query %d not defined", qid)
	}
	delete(m.queries, qid)
	return nil
}

// Query returns qid's state, or nil if undefined.
func (m *Manager) Query(qid uint32) *Query {
	return m.queries[qid]
}

// BindQuery attaches qid's result MOB (spec §4.5.3 DX_BIND_QUERY). Binding
// does not by itself move the state machine; it only changes where a
// later EndQuery/ReadbackQuery writes its result.
func (m *Manager) BindQuery(qid, mobid uint32) error {
	q := m.queries[qid]
	if q == nil {
		return svga3d.Invalidf("dxcontext.BindQuery", "query %d not defined", qid)
	}
	q.MobID = mobid
	q.MobOffset = 0
	return nil
}

// SetQueryOffset changes the byte offset within qid's bound MOB where its
// result is written (spec §4.5.3 DX_SET_QUERY_OFFSET).
func (m *Manager) SetQueryOffset(qid, offset uint32) error {
	q := m.queries[qid]
	if q == nil {
		return svga3d.Invalidf("dxcontext.SetQueryOffset", "query %d not defined", qid)
	}
	q.MobOffset = offset
	return nil
}

// MoveQuery reassigns qid's result MOB without disturbing its state
// machine phase (wire.CmdDxMoveQueryPayload, spec §4 supplemented
// feature).
func (m *Manager) MoveQuery(qid, mobid, mobOffset uint32) error {
	q := m.queries[qid]
	if q == nil {
		return svga3d.Invalidf("dxcontext.MoveQuery", "query %d not defined", qid)
	}
	q.MobID = mobid
	q.MobOffset = mobOffset
	return nil
}

// BeginQuery transitions {IDLE, PENDING, FINISHED} -> ACTIVE and writes a
// PENDING marker into the bound MOB, if any (spec §4.5.3 DX_BEGIN_QUERY).
// A query that is already ACTIVE rejects the call.
func (m *Manager) BeginQuery(qid uint32) error {
	q := m.queries[qid]
	if q == nil {
		return svga3d.Invalidf("dxcontext.BeginQuery", "query %d not defined", qid)
	}
	if q.State == QueryActive {
		return svga3d.InvalidStatef("dxcontext.BeginQuery", "query %d is already ACTIVE", qid)
	}
	q.State = QueryActive
	if q.MobID != svga3d.InvalidID {
		if mb, ok := m.mobs.Get(q.MobID); ok {
			_ = mb.GBO.Write(uint64(q.MobOffset), queryStatusWord(queryStatusPending))
		}
	}
	return nil
}

// DX query state-word values, mirroring SVGA3dQueryState's wire values.
// The guest result buffer always carries this 4-byte status word at its
// base offset, followed immediately by the backend's result bytes (spec
// §8 seed scenario #4: "bytes [0,4) of MOB 5 yields SUCCEEDED (0x02)").
const (
	queryStatusPending   uint32 = 1
	queryStatusSucceeded uint32 = 2
)

func queryStatusWord(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// EndQuery is valid from {ACTIVE, IDLE}; any other state is a no-op (spec
// §4.5.3 DX_END_QUERY: "From other states: no-op"). On a valid call it
// asks the backend for the result, writes a SUCCEEDED status word
// followed by the result bytes into the bound MOB, and transitions to
// FINISHED.
func (m *Manager) EndQuery(caps backend.Capabilities, qid uint32) error {
	q := m.queries[qid]
	if q == nil {
		return svga3d.Invalidf("dxcontext.EndQuery", "query %d not defined", qid)
	}
	if q.State != QueryActive && q.State != QueryIdle {
		return nil
	}

	bdx, err := caps.RequireDX()
	if err != nil {
		return err
	}
	result, err := bdx.DxEndQuery(q.CID, qid)
	if err != nil {
		return err
	}
	q.Result = result
	q.State = QueryFinished

	if q.MobID != svga3d.InvalidID {
		if mb, ok := m.mobs.Get(q.MobID); ok {
			if werr := mb.GBO.Write(uint64(q.MobOffset), queryStatusWord(queryStatusSucceeded)); werr != nil {
				return werr
			}
			if werr := mb.GBO.Write(uint64(q.MobOffset)+4, result.Data); werr != nil {
				return werr
			}
		}
	}
	return nil
}

// ReadbackQuery requires qid to be FINISHED, re-copies its result into the
// bound MOB (idempotent with the copy EndQuery already performed), and
// returns it to IDLE so the guest can reuse it (spec §4.5.3
// DX_READBACK_QUERY).
func (m *Manager) ReadbackQuery(qid uint32) error {
	q := m.queries[qid]
	if q == nil {
		return svga3d.Invalidf("dxcontext.ReadbackQuery", "query %d not defined", qid)
	}
	if q.State != QueryFinished {
		return svga3d.InvalidStatef("dxcontext.ReadbackQuery", "query %d is %s, not finished", qid, q.State)
	}
	if q.MobID != svga3d.InvalidID {
		if mb, ok := m.mobs.Get(q.MobID); ok {
			if err := mb.GBO.Write(uint64(q.MobOffset), queryStatusWord(queryStatusSucceeded)); err != nil {
				return err
			}
			if err := mb.GBO.Write(uint64(q.MobOffset)+4, q.Result.Data); err != nil {
				return err
			}
		}
	}
	q.State = QueryIdle
	return nil
}
