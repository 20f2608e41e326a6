package otable

import "github.com/gogpu/svga3d/wire"

// Tables holds the full set of device-level object tables, one per
// wire.OTableType (spec §3.3).
type Tables struct {
	tables [wire.NumOTableTypes]*Table
}

// NewTables returns an empty set of all object table types.
func NewTables() *Tables {
	var ts Tables
	for i := range ts.tables {
		ts.tables[i] = NewTable(wire.OTableType(i))
	}
	return &ts
}

// Get returns the table for typ, or nil if typ is out of range.
func (ts *Tables) Get(typ wire.OTableType) *Table {
	if !typ.Valid() {
		return nil
	}
	return ts.tables[typ]
}

// Reset clears every table's storage (device reset, spec §5).
func (ts *Tables) Reset() {
	for _, t := range ts.tables {
		t.GBO = nil
		t.SizeBytes = 0
		t.ValidBytes = 0
	}
}
