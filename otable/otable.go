package otable

import (
	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/gbo"
	"github.com/gogpu/svga3d/hostmem"
	"github.com/gogpu/svga3d/wire"
)

// Table is one typed object table (spec §3.3): a GBO interpreted as a
// packed array of EntrySize-byte entries.
type Table struct {
	Type       wire.OTableType
	EntrySize  uint32
	GBO        *gbo.GBO
	SizeBytes  uint64
	ValidBytes uint64
}

// Defined reports whether the table currently has storage.
func (t *Table) Defined() bool {
	return t.GBO != nil
}

// NewTable returns an empty, undefined table of the given type.
func NewTable(typ wire.OTableType) *Table {
	return &Table{Type: typ, EntrySize: typ.EntrySize()}
}

// SetOrGrow (re)defines the table's storage (spec §4.3). sizeBytes == 0
// destroys the table. Otherwise a new GBO is built at the new size; if
// grow is true and validBytes > 0, the old table's live bytes are copied
// into the new one before the old GBO is dropped.
func (t *Table) SetOrGrow(mem hostmem.Memory, depth wire.PTDepth, rootGPA uint64, sizeBytes uint64, validBytes uint64, grow bool) error {
	if sizeBytes == 0 {
		t.GBO = nil
		t.SizeBytes = 0
		t.ValidBytes = 0
		return nil
	}

	newGBO, err := gbo.Create(mem, depth, rootGPA, sizeBytes)
	if err != nil {
		return err
	}

	if grow && validBytes > 0 && t.GBO != nil {
		n := validBytes
		if n > t.SizeBytes {
			n = t.SizeBytes
		}
		if n > sizeBytes {
			n = sizeBytes
		}
		if err := gbo.Copy(newGBO, 0, t.GBO, 0, n); err != nil {
			return err
		}
	}

	t.GBO = newGBO
	t.SizeBytes = sizeBytes
	t.ValidBytes = validBytes
	return nil
}

// VerifyIndex checks index*EntrySize+EntrySize <= SizeBytes (spec §4.3).
func (t *Table) VerifyIndex(index uint32) error {
	if !t.Defined() {
		return svga3d.InvalidStatef("otable.VerifyIndex", "table %s is not defined", t.Type)
	}
	end := uint64(index)*uint64(t.EntrySize) + uint64(t.EntrySize)
	if end > t.SizeBytes {
		return svga3d.Invalidf("otable.VerifyIndex", "index %d out of bounds for table %s (size %d)", index, t.Type, t.SizeBytes)
	}
	return nil
}

// Read copies one entry at index into out, which must be EntrySize bytes.
func (t *Table) Read(index uint32, out []byte) error {
	if err := t.VerifyIndex(index); err != nil {
		return err
	}
	return t.GBO.Read(uint64(index)*uint64(t.EntrySize), out)
}

// Write copies in (EntrySize bytes) into the entry at index.
func (t *Table) Write(index uint32, in []byte) error {
	if err := t.VerifyIndex(index); err != nil {
		return err
	}
	return t.GBO.Write(uint64(index)*uint64(t.EntrySize), in)
}

// Zero writes EntrySize zero bytes at index, used when destroying an
// object to clear its object-table entry (spec §4.2 mob_destroy).
func (t *Table) Zero(index uint32) error {
	zero := make([]byte, t.EntrySize)
	return t.Write(index, zero)
}
