package hostmem

// Fake is an in-process Memory backed by a flat byte slice, sized to cap.
// It exists for tests that need a guest address space to write page
// tables and command payloads into without a real hypervisor underneath.
type Fake struct {
	bytes []byte
}

// NewFake returns a Fake whose address space spans [0, cap).
func NewFake(cap int) *Fake {
	return &Fake{bytes: make([]byte, cap)}
}

func (f *Fake) ReadGPA(gpa uint64, buf []byte) error {
	end := gpa + uint64(len(buf))
	if end > uint64(len(f.bytes)) {
		return &ErrOutOfRange{GPA: gpa, Len: len(buf)}
	}
	copy(buf, f.bytes[gpa:end])
	return nil
}

func (f *Fake) WriteGPA(gpa uint64, buf []byte) error {
	end := gpa + uint64(len(buf))
	if end > uint64(len(f.bytes)) {
		return &ErrOutOfRange{GPA: gpa, Len: len(buf)}
	}
	copy(f.bytes[gpa:end], buf)
	return nil
}

// Poke writes buf directly at gpa, bypassing bounds checks used in test
// setup (building a guest page table before exercising GBO creation).
func (f *Fake) Poke(gpa uint64, buf []byte) {
	copy(f.bytes[gpa:], buf)
}

// Len returns the size of the fake address space.
func (f *Fake) Len() int {
	return len(f.bytes)
}
