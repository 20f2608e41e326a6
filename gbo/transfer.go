package gbo

import (
	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/hostmem"
)

// direction selects which way bytes flow between guest memory and buf.
type direction int

const (
	dirRead direction = iota
	dirWrite
)

// Read copies g.TotalBytes-bounded guest memory starting at offset into
// buf (spec §4.1 Transfer, read direction).
func (g *GBO) Read(offset uint64, buf []byte) error {
	return g.transfer(offset, buf, dirRead)
}

// Write copies buf into guest memory starting at offset (spec §4.1
// Transfer, write direction).
func (g *GBO) Write(offset uint64, buf []byte) error {
	return g.transfer(offset, buf, dirWrite)
}

func (g *GBO) transfer(offset uint64, buf []byte, dir direction) error {
	if offset+uint64(len(buf)) > g.TotalBytes {
		return svga3d.Invalidf("gbo.Transfer", "range [%d, %d) exceeds GBO size %d", offset, offset+uint64(len(buf)), g.TotalBytes)
	}
	if len(buf) == 0 {
		return nil
	}

	pos := offset
	rest := buf
	cumulative := uint64(0)

	for _, d := range g.Descriptors {
		descBytes := d.PageCount * hostmem.PageSize
		if pos >= cumulative+descBytes {
			cumulative += descBytes
			continue
		}

		startInDesc := pos - cumulative
		avail := descBytes - startInDesc
		n := avail
		if n > uint64(len(rest)) {
			n = uint64(len(rest))
		}

		gpa := d.Base + startInDesc
		var err error
		if dir == dirRead {
			err = g.mem.ReadGPA(gpa, rest[:n])
		} else {
			err = g.mem.WriteGPA(gpa, rest[:n])
		}
		if err != nil {
			return svga3d.Internalf("gbo.Transfer", "guest memory access at %#x: %v", gpa, err)
		}

		rest = rest[n:]
		pos += n
		cumulative += descBytes

		if len(rest) == 0 {
			return nil
		}
	}

	return svga3d.Internalf("gbo.Transfer", "descriptor list exhausted with %d bytes remaining", len(rest))
}

// Copy transfers n bytes from srcOff in src to dstOff in dst, staging
// through a fixed-size buffer (spec §4.1 Copy).
func Copy(dst *GBO, dstOff uint64, src *GBO, srcOff uint64, n uint64) error {
	const stageSize = 4096
	stage := make([]byte, stageSize)

	for n > 0 {
		chunk := uint64(stageSize)
		if chunk > n {
			chunk = n
		}
		if err := src.Read(srcOff, stage[:chunk]); err != nil {
			return err
		}
		if err := dst.Write(dstOff, stage[:chunk]); err != nil {
			return err
		}
		srcOff += chunk
		dstOff += chunk
		n -= chunk
	}
	return nil
}
