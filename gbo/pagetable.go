package gbo

import (
	"encoding/binary"

	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/hostmem"
	"github.com/gogpu/svga3d/wire"
)

// walk produces the descriptor list for a page table of the given depth,
// rooted at the guest page frame number rootPFN (spec §4.1).
func walk(mem hostmem.Memory, depth wire.PTDepth, rootPFN uint64, totalPages uint64) ([]Descriptor, error) {
	switch depth {
	case wire.PTDepth0, wire.PTDepth64_0:
		if totalPages != 1 {
			return nil, svga3d.Invalidf("gbo.walk", "PTDEPTH_0 requires exactly 1 page, got %d", totalPages)
		}
		return []Descriptor{{Base: maskPFN(rootPFN), PageCount: 1}}, nil

	case wire.PTDepthRange:
		return []Descriptor{{Base: maskPFN(rootPFN), PageCount: totalPages}}, nil

	case wire.PTDepth1, wire.PTDepth64_1:
		elemSize := elemSizeFor(depth)
		entriesPerPage := uint64(hostmem.PageSize / elemSize)
		if totalPages > entriesPerPage {
			return nil, svga3d.Invalidf("gbo.walk", "PTDEPTH_1 page count %d exceeds one page of %d-byte PPNs", totalPages, elemSize)
		}
		return readLeafPage(mem, rootPFN, totalPages, elemSize)

	case wire.PTDepth2, wire.PTDepth64_2:
		elemSize := elemSizeFor(depth)
		entriesPerPage := uint64(hostmem.PageSize / elemSize)
		maxPages := entriesPerPage * entriesPerPage
		if totalPages > maxPages {
			return nil, svga3d.Invalidf("gbo.walk", "PTDEPTH_2 page count %d exceeds %d-PPN squared limit", totalPages, entriesPerPage)
		}

		numL1 := ceilDiv(totalPages, entriesPerPage)
		l1ppns, err := readPPNs(mem, rootPFN, numL1, elemSize)
		if err != nil {
			return nil, err
		}

		descs := make([]Descriptor, 0, totalPages)
		remaining := totalPages
		for _, l1ppn := range l1ppns {
			count := entriesPerPage
			if remaining < count {
				count = remaining
			}
			leaf, err := readLeafPage(mem, l1ppn, count, elemSize)
			if err != nil {
				return nil, err
			}
			descs = append(descs, leaf...)
			remaining -= count
		}
		return descs, nil

	default:
		return nil, svga3d.Invalidf("gbo.walk", "unknown page table depth %d", depth)
	}
}

// elemSizeFor returns the on-the-wire PPN element width for depth.
func elemSizeFor(depth wire.PTDepth) int {
	if depth.Is64() {
		return 8
	}
	return 4
}

// maskPFN converts a guest page frame number to a masked, page-aligned
// byte address.
func maskPFN(pfn uint64) uint64 {
	return wire.MaskGPA(pfn << 12)
}

// readPPNs reads count page-frame numbers from the page at pfn.
func readPPNs(mem hostmem.Memory, pfn uint64, count uint64, elemSize int) ([]uint64, error) {
	buf := make([]byte, count*uint64(elemSize))
	if err := mem.ReadGPA(maskPFN(pfn), buf); err != nil {
		return nil, svga3d.Internalf("gbo.readPPNs", "page table read at pfn %#x: %v", pfn, err)
	}
	out := make([]uint64, count)
	for i := range out {
		off := uint64(i) * uint64(elemSize)
		if elemSize == 8 {
			out[i] = binary.LittleEndian.Uint64(buf[off : off+8])
		} else {
			out[i] = uint64(binary.LittleEndian.Uint32(buf[off : off+4]))
		}
	}
	return out, nil
}

// readLeafPage reads count PPNs from the page at pfn and emits one
// descriptor per page entry.
func readLeafPage(mem hostmem.Memory, pfn uint64, count uint64, elemSize int) ([]Descriptor, error) {
	ppns, err := readPPNs(mem, pfn, count, elemSize)
	if err != nil {
		return nil, err
	}
	descs := make([]Descriptor, len(ppns))
	for i, p := range ppns {
		descs[i] = Descriptor{Base: maskPFN(p), PageCount: 1}
	}
	return descs, nil
}
