package gbo

import (
	"github.com/gogpu/svga3d"
	"github.com/gogpu/svga3d/hostmem"
	"github.com/gogpu/svga3d/wire"
)

// FlagHostBacked is set on GBO.Flags iff HostShadow has been materialized.
const FlagHostBacked uint32 = 1 << 0

// Descriptor is one contiguous guest-physical run backing part of a GBO
// (spec §3.1). Base is a byte address, already masked and page-aligned.
type Descriptor struct {
	Base      uint64
	PageCount uint64
}

// GBO is a logical contiguous byte range whose storage is indirected
// through a guest page table (spec §3.1).
type GBO struct {
	TotalBytes  uint64
	TotalPages  uint64
	Descriptors []Descriptor
	HostShadow  []byte
	Flags       uint32

	mem hostmem.Memory
}

// HostBacked reports whether HostShadow has been materialized via
// BackingStoreCreate.
func (g *GBO) HostBacked() bool {
	return g.Flags&FlagHostBacked != 0
}

// Create walks the guest page table rooted at rootGPA (interpreted per
// depth; rootGPA is the root's page frame number, shifted left by 12 to
// form its byte address) and builds a GBO of sizeBytes logical bytes (spec §4.1).
//
// Fails with INVALID_PARAMETER if sizeBytes exceeds svga3d.MaxGBOBytes, if
// depth cannot address sizeBytes, or if an intermediate page-table read
// fails.
func Create(mem hostmem.Memory, depth wire.PTDepth, rootGPA uint64, sizeBytes uint64) (*GBO, error) {
	if sizeBytes > svga3d.MaxGBOBytes {
		return nil, svga3d.Invalidf("gbo.Create", "size %d exceeds max GBO size %d", sizeBytes, svga3d.MaxGBOBytes)
	}

	totalPages := ceilDiv(sizeBytes, hostmem.PageSize)

	descs, err := walk(mem, depth, rootGPA, totalPages)
	if err != nil {
		return nil, err
	}

	var sum uint64
	for _, d := range descs {
		sum += d.PageCount
	}
	if sum != totalPages {
		return nil, svga3d.Internalf("gbo.Create", "descriptor page count %d does not match total pages %d", sum, totalPages)
	}

	return &GBO{
		TotalBytes:  sizeBytes,
		TotalPages:  totalPages,
		Descriptors: coalesce(descs),
		mem:         mem,
	}, nil
}

func ceilDiv(n, d uint64) uint64 {
	return (n + d - 1) / d
}

// coalesce folds adjacent descriptors (base_i+1 == base_i + count_i*4096)
// into a single run, per spec §4.1.
func coalesce(descs []Descriptor) []Descriptor {
	if len(descs) == 0 {
		return descs
	}
	out := make([]Descriptor, 0, len(descs))
	cur := descs[0]
	for _, d := range descs[1:] {
		if cur.Base+cur.PageCount*hostmem.PageSize == d.Base {
			cur.PageCount += d.PageCount
			continue
		}
		out = append(out, cur)
		cur = d
	}
	out = append(out, cur)
	return out
}
