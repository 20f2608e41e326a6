package gbo

import "github.com/gogpu/svga3d"

// BackingStoreCreate allocates a host shadow of g.TotalBytes, reads
// validBytes from the guest into its front, and marks the GBO host-backed
// (spec §4.1 BackingStore semantics).
func (g *GBO) BackingStoreCreate(validBytes uint64) error {
	if validBytes > g.TotalBytes {
		return svga3d.Invalidf("gbo.BackingStoreCreate", "valid bytes %d exceeds GBO size %d", validBytes, g.TotalBytes)
	}
	shadow := make([]byte, g.TotalBytes)
	if validBytes > 0 {
		if err := g.Read(0, shadow[:validBytes]); err != nil {
			return err
		}
	}
	g.HostShadow = shadow
	g.Flags |= FlagHostBacked
	return nil
}

// BackingStoreWriteToGuest pushes the full host shadow back to guest
// memory. It is the identity on guest memory when immediately followed by
// BackingStoreCreate(g, g.TotalBytes) (spec §8 round-trip property).
func (g *GBO) BackingStoreWriteToGuest() error {
	if !g.HostBacked() {
		return svga3d.InvalidStatef("gbo.BackingStoreWriteToGuest", "GBO has no backing store")
	}
	return g.Write(0, g.HostShadow)
}

// BackingStoreDelete frees the host shadow and clears FlagHostBacked.
func (g *GBO) BackingStoreDelete() {
	g.HostShadow = nil
	g.Flags &^= FlagHostBacked
}

// BackingStorePtr returns a slice aliasing the host shadow at offset, or
// nil if the GBO is not host-backed or offset exceeds the shadow.
func (g *GBO) BackingStorePtr(offset uint64) []byte {
	if !g.HostBacked() || offset > uint64(len(g.HostShadow)) {
		return nil
	}
	return g.HostShadow[offset:]
}
