package mob

import "github.com/gogpu/svga3d/gbo"

// InvalidID is the reserved mobid sentinel meaning "none" (spec §3.2).
const InvalidID uint32 = 0xFFFF_FFFF

// Mob pairs a mobid with the GBO it owns; its position in the LRU list is
// kept by the Registry, not here.
type Mob struct {
	ID  uint32
	GBO *gbo.GBO
}
