package wire

// GB screen target command payloads (SVGA_3D_CMD_* in the 1124-1131
// range): the MOB-backed counterpart of the legacy DEFINE_SCREEN family
// in legacy.go.

// CmdDefineGbScreentargetPayload is DEFINE_GB_SCREENTARGET (1124).
type CmdDefineGbScreentargetPayload struct {
	StID   uint32
	Width  uint32
	Height uint32
	Flags  uint32
	DpiX   uint32
	DpiY   uint32
}

// CmdDestroyGbScreentargetPayload is DESTROY_GB_SCREENTARGET (1125).
type CmdDestroyGbScreentargetPayload struct {
	StID uint32
}

// CmdBindGbScreentargetPayload is BIND_GB_SCREENTARGET (1126): Image
// names the already-GB-bound surface whose MOB backs the target's
// pixels; Image.SID == InvalidID unbinds.
type CmdBindGbScreentargetPayload struct {
	StID  uint32
	Image SurfaceImageId
}

// CmdUpdateGbScreentargetPayload is UPDATE_GB_SCREENTARGET (1127).
type CmdUpdateGbScreentargetPayload struct {
	StID uint32
	Rect SVGA3dRect
}

// CmdGbScreenDmaPayload is GB_SCREEN_DMA (1131): unlike legacy
// CmdScreenDMAPayload (fifo.go), it carries no guest pointer — the
// target's pixels already live in its bound MOB, so this just requests a
// full-surface present of whatever is already there.
type CmdGbScreenDmaPayload struct {
	StID uint32
}
