package wire

// Legacy 2D FIFO command payloads (pre-3D SVGA screen/cursor commands).
// These ride in the same FIFO as the 3D command stream but are not prefixed
// with the SVGA3D cmd_id/cmd_size header — the dispatcher recognizes them by
// their own distinct FIFO register protocol. They are modeled here because
// the cursor and screen lifecycles they drive are shared with the GB screen
// target path (see dispatch package).

// CmdUpdate is SVGA_CMD_UPDATE: repaint a screen rectangle from VRAM.
type CmdUpdatePayload struct {
	X, Y, Width, Height uint32
}

// CmdRectCopy is SVGA_CMD_RECT_COPY: blit within VRAM.
type CmdRectCopyPayload struct {
	SrcX, SrcY uint32
	DestX, DestY uint32
	Width, Height uint32
}

// CmdDefineCursor is SVGA_CMD_DEFINE_CURSOR's fixed header; AND and XOR mask
// bitmaps follow as trailing byte arrays whose length is derived from
// AndMaskDepth/XorMaskDepth and Width/Height (spec §4.5.4).
type CmdDefineCursorPayload struct {
	ID           uint32
	HotspotX     uint32
	HotspotY     uint32
	Width        uint32
	Height       uint32
	AndMaskDepth uint32
	XorMaskDepth uint32
}

// CmdDefineAlphaCursor is SVGA_CMD_DEFINE_ALPHA_CURSOR: a single straight-
// alpha BGRA8 mask follows, Width*Height*4 bytes, no AND mask.
type CmdDefineAlphaCursorPayload struct {
	ID       uint32
	HotspotX uint32
	HotspotY uint32
	Width    uint32
	Height   uint32
}

// CmdDefineScreen is SVGA_CMD_DEFINE_SCREEN (spec §3.6): creates or updates
// one entry in the legacy Screen array.
type CmdDefineScreenPayload struct {
	StructSize uint32
	ScreenID   uint32
	Flags      uint32
	Width      uint32
	Height     uint32
	RootX      int32
	RootY      int32
}

// CmdDestroyScreen is SVGA_CMD_DESTROY_SCREEN.
type CmdDestroyScreenPayload struct {
	ScreenID uint32
}

// CmdScreenDMA is SVGA_CMD_SCREEN_DMA's fixed header; an SVGA3dCopyBox-style
// rectangle list follows, mirroring SURFACE_DMA's two-step layout.
type CmdScreenDMAPayload struct {
	ScreenID uint32
	Guest    SVGAGuestPtr
}
