package wire

// LegacyCmdID is a raw SVGA_CMD_* FIFO register command id (spec §4.5.1:
// "Legacy 2D FIFO commands ... handled by distinct top-level handlers
// invoked from outside the process_3d_cmd function"). These share the
// FIFO byte stream with the SVGA3D command set above but occupy their own
// small, historically-first id space rather than the 1039+ range.
type LegacyCmdID uint32

const (
	CmdUpdate             LegacyCmdID = 1
	CmdRectCopy           LegacyCmdID = 3
	CmdDefineCursor       LegacyCmdID = 19
	CmdDefineAlphaCursor  LegacyCmdID = 22
	CmdDefineScreen       LegacyCmdID = 34
	CmdDestroyScreen      LegacyCmdID = 35
)

var legacyCmdNames = map[LegacyCmdID]string{
	CmdUpdate:            "SVGA_CMD_UPDATE",
	CmdRectCopy:          "SVGA_CMD_RECT_COPY",
	CmdDefineCursor:      "SVGA_CMD_DEFINE_CURSOR",
	CmdDefineAlphaCursor: "SVGA_CMD_DEFINE_ALPHA_CURSOR",
	CmdDefineScreen:      "SVGA_CMD_DEFINE_SCREEN",
	CmdDestroyScreen:     "SVGA_CMD_DESTROY_SCREEN",
}

// String returns the protocol name of id, or a numeric fallback if id is
// not a known legacy command.
func (id LegacyCmdID) String() string {
	if n, ok := legacyCmdNames[id]; ok {
		return n
	}
	return "SVGA_CMD_UNKNOWN"
}
