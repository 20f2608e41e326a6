package wire

// CmdSetOtableBasePayload is SET_OTABLE_BASE (1084, spec §4.3): binds the
// root page of one of the seventeen device-wide object tables.
type CmdSetOtableBasePayload struct {
	Type             OTableType
	BaseAddress      uint32 // PPN of the root page
	SizeInBytes      uint32
	ValidSizeInBytes uint32
	PTDepth          PTDepth
}

// CmdSetOtableBase64Payload is SET_OTABLE_BASE64 (1115): the 64-bit-PPN
// counterpart of CmdSetOtableBasePayload.
type CmdSetOtableBase64Payload struct {
	Type             OTableType
	BaseAddress      uint64
	SizeInBytes      uint32
	ValidSizeInBytes uint32
	PTDepth          PTDepth
}

// CmdGrowOtablePayload is GROW_OTABLE (1236, §4 supplemented feature):
// grows a table already bound by SET_OTABLE_BASE[64] in place, preserving
// its live entries.
type CmdGrowOtablePayload struct {
	Type             OTableType
	BaseAddress      uint32
	SizeInBytes      uint32
	ValidSizeInBytes uint32
	PTDepth          PTDepth
}
