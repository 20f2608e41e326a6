package dispatch

import (
	"github.com/gogpu/svga3d/cursor"
	"github.com/gogpu/svga3d/wire"
)

var legacyDispatchTable = map[wire.LegacyCmdID]legacyCmdHandler{
	wire.CmdUpdate:            legacyUpdate,
	wire.CmdRectCopy:          legacyRectCopy,
	wire.CmdDefineCursor:      legacyDefineCursor,
	wire.CmdDefineAlphaCursor: legacyDefineAlphaCursor,
	wire.CmdDefineScreen:      legacyDefineScreen,
	wire.CmdDestroyScreen:     legacyDestroyScreen,
}

// legacyUpdate is SVGA_CMD_UPDATE: always screen 0 in the pre-multimon
// legacy protocol.
func legacyUpdate(d *Dispatcher, payload []byte) error {
	hdr, _, err := wire.SplitHeader[wire.CmdUpdatePayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.Update(0, hdr.X, hdr.Y, hdr.Width, hdr.Height)
}

func legacyRectCopy(d *Dispatcher, payload []byte) error {
	hdr, _, err := wire.SplitHeader[wire.CmdRectCopyPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.RectCopy(hdr.SrcX, hdr.SrcY, hdr.DestX, hdr.DestY, hdr.Width, hdr.Height)
}

// legacyDefineCursor is SVGA_CMD_DEFINE_CURSOR. The fixed header carries
// no explicit mask byte lengths, so the AND and XOR mask planes'
// boundary within the trailing bytes is derived from width/height/depth
// exactly as cursor.ConvertAndMask/ConvertXorMask compute their expected
// input size (spec §4.5.4).
func legacyDefineCursor(d *Dispatcher, payload []byte) error {
	hdr, rest, err := wire.SplitHeader[wire.CmdDefineCursorPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	andLen := uint64(cursor.SourceRowBytes(hdr.Width, hdr.AndMaskDepth)) * uint64(hdr.Height)
	xorLen := uint64(cursor.SourceRowBytes(hdr.Width, hdr.XorMaskDepth)) * uint64(hdr.Height)
	if andLen+xorLen > uint64(len(rest)) {
		return decodeErr(errShortCursorPayload(andLen, xorLen, len(rest)))
	}
	andMask := rest[:andLen]
	xorMask := rest[andLen : andLen+xorLen]
	return d.core.DefineCursor(hdr.ID, hdr.HotspotX, hdr.HotspotY, hdr.Width, hdr.Height,
		hdr.AndMaskDepth, hdr.XorMaskDepth, andMask, xorMask, nil)
}

func legacyDefineAlphaCursor(d *Dispatcher, payload []byte) error {
	hdr, rest, err := wire.SplitHeader[wire.CmdDefineAlphaCursorPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DefineAlphaCursor(hdr.ID, hdr.HotspotX, hdr.HotspotY, hdr.Width, hdr.Height, rest)
}

func legacyDefineScreen(d *Dispatcher, payload []byte) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDefineScreenPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	_, err = d.core.DefineScreen(hdr.ScreenID, hdr.Flags, hdr.Width, hdr.Height, hdr.RootX, hdr.RootY)
	return err
}

func legacyDestroyScreen(d *Dispatcher, payload []byte) error {
	hdr, _, err := wire.SplitHeader[wire.CmdDestroyScreenPayload](payload)
	if err != nil {
		return decodeErr(err)
	}
	return d.core.DestroyScreen(hdr.ScreenID)
}
