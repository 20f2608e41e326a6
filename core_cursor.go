package svga3d

import (
	"github.com/gogpu/svga3d/cursor"
	"github.com/gogpu/svga3d/display"
)

// DefineCursor is SVGA_CMD_DEFINE_CURSOR (spec §4.5.4): synthesizes a
// normalized AND+XOR cursor image from whatever bit depth the guest
// supplied and forwards it to the display pipe. The core itself holds no
// cursor state beyond the last shape notified — ownership of "what the
// pointer currently looks like" lives in the frontend.
func (c *Core) DefineCursor(id, hotX, hotY, width, height, andDepth, xorDepth uint32, andMask, xorMask, palette []byte) error {
	and, err := cursor.ConvertAndMask(width, height, andDepth, andMask)
	if err != nil {
		return err
	}
	xor, err := cursor.ConvertXorMask(width, height, xorDepth, xorMask, palette)
	if err != nil {
		return err
	}
	c.display.NotifyPointerShape(display.CursorShape{
		Visible: true, HasAlpha: false,
		HotX: hotX, HotY: hotY, Width: width, Height: height,
		Pixels: append(and, xor...),
	})
	return nil
}

// DefineAlphaCursor is SVGA_CMD_DEFINE_ALPHA_CURSOR: the ARGB32 fast path
// (spec §4.5.4).
func (c *Core) DefineAlphaCursor(id, hotX, hotY, width, height uint32, argb []byte) error {
	and, xor, err := cursor.ConvertAlphaCursor(width, height, argb)
	if err != nil {
		return err
	}
	c.display.NotifyPointerShape(display.CursorShape{
		Visible: true, HasAlpha: true,
		HotX: hotX, HotY: hotY, Width: width, Height: height,
		Pixels: append(and, xor...),
	})
	return nil
}
