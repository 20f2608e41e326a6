package cursor

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/svga3d"
)

// AndMaskRowBytes is the byte stride of one row of a normalized AND mask:
// ceil(cx/8), MSB-first (spec §4.5.4).
func AndMaskRowBytes(cx uint32) uint32 {
	return (cx + 7) / 8
}

// andMaskSrcRowBytes is the dword-aligned source row stride a guest's
// 1bpp AND mask uses (spec §4.5.4: "respecting source row being
// dword-aligned").
func andMaskSrcRowBytes(cx uint32) uint32 {
	raw := AndMaskRowBytes(cx)
	return (raw + 3) &^ 3
}

// SourceRowBytes returns the wire row stride of one AND/XOR mask plane at
// the given bit depth: dword-aligned for 1bpp, cx*bytesPerPixel
// otherwise. Callers that must slice a DEFINE_CURSOR payload's trailing
// mask planes apart (the fixed header carries no explicit byte lengths)
// use this to find where the AND mask ends and the XOR mask begins.
func SourceRowBytes(cx, depth uint32) uint32 {
	if depth == 1 {
		return andMaskSrcRowBytes(cx)
	}
	return cx * uint32((depth+7)/8)
}

// ConvertAndMask synthesizes the normalized AND mask for a cx x cy cursor
// from a guest AND mask at the given bit depth (spec §4.5.4).
func ConvertAndMask(cx, cy, depth uint32, src []byte) ([]byte, error) {
	destRowBytes := AndMaskRowBytes(cx)
	out := make([]byte, destRowBytes*cy)

	switch depth {
	case 1:
		srcRowBytes := andMaskSrcRowBytes(cx)
		need := uint64(srcRowBytes) * uint64(cy)
		if uint64(len(src)) < need {
			return nil, svga3d.Invalidf("cursor.ConvertAndMask", "1bpp and-mask needs %d bytes, have %d", need, len(src))
		}
		for row := uint32(0); row < cy; row++ {
			srcOff := row * srcRowBytes
			dstOff := row * destRowBytes
			copy(out[dstOff:dstOff+destRowBytes], src[srcOff:srcOff+destRowBytes])
		}
		return out, nil
	default:
		if depth < 8 {
			return nil, svga3d.Invalidf("cursor.ConvertAndMask", "unsupported and-mask depth %d", depth)
		}
		bytesPerPixel := int(depth+7) / 8
		srcRowBytes := int(cx) * bytesPerPixel
		need := srcRowBytes * int(cy)
		if len(src) < need {
			return nil, svga3d.Invalidf("cursor.ConvertAndMask", "%dbpp and-mask needs %d bytes, have %d", depth, need, len(src))
		}
		for row := uint32(0); row < cy; row++ {
			for col := uint32(0); col < cx; col++ {
				off := int(row)*srcRowBytes + int(col)*bytesPerPixel
				r, g, b := channelsAt(depth, src[off:off+bytesPerPixel])
				// "bit is set when all color channels for that pixel
				// exceed 0xFC" (nearly-white pixels become transparent).
				if r > 0xFC && g > 0xFC && b > 0xFC {
					byteIdx := row*destRowBytes + col/8
					out[byteIdx] |= 0x80 >> (col % 8)
				}
			}
		}
		return out, nil
	}
}

// ConvertXorMask synthesizes the normalized BGRA8 XOR mask for a cx x cy
// cursor from a guest XOR mask at the given bit depth (spec §4.5.4).
// palette is consulted only for depth == 8.
func ConvertXorMask(cx, cy, depth uint32, src []byte, palette []byte) ([]byte, error) {
	out := make([]byte, int(cx)*int(cy)*4)

	switch depth {
	case 1:
		srcRowBytes := andMaskSrcRowBytes(cx)
		need := uint64(srcRowBytes) * uint64(cy)
		if uint64(len(src)) < need {
			return nil, svga3d.Invalidf("cursor.ConvertXorMask", "1bpp xor-mask needs %d bytes, have %d", need, len(src))
		}
		for row := uint32(0); row < cy; row++ {
			for col := uint32(0); col < cx; col++ {
				byteIdx := row*srcRowBytes + col/8
				bit := (src[byteIdx] >> (7 - col%8)) & 1
				dstOff := (row*cx + col) * 4
				if bit != 0 {
					// 0x00FFFFFF: white, per spec's literal byte value.
					out[dstOff+0] = 0xFF
					out[dstOff+1] = 0xFF
					out[dstOff+2] = 0xFF
					out[dstOff+3] = 0x00
				}
			}
		}
		return out, nil

	case 8:
		need := int(cx) * int(cy)
		if len(src) < need {
			return nil, svga3d.Invalidf("cursor.ConvertXorMask", "8bpp xor-mask needs %d bytes, have %d", need, len(src))
		}
		for row := uint32(0); row < cy; row++ {
			for col := uint32(0); col < cx; col++ {
				idx := int(src[row*cx+col])
				pOff := idx * 4
				dstOff := int(row*cx+col) * 4
				if pOff+4 <= len(palette) {
					copy(out[dstOff:dstOff+4], palette[pOff:pOff+4])
				}
			}
		}
		return out, nil

	case 15, 16, 24, 32:
		bytesPerPixel := int(depth+7) / 8
		srcRowBytes := int(cx) * bytesPerPixel
		need := srcRowBytes * int(cy)
		if len(src) < need {
			return nil, svga3d.Invalidf("cursor.ConvertXorMask", "%dbpp xor-mask needs %d bytes, have %d", depth, need, len(src))
		}
		srcImg := &channelSourceImage{depth: depth, rowBytes: srcRowBytes, w: int(cx), h: int(cy), pix: src}
		dst := image.NewNRGBA(image.Rect(0, 0, int(cx), int(cy)))
		draw.Draw(dst, dst.Bounds(), srcImg, image.Point{}, draw.Src)
		for row := 0; row < int(cy); row++ {
			for col := 0; col < int(cx); col++ {
				r, g, b, _ := dst.At(col, row).RGBA()
				dstOff := (row*int(cx) + col) * 4
				out[dstOff+0] = byte(b >> 8)
				out[dstOff+1] = byte(g >> 8)
				out[dstOff+2] = byte(r >> 8)
				out[dstOff+3] = 0x00 // "expand channels to BGRA, alpha = 0"
			}
		}
		return out, nil

	default:
		return nil, svga3d.Invalidf("cursor.ConvertXorMask", "unsupported xor-mask depth %d", depth)
	}
}

// ConvertAlphaCursor implements DEFINE_ALPHA_CURSOR (spec §4.5.4): the
// ARGB32 fast path. The AND mask is synthesized fully opaque (every bit
// clear); the XOR mask is the guest's ARGB32 buffer passed through
// verbatim — a little-endian 0xAARRGGBB uint32 is already laid out in
// memory as (B, G, R, A) bytes, which is exactly this module's BGRA8
// output convention.
func ConvertAlphaCursor(cx, cy uint32, argb []byte) (andMask, xorMask []byte, err error) {
	need := int(cx) * int(cy) * 4
	if len(argb) < need {
		return nil, nil, svga3d.Invalidf("cursor.ConvertAlphaCursor", "argb buffer needs %d bytes, have %d", need, len(argb))
	}
	andMask = make([]byte, int(AndMaskRowBytes(cx))*int(cy))
	xorMask = make([]byte, need)
	copy(xorMask, argb[:need])
	return andMask, xorMask, nil
}

// channelsAt decodes one pixel's (r, g, b) 8-bit channels from raw bytes
// at the given bit depth, used by ConvertAndMask's >=8bpp "nearly white"
// test.
func channelsAt(depth uint32, px []byte) (r, g, b uint8) {
	switch depth {
	case 15:
		v := uint16(px[0]) | uint16(px[1])<<8
		r = expand5(uint8(v>>10) & 0x1F)
		g = expand5(uint8(v>>5) & 0x1F)
		b = expand5(uint8(v) & 0x1F)
	case 16:
		v := uint16(px[0]) | uint16(px[1])<<8
		r = expand5(uint8(v>>11) & 0x1F)
		g = expand6(uint8(v>>5) & 0x3F)
		b = expand5(uint8(v) & 0x1F)
	case 24, 32:
		b, g, r = px[0], px[1], px[2]
	}
	return r, g, b
}

func expand5(v uint8) uint8 { return (v << 3) | (v >> 2) }
func expand6(v uint8) uint8 { return (v << 2) | (v >> 4) }

// channelSourceImage adapts a raw depth-specific pixel buffer to
// image.Image so x/image/draw can perform the channel-expanding copy into
// an *image.NRGBA (spec §4.5.4's "expand channels to BGRA" step for
// 15/16/24/32bpp XOR masks).
type channelSourceImage struct {
	depth    uint32
	rowBytes int
	w, h     int
	pix      []byte
}

func (s *channelSourceImage) ColorModel() color.Model { return color.NRGBAModel }
func (s *channelSourceImage) Bounds() image.Rectangle  { return image.Rect(0, 0, s.w, s.h) }

func (s *channelSourceImage) At(x, y int) color.Color {
	bytesPerPixel := int(s.depth+7) / 8
	off := y*s.rowBytes + x*bytesPerPixel
	if off < 0 || off+bytesPerPixel > len(s.pix) {
		return color.NRGBA{}
	}
	r, g, b := channelsAt(s.depth, s.pix[off:off+bytesPerPixel])
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}
