package surface

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/svga3d/wire"
)

// gputypesFormat maps a subset of SVGA3dSurfaceFormat to the nearest
// gputypes.TextureFormat, for backends that prefer gogpu's shared format
// vocabulary (render.TextureDescriptor.Format in gogpu/gg) over this
// module's own wire enum. Formats with no close equivalent are omitted —
// callers fall back to gputypes.TextureFormatUndefined.
var gputypesFormat = map[wire.SurfaceFormat]gputypes.TextureFormat{
	wire.FormatA8R8G8B8:         gputypes.TextureFormatBGRA8Unorm,
	wire.FormatX8R8G8B8:         gputypes.TextureFormatBGRA8Unorm,
	wire.FormatB8G8R8A8_UNORM:   gputypes.TextureFormatBGRA8Unorm,
	wire.FormatR8G8B8A8_UNORM:   gputypes.TextureFormatRGBA8Unorm,
	wire.FormatR8_UNORM:         gputypes.TextureFormatR8Unorm,
	wire.FormatZ_D24S8:          gputypes.TextureFormatDepth24PlusStencil8,
	wire.FormatD24_UNORM_S8_UINT: gputypes.TextureFormatDepth24PlusStencil8,
}

// ToGPUTypesFormat returns the nearest gputypes.TextureFormat for f, or
// gputypes.TextureFormatUndefined if none is modeled.
func ToGPUTypesFormat(f wire.SurfaceFormat) gputypes.TextureFormat {
	if gt, ok := gputypesFormat[f]; ok {
		return gt
	}
	return gputypes.TextureFormatUndefined
}
