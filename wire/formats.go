package wire

// SurfaceFormat is the wire-level SVGA3dSurfaceFormat enum (spec §3.4).
// The real protocol carries roughly 100 values; this is a representative
// subset covering every format family a SPEC_FULL.md component exercises
// (uncompressed color, depth/stencil, and the block-compressed BCn/DXT
// families) — the same deliberate scope reduction documented in DESIGN.md
// for the command id space. Unmodeled formats still decode as a plain
// uint32 on the wire; SurfaceFormat.BlockInfo falls back to a 1x1/4-byte
// guess rather than panicking.
type SurfaceFormat uint32

const (
	FormatInvalid SurfaceFormat = 0

	FormatX8R8G8B8 SurfaceFormat = 1
	FormatA8R8G8B8 SurfaceFormat = 2
	FormatR5G6B5   SurfaceFormat = 3
	FormatA1R5G5B5 SurfaceFormat = 5
	FormatA4R4G4B4 SurfaceFormat = 6

	FormatZ_D32     SurfaceFormat = 7
	FormatZ_D16      SurfaceFormat = 8
	FormatZ_D24S8    SurfaceFormat = 9
	FormatZ_D15S1    SurfaceFormat = 10

	FormatLuminance8       SurfaceFormat = 12
	FormatLuminance4Alpha4 SurfaceFormat = 13
	FormatLuminance16      SurfaceFormat = 14
	FormatLuminance8Alpha8 SurfaceFormat = 15

	FormatDXT1 SurfaceFormat = 16
	FormatDXT2 SurfaceFormat = 17
	FormatDXT3 SurfaceFormat = 18
	FormatDXT4 SurfaceFormat = 19
	FormatDXT5 SurfaceFormat = 20

	FormatBumpU8V8          SurfaceFormat = 21
	FormatBumpL6V5U5        SurfaceFormat = 22
	FormatBumpX8L8V8U8      SurfaceFormat = 23

	FormatA2R10G10B10 SurfaceFormat = 24

	FormatR8G8B8A8_UNORM SurfaceFormat = 70
	FormatB8G8R8A8_UNORM SurfaceFormat = 71
	FormatR16G16_FLOAT   SurfaceFormat = 72
	FormatR16G16B16A16_FLOAT SurfaceFormat = 73
	FormatR32G32B32A32_FLOAT SurfaceFormat = 74
	FormatR32_FLOAT      SurfaceFormat = 75
	FormatR8_UNORM       SurfaceFormat = 76
	FormatR8G8_UNORM     SurfaceFormat = 77
	FormatD32_FLOAT_S8X24_UINT SurfaceFormat = 78
	FormatD24_UNORM_S8_UINT    SurfaceFormat = 79

	FormatBC1_UNORM SurfaceFormat = 90
	FormatBC2_UNORM SurfaceFormat = 91
	FormatBC3_UNORM SurfaceFormat = 92
	FormatBC4_UNORM SurfaceFormat = 93
	FormatBC5_UNORM SurfaceFormat = 94
	FormatBC6H_UF16 SurfaceFormat = 95
	FormatBC7_UNORM SurfaceFormat = 96
)

// BlockInfo describes a surface format's compression block geometry and
// byte cost (spec §3.4 invariants: cb_block, cx_block, cy_block).
type BlockInfo struct {
	BlockBytes int // bytes per compression block (or per texel, when 1x1)
	BlockW     int
	BlockH     int
}

var blockInfoTable = map[SurfaceFormat]BlockInfo{
	FormatX8R8G8B8: {4, 1, 1},
	FormatA8R8G8B8: {4, 1, 1},
	FormatR5G6B5:   {2, 1, 1},
	FormatA1R5G5B5: {2, 1, 1},
	FormatA4R4G4B4: {2, 1, 1},

	FormatZ_D32:  {4, 1, 1},
	FormatZ_D16:  {2, 1, 1},
	FormatZ_D24S8: {4, 1, 1},
	FormatZ_D15S1: {2, 1, 1},

	FormatLuminance8:       {1, 1, 1},
	FormatLuminance4Alpha4: {1, 1, 1},
	FormatLuminance16:      {2, 1, 1},
	FormatLuminance8Alpha8: {2, 1, 1},

	FormatDXT1: {8, 4, 4},
	FormatDXT2: {16, 4, 4},
	FormatDXT3: {16, 4, 4},
	FormatDXT4: {16, 4, 4},
	FormatDXT5: {16, 4, 4},

	FormatBumpU8V8:     {2, 1, 1},
	FormatBumpL6V5U5:   {2, 1, 1},
	FormatBumpX8L8V8U8: {4, 1, 1},

	FormatA2R10G10B10: {4, 1, 1},

	FormatR8G8B8A8_UNORM:       {4, 1, 1},
	FormatB8G8R8A8_UNORM:       {4, 1, 1},
	FormatR16G16_FLOAT:         {4, 1, 1},
	FormatR16G16B16A16_FLOAT:   {8, 1, 1},
	FormatR32G32B32A32_FLOAT:   {16, 1, 1},
	FormatR32_FLOAT:            {4, 1, 1},
	FormatR8_UNORM:             {1, 1, 1},
	FormatR8G8_UNORM:           {2, 1, 1},
	FormatD32_FLOAT_S8X24_UINT: {8, 1, 1},
	FormatD24_UNORM_S8_UINT:    {4, 1, 1},

	FormatBC1_UNORM: {8, 4, 4},
	FormatBC2_UNORM: {16, 4, 4},
	FormatBC3_UNORM: {16, 4, 4},
	FormatBC4_UNORM: {8, 4, 4},
	FormatBC5_UNORM: {16, 4, 4},
	FormatBC6H_UF16: {16, 4, 4},
	FormatBC7_UNORM: {16, 4, 4},
}

// BlockInfo returns f's block geometry. Formats absent from the table
// (outside the representative subset this module models) fall back to a
// 4-byte, 1x1 "uncompressed word" guess, since the core only needs this
// value to compute pitches and must never panic on an unrecognized, but
// otherwise validly-ranged, guest-supplied format id.
func (f SurfaceFormat) BlockInfo() BlockInfo {
	if bi, ok := blockInfoTable[f]; ok {
		return bi
	}
	return BlockInfo{BlockBytes: 4, BlockW: 1, BlockH: 1}
}

// Known reports whether f has an explicit entry in the block info table.
func (f SurfaceFormat) Known() bool {
	_, ok := blockInfoTable[f]
	return ok
}
