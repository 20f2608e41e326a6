package cursor

import "testing"

// TestConvertAndMask1bpp exercises spec §8 seed scenario #5: a 2x2 cursor
// whose 1bpp AND mask rows are dword-aligned (4 bytes) but only the first
// byte of each row carries real bits for a 2-pixel-wide cursor.
func TestConvertAndMask1bpp(t *testing.T) {
	src := []byte{
		0x80, 0x00, 0x00, 0x00, // row 0: 0b10000000
		0x40, 0x00, 0x00, 0x00, // row 1: 0b01000000
	}
	out, err := ConvertAndMask(2, 2, 1, src)
	if err != nil {
		t.Fatalf("ConvertAndMask: %v", err)
	}
	want := []byte{0b10000000, 0b01000000}
	if len(out) != len(want) || out[0] != want[0] || out[1] != want[1] {
		t.Fatalf("ConvertAndMask = %08b, want %08b", out, want)
	}
}

// TestConvertXorMask1bpp exercises spec §8 seed scenario #5's XOR half:
// four set bits should all become 0x00FFFFFF pixels.
func TestConvertXorMask1bpp(t *testing.T) {
	src := []byte{
		0xC0, 0x00, 0x00, 0x00, // row 0: both bits set
		0xC0, 0x00, 0x00, 0x00, // row 1: both bits set
	}
	out, err := ConvertXorMask(2, 2, 1, src, nil)
	if err != nil {
		t.Fatalf("ConvertXorMask: %v", err)
	}
	if len(out) != 16 {
		t.Fatalf("len(out) = %d, want 16", len(out))
	}
	for i := 0; i < 4; i++ {
		px := out[i*4 : i*4+4]
		want := [4]byte{0xFF, 0xFF, 0xFF, 0x00}
		if px[0] != want[0] || px[1] != want[1] || px[2] != want[2] || px[3] != want[3] {
			t.Errorf("pixel %d = %v, want %v", i, px, want)
		}
	}
}

func TestConvertXorMaskZeroBit(t *testing.T) {
	src := []byte{0x00, 0x00, 0x00, 0x00}
	out, err := ConvertXorMask(1, 1, 1, src, nil)
	if err != nil {
		t.Fatalf("ConvertXorMask: %v", err)
	}
	for _, b := range out {
		if b != 0 {
			t.Fatalf("expected all-zero transparent pixel, got %v", out)
		}
	}
}

func TestConvertAndMaskNearWhiteTransparent(t *testing.T) {
	// 32bpp BGRA: a near-white pixel (all channels > 0xFC) and a mid-gray one.
	src := []byte{
		0xFE, 0xFE, 0xFE, 0x00, // near-white -> AND bit set
		0x80, 0x80, 0x80, 0x00, // mid-gray -> AND bit clear
	}
	out, err := ConvertAndMask(2, 1, 32, src)
	if err != nil {
		t.Fatalf("ConvertAndMask: %v", err)
	}
	if out[0] != 0b10000000 {
		t.Fatalf("ConvertAndMask = %08b, want 10000000", out[0])
	}
}

func TestConvertXorMaskPalette(t *testing.T) {
	palette := []byte{
		0x11, 0x22, 0x33, 0x00, // index 0
		0x44, 0x55, 0x66, 0x00, // index 1
	}
	out, err := ConvertXorMask(2, 1, 8, []byte{1, 0}, palette)
	if err != nil {
		t.Fatalf("ConvertXorMask: %v", err)
	}
	if out[0] != 0x44 || out[4] != 0x11 {
		t.Fatalf("unexpected palette lookup result: %v", out)
	}
}
