package fbdev

import (
	"errors"
	"testing"
)

// TestSetMode16 verifies the forced mode parameters match the single
// supported configuration: 16 bpp, no panning, no acceleration, kernel
// chooses the channel layout.
func TestSetMode16(t *testing.T) {
	v := VarScreeninfo{
		BitsPerPixel: 32,
		XOffset:      4,
		YOffset:      8,
		AccelFlags:   1,
		Red:          Bitfield{Offset: 16, Length: 8},
	}
	v.setMode16(640, 480)

	if v.BitsPerPixel != 16 {
		t.Errorf("BitsPerPixel = %d, want 16", v.BitsPerPixel)
	}
	if v.XRes != 640 || v.YRes != 480 || v.XResVirtual != 640 || v.YResVirtual != 480 {
		t.Errorf("resolution = %dx%d (virtual %dx%d)",
			v.XRes, v.YRes, v.XResVirtual, v.YResVirtual)
	}
	if v.XOffset != 0 || v.YOffset != 0 {
		t.Errorf("offsets not cleared: %d,%d", v.XOffset, v.YOffset)
	}
	if v.AccelFlags != 0 {
		t.Error("AccelFlags not cleared")
	}
	if v.Red != (Bitfield{}) {
		t.Error("channel bitfields not cleared")
	}
	if v.Activate != fbActivateNow {
		t.Errorf("Activate = %d, want %d", v.Activate, fbActivateNow)
	}
}

// TestCheckHardware verifies only packed-pixel truecolor hardware is
// accepted.
func TestCheckHardware(t *testing.T) {
	tests := []struct {
		name    string
		fix     FixScreeninfo
		wantErr bool
	}{
		{"packed truecolor", FixScreeninfo{Type: fbTypePackedPixels, Visual: fbVisualTruecolor}, false},
		{"planar", FixScreeninfo{Type: 1, Visual: fbVisualTruecolor}, true},
		{"pseudocolor", FixScreeninfo{Type: fbTypePackedPixels, Visual: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkHardware(&tt.fix)
			if tt.wantErr && !errors.Is(err, ErrUnsupported) {
				t.Errorf("err = %v, want ErrUnsupported", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// TestPageOffset verifies the start-of-page compensation.
func TestPageOffset(t *testing.T) {
	tests := []struct {
		start    uintptr
		pageSize int
		want     int
	}{
		{0x10000000, 4096, 0},
		{0x10000800, 4096, 0x800},
		{0x10000fff, 4096, 0xfff},
		{0x12345000, 65536, 0x5000},
	}
	for _, tt := range tests {
		if got := pageOffset(tt.start, tt.pageSize); got != tt.want {
			t.Errorf("pageOffset(%#x, %d) = %#x, want %#x",
				tt.start, tt.pageSize, got, tt.want)
		}
	}
}
