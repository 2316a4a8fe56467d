package cubefb

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

// TestPitchFor verifies the 4-byte row alignment rule.
func TestPitchFor(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{1, 4},
		{2, 4},
		{3, 8},
		{4, 8},
		{639, 1280},
		{640, 1280},
		{641, 1284},
	}
	for _, tt := range tests {
		if got := PitchFor(tt.width); got != tt.want {
			t.Errorf("PitchFor(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

// TestShadowByteOrder verifies pixels are stored most significant byte
// first.
func TestShadowByteOrder(t *testing.T) {
	sh := NewShadow(2, 1)
	sh.SetRGB565(0, 0, 0xf81f)
	if sh.Pix[0] != 0xf8 || sh.Pix[1] != 0x1f {
		t.Fatalf("pixel bytes = %#02x %#02x, want f8 1f", sh.Pix[0], sh.Pix[1])
	}
	if got := sh.RGB565At(0, 0); got != 0xf81f {
		t.Fatalf("RGB565At = %#04x, want f81f", got)
	}
}

// TestShadowOutOfBounds verifies out-of-range accesses are ignored
// rather than panicking.
func TestShadowOutOfBounds(t *testing.T) {
	sh := NewShadow(4, 4)
	sh.SetRGB565(-1, 0, 0xffff)
	sh.SetRGB565(4, 0, 0xffff)
	sh.SetRGB565(0, -1, 0xffff)
	sh.SetRGB565(0, 4, 0xffff)
	for _, b := range sh.Pix {
		if b != 0 {
			t.Fatal("out-of-bounds write modified the buffer")
		}
	}
	if got := sh.RGB565At(100, 100); got != 0 {
		t.Fatalf("out-of-bounds read = %#04x, want 0", got)
	}
}

// TestShadowAtReplication verifies At widens channels with the same
// replication expansion the table builder uses.
func TestShadowAtReplication(t *testing.T) {
	sh := NewShadow(1, 1)
	sh.SetRGB565(0, 0, PackRGB565(132, 130, 132)) // fields r=16 g=32 b=16

	r, g, b, a := sh.At(0, 0).RGBA()
	// expand5(16) = 132, expand6(32) = 130, widened to 16 bits by
	// another replication.
	if r>>8 != 132 || g>>8 != 130 || b>>8 != 132 || a != 0xffff {
		t.Fatalf("At = (%d, %d, %d, %d), want (132, 130, 132, 255) in 8-bit",
			r>>8, g>>8, b>>8, a>>8)
	}
}

// TestShadowDrawImage verifies the shadow buffer can be the target of
// image/draw operations.
func TestShadowDrawImage(t *testing.T) {
	sh := NewShadow(4, 2)
	white := image.NewUniform(color.White)
	draw.Draw(sh, image.Rect(1, 0, 3, 2), white, image.Point{}, draw.Src)

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := uint16(0)
			if x >= 1 && x < 3 {
				want = 0xffff
			}
			if got := sh.RGB565At(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}
}

// TestShadowFill verifies Fill writes every pixel and nothing else.
func TestShadowFill(t *testing.T) {
	sh := NewShadow(3, 2) // pitch 8, two padding bytes per row
	sh.Fill(0x1234)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := sh.RGB565At(x, y); got != 0x1234 {
				t.Errorf("pixel (%d,%d) = %#04x, want 1234", x, y, got)
			}
		}
		for i := 6; i < 8; i++ {
			if sh.Pix[y*sh.Pitch+i] != 0 {
				t.Errorf("row %d padding modified", y)
			}
		}
	}
}

// TestPackUnpackRGB565 verifies packing truncates channels and
// unpacking replicates them.
func TestPackUnpackRGB565(t *testing.T) {
	if got := PackRGB565(255, 255, 255); got != 0xffff {
		t.Errorf("PackRGB565(white) = %#04x, want ffff", got)
	}
	if got := PackRGB565(0, 0, 0); got != 0 {
		t.Errorf("PackRGB565(black) = %#04x, want 0", got)
	}
	r, g, b := UnpackRGB565(0xffff)
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("UnpackRGB565(ffff) = (%d, %d, %d), want (255, 255, 255)", r, g, b)
	}
}
