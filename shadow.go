package cubefb

import (
	"encoding/binary"
	"image"
	"image/color"
)

// BytesPerPixel is the size of one shadow buffer pixel. Only the packed
// 16-bit 5-6-5 format is supported.
const BytesPerPixel = 2

// pitchAlign is the row alignment in bytes for both the shadow buffer
// and the device buffer.
const pitchAlign = 4

// PitchFor returns the row pitch in bytes for a given width: the pixel
// bytes rounded up to a four byte boundary.
func PitchFor(width int) int {
	return (width*BytesPerPixel + pitchAlign - 1) &^ (pitchAlign - 1)
}

// Shadow is the off-screen RGB565 buffer the host renders into. Pixels
// are stored most significant byte first. Shadow implements draw.Image,
// so anything that draws into an image (image/draw, font.Drawer) can
// target it directly.
//
// The buffer is owned by the core: it is allocated here and replaced
// wholesale on resize. Its size never changes while a refresh is
// reading it.
type Shadow struct {
	Pix    []byte
	Pitch  int
	Width  int
	Height int
}

// NewShadow allocates a zeroed (black) shadow buffer.
func NewShadow(width, height int) *Shadow {
	pitch := PitchFor(width)
	return &Shadow{
		Pix:    make([]byte, pitch*height),
		Pitch:  pitch,
		Width:  width,
		Height: height,
	}
}

// PixOffset returns the byte index of the pixel at (x, y).
func (s *Shadow) PixOffset(x, y int) int {
	return y*s.Pitch + x*BytesPerPixel
}

// SetRGB565 stores a raw 5-6-5 code at (x, y). Out-of-bounds
// coordinates are ignored.
func (s *Shadow) SetRGB565(x, y int, p uint16) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return
	}
	binary.BigEndian.PutUint16(s.Pix[s.PixOffset(x, y):], p)
}

// RGB565At returns the raw 5-6-5 code at (x, y), or 0 outside the
// buffer.
func (s *Shadow) RGB565At(x, y int) uint16 {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0
	}
	return binary.BigEndian.Uint16(s.Pix[s.PixOffset(x, y):])
}

// Fill sets every pixel to the given 5-6-5 code. Row padding bytes are
// left untouched.
func (s *Shadow) Fill(p uint16) {
	for y := 0; y < s.Height; y++ {
		row := s.Pix[y*s.Pitch:]
		for x := 0; x < s.Width; x++ {
			binary.BigEndian.PutUint16(row[x*BytesPerPixel:], p)
		}
	}
}

// ColorModel implements the image.Image interface.
func (s *Shadow) ColorModel() color.Model { return RGB565Model }

// Bounds implements the image.Image interface.
func (s *Shadow) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// At implements the image.Image interface. Channels are widened with
// the same replication expansion the conversion tables use.
func (s *Shadow) At(x, y int) color.Color {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return rgb565Color(0)
	}
	return rgb565Color(s.RGB565At(x, y))
}

// Set implements the draw.Image interface.
func (s *Shadow) Set(x, y int, c color.Color) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return
	}
	r, g, b, _ := c.RGBA()
	s.SetRGB565(x, y, PackRGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
}
