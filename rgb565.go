package cubefb

import "image/color"

// RGB565 field layout. Red occupies the top five bits, green the middle
// six, blue the bottom five.
const (
	redShift   = 11
	greenShift = 5

	redMask   = 0x1f
	greenMask = 0x3f
	blueMask  = 0x1f
)

// PackRGB565 packs 8-bit channel values into a 16-bit 5-6-5 code,
// truncating each channel to its field width.
func PackRGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<redShift | uint16(g>>2)<<greenShift | uint16(b>>3)
}

// expand5 widens a 5-bit channel to 8 bits by bit replication:
// (c << 3) | (c >> 2). This is deliberately the fast approximation, not
// the exact c*255/31 scaling; the conversion tables are defined in terms
// of it, so changing it changes every table entry.
func expand5(c uint8) uint8 { return c<<3 | c>>2 }

// expand6 widens a 6-bit channel to 8 bits by bit replication.
func expand6(c uint8) uint8 { return c<<2 | c>>4 }

// UnpackRGB565 splits a 16-bit 5-6-5 code into 8-bit channels using the
// same replication expansion the table builder uses.
func UnpackRGB565(p uint16) (r, g, b uint8) {
	r = expand5(uint8(p >> redShift & redMask))
	g = expand6(uint8(p >> greenShift & greenMask))
	b = expand5(uint8(p & blueMask))
	return
}

// rgb565Color is the color.Color of one shadow buffer pixel.
type rgb565Color uint16

func (c rgb565Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := UnpackRGB565(uint16(c))
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xffff
}

// RGB565Model converts any color to the 5-6-5 shadow buffer format.
var RGB565Model color.Model = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(rgb565Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return rgb565Color(PackRGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
})
