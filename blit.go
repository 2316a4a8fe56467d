package cubefb

import "encoding/binary"

// Blit converts the listed regions of the shadow buffer into dst,
// which holds YUY2 macropixels at dstPitch bytes per row. Each
// rectangle is widened to 2-pixel alignment first; a rectangle whose
// widened width is still under one pixel pair converts nothing.
//
// Blit cannot fail: it performs no I/O and no allocation. Rectangle
// bounds must already be valid for both buffers; the host checks
// regions against the current mode before handing them over, and the
// loop does not re-check them.
func Blit(t *Tables, src *Shadow, dst []byte, dstPitch int, rects []Rect) {
	for _, r := range rects {
		r = r.alignPair()
		if r.Dx() < 2 {
			// Zero- or one-pixel-wide region: nothing forms a pair.
			continue
		}
		blitRect(t, src, dst, dstPitch, r)
	}
}

// blitRect walks one aligned rectangle row by row, pixel pair by pixel
// pair. Source and destination both advance two pixels (four bytes)
// per macropixel; only the representation changes.
func blitRect(t *Tables, src *Shadow, dst []byte, dstPitch int, r Rect) {
	width := r.Dx()
	so := src.PixOffset(r.X1, r.Y1)
	do := r.Y1*dstPitch + r.X1*BytesPerPixel
	srcSkip := src.Pitch - width*BytesPerPixel
	dstSkip := dstPitch - width*BytesPerPixel

	for y := r.Y1; y < r.Y2; y++ {
		for x := 0; x < width; x += 2 {
			a := binary.BigEndian.Uint16(src.Pix[so:])
			b := binary.BigEndian.Uint16(src.Pix[so+BytesPerPixel:])
			binary.BigEndian.PutUint32(dst[do:], t.PairToYUY2(a, b))
			so += 2 * BytesPerPixel
			do += 2 * BytesPerPixel
		}
		so += srcSkip
		do += dstSkip
	}
}
