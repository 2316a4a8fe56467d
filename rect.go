package cubefb

// Rect is an axis-aligned dirty region in pixel coordinates. X2 and Y2
// are exclusive, matching the display server's box convention: the
// rectangle covers columns [X1, X2) and rows [Y1, Y2). Rectangles may
// overlap; conversion is idempotent, so overlapping pixels are simply
// converted more than once.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Dx returns the rectangle width in pixels.
func (r Rect) Dx() int { return r.X2 - r.X1 }

// Dy returns the rectangle height in pixels.
func (r Rect) Dy() int { return r.Y2 - r.Y1 }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.X1 >= r.X2 || r.Y1 >= r.Y2 }

// alignPair expands the rectangle's horizontal bounds to the 2-pixel
// alignment the converter needs: X1 rounds down to even, X2 rounds up.
func (r Rect) alignPair() Rect {
	r.X1 &^= 1
	r.X2 = (r.X2 + 1) &^ 1
	return r
}

// FullRect returns the rectangle covering an entire width x height
// screen.
func FullRect(width, height int) Rect {
	return Rect{X2: width, Y2: height}
}
