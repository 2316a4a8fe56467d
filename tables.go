package cubefb

import "sync"

// RGB to YUV conversion constants. Coefficients are ITU-R BT.601 values
// in 16-bit fixed point; the offsets are the broadcast luma black level
// and chroma neutral point in 8-bit output units.
const (
	rgb2yuvShift = 16
	lumaOffset   = 16
	chromaOffset = 128

	lumaMin, lumaMax     = 16, 235
	chromaMin, chromaMax = 16, 240
)

// fix converts a BT.601 coefficient to 16.16 fixed point, truncating
// toward zero.
func fix(c float64) int32 { return int32(c * (1 << rgb2yuvShift)) }

// Tables maps every 16-bit RGB565 code to its 8-bit Y, Cb and Cr
// values. A Tables is immutable after construction and safe to share
// between any number of readers; building it twice yields bit-identical
// contents.
type Tables struct {
	Y [1 << 16]uint8
	U [1 << 16]uint8
	V [1 << 16]uint8
}

// NewTables builds the conversion tables. Pure arithmetic; it cannot
// fail. The three 64 KiB tables trade memory for a hot path with no
// multiplications and no floating point.
func NewTables() *Tables {
	// Per-channel partial sums so the 64 Ki loop below is three adds
	// per table entry. The offsets are folded into the green tables so
	// they are added exactly once per sum. The red contribution to V
	// shares the blue contribution to U: both coefficients are 0.500.
	var (
		rY, gY, bY [256]int32
		rU, gU, bU [256]int32
		gV, bV     [256]int32
	)
	rV := &bU

	yr, yg, yb := fix(0.299), fix(0.587), fix(0.114)
	ur, ug, ub := fix(-0.169), fix(-0.331), fix(0.500)
	vg, vb := fix(-0.419), fix(-0.081)

	for i := int32(0); i < 256; i++ {
		rY[i] = yr * i
		gY[i] = yg*i + lumaOffset<<rgb2yuvShift
		bY[i] = yb * i
		rU[i] = ur * i
		gU[i] = ug*i + chromaOffset<<rgb2yuvShift
		bU[i] = ub * i
		gV[i] = vg*i + chromaOffset<<rgb2yuvShift
		bV[i] = vb * i
	}

	t := new(Tables)
	for i := 0; i < 1<<16; i++ {
		r := expand5(uint8(i >> redShift & redMask))
		g := expand6(uint8(i >> greenShift & greenMask))
		b := expand5(uint8(i & blueMask))

		t.Y[i] = clampScaled(lumaMin, lumaMax, rY[r]+gY[g]+bY[b])
		t.U[i] = clampScaled(chromaMin, chromaMax, rU[r]+gU[g]+bU[b])
		t.V[i] = clampScaled(chromaMin, chromaMax, rV[r]+gV[g]+bV[b])
	}
	return t
}

// clampScaled shifts a 16.16 fixed-point sum back to 8-bit units and
// clamps it to [lo, hi].
func clampScaled(lo, hi, v int32) uint8 {
	v >>= rgb2yuvShift
	if v < lo {
		return uint8(lo)
	}
	if v > hi {
		return uint8(hi)
	}
	return uint8(v)
}

var (
	defaultTables     *Tables
	defaultTablesOnce sync.Once
)

// DefaultTables returns the process-wide shared tables, building them
// on first use. Screens created without WithTables use this set.
func DefaultTables() *Tables {
	defaultTablesOnce.Do(func() {
		defaultTables = NewTables()
	})
	return defaultTables
}
