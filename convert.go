package cubefb

// Averaging masks for the 5-6-5 layout. avgDropMask clears, after each
// operand is shifted right by one, the bit that slid across a field
// boundary (bits 15, 10 and 4 of the shifted value). avgCarryMask marks
// the low bit of each field in the unshifted operands; where both
// pixels have it set, the halves each lost 0.5 and the true average
// needs the bit restored. Both constants are derived from the 5-6-5
// field positions and must be re-derived for any other layout.
const (
	avgDropMask  = 0x8410
	avgCarryMask = 0x0821
)

// BlackYUY2 is the macropixel for two black pixels: the raw Y=0,
// Cb=128, Y=0, Cr=128 encoding with neutral chroma and luma below the
// clamped table output.
const BlackYUY2 = 0x00800080

// avgRGB565 averages two 5-6-5 pixels per channel without unpacking
// them: halve each field in place, add, then restore the low bit lost
// by the halving wherever both operands had it set.
func avgRGB565(a, b uint16) uint16 {
	return (a>>1)&^avgDropMask + (b>>1)&^avgDropMask + a&b&avgCarryMask
}

// PairToYUY2 converts two horizontally adjacent RGB565 pixels into one
// packed YUY2 macropixel. The returned word has Y(a) in the most
// significant byte, then Cb, Y(b) and Cr; write it big-endian to
// preserve the device byte order. Every input pair is valid.
func (t *Tables) PairToYUY2(a, b uint16) uint32 {
	// Pure black dominates real screen content, skip the lookups.
	if a|b == 0 {
		return BlackYUY2
	}

	if a == b {
		// Identical pixels share their exact chroma, no averaging.
		y := uint32(t.Y[a])
		return y<<24 | uint32(t.U[a])<<16 | y<<8 | uint32(t.V[a])
	}

	// Chroma comes from a synthetic midpoint pixel rather than from
	// averaging the two chroma lookups: one extra add beats two more
	// table reads, and the tables already fold in the offsets.
	avg := avgRGB565(a, b)
	return uint32(t.Y[a])<<24 | uint32(t.U[avg])<<16 |
		uint32(t.Y[b])<<8 | uint32(t.V[avg])
}
