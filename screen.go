package cubefb

// Screen holds the per-screen conversion state: the shadow buffer, the
// lookup tables and the blank flag. It replaces the driver-private
// record the display server threads through its calls; the host owns
// the Screen and passes destination memory into each refresh instead
// of the core holding a device mapping.
//
// A Screen is single-threaded by contract: redraw, blank and resize
// are mutually exclusive events in the host's own design.
type Screen struct {
	shadow  *Shadow
	tables  *Tables
	blanked bool
}

// NewScreen creates a screen with a freshly allocated shadow buffer.
// Without options it shares the process-wide conversion tables.
func NewScreen(width, height int, opts ...ScreenOption) *Screen {
	var o screenOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.tables == nil {
		o.tables = DefaultTables()
	}
	if o.shadow == nil {
		o.shadow = NewShadow(width, height)
	}
	return &Screen{shadow: o.shadow, tables: o.tables}
}

// Shadow returns the buffer the host renders into.
func (s *Screen) Shadow() *Shadow { return s.shadow }

// Tables returns the conversion tables in use.
func (s *Screen) Tables() *Tables { return s.tables }

// Refresh converts the listed shadow buffer regions into dst. It is a
// no-op while the screen is blanked. Destination rows are dstPitch
// bytes apart; dst must be large enough for every rectangle, which the
// host guarantees by validating regions against the current mode.
func (s *Screen) Refresh(dst []byte, dstPitch int, rects []Rect) {
	if s.blanked {
		return
	}
	logger().Debug("refresh", "rects", len(rects))
	Blit(s.tables, s.shadow, dst, dstPitch, rects)
}

// RefreshAll converts the whole screen, as after an unblank or a mode
// switch.
func (s *Screen) RefreshAll(dst []byte, dstPitch int) {
	s.Refresh(dst, dstPitch, []Rect{FullRect(s.shadow.Width, s.shadow.Height)})
}

// SetBlanked sets the power-management blank flag. While blanked,
// Refresh converts nothing; on unblank the host is expected to follow
// up with a full-screen refresh.
func (s *Screen) SetBlanked(blanked bool) {
	s.blanked = blanked
}

// Blanked reports the blank flag.
func (s *Screen) Blanked() bool { return s.blanked }

// Resize replaces the shadow buffer for a new mode. Previous contents
// are discarded; the conversion tables are unaffected, they do not
// depend on screen size.
func (s *Screen) Resize(width, height int) {
	s.shadow = NewShadow(width, height)
	logger().Info("shadow buffer resized",
		"width", width, "height", height, "pitch", s.shadow.Pitch)
}
