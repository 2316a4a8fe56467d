package cubefb

// ScreenOption configures a Screen during creation.
//
// Example:
//
//	// Default: shared tables, fresh shadow buffer.
//	scr := cubefb.NewScreen(640, 480)
//
//	// Private tables (dependency injection, e.g. for tests).
//	scr := cubefb.NewScreen(640, 480, cubefb.WithTables(cubefb.NewTables()))
type ScreenOption func(*screenOptions)

// screenOptions holds optional configuration for Screen creation.
type screenOptions struct {
	tables *Tables
	shadow *Shadow
}

// WithTables sets the conversion tables the screen uses instead of the
// process-wide shared set.
func WithTables(t *Tables) ScreenOption {
	return func(o *screenOptions) {
		o.tables = t
	}
}

// WithShadow adopts an existing shadow buffer instead of allocating a
// new one. The buffer dimensions take precedence over the width and
// height passed to NewScreen.
func WithShadow(sh *Shadow) ScreenOption {
	return func(o *screenOptions) {
		o.shadow = sh
	}
}
