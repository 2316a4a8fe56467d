// Package cubefb converts an RGB565 shadow framebuffer into the packed
// YUY2 (YUV 4:2:2) format expected by the GameCube/Wii video hardware.
//
// # Overview
//
// The GameCube/Wii kernel framebuffer only accepts images in a packed
// 4:2:2 YUV format, while display servers and rasterizers produce RGB.
// cubefb keeps the rendered image in an off-screen RGB565 shadow buffer
// and, when regions of the screen change, converts exactly those regions
// into the device buffer. All per-pixel work is table lookups: three
// 64 KiB tables map every possible 16-bit RGB565 code to its Y, Cb and
// Cr values, so the hot path contains no multiplications and no
// floating point.
//
// # Quick Start
//
//	import "github.com/lucjon/cubefb"
//
//	// A 640x480 screen with the shared conversion tables.
//	scr := cubefb.NewScreen(640, 480)
//
//	// Render into the shadow buffer (it implements draw.Image).
//	sh := scr.Shadow()
//	draw.Draw(sh, sh.Bounds(), img, image.Point{}, draw.Src)
//
//	// Convert the changed region into the device buffer.
//	scr.Refresh(dst, sh.Pitch, []cubefb.Rect{{X1: 0, Y1: 0, X2: 640, Y2: 480}})
//
// # Architecture
//
// The library is organized into:
//   - Core: Tables (colorspace lookup), pair conversion, dirty-region blit
//   - Shadow: the RGB565 source buffer, usable as a draw.Image
//   - Hosts: fbdev (Linux framebuffer device), serialfb (serial frame
//     sink), preview (desktop window)
//
// # Pixel Formats
//
// The shadow buffer stores 5-6-5 RGB, two bytes per pixel, most
// significant byte first. The destination stores macropixels of four
// bytes covering two horizontal pixels: Y0, Cb, Y1, Cr. Both buffers
// use a row pitch rounded up to a four byte boundary.
//
// # Concurrency
//
// Conversion tables are immutable once built and safe to share between
// goroutines. A Screen is not safe for concurrent use; the host is
// expected to serialize redraw, blank and mode-change calls, matching
// the display server's single-threaded event model.
package cubefb
