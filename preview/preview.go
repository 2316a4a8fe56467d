// Package preview shows the converted YUY2 output in a desktop window,
// so the pipeline can be inspected without GameCube/Wii hardware. The
// window owns a destination buffer in the device format and decodes it
// back to RGB each frame; what appears on screen is what the hardware
// would receive, artifacts of the chroma averaging included.
package preview

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lucjon/cubefb"
)

// StepFunc runs once per tick. It draws into the screen's shadow buffer
// and returns the regions it changed; returning nil leaves the
// destination as-is for that tick.
type StepFunc func(scr *cubefb.Screen) []cubefb.Rect

// Run opens a window for the given screen and blocks until it closes.
// The step callback and all refreshes run on the window's single
// render goroutine.
func Run(scr *cubefb.Screen, title string, step StepFunc) error {
	sh := scr.Shadow()
	w := &window{
		scr:   scr,
		step:  step,
		pitch: sh.Pitch,
		dst:   make([]byte, sh.Pitch*sh.Height),
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(sh.Width, sh.Height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(w)
}

type window struct {
	scr   *cubefb.Screen
	step  StepFunc
	dst   []byte
	pitch int

	img   *image.RGBA
	fbImg *ebiten.Image
}

func (w *window) Update() error {
	if w.step == nil {
		return nil
	}
	rects := w.step(w.scr)
	// The step may have resized the screen; the destination must match
	// the new mode before anything refreshes into it.
	w.syncDst()
	if len(rects) > 0 {
		w.scr.Refresh(w.dst, w.pitch, rects)
	}
	return nil
}

// syncDst reallocates the destination buffer after a mode change.
func (w *window) syncDst() {
	sh := w.scr.Shadow()
	if w.pitch == sh.Pitch && len(w.dst) == sh.Pitch*sh.Height {
		return
	}
	w.pitch = sh.Pitch
	w.dst = make([]byte, sh.Pitch*sh.Height)
}

func (w *window) Draw(screen *ebiten.Image) {
	sh := w.scr.Shadow()
	w.syncDst()
	if w.img == nil || w.img.Bounds().Dx() != sh.Width || w.img.Bounds().Dy() != sh.Height {
		w.img = image.NewRGBA(image.Rect(0, 0, sh.Width, sh.Height))
		if w.fbImg != nil {
			w.fbImg.Deallocate()
		}
		w.fbImg = ebiten.NewImage(sh.Width, sh.Height)
	}

	decodeYUY2(w.img.Pix, w.dst, sh.Width, sh.Height, w.pitch)
	w.fbImg.WritePixels(w.img.Pix)
	screen.DrawImage(w.fbImg, nil)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	sh := w.scr.Shadow()
	return sh.Width, sh.Height
}

// decodeYUY2 converts packed YUY2 rows into RGBA using the integer
// BT.601 inverse transform. Width must be even, matching the blitter's
// output alignment.
func decodeYUY2(rgba, src []byte, width, height, pitch int) {
	for y := 0; y < height; y++ {
		row := src[y*pitch:]
		out := rgba[y*width*4:]
		for x := 0; x < width; x += 2 {
			y0 := int(row[x*2+0])
			cb := int(row[x*2+1])
			y1 := int(row[x*2+2])
			cr := int(row[x*2+3])

			writeRGB(out[x*4:], y0, cb, cr)
			writeRGB(out[x*4+4:], y1, cb, cr)
		}
	}
}

// writeRGB expands one luma sample and the shared chroma pair into an
// opaque RGBA pixel.
func writeRGB(out []byte, y, cb, cr int) {
	c := y - 16
	if c < 0 {
		c = 0
	}
	d := cb - 128
	e := cr - 128

	r := (298*c + 409*e + 128) >> 8
	g := (298*c - 100*d - 208*e + 128) >> 8
	b := (298*c + 516*d + 128) >> 8

	out[0] = clampByte(r)
	out[1] = clampByte(g)
	out[2] = clampByte(b)
	out[3] = 0xff
}

func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
