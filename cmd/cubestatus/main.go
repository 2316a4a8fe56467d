// Command cubestatus renders a live system status panel through the
// cubefb conversion pipeline: text is drawn into the RGB565 shadow
// buffer, only the changed rows are converted to YUY2, and the result
// goes to a framebuffer device, a serial sink, a preview window or a
// raw file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lucjon/cubefb"
	"github.com/lucjon/cubefb/preview"
	"github.com/lucjon/cubefb/serialfb"
)

func main() {
	var (
		width    = flag.Int("width", 640, "screen width in pixels")
		height   = flag.Int("height", 480, "screen height in pixels")
		out      = flag.String("out", "preview", "output: preview, fbdev, serial or file")
		fbPath   = flag.String("fb", "/dev/fb0", "framebuffer device for -out=fbdev")
		port     = flag.String("serial", "/dev/ttyS1", "serial device for -out=serial")
		baud     = flag.Int("baud", 115200, "baud rate for -out=serial")
		file     = flag.String("file", "status.yuv", "output path for -out=file (single frame)")
		interval = flag.Duration("interval", time.Second, "status refresh interval")
		verbose  = flag.Bool("v", false, "log pipeline events to stderr")
	)
	flag.Parse()

	if *verbose {
		cubefb.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	scr := cubefb.NewScreen(*width, *height)

	var err error
	switch *out {
	case "preview":
		err = runPreview(scr, *interval)
	case "fbdev":
		err = runFbdev(scr, *fbPath, *interval)
	case "serial":
		err = runSerial(scr, *port, *baud, *interval)
	case "file":
		err = runFile(scr, *file)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("cubestatus: %v", err)
	}
}

// runPreview shows the converted output in a desktop window, redrawing
// the status block once per interval.
func runPreview(scr *cubefb.Screen, interval time.Duration) error {
	var last time.Time
	return preview.Run(scr, "cubestatus", func(s *cubefb.Screen) []cubefb.Rect {
		if time.Since(last) < interval {
			return nil
		}
		last = time.Now()
		return drawStatus(s.Shadow())
	})
}

// runSerial ships a frame over the serial link once per interval.
func runSerial(scr *cubefb.Screen, device string, baud int, interval time.Duration) error {
	sink, err := serialfb.Open(device, baud, scr.Shadow().Width, scr.Shadow().Height)
	if err != nil {
		return err
	}
	defer sink.Close()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		rects := drawStatus(scr.Shadow())
		scr.Refresh(sink.Buffer(), sink.Pitch(), rects)
		if err := sink.Present(); err != nil {
			return err
		}
	}
	return nil
}

// runFile converts a single frame and writes the raw YUY2 bytes, handy
// for inspecting the exact device payload.
func runFile(scr *cubefb.Screen, path string) error {
	sh := scr.Shadow()
	drawStatus(sh)

	dst := make([]byte, sh.Pitch*sh.Height)
	scr.RefreshAll(dst, sh.Pitch)

	if err := os.WriteFile(path, dst, 0o644); err != nil {
		return err
	}
	log.Printf("wrote %dx%d YUY2 frame to %s (pitch %d)", sh.Width, sh.Height, path, sh.Pitch)
	return nil
}

// statusFace is the fixed 7x13 bitmap font used for the panel.
var statusFace = basicfont.Face7x13

const (
	lineHeight = 16
	textMargin = 8
)

// drawStatus repaints the status block in the top-left corner of the
// shadow buffer and returns the dirty region.
func drawStatus(sh *cubefb.Shadow) []cubefb.Rect {
	lines := statusLines()

	bandHeight := lineHeight*len(lines) + textMargin
	if bandHeight > sh.Height {
		bandHeight = sh.Height
	}
	band := image.Rect(0, 0, sh.Width, bandHeight)
	bg := image.NewUniform(color.RGBA{0, 0, 0x40, 0xff})
	draw.Draw(sh, band, bg, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  sh,
		Src:  image.White,
		Face: statusFace,
	}
	for i, line := range lines {
		d.Dot = fixed.P(textMargin, lineHeight*(i+1))
		d.DrawString(line)
	}

	return []cubefb.Rect{{X1: 0, Y1: 0, X2: sh.Width, Y2: bandHeight}}
}

// statusLines gathers the panel contents. Probes that fail are simply
// omitted; a status display should keep running on partial data.
func statusLines() []string {
	lines := []string{time.Now().Format("2006-01-02 15:04:05")}

	if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
		lines = append(lines, fmt.Sprintf("CPU: %5.1f%%", pct[0]))
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		lines = append(lines, fmt.Sprintf("RAM: %d/%d MB used",
			vm.Used>>20, vm.Total>>20))
	}
	if up, err := host.Uptime(); err == nil {
		lines = append(lines, fmt.Sprintf("UPT: %s",
			(time.Duration(up) * time.Second).String()))
	}
	return lines
}
