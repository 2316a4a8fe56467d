//go:build linux

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"

	"github.com/lucjon/cubefb"
	"github.com/lucjon/cubefb/fbdev"
)

// runFbdev drives a real framebuffer device. The device is forced into
// the 16-bpp mode, blanked on the way out, and refreshed with only the
// status rows each interval.
func runFbdev(scr *cubefb.Screen, path string, interval time.Duration) error {
	dev, err := fbdev.Open(path)
	if err != nil {
		return err
	}
	defer dev.Close()

	sh := scr.Shadow()
	if err := dev.SetMode(sh.Width, sh.Height); err != nil {
		return err
	}
	if w, h := dev.Size(); w != sh.Width || h != sh.Height {
		return fmt.Errorf("device mode %dx%d does not match screen %dx%d",
			w, h, sh.Width, sh.Height)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, unix.SIGINT, unix.SIGTERM)

	// Start from a clean device and a full first frame.
	dev.Blank()
	drawStatus(sh)
	scr.RefreshAll(dev.Buffer(), dev.Pitch())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			dev.Blank()
			return nil
		case <-ticker.C:
			rects := drawStatus(sh)
			scr.Refresh(dev.Buffer(), dev.Pitch(), rects)
		}
	}
}
