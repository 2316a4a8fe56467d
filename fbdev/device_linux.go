//go:build linux

package fbdev

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/lucjon/cubefb"
)

// Device is an open, memory-mapped framebuffer. The mapping is owned by
// the kernel; Device only borrows it and hands the pixel region to the
// conversion core during refresh calls.
type Device struct {
	fd     int
	mmap   []byte
	offset int
	fix    FixScreeninfo
	vinfo  VarScreeninfo
}

// Open opens a framebuffer device (typically "/dev/fb0"), validates the
// hardware and maps its memory.
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("fbdev: open %s: %w", path, err)
	}
	d := &Device{fd: fd}

	if err := d.ioctl(fbioGetFScreeninfo, unsafe.Pointer(&d.fix)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("fbdev: FBIOGET_FSCREENINFO: %w", err)
	}
	if err := checkHardware(&d.fix); err != nil {
		unix.Close(fd)
		return nil, err
	}
	if err := d.ioctl(fbioGetVScreeninfo, unsafe.Pointer(&d.vinfo)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("fbdev: FBIOGET_VSCREENINFO: %w", err)
	}

	// Map from the page boundary and remember where the pixels start;
	// some kernels refuse mappings that do not begin on a page.
	d.offset = pageOffset(d.fix.SmemStart, os.Getpagesize())
	d.mmap, err = unix.Mmap(fd, 0, int(d.fix.SmemLen)+d.offset,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("fbdev: mmap: %w", err)
	}

	cubefb.Logger().Info("framebuffer mapped",
		"path", path, "len", d.fix.SmemLen, "pitch", d.fix.LineLength)
	return d, nil
}

// SetMode forces the 16-bpp packed mode at the given resolution and
// re-reads the resulting line length. The kernel may round; callers
// should check Size afterwards.
func (d *Device) SetMode(width, height int) error {
	d.vinfo.setMode16(width, height)
	if err := d.ioctl(fbioPutVScreeninfo, unsafe.Pointer(&d.vinfo)); err != nil {
		return fmt.Errorf("fbdev: FBIOPUT_VSCREENINFO: %w", err)
	}
	if err := d.ioctl(fbioGetVScreeninfo, unsafe.Pointer(&d.vinfo)); err != nil {
		return fmt.Errorf("fbdev: FBIOGET_VSCREENINFO: %w", err)
	}
	if err := d.ioctl(fbioGetFScreeninfo, unsafe.Pointer(&d.fix)); err != nil {
		return fmt.Errorf("fbdev: FBIOGET_FSCREENINFO: %w", err)
	}
	cubefb.Logger().Info("mode set",
		"width", d.vinfo.XRes, "height", d.vinfo.YRes,
		"bpp", d.vinfo.BitsPerPixel, "pitch", d.fix.LineLength)
	return nil
}

// Buffer returns the device pixel memory, starting at the first pixel.
func (d *Device) Buffer() []byte {
	return d.mmap[d.offset:]
}

// Pitch returns the device row length in bytes.
func (d *Device) Pitch() int {
	return int(d.fix.LineLength)
}

// Size returns the current visible resolution.
func (d *Device) Size() (width, height int) {
	return int(d.vinfo.XRes), int(d.vinfo.YRes)
}

// Blank zero-fills the device memory, the hardware's black. Used on
// power-management blanking and on restore before handing the console
// back.
func (d *Device) Blank() {
	buf := d.Buffer()
	for i := range buf {
		buf[i] = 0
	}
}

// Close unmaps the device memory and closes the file descriptor.
func (d *Device) Close() error {
	var firstErr error
	if d.mmap != nil {
		if err := unix.Munmap(d.mmap); err != nil {
			firstErr = fmt.Errorf("fbdev: munmap: %w", err)
			cubefb.Logger().Warn("munmap failed", "err", err)
		}
		d.mmap = nil
	}
	if d.fd >= 0 {
		if err := unix.Close(d.fd); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("fbdev: close: %w", err)
		}
		d.fd = -1
	}
	return firstErr
}

func (d *Device) ioctl(req uintptr, arg unsafe.Pointer) error {
	_, _, eno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, uintptr(arg))
	if eno != 0 {
		return eno
	}
	return nil
}
