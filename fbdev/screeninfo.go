// Package fbdev drives a Linux framebuffer device as the destination
// for converted YUY2 frames. It owns everything the conversion core
// must not: opening /dev/fbN, validating the hardware, mapping device
// memory and forcing the single supported 16-bpp mode. All failures
// here are explicit initialization errors; once a Device is mapped,
// refreshing through it cannot fail.
package fbdev

import "errors"

// <linux/fb.h> ioctl numbers. 0x46 is 'F'.
const (
	fbioGetVScreeninfo = 0x4600
	fbioPutVScreeninfo = 0x4601
	fbioGetFScreeninfo = 0x4602
)

// <linux/fb.h> framebuffer type and visual values accepted by this
// driver.
const (
	fbTypePackedPixels = 0
	fbVisualTruecolor  = 2
)

// ErrUnsupported reports console hardware that is not a packed-pixel
// truecolor framebuffer.
var ErrUnsupported = errors.New("fbdev: unsupported console hardware")

// Bitfield is <linux/fb.h> struct fb_bitfield.
type Bitfield struct {
	Offset   uint32
	Length   uint32
	MSBRight uint32
}

// FixScreeninfo is <linux/fb.h> struct fb_fix_screeninfo: the fixed
// properties of the screen.
type FixScreeninfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	_            [2]uint16
}

// VarScreeninfo is <linux/fb.h> struct fb_var_screeninfo: the variable
// properties of the screen.
type VarScreeninfo struct {
	XRes         uint32
	YRes         uint32
	XResVirtual  uint32
	YResVirtual  uint32
	XOffset      uint32
	YOffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          Bitfield
	Green        Bitfield
	Blue         Bitfield
	Transp       Bitfield
	Nonstd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	Pixclock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HsyncLen     uint32
	VsyncLen     uint32
	Sync         uint32
	Vmode        uint32
	Rotate       uint32
	Colorspace   uint32
	_            [4]uint32
}

// fbActivateNow is the Activate value applying mode changes
// immediately.
const fbActivateNow = 0

// setMode16 fills in the fixed 16-bpp packed mode this driver supports.
// The channel bitfields are zeroed; the kernel driver reports the
// actual layout back.
func (v *VarScreeninfo) setMode16(width, height int) {
	v.Activate = fbActivateNow
	v.AccelFlags = 0
	v.BitsPerPixel = 16
	v.XRes = uint32(width)
	v.XResVirtual = uint32(width)
	v.YRes = uint32(height)
	v.YResVirtual = uint32(height)
	v.XOffset = 0
	v.YOffset = 0
	v.Red = Bitfield{}
	v.Green = Bitfield{}
	v.Blue = Bitfield{}
	v.Transp = Bitfield{}
}

// checkHardware rejects framebuffers this driver cannot feed: anything
// that is not packed-pixel truecolor.
func checkHardware(fix *FixScreeninfo) error {
	if fix.Type != fbTypePackedPixels || fix.Visual != fbVisualTruecolor {
		return ErrUnsupported
	}
	return nil
}

// pageOffset returns the distance from the framebuffer's physical start
// address to its page boundary. Some kernels (notably older PPC ones)
// hand out mappings that begin at the page, not at the buffer.
func pageOffset(smemStart uintptr, pageSize int) int {
	return int(smemStart & uintptr(pageSize-1))
}
