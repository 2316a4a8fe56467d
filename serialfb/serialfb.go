// Package serialfb streams converted YUY2 frames over a serial port,
// for external capture boxes and LCD bridges that speak a simple framed
// protocol. Each frame is a fixed 12-byte header followed by the raw
// macropixel payload.
package serialfb

import (
	"encoding/binary"
	"fmt"
	"io"

	"go.bug.st/serial"

	"github.com/lucjon/cubefb"
)

// frameMagic starts every frame on the wire.
var frameMagic = [4]byte{'C', 'F', 'B', '0'}

// headerSize is magic + width + height + payload length.
const headerSize = 12

// Sink is a destination buffer that can ship itself over a serial
// link. The buffer has the same pitch rule as the shadow buffer, so a
// Screen can refresh straight into it.
type Sink struct {
	w      io.Writer
	closer io.Closer

	width  int
	height int
	pitch  int
	frame  []byte
}

// Open opens a serial port at the given baud rate (8N1) and returns a
// sink for width x height frames.
func Open(device string, baudRate, width, height int) (*Sink, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("serialfb: open %s: %w", device, err)
	}
	cubefb.Logger().Info("serial sink opened",
		"device", device, "baud", baudRate, "width", width, "height", height)
	s := NewSink(port, width, height)
	s.closer = port
	return s, nil
}

// NewSink wraps any writer as a frame sink. Used by Open and directly
// in tests.
func NewSink(w io.Writer, width, height int) *Sink {
	pitch := cubefb.PitchFor(width)
	return &Sink{
		w:      w,
		width:  width,
		height: height,
		pitch:  pitch,
		frame:  make([]byte, pitch*height),
	}
}

// Buffer returns the destination frame memory the screen refreshes
// into.
func (s *Sink) Buffer() []byte { return s.frame }

// Pitch returns the frame row length in bytes.
func (s *Sink) Pitch() int { return s.pitch }

// Present writes the current frame to the port: header, then payload.
func (s *Sink) Present() error {
	var hdr [headerSize]byte
	copy(hdr[:4], frameMagic[:])
	binary.BigEndian.PutUint16(hdr[4:], uint16(s.width))
	binary.BigEndian.PutUint16(hdr[6:], uint16(s.height))
	binary.BigEndian.PutUint32(hdr[8:], uint32(len(s.frame)))

	if _, err := s.w.Write(hdr[:]); err != nil {
		return fmt.Errorf("serialfb: write header: %w", err)
	}
	n, err := s.w.Write(s.frame)
	if err != nil {
		return fmt.Errorf("serialfb: write frame: %w", err)
	}
	if n < len(s.frame) {
		cubefb.Logger().Warn("short frame write", "wrote", n, "want", len(s.frame))
		return fmt.Errorf("serialfb: short write: %d of %d bytes", n, len(s.frame))
	}
	return nil
}

// Close closes the underlying port, if the sink owns one.
func (s *Sink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
