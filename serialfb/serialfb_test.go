package serialfb

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/lucjon/cubefb"
)

// TestSinkBufferLayout verifies the sink allocates its frame with the
// shared pitch rule.
func TestSinkBufferLayout(t *testing.T) {
	s := NewSink(&bytes.Buffer{}, 3, 2)
	if s.Pitch() != cubefb.PitchFor(3) {
		t.Errorf("pitch = %d, want %d", s.Pitch(), cubefb.PitchFor(3))
	}
	if len(s.Buffer()) != s.Pitch()*2 {
		t.Errorf("buffer len = %d, want %d", len(s.Buffer()), s.Pitch()*2)
	}
}

// TestSinkPresentFraming verifies the wire format: magic, big-endian
// width and height, payload length, then the frame bytes.
func TestSinkPresentFraming(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf, 4, 1)
	copy(s.Buffer(), []byte{1, 2, 3, 4, 5, 6, 7, 8})

	if err := s.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	out := buf.Bytes()
	if len(out) != headerSize+len(s.Buffer()) {
		t.Fatalf("wrote %d bytes, want %d", len(out), headerSize+len(s.Buffer()))
	}
	if !bytes.Equal(out[:4], frameMagic[:]) {
		t.Errorf("magic = %q", out[:4])
	}
	if w := binary.BigEndian.Uint16(out[4:]); w != 4 {
		t.Errorf("width = %d, want 4", w)
	}
	if h := binary.BigEndian.Uint16(out[6:]); h != 1 {
		t.Errorf("height = %d, want 1", h)
	}
	if n := binary.BigEndian.Uint32(out[8:]); n != uint32(len(s.Buffer())) {
		t.Errorf("payload len = %d, want %d", n, len(s.Buffer()))
	}
	if !bytes.Equal(out[headerSize:], s.Buffer()) {
		t.Error("payload does not match frame buffer")
	}
}

// TestSinkPresentRefreshed verifies a Screen can refresh directly into
// the sink's buffer and the converted bytes go out on the wire.
func TestSinkPresentRefreshed(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf, 2, 1)

	scr := cubefb.NewScreen(2, 1)
	scr.Shadow().Fill(0xffff)
	scr.RefreshAll(s.Buffer(), s.Pitch())

	if err := s.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	payload := buf.Bytes()[headerSize:]
	want := scr.Tables().PairToYUY2(0xffff, 0xffff)
	if got := binary.BigEndian.Uint32(payload); got != want {
		t.Errorf("payload macropixel = %#08x, want %#08x", got, want)
	}
}

// TestSinkCloseWithoutPort verifies closing a writer-backed sink is a
// no-op.
func TestSinkCloseWithoutPort(t *testing.T) {
	s := NewSink(&bytes.Buffer{}, 2, 2)
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
