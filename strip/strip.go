package strip

import (
	"fmt"

	"github.com/coreman2200/microstrip/chip"
	"github.com/coreman2200/microstrip/pixel"
	"github.com/coreman2200/microstrip/tx"
)

// Strip is the 1D controller: it owns the pixel buffer (plus the parallel
// white plane for RGBW families), applies brightness and current limiting,
// and streams frames through a Transmitter. Instantiate it at the color
// width the application needs: RGB888 for exact color, RGB565 or Index8 to
// halve or quarter the buffer footprint.
//
// A Strip is single-context: no operation is safe to call concurrently.
type Strip[C pixel.Color[C]] struct {
	*Buffer[C]
	white []uint8

	t      tx.Transmitter
	family chip.Family
	order  chip.Order
	guard  tx.Guard
	policy tx.Policy

	bright     uint8 // CRT-corrected requested brightness
	showBright uint8 // effective brightness for the frame in flight
	maxCurrent int   // mA, 0 = unlimited
	power      chip.Current
}

// DefaultBrightness is the uncorrected power-on brightness.
const DefaultBrightness = 50

// New builds a controller for n pixels of the given family behind t.
// Byte order defaults to the family's native order and interrupt masking
// to none.
func New[C pixel.Color[C]](f chip.Family, n int, t tx.Transmitter) (*Strip[C], error) {
	if n <= 0 {
		return nil, fmt.Errorf("strip: invalid pixel count %d", n)
	}
	if t == nil {
		return nil, fmt.Errorf("strip: nil transmitter")
	}
	s := &Strip[C]{
		Buffer: NewBuffer[C](n),
		t:      t,
		family: f,
		order:  f.DefaultOrder(),
		guard:  tx.NopGuard{},
		power:  f.Current(),
	}
	if f.Channels() == 4 {
		s.white = make([]uint8, n)
	}
	s.SetBrightness(DefaultBrightness)
	return s, nil
}

// Family the strip was built for.
func (s *Strip[C]) Family() chip.Family { return s.family }

// SetOrder overrides the serialized channel byte order.
func (s *Strip[C]) SetOrder(o chip.Order) { s.order = o }

// SetMask installs the critical-section guard and its granularity. The
// per-byte granularity is forwarded to transmitters that support it;
// per-pixel and per-frame are applied here.
func (s *Strip[C]) SetMask(g tx.Guard, p tx.Policy) {
	if g == nil {
		g = tx.NopGuard{}
	}
	s.guard = g
	s.policy = p
	if bb, ok := s.t.(interface {
		SetMask(tx.Guard, tx.Policy)
	}); ok {
		bb.SetMask(g, p)
	}
}

// SetBrightness sets the requested brightness 0-255. The value is passed
// through a CRT curve so the perceived scale is roughly linear.
func (s *Strip[C]) SetBrightness(v uint8) {
	s.bright = pixel.CRT8(v)
}

// SetMaxCurrent sets the supply budget in milliamps; 0 disables limiting.
func (s *Strip[C]) SetMaxCurrent(ma int) {
	s.maxCurrent = ma
}

// SetWhite sets the dedicated white channel of one pixel. No-op for
// 3-channel families.
func (s *Strip[C]) SetWhite(i int, v uint8) {
	if s.white != nil {
		s.white[i] = v
	}
}

// White reads the dedicated white channel, 0 for 3-channel families.
func (s *Strip[C]) White(i int) uint8 {
	if s.white == nil {
		return 0
	}
	return s.white[i]
}

// Show renders the whole buffer: current-limit computation, then a full
// begin/send-all/end cycle. Once started the frame runs to completion;
// a transmitter error ends it early only because the hardware is gone.
func (s *Strip[C]) Show() error {
	if err := s.Begin(); err != nil {
		return err
	}
	if s.maxCurrent != 0 && s.Len() != 0 {
		s.showBright = s.CorrectBrightness(s.bright)
	}
	for i := range s.pix {
		w := uint8(0)
		if s.white != nil {
			w = s.white[i]
		}
		if err := s.send(s.pix[i], w); err != nil {
			_ = s.End()
			return err
		}
	}
	return s.End()
}

// Begin opens a streaming frame. Streaming callers bypass the current
// limiter; they get the requested brightness.
func (s *Strip[C]) Begin() error {
	s.showBright = s.bright
	if s.policy == tx.MaskPerFrame {
		s.guard.Enter()
	}
	if err := s.t.Begin(); err != nil {
		if s.policy == tx.MaskPerFrame {
			s.guard.Exit()
		}
		return err
	}
	return nil
}

// Send streams one pixel without touching the buffer.
func (s *Strip[C]) Send(c C) error {
	return s.send(c, 0)
}

// SendRaw streams one already-encoded byte.
func (s *Strip[C]) SendRaw(b byte) error {
	return s.t.SendRaw(b)
}

// End closes the frame and releases the frame-granularity guard.
func (s *Strip[C]) End() error {
	err := s.t.End()
	if s.policy == tx.MaskPerFrame {
		s.guard.Exit()
	}
	return err
}

func (s *Strip[C]) send(c C, w uint8) error {
	r, g, b := c.RGB()
	d := s.order.Apply(
		pixel.Scale8(r, s.showBright),
		pixel.Scale8(g, s.showBright),
		pixel.Scale8(b, s.showBright),
	)
	n := 3
	var quad [4]byte
	copy(quad[:], d[:])
	if s.white != nil {
		quad[3] = pixel.Scale8(w, s.showBright)
		n = 4
	}
	if s.policy == tx.MaskPerPixel {
		s.guard.Enter()
	}
	err := s.t.Send(quad[:n])
	if s.policy == tx.MaskPerPixel {
		s.guard.Exit()
	}
	return err
}
