package tx

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/coreman2200/microstrip/chip"
)

// NRZ drives single-wire families through an SPI peripheral by expanding
// each data bit into three SPI bits: 0b110 for a one, 0b100 for a zero.
// With the bus clocked at exactly three times the chip's bit rate the MOSI
// line reproduces the long-high/short-high pulse pattern within the
// receiver's tolerance, and the host is immune to scheduling jitter since
// the peripheral shifts the prepared frame out on its own.
//
// The frame is coalesced into one bus transaction in End; the latch is a
// tail of zero bytes long enough to hold the line low for the family's
// latch period.
type NRZ struct {
	c         spi.Conn
	timing    chip.Timing
	latchLen  int
	lut       [256][3]byte
	buf       []byte
	streaming bool
}

// NewNRZ connects to the port at three times the family's bit rate and
// prepares the expansion table. Clocked families are rejected; use
// NewAPA102 for those.
func NewNRZ(p spi.Port, f chip.Family) (*NRZ, error) {
	if f.Clocked() {
		return nil, fmt.Errorf("tx: %s is clocked, not NRZ", f)
	}
	t := f.Timing()
	hz := t.BitRate() * 3
	c, err := p.Connect(physic.Frequency(hz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("tx: connect %s: %w", f, err)
	}
	n := &NRZ{
		c:        c,
		timing:   t,
		latchLen: latchBytes(t.Latch, hz),
	}
	for v := 0; v < 256; v++ {
		out := uint32(0)
		for i := 7; i >= 0; i-- {
			if v&(1<<i) != 0 {
				out = out<<3 | 0b110
			} else {
				out = out<<3 | 0b100
			}
		}
		n.lut[v] = [3]byte{byte(out >> 16), byte(out >> 8), byte(out)}
	}
	return n, nil
}

// latchBytes is the number of zero bytes needed to keep the line low for
// d at the given SPI clock.
func latchBytes(d time.Duration, hz int64) int {
	n := int(int64(d) * hz / (8 * int64(time.Second)))
	return n + 1
}

func (n *NRZ) Begin() error {
	if n.streaming {
		return ErrBusy
	}
	n.streaming = true
	n.buf = n.buf[:0]
	return nil
}

func (n *NRZ) Send(channels []byte) error {
	if !n.streaming {
		return ErrIdle
	}
	for _, b := range channels {
		e := n.lut[b]
		n.buf = append(n.buf, e[0], e[1], e[2])
	}
	return nil
}

func (n *NRZ) SendRaw(b byte) error {
	if !n.streaming {
		return ErrIdle
	}
	e := n.lut[b]
	n.buf = append(n.buf, e[0], e[1], e[2])
	return nil
}

func (n *NRZ) End() error {
	if !n.streaming {
		return ErrIdle
	}
	n.streaming = false
	for i := 0; i < n.latchLen; i++ {
		n.buf = append(n.buf, 0)
	}
	if err := n.c.Tx(n.buf, nil); err != nil {
		return fmt.Errorf("tx: spi write: %w", err)
	}
	return nil
}
