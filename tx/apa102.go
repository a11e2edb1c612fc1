package tx

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// APA102 drives the two-wire clocked family over an SPI peripheral. Each
// bit is shifted out against an explicit clock edge, so there is no pulse
// timing tolerance to meet and no need for interrupt masking; the only
// constraint is the bus's own stability.
//
// Framing follows the chips' protocol: a 4-byte all-zero start-of-frame
// marker, then one 0xFF start byte ahead of each pixel's three channel
// bytes (global brightness field at maximum; dimming is done upstream in
// 8-bit channel space), then a 4-byte all-zero end-of-frame marker.
type APA102 struct {
	c         spi.Conn
	buf       []byte
	streaming bool
}

// DefaultAPA102Freq is a conservative bus clock; the chips are specified
// well past 10MHz but long or noisy wiring often is not.
const DefaultAPA102Freq = 8 * physic.MegaHertz

// NewAPA102 connects to the port at the given bus clock, or
// DefaultAPA102Freq when hz is 0.
func NewAPA102(p spi.Port, hz physic.Frequency) (*APA102, error) {
	if hz == 0 {
		hz = DefaultAPA102Freq
	}
	c, err := p.Connect(hz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("tx: connect apa102: %w", err)
	}
	return &APA102{c: c}, nil
}

func (a *APA102) Begin() error {
	if a.streaming {
		return ErrBusy
	}
	a.streaming = true
	a.buf = append(a.buf[:0], 0, 0, 0, 0)
	return nil
}

func (a *APA102) Send(channels []byte) error {
	if !a.streaming {
		return ErrIdle
	}
	a.buf = append(a.buf, 0xFF)
	a.buf = append(a.buf, channels...)
	return nil
}

func (a *APA102) SendRaw(b byte) error {
	if !a.streaming {
		return ErrIdle
	}
	a.buf = append(a.buf, b)
	return nil
}

func (a *APA102) End() error {
	if !a.streaming {
		return ErrIdle
	}
	a.streaming = false
	a.buf = append(a.buf, 0, 0, 0, 0)
	if err := a.c.Tx(a.buf, nil); err != nil {
		return fmt.Errorf("tx: spi write: %w", err)
	}
	return nil
}
