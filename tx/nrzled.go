package tx

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/nrzled"

	"github.com/coreman2200/microstrip/chip"
)

// NRZLED adapts periph.io's independently maintained nrzled driver to the
// Transmitter interface, as an interchangeable alternate backend for the
// single-wire families. Useful for cross-checking the NRZ backend against
// a second encoder implementation.
type NRZLED struct {
	dev       *nrzled.Dev
	buf       []byte
	streaming bool
}

// NewNRZLED opens the periph nrzled SPI driver for numPixels pixels of
// the given family.
func NewNRZLED(p spi.Port, f chip.Family, numPixels int) (*NRZLED, error) {
	if f.Clocked() {
		return nil, fmt.Errorf("tx: %s is clocked, not NRZ", f)
	}
	opts := nrzled.Opts{
		NumPixels: numPixels,
		Channels:  f.Channels(),
		Freq:      physic.Frequency(f.Timing().BitRate()*3) * physic.Hertz,
	}
	dev, err := nrzled.NewSPI(p, &opts)
	if err != nil {
		return nil, fmt.Errorf("tx: nrzled: %w", err)
	}
	return &NRZLED{dev: dev}, nil
}

func (n *NRZLED) Begin() error {
	if n.streaming {
		return ErrBusy
	}
	n.streaming = true
	n.buf = n.buf[:0]
	return nil
}

func (n *NRZLED) Send(channels []byte) error {
	if !n.streaming {
		return ErrIdle
	}
	n.buf = append(n.buf, channels...)
	return nil
}

func (n *NRZLED) SendRaw(b byte) error {
	if !n.streaming {
		return ErrIdle
	}
	n.buf = append(n.buf, b)
	return nil
}

func (n *NRZLED) End() error {
	if !n.streaming {
		return ErrIdle
	}
	n.streaming = false
	if _, err := n.dev.Write(n.buf); err != nil {
		return fmt.Errorf("tx: nrzled write: %w", err)
	}
	return nil
}
