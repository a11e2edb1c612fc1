package tx

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/coreman2200/microstrip/chip"
)

// BitEmitter emits one byte as eight timed pulses on the data line,
// honoring the pulse-width contract in t. The default emitter busy-waits
// on the monotonic clock; targets with tighter requirements install a
// cycle-accurate implementation for their clock rate with SetEmitter.
type BitEmitter func(pin gpio.PinIO, t chip.Timing, b byte)

// BitBang drives single-wire families by toggling a GPIO pin directly.
// This path carries the protocol's hard real-time constraint: the pulse
// widths must stay inside the receiver's tolerance (typically ±150ns), so
// the caller should pair it with a masking Policy and a Guard that
// actually excludes preemption on the target. On a hosted OS this backend
// cannot meet WS281x timing; prefer NRZ there.
type BitBang struct {
	pin       gpio.PinIO
	timing    chip.Timing
	emit      BitEmitter
	guard     Guard
	policy    Policy
	lastEnd   time.Time
	streaming bool
}

// NewBitBang claims the pin (driven low) for a single-wire family.
func NewBitBang(pin gpio.PinIO, f chip.Family) (*BitBang, error) {
	if f.Clocked() {
		return nil, fmt.Errorf("tx: %s needs a clock line, use an SPI backend", f)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("tx: claim pin %s: %w", pin, err)
	}
	return &BitBang{
		pin:    pin,
		timing: f.Timing(),
		emit:   emitBusyWait,
		guard:  NopGuard{},
	}, nil
}

// SetEmitter replaces the bit emitter. Pass nil to restore the default.
func (bb *BitBang) SetEmitter(e BitEmitter) {
	if e == nil {
		e = emitBusyWait
	}
	bb.emit = e
}

// SetMask installs a guard held around each byte when policy is
// MaskPerByte. Coarser policies are applied by the strip controller.
func (bb *BitBang) SetMask(g Guard, p Policy) {
	if g == nil {
		g = NopGuard{}
	}
	bb.guard = g
	bb.policy = p
}

func (bb *BitBang) Begin() error {
	if bb.streaming {
		return ErrBusy
	}
	// The chip latches the previous frame while the line idles low; a new
	// frame must not start before that window has passed.
	if wait := bb.timing.Latch - time.Since(bb.lastEnd); wait > 0 {
		spinWait(wait)
	}
	bb.streaming = true
	return nil
}

func (bb *BitBang) Send(channels []byte) error {
	if !bb.streaming {
		return ErrIdle
	}
	for _, b := range channels {
		if err := bb.SendRaw(b); err != nil {
			return err
		}
	}
	return nil
}

func (bb *BitBang) SendRaw(b byte) error {
	if !bb.streaming {
		return ErrIdle
	}
	if bb.policy == MaskPerByte {
		bb.guard.Enter()
	}
	bb.emit(bb.pin, bb.timing, b)
	if bb.policy == MaskPerByte {
		bb.guard.Exit()
	}
	return nil
}

func (bb *BitBang) End() error {
	if !bb.streaming {
		return ErrIdle
	}
	bb.streaming = false
	err := bb.pin.Out(gpio.Low)
	bb.lastEnd = time.Now()
	if err != nil {
		return fmt.Errorf("tx: release pin %s: %w", bb.pin, err)
	}
	return nil
}

func emitBusyWait(pin gpio.PinIO, t chip.Timing, b byte) {
	for i := 7; i >= 0; i-- {
		high := t.T0H
		if b&(1<<i) != 0 {
			high = t.T1H
		}
		_ = pin.Out(gpio.High)
		spinWait(high)
		_ = pin.Out(gpio.Low)
		spinWait(t.Period - high)
	}
}

// spinWait busy-waits; the inter-frame and pulse waits are fixed-duration
// and must not yield the execution context.
func spinWait(d time.Duration) {
	for start := time.Now(); time.Since(start) < d; {
	}
}
