// Package tx implements the per-chip transmission protocol engines. A
// Transmitter turns ordered, brightness-corrected channel bytes into the
// wire signal of one chip family. Every backend follows the same frame
// state machine: Begin, then Send once per pixel (or SendRaw once per byte
// for streaming callers), then End.
package tx

import "errors"

// Transmitter is a single frame-oriented output engine. Implementations
// are not safe for concurrent use; the strip controller owns the calling
// context. A frame must run to completion: there is no way to abort
// between Begin and End without leaving the chips' shift registers in an
// undefined state.
type Transmitter interface {
	// Begin opens a frame. It blocks until the family's latch period since
	// the previous End has elapsed, where the backend needs to.
	Begin() error
	// Send emits one pixel. The slice holds 3 (or 4, for RGBW families)
	// channel bytes already reordered and brightness-scaled by the caller.
	Send(channels []byte) error
	// SendRaw emits a single byte, for callers streaming without a buffer.
	SendRaw(b byte) error
	// End closes the frame, emitting the family's end-of-frame marker or
	// latch as required.
	End() error
}

var (
	// ErrBusy is returned by Begin while a frame is already open.
	ErrBusy = errors.New("tx: frame already in progress")
	// ErrIdle is returned by Send, SendRaw and End outside a frame.
	ErrIdle = errors.New("tx: no frame in progress")
)

// Guard is a scoped critical section. On microcontroller targets it masks
// interrupts; Enter and Exit must balance on every path. The granularity
// at which a guard is held is chosen by Policy.
type Guard interface {
	Enter()
	Exit()
}

// NopGuard is the guard for hosted targets, where user code cannot mask
// interrupts and the clocked or DMA-fed backends don't need to.
type NopGuard struct{}

func (NopGuard) Enter() {}
func (NopGuard) Exit()  {}

// Policy selects the granularity of interrupt masking during transmission.
type Policy uint8

const (
	// MaskNone never takes the guard.
	MaskNone Policy = iota
	// MaskPerByte holds the guard around each 8-pulse burst. Minimal dead
	// time for other interrupts, but an interrupt landing between bytes
	// can still stretch the inter-byte gap past the latch threshold.
	MaskPerByte
	// MaskPerPixel holds the guard around each pixel's 3-4 byte burst.
	MaskPerPixel
	// MaskPerFrame holds the guard for the whole frame. No glitches, but
	// all interrupt-driven activity starves for the frame's duration.
	MaskPerFrame
)
