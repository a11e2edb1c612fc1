package tx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"github.com/coreman2200/microstrip/chip"
	"github.com/coreman2200/microstrip/tx"
)

// countGuard counts balanced Enter/Exit pairs.
type countGuard struct {
	enters, exits int
}

func (g *countGuard) Enter() { g.enters++ }
func (g *countGuard) Exit()  { g.exits++ }

func TestBitBangRejectsClockedFamily(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO2", Num: 2}
	_, err := tx.NewBitBang(pin, chip.APA102)
	assert.Error(t, err)
}

func TestBitBangClaimsPinLow(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO2", Num: 2, L: gpio.High}
	_, err := tx.NewBitBang(pin, chip.WS2812)
	require.NoError(t, err)
	assert.Equal(t, gpio.Low, pin.Read())
}

func TestBitBangIdlesLowAfterFrame(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO2", Num: 2}
	bb, err := tx.NewBitBang(pin, chip.WS2812)
	require.NoError(t, err)

	require.NoError(t, bb.Begin())
	require.NoError(t, bb.Send([]byte{0xFF, 0x00, 0xA5}))
	require.NoError(t, bb.End())
	assert.Equal(t, gpio.Low, pin.Read())
}

func TestBitBangPerByteGuard(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO2", Num: 2}
	bb, err := tx.NewBitBang(pin, chip.WS2812)
	require.NoError(t, err)

	g := &countGuard{}
	bb.SetMask(g, tx.MaskPerByte)
	require.NoError(t, bb.Begin())
	require.NoError(t, bb.Send([]byte{1, 2, 3}))
	require.NoError(t, bb.End())
	assert.Equal(t, 3, g.enters)
	assert.Equal(t, g.enters, g.exits)

	bb.SetMask(g, tx.MaskNone)
	require.NoError(t, bb.Begin())
	require.NoError(t, bb.SendRaw(0x55))
	require.NoError(t, bb.End())
	assert.Equal(t, 3, g.enters)
}

func TestBitBangWaitsOutLatchBetweenFrames(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO2", Num: 2}
	bb, err := tx.NewBitBang(pin, chip.WS2812)
	require.NoError(t, err)

	require.NoError(t, bb.Begin())
	require.NoError(t, bb.SendRaw(0xFF))
	require.NoError(t, bb.End())

	start := time.Now()
	require.NoError(t, bb.Begin())
	// WS2812 latches after 300us of low line; the second Begin must not
	// return before that window has passed.
	assert.GreaterOrEqual(t, time.Since(start), 250*time.Microsecond)
	require.NoError(t, bb.End())
}

func TestBitBangFrameStateMachine(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO2", Num: 2}
	bb, err := tx.NewBitBang(pin, chip.WS2812)
	require.NoError(t, err)

	assert.ErrorIs(t, bb.SendRaw(1), tx.ErrIdle)
	assert.ErrorIs(t, bb.End(), tx.ErrIdle)
	require.NoError(t, bb.Begin())
	assert.ErrorIs(t, bb.Begin(), tx.ErrBusy)
	require.NoError(t, bb.End())
}

func TestBitBangCustomEmitterSeesEveryByte(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO2", Num: 2}
	bb, err := tx.NewBitBang(pin, chip.WS2812)
	require.NoError(t, err)

	var got []byte
	bb.SetEmitter(func(_ gpio.PinIO, _ chip.Timing, b byte) {
		got = append(got, b)
	})
	require.NoError(t, bb.Begin())
	require.NoError(t, bb.Send([]byte{0x12, 0x34}))
	require.NoError(t, bb.SendRaw(0x56))
	require.NoError(t, bb.End())
	assert.Equal(t, []byte{0x12, 0x34, 0x56}, got)
}
