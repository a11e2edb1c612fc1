// Package chip describes the supported addressable LED driver families:
// their wire timing, latch requirements, power characteristics and channel
// byte order. The timing tables here are the authoritative contract that
// every transmitter backend must satisfy; values come from the vendor
// datasheets.
package chip

import (
	"fmt"
	"time"
)

// Family identifies a class of LED driver ICs sharing a wire protocol.
type Family uint8

const (
	WS2811 Family = iota
	WS2812
	WS2813
	WS2815
	WS2818
	SK6812 // RGBW, four channels
	APA102 // two-wire, externally clocked
)

var familyNames = map[Family]string{
	WS2811: "ws2811",
	WS2812: "ws2812",
	WS2813: "ws2813",
	WS2815: "ws2815",
	WS2818: "ws2818",
	SK6812: "sk6812",
	APA102: "apa102",
}

func (f Family) String() string {
	if s, ok := familyNames[f]; ok {
		return s
	}
	return fmt.Sprintf("chip.Family(%d)", uint8(f))
}

// ParseFamily maps a config string like "ws2812" to a Family.
func ParseFamily(s string) (Family, error) {
	for f, n := range familyNames {
		if n == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("chip: unknown family %q", s)
}

// Clocked reports whether the family shifts data with an explicit clock
// line instead of self-clocked pulse widths.
func (f Family) Clocked() bool {
	return f == APA102
}

// Channels is 4 for families with a dedicated white LED, 3 otherwise.
func (f Family) Channels() int {
	if f == SK6812 {
		return 4
	}
	return 3
}

// Timing is the single-wire pulse contract for one bit, plus the minimum
// idle (latch) period the chip needs after a frame before it accepts new
// data. The receiver tolerance on the pulse widths is typically ±150ns.
type Timing struct {
	T0H    time.Duration // high time encoding a 0 bit
	T1H    time.Duration // high time encoding a 1 bit
	Period time.Duration // total bit period
	Latch  time.Duration // minimum line-low time between frames
}

// BitRate is the data rate implied by the bit period, in Hz.
func (t Timing) BitRate() int64 {
	if t.Period == 0 {
		return 0
	}
	return int64(time.Second / t.Period)
}

// Timing returns the wire contract for single-wire families. The clocked
// family has no pulse-width contract; it returns the zero Timing.
func (f Family) Timing() Timing {
	switch f {
	case WS2811:
		// 400kHz low-speed mode.
		return Timing{T0H: 500 * time.Nanosecond, T1H: 1200 * time.Nanosecond, Period: 2500 * time.Nanosecond, Latch: 280 * time.Microsecond}
	case WS2812:
		return Timing{T0H: 400 * time.Nanosecond, T1H: 800 * time.Nanosecond, Period: 1250 * time.Nanosecond, Latch: 300 * time.Microsecond}
	case WS2813:
		return Timing{T0H: 375 * time.Nanosecond, T1H: 875 * time.Nanosecond, Period: 1250 * time.Nanosecond, Latch: 300 * time.Microsecond}
	case WS2815:
		return Timing{T0H: 400 * time.Nanosecond, T1H: 850 * time.Nanosecond, Period: 1250 * time.Nanosecond, Latch: 280 * time.Microsecond}
	case WS2818:
		return Timing{T0H: 350 * time.Nanosecond, T1H: 750 * time.Nanosecond, Period: 1250 * time.Nanosecond, Latch: 1900 * time.Microsecond}
	case SK6812:
		return Timing{T0H: 300 * time.Nanosecond, T1H: 600 * time.Nanosecond, Period: 1250 * time.Nanosecond, Latch: 300 * time.Microsecond}
	}
	return Timing{}
}

// Current holds the empirically derived per-pixel power constants used by
// the brightness limiter: the incremental draw of one fully lit pixel and
// the idle (leakage) draw per pixel.
type Current struct {
	PixelMaxMilliamps int // one pixel fully lit, minus strip idle draw
	IdleMicroamps     int // strip idle draw divided by pixel count
}

// Current returns the power constants for the family. Families without
// measured values fall back to the WS2811 numbers, the most conservative
// of the set.
func (f Family) Current() Current {
	switch f {
	case WS2812, SK6812:
		return Current{PixelMaxMilliamps: 30, IdleMicroamps: 660}
	case WS2813:
		return Current{PixelMaxMilliamps: 30, IdleMicroamps: 1266}
	case WS2815:
		return Current{PixelMaxMilliamps: 10, IdleMicroamps: 1753}
	case WS2818:
		return Current{PixelMaxMilliamps: 46, IdleMicroamps: 1900}
	}
	return Current{PixelMaxMilliamps: 46, IdleMicroamps: 2000}
}

// DefaultOrder is the byte order the family ships with: GRB for the
// single-wire WS281x/SK6812 line, BGR for APA102.
func (f Family) DefaultOrder() Order {
	if f == APA102 {
		return OrderBGR
	}
	return OrderGRB
}
