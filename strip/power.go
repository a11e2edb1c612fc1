package strip

import "github.com/coreman2200/microstrip/pixel"

// CorrectBrightness estimates the strip's current draw at the requested
// brightness and, when it would exceed the configured budget, returns the
// largest brightness that keeps the estimate inside it. With no budget
// set, or with an all-black buffer, the request passes through unchanged.
//
// The model: sum the brightness-scaled channel values over the buffer,
// convert to an "active" draw using the family's per-pixel maximum
// (divided by the three channels), and add the per-pixel idle draw. The
// estimate is recomputed once per frame by Show, never per pixel.
func (s *Strip[C]) CorrectBrightness(bright uint8) uint8 {
	if s.maxCurrent == 0 || s.Len() == 0 {
		return bright
	}
	var sum int64
	for i := range s.pix {
		r, g, b := s.pix[i].RGB()
		sum += int64(pixel.Scale8(r, bright))
		sum += int64(pixel.Scale8(g, bright))
		sum += int64(pixel.Scale8(b, bright))
		if s.white != nil {
			sum += int64(pixel.Scale8(s.white[i], bright))
		}
	}
	active := (sum >> 8) * int64(s.power.PixelMaxMilliamps) / 3
	idle := int64(s.power.IdleMicroamps) * int64(s.Len()) / 1000
	if active == 0 {
		return bright
	}
	if active+idle < int64(s.maxCurrent) {
		return bright
	}
	headroom := int64(s.maxCurrent) - idle
	if headroom <= 0 {
		return 0
	}
	v := headroom * int64(bright) / active
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// EstimateCurrent returns the modeled draw in milliamps at the given
// brightness, using the same arithmetic as CorrectBrightness.
func (s *Strip[C]) EstimateCurrent(bright uint8) int {
	var sum int64
	for i := range s.pix {
		r, g, b := s.pix[i].RGB()
		sum += int64(pixel.Scale8(r, bright))
		sum += int64(pixel.Scale8(g, bright))
		sum += int64(pixel.Scale8(b, bright))
		if s.white != nil {
			sum += int64(pixel.Scale8(s.white[i], bright))
		}
	}
	active := (sum >> 8) * int64(s.power.PixelMaxMilliamps) / 3
	idle := int64(s.power.IdleMicroamps) * int64(s.Len()) / 1000
	return int(active + idle)
}
