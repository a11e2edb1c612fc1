package pixel

// HueMax is the size of the integer hue domain: six sectors of 255 steps.
const HueMax = 1530

// HSV converts hue/saturation/value to a 24-bit color using integer math
// only. Hue lives in [0, 1530) and wraps; each 255-step sector is a linear
// ramp between two primaries, so the full wheel has 1530 distinct hues.
func HSV(h int, s, v uint8) RGB888 {
	h %= HueMax
	if h < 0 {
		h += HueMax
	}
	var r, g, b int
	switch {
	case h < 255:
		r, g, b = 255, h, 0
	case h < 510:
		r, g, b = 509-h, 255, 0
	case h < 765:
		r, g, b = 0, 255, h-510
	case h < 1020:
		r, g, b = 0, 1019-h, 255
	case h < 1275:
		r, g, b = h-1020, 0, 255
	default:
		r, g, b = 255, 0, 1529-h
	}
	// Desaturate toward white, then scale by value.
	sat := int(s)
	val := int(v)
	r = ((r*sat)/255 + (255 - sat)) * val / 255
	g = ((g*sat)/255 + (255 - sat)) * val / 255
	b = ((b*sat)/255 + (255 - sat)) * val / 255
	return New888(uint8(r), uint8(g), uint8(b))
}

// Wheel returns one of the 255 brightest fully saturated hues; pos 0 and
// 255 are both red. The coarse counterpart of the 1530-step HSV hue.
func Wheel(pos uint8) RGB888 {
	return HSV(int(pos)*6, 255, 255)
}
