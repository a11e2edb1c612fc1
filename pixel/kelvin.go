package pixel

// Blackbody approximation sampled every 500K from 1000K to 10000K.
// Intermediate temperatures interpolate linearly between stops.
var kelvinTable = [19][3]uint8{
	{255, 56, 0},    // 1000K
	{255, 109, 0},   // 1500K
	{255, 137, 14},  // 2000K
	{255, 161, 72},  // 2500K
	{255, 180, 107}, // 3000K
	{255, 196, 137}, // 3500K
	{255, 209, 163}, // 4000K
	{255, 219, 186}, // 4500K
	{255, 228, 206}, // 5000K
	{255, 236, 224}, // 5500K
	{255, 243, 239}, // 6000K
	{255, 249, 253}, // 6500K
	{245, 243, 255}, // 7000K
	{235, 238, 255}, // 7500K
	{227, 233, 255}, // 8000K
	{220, 229, 255}, // 8500K
	{214, 225, 255}, // 9000K
	{208, 222, 255}, // 9500K
	{204, 219, 255}, // 10000K
}

// Kelvin returns the color of a blackbody radiator at the given
// temperature. Temperatures outside [1000, 10000] clamp to the table ends.
func Kelvin(k int) RGB888 {
	if k <= 1000 {
		e := kelvinTable[0]
		return New888(e[0], e[1], e[2])
	}
	if k >= 10000 {
		e := kelvinTable[len(kelvinTable)-1]
		return New888(e[0], e[1], e[2])
	}
	i := (k - 1000) / 500
	frac := k - 1000 - i*500 // 0..499
	lo, hi := kelvinTable[i], kelvinTable[i+1]
	lerp := func(a, b uint8) uint8 {
		return uint8(int(a) + (int(b)-int(a))*frac/500)
	}
	return New888(lerp(lo[0], hi[0]), lerp(lo[1], hi[1]), lerp(lo[2], hi[2]))
}
