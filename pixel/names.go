package pixel

// Common named colors, as 24-bit values. Convert to a narrower width with
// c.RGB() + NewIndex/New565 when a buffer uses one.
const (
	Black   RGB888 = 0x000000
	White   RGB888 = 0xFFFFFF
	Red     RGB888 = 0xFF0000
	Green   RGB888 = 0x008000
	Lime    RGB888 = 0x00FF00
	Blue    RGB888 = 0x0000FF
	Yellow  RGB888 = 0xFFFF00
	Orange  RGB888 = 0xFFA500
	Cyan    RGB888 = 0x00FFFF
	Magenta RGB888 = 0xFF00FF
	Purple  RGB888 = 0x800080
	Pink    RGB888 = 0xFFC0CB
	Silver  RGB888 = 0xC0C0C0
	Gray    RGB888 = 0x808080
	Maroon  RGB888 = 0x800000
	Navy    RGB888 = 0x000080
)
