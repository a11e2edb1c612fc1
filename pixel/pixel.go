// Package pixel implements the compressed in-memory color representation
// used by strip and matrix buffers, at three widths: 24-bit RGB888 (exact),
// 16-bit RGB565 (lossy) and 8-bit Index8 (palette, lossy and non-linear).
// Compressed colors are immutable values; arithmetic returns a new value.
package pixel

// Color is the constraint satisfied by every compressed color width.
//
// The zero value of a Color type is always black. From is the compress
// direction; the receiver is used only for type dispatch so generic code
// can mint new values from raw channels.
type Color[C any] interface {
	comparable
	// RGB decompresses to full 8-bit channels.
	RGB() (r, g, b uint8)
	// From compresses 8-bit channels into a new value of the same width.
	From(r, g, b uint8) C
	// Scale dims every channel linearly: 255 leaves the color unchanged,
	// 0 yields black.
	Scale(v uint8) C
	// Lerp interpolates linearly toward `to`: t=0 yields the receiver,
	// t=255 yields `to`.
	Lerp(to C, t uint8) C
}

// Scale8 scales an 8-bit channel by v/255. Scale8(x, 255) == x and
// Scale8(x, 0) == 0 for all x.
func Scale8(x, v uint8) uint8 {
	return uint8(uint16(x) * uint16(v) / 255)
}

// Blend8 interpolates between two 8-bit channels. Blend8(a, b, 0) == a,
// Blend8(a, b, 255) == b, and the result is always between a and b.
func Blend8(a, b, t uint8) uint8 {
	return uint8((uint16(a)*(255-uint16(t)) + uint16(b)*uint16(t)) / 255)
}

// CRT8 is the perceptual brightness curve applied by SetBrightness: a
// quadratic approximation of CRT gamma. CRT8(0) == 0, CRT8(255) == 255.
func CRT8(v uint8) uint8 {
	return uint8((uint16(v)*uint16(v) + 255) >> 8)
}

// RGB888 is the 24-bit width: 8 bits per channel, packed 0xRRGGBB in a
// uint32. Compression is exact.
type RGB888 uint32

// New888 compresses 8-bit channels into an RGB888. Lossless.
func New888(r, g, b uint8) RGB888 {
	return RGB888(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromHex builds an RGB888 from a 0xRRGGBB web color.
func FromHex(h uint32) RGB888 {
	return RGB888(h & 0xFFFFFF)
}

// Hex returns the color as 0xRRGGBB.
func (c RGB888) Hex() uint32 {
	return uint32(c) & 0xFFFFFF
}

func (c RGB888) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (RGB888) From(r, g, b uint8) RGB888 {
	return New888(r, g, b)
}

func (c RGB888) Scale(v uint8) RGB888 {
	r, g, b := c.RGB()
	return New888(Scale8(r, v), Scale8(g, v), Scale8(b, v))
}

func (c RGB888) Lerp(to RGB888, t uint8) RGB888 {
	r1, g1, b1 := c.RGB()
	r2, g2, b2 := to.RGB()
	return New888(Blend8(r1, r2, t), Blend8(g1, g2, t), Blend8(b1, b2, t))
}

// RGB565 is the 16-bit width: 5/6/5 bits per channel. Compression
// truncates the low bits (not round-to-nearest); decompression replicates
// the high bits into the low ones, bounding the round-trip error at 7 for
// the 5-bit channels and 3 for green.
type RGB565 uint16

// New565 compresses 8-bit channels into an RGB565 by truncation.
func New565(r, g, b uint8) RGB565 {
	return RGB565(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

func (c RGB565) RGB() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

func (RGB565) From(r, g, b uint8) RGB565 {
	return New565(r, g, b)
}

func (c RGB565) Scale(v uint8) RGB565 {
	r, g, b := c.RGB()
	return New565(Scale8(r, v), Scale8(g, v), Scale8(b, v))
}

func (c RGB565) Lerp(to RGB565, t uint8) RGB565 {
	r1, g1, b1 := c.RGB()
	r2, g2, b2 := to.RGB()
	return New565(Blend8(r1, r2, t), Blend8(g1, g2, t), Blend8(b1, b2, t))
}

// Index8 is the 8-bit width: an index into a fixed 256-entry palette (see
// palette.go). Compression picks the nearest palette entry by Euclidean
// distance in RGB space; this is observably different from a nearest-HSV
// match and is the documented choice.
type Index8 uint8

// NewIndex compresses 8-bit channels to the nearest palette entry.
func NewIndex(r, g, b uint8) Index8 {
	return nearest(r, g, b)
}

func (c Index8) RGB() (r, g, b uint8) {
	e := palette8[c]
	return e[0], e[1], e[2]
}

func (Index8) From(r, g, b uint8) Index8 {
	return NewIndex(r, g, b)
}

func (c Index8) Scale(v uint8) Index8 {
	r, g, b := c.RGB()
	return NewIndex(Scale8(r, v), Scale8(g, v), Scale8(b, v))
}

func (c Index8) Lerp(to Index8, t uint8) Index8 {
	r1, g1, b1 := c.RGB()
	r2, g2, b2 := to.RGB()
	return NewIndex(Blend8(r1, r2, t), Blend8(g1, g2, t), Blend8(b1, b2, t))
}
