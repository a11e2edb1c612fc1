// Package strip holds the pixel buffer, the strip and matrix controllers,
// 2D coordinate remapping and the current-limiting brightness correction.
package strip

import "github.com/coreman2200/microstrip/pixel"

// Buffer is a fixed-capacity sequence of compressed colors. It is owned
// exclusively by its controller; indices run 0..Len()-1 and the 1D
// operations do not bounds-check (hot-path contract, the caller's
// responsibility). The 2D matrix operations are the checked variants.
type Buffer[C pixel.Color[C]] struct {
	pix []C
}

// NewBuffer allocates a buffer of n black pixels.
func NewBuffer[C pixel.Color[C]](n int) *Buffer[C] {
	return &Buffer[C]{pix: make([]C, n)}
}

// Len is the fixed pixel count.
func (b *Buffer[C]) Len() int { return len(b.pix) }

// Set assigns one pixel.
func (b *Buffer[C]) Set(i int, c C) { b.pix[i] = c }

// Get reads one pixel.
func (b *Buffer[C]) Get(i int) C { return b.pix[i] }

// Fill sets every pixel to c.
func (b *Buffer[C]) Fill(c C) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// FillRange sets pixels from..to inclusive. Indices past the end wrap
// modulo the buffer length, so a range crossing the end paints through
// the start.
func (b *Buffer[C]) FillRange(from, to int, c C) {
	for i := from; i <= to; i++ {
		b.pix[i%len(b.pix)] = c
	}
}

// FillGradient paints a linear blend from ca at `from` to cb approaching
// `to` (exclusive). Indices wrap modulo the buffer length.
func (b *Buffer[C]) FillGradient(from, to int, ca, cb C) {
	span := to - from
	if span <= 0 {
		return
	}
	for i := from; i < to; i++ {
		t := uint8((i - from) * 255 / span)
		b.pix[i%len(b.pix)] = ca.Lerp(cb, t)
	}
}

// Fade dims one pixel by v (255 = unchanged, 0 = black).
func (b *Buffer[C]) Fade(i int, v uint8) {
	b.pix[i] = b.pix[i].Scale(v)
}

// Clear sets every pixel to black (the zero value of every color width).
func (b *Buffer[C]) Clear() {
	var zero C
	for i := range b.pix {
		b.pix[i] = zero
	}
}
