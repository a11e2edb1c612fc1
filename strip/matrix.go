package strip

import (
	"fmt"

	"github.com/coreman2200/microstrip/chip"
	"github.com/coreman2200/microstrip/pixel"
	"github.com/coreman2200/microstrip/tx"
)

// Corner names the physical corner holding pixel 0.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Axis is the direction the strip runs from the starting corner.
type Axis uint8

const (
	Rows Axis = iota // along X, row by row
	Cols             // along Y, column by column
)

// Layout describes how a rectangular matrix is physically wired. The four
// corners times the two axes give the eight orientations (identity,
// transpose, the single- and double-axis flips and the two mirrored
// transposes); Serpentine additionally reverses every other wired row.
//
// For any valid layout, Index is a bijection from the (x, y) domain onto
// [0, Width*Height).
type Layout struct {
	Width      int
	Height     int
	Serpentine bool
	Corner     Corner
	Axis       Axis
}

// Count is the number of pixels the layout covers.
func (l Layout) Count() int { return l.Width * l.Height }

// Validate rejects degenerate dimensions.
func (l Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("strip: invalid matrix %dx%d", l.Width, l.Height)
	}
	return nil
}

// Index maps a coordinate to its position along the wired strip. x runs
// left to right, y top to bottom. The orientation transform first brings
// (x, y) into the wiring's canonical row-major frame; serpentine wiring
// then reverses odd canonical rows. The canonical row width is Height
// rather than Width when the axis transform transposes.
func (l Layout) Index(x, y int) int {
	cx, cy := x, y
	if l.Corner == TopRight || l.Corner == BottomRight {
		cx = l.Width - 1 - x
	}
	if l.Corner == BottomLeft || l.Corner == BottomRight {
		cy = l.Height - 1 - y
	}
	rw := l.Width
	if l.Axis == Cols {
		cx, cy = cy, cx
		rw = l.Height
	}
	if l.Serpentine && cy%2 == 1 {
		return cy*rw + rw - 1 - cx
	}
	return cy*rw + cx
}

// Matrix is the 2D controller: a Strip plus a Layout. The coordinate
// operations bounds-check and silently ignore out-of-range pixels, so
// animation code may draw partially off-screen without crashing the
// render loop.
type Matrix[C pixel.Color[C]] struct {
	*Strip[C]
	layout Layout
}

// NewMatrix builds the underlying strip from the layout's pixel count.
func NewMatrix[C pixel.Color[C]](f chip.Family, l Layout, t tx.Transmitter) (*Matrix[C], error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	s, err := New[C](f, l.Count(), t)
	if err != nil {
		return nil, err
	}
	return &Matrix[C]{Strip: s, layout: l}, nil
}

// Wrap attaches a layout to an existing strip. The layout must cover
// exactly the strip's pixel count.
func Wrap[C pixel.Color[C]](s *Strip[C], l Layout) (*Matrix[C], error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if l.Count() != s.Len() {
		return nil, fmt.Errorf("strip: layout %dx%d does not cover %d pixels", l.Width, l.Height, s.Len())
	}
	return &Matrix[C]{Strip: s, layout: l}, nil
}

// Layout returns the wiring descriptor.
func (m *Matrix[C]) Layout() Layout { return m.layout }

// Index exposes the coordinate mapping of the matrix's layout.
func (m *Matrix[C]) Index(x, y int) int { return m.layout.Index(x, y) }

// inBounds also guards the mapped index against a layout that claims more
// pixels than the buffer holds.
func (m *Matrix[C]) inBounds(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= m.layout.Width || y >= m.layout.Height {
		return 0, false
	}
	i := m.layout.Index(x, y)
	if i >= m.Len() {
		return 0, false
	}
	return i, true
}

// Set assigns the pixel at (x, y); out-of-range coordinates are ignored.
func (m *Matrix[C]) Set(x, y int, c C) {
	if i, ok := m.inBounds(x, y); ok {
		m.Strip.Set(i, c)
	}
}

// Get reads the pixel at (x, y); out-of-range coordinates read black.
func (m *Matrix[C]) Get(x, y int) C {
	if i, ok := m.inBounds(x, y); ok {
		return m.Strip.Get(i)
	}
	var zero C
	return zero
}

// Fade dims the pixel at (x, y); out-of-range coordinates are ignored.
func (m *Matrix[C]) Fade(x, y int, v uint8) {
	if i, ok := m.inBounds(x, y); ok {
		m.Strip.Fade(i, v)
	}
}

// DrawBitmap copies a row-major source bitmap onto the matrix at offset
// (x, y), vertically flipped: source row 0 maps to the bottommost drawn
// row. The flip is deliberate, matching the convention that bitmap data
// is authored bottom-up. The source's channel width follows C.
func (m *Matrix[C]) DrawBitmap(x, y int, frame []C, w, h int) {
	for bx := 0; bx < w; bx++ {
		for by := 0; by < h; by++ {
			m.Set(x+bx, y+by, frame[bx+(h-1-by)*w])
		}
	}
}
