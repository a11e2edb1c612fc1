package strip

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"

	"github.com/coreman2200/microstrip/pixel"
)

// Matrix implements display.Drawer, so image pipelines that target periph
// displays can render onto an LED matrix directly.
var _ display.Drawer = (*Matrix[pixel.RGB888])(nil)

func (m *Matrix[C]) String() string {
	return fmt.Sprintf("%s{%dx%d}", m.family, m.layout.Width, m.layout.Height)
}

// Halt blanks the matrix and pushes the blank frame out.
func (m *Matrix[C]) Halt() error {
	m.Clear()
	return m.Show()
}

// ColorModel implements display.Drawer. Colors quantize to the matrix's
// compressed width on Draw regardless of the source model.
func (m *Matrix[C]) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer; Min is always (0, 0).
func (m *Matrix[C]) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.layout.Width, m.layout.Height)
}

// Draw implements display.Drawer: it compresses the source region into
// the buffer and renders a frame. Unlike DrawBitmap this is top-down,
// following the image package's coordinate convention.
func (m *Matrix[C]) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(m.Bounds())
	var proto C
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			nc := color.NRGBAModel.Convert(src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)).(color.NRGBA)
			m.Set(x, y, proto.From(nc.R, nc.G, nc.B))
		}
	}
	return m.Show()
}
