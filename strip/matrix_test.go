package strip_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/microstrip/chip"
	"github.com/coreman2200/microstrip/pixel"
	"github.com/coreman2200/microstrip/strip"
)

func TestLayoutIndexBijection(t *testing.T) {
	corners := []strip.Corner{strip.TopLeft, strip.TopRight, strip.BottomLeft, strip.BottomRight}
	axes := []strip.Axis{strip.Rows, strip.Cols}
	// 5x3 on purpose: a square grid would hide transpose bugs.
	for _, serp := range []bool{false, true} {
		for _, c := range corners {
			for _, a := range axes {
				l := strip.Layout{Width: 5, Height: 3, Serpentine: serp, Corner: c, Axis: a}
				t.Run(fmt.Sprintf("serp=%v corner=%d axis=%d", serp, c, a), func(t *testing.T) {
					seen := make(map[int]bool)
					for x := 0; x < l.Width; x++ {
						for y := 0; y < l.Height; y++ {
							i := l.Index(x, y)
							require.GreaterOrEqual(t, i, 0)
							require.Less(t, i, l.Count())
							require.False(t, seen[i], "index %d hit twice at (%d,%d)", i, x, y)
							seen[i] = true
						}
					}
					require.Len(t, seen, l.Count())
				})
			}
		}
	}
}

func TestLayoutSerpentineTopLeft(t *testing.T) {
	// 10x3 serpentine, first pixel top-left, rows: row 0 runs forward,
	// row 1 backward.
	l := strip.Layout{Width: 10, Height: 3, Serpentine: true, Corner: strip.TopLeft, Axis: strip.Rows}
	assert.Equal(t, 0, l.Index(0, 0))
	assert.Equal(t, 9, l.Index(9, 0))
	assert.Equal(t, 19, l.Index(0, 1))
	assert.Equal(t, 10, l.Index(9, 1))
	assert.Equal(t, 20, l.Index(0, 2))
}

func TestLayoutColsUsesHeightAsRowWidth(t *testing.T) {
	// 4x3 wired in columns: the wired "row" is a column of 3.
	l := strip.Layout{Width: 4, Height: 3, Corner: strip.TopLeft, Axis: strip.Cols}
	assert.Equal(t, 0, l.Index(0, 0))
	assert.Equal(t, 2, l.Index(0, 2))
	assert.Equal(t, 3, l.Index(1, 0))
	assert.Equal(t, 11, l.Index(3, 2))
}

func TestMatrixEndToEndSerpentine(t *testing.T) {
	ft := &fakeTx{}
	m, err := strip.NewMatrix[pixel.RGB888](chip.WS2812, strip.Layout{
		Width: 10, Height: 3, Serpentine: true, Corner: strip.TopLeft, Axis: strip.Rows,
	}, ft)
	require.NoError(t, err)

	m.Set(0, 0, pixel.Red)
	m.Set(9, 0, pixel.Red)
	m.Set(0, 1, pixel.Blue)

	assert.Equal(t, pixel.Red, m.Strip.Get(0))
	assert.Equal(t, pixel.Red, m.Strip.Get(9))
	assert.Equal(t, pixel.Blue, m.Strip.Get(19))
	assert.Equal(t, pixel.Red, m.Get(0, 0))
	assert.Equal(t, pixel.Blue, m.Get(0, 1))
}

func TestMatrixOutOfRangeIsNoop(t *testing.T) {
	m, err := strip.NewMatrix[pixel.RGB888](chip.WS2812, strip.Layout{
		Width: 4, Height: 4, Corner: strip.TopLeft, Axis: strip.Rows,
	}, &fakeTx{})
	require.NoError(t, err)

	m.Fill(pixel.Red)
	m.Set(-1, 0, pixel.Blue)
	m.Set(0, -1, pixel.Blue)
	m.Set(4, 0, pixel.Blue)
	m.Set(0, 4, pixel.Blue)
	m.Fade(4, 4, 0)
	for i := 0; i < m.Len(); i++ {
		require.Equal(t, pixel.Red, m.Strip.Get(i), "index %d", i)
	}
	assert.Equal(t, pixel.Black, m.Get(17, 2))
}

func TestWrapRejectsMismatch(t *testing.T) {
	s, err := strip.New[pixel.RGB888](chip.WS2812, 30, &fakeTx{})
	require.NoError(t, err)
	_, err = strip.Wrap(s, strip.Layout{Width: 10, Height: 4, Corner: strip.TopLeft})
	assert.Error(t, err)
	_, err = strip.Wrap(s, strip.Layout{Width: 10, Height: 3, Corner: strip.TopLeft})
	assert.NoError(t, err)
}

func TestDrawBitmapFlipsVertically(t *testing.T) {
	m, err := strip.NewMatrix[pixel.RGB888](chip.WS2812, strip.Layout{
		Width: 3, Height: 3, Corner: strip.TopLeft, Axis: strip.Rows,
	}, &fakeTx{})
	require.NoError(t, err)

	// Source row 0 is red, row 2 is blue; drawn bottom-up, red lands on
	// the bottommost matrix row.
	frame := []pixel.RGB888{
		pixel.Red, pixel.Red, pixel.Red,
		pixel.Lime, pixel.Lime, pixel.Lime,
		pixel.Blue, pixel.Blue, pixel.Blue,
	}
	m.DrawBitmap(0, 0, frame, 3, 3)

	assert.Equal(t, pixel.Blue, m.Get(0, 0))
	assert.Equal(t, pixel.Lime, m.Get(0, 1))
	assert.Equal(t, pixel.Red, m.Get(0, 2))
}

func TestDrawBitmapClipsAtEdges(t *testing.T) {
	m, err := strip.NewMatrix[pixel.RGB888](chip.WS2812, strip.Layout{
		Width: 2, Height: 2, Corner: strip.TopLeft, Axis: strip.Rows,
	}, &fakeTx{})
	require.NoError(t, err)

	frame := []pixel.RGB888{
		pixel.Red, pixel.Red,
		pixel.Red, pixel.Red,
	}
	m.DrawBitmap(1, 1, frame, 2, 2) // half off-screen
	assert.Equal(t, pixel.Black, m.Get(0, 0))
	assert.Equal(t, pixel.Red, m.Get(1, 1))
}
