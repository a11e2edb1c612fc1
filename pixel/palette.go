package pixel

// The Index8 palette: entry 0 is black, entries 0..215 form a 6x6x6 color
// cube with channel levels {0, 51, 102, 153, 204, 255}, entries 216..255
// are a 40-step gray ramp from 4 to 238. The ramp levels avoid the cube's
// gray diagonal so that every entry is distinct and nearest-entry lookup
// of an exact palette color is stable.
var palette8 = buildPalette()

func buildPalette() [256][3]uint8 {
	var p [256][3]uint8
	i := 0
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = [3]uint8{uint8(r * 51), uint8(g * 51), uint8(b * 51)}
				i++
			}
		}
	}
	for k := 0; k < 40; k++ {
		v := uint8(4 + 6*k)
		p[i] = [3]uint8{v, v, v}
		i++
	}
	return p
}

// nearest returns the palette index minimizing Euclidean distance in RGB.
// Ties resolve to the lowest index.
func nearest(r, g, b uint8) Index8 {
	best := 0
	bestDist := int(^uint(0) >> 1)
	for i := range palette8 {
		dr := int(r) - int(palette8[i][0])
		dg := int(g) - int(palette8[i][1])
		db := int(b) - int(palette8[i][2])
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
			if d == 0 {
				break
			}
		}
	}
	return Index8(best)
}

// Palette returns the RGB channels of a palette entry.
func Palette(i Index8) (r, g, b uint8) {
	e := palette8[i]
	return e[0], e[1], e[2]
}
