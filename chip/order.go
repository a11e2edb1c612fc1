package chip

import "fmt"

// Order encodes which of the three serialized byte positions carries each
// channel, two bits per channel: bits 5:4 are the position of red, 3:2 of
// green, 1:0 of blue. Packing it this way keeps the reorder in the send
// path down to three shifts.
type Order uint8

const (
	OrderRGB Order = 0<<4 | 1<<2 | 2
	OrderRBG Order = 0<<4 | 2<<2 | 1
	OrderGRB Order = 1<<4 | 0<<2 | 2
	OrderGBR Order = 2<<4 | 0<<2 | 1
	OrderBRG Order = 1<<4 | 2<<2 | 0
	OrderBGR Order = 2<<4 | 1<<2 | 0
)

// Positions returns the byte index of the R, G and B channels.
func (o Order) Positions() (r, g, b int) {
	return int(o>>4) & 3, int(o>>2) & 3, int(o) & 3
}

// Apply places the three channel values at their serialized positions.
func (o Order) Apply(r, g, b uint8) [3]byte {
	var d [3]byte
	d[int(o>>4)&3] = r
	d[int(o>>2)&3] = g
	d[int(o)&3] = b
	return d
}

func (o Order) String() string {
	var s [3]byte
	s[int(o>>4)&3] = 'R'
	s[int(o>>2)&3] = 'G'
	s[int(o)&3] = 'B'
	return string(s[:])
}

// ParseOrder maps a string like "GRB" to an Order.
func ParseOrder(s string) (Order, error) {
	for _, o := range []Order{OrderRGB, OrderRBG, OrderGRB, OrderGBR, OrderBRG, OrderBGR} {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("chip: invalid channel order %q", s)
}
