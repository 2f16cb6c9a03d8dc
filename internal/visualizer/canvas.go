package visualizer

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// layer orders what is drawn into a cell; the highest layer picks the color.
type layer uint8

const (
	layerNone layer = iota
	layerSketch
	layerCircle
	layerTrace
	layerPen
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// brailleCanvas is a dot raster where every terminal cell holds a 2x4 grid.
type brailleCanvas struct {
	cols   int
	rows   int
	dots   []uint8
	layers []layer
}

func (c *brailleCanvas) reset(cols, rows int) {
	c.cols = max(cols, 1)
	c.rows = max(rows, 1)
	n := c.cols * c.rows
	if cap(c.dots) < n {
		c.dots = make([]uint8, n)
		c.layers = make([]layer, n)
	}
	c.dots = c.dots[:n]
	c.layers = c.layers[:n]
	clear(c.dots)
	clear(c.layers)
}

func (c *brailleCanvas) dotWidth() int  { return c.cols * 2 }
func (c *brailleCanvas) dotHeight() int { return c.rows * 4 }

// set lights the dot at (x, y); dots outside the canvas are ignored.
func (c *brailleCanvas) set(x, y int, l layer) {
	if x < 0 || y < 0 || x >= c.dotWidth() || y >= c.dotHeight() {
		return
	}
	cell := (y/4)*c.cols + x/2
	c.dots[cell] |= 1 << brailleBits[x%2][y%4]
	if l > c.layers[cell] {
		c.layers[cell] = l
	}
}

func (c *brailleCanvas) point(x, y float64, l layer) {
	c.set(int(math.Round(x)), int(math.Round(y)), l)
}

// line rasterizes the segment between two dot positions. Segments far
// outside the canvas are walked only as far as the canvas could need.
func (c *brailleCanvas) line(x0, y0, x1, y1 float64, l layer) {
	if !finite(x0, y0, x1, y1) {
		return
	}
	limit := float64(4 * (c.dotWidth() + c.dotHeight()))
	steps := math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))
	if steps > limit {
		if c.outside(x0, y0, x1, y1) {
			return
		}
		steps = limit
	}
	if steps < 1 {
		c.point(x0, y0, l)
		return
	}
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		c.point(x0+(x1-x0)*t, y0+(y1-y0)*t, l)
	}
}

// circle rasterizes a circle outline around (cx, cy).
func (c *brailleCanvas) circle(cx, cy, r float64, l layer) {
	if !finite(cx, cy, r) || r < 0.5 {
		return
	}
	steps := int(math.Min(math.Max(2*math.Pi*r, 12), 720))
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.point(cx+r*math.Cos(a), cy+r*math.Sin(a), l)
	}
}

// outside reports whether both endpoints lie beyond the same canvas edge.
func (c *brailleCanvas) outside(x0, y0, x1, y1 float64) bool {
	w, h := float64(c.dotWidth()), float64(c.dotHeight())
	return (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) || (x0 >= w && x1 >= w) || (y0 >= h && y1 >= h)
}

// render writes the canvas as rows of braille characters, coloring each cell
// by its top layer.
func (c *brailleCanvas) render(palette func(layer) colorful.Color) string {
	var out strings.Builder
	color := newANSIState()
	for row := range c.rows {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range c.cols {
			cell := row*c.cols + col
			pattern := c.dots[cell]
			if pattern == 0 {
				out.WriteByte(' ')
				continue
			}
			color.set(&out, palette(c.layers[cell]))
			out.WriteRune(rune(0x2800 + int(pattern)))
		}
		color.reset(&out)
	}
	return out.String()
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
