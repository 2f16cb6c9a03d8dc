package visualizer

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

var trailGlyphs = []rune{'·', '•', '✶', '✹'}

// Trail renders the traced curve as glyphs that fade with age, without the
// circles. Newer points are brighter and use heavier glyphs.
type Trail struct {
	view   viewport
	chars  [][]rune
	ages   [][]float64
	output string
}

// NewTrail creates the trail visualizer.
func NewTrail() *Trail {
	return &Trail{view: newViewport()}
}

func (t *Trail) Name() string { return "trail" }

func (t *Trail) Update(f Frame, width, height int) {
	if width < 6 || height < 2 {
		t.output = ""
		return
	}

	cols := max(width, 8)
	rows := height
	t.resize(cols, rows)
	// The viewport works in braille dots; a cell is 2x4 of them.
	t.view.update(f, cols*2, rows*4)

	n := len(f.Trace)
	for i, p := range f.Trace {
		dx, dy := t.view.project(p)
		if !finite(dx, dy) {
			continue
		}
		x := int(math.Floor(dx / 2))
		y := int(math.Floor(dy / 4))
		if x < 0 || x >= cols || y < 0 || y >= rows {
			continue
		}
		age := float64(n-1-i) / float64(max(1, n-1))
		glyph := trailGlyphs[min(len(trailGlyphs)-1, int((1-age)*float64(len(trailGlyphs)-1)))]
		if age <= t.ages[y][x] {
			t.chars[y][x] = glyph
			t.ages[y][x] = age
		}
	}

	var out strings.Builder
	profile := currentColorProfile()
	color := newANSIState()
	for r := range rows {
		if r > 0 {
			out.WriteByte('\n')
		}
		for c := range cols {
			ch := t.chars[r][c]
			if ch == ' ' || profile == termenv.Ascii {
				out.WriteRune(ch)
				continue
			}
			age := clamp01(1 - t.ages[r][c])
			hue := math.Mod(0.08+float64(c)/float64(cols)*0.75+age*0.12, 1)
			color.set(&out, colorful.Hsv(hue*360, 0.78, 0.3+0.7*age))
			out.WriteRune(ch)
		}
		color.reset(&out)
	}

	t.output = out.String()
}

func (t *Trail) resize(cols, rows int) {
	if len(t.chars) != rows || (rows > 0 && len(t.chars[0]) != cols) {
		t.chars = make([][]rune, rows)
		t.ages = make([][]float64, rows)
		for r := range rows {
			t.chars[r] = make([]rune, cols)
			t.ages[r] = make([]float64, cols)
		}
	}
	for r := range rows {
		for c := range cols {
			t.chars[r][c] = ' '
			t.ages[r][c] = 1
		}
	}
}

func (t *Trail) View() string {
	return t.output
}
