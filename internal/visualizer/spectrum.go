package visualizer

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/olivier-w/epicycles/internal/fourier"
)

var barChars = []rune(" ▁▂▃▄▅▆▇█")

const spectrumDecay = 0.3

// Spectrum renders the amplitude of every component as vertical bars in
// ranked order, so the left edge always shows the dominant terms.
type Spectrum struct {
	bands  []float64
	output string
}

// NewSpectrum creates a new spectrum visualizer.
func NewSpectrum() *Spectrum {
	return &Spectrum{}
}

func (s *Spectrum) Name() string { return "spectrum" }

func (s *Spectrum) Update(f Frame, width, height int) {
	if height < 1 {
		height = 1
	}
	cs := f.Components
	if len(cs) == 0 || width < 4 {
		s.bands = s.bands[:0]
		s.output = ""
		return
	}

	// Two columns per bar (bar and gap) while they fit, single columns beyond.
	cols := min(len(cs), max(width-2, 1))
	colWidth, gap := 1, 0
	if 2*cols <= width-2 {
		colWidth, gap = 2, 1
	}

	if len(s.bands) != cols {
		s.bands = make([]float64, cols)
		for i := range cols {
			s.bands[i] = cs[i].Amplitude
		}
	}
	for i := range cols {
		s.bands[i] = s.bands[i]*spectrumDecay + cs[i].Amplitude*(1-spectrumDecay)
	}

	maxVal := 1e-9
	for _, v := range s.bands {
		maxVal = max(maxVal, v)
	}

	profile := currentColorProfile()
	rows := make([]string, height)
	for row := range height {
		var line strings.Builder
		color := newANSIState()
		for b := range cols {
			if b > 0 && gap > 0 {
				line.WriteByte(' ')
			}
			level := s.bands[b] / maxVal * float64(height)
			rowFromBottom := float64(height - 1 - row)
			charIdx := 0
			if level > rowFromBottom+1 {
				charIdx = len(barChars) - 1
			} else if level > rowFromBottom {
				frac := level - rowFromBottom
				charIdx = int(frac * float64(len(barChars)-1))
			}
			if charIdx > 0 && profile != termenv.Ascii {
				color.set(&line, heatColor(s.bands[b]/maxVal))
			}
			ch := barChars[charIdx]
			for range colWidth - gap {
				line.WriteRune(ch)
			}
		}
		color.reset(&line)
		rows[row] = line.String()
	}

	s.output = strings.Join(rows, "\n")
}

func (s *Spectrum) View() string {
	return s.output
}

// Summary describes the top components as "cycles:amplitude" pairs.
func Summary(cs fourier.ComponentSet, n int) []string {
	n = min(n, len(cs))
	out := make([]string, n)
	for i := range n {
		out[i] = formatComponent(cs[i])
	}
	return out
}

func formatComponent(c fourier.Component) string {
	return fmt.Sprintf("%+d:%.1f", c.Cycles(), c.Amplitude)
}
