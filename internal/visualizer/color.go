package visualizer

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

var (
	profileOnce sync.Once
	profile     termenv.Profile
	colorOff    atomic.Bool
	seqCache    sync.Map // profile + hex -> SGR parameters
)

// SetColorEnabled turns colored output on or off for all visualizers.
// Enabling it still honors NO_COLOR and the terminal's capabilities.
func SetColorEnabled(enabled bool) {
	colorOff.Store(!enabled)
}

func currentColorProfile() termenv.Profile {
	if colorOff.Load() {
		return termenv.Ascii
	}
	profileOnce.Do(func() {
		profile = termenv.EnvColorProfile()
	})
	return profile
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// heatStops run from quiet to loud.
var heatStops = []colorful.Color{
	mustHex("#101946"),
	mustHex("#00aeff"),
	mustHex("#14ffa1"),
	mustHex("#ffe65c"),
	mustHex("#ff503c"),
}

func heatColor(t float64) colorful.Color {
	seg := clamp01(t) * float64(len(heatStops)-1)
	i := min(int(seg), len(heatStops)-2)
	return heatStops[i].BlendRgb(heatStops[i+1], seg-float64(i))
}

var (
	sketchColor = mustHex("#464a60")
	circleColor = mustHex("#787c96")
	traceColor  = mustHex("#00aeff")
	penColor    = mustHex("#ff503c")
)

// layerColor is the palette of the epicycle canvas.
func layerColor(l layer) colorful.Color {
	switch l {
	case layerSketch:
		return sketchColor
	case layerCircle:
		return circleColor
	case layerPen:
		return penColor
	default:
		return traceColor
	}
}

// ansiState writes foreground changes only when the color differs from the
// previous cell.
type ansiState struct {
	profile termenv.Profile
	current string
}

func newANSIState() ansiState {
	return ansiState{profile: currentColorProfile()}
}

func (s *ansiState) set(sb *strings.Builder, c colorful.Color) {
	if s.profile == termenv.Ascii {
		return
	}
	seq := colorSequence(s.profile, c.Clamped().Hex())
	if seq == "" || seq == s.current {
		return
	}
	sb.WriteString(termenv.CSI + seq + "m")
	s.current = seq
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.current == "" {
		return
	}
	sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	s.current = ""
}

func colorSequence(p termenv.Profile, hex string) string {
	key := string(rune('0'+p)) + hex
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}
	seq := ""
	if c := p.Color(hex); c != nil {
		seq = c.Sequence(false)
	}
	seqCache.Store(key, seq)
	return seq
}
