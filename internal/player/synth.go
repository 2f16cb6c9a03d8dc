package player

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/olivier-w/epicycles/internal/fourier"
)

// voice is an immutable snapshot of what the synth is playing.
type voice struct {
	cs     fourier.ComponentSet
	center fourier.Point
	scale  float64
}

// Synth renders a decomposition as 16-bit stereo PCM for an XY oscilloscope:
// the left channel carries x and the right channel carries y, upward. The
// curve is traversed loopHz times per second. The decomposition can be
// swapped while audio is streaming.
type Synth struct {
	cur    atomic.Pointer[voice]
	loopHz float64
	phase  float64 // position along the curve in [0, 1); reader goroutine only
}

// NewSynth creates a silent synth.
func NewSynth(loopHz float64) *Synth {
	return &Synth{loopHz: loopHz}
}

// SetDecomposition switches the synth to d. An empty decomposition silences it.
func (s *Synth) SetDecomposition(d fourier.Decomposition) error {
	if d.Empty() {
		s.cur.Store(nil)
		return nil
	}
	if err := d.Components.Validate(); err != nil {
		return err
	}

	// DC terms only move the picture, so they are removed and the remaining
	// amplitudes bound the swing.
	scale := 0.0
	for _, c := range d.Components {
		if c.Frequency != 0 {
			scale += c.Amplitude
		}
	}
	s.cur.Store(&voice{
		cs:     d.Components,
		center: d.Components.Offset(),
		scale:  scale,
	})
	return nil
}

// Read fills p with whole stereo frames. It never fails.
func (s *Synth) Read(p []byte) (int, error) {
	frames := len(p) / 4
	v := s.cur.Load()
	step := s.loopHz / sampleRate
	for i := range frames {
		var l, r int16
		if v != nil && v.scale > 0 {
			pt, err := fourier.Evaluate(s.phase, v.cs)
			if err == nil {
				l = toSample((pt.X - v.center.X) / v.scale)
				r = toSample(-(pt.Y - v.center.Y) / v.scale)
			}
		}
		binary.LittleEndian.PutUint16(p[i*4:], uint16(l))
		binary.LittleEndian.PutUint16(p[i*4+2:], uint16(r))
		s.phase = math.Mod(s.phase+step, 1)
	}
	return frames * 4, nil
}

func toSample(v float64) int16 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * 32767))
}
