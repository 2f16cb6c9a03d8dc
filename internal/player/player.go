package player

import (
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/olivier-w/epicycles/internal/fourier"
)

const (
	sampleRate   = 44100
	channelCount = 2
)

// output is the subset of *oto.Player the Player drives.
type output interface {
	Play()
	Pause()
	SetVolume(float64)
}

// Player streams a Synth to the sound card.
type Player struct {
	synth  *Synth
	out    output
	volume float64
	paused bool
	mu     sync.Mutex
	closed bool
}

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// New starts playing a silent synth that traces loopHz times per second.
// Use SetDecomposition to give it something to draw.
func New(loopHz, volume float64) (*Player, error) {
	ctx, err := initOto()
	if err != nil {
		return nil, err
	}

	synth := NewSynth(loopHz)
	p := newPlayer(synth, ctx.NewPlayer(synth), volume)
	p.out.Play()
	return p, nil
}

func newPlayer(synth *Synth, out output, volume float64) *Player {
	p := &Player{synth: synth, out: out}
	p.volume = clampVolume(volume)
	out.SetVolume(p.volume)
	return p
}

// SetDecomposition swaps what is being played without interrupting the stream.
func (p *Player) SetDecomposition(d fourier.Decomposition) error {
	return p.synth.SetDecomposition(d)
}

// TogglePause toggles between play and pause.
func (p *Player) TogglePause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	if p.paused {
		p.out.Play()
		p.paused = false
	} else {
		p.out.Pause()
		p.paused = true
	}
}

// Paused returns whether playback is paused.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Volume returns current volume (0.0 to 1.0).
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetVolume sets volume (clamped to 0.0 - 1.0).
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.volume = clampVolume(v)
	p.out.SetVolume(p.volume)
}

// AdjustVolume adjusts volume by delta.
func (p *Player) AdjustVolume(delta float64) {
	p.mu.Lock()
	v := p.volume + delta
	p.mu.Unlock()
	p.SetVolume(v)
}

// Close stops playback. It is safe to call more than once.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	p.out.Pause()
}

func clampVolume(v float64) float64 {
	return max(0, min(1, v))
}
