package visualizer

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/olivier-w/epicycles/internal/fourier"
)

// cellScale maps sketch units onto braille dots when a frame is not fitted:
// a unit is one column (two dots) wide and half a row (two dots) tall.
const cellScale = 2.0

const fitMargin = 0.08

type springField struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

func newSpringField(fps int, frequency, damping float64) springField {
	return springField{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

func (s *springField) resize(n int) {
	if len(s.pos) == n {
		return
	}
	s.pos = make([]float64, n)
	s.vel = make([]float64, n)
}

func (s *springField) step(i int, target float64) float64 {
	p, v := s.spring.Update(s.pos[i], s.vel[i], target)
	s.pos[i] = p
	s.vel[i] = v
	return p
}

func (s *springField) snap(i int, target float64) float64 {
	s.pos[i] = target
	s.vel[i] = 0
	return target
}

const (
	springScale = iota
	springOffX
	springOffY
	springCount
)

// viewport maps world coordinates to dot coordinates as dot = world*scale + off.
// Fitted frames ease toward the scene bounds so the picture zooms smoothly as
// the trace grows or a new sketch is loaded.
type viewport struct {
	field  springField
	ready  bool
	scale  float64
	offX   float64
	offY   float64
	dotW   int
	dotH   int
	fitted bool
}

func newViewport() viewport {
	v := viewport{field: newSpringField(30, 6.0, 1.0)}
	v.field.resize(springCount)
	return v
}

// update recomputes the mapping for a canvas of dotW x dotH dots.
func (v *viewport) update(f Frame, dotW, dotH int) {
	if !f.Fit {
		v.scale, v.offX, v.offY = cellScale, 0, 0
		v.ready = false
		v.fitted = false
		return
	}

	lo, hi, ok := sceneBounds(f)
	if !ok {
		return
	}
	w := math.Max(hi.X-lo.X, 1e-9)
	h := math.Max(hi.Y-lo.Y, 1e-9)
	usableW := float64(dotW) * (1 - 2*fitMargin)
	usableH := float64(dotH) * (1 - 2*fitMargin)
	scale := math.Min(usableW/w, usableH/h)
	offX := float64(dotW)/2 - (lo.X+hi.X)/2*scale
	offY := float64(dotH)/2 - (lo.Y+hi.Y)/2*scale

	// Snap on the first fitted frame or when the canvas changes size.
	snap := !v.ready || !v.fitted || dotW != v.dotW || dotH != v.dotH
	v.ready, v.fitted = true, true
	v.dotW, v.dotH = dotW, dotH
	if snap {
		v.scale = v.field.snap(springScale, scale)
		v.offX = v.field.snap(springOffX, offX)
		v.offY = v.field.snap(springOffY, offY)
		return
	}
	v.scale = v.field.step(springScale, scale)
	v.offX = v.field.step(springOffX, offX)
	v.offY = v.field.step(springOffY, offY)
}

func (v *viewport) project(p fourier.Point) (float64, float64) {
	return p.X*v.scale + v.offX, p.Y*v.scale + v.offY
}

// sceneBounds covers the sketch, the trace and the pen.
func sceneBounds(f Frame) (lo, hi fourier.Point, ok bool) {
	pts := make(fourier.Path, 0, len(f.Sketch)+len(f.Trace)+1)
	pts = append(pts, f.Sketch...)
	pts = append(pts, f.Trace...)
	if len(f.Components) > 0 {
		pts = append(pts, f.Pen)
	}
	return pts.Bounds()
}
