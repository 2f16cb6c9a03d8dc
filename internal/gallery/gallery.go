// Package gallery keeps the sketches the user can flip through.
package gallery

import "github.com/olivier-w/epicycles/internal/media"

// Gallery is an ordered, wrapping list of sketches.
// It is only mutated from Bubbletea's single-threaded Update loop.
type Gallery struct {
	sketches []media.Sketch
	current  int
}

// New creates a Gallery from the given sketches, positioned on the first.
func New(sketches []media.Sketch) *Gallery {
	return &Gallery{sketches: sketches}
}

// Current returns a pointer to the selected sketch, or nil if empty.
func (g *Gallery) Current() *media.Sketch {
	if g.current < 0 || g.current >= len(g.sketches) {
		return nil
	}
	return &g.sketches[g.current]
}

// Advance moves to the next sketch, wrapping to the first. Returns false if
// the gallery is empty.
func (g *Gallery) Advance() bool {
	if len(g.sketches) == 0 {
		return false
	}
	g.current = (g.current + 1) % len(g.sketches)
	return true
}

// Previous moves to the previous sketch, wrapping to the last. Returns false
// if the gallery is empty.
func (g *Gallery) Previous() bool {
	if len(g.sketches) == 0 {
		return false
	}
	g.current = (g.current - 1 + len(g.sketches)) % len(g.sketches)
	return true
}

// Append adds s at the end and selects it.
func (g *Gallery) Append(s media.Sketch) {
	g.sketches = append(g.sketches, s)
	g.current = len(g.sketches) - 1
}

// Len returns the total number of sketches.
func (g *Gallery) Len() int {
	return len(g.sketches)
}

// CurrentIndex returns the zero-based index of the selected sketch.
func (g *Gallery) CurrentIndex() int {
	return g.current
}

// SetCurrentIndex selects the sketch at i. Out of range indexes are ignored.
func (g *Gallery) SetCurrentIndex(i int) {
	if i >= 0 && i < len(g.sketches) {
		g.current = i
	}
}
