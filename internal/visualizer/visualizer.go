package visualizer

import "github.com/olivier-w/epicycles/internal/fourier"

// Frame is the state of one animation step.
type Frame struct {
	// Sketch is the input path, drawn closed and dimmed.
	Sketch fourier.Path
	// Trace holds the pen positions accumulated so far, oldest first.
	Trace []fourier.Point
	// Circles are the chained epicycles at the current time.
	Circles []fourier.Circle
	// Pen is the current reconstructed point.
	Pen fourier.Point
	// Components is the decomposition being animated.
	Components fourier.ComponentSet
	// Fit scales the scene to the screen. Without it, one unit is half a
	// terminal row and one column, which is how drawn sketches are recorded.
	Fit bool
}

// Visualizer renders animation frames as terminal text.
type Visualizer interface {
	Name() string
	Update(f Frame, width, height int)
	View() string
}

// Modes returns all available visualizers.
func Modes() []Visualizer {
	return []Visualizer{
		NewEpicycles(),
		NewTrail(),
		NewSpectrum(),
	}
}

// Index returns the position of the named visualizer in modes, or 0 if absent.
func Index(modes []Visualizer, name string) int {
	for i, v := range modes {
		if v.Name() == name {
			return i
		}
	}
	return 0
}
