package visualizer

// Epicycles draws the chained circles, the traced curve and the faint input
// sketch on a braille canvas.
type Epicycles struct {
	canvas brailleCanvas
	view   viewport
	output string
}

// NewEpicycles creates the epicycle canvas visualizer.
func NewEpicycles() *Epicycles {
	return &Epicycles{view: newViewport()}
}

func (e *Epicycles) Name() string { return "epicycles" }

func (e *Epicycles) Update(f Frame, width, height int) {
	if width < 4 || height < 1 {
		e.output = ""
		return
	}
	e.canvas.reset(width, height)
	e.view.update(f, e.canvas.dotWidth(), e.canvas.dotHeight())

	if n := len(f.Sketch); n > 1 {
		for i := range n {
			a, b := f.Sketch[i], f.Sketch[(i+1)%n]
			x0, y0 := e.view.project(a)
			x1, y1 := e.view.project(b)
			e.canvas.line(x0, y0, x1, y1, layerSketch)
		}
	} else if n == 1 {
		x, y := e.view.project(f.Sketch[0])
		e.canvas.point(x, y, layerSketch)
	}

	// Each circle is followed by the spoke from its center to the next one;
	// the last spoke ends at the pen.
	for i, c := range f.Circles {
		cx, cy := e.view.project(c.Center)
		e.canvas.circle(cx, cy, c.Radius*e.view.scale, layerCircle)
		next := f.Pen
		if i+1 < len(f.Circles) {
			next = f.Circles[i+1].Center
		}
		nx, ny := e.view.project(next)
		e.canvas.line(cx, cy, nx, ny, layerCircle)
	}

	for i := 1; i < len(f.Trace); i++ {
		x0, y0 := e.view.project(f.Trace[i-1])
		x1, y1 := e.view.project(f.Trace[i])
		e.canvas.line(x0, y0, x1, y1, layerTrace)
	}

	if len(f.Components) > 0 {
		px, py := e.view.project(f.Pen)
		for dx := -1.0; dx <= 1; dx++ {
			for dy := -1.0; dy <= 1; dy++ {
				e.canvas.point(px+dx, py+dy, layerPen)
			}
		}
	}

	e.output = e.canvas.render(layerColor)
}

func (e *Epicycles) View() string {
	return e.output
}
