package fourier

// Circle is one chained epicycle as drawn around the running point.
type Circle struct {
	Center Point
	Radius float64
}

// Evaluate returns the pen position of the component chain at time t. An empty
// set evaluates to the origin.
func Evaluate(t float64, cs ComponentSet) (Point, error) {
	p, _, err := chain(t, cs, nil, false)
	return p, err
}

// Trace evaluates the chain like Evaluate and appends one circle per chained
// component to circles. The first component only positions the running point
// and never gets a circle of its own, so at most len(cs)-1 circles are added.
func Trace(t float64, cs ComponentSet, circles []Circle) (Point, []Circle, error) {
	return chain(t, cs, circles, true)
}

func chain(t float64, cs ComponentSet, circles []Circle, record bool) (Point, []Circle, error) {
	if len(cs) == 0 {
		return Point{}, circles, nil
	}
	if err := cs.Validate(); err != nil {
		return Point{}, circles, err
	}

	pen := cs[0].At(t)
	for _, c := range cs[1:] {
		if record {
			circles = append(circles, Circle{Center: pen, Radius: c.Amplitude})
		}
		pen = pen.Add(c.At(t))
	}
	return pen, circles, nil
}
