package fourier

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Component is one rotating vector of a decomposition.
type Component struct {
	// Bin is the DFT output index the component was derived from.
	Bin int
	// Amplitude is the vector length (coefficient magnitude divided by N).
	Amplitude float64
	// Phase is the angle at t=0, in (−π, π].
	Phase float64
	// Frequency is the angular speed: signed cycles per traversal times 2π.
	Frequency float64
}

// Cycles returns the signed number of turns the vector makes per traversal.
func (c Component) Cycles() int {
	return int(math.Round(c.Frequency / (2 * math.Pi)))
}

// At returns the vector at time t.
func (c Component) At(t float64) Point {
	angle := c.Frequency*t + c.Phase
	return Point{
		X: c.Amplitude * math.Cos(angle),
		Y: c.Amplitude * math.Sin(angle),
	}
}

// ComponentSet is an ordered list of components, largest amplitude first.
type ComponentSet []Component

// Validate reports the first component whose amplitude is negative or NaN.
func (cs ComponentSet) Validate() error {
	for i, c := range cs {
		if !(c.Amplitude >= 0) {
			return fmt.Errorf("%w: component %d has amplitude %v", ErrNegativeAmplitude, i, c.Amplitude)
		}
	}
	return nil
}

// Radius returns the sum of all amplitudes, an upper bound on the distance of
// any reconstructed point from the origin.
func (cs ComponentSet) Radius() float64 {
	var r float64
	for _, c := range cs {
		r += c.Amplitude
	}
	return r
}

// Offset returns the constant vector contributed by zero-frequency terms.
func (cs ComponentSet) Offset() Point {
	var p Point
	for _, c := range cs {
		if c.Frequency == 0 {
			p = p.Add(c.At(0))
		}
	}
	return p
}

// Extract converts DFT output into components, ranks them by descending
// amplitude and keeps at most maxCount of them. Bins at or above N/2 map to
// negative frequencies. Components of equal amplitude stay in bin order.
func Extract(fre, fim []float64, maxCount int) (ComponentSet, error) {
	if len(fre) != len(fim) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(fre), len(fim))
	}
	if maxCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, maxCount)
	}

	n := len(fre)
	cs := make(ComponentSet, n)
	for i := range n {
		cycles := i
		if 2*i >= n {
			cycles = i - n
		}
		phase := math.Atan2(fim[i], fre[i])
		if phase == -math.Pi {
			// Atan2 yields −π for a negative real part with a −0 imaginary part.
			phase = math.Pi
		}
		cs[i] = Component{
			Bin:       i,
			Amplitude: math.Hypot(fre[i], fim[i]) / float64(n),
			Phase:     phase,
			Frequency: float64(cycles) * 2 * math.Pi,
		}
	}

	slices.SortStableFunc(cs, func(a, b Component) int {
		return cmp.Compare(b.Amplitude, a.Amplitude)
	})

	return cs[:min(maxCount, n)], nil
}
