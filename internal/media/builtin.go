package media

import (
	"math"

	"github.com/olivier-w/epicycles/internal/fourier"
)

// Builtins returns the sketches that ship with the program, in gallery order.
func Builtins() []Sketch {
	return []Sketch{
		{Title: "square", Points: square(30), Fit: true},
		{Title: "circle", Points: parametric(64, func(t float64) fourier.Point {
			return fourier.Point{X: 35 * math.Cos(t), Y: 35 * math.Sin(t)}
		}), Fit: true},
		{Title: "star", Points: star(5, 40, 16), Fit: true},
		{Title: "heart", Points: parametric(96, func(t float64) fourier.Point {
			s := math.Sin(t)
			return fourier.Point{
				X: 2.2 * 16 * s * s * s,
				Y: -2.2 * (13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)),
			}
		}), Fit: true},
		{Title: "trefoil", Points: parametric(120, func(t float64) fourier.Point {
			return fourier.Point{
				X: 12 * (math.Sin(t) + 2*math.Sin(2*t)),
				Y: 12 * (math.Cos(t) - 2*math.Cos(2*t)),
			}
		}), Fit: true},
	}
}

func square(half float64) fourier.Path {
	return fourier.Path{{X: -half, Y: -half}, {X: half, Y: -half}, {X: half, Y: half}, {X: -half, Y: half}}
}

// star alternates between the outer and inner radius, starting at the top.
func star(spikes int, outer, inner float64) fourier.Path {
	n := spikes * 2
	pts := make(fourier.Path, n)
	for i := range n {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + math.Pi*float64(i)/float64(spikes)
		pts[i] = fourier.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return pts
}

// parametric samples f at n evenly spaced angles in [0, 2π).
func parametric(n int, f func(t float64) fourier.Point) fourier.Path {
	pts := make(fourier.Path, n)
	for i := range n {
		pts[i] = f(2 * math.Pi * float64(i) / float64(n))
	}
	return pts
}
