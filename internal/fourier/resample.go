package fourier

import (
	"fmt"
	"math"
)

// Signal holds complex samples in split form together with the length used
// to normalize reconstruction time.
type Signal struct {
	Real []float64
	Imag []float64
	// Length is the closed arc length for resampled signals and the raw point
	// count for signals built with Raw.
	Length float64
}

// Len returns the number of samples.
func (s Signal) Len() int { return len(s.Real) }

// Resample walks the closed path by arc length and emits one linearly
// interpolated sample every timestep units. Paths with fewer than two points
// produce an empty signal with zero length.
func Resample(path Path, timestep float64) (Signal, error) {
	if !(timestep > 0) || math.IsInf(timestep, 0) {
		return Signal{}, fmt.Errorf("%w: %v", ErrInvalidTimestep, timestep)
	}
	if len(path) < 2 {
		return Signal{}, nil
	}

	closed := path.Closed()
	estimate := int(path.Perimeter()/timestep) + 1
	sig := Signal{
		Real: make([]float64, 0, estimate),
		Imag: make([]float64, 0, estimate),
	}

	var (
		elapsed float64 // arc length up to the end of the current segment
		k       int     // index of the next sample; it sits at k*timestep
	)
	last := closed[0]
	for _, next := range closed[1:] {
		seg := last.Dist(next)
		start := elapsed
		elapsed += seg
		if seg == 0 {
			last = next
			continue
		}
		for at := float64(k) * timestep; at < elapsed; at = float64(k) * timestep {
			p := last.Lerp(next, (at-start)/seg)
			sig.Real = append(sig.Real, p.X)
			sig.Imag = append(sig.Imag, p.Y)
			k++
		}
		last = next
	}
	sig.Length = elapsed
	return sig, nil
}

// Raw uses the path's coordinates directly as samples, skipping arc-length
// resampling. The signal length is the number of points.
func Raw(path Path) Signal {
	if len(path) < 2 {
		return Signal{}
	}
	sig := Signal{
		Real:   make([]float64, len(path)),
		Imag:   make([]float64, len(path)),
		Length: float64(len(path)),
	}
	for i, p := range path {
		sig.Real[i] = p.X
		sig.Imag[i] = p.Y
	}
	return sig
}
