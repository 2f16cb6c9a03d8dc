package fourier

import "fmt"

// Default decomposition parameters.
const (
	DefaultCount    = 10
	DefaultTimestep = 1.0
)

// Options controls how a path is decomposed.
type Options struct {
	// Count is the maximum number of components kept.
	Count int
	// Normalize resamples the path by arc length before the transform. When
	// false the raw points are transformed as-is.
	Normalize bool
	// Timestep is the arc length between resampled points.
	Timestep float64
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Count:     DefaultCount,
		Normalize: true,
		Timestep:  DefaultTimestep,
	}
}

// Decomposition is the ranked component set of a path together with the
// length that normalizes reconstruction time. It is never modified after
// Decompose returns; a new path or new options produce a new value.
type Decomposition struct {
	Components ComponentSet
	Length     float64
	// Samples is the number of samples that went into the transform.
	Samples int
}

// Empty reports whether the decomposition has no components.
func (d Decomposition) Empty() bool { return len(d.Components) == 0 }

// Decompose turns path into at most opts.Count epicycles.
func Decompose(path Path, opts Options) (Decomposition, error) {
	if opts.Count < 0 {
		return Decomposition{}, fmt.Errorf("%w: %d", ErrNegativeCount, opts.Count)
	}

	var (
		sig Signal
		err error
	)
	if opts.Normalize {
		sig, err = Resample(path, opts.Timestep)
		if err != nil {
			return Decomposition{}, fmt.Errorf("resampling path: %w", err)
		}
	} else {
		sig = Raw(path)
	}

	fre, fim, err := DFT(sig.Real, sig.Imag)
	if err != nil {
		return Decomposition{}, fmt.Errorf("transforming samples: %w", err)
	}
	cs, err := Extract(fre, fim, opts.Count)
	if err != nil {
		return Decomposition{}, fmt.Errorf("extracting components: %w", err)
	}

	return Decomposition{
		Components: cs,
		Length:     sig.Length,
		Samples:    sig.Len(),
	}, nil
}
