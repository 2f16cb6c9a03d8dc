// Package fourier decomposes closed 2D paths into epicycles and evaluates
// them again.
//
// A path is first resampled at even arc-length steps ([Resample]), the
// resulting complex samples are transformed with a discrete Fourier transform
// ([DFT]), and every frequency bin becomes a rotating vector ([Extract]).
// Components are ranked by amplitude, so truncating the set keeps the terms
// that contribute most to the shape.
//
// Reconstruction is a pure function of time: [Evaluate] sums the rotating
// vectors at t, where t ∈ [0, 1) covers one full traversal of the path.
// [Trace] additionally reports the circle drawn around every chained vector.
//
// All values produced by this package are immutable once returned and may be
// shared between goroutines without synchronization.
package fourier
