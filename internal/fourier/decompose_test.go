package fourier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeEmptyPath(t *testing.T) {
	for _, normalize := range []bool{true, false} {
		d, err := Decompose(nil, Options{Count: 10, Normalize: normalize, Timestep: 1})
		require.NoError(t, err)
		assert.True(t, d.Empty())
		assert.Zero(t, d.Length)

		p, err := Evaluate(1.5, d.Components)
		require.NoError(t, err)
		assert.Equal(t, Point{}, p)
	}
}

func TestDecomposeSinglePoint(t *testing.T) {
	d, err := Decompose(Path{{4, 4}}, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, d.Empty())
	assert.Zero(t, d.Length)
	assert.Zero(t, d.Samples)
}

func TestDecomposeSquareReconstructsStart(t *testing.T) {
	d, err := Decompose(square, Options{Count: 1000, Normalize: true, Timestep: 1})
	require.NoError(t, err)

	assert.InDelta(t, 40, d.Length, 1e-12)
	assert.Equal(t, 40, d.Samples)
	require.Len(t, d.Components, 40)

	p, err := Evaluate(0, d.Components)
	require.NoError(t, err)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)

	// Halfway around the perimeter is the opposite corner.
	p, err = Evaluate(0.5, d.Components)
	require.NoError(t, err)
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 10, p.Y, 1e-9)
}

func TestDecomposeSquareLargestTermIsCentroid(t *testing.T) {
	d, err := Decompose(square, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, d.Components, DefaultCount)

	dc := d.Components[0]
	assert.Equal(t, 0, dc.Bin)
	assert.InDelta(t, 5*math.Sqrt2, dc.Amplitude, 1e-9)
	assert.InDelta(t, math.Pi/4, dc.Phase, 1e-9)
}

func TestDecomposeRawMode(t *testing.T) {
	path := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {-5, 5}}
	d, err := Decompose(path, Options{Count: 100, Normalize: false})
	require.NoError(t, err)

	assert.Equal(t, float64(len(path)), d.Length)
	assert.Equal(t, len(path), d.Samples)
	require.Len(t, d.Components, len(path))

	// With every bin kept, t = i/N lands exactly on raw point i.
	for i, want := range path {
		p, err := Evaluate(float64(i)/float64(len(path)), d.Components)
		require.NoError(t, err)
		assert.InDelta(t, want.X, p.X, 1e-9, "point %d x", i)
		assert.InDelta(t, want.Y, p.Y, 1e-9, "point %d y", i)
	}
}

func TestDecomposeRejectsInvalidOptions(t *testing.T) {
	_, err := Decompose(square, Options{Count: -1, Normalize: true, Timestep: 1})
	assert.ErrorIs(t, err, ErrNegativeCount)

	_, err = Decompose(square, Options{Count: 3, Normalize: true, Timestep: 0})
	assert.ErrorIs(t, err, ErrInvalidTimestep)
}

func TestDecomposeTruncatesToCount(t *testing.T) {
	d, err := Decompose(square, Options{Count: 7, Normalize: true, Timestep: 1})
	require.NoError(t, err)
	assert.Len(t, d.Components, 7)
	for i := 1; i < len(d.Components); i++ {
		assert.GreaterOrEqual(t, d.Components[i-1].Amplitude, d.Components[i].Amplitude)
	}
}
