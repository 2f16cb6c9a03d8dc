package fourier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateEmptySetIsOrigin(t *testing.T) {
	for _, tm := range []float64{0, 0.3, 17} {
		p, err := Evaluate(tm, nil)
		require.NoError(t, err)
		assert.Equal(t, Point{}, p)
	}
}

func TestEvaluateSingleComponentQuarterTurn(t *testing.T) {
	cs := ComponentSet{{Amplitude: 5, Phase: 0, Frequency: 2 * math.Pi}}

	p, err := Evaluate(0, cs)
	require.NoError(t, err)
	assert.InDelta(t, 5, p.X, 1e-12)
	assert.InDelta(t, 0, p.Y, 1e-12)

	p, err = Evaluate(0.25, cs)
	require.NoError(t, err)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 5, p.Y, 1e-12)
}

func TestTraceSkipsFirstCircle(t *testing.T) {
	cs := ComponentSet{
		{Amplitude: 4, Frequency: 0},
		{Amplitude: 2, Frequency: 2 * math.Pi},
		{Amplitude: 1, Phase: math.Pi / 2, Frequency: -2 * math.Pi},
	}

	pen, circles, err := Trace(0, cs, nil)
	require.NoError(t, err)
	require.Len(t, circles, 2)

	assert.Equal(t, Circle{Center: Point{4, 0}, Radius: 2}, circles[0])
	assert.InDelta(t, 6, circles[1].Center.X, 1e-12)
	assert.InDelta(t, 0, circles[1].Center.Y, 1e-12)
	assert.Equal(t, 1.0, circles[1].Radius)
	assert.InDelta(t, 6, pen.X, 1e-12)
	assert.InDelta(t, 1, pen.Y, 1e-12)

	direct, err := Evaluate(0, cs)
	require.NoError(t, err)
	assert.Equal(t, pen, direct)
}

func TestTraceReusesBuffer(t *testing.T) {
	cs := ComponentSet{{Amplitude: 1}, {Amplitude: 1}}
	buf := make([]Circle, 0, 4)
	_, circles, err := Trace(0, cs, buf)
	require.NoError(t, err)
	require.Len(t, circles, 1)
	assert.Equal(t, 4, cap(circles))

	_, none, err := Trace(0, cs[:1], buf[:0])
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEvaluateRejectsNegativeAmplitude(t *testing.T) {
	_, err := Evaluate(0, ComponentSet{{Amplitude: 1}, {Amplitude: -2}})
	assert.ErrorIs(t, err, ErrNegativeAmplitude)
}

func TestEvaluateIsPeriodic(t *testing.T) {
	d, err := Decompose(Path{{0, 0}, {8, 1}, {5, 9}}, Options{Count: 12, Normalize: true, Timestep: 1})
	require.NoError(t, err)

	for _, tm := range []float64{0, 0.1, 0.55} {
		a, err := Evaluate(tm, d.Components)
		require.NoError(t, err)
		b, err := Evaluate(tm+3, d.Components)
		require.NoError(t, err)
		assert.InDelta(t, a.X, b.X, 1e-9)
		assert.InDelta(t, a.Y, b.Y, 1e-9)
	}
}
