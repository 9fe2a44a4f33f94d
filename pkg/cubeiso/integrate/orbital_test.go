package integrate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrbitalIsovalue_ReturnsRawAmplitude(t *testing.T) {
	t.Parallel()

	// Densities are [0.01, 0.04, 0.09, 0.16], total 0.30, target 0.18;
	// descending accumulation 0.16, 0.25 crosses at the 0.3 amplitude. The
	// raw amplitude comes back, not its square root.
	iso, err := OrbitalIsovalue([]float64{0.1, -0.2, 0.3, -0.4}, 60, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, iso, 1e-12)
}

func TestOrbitalIsovalue_SignParameterIgnored(t *testing.T) {
	t.Parallel()

	values := []float64{0.1, -0.2, 0.3, -0.4}
	pos, err := OrbitalIsovalue(values, 50, true)
	require.NoError(t, err)
	neg, err := OrbitalIsovalue(values, 50, false)
	require.NoError(t, err)
	assert.Equal(t, pos, neg)
}

func TestOrbital_SignInvariance(t *testing.T) {
	t.Parallel()

	values := []float64{0.15, -0.32, 0.48, -0.07, 0.21}
	negated := make([]float64, len(values))
	for i, v := range values {
		negated[i] = -v
	}

	t.Run("percentage invariant", func(t *testing.T) {
		t.Parallel()
		a, err := OrbitalPercentage(values, 0.3, true)
		require.NoError(t, err)
		b, err := OrbitalPercentage(negated, 0.3, true)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("isovalue magnitude invariant", func(t *testing.T) {
		t.Parallel()
		a, err := OrbitalIsovalue(values, 60, true)
		require.NoError(t, err)
		b, err := OrbitalIsovalue(negated, 60, true)
		require.NoError(t, err)
		assert.InDelta(t, math.Abs(a), math.Abs(b), 1e-12)
	})
}

func TestOrbitalPercentage(t *testing.T) {
	t.Parallel()

	t.Run("threshold on squared values", func(t *testing.T) {
		t.Parallel()
		// Densities [0.01, 0.04, 0.09, 0.16], total 0.30; threshold 0.3²
		// keeps 0.09 and 0.16 -> 25/30.
		pct, err := OrbitalPercentage([]float64{0.1, -0.2, 0.3, -0.4}, 0.3, true)
		require.NoError(t, err)
		assert.InDelta(t, 100.0*0.25/0.30, pct, 1e-9)
	})

	t.Run("zero total", func(t *testing.T) {
		t.Parallel()
		_, err := OrbitalPercentage([]float64{0, 0}, 0.1, true)
		assert.ErrorIs(t, err, ErrZeroTotal)
	})
}

func TestOrbitalIsovalue_EmptyGrid(t *testing.T) {
	t.Parallel()

	_, err := OrbitalIsovalue(nil, 50, true)
	assert.ErrorIs(t, err, ErrNoPoints)
}
