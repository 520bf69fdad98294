package fixed_test

import (
	"math"
	"testing"

	"github.com/nvallin/fixmat/fixed"
	"github.com/stretchr/testify/require"
)

// TestEqualExact verifies exact equality semantics, including shape and nil.
func TestEqualExact(t *testing.T) {
	a := mustFromData(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustFromData(t, 2, 2, []float64{1, 2, 3, 4})
	c := mustFromData(t, 2, 2, []float64{1, 2, 3, 4.0000001})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))  // off by 1e-7: exact check fails
	require.False(t, a.Equal(nil))

	wide := mustFromData(t, 1, 4, []float64{1, 2, 3, 4}) // same data, wrong shape
	require.False(t, a.Equal(wide))
}

// TestEqualTol verifies tolerance-based equality.
func TestEqualTol(t *testing.T) {
	a := mustFromData(t, 2, 2, []float64{1, 2, 3, 4})
	c := mustFromData(t, 2, 2, []float64{1, 2, 3, 4.0000001})

	require.True(t, a.EqualTol(c, 1e-6))
	require.False(t, a.EqualTol(c, 1e-9))
	require.False(t, a.EqualTol(nil, 1))
}

// TestIsIdentity verifies the exact and tolerant identity predicates.
func TestIsIdentity(t *testing.T) {
	id, err := fixed.Identity(3)
	require.NoError(t, err)
	require.True(t, id.IsIdentity())

	// Perturb one diagonal entry slightly.
	require.NoError(t, id.Set(1, 1, 1+1e-12))
	require.False(t, id.IsIdentity())         // exact check rejects
	require.True(t, id.IsIdentityTol(1e-9))   // tolerant check accepts
	require.False(t, id.IsIdentityTol(1e-15)) // tighter than the perturbation

	notID := mustFromData(t, 2, 2, []float64{1, 1, 0, 1})
	require.False(t, notID.IsIdentity())
}

// TestIsZero verifies the exact and tolerant zero predicates.
func TestIsZero(t *testing.T) {
	z, err := fixed.New(2, 3) // zero-initialized
	require.NoError(t, err)
	require.True(t, z.IsZero())

	require.NoError(t, z.Set(1, 2, 1e-12))
	require.False(t, z.IsZero())
	require.True(t, z.IsZeroTol(1e-9))
	require.False(t, z.IsZeroTol(1e-15))
}

// TestIsFiniteHasNaN verifies the finiteness predicates on relaxed matrices.
func TestIsFiniteHasNaN(t *testing.T) {
	m, err := fixed.New(2, 2, fixed.WithNoValidateNaNInf())
	require.NoError(t, err)

	require.True(t, m.IsFinite())
	require.False(t, m.HasNaN())

	require.NoError(t, m.Set(0, 0, math.Inf(1)))
	require.False(t, m.IsFinite())
	require.False(t, m.HasNaN()) // Inf is non-finite but not NaN

	require.NoError(t, m.Set(1, 1, math.NaN()))
	require.True(t, m.HasNaN())
}

// TestMinMaxArg verifies extrema values and their flat row-major positions.
func TestMinMaxArg(t *testing.T) {
	m := mustFromData(t, 2, 3, []float64{
		3, -1, 4,
		-1, 5, 9,
	})

	require.Equal(t, -1.0, m.MinValue())
	require.Equal(t, 9.0, m.MaxValue())
	require.Equal(t, 1, m.ArgMin()) // first -1 wins over the one at index 3
	require.Equal(t, 5, m.ArgMax())
}

// TestOperatorNorms verifies the 1-norm (max column sum) and ∞-norm
// (max row sum) against hand-computed values.
func TestOperatorNorms(t *testing.T) {
	m := mustFromData(t, 2, 2, []float64{
		1, -2,
		3, 4,
	})

	require.Equal(t, 6.0, m.OneNorm()) // |−2| + |4| = 6
	require.Equal(t, 7.0, m.InfNorm()) // |3| + |4| = 7
}
