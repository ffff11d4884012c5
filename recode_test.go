package gls254

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSplitScalar builds a splitScalar from a small signed value
func newSplitScalar(v *big.Int) splitScalar {
	m := new(big.Int).Set(v)
	if m.Sign() < 0 {
		m.Add(m, new(big.Int).Lsh(big.NewInt(1), 192))
	}
	var s splitScalar
	for i := range s.v {
		s.v[i] = new(big.Int).Rsh(m, uint(64*i)).Uint64()
	}
	return s
}

func checkRecoding(t *testing.T, k *splitScalar, w uint) {
	t.Helper()
	var ds digitSequence
	ds.recode(k, w)
	require.Equal(t, numDigits(w), ds.n, "digit count depends only on w")

	max := int64(1)<<w - 1
	sum := new(big.Int)
	for j := ds.n - 1; j >= 0; j-- {
		d := int64(ds.d[j])
		require.NotZero(t, d, "digit %d", j)
		require.Equal(t, int64(1), d&1, "digit %d is odd", j)
		require.LessOrEqual(t, d, max)
		require.GreaterOrEqual(t, d, -max)

		sum.Lsh(sum, w)
		sum.Add(sum, big.NewInt(d))
	}
	top := int64(ds.d[ds.n-1])
	require.True(t, top == 1 || top == -1, "top digit is +-1, got %d", top)
	require.Zero(t, sum.Cmp(splitToBig(k)), "digits reconstruct k")
}

func TestRecodeEdgeValues(t *testing.T) {
	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	edges := []*big.Int{
		big.NewInt(1),
		big.NewInt(-1),
		big.NewInt(3),
		big.NewInt(-3),
		new(big.Int).Sub(limit, big.NewInt(1)),
		new(big.Int).Sub(big.NewInt(1), limit),
		new(big.Int).Rsh(limit, 1).Add(new(big.Int).Rsh(limit, 1), big.NewInt(1)),
	}
	for w := uint(minWindow); w <= maxWindow; w++ {
		for _, e := range edges {
			k := newSplitScalar(e)
			checkRecoding(t, &k, w)
		}
	}
}

func TestRecodeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	for i := 0; i < 300; i++ {
		k := randomScalar(rng)
		k1, k2 := splitLambda(&k)
		for w := uint(minWindow); w <= maxWindow; w++ {
			checkRecoding(t, &k1, w)
			checkRecoding(t, &k2, w)
		}
	}
}

func TestNumDigits(t *testing.T) {
	assert.Equal(t, 65, numDigits(2))
	assert.Equal(t, 44, numDigits(3))
	assert.Equal(t, 33, numDigits(4))
	assert.Equal(t, 27, numDigits(5))
	assert.Equal(t, maxDigits, numDigits(minWindow))
}
