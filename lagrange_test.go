package gls254

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatticeBasisMatchesConstants(t *testing.T) {
	v1, v2 := LatticeBasis()
	a := limbsToInt(latticeA[:])
	b := limbsToInt(latticeB[:])

	assert.Zero(t, v1[0].Cmp(a), "v1 = (A, B)")
	assert.Zero(t, v1[1].Cmp(b))
	assert.Zero(t, v2[0].Cmp(new(big.Int).Neg(b)), "v2 = (-B, A)")
	assert.Zero(t, v2[1].Cmp(a))

	// A^2 + B^2 = r
	n := Order()
	norm := new(big.Int).Mul(a, a)
	norm.Add(norm, new(big.Int).Mul(b, b))
	assert.Zero(t, norm.Cmp(n))

	// both vectors lie in the lattice: x + y*lambda = 0 mod r
	lambda := limbsToInt(lambdaConstant.d[:])
	for _, v := range [][2]*big.Int{v1, v2} {
		s := new(big.Int).Mul(v[1], lambda)
		s.Add(s, v[0])
		s.Mod(s, n)
		assert.Zero(t, s.Sign())
	}
}

func TestRoundingConstants(t *testing.T) {
	n := Order()
	half := new(big.Int).Rsh(n, 1)
	for _, tc := range []struct {
		name string
		c    []uint64
		g    [4]uint64
	}{
		{"g1", latticeA[:], g1},
		{"g2", latticeB[:], g2},
	} {
		want := new(big.Int).Lsh(limbsToInt(tc.c), 320)
		want.Add(want, half)
		want.Div(want, n)
		assert.Zero(t, want.Cmp(limbsToInt(tc.g[:])), tc.name)
	}
}

func TestLagrangeVartimeSmall(t *testing.T) {
	// lattice of x + 5y = 0 mod 13: 5^2 = -1 mod 13, basis (3, 2), (-2, 3)
	u, v := lagrangeVartime(big.NewInt(5), big.NewInt(13))
	for _, w := range [][2]*big.Int{u, v} {
		s := new(big.Int).Mul(w[1], big.NewInt(5))
		s.Add(s, w[0])
		require.Zero(t, new(big.Int).Mod(s, big.NewInt(13)).Sign())
		norm := new(big.Int).Mul(w[0], w[0])
		norm.Add(norm, new(big.Int).Mul(w[1], w[1]))
		assert.Equal(t, int64(13), norm.Int64())
	}
}

func TestOrder(t *testing.T) {
	n := Order()
	assert.Equal(t, 254, n.BitLen())
	assert.True(t, n.ProbablyPrime(20))
}
