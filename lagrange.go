package gls254

import (
	"math/big"
)

// lagrangeVartime returns a reduced basis (u, v) of the lattice
// {(x, y) : x + y*lambda == 0 mod n} by Lagrange (Gauss) reduction. It runs
// in variable time and must only see public values.
func lagrangeVartime(lambda, n *big.Int) (u, v [2]*big.Int) {
	u = [2]*big.Int{new(big.Int).Set(n), new(big.Int)}
	v = [2]*big.Int{new(big.Int).Sub(n, lambda), big.NewInt(1)}
	v[0].Mod(v[0], n)

	dot := func(a, b [2]*big.Int) *big.Int {
		t := new(big.Int).Mul(a[0], b[0])
		return t.Add(t, new(big.Int).Mul(a[1], b[1]))
	}

	if dot(v, v).Cmp(dot(u, u)) < 0 {
		u, v = v, u
	}
	for {
		// m = round(<u, v> / <u, u>)
		nu := dot(u, u)
		m := new(big.Int).Lsh(dot(u, v), 1)
		m.Add(m, nu)
		m.Div(m, new(big.Int).Lsh(nu, 1))

		v[0].Sub(v[0], new(big.Int).Mul(m, u[0]))
		v[1].Sub(v[1], new(big.Int).Mul(m, u[1]))

		if dot(v, v).Cmp(nu) >= 0 {
			return u, v
		}
		u, v = v, u
	}
}

// limbsToInt converts little-endian limbs to a non-negative big.Int
func limbsToInt(d []uint64) *big.Int {
	r := new(big.Int)
	for i := len(d) - 1; i >= 0; i-- {
		r.Lsh(r, 64)
		r.Or(r, new(big.Int).SetUint64(d[i]))
	}
	return r
}

// Order returns the prime group order r.
func Order() *big.Int {
	return limbsToInt(scalarOrder[:])
}

// LatticeBasis derives the reduced basis of the decomposition lattice from
// the group order and lambda. v1 = (A, B) has both coordinates positive and
// v2 = (-B, A). The result matches the compiled-in constants used by
// ScalarMult.
func LatticeBasis() (v1, v2 [2]*big.Int) {
	u, v := lagrangeVartime(limbsToInt(lambdaConstant.d[:]), Order())

	// v1 is the vector whose coordinates share a sign
	if u[0].Sign() == u[1].Sign() {
		u, v = v, u
	}
	if v[0].Sign() < 0 {
		v[0].Neg(v[0])
		v[1].Neg(v[1])
	}
	if u[1].Sign() < 0 {
		u[0].Neg(u[0])
		u[1].Neg(u[1])
	}
	return v, u
}
