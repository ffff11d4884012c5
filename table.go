package gls254

import (
	"math/bits"
)

// maxTableSize is the entry count of a table at the widest window
const maxTableSize = 1 << (maxWindow - 1)

// oddMultiplesTable holds 1*P, 3*P, ..., (2^w - 1)*P in affine coordinates.
// Entries are read only through lookup, which touches every entry.
type oddMultiplesTable struct {
	e [maxTableSize]Point
	n int
}

// build fills t with the 2^(w-1) odd multiples of p: one doubling,
// 2^(w-1) - 1 mixed additions and a single batch inversion. The work only
// depends on w. When p is the neutral element every entry is neutral.
func (t *oddMultiplesTable) build(p *Point, w uint) {
	n := 1 << (w - 1)

	var p2 Point
	p2.Double(p)

	var ld [maxTableSize]groupElementLD
	ld[0].setAffine(p)
	for i := 1; i < n; i++ {
		ld[i].addAffine(&ld[i-1], &p2)
	}

	// Z = 0 only occurs for the neutral element; invert 1 instead
	var zs, zi [maxTableSize]FieldElement
	for i := 0; i < n; i++ {
		zs[i] = ld[i].z
		zs[i].cmov(&FieldElementOne, ld[i].z.isZero())
	}
	batchInverse(zi[:n], zs[:n])

	for i := 0; i < n; i++ {
		var zi2 FieldElement
		inf := ld[i].z.isZero()
		zi2.sqr(&zi[i])
		t.e[i].x.mul(&ld[i].x, &zi[i])
		t.e[i].y.mul(&ld[i].y, &zi2)
		t.e[i].x.cmov(&FieldElementZero, inf)
		t.e[i].y.cmov(&FieldElementZero, inf)
		t.e[i].infinity = inf
	}
	t.n = n
}

// setEndomorphism sets t to psi applied to every entry of a
func (t *oddMultiplesTable) setEndomorphism(a *oddMultiplesTable) {
	for i := 0; i < a.n; i++ {
		t.e[i].endomorphism(&a.e[i])
	}
	t.n = a.n
}

// ctEqual returns 1 if a == b, 0 otherwise, without branching
func ctEqual(a, b int) int {
	x := uint64(a ^ b)
	return int(((x | -x) >> 63) ^ 1)
}

// lookup sets r = digit*P for an odd digit in [-(2^w - 1), 2^w - 1].
// Every entry is read and selected with a mask; the sign is applied with a
// conditional negation. Memory access does not depend on the digit.
func (t *oddMultiplesTable) lookup(r *Point, digit int8) {
	d := int(digit)
	sign := int(uint(d) >> (bits.UintSize - 1))
	abs := (d ^ -sign) + sign
	idx := (abs - 1) >> 1

	*r = Point{}
	for i := 0; i < t.n; i++ {
		r.cmov(&t.e[i], ctEqual(i, idx))
	}
	r.condNegate(sign)
}
