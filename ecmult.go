package gls254

import (
	"strings"

	"github.com/pkg/errors"
)

// Variant selects the window width and the table strategy of ScalarMult.
//
// 1DT variants keep one table of odd multiples of P and apply psi to the
// selected entry on every step; 2DT variants precompute a second table for
// psi(P). All variants compute the same result.
type Variant int

const (
	// Variant1DT3 is AD-1DT-3: one table, window 3.
	Variant1DT3 Variant = iota
	// Variant1DT4 is AD-1DT-4: one table, window 4.
	Variant1DT4
	// Variant1DT5 is AD-1DT-5: one table, window 5.
	Variant1DT5
	// Variant2DT2 is AD-2DT-2: two tables, window 2.
	Variant2DT2
	// Variant2DT3 is AD-2DT-3: two tables, window 3.
	Variant2DT3

	numVariants
)

// DefaultVariant is the variant used by ECDH and the key helpers.
const DefaultVariant = Variant1DT4

var variantParams = [numVariants]struct {
	name   string
	window uint
	tables int
}{
	Variant1DT3: {"AD-1DT-3", 3, 1},
	Variant1DT4: {"AD-1DT-4", 4, 1},
	Variant1DT5: {"AD-1DT-5", 5, 1},
	Variant2DT2: {"AD-2DT-2", 2, 2},
	Variant2DT3: {"AD-2DT-3", 3, 2},
}

// Valid reports whether v is one of the defined variants.
func (v Variant) Valid() bool {
	return v >= 0 && v < numVariants
}

// Window returns the window width w.
func (v Variant) Window() uint {
	return variantParams[v].window
}

// Tables returns the number of precomputed tables, 1 or 2.
func (v Variant) Tables() int {
	return variantParams[v].tables
}

func (v Variant) String() string {
	if !v.Valid() {
		return "invalid"
	}
	return variantParams[v].name
}

// Variants returns every defined variant.
func Variants() []Variant {
	vs := make([]Variant, 0, numVariants)
	for v := Variant(0); v < numVariants; v++ {
		vs = append(vs, v)
	}
	return vs
}

// ParseVariant parses a variant name such as "AD-1DT-4". Matching ignores
// case and the "AD-" prefix may be left out.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(name, "AD-") {
		name = "AD-" + name
	}
	for v := Variant(0); v < numVariants; v++ {
		if variantParams[v].name == name {
			return v, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidVariant, "%q", s)
}

// ScalarMult returns k*p in constant time with respect to k and p.
//
// The scalar is split as k = k1 + k2*lambda, both halves are recoded into
// regular signed digits and the driver runs a fixed number of iterations of
// w doublings and two table additions. It panics if v is not a defined
// variant.
func ScalarMult(k *Scalar, p *Point, v Variant) Point {
	if !v.Valid() {
		panic("gls254: invalid variant")
	}

	var t1, t2 oddMultiplesTable
	t1.build(p, v.Window())
	if v.Tables() == 2 {
		t2.setEndomorphism(&t1)
	}

	var r Point
	ecmultTables(&r, k, &t1, &t2, v.Window(), v.Tables() == 2)
	return r
}

// ecmultTables sets r = k*P given the odd-multiples table t1 of P and, when
// twoTables is set, the table t2 of psi(P). The number of field operations
// depends only on w and twoTables.
func ecmultTables(r *Point, k *Scalar, t1, t2 *oddMultiplesTable, w uint, twoTables bool) {
	k1, k2 := splitLambda(k)

	var d1, d2 digitSequence
	d1.recode(&k1, w)
	d2.recode(&k2, w)

	var acc groupElementLD
	var e Point
	acc.setInfinity()

	for j := d1.n - 1; j >= 0; j-- {
		for i := uint(0); i < w; i++ {
			acc.double(&acc)
		}

		t1.lookup(&e, d1.d[j])
		acc.addAffine(&acc, &e)

		if twoTables {
			t2.lookup(&e, d2.d[j])
		} else {
			t1.lookup(&e, d2.d[j])
			e.endomorphism(&e)
		}
		acc.addAffine(&acc, &e)
	}

	r.setLD(&acc)

	d1.clear()
	d2.clear()
	k1 = splitScalar{}
	k2 = splitScalar{}
	e.clear()
}
