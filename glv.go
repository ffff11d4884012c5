package gls254

import (
	"math/bits"
)

// GLS endomorphism constants and scalar splitting

// lambdaConstant is the eigenvalue of psi on the prime-order subgroup:
// psi(P) = lambda*P, lambda^2 == -1 mod r
var lambdaConstant = Scalar{
	d: [4]uint64{0x1B8487FC89A1F614, 0x1EEFADF1FAE163FC, 0x9F58BDDA363FE499, 0x17E6D0D00F54BC93},
}

// onePlusLambda = 1 + lambda mod r
var onePlusLambda = Scalar{
	d: [4]uint64{0x1B8487FC89A1F615, 0x1EEFADF1FAE163FC, 0x9F58BDDA363FE499, 0x17E6D0D00F54BC93},
}

// Reduced lattice basis v1 = (A, B), v2 = (-B, A) of
// {(x, y) : x + y*lambda == 0 mod r}, with A = (q - 1 + T)/2 and
// B = (q - 1 - T)/2 where T is the trace of Frobenius of the curve over
// GF(2^127). A^2 + B^2 = r.
var (
	latticeA = [2]uint64{0x9C668C30C05A9969, 0x4000000000000000}
	latticeB = [2]uint64{0x639973CF3FA56696, 0x3FFFFFFFFFFFFFFF}

	// g1 = round(2^320 * A / r), g2 = round(2^320 * B / r)
	g1 = [4]uint64{0x0E5B82123E5E2523, 0xE334618602D4CB44, 0x0000000000000004, 0x0000000000000002}
	g2 = [4]uint64{0x0E5B82123E5E2536, 0x1CCB9E79FD2B34AC, 0xFFFFFFFFFFFFFFFB, 0x0000000000000001}
)

// splitScalar is a signed 192-bit integer in two's complement. Values
// produced by splitLambda are odd and lie in (-2^128, 2^128).
type splitScalar struct {
	v [3]uint64
}

// mul256 returns the full 512-bit product a*b
func mul256(a, b *[4]uint64) (p [8]uint64) {
	for i := 0; i < 4; i++ {
		var c uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			var cc uint64
			lo, cc = bits.Add64(lo, p[i+j], 0)
			hi += cc
			lo, cc = bits.Add64(lo, c, 0)
			hi += cc
			p[i+j] = lo
			c = hi
		}
		p[i+4] = c
	}
	return
}

// mul128 returns the low 192 bits of a*b
func mul128(a, b *[2]uint64) [3]uint64 {
	var p [4]uint64
	for i := 0; i < 2; i++ {
		var c uint64
		for j := 0; j < 2; j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			var cc uint64
			lo, cc = bits.Add64(lo, p[i+j], 0)
			hi += cc
			lo, cc = bits.Add64(lo, c, 0)
			hi += cc
			p[i+j] = lo
			c = hi
		}
		p[i+2] = c
	}
	return [3]uint64{p[0], p[1], p[2]}
}

// sub192 returns a - b mod 2^192
func sub192(a, b [3]uint64) [3]uint64 {
	var r [3]uint64
	var borrow uint64
	r[0], borrow = bits.Sub64(a[0], b[0], 0)
	r[1], borrow = bits.Sub64(a[1], b[1], borrow)
	r[2], _ = bits.Sub64(a[2], b[2], borrow)
	return r
}

// mulShiftRound returns round(t*g / 2^320). For t < r the result is below
// 2^127 and fits two limbs.
func mulShiftRound(t, g *[4]uint64) [2]uint64 {
	p := mul256(t, g)
	lo, c := bits.Add64(p[5], p[4]>>63, 0)
	return [2]uint64{lo, p[6] + c}
}

// splitLambda splits k into k1, k2 with k == k1 + k2*lambda (mod r), both
// odd and in (-2^128, 2^128).
//
// With t = (k + 1 + lambda)/2 mod r, Babai rounding against the reduced
// basis gives t == t1 + t2*lambda with |ti| < 2^126. Then ki = 2*ti - 1 are
// odd and 2*t - (1 + lambda) = k. Every step is branch-free; signs are
// carried in two's complement.
func splitLambda(k *Scalar) (k1, k2 splitScalar) {
	var s [4]uint64
	var carry uint64

	// s = k + 1 + lambda mod r
	s[0], carry = bits.Add64(k.d[0], onePlusLambda.d[0], 0)
	s[1], carry = bits.Add64(k.d[1], onePlusLambda.d[1], carry)
	s[2], carry = bits.Add64(k.d[2], onePlusLambda.d[2], carry)
	s[3], _ = bits.Add64(k.d[3], onePlusLambda.d[3], carry)
	condSub(&s, &scalarOrder)

	// t = s/2 mod r: add r when s is odd, then shift
	mask := -(s[0] & 1)
	s[0], carry = bits.Add64(s[0], scalarR0&mask, 0)
	s[1], carry = bits.Add64(s[1], scalarR1&mask, carry)
	s[2], carry = bits.Add64(s[2], scalarR2&mask, carry)
	s[3], carry = bits.Add64(s[3], scalarR3&mask, carry)

	var t [4]uint64
	t[0] = (s[0] >> 1) | (s[1] << 63)
	t[1] = (s[1] >> 1) | (s[2] << 63)
	t[2] = (s[2] >> 1) | (s[3] << 63)
	t[3] = (s[3] >> 1) | (carry << 63)

	b1 := mulShiftRound(&t, &g1)
	b2 := mulShiftRound(&t, &g2)

	// t1 = t - b1*A - b2*B, t2 = b2*A - b1*B
	t1 := sub192([3]uint64{t[0], t[1], t[2]}, mul128(&b1, &latticeA))
	t1 = sub192(t1, mul128(&b2, &latticeB))
	t2 := sub192(mul128(&b2, &latticeA), mul128(&b1, &latticeB))

	k1.setDoubleMinusOne(t1)
	k2.setDoubleMinusOne(t2)
	return
}

// setDoubleMinusOne sets r = 2*t - 1 mod 2^192
func (r *splitScalar) setDoubleMinusOne(t [3]uint64) {
	d := [3]uint64{
		t[0] << 1,
		(t[1] << 1) | (t[0] >> 63),
		(t[2] << 1) | (t[1] >> 63),
	}
	r.v = sub192(d, [3]uint64{1, 0, 0})
}

// isNegative returns 1 if r < 0
func (r *splitScalar) isNegative() int {
	return int(r.v[2] >> 63)
}

// Endomorphism returns psi(p) = lambda*p. It costs two subfield additions
// and one multiplication by u.
func Endomorphism(p *Point) Point {
	var r Point
	r.endomorphism(p)
	return r
}

// Lambda returns the eigenvalue lambda of psi, a square root of -1 mod r.
func Lambda() Scalar {
	return lambdaConstant
}
