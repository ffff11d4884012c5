package gls254

import (
	"crypto/subtle"
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// Scalar represents an integer modulo the prime group order r of GLS254,
// as 4 little-endian 64-bit limbs. Scalars are always fully reduced.
type Scalar struct {
	d [4]uint64
}

// ScalarSize is the size in bytes of an encoded scalar.
const ScalarSize = 32

// Group order constants, r = 2^253 + 83877821160623817322862211711964450037
const (
	scalarR0 = 0x3CBDE37CF43A8CF5
	scalarR1 = 0x3F1A47DEDC1A1DAD
	scalarR2 = 0x0000000000000000
	scalarR3 = 0x2000000000000000

	// -1/r mod 2^64
	scalarN0Inv = 0xF1B8C3BD80AF40A3
)

var (
	scalarOrder  = [4]uint64{scalarR0, scalarR1, scalarR2, scalarR3}
	scalarOrder2 = [4]uint64{0x797BC6F9E87519EA, 0x7E348FBDB8343B5A, 0, 0x4000000000000000}
	scalarOrder4 = [4]uint64{0xF2F78DF3D0EA33D4, 0xFC691F7B706876B4, 0, 0x8000000000000000}

	// 2^512 mod r, converts into the Montgomery domain
	scalarMontR2 = [4]uint64{0x022ECFAB95218C95, 0xABCDFE595711599A, 0x8510970B88ED0113, 0x037C849771BC0090}

	// r - 2, the Fermat inversion exponent
	scalarOrderMinus2 = [4]uint64{0x3CBDE37CF43A8CF3, 0x3F1A47DEDC1A1DAD, 0, 0x2000000000000000}
)

// Scalar constants
var (
	// ScalarZero represents the scalar 0
	ScalarZero = Scalar{}

	// ScalarOne represents the scalar 1
	ScalarOne = Scalar{d: [4]uint64{1, 0, 0, 0}}
)

// setB32 sets r from 32 little-endian bytes, reducing modulo r.
func (r *Scalar) setB32(b []byte) {
	r.d[0] = binary.LittleEndian.Uint64(b[0:8])
	r.d[1] = binary.LittleEndian.Uint64(b[8:16])
	r.d[2] = binary.LittleEndian.Uint64(b[16:24])
	r.d[3] = binary.LittleEndian.Uint64(b[24:32])
	r.reduce()
}

// getB32 writes r as 32 little-endian bytes
func (r *Scalar) getB32(b []byte) {
	binary.LittleEndian.PutUint64(b[0:8], r.d[0])
	binary.LittleEndian.PutUint64(b[8:16], r.d[1])
	binary.LittleEndian.PutUint64(b[16:24], r.d[2])
	binary.LittleEndian.PutUint64(b[24:32], r.d[3])
}

// condSub sets d = d - m if d >= m. Constant time.
func condSub(d *[4]uint64, m *[4]uint64) {
	var t [4]uint64
	var borrow uint64
	t[0], borrow = bits.Sub64(d[0], m[0], 0)
	t[1], borrow = bits.Sub64(d[1], m[1], borrow)
	t[2], borrow = bits.Sub64(d[2], m[2], borrow)
	t[3], borrow = bits.Sub64(d[3], m[3], borrow)

	mask := borrow - 1
	d[0] ^= mask & (d[0] ^ t[0])
	d[1] ^= mask & (d[1] ^ t[1])
	d[2] ^= mask & (d[2] ^ t[2])
	d[3] ^= mask & (d[3] ^ t[3])
}

// reduce brings any 256-bit value below r: 2^256 < 8r, so three
// conditional subtractions of 4r, 2r and r suffice.
func (r *Scalar) reduce() {
	condSub(&r.d, &scalarOrder4)
	condSub(&r.d, &scalarOrder2)
	condSub(&r.d, &scalarOrder)
}

// checkOverflow returns 1 if r >= the group order
func (r *Scalar) checkOverflow() int {
	var borrow uint64
	_, borrow = bits.Sub64(r.d[0], scalarR0, 0)
	_, borrow = bits.Sub64(r.d[1], scalarR1, borrow)
	_, borrow = bits.Sub64(r.d[2], scalarR2, borrow)
	_, borrow = bits.Sub64(r.d[3], scalarR3, borrow)
	return int(borrow ^ 1)
}

// setInt sets r to a small value
func (r *Scalar) setInt(v uint64) {
	r.d = [4]uint64{v, 0, 0, 0}
}

// add sets r = a + b mod r. Both inputs are below 2^254, so the sum fits.
func (r *Scalar) add(a, b *Scalar) {
	var carry uint64
	r.d[0], carry = bits.Add64(a.d[0], b.d[0], 0)
	r.d[1], carry = bits.Add64(a.d[1], b.d[1], carry)
	r.d[2], carry = bits.Add64(a.d[2], b.d[2], carry)
	r.d[3], _ = bits.Add64(a.d[3], b.d[3], carry)
	condSub(&r.d, &scalarOrder)
}

// negate sets r = -a mod r
func (r *Scalar) negate(a *Scalar) {
	var t [4]uint64
	var borrow uint64
	t[0], borrow = bits.Sub64(scalarR0, a.d[0], 0)
	t[1], borrow = bits.Sub64(scalarR1, a.d[1], borrow)
	t[2], borrow = bits.Sub64(scalarR2, a.d[2], borrow)
	t[3], _ = bits.Sub64(scalarR3, a.d[3], borrow)

	// -0 must stay 0, not r
	zero := a.isZero()
	mask := uint64(zero) - 1
	for i := range t {
		r.d[i] = t[i] & mask
	}
}

// sub sets r = a - b mod r
func (r *Scalar) sub(a, b *Scalar) {
	var nb Scalar
	nb.negate(b)
	r.add(a, &nb)
}

// montMul returns a*b/2^256 mod r (CIOS Montgomery multiplication). Inputs
// must be below r.
func montMul(a, b *[4]uint64) [4]uint64 {
	var t [6]uint64
	for i := 0; i < 4; i++ {
		var c, cc uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a[j], b[i])
			lo, cc = bits.Add64(lo, t[j], 0)
			hi += cc
			lo, cc = bits.Add64(lo, c, 0)
			hi += cc
			t[j] = lo
			c = hi
		}
		t[4], cc = bits.Add64(t[4], c, 0)
		t[5] = cc

		m := t[0] * scalarN0Inv
		hi, lo := bits.Mul64(m, scalarOrder[0])
		_, cc = bits.Add64(lo, t[0], 0)
		c = hi + cc
		for j := 1; j < 4; j++ {
			hi, lo = bits.Mul64(m, scalarOrder[j])
			lo, cc = bits.Add64(lo, t[j], 0)
			hi += cc
			lo, cc = bits.Add64(lo, c, 0)
			hi += cc
			t[j-1] = lo
			c = hi
		}
		t[3], cc = bits.Add64(t[4], c, 0)
		t[4] = t[5] + cc
	}

	// t < 2r < 2^255, so t[4] is zero here
	out := [4]uint64{t[0], t[1], t[2], t[3]}
	condSub(&out, &scalarOrder)
	return out
}

// mul sets r = a * b mod r
func (r *Scalar) mul(a, b *Scalar) {
	t := montMul(&a.d, &b.d)
	r.d = montMul(&t, &scalarMontR2)
}

// setWide sets r = (lo + hi*2^256) mod r from 64 little-endian bytes
func (r *Scalar) setWide(b []byte) {
	var lo, hi Scalar
	lo.setB32(b[0:32])
	hi.setB32(b[32:64])

	// montMul(hi, R^2) = hi * 2^256 mod r
	hi.d = montMul(&hi.d, &scalarMontR2)
	r.add(&lo, &hi)
}

// inverse sets r = 1/a mod r by Fermat's little theorem. The exponent is
// public; the multiplications are unconditional. The inverse of 0 is 0.
func (r *Scalar) inverse(a *Scalar) {
	var x, acc, t [4]uint64
	x = montMul(&a.d, &scalarMontR2)

	// acc = 1 in the Montgomery domain
	one := [4]uint64{1, 0, 0, 0}
	acc = montMul(&one, &scalarMontR2)

	for i := 255; i >= 0; i-- {
		acc = montMul(&acc, &acc)
		t = montMul(&acc, &x)
		bit := (scalarOrderMinus2[i>>6] >> uint(i&63)) & 1
		mask := -bit
		for j := range acc {
			acc[j] ^= mask & (acc[j] ^ t[j])
		}
	}
	r.d = montMul(&acc, &one)
}

// isZero returns 1 if r is zero
func (r *Scalar) isZero() int {
	v := r.d[0] | r.d[1] | r.d[2] | r.d[3]
	return int(((v | -v) >> 63) ^ 1)
}

// equal returns 1 if r == a
func (r *Scalar) equal(a *Scalar) int {
	return subtle.ConstantTimeCompare(
		(*[32]byte)(unsafe.Pointer(&r.d[0]))[:],
		(*[32]byte)(unsafe.Pointer(&a.d[0]))[:],
	)
}

// cmov sets r = a when flag is 1, leaves r unchanged when flag is 0
func (r *Scalar) cmov(a *Scalar, flag int) {
	mask := uint64(-flag)
	r.d[0] ^= mask & (r.d[0] ^ a.d[0])
	r.d[1] ^= mask & (r.d[1] ^ a.d[1])
	r.d[2] ^= mask & (r.d[2] ^ a.d[2])
	r.d[3] ^= mask & (r.d[3] ^ a.d[3])
}

// clear wipes r
func (r *Scalar) clear() {
	memclear(unsafe.Pointer(&r.d[0]), unsafe.Sizeof(r.d))
}

// Exported API

// NewScalarFromUint64 returns the scalar v.
func NewScalarFromUint64(v uint64) Scalar {
	var s Scalar
	s.setInt(v)
	return s
}

// NewScalarFromBytes decodes 32 little-endian bytes, reducing modulo r.
// Only the length can be wrong.
func NewScalarFromBytes(b []byte) (Scalar, error) {
	var s Scalar
	if len(b) != ScalarSize {
		return s, errInvalidLength("scalar", ScalarSize, len(b))
	}
	s.setB32(b)
	return s, nil
}

// NewScalarFromCanonicalBytes decodes 32 little-endian bytes and rejects
// values that are not below r.
func NewScalarFromCanonicalBytes(b []byte) (Scalar, error) {
	var s Scalar
	if len(b) != ScalarSize {
		return s, errInvalidLength("scalar", ScalarSize, len(b))
	}
	s.d[0] = binary.LittleEndian.Uint64(b[0:8])
	s.d[1] = binary.LittleEndian.Uint64(b[8:16])
	s.d[2] = binary.LittleEndian.Uint64(b[16:24])
	s.d[3] = binary.LittleEndian.Uint64(b[24:32])
	if s.checkOverflow() == 1 {
		return Scalar{}, wrapDecode("scalar is not below the group order")
	}
	return s, nil
}

// NewScalarFromWideBytes reduces a 64-byte little-endian integer modulo r.
// Uniform 64-byte input gives a scalar with negligible bias.
func NewScalarFromWideBytes(b []byte) (Scalar, error) {
	var s Scalar
	if len(b) != 2*ScalarSize {
		return s, errInvalidLength("wide scalar", 2*ScalarSize, len(b))
	}
	s.setWide(b)
	return s, nil
}

// Bytes returns the 32-byte little-endian encoding of r.
func (r *Scalar) Bytes() [ScalarSize]byte {
	var out [ScalarSize]byte
	r.getB32(out[:])
	return out
}

// Add sets r = a + b and returns r.
func (r *Scalar) Add(a, b *Scalar) *Scalar {
	r.add(a, b)
	return r
}

// Sub sets r = a - b and returns r.
func (r *Scalar) Sub(a, b *Scalar) *Scalar {
	r.sub(a, b)
	return r
}

// Mul sets r = a * b and returns r.
func (r *Scalar) Mul(a, b *Scalar) *Scalar {
	r.mul(a, b)
	return r
}

// Negate sets r = -a and returns r.
func (r *Scalar) Negate(a *Scalar) *Scalar {
	r.negate(a)
	return r
}

// Invert sets r = 1/a and returns ErrUndefined if a is zero.
func (r *Scalar) Invert(a *Scalar) error {
	if a.isZero() == 1 {
		return ErrUndefined
	}
	r.inverse(a)
	return nil
}

// IsZero reports whether r is zero.
func (r *Scalar) IsZero() bool {
	return r.isZero() == 1
}

// Equal reports whether r and a are equal. Runs in constant time.
func (r *Scalar) Equal(a *Scalar) bool {
	return r.equal(a) == 1
}
