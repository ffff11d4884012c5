package gls254

import (
	"encoding/binary"
	"unsafe"
)

// FieldElement represents an element of GF(2^254) = GF(2^127)[u]/(u^2 + u + 1)
// as c0 + c1*u. Both halves are always canonical, so equality is bit
// equality and no normalization step exists.
type FieldElement struct {
	c0, c1 gfb127
}

// FieldElementSize is the size in bytes of an encoded field element.
const FieldElementSize = 32

// Field element constants
var (
	// FieldElementZero represents the zero field element
	FieldElementZero = FieldElement{}

	// FieldElementOne represents the field element 1
	FieldElementOne = FieldElement{c0: gfb127One}

	// fieldU is the field element u, also the curve constant a
	fieldU = FieldElement{c1: gfb127One}
)

// setB32 decodes 32 little-endian bytes: bits 0..126 are c0, bits 127..253
// are c1. Bits 254 and 255 are ignored; the caller checks them.
func (r *FieldElement) setB32(b []byte) {
	w0 := binary.LittleEndian.Uint64(b[0:8])
	w1 := binary.LittleEndian.Uint64(b[8:16])
	w2 := binary.LittleEndian.Uint64(b[16:24])
	w3 := binary.LittleEndian.Uint64(b[24:32])

	r.c0[0] = w0
	r.c0[1] = w1 & gfb127TopMask
	r.c1[0] = (w1 >> 63) | (w2 << 1)
	r.c1[1] = ((w2 >> 63) | (w3 << 1)) & gfb127TopMask
}

// getB32 encodes r into 32 little-endian bytes; bits 254 and 255 are zero.
func (r *FieldElement) getB32(b []byte) {
	binary.LittleEndian.PutUint64(b[0:8], r.c0[0])
	binary.LittleEndian.PutUint64(b[8:16], r.c0[1]|(r.c1[0]<<63))
	binary.LittleEndian.PutUint64(b[16:24], (r.c1[0]>>1)|(r.c1[1]<<63))
	binary.LittleEndian.PutUint64(b[24:32], r.c1[1]>>1)
}

// SetBytes sets r from its 32-byte encoding. The two top bits must be clear.
func (r *FieldElement) SetBytes(b []byte) error {
	if len(b) != FieldElementSize {
		return errInvalidLength("field element", FieldElementSize, len(b))
	}
	if b[31]&0xC0 != 0 {
		return wrapDecode("field element has bits set above 2^254")
	}
	r.setB32(b)
	return nil
}

// Bytes returns the 32-byte little-endian encoding of r.
func (r *FieldElement) Bytes() [FieldElementSize]byte {
	var out [FieldElementSize]byte
	r.getB32(out[:])
	return out
}

// add sets r = a + b
func (r *FieldElement) add(a, b *FieldElement) {
	r.c0.add(&a.c0, &b.c0)
	r.c1.add(&a.c1, &b.c1)
}

// mul sets r = a * b. With u^2 = u + 1:
// (a0 + a1 u)(b0 + b1 u) = (a0b0 + a1b1) + ((a0 + a1)(b0 + b1) + a0b0) u
func (r *FieldElement) mul(a, b *FieldElement) {
	var p0, p1, pm, s, t gfb127
	p0.mul(&a.c0, &b.c0)
	p1.mul(&a.c1, &b.c1)
	s.add(&a.c0, &a.c1)
	t.add(&b.c0, &b.c1)
	pm.mul(&s, &t)
	r.c0.add(&p0, &p1)
	r.c1.add(&pm, &p0)
}

// sqr sets r = a^2 = (a0^2 + a1^2) + a1^2 u
func (r *FieldElement) sqr(a *FieldElement) {
	var s0, s1 gfb127
	s0.sqr(&a.c0)
	s1.sqr(&a.c1)
	r.c0.add(&s0, &s1)
	r.c1 = s1
}

// sqrn sets r = a^(2^n)
func (r *FieldElement) sqrn(a *FieldElement, n int) {
	*r = *a
	for i := 0; i < n; i++ {
		r.sqr(r)
	}
}

// mulU sets r = u * a = a1 + (a0 + a1) u
func (r *FieldElement) mulU(a *FieldElement) {
	c0 := a.c1
	r.c1.add(&a.c0, &a.c1)
	r.c0 = c0
}

// mulB sets r = b * a where b = 1 + z^27 is the curve constant
func (r *FieldElement) mulB(a *FieldElement) {
	r.c0.mulB(&a.c0)
	r.c1.mulB(&a.c1)
}

// sqrt sets r = sqrt(a): s1 = sqrt(a1), s0 = sqrt(a0 + a1)
func (r *FieldElement) sqrt(a *FieldElement) {
	var t gfb127
	t.add(&a.c0, &a.c1)
	r.c1.sqrt(&a.c1)
	r.c0.sqrt(&t)
}

// inv sets r = 1/a. The zero element maps to zero; this sentinel is only
// reached on inputs that are the neutral element, whose callers select the
// result away. Use Invert for a checked inversion.
//
// 1/(a0 + a1 u) = ((a0 + a1) + a1 u) / N with N = a0^2 + a0 a1 + a1^2 in GF(2^127).
func (r *FieldElement) inv(a *FieldElement) {
	var n, t, s gfb127
	n.sqr(&a.c0)
	t.sqr(&a.c1)
	n.add(&n, &t)
	t.mul(&a.c0, &a.c1)
	n.add(&n, &t)
	n.inv(&n)

	s.add(&a.c0, &a.c1)
	r.c1.mul(&a.c1, &n)
	r.c0.mul(&s, &n)
}

// Invert sets r = 1/a and returns ErrUndefined if a is zero.
func (r *FieldElement) Invert(a *FieldElement) error {
	if a.isZero() == 1 {
		return ErrUndefined
	}
	r.inv(a)
	return nil
}

// trace returns Tr(r) over GF(2). Tr(a0 + a1 u) = Tr127(a1) since
// a + a^q = a1.
func (r *FieldElement) trace() uint64 {
	return r.c1.trace()
}

// frobenius sets r = a^(2^127): u^q = u + 1, so (a0 + a1 u) -> (a0 + a1) + a1 u
func (r *FieldElement) frobenius(a *FieldElement) {
	r.c0.add(&a.c0, &a.c1)
	r.c1 = a.c1
}

// solveQuadratic sets r to a solution of x^2 + x = c and returns 1, or
// returns 0 when none exists (Tr(c) = 1), leaving garbage in r.
//
// Writing x = x0 + x1 u: x1^2 + x1 = c1 and x0^2 + x0 = c0 + x1^2. When the
// second equation has trace 1, x1 + 1 (the other root of the first) is used.
func (r *FieldElement) solveQuadratic(c *FieldElement) int {
	ok := int(c.c1.trace() ^ 1)

	var x0, x1, d gfb127
	x1.halfTrace(&c.c1)
	d.sqr(&x1)
	d.add(&d, &c.c0)
	t := d.trace()
	x1[0] ^= t
	d[0] ^= t
	x0.halfTrace(&d)

	r.c0 = x0
	r.c1 = x1
	return ok
}

// isZero returns 1 if r is zero, 0 otherwise
func (r *FieldElement) isZero() int {
	v := r.c0[0] | r.c0[1] | r.c1[0] | r.c1[1]
	return int(((v | -v) >> 63) ^ 1)
}

// equal returns 1 if r == a, 0 otherwise
func (r *FieldElement) equal(a *FieldElement) int {
	var t FieldElement
	t.add(r, a)
	return t.isZero()
}

// Equal reports whether r and a are the same field element.
func (r *FieldElement) Equal(a *FieldElement) bool {
	return r.equal(a) == 1
}

// cmov sets r = a when flag is 1, leaves r unchanged when flag is 0
func (r *FieldElement) cmov(a *FieldElement, flag int) {
	r.c0.cmov(&a.c0, flag)
	r.c1.cmov(&a.c1, flag)
}

// clear wipes r
func (r *FieldElement) clear() {
	memclear(unsafe.Pointer(r), unsafe.Sizeof(*r))
}

// memclear clears n bytes at ptr
func memclear(ptr unsafe.Pointer, n uintptr) {
	s := unsafe.Slice((*byte)(ptr), n)
	for i := range s {
		s[i] = 0
	}
}

// batchInverse sets out[i] = 1/a[i] with a single field inversion
// (Montgomery's trick). Zero inputs must be replaced by the caller.
func batchInverse(out []FieldElement, a []FieldElement) {
	n := len(a)
	if n == 0 {
		return
	}

	// out[i] = a[0] * ... * a[i]
	out[0] = a[0]
	for i := 1; i < n; i++ {
		out[i].mul(&out[i-1], &a[i])
	}

	var u FieldElement
	u.inv(&out[n-1])

	for i := n - 1; i > 0; i-- {
		var t FieldElement
		t.mul(&u, &out[i-1])
		u.mul(&u, &a[i])
		out[i] = t
	}
	out[0] = u
}
