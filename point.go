package gls254

// PointSize is the size in bytes of an encoded point.
const PointSize = 32

// Bytes returns the canonical 32-byte encoding of p.
//
// Bits 0..253 hold the field encoding of x, bit 254 holds the low bit of
// the c0 half of y/x, and bit 255 is zero. The neutral element encodes as
// 32 zero bytes.
func (p *Point) Bytes() [PointSize]byte {
	var out [PointSize]byte
	var w, xi FieldElement

	xi.inv(&p.x)
	w.mul(&p.y, &xi)
	p.x.getB32(out[:])
	out[31] |= byte(w.c0[0]&1) << 6

	m := byte(p.infinity - 1)
	for i := range out {
		out[i] &= m
	}
	return out
}

// SetBytes decodes a 32-byte point encoding into p.
//
// The input is public, so errors are reported by branching. Rejected are:
// wrong length, bit 255 set, x = 0 with the sign bit set, x outside the
// prime-order subgroup (Tr(x) = 0), and x with no matching y on the curve.
func (p *Point) SetBytes(b []byte) error {
	if len(b) != PointSize {
		return errInvalidLength("point", PointSize, len(b))
	}
	if b[31]&0x80 != 0 {
		return wrapDecode("point has bit 255 set")
	}
	sign := uint64(b[31]>>6) & 1

	var x FieldElement
	x.setB32(b)
	if x.isZero() == 1 {
		if sign != 0 {
			return wrapDecode("neutral element with sign bit set")
		}
		*p = Identity()
		return nil
	}
	if x.trace() != 1 {
		return wrapDecode("point is not in the prime-order subgroup")
	}

	// With y = w*x the curve equation becomes w^2 + w = x + a + b/x^2.
	var c, t, w FieldElement
	t.inv(&x)
	t.sqr(&t)
	t.mulB(&t)
	c.add(&x, &fieldU)
	c.add(&c, &t)
	if w.solveQuadratic(&c) == 0 {
		return wrapDecode("point is not on the curve")
	}
	w.c0[0] ^= (w.c0[0] & 1) ^ sign

	p.x = x
	p.y.mul(&w, &x)
	p.infinity = 0
	return nil
}

// NewPointFromBytes decodes a 32-byte point encoding.
func NewPointFromBytes(b []byte) (Point, error) {
	var p Point
	if err := p.SetBytes(b); err != nil {
		return Point{}, err
	}
	return p, nil
}
