package gls254

// Carry-less multiplication on 64-bit words.
//
// There is no portable carry-less multiply opcode reachable from Go, so
// products are computed with ordinary integer multiplications on operands
// whose active bits are separated by three-bit holes. A 32x32 product has
// at most 8 terms per output position, so the carries never reach the next
// bit of the same residue class and masking recovers the XOR of the terms.
// Execution time does not depend on the operand values.

// bmul32 returns the 64-bit carry-less product of x and y.
func bmul32(x, y uint32) uint64 {
	x0 := uint64(x & 0x11111111)
	x1 := uint64(x & 0x22222222)
	x2 := uint64(x & 0x44444444)
	x3 := uint64(x & 0x88888888)
	y0 := uint64(y & 0x11111111)
	y1 := uint64(y & 0x22222222)
	y2 := uint64(y & 0x44444444)
	y3 := uint64(y & 0x88888888)

	z0 := (x0 * y0) ^ (x1 * y3) ^ (x2 * y2) ^ (x3 * y1)
	z1 := (x0 * y1) ^ (x1 * y0) ^ (x2 * y3) ^ (x3 * y2)
	z2 := (x0 * y2) ^ (x1 * y1) ^ (x2 * y0) ^ (x3 * y3)
	z3 := (x0 * y3) ^ (x1 * y2) ^ (x2 * y1) ^ (x3 * y0)

	z0 &= 0x1111111111111111
	z1 &= 0x2222222222222222
	z2 &= 0x4444444444444444
	z3 &= 0x8888888888888888
	return z0 | z1 | z2 | z3
}

// bmul64 returns the 128-bit carry-less product of x and y (one Karatsuba
// step over bmul32).
func bmul64(x, y uint64) (lo, hi uint64) {
	xl, xh := uint32(x), uint32(x>>32)
	yl, yh := uint32(y), uint32(y>>32)

	a := bmul32(xl, yl)
	b := bmul32(xh, yh)
	c := bmul32(xl^xh, yl^yh) ^ a ^ b

	lo = a ^ (c << 32)
	hi = b ^ (c >> 32)
	return lo, hi
}

// spread32 interleaves zero bits into x: bit i of x becomes bit 2i of the
// result. Squaring in characteristic 2 is exactly this operation.
func spread32(x uint32) uint64 {
	y := uint64(x)
	y = (y | (y << 16)) & 0x0000FFFF0000FFFF
	y = (y | (y << 8)) & 0x00FF00FF00FF00FF
	y = (y | (y << 4)) & 0x0F0F0F0F0F0F0F0F
	y = (y | (y << 2)) & 0x3333333333333333
	y = (y | (y << 1)) & 0x5555555555555555
	return y
}

// squeeze64 is the inverse of spread32: it gathers the even-indexed bits of x.
func squeeze64(x uint64) uint32 {
	x &= 0x5555555555555555
	x = (x | (x >> 1)) & 0x3333333333333333
	x = (x | (x >> 2)) & 0x0F0F0F0F0F0F0F0F
	x = (x | (x >> 4)) & 0x00FF00FF00FF00FF
	x = (x | (x >> 8)) & 0x0000FFFF0000FFFF
	x = (x | (x >> 16)) & 0x00000000FFFFFFFF
	return uint32(x)
}

// mul sets r = a * b in GF(2^127).
// Three bmul64 calls (Karatsuba) give the 253-bit product, then reduce.
func (r *gfb127) mul(a, b *gfb127) {
	l0, l1 := bmul64(a[0], b[0])
	h0, h1 := bmul64(a[1], b[1])
	m0, m1 := bmul64(a[0]^a[1], b[0]^b[1])
	m0 ^= l0 ^ h0
	m1 ^= l1 ^ h1
	r.reduce(l0, l1^m0, h0^m1, h1)
}

// sqr sets r = a^2 in GF(2^127).
func (r *gfb127) sqr(a *gfb127) {
	r.reduce(
		spread32(uint32(a[0])),
		spread32(uint32(a[0]>>32)),
		spread32(uint32(a[1])),
		spread32(uint32(a[1]>>32)),
	)
}

// sqrn sets r = a^(2^n). n is a public constant.
func (r *gfb127) sqrn(a *gfb127, n int) {
	*r = *a
	for i := 0; i < n; i++ {
		r.sqr(r)
	}
}

// reduce sets r to the 253-bit polynomial c0 + c1*2^64 + c2*2^128 + c3*2^192
// modulo z^127 + z^63 + 1.
//
// With V = L + z^127*H, z^127 = z^63 + 1 gives V = L + H + z^63*H; the
// part of z^63*H above bit 126 is H>>64 (at most 62 bits), folded once more.
func (r *gfb127) reduce(c0, c1, c2, c3 uint64) {
	h0 := (c1 >> 63) | (c2 << 1)
	h1 := (c2 >> 63) | (c3 << 1)

	r0 := c0 ^ h0 ^ (h0 << 63) ^ h1 ^ (h1 << 63)
	r1 := (c1 & gfb127TopMask) ^ h1 ^ (((h0 >> 1) | (h1 << 63)) & gfb127TopMask) ^ (h1 >> 1)
	r[0] = r0
	r[1] = r1
}

// mulB sets r = a * (1 + z^27); b = 1 + z^27 is the curve constant.
func (r *gfb127) mulB(a *gfb127) {
	s0 := a[0] << 27
	s1 := (a[1] << 27) | (a[0] >> 37)
	s2 := a[1] >> 37

	h := (s1 >> 63) | (s2 << 1)
	s1 &= gfb127TopMask
	s0 ^= h ^ (h << 63)
	s1 ^= h >> 1

	r[0] = a[0] ^ s0
	r[1] = a[1] ^ s1
}
