package gls254

// gfb127 is an element of GF(2^127) = GF(2)[z]/(z^127 + z^63 + 1), as two
// little-endian 64-bit words. Bit 127 is always clear, so every value is
// canonical and equality is word equality.
type gfb127 [2]uint64

const gfb127TopMask = 0x7FFFFFFFFFFFFFFF

var (
	gfb127Zero = gfb127{0, 0}
	gfb127One  = gfb127{1, 0}
)

// add sets r = a + b (XOR).
func (r *gfb127) add(a, b *gfb127) {
	r[0] = a[0] ^ b[0]
	r[1] = a[1] ^ b[1]
}

// isZero returns 1 if r is zero, 0 otherwise.
func (r *gfb127) isZero() int {
	v := r[0] | r[1]
	return int(((v | -v) >> 63) ^ 1)
}

// equal returns 1 if r == a, 0 otherwise.
func (r *gfb127) equal(a *gfb127) int {
	t := gfb127{r[0] ^ a[0], r[1] ^ a[1]}
	return t.isZero()
}

// cmov sets r = a if flag is 1; flag must be 0 or 1.
func (r *gfb127) cmov(a *gfb127, flag int) {
	mask := uint64(-flag)
	r[0] ^= mask & (r[0] ^ a[0])
	r[1] ^= mask & (r[1] ^ a[1])
}

// sqrt sets r = sqrt(a).
// a = E(z^2) + z*O(z^2) so sqrt(a) = E(z) + sqrt(z)*O(z), sqrt(z) = z^64 + z^32.
// O has at most 63 bits, so no reduction is needed.
func (r *gfb127) sqrt(a *gfb127) {
	e := uint64(squeeze64(a[0])) | uint64(squeeze64(a[1]))<<32
	o := uint64(squeeze64(a[0]>>1)) | uint64(squeeze64(a[1]>>1))<<32
	r[0] = e ^ (o << 32)
	r[1] = o ^ (o >> 32)
}

// inv sets r = 1/a, using a^(2^127 - 2) (Itoh-Tsujii chain). inv(0) = 0.
func (r *gfb127) inv(a *gfb127) {
	var b2, b3, b6, b12, b24, b48, b96, t gfb127

	// bk = a^(2^k - 1)
	t.sqr(a)
	b2.mul(&t, a)
	t.sqr(&b2)
	b3.mul(&t, a)
	t.sqrn(&b3, 3)
	b6.mul(&t, &b3)
	t.sqrn(&b6, 6)
	b12.mul(&t, &b6)
	t.sqrn(&b12, 12)
	b24.mul(&t, &b12)
	t.sqrn(&b24, 24)
	b48.mul(&t, &b24)
	t.sqrn(&b48, 48)
	b96.mul(&t, &b48)
	t.sqrn(&b96, 24)
	t.mul(&t, &b24) // b120
	t.sqrn(&t, 6)
	t.mul(&t, &b6) // b126
	r.sqr(&t)
}

// trace returns Tr(r) in {0, 1}. For this modulus the trace is bit 0.
func (r *gfb127) trace() uint64 {
	return r[0] & 1
}

// halfTrace sets r = sum_{i=0}^{63} a^(4^i). When Tr(a) = 0, x = halfTrace(a)
// solves x^2 + x = a.
func (r *gfb127) halfTrace(a *gfb127) {
	t := *a
	acc := *a
	for i := 0; i < 63; i++ {
		t.sqr(&t)
		t.sqr(&t)
		acc.add(&acc, &t)
	}
	*r = acc
}
