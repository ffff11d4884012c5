package gls254

// Point is an element of the prime-order subgroup of GLS254, in affine
// coordinates (x, y) on y^2 + x*y = x^3 + a*x^2 + b with a = u, b = 1 + z^27.
//
// The neutral element is the tagged case infinity == 1 with x = y = 0. The
// group law never branches on it: it is carried as a 0/1 flag and resolved
// with masked selection. Points are values; operations write their result
// into the receiver and never modify their operands.
type Point struct {
	x, y     FieldElement
	infinity int
}

// groupElementLD is a point in López-Dahab projective coordinates, with
// x = X/Z and y = Y/Z^2. Z = 0 is the neutral element.
type groupElementLD struct {
	x, y, z FieldElement
}

// generator is the conventional base point G: x = z^3 + z + u, with the
// root y whose encoding sign bit is 0.
var generator = Point{
	x: FieldElement{
		c0: gfb127{0x000000000000000A, 0x0000000000000000},
		c1: gfb127{0x0000000000000001, 0x0000000000000000},
	},
	y: FieldElement{
		c0: gfb127{0x584F58FDC7C4DFF7, 0x05BCB9641F1FB6B5},
		c1: gfb127{0x4C0718E7AE68A456, 0x387F1CF35FA10AFF},
	},
}

// Identity returns the neutral element.
func Identity() Point {
	return Point{infinity: 1}
}

// Generator returns the conventional base point G.
func Generator() Point {
	return generator
}

// IsInfinity reports whether p is the neutral element.
func (p *Point) IsInfinity() bool {
	return p.infinity == 1
}

// Equal reports whether p and a are the same point. Runs in constant time.
func (p *Point) Equal(a *Point) bool {
	eq := p.x.equal(&a.x) & p.y.equal(&a.y)
	eq &= 1 ^ ((p.infinity ^ a.infinity) & 1)
	return eq == 1
}

// IsOnCurve reports whether p is the neutral element or an affine point of
// the prime-order subgroup (on the curve and Tr(x) = 1).
func (p *Point) IsOnCurve() bool {
	if p.infinity == 1 {
		return p.x.isZero()&p.y.isZero() == 1
	}

	// y^2 + x*y = x^3 + a*x^2 + b
	var lhs, rhs, x2, t FieldElement
	lhs.sqr(&p.y)
	t.mul(&p.x, &p.y)
	lhs.add(&lhs, &t)

	x2.sqr(&p.x)
	rhs.mul(&x2, &p.x)
	t.mulU(&x2)
	rhs.add(&rhs, &t)
	t.mulB(&FieldElementOne)
	rhs.add(&rhs, &t)

	return lhs.equal(&rhs) == 1 && p.x.trace() == 1
}

// X returns the affine x coordinate (zero for the neutral element).
func (p *Point) X() FieldElement {
	return p.x
}

// Y returns the affine y coordinate (zero for the neutral element).
func (p *Point) Y() FieldElement {
	return p.y
}

// Set sets p = a and returns p.
func (p *Point) Set(a *Point) *Point {
	*p = *a
	return p
}

// Negate sets p = -a and returns p. In characteristic 2, -(x, y) = (x, x + y);
// the neutral element (0, 0) maps to itself.
func (p *Point) Negate(a *Point) *Point {
	p.x = a.x
	p.y.add(&a.x, &a.y)
	p.infinity = a.infinity
	return p
}

// condNegate negates p when flag is 1
func (p *Point) condNegate(flag int) {
	var ny FieldElement
	ny.add(&p.x, &p.y)
	p.y.cmov(&ny, flag)
}

// cmov sets p = a when flag is 1
func (p *Point) cmov(a *Point, flag int) {
	p.x.cmov(&a.x, flag)
	p.y.cmov(&a.y, flag)
	mask := -flag
	p.infinity ^= mask & (p.infinity ^ a.infinity)
}

// Add sets p = a + b and returns p. Complete: valid for every pair of
// inputs, including a = b, a = -b and the neutral element.
func (p *Point) Add(a, b *Point) *Point {
	var r groupElementLD
	r.setAffine(a)
	r.addAffine(&r, b)
	p.setLD(&r)
	return p
}

// Double sets p = 2*a and returns p.
func (p *Point) Double(a *Point) *Point {
	var r groupElementLD
	r.setAffine(a)
	r.double(&r)
	p.setLD(&r)
	return p
}

// Subtract sets p = a - b and returns p.
func (p *Point) Subtract(a, b *Point) *Point {
	var nb Point
	nb.Negate(b)
	return p.Add(a, &nb)
}

// setLD converts a projective point to affine with one inversion.
// Z = 0 inverts to 0, which yields the canonical neutral (0, 0).
func (p *Point) setLD(a *groupElementLD) {
	var zi, zi2 FieldElement
	zi.inv(&a.z)
	zi2.sqr(&zi)
	p.infinity = a.z.isZero()
	p.x.mul(&a.x, &zi)
	p.y.mul(&a.y, &zi2)
}

// clear wipes p
func (p *Point) clear() {
	p.x.clear()
	p.y.clear()
	p.infinity = 0
}

// López-Dahab operations

// setInfinity sets r to the neutral element (1 : 0 : 0)
func (r *groupElementLD) setInfinity() {
	r.x = FieldElementOne
	r.y = FieldElementZero
	r.z = FieldElementZero
}

// isInfinity returns 1 if r is the neutral element
func (r *groupElementLD) isInfinity() int {
	return r.z.isZero()
}

// setAffine sets r = a with Z = 1, or Z = 0 for the neutral element
func (r *groupElementLD) setAffine(a *Point) {
	r.x = a.x
	r.y = a.y
	r.z = FieldElementOne
	r.z.cmov(&FieldElementZero, a.infinity)
}

// cmov sets r = a when flag is 1
func (r *groupElementLD) cmov(a *groupElementLD, flag int) {
	r.x.cmov(&a.x, flag)
	r.y.cmov(&a.y, flag)
	r.z.cmov(&a.z, flag)
}

// double sets r = 2*a.
//
//	A = Z1^2, B = b*A^2, C = X1^2
//	Z3 = A*C, X3 = C^2 + B, Y3 = (Y1^2 + a*Z3 + B)*X3 + Z3*B
//
// The formula has no exceptional case: the neutral element (Z = 0) and the
// 2-torsion point (X = 0) both give Z3 = 0.
func (r *groupElementLD) double(a *groupElementLD) {
	var A, B, C, x3, y3, z3, t FieldElement

	A.sqr(&a.z)
	B.sqr(&A)
	B.mulB(&B)
	C.sqr(&a.x)

	z3.mul(&A, &C)
	x3.sqr(&C)
	x3.add(&x3, &B)

	y3.sqr(&a.y)
	t.mulU(&z3)
	y3.add(&y3, &t)
	y3.add(&y3, &B)
	y3.mul(&y3, &x3)
	t.mul(&z3, &B)
	y3.add(&y3, &t)

	r.x = x3
	r.y = y3
	r.z = z3
}

// addAffine sets r = a + b, with b in affine coordinates.
//
//	A = Y1 + y2*Z1^2, B = X1 + x2*Z1, C = B*Z1
//	Z3 = C^2, D = x2*Z3
//	X3 = A^2 + C*(A + B^2 + a*C)
//	Y3 = (D + X3)*(A*C + Z3) + (y2 + x2)*Z3^2
//
// The mixed formula is wrong when a = b, a = O or b = O. The doubling of b
// is always computed as well, and the right candidate is picked with masks,
// so the same field operations run for every input. a = -b needs no fixup:
// B = 0 and A != 0 give Z3 = 0.
func (r *groupElementLD) addAffine(a *groupElementLD, b *Point) {
	var A, B, C, D, zz, x3, y3, z3, t FieldElement
	p := *a

	zz.sqr(&p.z)
	A.mul(&b.y, &zz)
	A.add(&A, &p.y)
	B.mul(&b.x, &p.z)
	B.add(&B, &p.x)
	C.mul(&B, &p.z)

	z3.sqr(&C)
	D.mul(&b.x, &z3)

	x3.sqr(&B)
	x3.add(&x3, &A)
	t.mulU(&C)
	x3.add(&x3, &t)
	x3.mul(&x3, &C)
	t.sqr(&A)
	x3.add(&x3, &t)

	y3.add(&D, &x3)
	t.mul(&A, &C)
	t.add(&t, &z3)
	y3.mul(&y3, &t)
	t.sqr(&z3)
	D.add(&b.y, &b.x)
	t.mul(&t, &D)
	y3.add(&y3, &t)

	var q, dq groupElementLD
	q.setAffine(b)
	dq.double(&q)

	pInf := p.isInfinity()
	qInf := b.infinity
	same := A.isZero() & B.isZero() & (1 ^ pInf) & (1 ^ qInf)

	r.x = x3
	r.y = y3
	r.z = z3
	r.cmov(&dq, same)
	r.cmov(&q, pInf)
	r.cmov(&p, qInf)
}

// endomorphism sets p = psi(a) = (x^q, y^q + u*x^q), q = 2^127.
// psi(P) = lambda*P on the prime-order subgroup; the neutral (0, 0) is fixed.
func (p *Point) endomorphism(a *Point) {
	var xq, yq, t FieldElement
	xq.frobenius(&a.x)
	yq.frobenius(&a.y)
	t.mulU(&xq)
	p.x = xq
	p.y.add(&yq, &t)
	p.infinity = a.infinity
}
