// Copyright (c) 2023 Colin McRae

package ring

// Quadruple is a 2x2 transformation
//
//	| U V |
//	| W Z |
//
// built for a pair (a, b) so that U*a + V*b = G = gcd(a, b) >= 0 and
// W*a + Z*b = 0. Its determinant U*Z - V*W is exactly 1.
//
// Applied to two rows x and y (or two columns), the transformation is
// x <- U*x + V*y, y <- W*x + Z*y, using the values of x and y from before
// the update.
type Quadruple[T any] struct {
	G T
	U T
	V T
	W T
	Z T
}

// Bezout returns g, u, v with u*a + v*b = g = gcd(a, b) >= 0. The ring's
// own extended gcd is used when it has one.
func Bezout[T any](r Ring[T], a, b T) (T, T, T) {
	if br, ok := r.(BezoutRing[T]); ok {
		return br.Bezout(a, b)
	}

	// Extended Euclid keeps p = x*a + y*b and q = x1*a + y1*b
	p, q := a, b
	x, y := r.One(), r.Zero()
	x1, y1 := r.Zero(), r.One()
	for !IsZero(r, q) {
		quo, rem, _ := r.DivMod(p, q)
		p, q = q, rem
		x, x1 = x1, r.Sub(x, r.Mul(quo, x1))
		y, y1 = y1, r.Sub(y, r.Mul(quo, y1))
	}
	if r.Sign(p) < 0 {
		return r.Neg(p), r.Neg(x), r.Neg(y)
	}
	return p, x, y
}

// GCDEx returns the Quadruple for (a, b).
//
// If a and b are both 0, the identity is returned with G = 0. If a != 0
// divides b, the quadruple is (sign(a), 0, -b/|a|, sign(a)), which leaves
// the first row unchanged up to sign and does not introduce fill-in.
func GCDEx[T any](r Ring[T], a, b T) Quadruple[T] {
	if IsZero(r, a) && IsZero(r, b) {
		return Quadruple[T]{G: r.Zero(), U: r.One(), V: r.Zero(), W: r.Zero(), Z: r.One()}
	}
	if !IsZero(r, a) && Divides(r, a, b) {
		s := r.FromInt64(int64(r.Sign(a)))
		g := r.Abs(a)
		return Quadruple[T]{G: g, U: s, V: r.Zero(), W: r.Neg(mustDiv(r, b, g)), Z: s}
	}
	g, u, v := Bezout(r, a, b)
	return Quadruple[T]{
		G: g,
		U: u,
		V: v,
		W: r.Neg(mustDiv(r, b, g)),
		Z: mustDiv(r, a, g),
	}
}

// GCDExMod returns the Quadruple for the residues of a and b modulo n > 0.
// Its coefficients are exact integers and its determinant is 1, so applying
// it and then reducing modulo n keeps a lattice that contains n*Z^k fixed.
func GCDExMod[T any](r Ring[T], a, b, n T) (Quadruple[T], error) {
	aMod, err := Mod(r, a, n)
	if err != nil {
		return Quadruple[T]{}, err
	}
	bMod, err := Mod(r, b, n)
	if err != nil {
		return Quadruple[T]{}, err
	}
	return GCDEx(r, aMod, bMod), nil
}

// Split returns the largest divisor of d that is coprime to a. a must
// not be 0.
func Split[T any](r Ring[T], a, d T) T {
	x, t := a, r.Abs(d)
	for !IsUnit(r, x) {
		x = r.GCD(x, t)
		if IsZero(r, x) {
			return r.One()
		}
		t = mustDiv(r, t, x)
	}
	return t
}

// Stab returns c such that gcd(a + c*b, n) = gcd(a, b, n). It is used to
// make a pivot carry the gcd of a column before a modular reduction.
//
// The cheap choices c = 0 and c = 1 are tried first. Otherwise c is the
// largest divisor of the reduced modulus that is coprime to the reduced a.
// n = 0 is treated as "no modulus" and yields 0, as does any b that n
// divides.
func Stab[T any](r Ring[T], a, b, n T) T {
	if IsZero(r, b) || IsZero(r, n) || Divides(r, n, b) {
		return r.Zero()
	}
	if IsZero(r, a) {
		return r.One()
	}
	g1 := r.GCD(r.GCD(a, b), n)
	a1, b1, d := mustDiv(r, a, g1), mustDiv(r, b, g1), mustDiv(r, r.Abs(n), g1)
	g2 := r.GCD(a1, b1)
	a2, b2 := mustDiv(r, a1, g2), mustDiv(r, b1, g2)
	if IsOne(r, r.GCD(a2, d)) {
		return r.Zero()
	}
	if IsOne(r, r.GCD(r.Add(a2, b2), d)) {
		return r.One()
	}
	return Split(r, a2, d)
}

// UnitMod returns a unit c modulo n > 0 with c*a = gcd(a, n) (mod n).
// Multiplying a row by c and reducing modulo n normalizes its leading entry
// to the gcd without changing the lattice spanned modulo n.
func UnitMod[T any](r Ring[T], a, n T) (T, error) {
	aMod, err := Mod(r, a, n)
	if err != nil {
		return r.Zero(), err
	}
	if IsZero(r, aMod) {
		return r.One(), nil
	}
	q := GCDEx(r, aMod, n)

	// gcd(U, W, n) = 1, so a stabilizing multiple of W turns U into a unit
	c := r.Add(q.U, r.Mul(Stab(r, q.U, q.W, n), q.W))
	return Mod(r, c, n)
}
