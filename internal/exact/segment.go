package exact

import "math/big"

// Vec is an exact direction vector.
type Vec struct {
	X, Y *big.Rat
}

// Sub returns the vector from a to b.
func Sub(a, b Pt) Vec {
	return Vec{
		X: new(big.Rat).Sub(b.X, a.X),
		Y: new(big.Rat).Sub(b.Y, a.Y),
	}
}

// CrossSign returns the sign of the cross product u × v.
func CrossSign(u, v Vec) int {
	t := new(big.Rat).Mul(u.X, v.Y)
	t.Sub(t, new(big.Rat).Mul(u.Y, v.X))
	return t.Sign()
}

// DotSign returns the sign of the dot product u · v.
func DotSign(u, v Vec) int {
	t := new(big.Rat).Mul(u.X, v.X)
	t.Add(t, new(big.Rat).Mul(u.Y, v.Y))
	return t.Sign()
}

// ParamAlong returns (p-s)·(e-s), which orders points lying on the segment
// s-e by their position along it. The value is not normalized; only
// comparisons between points on the same segment are meaningful.
func ParamAlong(s, e, p Pt) *big.Rat {
	d := Sub(s, e)
	sp := Sub(s, p)
	t := new(big.Rat).Mul(sp.X, d.X)
	t.Add(t, new(big.Rat).Mul(sp.Y, d.Y))
	return t
}

// SegmentIntersection computes the exact intersection of the closed
// segments a-b and c-d. It returns the number of distinct intersection
// points (0, 1, or 2) together with the points themselves; two points mean
// the segments overlap collinearly and p0, p1 are the endpoints of the
// shared portion, ordered along a-b. The structure follows the three-way
// split used by floating-point clippers (separate lines, crossing lines,
// collinear overlap), but every branch decision is a rational sign test.
func SegmentIntersection(a, b, c, d Pt) (n int, p0, p1 Pt) {
	d0 := Sub(a, b)
	d1 := Sub(c, d)
	e := Sub(a, c)

	kross := new(big.Rat).Mul(d0.X, d1.Y)
	kross.Sub(kross, new(big.Rat).Mul(d0.Y, d1.X))

	if kross.Sign() != 0 {
		// Lines cross in a single point; the segments intersect iff both
		// parameters land in [0, 1].
		s := new(big.Rat).Mul(e.X, d1.Y)
		s.Sub(s, new(big.Rat).Mul(e.Y, d1.X))
		s.Quo(s, kross)
		if !unitRange(s) {
			return 0, Pt{}, Pt{}
		}
		t := new(big.Rat).Mul(e.X, d0.Y)
		t.Sub(t, new(big.Rat).Mul(e.Y, d0.X))
		t.Quo(t, kross)
		if !unitRange(t) {
			return 0, Pt{}, Pt{}
		}
		return 1, pointAt(a, d0, s), Pt{}
	}

	// Parallel lines: distinct unless c is on the line through a-b.
	aside := new(big.Rat).Mul(e.X, d0.Y)
	aside.Sub(aside, new(big.Rat).Mul(e.Y, d0.X))
	if aside.Sign() != 0 {
		return 0, Pt{}, Pt{}
	}

	// Collinear: project c and d onto a-b and clip the parameter interval
	// to [0, 1].
	len2 := new(big.Rat).Mul(d0.X, d0.X)
	len2.Add(len2, new(big.Rat).Mul(d0.Y, d0.Y))
	s0 := new(big.Rat).Mul(e.X, d0.X)
	s0.Add(s0, new(big.Rat).Mul(e.Y, d0.Y))
	s0.Quo(s0, len2)
	ad := Sub(a, d)
	s1 := new(big.Rat).Mul(ad.X, d0.X)
	s1.Add(s1, new(big.Rat).Mul(ad.Y, d0.Y))
	s1.Quo(s1, len2)
	if s0.Cmp(s1) > 0 {
		s0, s1 = s1, s0
	}
	zero := new(big.Rat)
	one := big.NewRat(1, 1)
	if s0.Cmp(zero) < 0 {
		s0 = zero
	}
	if s1.Cmp(one) > 0 {
		s1 = one
	}
	switch s0.Cmp(s1) {
	case 1:
		return 0, Pt{}, Pt{}
	case 0:
		return 1, pointAt(a, d0, s0), Pt{}
	}
	return 2, pointAt(a, d0, s0), pointAt(a, d0, s1)
}

func pointAt(a Pt, d Vec, t *big.Rat) Pt {
	x := new(big.Rat).Mul(d.X, t)
	y := new(big.Rat).Mul(d.Y, t)
	return Pt{X: x.Add(x, a.X), Y: y.Add(y, a.Y)}
}

func unitRange(t *big.Rat) bool {
	return t.Sign() >= 0 && t.Cmp(big.NewRat(1, 1)) <= 0
}
