// Package exact implements the sign-exact primitives that the geometry
// engine is built on. Every predicate is evaluated in float64 first with a
// conservative bound on the accumulated rounding error; only when the
// result falls inside that bound do we redo the computation in
// arbitrary-precision rational arithmetic. This keeps the common case fast
// while guaranteeing the correct sign at degenerate configurations
// (collinear points, touching edges), which is what the polygon operations
// depend on for consistent answers.
package exact

import (
	"math"
	"math/big"
)

// orientErrBound is the relative error bound for the orientation
// determinant, (3 + 16ε)ε with ε the float64 machine epsilon. If the
// float64 determinant is larger in magnitude than orientErrBound times the
// magnitude of its terms, its sign is already correct.
const orientErrBound = 3.3306690738754716e-16

// Orientation reports the turn direction of the triple a, b, c:
// +1 counterclockwise, 0 collinear, -1 clockwise.
func Orientation(ax, ay, bx, by, cx, cy float64) int {
	detLeft := (bx - ax) * (cy - ay)
	detRight := (by - ay) * (cx - ax)
	det := detLeft - detRight

	// When the two products have opposite signs, the subtraction cannot
	// cancel and the float64 sign is exact.
	if detLeft > 0 {
		if detRight <= 0 {
			return sign(det)
		}
	} else if detLeft < 0 {
		if detRight >= 0 {
			return sign(det)
		}
	} else {
		return sign(-detRight)
	}

	errBound := orientErrBound * (math.Abs(detLeft) + math.Abs(detRight))
	if det > errBound || -det > errBound {
		return sign(det)
	}

	if !finite(ax, ay, bx, by, cx, cy) {
		return 0
	}
	return OrientationPt(NewPt(ax, ay), NewPt(bx, by), NewPt(cx, cy))
}

// OnSegment reports whether p lies on the closed segment a-b.
func OnSegment(px, py, ax, ay, bx, by float64) bool {
	if Orientation(ax, ay, bx, by, px, py) != 0 {
		return false
	}
	return math.Min(ax, bx) <= px && px <= math.Max(ax, bx) &&
		math.Min(ay, by) <= py && py <= math.Max(ay, by)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Pt is a point with exact rational coordinates. Points built from float64
// inputs are represented exactly; points derived from segment
// intersections keep full precision, so chained predicates never observe
// rounding.
type Pt struct {
	X, Y *big.Rat
}

// NewPt converts a float64 coordinate pair into an exact point. The
// conversion is lossless. Panics on non-finite input; callers validate
// coordinates before entering the exact domain.
func NewPt(x, y float64) Pt {
	rx := new(big.Rat).SetFloat64(x)
	ry := new(big.Rat).SetFloat64(y)
	if rx == nil || ry == nil {
		panic("exact: non-finite coordinate")
	}
	return Pt{X: rx, Y: ry}
}

// Eq reports exact coordinate equality.
func (p Pt) Eq(q Pt) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Float rounds the point back to float64 coordinates. Points that
// originated from float64 input round-trip unchanged.
func (p Pt) Float() (x, y float64) {
	x, _ = p.X.Float64()
	y, _ = p.Y.Float64()
	return x, y
}

// Key returns a canonical string form of the point, usable as a map key.
func (p Pt) Key() string {
	return p.X.RatString() + "," + p.Y.RatString()
}

// OrientationPt is the rational-arithmetic orientation predicate.
func OrientationPt(a, b, c Pt) int {
	abx := new(big.Rat).Sub(b.X, a.X)
	aby := new(big.Rat).Sub(b.Y, a.Y)
	acx := new(big.Rat).Sub(c.X, a.X)
	acy := new(big.Rat).Sub(c.Y, a.Y)
	det := new(big.Rat).Sub(new(big.Rat).Mul(abx, acy), new(big.Rat).Mul(aby, acx))
	return det.Sign()
}

// OnSegmentPt reports whether p lies on the closed segment a-b, in exact
// arithmetic.
func OnSegmentPt(p, a, b Pt) bool {
	if OrientationPt(a, b, p) != 0 {
		return false
	}
	return betweenRat(p.X, a.X, b.X) && betweenRat(p.Y, a.Y, b.Y)
}

// Mid returns the exact midpoint of a and b.
func Mid(a, b Pt) Pt {
	half := big.NewRat(1, 2)
	x := new(big.Rat).Add(a.X, b.X)
	y := new(big.Rat).Add(a.Y, b.Y)
	return Pt{X: x.Mul(x, half), Y: y.Mul(y, half)}
}

// AreaSign returns the sign of the signed area of the closed vertex cycle:
// +1 for counterclockwise, -1 for clockwise, 0 for a degenerate cycle.
func AreaSign(pts []Pt) int {
	if len(pts) < 3 {
		return 0
	}
	sum := new(big.Rat)
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		term := new(big.Rat).Mul(a.X, b.Y)
		term.Sub(term, new(big.Rat).Mul(b.X, a.Y))
		sum.Add(sum, term)
	}
	return sum.Sign()
}

func betweenRat(v, a, b *big.Rat) bool {
	lo, hi := a, b
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	return lo.Cmp(v) <= 0 && v.Cmp(hi) <= 0
}
