package geom

import (
	"github.com/quantpath/planar/internal/exact"
)

// BoundedSide classifies p against the polygon's edge set: strictly
// inside, exactly on an edge or vertex, or strictly outside. The crossing
// test counts edges that cross the horizontal ray from p toward +infinity,
// with the half-open vertex rule so a ray through a vertex is counted
// once. Every geometric decision goes through the exact kernel, so points
// on (or within one ulp of) an edge are classified deterministically.
func (poly Polygon) BoundedSide(p Point) BoundedSide {
	n := len(poly.Points)
	if n == 0 {
		return OnUnboundedSide
	}
	inside := false
	for i, a := range poly.Points {
		b := poly.Points[(i+1)%n]
		if exact.OnSegment(p.X, p.Y, a.X, a.Y, b.X, b.Y) {
			return OnBoundary
		}
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue // edge entirely above or below the ray
		}
		o := exact.Orientation(a.X, a.Y, b.X, b.Y, p.X, p.Y)
		if b.Y > a.Y {
			if o > 0 {
				inside = !inside
			}
		} else if o < 0 {
			inside = !inside
		}
	}
	if inside {
		return OnBoundedSide
	}
	return OnUnboundedSide
}

// ClassifyPoints classifies a batch of query points against the polygon,
// one result per point in input order. There is no acceleration structure;
// the cost is O(points × vertices).
func (poly Polygon) ClassifyPoints(pts []Point) []BoundedSide {
	out := make([]BoundedSide, len(pts))
	for i, p := range pts {
		out[i] = poly.BoundedSide(p)
	}
	return out
}
