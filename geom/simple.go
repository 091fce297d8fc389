package geom

import (
	"math"

	"github.com/quantpath/planar/internal/exact"
)

// IsSimple reports whether the polygon is simple: at least three distinct
// vertices, finite coordinates, no repeated vertices, and no two edges
// meeting anywhere except adjacent edges at their shared endpoint. The
// test is O(n²) pairwise with exact predicates; there is no sweep
// structure because simplicity is checked once per operation, on inputs
// that are small by the time they reach the geometry core.
func (poly Polygon) IsSimple() bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	for _, p := range poly.Points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if poly.Points[i] == poly.Points[j] {
				return false
			}
		}
	}

	pts := toExact(poly)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			c, d := pts[j], pts[(j+1)%n]
			k, p0, _ := exact.SegmentIntersection(a, b, c, d)
			switch {
			case j == i+1:
				// Adjacent edges share exactly the vertex between them.
				if k != 1 || !p0.Eq(b) {
					return false
				}
			case i == 0 && j == n-1:
				// The closing edge is adjacent to the first edge through
				// the first vertex.
				if k != 1 || !p0.Eq(a) {
					return false
				}
			default:
				if k != 0 {
					return false
				}
			}
		}
	}
	return true
}
