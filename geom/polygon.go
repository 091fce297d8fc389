package geom

import (
	"math"

	"github.com/quantpath/planar/internal/exact"
)

// Bounds returns the corners of the polygon's bounding box. The zero
// rectangle is returned for an empty polygon.
func (poly Polygon) Bounds() (min, max Point) {
	if len(poly.Points) == 0 {
		return
	}
	min = poly.Points[0]
	max = poly.Points[0]
	for _, p := range poly.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return
}

// IsCCW reports whether the vertices wind counterclockwise. The signed
// area is evaluated exactly, so a polygon with a tiny but nonzero area is
// still classified by its true sign.
func (poly Polygon) IsCCW() bool {
	for _, p := range poly.Points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return exact.AreaSign(toExact(poly)) > 0
}

// Reverse returns a polygon with the vertex order flipped, enclosing the
// same region with the opposite winding.
func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func toExact(poly Polygon) []exact.Pt {
	pts := make([]exact.Pt, len(poly.Points))
	for i, p := range poly.Points {
		pts[i] = exact.NewPt(p.X, p.Y)
	}
	return pts
}

func fromExact(pts []exact.Pt) Polygon {
	poly := Polygon{Points: make([]Point, len(pts))}
	for i, p := range pts {
		x, y := p.Float()
		poly.Points[i] = Point{X: x, Y: y}
	}
	return poly
}
