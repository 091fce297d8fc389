// Package planar provides exact-arithmetic polygon operations for
// image-analysis pipelines: classifying points against a polygon,
// intersecting two simple polygons, and testing polygon equality.
//
// This package is the flat-list compatibility surface. Polygons and point
// batches travel as separate x and y coordinate slices, results come back
// through caller-provided slices, and every failure is a distinct negative
// status code — the calling convention of the binding layer this library
// grew out of. Code that lives in Go should use the geom package directly
// and work with vertex slices instead.
//
// On any failure the caller's output slices are left untouched; results
// are appended only after the whole operation has succeeded.
package planar

import "github.com/quantpath/planar/geom"

// Status codes shared by the flat-list operations. Each operation
// documents which subset it can return.
const (
	StatusOK               = 0
	StatusPointLenMismatch = -1 // point x/y lists differ in length (first operand for two-polygon ops)
	StatusPolyLenMismatch  = -2 // polygon x/y lists differ in length (second operand for two-polygon ops)
	StatusNotSimple        = -3 // an intersection operand is not a simple polygon
	StatusBadPredicate     = -3 // a classification outcome fell outside {inside, boundary, outside}
	StatusHoleResult       = -4 // an intersection component is unbounded or needs holes
)

// PointsWRTPolygon classifies each point (px[i], py[i]) against the
// polygon with vertices (qx[k], qy[k]) and appends one code per point to
// *r: 1 inside, 0 on the boundary, -1 outside. It returns StatusOK, or
// StatusPointLenMismatch / StatusPolyLenMismatch when the respective
// coordinate lists pair up wrong, or StatusBadPredicate if a
// classification produced an unrecognized outcome (defensive; it cannot
// happen with a well-formed kernel).
func PointsWRTPolygon(px, py, qx, qy []float64, r *[]int) int {
	if len(px) != len(py) {
		return StatusPointLenMismatch
	}
	if len(qx) != len(qy) {
		return StatusPolyLenMismatch
	}
	poly := polygonFromLists(qx, qy)
	out := make([]int, 0, len(px))
	for i := range px {
		switch poly.BoundedSide(geom.Point{X: px[i], Y: py[i]}) {
		case geom.OnBoundedSide:
			out = append(out, 1)
		case geom.OnBoundary:
			out = append(out, 0)
		case geom.OnUnboundedSide:
			out = append(out, -1)
		default:
			return StatusBadPredicate
		}
	}
	*r = append(*r, out...)
	return StatusOK
}

// SimplePolygonIntersection intersects the simple polygons P and Q. The
// result components are concatenated into *rx, *ry with the vertex count
// of each component appended to *rn; component boundaries wind
// counterclockwise. The return value is the number of components (0 for
// disjoint polygons), or a negative status: StatusPointLenMismatch /
// StatusPolyLenMismatch for a P or Q coordinate-list mismatch,
// StatusNotSimple when either operand self-intersects, StatusHoleResult
// when a component is unbounded or would need interior holes.
func SimplePolygonIntersection(px, py, qx, qy []float64, rx, ry *[]float64, rn *[]int) int {
	if len(px) != len(py) {
		return StatusPointLenMismatch
	}
	if len(qx) != len(qy) {
		return StatusPolyLenMismatch
	}
	components, err := geom.Intersection(polygonFromLists(px, py), polygonFromLists(qx, qy))
	switch err {
	case nil:
	case geom.ErrNotSimple:
		return StatusNotSimple
	default:
		// ErrHoleResult, or an internal inconsistency surfaced by the
		// clipper; both are unsupported-result conditions to the caller.
		return StatusHoleResult
	}
	outX := make([]float64, 0)
	outY := make([]float64, 0)
	outN := make([]int, 0, len(components))
	for _, c := range components {
		for _, p := range c.Points {
			outX = append(outX, p.X)
			outY = append(outY, p.Y)
		}
		outN = append(outN, len(c.Points))
	}
	*rx = append(*rx, outX...)
	*ry = append(*ry, outY...)
	*rn = append(*rn, outN...)
	return len(components)
}

// PolygonEquality reports whether P and Q are the same polygon: 1 when one
// vertex sequence is a cyclic rotation of the other with the same
// traversal direction, 0 otherwise. Differing vertex counts short-circuit
// to 0. Returns StatusPointLenMismatch / StatusPolyLenMismatch for a P or
// Q coordinate-list mismatch.
func PolygonEquality(px, py, qx, qy []float64) int {
	if len(px) != len(py) {
		return StatusPointLenMismatch
	}
	if len(qx) != len(qy) {
		return StatusPolyLenMismatch
	}
	if len(px) != len(qx) {
		return 0
	}
	if geom.Equal(polygonFromLists(px, py), polygonFromLists(qx, qy)) {
		return 1
	}
	return 0
}

func polygonFromLists(xs, ys []float64) geom.Polygon {
	pts := make([]geom.Point, len(xs))
	for i := range xs {
		pts[i] = geom.Point{X: xs[i], Y: ys[i]}
	}
	return geom.Polygon{Points: pts}
}
