package geom

import (
	"fmt"
	"sort"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/quantpath/planar/dbg"
	"github.com/quantpath/planar/internal/exact"
)

var (
	// ErrNotSimple reports an operand whose boundary self-intersects or
	// repeats a vertex. Such inputs are rejected, never repaired.
	ErrNotSimple = errors.New("input polygon is not simple")

	// ErrHoleResult reports an intersection component that is unbounded or
	// would need interior holes to represent. The engine only emits
	// hole-free boundaries; rather than silently dropping holes, the whole
	// operation fails.
	ErrHoleResult = errors.New("intersection component is unbounded or has holes")
)

// Flip on to follow the ring stitching on stdout.
const traceStitching = false

// Intersection computes the set intersection of two simple polygons as
// zero or more simple, hole-free polygons. Operand winding is irrelevant:
// both are normalized to counterclockwise internally, and every output
// boundary winds counterclockwise. A nil result with a nil error means the
// polygons are disjoint.
//
// The approach: subdivide both boundaries at every mutual intersection
// point (computed exactly, so chained cuts stay consistent), keep exactly
// the sub-edges that border the common interior, then stitch those edges
// back into closed rings. Junction vertices where several kept edges meet
// are resolved by taking the most clockwise outgoing turn, which keeps the
// interior on the left and separates components that touch in a single
// point. The cost is O(n·m) in the operand sizes, which is fine for the
// region-of-interest polygons this engine serves.
func Intersection(p, q Polygon) (result PolygonList, err error) {
	defer func() {
		if rerr := recoverClipError(recover()); rerr != nil {
			result, err = nil, rerr
		}
	}()

	if !p.IsSimple() || !q.IsSimple() {
		return nil, ErrNotSimple
	}

	// Fast rejection: disjoint bounding boxes cannot intersect.
	pmin, pmax := p.Bounds()
	qmin, qmax := q.Bounds()
	if pmin.X > qmax.X || pmax.X < qmin.X || pmin.Y > qmax.Y || pmax.Y < qmin.Y {
		return nil, nil
	}

	P := toExact(p)
	if exact.AreaSign(P) < 0 {
		reverseExact(P)
	}
	Q := toExact(q)
	if exact.AreaSign(Q) < 0 {
		reverseExact(Q)
	}

	pr := refine(P, Q)
	qr := refine(Q, P)
	rings := stitchRings(boundaryEdges(pr, qr, P, Q))

	for _, ring := range rings {
		switch exact.AreaSign(ring) {
		case 1:
			result = append(result, fromExact(ring))
		case -1:
			// A clockwise ring encloses excluded area: the component
			// needs a hole to represent.
			return nil, ErrHoleResult
		}
		// Zero-area rings are degenerate contact, not region boundary.
	}
	return result, nil
}

func reverseExact(pts []exact.Pt) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// refine returns a's vertex cycle with every intersection against b's
// edges inserted, ordered along each edge.
func refine(a, b []exact.Pt) []exact.Pt {
	out := make([]exact.Pt, 0, len(a))
	for i := range a {
		s, e := a[i], a[(i+1)%len(a)]
		var cuts []exact.Pt
		for j := range b {
			c, d := b[j], b[(j+1)%len(b)]
			n, p0, p1 := exact.SegmentIntersection(s, e, c, d)
			if n >= 1 {
				cuts = append(cuts, p0)
			}
			if n == 2 {
				cuts = append(cuts, p1)
			}
		}
		sort.Slice(cuts, func(x, y int) bool {
			return exact.ParamAlong(s, e, cuts[x]).Cmp(exact.ParamAlong(s, e, cuts[y])) < 0
		})
		out = append(out, s)
		for _, cut := range cuts {
			if cut.Eq(s) || cut.Eq(e) || cut.Eq(out[len(out)-1]) {
				continue
			}
			out = append(out, cut)
		}
	}
	return out
}

// A clipEdge is one directed sub-edge of the intersection boundary.
type clipEdge struct {
	a, b exact.Pt
}

func (e *clipEdge) String() string {
	ax, ay := e.a.Float()
	bx, by := e.b.Float()
	return fmt.Sprintf("%s(%g,%g → %g,%g)", aurora.Cyan(dbg.Name(e)), ax, ay, bx, by)
}

func dirOf(e clipEdge) exact.Vec {
	return exact.Sub(e.a, e.b)
}

// boundaryEdges selects the sub-edges that border the interior of the
// intersection. After refinement, no sub-edge interior crosses the other
// boundary, so its midpoint classifies the whole sub-edge:
//
//   - a P sub-edge strictly inside Q borders the intersection (the region
//     locally coincides with P's interior side), and symmetrically for Q
//     sub-edges strictly inside P;
//   - a P sub-edge lying on Q's boundary coincides exactly with a Q
//     sub-edge. If both traverse it in the same direction, the interiors
//     agree there and the edge is kept once (P contributes it); opposite
//     directions mean the interiors face away from each other and the
//     contact is degenerate, so nothing is kept.
func boundaryEdges(pr, qr, P, Q []exact.Pt) []clipEdge {
	var edges []clipEdge
	for i := range pr {
		a, b := pr[i], pr[(i+1)%len(pr)]
		switch boundedSideExact(exact.Mid(a, b), Q) {
		case OnBoundedSide:
			edges = append(edges, clipEdge{a: a, b: b})
		case OnBoundary:
			same, ok := twinDirection(a, b, qr)
			if !ok {
				e := clipEdge{a: a, b: b}
				fatalf("sub-edge %s lies on the other boundary but has no twin", e.String())
			}
			if same {
				edges = append(edges, clipEdge{a: a, b: b})
			}
		}
	}
	for i := range qr {
		a, b := qr[i], qr[(i+1)%len(qr)]
		if boundedSideExact(exact.Mid(a, b), P) == OnBoundedSide {
			edges = append(edges, clipEdge{a: a, b: b})
		}
	}
	return edges
}

// twinDirection looks for the coincident sub-edge in the refined cycle and
// reports whether it runs in the same direction.
func twinDirection(a, b exact.Pt, ring []exact.Pt) (same, ok bool) {
	for i := range ring {
		c, d := ring[i], ring[(i+1)%len(ring)]
		if c.Eq(a) && d.Eq(b) {
			return true, true
		}
		if c.Eq(b) && d.Eq(a) {
			return false, true
		}
	}
	return false, false
}

// boundedSideExact is the rational-point form of Polygon.BoundedSide, used
// for sub-edge midpoints whose coordinates may not be representable in
// float64.
func boundedSideExact(p exact.Pt, poly []exact.Pt) BoundedSide {
	inside := false
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		if exact.OnSegmentPt(p, a, b) {
			return OnBoundary
		}
		if (a.Y.Cmp(p.Y) > 0) == (b.Y.Cmp(p.Y) > 0) {
			continue
		}
		o := exact.OrientationPt(a, b, p)
		if b.Y.Cmp(a.Y) > 0 {
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

// stitchRings connects the selected edges into closed rings. Every kept
// edge belongs to exactly one ring; walking is deterministic (edges are
// scanned in selection order), so identical inputs produce identical
// output, including the starting vertex of each ring.
func stitchRings(edges []clipEdge) [][]exact.Pt {
	outgoing := make(map[string][]int, len(edges))
	for i, e := range edges {
		k := e.a.Key()
		outgoing[k] = append(outgoing[k], i)
	}
	used := make([]bool, len(edges))
	var rings [][]exact.Pt
	for i := range edges {
		if used[i] {
			continue
		}
		var ring []exact.Pt
		cur := i
		for {
			used[cur] = true
			ring = append(ring, edges[cur].a)
			if edges[cur].b.Eq(edges[i].a) {
				break
			}
			next := nextEdge(edges, outgoing, used, cur)
			if next < 0 {
				fatalf("ring through %s does not close", (&edges[i]).String())
			}
			if traceStitching {
				fmt.Printf("stitch: %s → %s\n", (&edges[cur]).String(), (&edges[next]).String())
			}
			cur = next
		}
		rings = append(rings, ring)
	}
	return rings
}

// nextEdge picks the continuation at the end vertex of the current edge.
// When several unused edges leave that vertex (components touching in a
// point), the one making the most clockwise turn from the incoming
// direction is correct: it closes the tightest face and keeps the interior
// on the left.
func nextEdge(edges []clipEdge, outgoing map[string][]int, used []bool, cur int) int {
	base := exact.Sub(edges[cur].b, edges[cur].a) // reverse of incoming
	best := -1
	for _, c := range outgoing[edges[cur].b.Key()] {
		if used[c] {
			continue
		}
		if best < 0 || turnsBefore(base, dirOf(edges[c]), dirOf(edges[best])) {
			best = c
		}
	}
	return best
}

// cwClass buckets w by its rotation clockwise from base: the clockwise
// half-plane first, then directly opposite, then the counterclockwise
// half-plane, with base's own direction a full turn away.
func cwClass(base, w exact.Vec) int {
	switch exact.CrossSign(base, w) {
	case -1:
		return 0
	case 1:
		return 2
	}
	if exact.DotSign(base, w) < 0 {
		return 1
	}
	return 3
}

// turnsBefore reports whether w1 comes before w2 when sweeping clockwise
// from base.
func turnsBefore(base, w1, w2 exact.Vec) bool {
	c1, c2 := cwClass(base, w1), cwClass(base, w2)
	if c1 != c2 {
		return c1 < c2
	}
	return exact.CrossSign(w1, w2) < 0
}
