package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantpath/planar/internal/exact"
)

func squareAt(x, y, size float64) Polygon {
	return Polygon{Points: []Point{
		{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size},
	}}
}

func TestIntersectionDisjoint(t *testing.T) {
	t.Run("far apart", func(t *testing.T) {
		got, err := Intersection(squareAt(0, 0, 1), squareAt(10, 10, 1))
		require.NoError(t, err)
		assert.Len(t, got, 0)
	})

	t.Run("close but separate", func(t *testing.T) {
		got, err := Intersection(squareAt(0, 0, 1), squareAt(1.0000001, 0, 1))
		require.NoError(t, err)
		assert.Len(t, got, 0)
	})
}

func TestIntersectionIdentical(t *testing.T) {
	sq := squareAt(0, 0, 1)
	got, err := Intersection(sq, sq)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, Equal(got[0], sq), "got %v", got[0])
}

func TestIntersectionOverlapCorner(t *testing.T) {
	// Two unit squares offset by (0.5, 0.5): the overlap is the 0.5×0.5
	// square between them.
	got, err := Intersection(squareAt(0, 0, 1), squareAt(0.5, 0.5, 1))
	require.NoError(t, err)
	require.Len(t, got, 1)
	want := squareAt(0.5, 0.5, 0.5)
	assert.True(t, Equal(got[0], want), "got %v", got[0])
	assert.True(t, got[0].IsCCW())
}

func TestIntersectionContainment(t *testing.T) {
	big := squareAt(0, 0, 10)
	small := squareAt(2, 2, 1)

	t.Run("small in big", func(t *testing.T) {
		got, err := Intersection(big, small)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, Equal(got[0], small))
	})

	t.Run("operand order does not matter", func(t *testing.T) {
		got, err := Intersection(small, big)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, Equal(got[0], small))
	})
}

func TestIntersectionDegenerateContact(t *testing.T) {
	t.Run("shared edge only", func(t *testing.T) {
		// Side-by-side squares: the shared edge is a degenerate contact,
		// and the regularized intersection is empty.
		got, err := Intersection(squareAt(0, 0, 1), squareAt(1, 0, 1))
		require.NoError(t, err)
		assert.Len(t, got, 0)
	})

	t.Run("shared vertex only", func(t *testing.T) {
		got, err := Intersection(squareAt(0, 0, 1), squareAt(1, 1, 1))
		require.NoError(t, err)
		assert.Len(t, got, 0)
	})
}

func TestIntersectionMultipleComponents(t *testing.T) {
	// A U shape crossed by a horizontal band: the band meets each arm in
	// its own unit square.
	u := Polygon{Points: []Point{
		{0, 0}, {5, 0}, {5, 5}, {4, 5}, {4, 1}, {1, 1}, {1, 5}, {0, 5},
	}}
	band := Polygon{Points: []Point{{-1, 3}, {6, 3}, {6, 4}, {-1, 4}}}

	got, err := Intersection(u, band)
	require.NoError(t, err)
	require.Len(t, got, 2)

	left := squareAt(0, 3, 1)
	right := squareAt(4, 3, 1)
	foundLeft, foundRight := false, false
	for _, c := range got {
		if Equal(c, left) {
			foundLeft = true
		}
		if Equal(c, right) {
			foundRight = true
		}
	}
	assert.True(t, foundLeft, "missing left arm component: %v", got)
	assert.True(t, foundRight, "missing right arm component: %v", got)
}

func TestIntersectionRejectsNonSimple(t *testing.T) {
	bowtie := Polygon{Points: []Point{{0, 0}, {1, 1}, {1, 0}, {0, 1}}}
	sq := squareAt(0, 0, 1)

	_, err := Intersection(bowtie, sq)
	assert.Equal(t, ErrNotSimple, err)

	_, err = Intersection(sq, bowtie)
	assert.Equal(t, ErrNotSimple, err)

	_, err = Intersection(Polygon{Points: []Point{{0, 0}, {1, 1}}}, sq)
	assert.Equal(t, ErrNotSimple, err, "too few vertices")
}

func TestIntersectionNormalizesWinding(t *testing.T) {
	ccw := squareAt(0, 0, 1)
	cw := ccw.Reverse()

	t.Run("clockwise operands describe the same region", func(t *testing.T) {
		got, err := Intersection(cw, cw)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, Equal(got[0], ccw), "output is canonical counterclockwise")
	})

	t.Run("mixed windings", func(t *testing.T) {
		got, err := Intersection(cw, squareAt(0.5, 0.5, 1))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, Equal(got[0], squareAt(0.5, 0.5, 0.5)))
	})

	t.Run("round trip preserves the region", func(t *testing.T) {
		back := cw.Reverse()
		got, err := Intersection(back, back)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, Equal(got[0], ccw))
	})
}

func TestIntersectionDeterministic(t *testing.T) {
	u := Polygon{Points: []Point{
		{0, 0}, {5, 0}, {5, 5}, {4, 5}, {4, 1}, {1, 1}, {1, 5}, {0, 5},
	}}
	band := Polygon{Points: []Point{{-1, 3}, {6, 3}, {6, 4}, {-1, 4}}}

	first, err := Intersection(u, band)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Intersection(u, band)
		require.NoError(t, err)
		assert.Equal(t, first, again, "run %d", i)
	}
}

func TestIntersectionConvexOffsets(t *testing.T) {
	// Sliding one square across another: each overlap is a single
	// rectangle whose corners are exact.
	base := squareAt(0, 0, 2)
	for _, off := range []float64{0.25, 0.5, 1, 1.5} {
		got, err := Intersection(base, squareAt(off, 0, 2))
		require.NoError(t, err)
		require.Len(t, got, 1, "offset %g", off)
		want := Polygon{Points: []Point{{off, 0}, {2, 0}, {2, 2}, {off, 2}}}
		assert.True(t, Equal(got[0], want), "offset %g: got %v", off, got[0])
	}
}

func TestIntersectionTriangleSquare(t *testing.T) {
	// A triangle poking through the right edge of a square; the clipped
	// corner has fractional crossing points.
	sq := squareAt(0, 0, 2)
	tri := Polygon{Points: []Point{{1, 0.5}, {3, 1}, {1, 1.5}}}
	got, err := Intersection(sq, tri)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsCCW())

	// The clipped region keeps the triangle's left edge and gains the two
	// crossings on x = 2.
	want := Polygon{Points: []Point{{1, 0.5}, {2, 0.75}, {2, 1.25}, {1, 1.5}}}
	assert.True(t, Equal(got[0], want), "got %v", got[0])
}

func TestStitchRingsSeparatesPinchedComponents(t *testing.T) {
	// Two squares meeting in a single point, fed to the stitcher mid-ring
	// so the junction rule has to pick the correct continuation at the
	// pinch.
	pt := func(x, y float64) exact.Pt { return exact.NewPt(x, y) }
	edge := func(x0, y0, x1, y1 float64) clipEdge {
		return clipEdge{a: pt(x0, y0), b: pt(x1, y1)}
	}
	edges := []clipEdge{
		edge(1, 0, 1, 1), // start mid-ring of the upper-right square
		edge(1, 1, 0, 1),
		edge(0, 1, 0, 0),
		edge(0, 0, 1, 0),
		edge(-1, -1, 0, -1),
		edge(0, -1, 0, 0),
		edge(0, 0, -1, 0), // second outgoing edge at the pinch (0,0)
		edge(-1, 0, -1, -1),
	}

	rings := stitchRings(edges)
	require.Len(t, rings, 2)
	for i, ring := range rings {
		assert.Len(t, ring, 4, "ring %d", i)
		assert.Equal(t, 1, exact.AreaSign(ring), "ring %d should be counterclockwise", i)
	}
}

func TestTurnsBefore(t *testing.T) {
	vec := func(x, y float64) exact.Vec {
		return exact.Sub(exact.NewPt(0, 0), exact.NewPt(x, y))
	}
	base := vec(0, 1)

	right := vec(1, 0)    // clockwise half-plane
	down := vec(0, -1)    // directly opposite
	left := vec(-1, 0)    // counterclockwise half-plane
	upRight := vec(1, 1)  // clockwise, closer to base
	ahead := vec(0, 2)    // same direction as base

	assert.True(t, turnsBefore(base, upRight, right))
	assert.True(t, turnsBefore(base, right, down))
	assert.True(t, turnsBefore(base, down, left))
	assert.True(t, turnsBefore(base, left, ahead))
	assert.False(t, turnsBefore(base, ahead, right))
	assert.False(t, turnsBefore(base, right, upRight))
}

func TestBoundedSideExact(t *testing.T) {
	sq := toExact(squareAt(0, 0, 1))
	pt := func(x, y float64) exact.Pt { return exact.NewPt(x, y) }
	assert.Equal(t, OnBoundedSide, boundedSideExact(pt(0.5, 0.5), sq))
	assert.Equal(t, OnBoundary, boundedSideExact(pt(1, 0.5), sq))
	assert.Equal(t, OnUnboundedSide, boundedSideExact(pt(1.5, 0.5), sq))
	assert.Equal(t, OnBoundedSide, boundedSideExact(exact.Mid(pt(0, 0), pt(1, 1)), sq))
}
