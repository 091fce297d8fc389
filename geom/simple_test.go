package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSimple(t *testing.T) {
	t.Run("accepts basic shapes", func(t *testing.T) {
		assert.True(t, unitSquare().IsSimple())
		assert.True(t, unitSquare().Reverse().IsSimple(), "winding does not matter")
		tri := Polygon{Points: []Point{{0, 0}, {3, 0}, {1, 2}}}
		assert.True(t, tri.IsSimple())
		concave := Polygon{Points: []Point{{0, 0}, {4, 0}, {4, 4}, {2, 1}, {0, 4}}}
		assert.True(t, concave.IsSimple())
	})

	t.Run("rejects the bowtie", func(t *testing.T) {
		bowtie := Polygon{Points: []Point{{0, 0}, {1, 1}, {1, 0}, {0, 1}}}
		assert.False(t, bowtie.IsSimple())
	})

	t.Run("rejects repeated vertices", func(t *testing.T) {
		poly := Polygon{Points: []Point{{0, 0}, {1, 0}, {1, 1}, {1, 0}, {0, 1}}}
		assert.False(t, poly.IsSimple())
	})

	t.Run("rejects degenerate collinear polygons", func(t *testing.T) {
		flat := Polygon{Points: []Point{{0, 0}, {1, 0}, {2, 0}}}
		assert.False(t, flat.IsSimple())
	})

	t.Run("rejects a spike folding back over an edge", func(t *testing.T) {
		spike := Polygon{Points: []Point{{0, 0}, {4, 0}, {2, 0}, {2, 2}}}
		assert.False(t, spike.IsSimple())
	})

	t.Run("rejects an edge passing through a vertex", func(t *testing.T) {
		poly := Polygon{Points: []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 0}}}
		assert.False(t, poly.IsSimple())
	})

	t.Run("rejects tiny vertex counts", func(t *testing.T) {
		assert.False(t, (Polygon{}).IsSimple())
		assert.False(t, (Polygon{Points: []Point{{0, 0}}}).IsSimple())
		assert.False(t, (Polygon{Points: []Point{{0, 0}, {1, 1}}}).IsSimple())
	})

	t.Run("rejects non-finite coordinates", func(t *testing.T) {
		poly := Polygon{Points: []Point{{0, 0}, {1, 0}, {math.NaN(), 1}}}
		assert.False(t, poly.IsSimple())
		poly = Polygon{Points: []Point{{0, 0}, {1, 0}, {math.Inf(1), 1}}}
		assert.False(t, poly.IsSimple())
	})

	t.Run("near self-touch stays simple", func(t *testing.T) {
		// The notch comes within 1e-12 of the bottom edge without touching.
		notch := Polygon{Points: []Point{{0, 0}, {4, 0}, {4, 3}, {2, 1e-12}, {0, 3}}}
		assert.True(t, notch.IsSimple())
	})
}
