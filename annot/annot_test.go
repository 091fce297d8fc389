package annot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantpath/planar/geom"
)

func TestNewDot(t *testing.T) {
	d := NewDot(3, 4, "nucleus")
	assert.Equal(t, "nucleus", d.Name())
	assert.Equal(t, KindDot, d.Kind())
	assert.Equal(t, 1, d.Size())
	assert.Equal(t, []geom.Point{{X: 3, Y: 4}}, d.Points())

	assert.Equal(t, "DOT", NewDot(0, 0, "").Name(), "default name is the kind")
}

func TestNewPointSetCopiesInput(t *testing.T) {
	pts := []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}
	s := NewPointSet(pts, "")
	pts[0].X = 99
	assert.Equal(t, 1.0, s.Points()[0].X, "constructor copies the input slice")
	assert.Equal(t, "POINTSET", s.Name())
	assert.Equal(t, KindPointSet, s.Kind())
}

func TestBoundingBox(t *testing.T) {
	p := NewPolygon([]geom.Point{{X: 3, Y: -1}, {X: 0, Y: 4}, {X: -2, Y: 2}}, "roi")
	min, max := p.BoundingBox()
	assert.Equal(t, geom.Point{X: -2, Y: -1}, min)
	assert.Equal(t, geom.Point{X: 3, Y: 4}, max)
}

func TestTransforms(t *testing.T) {
	t.Run("translate", func(t *testing.T) {
		d := NewDot(1, 2, "")
		d.Translate(10, -1)
		assert.Equal(t, []geom.Point{{X: 11, Y: 1}}, d.Points())
	})

	t.Run("scale", func(t *testing.T) {
		p := NewPolygon([]geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, "")
		p.Scale(2, 0.5)
		assert.Equal(t, []geom.Point{{X: 2, Y: 1}, {X: 6, Y: 2}, {X: 10, Y: 3}}, p.Points())
	})

	t.Run("affine identity", func(t *testing.T) {
		p := NewPolygon([]geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, "")
		p.Affine([2][3]float64{{1, 0, 0}, {0, 1, 0}})
		assert.Equal(t, []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, p.Points())
	})

	t.Run("affine rotate and shift", func(t *testing.T) {
		// Quarter turn counterclockwise plus a translation by (10, 0).
		d := NewDot(2, 0, "")
		d.Affine([2][3]float64{{0, -1, 10}, {1, 0, 0}})
		assert.Equal(t, []geom.Point{{X: 10, Y: 2}}, d.Points())
	})
}

func TestDuplicateIsIndependent(t *testing.T) {
	p := NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, "tumor")
	dup := p.Duplicate()
	dup.Translate(100, 100)

	assert.Equal(t, "tumor", dup.Name())
	assert.Equal(t, KindPolygon, dup.Kind())
	assert.Equal(t, geom.Point{X: 0, Y: 0}, p.Points()[0], "original is untouched")
	assert.Equal(t, geom.Point{X: 100, Y: 100}, dup.Points()[0])
}

func TestPolygonGeometry(t *testing.T) {
	p := NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, "")
	g := p.Geometry()
	assert.True(t, g.IsSimple())

	g.Points[0].X = 99
	assert.Equal(t, 0.0, p.Points()[0].X, "geometry shares no storage")
}
