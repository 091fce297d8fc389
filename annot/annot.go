// Package annot holds slide annotation objects: named geometric markers
// placed on an image by a human or an upstream detector. Annotations are
// mutable containers (they get translated and rescaled as regions move
// between pyramid levels), in contrast to the geometry core, which treats
// all coordinates as immutable values.
package annot

import "github.com/quantpath/planar/geom"

// Kind tags the shape of an annotation.
type Kind string

const (
	KindDot      Kind = "DOT"
	KindPointSet Kind = "POINTSET"
	KindPolygon  Kind = "POLYGON"
)

type object struct {
	name string
	kind Kind
	xy   []geom.Point
}

// Name returns the annotation's label.
func (o *object) Name() string { return o.name }

// Kind returns the annotation's shape tag.
func (o *object) Kind() Kind { return o.kind }

// Size returns the number of points defining the annotation.
func (o *object) Size() int { return len(o.xy) }

// Points returns the annotation's coordinates. The slice is the live
// backing store; callers who need a stable copy should Duplicate first.
func (o *object) Points() []geom.Point { return o.xy }

// BoundingBox returns the corners of the annotation's bounding box.
func (o *object) BoundingBox() (min, max geom.Point) {
	return geom.Polygon{Points: o.xy}.Bounds()
}

// Translate moves every point by (dx, dy).
func (o *object) Translate(dx, dy float64) {
	for i := range o.xy {
		o.xy[i].X += dx
		o.xy[i].Y += dy
	}
}

// Scale multiplies every coordinate by (sx, sy). Used when moving an
// annotation between magnification levels.
func (o *object) Scale(sx, sy float64) {
	for i := range o.xy {
		o.xy[i].X *= sx
		o.xy[i].Y *= sy
	}
}

// Affine applies a 2×3 affine transform to every point:
//
//	x' = m[0][0]·x + m[0][1]·y + m[0][2]
//	y' = m[1][0]·x + m[1][1]·y + m[1][2]
func (o *object) Affine(m [2][3]float64) {
	for i, p := range o.xy {
		o.xy[i] = geom.Point{
			X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
			Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
		}
	}
}

func (o *object) duplicate() object {
	xy := make([]geom.Point, len(o.xy))
	copy(xy, o.xy)
	return object{name: o.name, kind: o.kind, xy: xy}
}

// Dot marks a single position.
type Dot struct {
	object
}

func NewDot(x, y float64, name string) *Dot {
	if name == "" {
		name = string(KindDot)
	}
	return &Dot{object{name: name, kind: KindDot, xy: []geom.Point{{X: x, Y: y}}}}
}

func (d *Dot) Duplicate() *Dot {
	return &Dot{d.duplicate()}
}

// PointSet is an ordered collection of positions with no implied edges.
type PointSet struct {
	object
}

func NewPointSet(pts []geom.Point, name string) *PointSet {
	if name == "" {
		name = string(KindPointSet)
	}
	xy := make([]geom.Point, len(pts))
	copy(xy, pts)
	return &PointSet{object{name: name, kind: KindPointSet, xy: xy}}
}

func (s *PointSet) Duplicate() *PointSet {
	return &PointSet{s.duplicate()}
}

// Polygon is a closed polygonal region.
type Polygon struct {
	object
}

func NewPolygon(pts []geom.Point, name string) *Polygon {
	if name == "" {
		name = string(KindPolygon)
	}
	xy := make([]geom.Point, len(pts))
	copy(xy, pts)
	return &Polygon{object{name: name, kind: KindPolygon, xy: xy}}
}

func (p *Polygon) Duplicate() *Polygon {
	return &Polygon{p.duplicate()}
}

// Geometry returns the annotation's region as a geometry-core polygon,
// sharing no storage with the annotation.
func (p *Polygon) Geometry() geom.Polygon {
	pts := make([]geom.Point, len(p.xy))
	copy(pts, p.xy)
	return geom.Polygon{Points: pts}
}
