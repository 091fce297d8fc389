package geom

// Point is an immutable coordinate pair. X increases to the right and Y
// increases up the page, as on mathematical graph paper.
type Point struct {
	X float64
	Y float64
}

// Polygon is an ordered sequence of vertices. The edge set is the vertex
// sequence plus the implicit closing edge from the last vertex back to the
// first. Operations never mutate the vertex slice; anything that needs a
// different ordering works on a copy.
type Polygon struct {
	Points []Point
}

type PolygonList []Polygon

// BoundedSide classifies a point against a polygon's edge set.
type BoundedSide int

const (
	OnUnboundedSide BoundedSide = -1
	OnBoundary      BoundedSide = 0
	OnBoundedSide   BoundedSide = 1
)

func (s BoundedSide) String() string {
	switch s {
	case OnUnboundedSide:
		return "outside"
	case OnBoundary:
		return "boundary"
	case OnBoundedSide:
		return "inside"
	}
	return "unknown"
}
