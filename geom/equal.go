package geom

// Equal reports whether p and q describe the same polygon: one vertex
// sequence must be a cyclic rotation of the other, traversed in the same
// direction. A mirrored traversal of the same vertex set is a different
// polygon under this definition: it encloses the same region with the
// opposite winding. Coordinates are compared exactly.
func Equal(p, q Polygon) bool {
	n := len(p.Points)
	if n != len(q.Points) {
		return false
	}
	if n == 0 {
		return true
	}
	for off := range q.Points {
		if q.Points[off] != p.Points[0] {
			continue
		}
		match := true
		for i := 1; i < n; i++ {
			if p.Points[i] != q.Points[(off+i)%n] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
