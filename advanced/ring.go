package advanced

// Area substituted for a zero-area ring when computing its centroid. The
// result for such a ring is an approximation, not an error.
const DegenerateArea = 1e-7

// A polygon given as an ordered list of vertices. Most operations want a
// closed ring, where the first vertex is repeated as the last.
type Ring []Point

func (r Ring) IsClosed() bool {
	return len(r) > 1 && r[0] == r[len(r)-1]
}

// Closed returns the ring with its first vertex appended, unless it is already
// closed. The receiver is never modified.
func (r Ring) Closed() Ring {
	if len(r) == 0 || r.IsClosed() {
		return r
	}
	closed := make(Ring, len(r), len(r)+1)
	copy(closed, r)
	return append(closed, r[0])
}

// Shoelace area of a closed ring. Positive for CCW rings in a y-up
// coordinate system.
func (r Ring) SignedArea() float64 {
	var area float64
	for i := 0; i < len(r)-1; i++ {
		area += r[i].Cross(r[i+1])
	}
	return area / 2
}

// Area centroid of a closed ring. The sign of the area cancels, so the winding
// direction doesn't matter. Rings with exactly zero area use DegenerateArea
// as the denominator instead.
func (r Ring) Centroid() Point {
	var (
		area     float64
		centroid Point
	)
	for i := 0; i < len(r)-1; i++ {
		cross := r[i].Cross(r[i+1])
		area += cross
		centroid = centroid.Add(r[i].Add(r[i+1]).Mul(cross))
	}
	area /= 2
	if area == 0 {
		area = DegenerateArea
	}
	return centroid.Mul(1 / (6 * area))
}
