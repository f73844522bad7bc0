package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/lloyd/dbg"
)

// Region vertex index standing in for a vertex at infinity.
const Infinity = -1

// A Voronoi diagram for one point set. Diagrams are values: a field builds a
// fresh one for every iteration and never edits one in place.
type Diagram struct {
	Vertices []Point
	// For each region, indices into Vertices in ring order. Open regions
	// contain Infinity where the ring leaves the finite part of the plane.
	Regions [][]int
	// For each input point, the index of its region. Regions are in whatever
	// order the builder produced them, which need not be the input order.
	PointRegion []int
}

// Builds diagrams. With a clip box, every region is clipped to and closed
// along the box, so no region contains Infinity. Without one, unbounded
// regions contain Infinity.
//
// Build must fail with ErrGeometry if it cannot give every site a region
// with at least one finite vertex.
type DiagramBuilder interface {
	Build(sites []Point, clip *Domain) (*Diagram, error)
}

// Vertex indices of the region belonging to a point.
func (d *Diagram) CellOf(point int) []int {
	if point < 0 || point >= len(d.PointRegion) {
		fatalf("point %d out of range for diagram of %d points", point, len(d.PointRegion))
	}
	region := d.PointRegion[point]
	if region < 0 || region >= len(d.Regions) {
		fatalf("point %d maps to missing region %d", point, region)
	}
	return d.Regions[region]
}

// Closed ring of the finite vertices of a point's region. Vertices at
// infinity are dropped, so an open region is truncated to its finite part.
func (d *Diagram) Ring(point int) Ring {
	cell := d.CellOf(point)
	ring := make(Ring, 0, len(cell)+1)
	for _, v := range cell {
		if v == Infinity {
			continue
		}
		ring = append(ring, d.Vertices[v])
	}
	if len(ring) == 0 {
		fatalf("point %d has no finite vertices in its region", point)
	}
	return ring.Closed()
}

// ClampVertices returns a copy of the diagram with every vertex clamped into
// the domain. Regions and the point mapping are shared with the receiver, and
// neither is ever modified.
func (d *Diagram) ClampVertices(domain Domain) *Diagram {
	vertices := make([]Point, len(d.Vertices))
	for i, v := range d.Vertices {
		vertices[i] = domain.Clamp(v)
	}
	return &Diagram{
		Vertices:    vertices,
		Regions:     d.Regions,
		PointRegion: d.PointRegion,
	}
}

func (d *Diagram) IsOpen(region int) bool {
	for _, v := range d.Regions[region] {
		if v == Infinity {
			return true
		}
	}
	return false
}

func (d *Diagram) finiteVertexCount(region int) int {
	count := 0
	for _, v := range d.Regions[region] {
		if v != Infinity {
			count++
		}
	}
	return count
}

func (d *Diagram) String() string {
	var parts []string
	for i := range d.Regions {
		parts = append(parts, d.RegionName(i))
	}
	return fmt.Sprintf("Diagram %s { vertices: %d } [%s]",
		dbg.Name(d),
		len(d.Vertices),
		strings.Join(parts, ", "),
	)
}

func (d *Diagram) RegionName(region int) string {
	// If the region can't enclose any area, color it red
	name := fmt.Sprintf("R%d", region)
	if d.finiteVertexCount(region) < 3 {
		name = aurora.Red(name).String()
	} else if d.IsOpen(region) {
		name = aurora.Cyan(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}
