package advanced

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/zzwx/voronoi"
)

// Margin of the horizon box, relative to the size of the site set, used when
// no clip box is given.
const DefaultHorizonScale = 1e3

// Two vertices closer than this are the same vertex. This matches the
// tolerance the sweep itself uses to decide whether a cell is closed.
const vertexTolerance = 1e-9

// Builds diagrams with Fortune's sweep, as implemented by zzwx/voronoi.
//
// That implementation always clips to a box. For an unbounded diagram, sites
// are clipped to a far "horizon" box instead, and the horizon stands in for
// infinity: any vertex that lies on it, and any gap in a region's edge chain,
// is reported as Infinity. A region whose vertices all lie on the horizon keeps
// them as finite vertices, since its true vertices are farther out still.
type FortuneBuilder struct {
	HorizonScale float64
}

func (b FortuneBuilder) Build(sites []Point, clip *Domain) (diagram *Diagram, err error) {
	if len(sites) < 3 {
		return nil, errors.Wrapf(ErrGeometry, "need at least 3 sites for a diagram, got %d", len(sites))
	}
	if clip != nil {
		if size := clip.Size(); size.X <= 0 || size.Y <= 0 {
			return nil, errors.Wrapf(ErrGeometry, "clip box %v has no area", clip.Rect)
		}
	}

	// The sweep reports degenerate input by panicking
	defer func() {
		if r := recover(); r != nil {
			diagram = nil
			err = errors.Wrapf(ErrGeometry, "voronoi sweep failed: %v", r)
		}
	}()

	siteIndex := make(map[voronoi.Vertex]int, len(sites))
	vsites := make([]voronoi.Vertex, len(sites))
	for i, site := range sites {
		v := voronoi.Vertex{X: site.X, Y: site.Y}
		if j, ok := siteIndex[v]; ok {
			return nil, errors.Wrapf(ErrGeometry, "sites %d and %d coincide at %v", j, i, site)
		}
		siteIndex[v] = i
		vsites[i] = v
	}

	var window r2.Rect
	if clip != nil {
		window = clip.Rect
	} else {
		window = b.horizon(sites)
	}
	bbox := voronoi.BBox{Xl: window.X.Lo, Xr: window.X.Hi, Yt: window.Y.Lo, Yb: window.Y.Hi}
	swept := voronoi.ComputeDiagram(vsites, bbox, clip != nil)

	if len(swept.Cells) != len(sites) {
		return nil, errors.Wrapf(ErrGeometry, "diagram has %d cells for %d sites", len(swept.Cells), len(sites))
	}

	a := &assembler{
		window:     window,
		bounded:    clip != nil,
		horizonTol: vertexTolerance * math.Max(1, math.Max(window.Size().X, window.Size().Y)),
		index:      make(map[voronoi.Vertex]int),
		diagram: &Diagram{
			Regions:     make([][]int, len(swept.Cells)),
			PointRegion: make([]int, len(sites)),
		},
	}
	for i := range a.diagram.PointRegion {
		a.diagram.PointRegion[i] = -1
	}

	for region, cell := range swept.Cells {
		point, ok := siteIndex[cell.Site]
		if !ok {
			return nil, errors.Wrapf(ErrGeometry, "cell %d has unknown site %v", region, cell.Site)
		}
		a.diagram.PointRegion[point] = region
		a.diagram.Regions[region] = a.region(cell, false)
		if !a.bounded && a.diagram.finiteVertexCount(region) == 0 {
			a.diagram.Regions[region] = a.region(cell, true)
		}
		if a.diagram.finiteVertexCount(region) == 0 {
			return nil, errors.Wrapf(ErrGeometry, "site %d at %v has no finite region vertices", point, sites[point])
		}
	}
	for point, region := range a.diagram.PointRegion {
		if region < 0 {
			return nil, errors.Wrapf(ErrGeometry, "site %d has no cell", point)
		}
	}
	return a.diagram, nil
}

// The horizon is the site bounds grown on every side by HorizonScale times
// their largest extent (or 1, for sites that are nearly coincident).
func (b FortuneBuilder) horizon(sites []Point) r2.Rect {
	scale := b.HorizonScale
	if scale <= 0 {
		scale = DefaultHorizonScale
	}
	bounds := r2.RectFromPoints(sites...)
	size := bounds.Size()
	margin := scale * math.Max(1, math.Max(size.X, size.Y))
	return bounds.Expanded(r2.Point{X: margin, Y: margin})
}

// Converts cells from the sweep into indexed regions, sharing vertices
// between regions where the sweep shares them.
type assembler struct {
	window  r2.Rect
	bounded bool
	// Horizon coordinates are large, so the horizon test scales its tolerance
	// with the window.
	horizonTol float64
	index      map[voronoi.Vertex]int
	diagram    *Diagram
}

func (a *assembler) region(cell *voronoi.Cell, keepHorizon bool) []int {
	n := len(cell.Halfedges)
	region := make([]int, 0, n+2)
	for i, halfedge := range cell.Halfedges {
		region = a.appendVertex(region, halfedge.GetStartpoint(), keepHorizon)

		// A closed chain ends each halfedge where the next one starts. Anything
		// else is a gap, which only an open cell can have.
		end := halfedge.GetEndpoint()
		next := cell.Halfedges[(i+1)%n].GetStartpoint()
		if !a.same(end, next) {
			region = a.appendVertex(region, end, keepHorizon)
			region = appendInfinity(region)
		}
	}
	// The ring wraps around, so leading and trailing markers are one gap
	if len(region) > 1 && region[0] == Infinity && region[len(region)-1] == Infinity {
		region = region[:len(region)-1]
	}
	return region
}

func (a *assembler) appendVertex(region []int, v voronoi.Vertex, keepHorizon bool) []int {
	if !a.bounded && !keepHorizon && a.onHorizon(v) {
		return appendInfinity(region)
	}
	i, ok := a.index[v]
	if !ok {
		i = len(a.diagram.Vertices)
		a.diagram.Vertices = append(a.diagram.Vertices, Point{X: v.X, Y: v.Y})
		a.index[v] = i
	}
	if len(region) > 0 && region[len(region)-1] == i {
		return region
	}
	return append(region, i)
}

func appendInfinity(region []int) []int {
	if len(region) > 0 && region[len(region)-1] == Infinity {
		return region
	}
	return append(region, Infinity)
}

func (a *assembler) same(u, v voronoi.Vertex) bool {
	return math.Abs(u.X-v.X) < vertexTolerance && math.Abs(u.Y-v.Y) < vertexTolerance
}

func (a *assembler) onHorizon(v voronoi.Vertex) bool {
	return math.Abs(v.X-a.window.X.Lo) < a.horizonTol ||
		math.Abs(v.X-a.window.X.Hi) < a.horizonTol ||
		math.Abs(v.Y-a.window.Y.Lo) < a.horizonTol ||
		math.Abs(v.Y-a.window.Y.Hi) < a.horizonTol
}
