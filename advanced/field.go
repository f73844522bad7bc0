package advanced

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/lloyd/dbg"
	"github.com/pkg/errors"
)

// Fewest points that can form a cell.
const MinPoints = 3

// A Field runs Lloyd relaxation on a fixed number of points: each call to
// Relax moves every point to the centroid of its Voronoi region.
//
// A Field is not safe for concurrent use. Separate fields share no state and
// can run on separate goroutines.
type Field struct {
	points     []Point
	domain     Domain
	constrain  bool
	diagram    *Diagram
	iterations int

	builder  DiagramBuilder
	jitterer *Jitterer
	log      *log.Logger
}

// NewField validates points and opts, derives the domain from points, and
// builds the first diagram. The caller's slice is copied, never modified.
func NewField(points []Point, opts Options) (field *Field, err error) {
	defer func() {
		recoveredErr := HandleRelaxPanicRecover(recover())
		if recoveredErr != nil {
			field = nil
			err = recoveredErr
		}
	}()

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(points) < MinPoints {
		return nil, errors.Wrapf(ErrInvalidInput, "need at least %d points, got %d", MinPoints, len(points))
	}
	domain, err := NewDomain(points)
	if err != nil {
		return nil, err
	}

	f := &Field{
		domain:    domain,
		constrain: opts.Constrain,
		builder:   opts.builder(),
		jitterer:  NewJitterer(opts.JitterScale*domain.scale(), opts.MaxJitterPasses, opts.seed()),
		log:       opts.logger(),
	}

	f.points, f.diagram, err = f.settle(points)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Relax runs one Lloyd iteration. Point i of the result is the centroid of
// point i's region, regardless of the order the builder keeps regions in. If
// Relax fails, the field is left exactly as it was.
func (f *Field) Relax() (err error) {
	defer func() {
		recoveredErr := HandleRelaxPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	centroids := make([]Point, len(f.points))
	for i := range f.points {
		centroids[i] = f.clamp(f.diagram.Ring(i).Centroid())
	}

	points, diagram, err := f.settle(centroids)
	if err != nil {
		return errors.Wrapf(err, "iteration %d", f.iterations+1)
	}

	var displacement float64
	for i, p := range points {
		displacement = math.Max(displacement, p.Sub(f.points[i]).Norm())
	}

	f.points = points
	f.diagram = diagram
	f.iterations++
	f.log.Debug("relaxed", "iteration", f.iterations, "max_displacement", displacement)
	return nil
}

// Jitter points apart and build their diagram, without touching the field.
func (f *Field) settle(points []Point) ([]Point, *Diagram, error) {
	spread, passes, err := f.jitterer.Spread(points, f.clamp)
	if err != nil {
		return nil, nil, err
	}

	var clip *Domain
	if f.constrain {
		clip = &f.domain
	}
	diagram, err := f.builder.Build(spread, clip)
	if err != nil {
		return nil, nil, err
	}
	if len(diagram.PointRegion) != len(spread) {
		return nil, nil, errors.Wrapf(ErrGeometry, "diagram maps %d points, expected %d", len(diagram.PointRegion), len(spread))
	}
	if f.constrain {
		diagram = diagram.ClampVertices(f.domain)
	}

	f.log.Debug("built diagram",
		"sites", len(spread),
		"regions", len(diagram.Regions),
		"vertices", len(diagram.Vertices),
		"jitter_passes", passes,
	)
	return spread, diagram, nil
}

func (f *Field) clamp(p Point) Point {
	if f.constrain {
		return f.domain.Clamp(p)
	}
	return p
}

// Points returns a copy of the current points, in the order they were given.
func (f *Field) Points() []Point {
	points := make([]Point, len(f.points))
	copy(points, f.points)
	return points
}

func (f *Field) Domain() Domain {
	return f.domain
}

// The diagram of the current points. It is shared with the field, so treat
// it as read only.
func (f *Field) Diagram() *Diagram {
	return f.diagram
}

func (f *Field) Iterations() int {
	return f.iterations
}

func (f *Field) Constrained() bool {
	return f.constrain
}

func (f *Field) String() string {
	return fmt.Sprintf("Field %s { points: %d, iterations: %d } <domain: %v>",
		f.DbgName(),
		len(f.points),
		f.iterations,
		f.domain.Rect,
	)
}

func (f *Field) DbgName() string {
	// Constrained fields are green, free ones cyan
	name := dbg.Name(f)
	if f.constrain {
		name = aurora.Green(name).String()
	} else {
		name = aurora.Cyan(name).String()
	}
	return name
}
