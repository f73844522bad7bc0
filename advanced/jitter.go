package advanced

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Separates coincident points. The diagram collaborator merges sites with
// identical coordinates, which would leave some points without a region.
type Jitterer struct {
	// Maximum offset applied to each axis of each point per pass.
	Scale float64
	// Number of perturbation passes after which Spread gives up. Only
	// adversarial inputs, such as every point clamped into the same corner of
	// a zero-area domain, ever get close.
	MaxPasses int

	rng *rand.Rand
}

func NewJitterer(scale float64, maxPasses int, seed int64) *Jitterer {
	return &Jitterer{
		Scale:     scale,
		MaxPasses: maxPasses,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Spread returns a copy of points in which no two points are exactly equal,
// along with the number of perturbation passes it took. Each pass moves every
// point, not just the colliding ones, so that an offset can't land a point on
// top of a third one without being noticed; the whole set is checked again
// after each pass. clamp is applied to every perturbed point.
func (j *Jitterer) Spread(points []Point, clamp func(Point) Point) ([]Point, int, error) {
	spread := make([]Point, len(points))
	copy(spread, points)

	passes := 0
	for HasDuplicates(spread) {
		if passes >= j.MaxPasses {
			return nil, passes, errors.Wrapf(ErrGeometry, "points still coincide after %d jitter passes", passes)
		}
		for i, p := range spread {
			spread[i] = clamp(Point{
				X: p.X + j.offset(),
				Y: p.Y + j.offset(),
			})
		}
		passes++
	}
	return spread, passes, nil
}

// Uniform in [-Scale, Scale)
func (j *Jitterer) offset() float64 {
	return (2*j.rng.Float64() - 1) * j.Scale
}

// Exact equality, no tolerance. Only exact duplicates break the diagram.
func HasDuplicates(points []Point) bool {
	seen := make(map[Point]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}
