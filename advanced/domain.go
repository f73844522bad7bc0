package advanced

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Points are plain r2 points. Nothing in this package ever mutates a point
// value owned by the caller; every stage produces fresh slices.
type Point = r2.Point

// Axis-aligned bounding box of the original input points. A Domain is
// computed once, when a field is constructed, and never follows the relaxed
// points around.
type Domain struct {
	r2.Rect
}

// NewDomain computes the componentwise min/max of a non-empty set of finite
// points.
func NewDomain(points []Point) (Domain, error) {
	if len(points) == 0 {
		return Domain{}, errors.Wrap(ErrInvalidInput, "cannot compute a domain for an empty point set")
	}
	for i, p := range points {
		if !isFinite(p) {
			return Domain{}, errors.Wrapf(ErrInvalidInput, "point %d has a non-finite coordinate %v", i, p)
		}
	}
	return Domain{r2.RectFromPoints(points...)}, nil
}

func (d Domain) XMin() float64 { return d.X.Lo }
func (d Domain) XMax() float64 { return d.X.Hi }
func (d Domain) YMin() float64 { return d.Y.Lo }
func (d Domain) YMax() float64 { return d.Y.Hi }

// Clamp each axis of p independently into the domain.
func (d Domain) Clamp(p Point) Point {
	return d.ClampPoint(p)
}

// Contains is inclusive on every edge, so clamped points are always contained.
func (d Domain) Contains(p Point) bool {
	return d.ContainsPoint(p)
}

// Largest side of the domain, but never less than 1. Used to turn relative
// tolerances into absolute ones.
func (d Domain) scale() float64 {
	size := d.Size()
	return math.Max(1, math.Max(size.X, size.Y))
}

func isFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
