// Lloyd relaxation for Go.
//
// This package spreads a set of 2D points evenly across their bounding box by
// repeatedly moving each point to the centroid of its Voronoi cell. The
// advanced package exposes the individual stages (domain, jitter, centroid,
// diagram building) for callers that need them.
package lloyd

import (
	"github.com/charmbracelet/log"
	"github.com/osuushi/lloyd/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Domain = advanced.Domain
type Field = advanced.Field
type DiagramBuilder = advanced.DiagramBuilder

var (
	ErrInvalidInput = advanced.ErrInvalidInput
	ErrGeometry     = advanced.ErrGeometry
)

type Option func(*advanced.Options)

// Let points, diagram vertices and centroids leave the bounding box of the
// input. Fields are constrained by default.
func Unconstrained() Option {
	return func(o *advanced.Options) { o.Constrain = false }
}

// Seed the jitter used to separate coincident points, for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *advanced.Options) { o.Seed = seed }
}

// Maximum jitter offset, relative to the largest side of the bounding box.
func WithJitterScale(scale float64) Option {
	return func(o *advanced.Options) { o.JitterScale = scale }
}

func WithLogger(logger *log.Logger) Option {
	return func(o *advanced.Options) { o.Logger = logger }
}

// Replace the Voronoi implementation.
func WithBuilder(builder DiagramBuilder) Option {
	return func(o *advanced.Options) { o.Builder = builder }
}

// Create a field for at least three finite points. The field is constrained
// to the points' bounding box unless Unconstrained is given.
func NewField(points []Point, opts ...Option) (*Field, error) {
	options := advanced.DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return advanced.NewField(points, options)
}

// Run a number of relaxation iterations and return the resulting points, in
// the same order as the input.
func Relax(points []Point, iterations int, opts ...Option) ([]Point, error) {
	if iterations < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "negative iteration count %d", iterations)
	}

	field, err := NewField(points, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < iterations; i++ {
		if err := field.Relax(); err != nil {
			return nil, err
		}
	}
	return field.Points(), nil
}

// Convert coordinate pairs to points. Every entry must have exactly two
// values.
func FromCoords(coords [][]float64) ([]Point, error) {
	points := make([]Point, len(coords))
	for i, c := range coords {
		if len(c) != 2 {
			return nil, errors.Wrapf(ErrInvalidInput, "coordinate %d has %d values, expected 2", i, len(c))
		}
		points[i] = Point{X: c[0], Y: c[1]}
	}
	return points, nil
}
