package advanced

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned when a point set or configuration can never
	// produce a field: empty or too small sets, wrong arity, non-finite
	// coordinates, or out of range options.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGeometry is returned when a diagram cannot be built from a point set,
	// or when jitter cannot separate coincident points.
	ErrGeometry = errors.New("geometry error")
)

// Threading errors through every per-region helper during a relaxation step
// would bury the algorithm. Instead, those helpers panic with a RelaxError, and
// the public Field methods recover to convert it back into an error.

type RelaxError error

// Panic with a RelaxError wrapping ErrGeometry.
func fatalf(format string, args ...interface{}) {
	panic(RelaxError(errors.Wrapf(ErrGeometry, format, args...)))
}

func HandleRelaxPanicRecover(r interface{}) error {
	if r != nil {
		if relaxError, ok := r.(RelaxError); ok {
			return relaxError
		}
		panic(r)
	}
	return nil
}
