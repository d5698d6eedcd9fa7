package internal

import "github.com/pkg/errors"

// Precondition failures can happen deep in the recursive closest pair search,
// and threading errors through every level would bury the algorithms. Instead,
// we panic with a GeometryError, and the public API recovers to convert to an
// error.

var (
	ErrEmptyPointSet  = errors.New("empty point set")
	ErrTooFewPoints   = errors.New("too few points")
	ErrDegenerateEdge = errors.New("zero-length edge")
)

type GeometryError struct {
	err error
}

func (e *GeometryError) Error() string {
	return e.err.Error()
}

func (e *GeometryError) Unwrap() error {
	return e.err
}

// Panic with a GeometryError wrapping one of the sentinels above.
func fatalf(cause error, format string, args ...interface{}) {
	panic(&GeometryError{errors.Wrapf(cause, format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(*GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
