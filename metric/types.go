package metric

import "errors"

var (
	// ErrDimensionMismatch is returned when the two vectors have different lengths.
	ErrDimensionMismatch = errors.New("metric: dimension mismatch")

	// ErrEmptyVector is returned when an input vector has no coordinates.
	ErrEmptyVector = errors.New("metric: empty vector")

	// ErrNaNInf is returned when a coordinate is NaN or ±Inf, or when a
	// distance overflows to +Inf.
	ErrNaNInf = errors.New("metric: NaN or Inf coordinate")

	// ErrNegativeDistance is returned by Check when a norm yields a negative or NaN value.
	ErrNegativeDistance = errors.New("metric: negative or NaN distance")

	// ErrBadOrder is returned by NewMinkowski for p < 1.
	ErrBadOrder = errors.New("metric: Minkowski order must be >= 1")
)

// Vector is a point in d-dimensional space. Scalars are 1-length vectors.
type Vector []float64

// Scalar wraps a single value as a 1-length Vector.
func Scalar(v float64) Vector { return Vector{v} }

// Metric computes the distance between two vectors of matching dimensionality.
// Implementations must be pure.
type Metric interface {
	Eval(a, b Vector) (float64, error)
}

// Func adapts an ordinary function to the Metric interface.
type Func func(a, b Vector) (float64, error)

// Eval calls f(a, b).
func (f Func) Eval(a, b Vector) (float64, error) { return f(a, b) }
