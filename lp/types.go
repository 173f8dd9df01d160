package lp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dominosort/matrix"
)

var (
	// ErrShape is returned when the problem's matrices and vectors disagree in size.
	ErrShape = errors.New("lp: inconsistent problem shape")

	// ErrNaN is returned when a cost, coefficient, bound or right-hand side is NaN,
	// or when a cost/coefficient/rhs is infinite.
	ErrNaN = errors.New("lp: NaN or Inf in problem data")

	// ErrUnsupportedBound is returned for an infinite lower bound.
	ErrUnsupportedBound = errors.New("lp: lower bounds must be finite")

	// ErrBadOption is returned for a negative MaxIter or tolerance.
	ErrBadOption = errors.New("lp: invalid option")
)

// Status is the outcome of a Solve call.
type Status int

const (
	// Optimal: an optimal vertex was found.
	Optimal Status = iota
	// Infeasible: the constraints admit no point.
	Infeasible
	// Unbounded: the objective decreases without limit.
	Unbounded
	// IterationLimit: MaxIter pivots were spent before termination.
	IterationLimit
)

// String returns a short lower-case name.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case IterationLimit:
		return "iteration limit"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Problem is a dense LP instance. Nil matrices stand for "no rows".
// Lower defaults to 0 and Upper to +Inf for every variable when nil.
type Problem struct {
	C     []float64
	Aeq   matrix.Matrix
	Beq   []float64
	Aub   matrix.Matrix
	Bub   []float64
	Lower []float64
	Upper []float64
}

// Result holds the outcome of Solve.
type Result struct {
	// X is the solution in the original variable space (nil unless Optimal).
	X []float64

	// Objective is cᵀX (0 unless Optimal).
	Objective float64

	// Status classifies the termination.
	Status Status

	// Message is a human-readable diagnostic for the status.
	Message string

	// Iterations counts pivots across both phases.
	Iterations int
}

// Success reports whether an optimal solution was found.
func (r Result) Success() bool { return r.Status == Optimal }

const (
	// DefaultMaxIter caps pivots across both phases.
	DefaultMaxIter = 10000

	// DefaultTolerance is the pivot/feasibility tolerance.
	DefaultTolerance = 1e-9
)

// Options configures Solve.
type Options struct {
	// MaxIter caps the number of pivots; 0 means DefaultMaxIter.
	MaxIter int

	// Tol is the zero tolerance for reduced costs, pivots and feasibility.
	Tol float64
}

// Option configures optional Solve behavior.
type Option func(*Options)

// DefaultOptions returns MaxIter = DefaultMaxIter and Tol = DefaultTolerance.
func DefaultOptions() Options {
	return Options{MaxIter: DefaultMaxIter, Tol: DefaultTolerance}
}

// WithMaxIter caps the total number of pivots.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithTolerance sets the zero tolerance.
func WithTolerance(eps float64) Option {
	return func(o *Options) { o.Tol = eps }
}

func (o Options) validate() error {
	if o.MaxIter < 0 {
		return fmt.Errorf("MaxIter=%d: %w", o.MaxIter, ErrBadOption)
	}
	if !(o.Tol > 0) {
		return fmt.Errorf("Tol=%g: %w", o.Tol, ErrBadOption)
	}

	return nil
}
