package dominosort

import (
	"errors"
	"fmt"
)

var (
	// ErrNoItems is returned when Sort or Solve receive an empty item list.
	ErrNoItems = errors.New("dominosort: no items")

	// ErrNilMetric is returned when the metric is nil.
	ErrNilMetric = errors.New("dominosort: nil metric")

	// ErrNoSolution is wrapped by *Warning when the search ends without an
	// ordering that is known to be at least as good as the input.
	ErrNoSolution = errors.New("dominosort: no acyclic integral solution found")

	// ErrCanceled wraps the context error when the search is interrupted.
	ErrCanceled = errors.New("dominosort: search canceled")

	// ErrBadOptions is returned for out-of-range option values.
	ErrBadOptions = errors.New("dominosort: invalid options")

	// ErrBadConfig is returned by LoadConfig for undecodable YAML.
	ErrBadConfig = errors.New("dominosort: invalid config")

	// ErrConditionsMismatch is returned when composing Conditions of different
	// sizes or when an operand is nil.
	ErrConditionsMismatch = errors.New("dominosort: conditions size mismatch")

	// ErrBadBranch is returned by Branch for an out-of-range index or a value outside {0,1}.
	ErrBadBranch = errors.New("dominosort: invalid branch")

	// ErrBadCycle is returned by BanCycle for an empty, repeating or out-of-range cycle.
	ErrBadCycle = errors.New("dominosort: invalid cycle")
)

// Warning is the non-fatal outcome of a search that found nothing better
// than the input order and could not confirm that order either. The result
// still carries the input order and is safe to use.
type Warning struct {
	// Message is the diagnostic of the last failed relaxation, if any.
	Message string
}

func (w *Warning) Error() string {
	if w.Message == "" {
		return fmt.Sprintf("%s; returning input order", ErrNoSolution)
	}

	return fmt.Sprintf("%s; returning input order (last relaxation: %s)", ErrNoSolution, w.Message)
}

// Unwrap lets errors.Is(err, ErrNoSolution) match.
func (w *Warning) Unwrap() error { return ErrNoSolution }
