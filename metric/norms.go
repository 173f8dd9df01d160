package metric

import (
	"fmt"
	"math"
)

// Manhattan is the L1 distance.
type Manhattan struct{}

// Euclidean is the L2 distance.
type Euclidean struct{}

// Chebyshev is the L∞ distance.
type Chebyshev struct{}

// Minkowski is the Lp distance for P ≥ 1. Build it with NewMinkowski.
type Minkowski struct{ p float64 }

var (
	_ Metric = Manhattan{}
	_ Metric = Euclidean{}
	_ Metric = Chebyshev{}
	_ Metric = Minkowski{}
	_ Metric = Func(nil)
)

// NewMinkowski returns the Lp metric. p = 1 and p = 2 match Manhattan and
// Euclidean; p = +Inf matches Chebyshev.
func NewMinkowski(p float64) (Minkowski, error) {
	if math.IsNaN(p) || p < 1 {
		return Minkowski{}, fmt.Errorf("p=%g: %w", p, ErrBadOrder)
	}

	return Minkowski{p: p}, nil
}

// P returns the order of the norm.
func (m Minkowski) P() float64 { return m.p }

// Eval returns Σ|aᵢ−bᵢ|.
func (Manhattan) Eval(a, b Vector) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}
	var (
		s float64
		i int
	)
	for i = range a {
		s += math.Abs(a[i] - b[i])
	}
	if math.IsInf(s, 1) {
		return 0, errOverflow
	}

	return s, nil
}

// Eval returns √Σ(aᵢ−bᵢ)². The sum is scaled by the largest coordinate gap
// so wide-range inputs do not overflow.
func (Euclidean) Eval(a, b Vector) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}
	scale, ok := maxAbsDiff(a, b)
	if !ok {
		return 0, errOverflow
	}
	if scale == 0 {
		return 0, nil
	}
	var (
		s, d float64
		i    int
	)
	for i = range a {
		d = (a[i] - b[i]) / scale
		s += d * d
	}

	return finite(scale * math.Sqrt(s))
}

// Eval returns maxᵢ|aᵢ−bᵢ|.
func (Chebyshev) Eval(a, b Vector) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}
	m, ok := maxAbsDiff(a, b)
	if !ok {
		return 0, errOverflow
	}

	return m, nil
}

// Eval returns (Σ|aᵢ−bᵢ|^p)^(1/p).
func (m Minkowski) Eval(a, b Vector) (float64, error) {
	switch {
	case m.p == 0:
		return 0, ErrBadOrder // zero value, not built via NewMinkowski
	case m.p == 1:
		return Manhattan{}.Eval(a, b)
	case m.p == 2:
		return Euclidean{}.Eval(a, b)
	case math.IsInf(m.p, 1):
		return Chebyshev{}.Eval(a, b)
	}
	if err := validatePair(a, b); err != nil {
		return 0, err
	}
	scale, ok := maxAbsDiff(a, b)
	if !ok {
		return 0, errOverflow
	}
	if scale == 0 {
		return 0, nil
	}
	var (
		s float64
		i int
	)
	for i = range a {
		s += math.Pow(math.Abs(a[i]-b[i])/scale, m.p)
	}

	return finite(scale * math.Pow(s, 1/m.p))
}

// Check evaluates m and rejects negative, NaN or infinite results.
func Check(m Metric, a, b Vector) (float64, error) {
	d, err := m.Eval(a, b)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(d) || d < 0 {
		return 0, fmt.Errorf("got %g: %w", d, ErrNegativeDistance)
	}
	if math.IsInf(d, 1) {
		return 0, fmt.Errorf("got %g: %w", d, ErrNaNInf)
	}

	return d, nil
}

// errOverflow reports a distance that does not fit in a float64.
var errOverflow = fmt.Errorf("distance overflows: %w", ErrNaNInf)

func finite(d float64) (float64, error) {
	if math.IsInf(d, 1) {
		return 0, errOverflow
	}

	return d, nil
}

// validatePair enforces equal, non-zero length and finite coordinates.
func validatePair(a, b Vector) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyVector
	}
	if len(a) != len(b) {
		return fmt.Errorf("len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	var i int
	for i = range a {
		if math.IsNaN(a[i]) || math.IsInf(a[i], 0) || math.IsNaN(b[i]) || math.IsInf(b[i], 0) {
			return fmt.Errorf("coordinate %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}

// maxAbsDiff returns maxᵢ|aᵢ−bᵢ|; ok is false when the gap overflows to +Inf.
func maxAbsDiff(a, b Vector) (float64, bool) {
	var (
		m, d float64
		i    int
	)
	for i = range a {
		if d = math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}

	return m, !math.IsInf(m, 1)
}
