package dominosort

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	// DefaultMaxIter caps simplex pivots per relaxation.
	DefaultMaxIter = 10000

	// DefaultTolerance is the relaxation tolerance and the slack used when
	// comparing losses and bounds.
	DefaultTolerance = 1e-9

	// DefaultIntegralityTol is the distance from an integer below which a
	// link variable counts as integral.
	DefaultIntegralityTol = 1e-6
)

// Option configures optional behavior of Sort and Solve.
type Option func(*SortOptions)

// SortOptions holds the search configuration.
type SortOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked before every relaxation.
	Ctx context.Context

	// Logger receives search diagnostics; defaults to zap.NewNop().
	Logger *zap.Logger

	// Verbose logs per-node diagnostics at INFO instead of DEBUG.
	Verbose bool

	// MaxIter caps simplex pivots per relaxation; 0 means DefaultMaxIter.
	MaxIter int

	// Tolerance is passed to the relaxation and used for loss comparisons.
	Tolerance float64

	// IntegralityTol decides when a link variable is integral; in (0, 0.5).
	IntegralityTol float64

	// Bounding prunes nodes whose relaxation objective cannot beat the
	// incumbent. Default true.
	Bounding bool

	// MaxNodes caps the number of relaxations; 0 means unlimited.
	MaxNodes int

	// WarmStart seeds the incumbent with a greedy path before the search.
	WarmStart bool
}

// DefaultOptions returns a SortOptions struct with:
//   - Background context and a no-op logger
//   - DefaultMaxIter, DefaultTolerance, DefaultIntegralityTol
//   - Bounding enabled, no node cap
func DefaultOptions() SortOptions {
	return SortOptions{
		Ctx:            context.Background(),
		Logger:         zap.NewNop(),
		MaxIter:        DefaultMaxIter,
		Tolerance:      DefaultTolerance,
		IntegralityTol: DefaultIntegralityTol,
		Bounding:       true,
	}
}

// WithContext sets the Context checked between relaxations.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *SortOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs l as the diagnostics sink. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *SortOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithVerbose raises per-node diagnostics to INFO.
func WithVerbose() Option {
	return func(o *SortOptions) { o.Verbose = true }
}

// WithMaxIter caps simplex pivots per relaxation.
func WithMaxIter(n int) Option {
	return func(o *SortOptions) { o.MaxIter = n }
}

// WithTolerance sets the relaxation and comparison tolerance.
func WithTolerance(eps float64) Option {
	return func(o *SortOptions) { o.Tolerance = eps }
}

// WithIntegralityTol sets the integrality threshold for link variables.
func WithIntegralityTol(eps float64) Option {
	return func(o *SortOptions) { o.IntegralityTol = eps }
}

// WithBounding toggles pruning by relaxation objective.
func WithBounding(on bool) Option {
	return func(o *SortOptions) { o.Bounding = on }
}

// WithMaxNodes caps the number of relaxations (0 = unlimited).
func WithMaxNodes(n int) Option {
	return func(o *SortOptions) { o.MaxNodes = n }
}

// WithWarmStart seeds the incumbent with a polished nearest-successor path.
func WithWarmStart() Option {
	return func(o *SortOptions) { o.WarmStart = true }
}

func (o SortOptions) validate() error {
	switch {
	case o.MaxIter < 0:
		return fmt.Errorf("MaxIter=%d: %w", o.MaxIter, ErrBadOptions)
	case !(o.Tolerance > 0):
		return fmt.Errorf("Tolerance=%g: %w", o.Tolerance, ErrBadOptions)
	case !(o.IntegralityTol > 0 && o.IntegralityTol < 0.5):
		return fmt.Errorf("IntegralityTol=%g: %w", o.IntegralityTol, ErrBadOptions)
	case o.MaxNodes < 0:
		return fmt.Errorf("MaxNodes=%d: %w", o.MaxNodes, ErrBadOptions)
	}

	return nil
}

func gatherOptions(opts []Option) (SortOptions, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return SortOptions{}, err
	}
	if o.MaxIter == 0 {
		o.MaxIter = DefaultMaxIter
	}

	return o, nil
}
