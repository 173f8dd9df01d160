// Package dominosort - Branch-and-Bound over the link relaxation.
//
// Rationale (succinct):
//  1. The relaxation objective equals the loss of any integral acyclic
//     solution, so it is an admissible lower bound for its subtree.
//  2. Work is kept on an explicit LIFO stack of frames instead of recursion;
//     the worst-case depth is n²−n.
//  3. Cycle cuts go into one shared *Conditions. A cycle banned in one
//     branch is never rediscovered in a sibling. Branch fixings live in the
//     frame and are composed copy-on-combine.
//  4. Children are pushed fix-to-1 first so the fix-to-0 child is explored
//     first, as a recursive search would.
//
// Complexity:
//   - Worst case exponential in n (exact search).
//   - Per relaxation: a dense simplex on O(n²) rows and columns.
//   - Per integral node: O(n³) Floyd–Warshall cycle check.
package dominosort

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/dominosort/lp"
	"github.com/katalvlaran/dominosort/metric"
)

// errStop ends the search without an error (node cap reached).
var errStop = errors.New("dominosort: stop")

// Stats counts search events.
type Stats struct {
	Relaxations int // relaxations solved
	Branches    int // fractional nodes split into two children
	CycleBans   int // cuts added to the shared conditions
	Pruned      int // nodes closed by the bound
	Failures    int // relaxations that did not reach an optimum
	Exhausted   int // fractional nodes at maximal depth
	Incumbents  int // strict improvements of the best path
	MaxDepth    int // deepest frame evaluated

	// WarmStarted reports whether the warm-start path became the first incumbent.
	WarmStarted bool
}

// SortResult captures the outcome of Solve.
type SortResult struct {
	// Items is the best ordering found, or a copy of the input order.
	Items []Item

	// Order holds the input indices of Items.
	Order []int

	// Loss is the loss of Items.
	Loss float64

	// Baseline is the loss of the input order.
	Baseline float64

	// Improved reports whether Items beats the input order.
	Improved bool

	// Optimal reports whether the search proved Items optimal: the tree was
	// fully explored and no relaxation ended inconclusively.
	Optimal bool

	// Warning is non-nil (a *Warning) when the input order is returned
	// without being confirmed by the search.
	Warning error

	// Stats counts search events.
	Stats Stats
}

// frame is one pending node of the search tree.
type frame struct {
	branch *Conditions // fixings accumulated on the way down
	index  int         // link to fix at this node when fix is true
	value  float64
	fix    bool
	depth  int
}

// bbEngine holds all search data and policies.
type bbEngine struct {
	n     int
	items []Item
	m     metric.Metric
	cost  []float64
	opts  SortOptions
	log   *zap.Logger
	level zapcore.Level

	// shared accumulates cycle bans for the whole tree.
	shared *Conditions

	bestPath []int
	bestLoss float64

	// confirmed is set once the search reached an integral acyclic point or
	// closed a node against the incumbent.
	confirmed    bool
	inconclusive bool
	lastFailure  string
	stats        Stats
}

// Sort returns items reordered to minimize Loss under m.
//
// When the search cannot produce or confirm an ordering, Sort returns a copy
// of the input order together with a *Warning (errors.Is(err, ErrNoSolution)).
// The returned items are usable in that case. Other errors (empty input,
// metric failures, invalid options, cancellation) are fatal for the call.
func Sort(items []Item, m metric.Metric, opts ...Option) ([]Item, error) {
	res, err := Solve(items, m, opts...)
	if err != nil {
		return res.Items, err
	}
	if res.Warning != nil {
		return res.Items, res.Warning
	}

	return res.Items, nil
}

// Solve runs the branch-and-bound search and reports the full outcome.
//
// Errors:
//   - ErrNoItems, ErrNilMetric, ErrBadOptions.
//   - Metric errors, wrapped with the offending item indices.
//   - ErrCanceled joined with ctx.Err(); the result then holds the best
//     ordering found so far.
//
// A search that ends without a usable ordering is not an error: see
// SortResult.Warning.
func Solve(items []Item, m metric.Metric, opts ...Option) (SortResult, error) {
	if len(items) == 0 {
		return SortResult{}, ErrNoItems
	}
	if m == nil {
		return SortResult{}, ErrNilMetric
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return SortResult{}, err
	}
	baseline, err := Loss(items, m)
	if err != nil {
		return SortResult{}, err
	}

	n := len(items)
	if n == 1 {
		return SortResult{
			Items:    slices.Clone(items),
			Order:    []int{0},
			Optimal:  true,
			Baseline: baseline,
		}, nil
	}

	e, err := newEngine(items, m, o, baseline)
	if err != nil {
		return SortResult{}, err
	}
	if o.WarmStart {
		if err = e.seed(); err != nil {
			return SortResult{}, err
		}
	}
	runErr := e.run()
	res := e.result(baseline)
	if runErr != nil {
		return res, runErr
	}
	if res.Warning != nil {
		e.log.Warn("dominosort: returning input order",
			zap.Int("items", n),
			zap.String("last_failure", e.lastFailure),
			zap.Int("relaxations", e.stats.Relaxations),
		)
	}

	return res, nil
}

func newEngine(items []Item, m metric.Metric, o SortOptions, baseline float64) (*bbEngine, error) {
	n := len(items)
	cost, err := costVector(items, m)
	if err != nil {
		return nil, err
	}
	shared, err := General(n)
	if err != nil {
		return nil, err
	}
	e := &bbEngine{
		n:        n,
		items:    items,
		m:        m,
		cost:     cost,
		opts:     o,
		log:      o.Logger,
		level:    zapcore.DebugLevel,
		shared:   shared,
		bestLoss: baseline,
	}
	if o.Verbose {
		e.level = zapcore.InfoLevel
	}

	return e, nil
}

// trace logs a per-node diagnostic at the configured level.
func (e *bbEngine) trace(msg string, fields ...zap.Field) {
	if ce := e.log.Check(e.level, msg); ce != nil {
		ce.Write(fields...)
	}
}

// eps is the comparison slack relative to the incumbent.
func (e *bbEngine) eps() float64 {
	return e.opts.Tolerance * (1 + math.Abs(e.bestLoss))
}

// run drains the work stack.
func (e *bbEngine) run() error {
	root, err := Empty(e.n)
	if err != nil {
		return err
	}
	maxDepth := e.n*e.n - e.n
	stack := []frame{{branch: root}}
	var f frame
	for len(stack) > 0 {
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, err := e.evaluate(f, maxDepth)
		if errors.Is(err, errStop) {
			e.inconclusive = true
			e.trace("dominosort: node limit reached", zap.Int("max_nodes", e.opts.MaxNodes))

			return nil
		}
		if err != nil {
			e.inconclusive = true

			return err
		}
		stack = append(stack, children...)
	}

	return nil
}

// evaluate solves one frame, re-solving after each cycle ban, and returns
// the children to push (fix-to-1 first).
func (e *bbEngine) evaluate(f frame, maxDepth int) ([]frame, error) {
	local := f.branch
	if f.fix {
		b, err := Branch(e.n, f.index, f.value)
		if err != nil {
			return nil, err
		}
		if local, err = f.branch.And(b); err != nil {
			return nil, err
		}
	}
	if f.depth > e.stats.MaxDepth {
		e.stats.MaxDepth = f.depth
	}

	for {
		if err := e.opts.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
		}
		if e.opts.MaxNodes > 0 && e.stats.Relaxations >= e.opts.MaxNodes {
			return nil, errStop
		}

		res, err := e.relax(local)
		if err != nil {
			return nil, err
		}
		if !res.Success() {
			e.stats.Failures++
			e.lastFailure = res.Message
			if res.Status != lp.Infeasible {
				e.inconclusive = true
			}
			e.trace("dominosort: relaxation failed",
				zap.Int("depth", f.depth),
				zap.Stringer("status", res.Status),
				zap.String("message", res.Message),
			)

			return nil, nil
		}

		if e.opts.Bounding && res.Objective >= e.bestLoss-e.eps() {
			e.stats.Pruned++
			e.confirmed = true
			e.trace("dominosort: bound prune",
				zap.Int("depth", f.depth),
				zap.Float64("objective", res.Objective),
				zap.Float64("incumbent", e.bestLoss),
			)

			return nil, nil
		}

		if k := fractionalIndex(res.X, e.opts.IntegralityTol); k >= 0 {
			if f.depth >= maxDepth {
				e.stats.Exhausted++
				e.inconclusive = true

				return nil, nil
			}
			e.stats.Branches++
			e.trace("dominosort: branch",
				zap.Int("depth", f.depth),
				zap.Int("link", k),
				zap.Float64("value", res.X[k]),
			)

			return []frame{
				{branch: local, index: k, value: 1, fix: true, depth: f.depth + 1},
				{branch: local, index: k, value: 0, fix: true, depth: f.depth + 1},
			}, nil
		}

		cycle, err := shortestCycle(res.X, e.n)
		if err != nil {
			return nil, err
		}
		if cycle != nil {
			if err = e.shared.BanCycle(cycle); err != nil {
				return nil, err
			}
			e.stats.CycleBans++
			e.trace("dominosort: cycle banned",
				zap.Int("depth", f.depth),
				zap.Ints("cycle", cycle),
				zap.Stringer("links", linkMatrix{x: res.X, n: e.n}),
			)

			continue
		}

		return nil, e.offer(res.X)
	}
}

// relax solves the relaxation under shared ∧ local.
func (e *bbEngine) relax(local *Conditions) (lp.Result, error) {
	combined, err := e.shared.And(local)
	if err != nil {
		return lp.Result{}, err
	}
	p, err := combined.Problem(e.cost)
	if err != nil {
		return lp.Result{}, err
	}
	e.stats.Relaxations++

	return lp.Solve(p, lp.WithMaxIter(e.opts.MaxIter), lp.WithTolerance(e.opts.Tolerance))
}

// offer scores the Hamiltonian path in x and keeps it on strict improvement.
func (e *bbEngine) offer(x []float64) error {
	path, err := retracePath(x, e.n)
	if err != nil {
		return err
	}
	loss, err := Loss(Permute(e.items, path), e.m)
	if err != nil {
		return err
	}
	e.confirmed = true
	if loss < e.bestLoss-e.eps() {
		e.bestPath, e.bestLoss = path, loss
		e.stats.Incumbents++
		e.trace("dominosort: new incumbent", zap.Float64("loss", loss), zap.Ints("order", path))
	}

	return nil
}

// seed installs the warm-start path as incumbent when it beats the input order.
func (e *bbEngine) seed() error {
	path, _ := warmStart(e.cost, e.n, e.eps())
	loss, err := Loss(Permute(e.items, path), e.m)
	if err != nil {
		return err
	}
	e.trace("dominosort: warm start", zap.Float64("loss", loss), zap.Float64("baseline", e.bestLoss))
	if loss < e.bestLoss-e.eps() {
		e.bestPath, e.bestLoss = path, loss
		e.stats.WarmStarted = true
	}

	return nil
}

// result assembles the SortResult from the engine state.
func (e *bbEngine) result(baseline float64) SortResult {
	res := SortResult{Baseline: baseline, Stats: e.stats}
	if e.bestPath != nil {
		res.Order = slices.Clone(e.bestPath)
		res.Items = Permute(e.items, e.bestPath)
		res.Loss = e.bestLoss
		res.Improved = true
	} else {
		res.Order = make([]int, e.n)
		for i := range res.Order {
			res.Order[i] = i
		}
		res.Items = slices.Clone(e.items)
		res.Loss = baseline
		if !e.confirmed {
			res.Warning = &Warning{Message: e.lastFailure}
		}
	}
	res.Optimal = !e.inconclusive && res.Warning == nil

	return res
}
