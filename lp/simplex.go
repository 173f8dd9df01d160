package lp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dominosort/matrix"
)

const (
	msgOptimal    = "optimization terminated successfully"
	msgInfeasible = "the problem is infeasible"
	msgUnbounded  = "the problem is unbounded"
)

// stdRow is one constraint after lower-bound shifting and sign normalization.
type stdRow struct {
	a     []float64 // coefficients over the n structural variables
	b     float64   // right-hand side, >= 0 after normalization
	slack float64   // +1, -1 for ≤ rows (after negation), 0 for equality rows
	art   bool      // row needs an artificial variable
}

// Solve minimizes p.C·x under p's constraints.
//
// Errors (malformed input only):
//   - ErrShape, ErrNaN, ErrUnsupportedBound, ErrBadOption.
//
// Every solver outcome, including infeasibility and hitting MaxIter, is a
// Status on the returned Result with a nil error.
func Solve(p Problem, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	if o.MaxIter == 0 {
		o.MaxIter = DefaultMaxIter
	}

	lower, upper, err := bounds(p)
	if err != nil {
		return Result{}, err
	}
	var j int
	for j = range lower {
		if upper[j] < lower[j] {
			return Result{
				Status:  Infeasible,
				Message: fmt.Sprintf("%s: bounds of x[%d] are empty", msgInfeasible, j),
			}, nil
		}
	}

	rows, err := standardize(p, lower, upper)
	if err != nil {
		return Result{}, err
	}

	tb, err := newTableau(len(p.C), rows, o)
	if err != nil {
		return Result{}, err
	}

	// Phase 1.
	if tb.artStart < tb.cols {
		tb.pricePhase1()
		if st := tb.run(tb.cols); st != Optimal {
			return Result{Status: st, Message: tb.message(st, 1), Iterations: tb.iters}, nil
		}
		if tb.objective() > o.Tol*(1+tb.rhsNorm) {
			return Result{
				Status:     Infeasible,
				Message:    fmt.Sprintf("%s: phase one residual %.3g", msgInfeasible, tb.objective()),
				Iterations: tb.iters,
			}, nil
		}
		tb.evictArtificials()
	}

	// Phase 2.
	tb.pricePhase2(p.C)
	if st := tb.run(tb.artStart); st != Optimal {
		return Result{Status: st, Message: tb.message(st, 2), Iterations: tb.iters}, nil
	}

	x := tb.solution(lower)
	var obj float64
	for j = range x {
		obj += p.C[j] * x[j]
	}

	return Result{
		X:          x,
		Objective:  obj,
		Status:     Optimal,
		Message:    msgOptimal,
		Iterations: tb.iters,
	}, nil
}

// bounds materializes default bounds and validates them.
func bounds(p Problem) ([]float64, []float64, error) {
	n := len(p.C)
	if n == 0 {
		return nil, nil, fmt.Errorf("no variables: %w", ErrShape)
	}
	lower := make([]float64, n)
	upper := make([]float64, n)
	var j int
	for j = 0; j < n; j++ {
		upper[j] = math.Inf(1)
		if math.IsNaN(p.C[j]) || math.IsInf(p.C[j], 0) {
			return nil, nil, fmt.Errorf("c[%d]: %w", j, ErrNaN)
		}
	}
	if p.Lower != nil {
		if err := matrix.ValidateVecLen(p.Lower, n); err != nil {
			return nil, nil, fmt.Errorf("lower: %w", ErrShape)
		}
		for j = range p.Lower {
			if math.IsNaN(p.Lower[j]) {
				return nil, nil, fmt.Errorf("lower[%d]: %w", j, ErrNaN)
			}
			if math.IsInf(p.Lower[j], 0) {
				return nil, nil, fmt.Errorf("lower[%d]: %w", j, ErrUnsupportedBound)
			}
		}
		copy(lower, p.Lower)
	}
	if p.Upper != nil {
		if err := matrix.ValidateVecLen(p.Upper, n); err != nil {
			return nil, nil, fmt.Errorf("upper: %w", ErrShape)
		}
		for j = range p.Upper {
			if math.IsNaN(p.Upper[j]) {
				return nil, nil, fmt.Errorf("upper[%d]: %w", j, ErrNaN)
			}
		}
		copy(upper, p.Upper)
	}

	return lower, upper, nil
}

// standardize reads both constraint blocks, shifts by lower, appends finite
// upper bounds as ≤ rows, and flips rows so every right-hand side is ≥ 0.
func standardize(p Problem, lower, upper []float64) ([]stdRow, error) {
	n := len(p.C)
	eq, err := readBlock(p.Aeq, p.Beq, n, "eq")
	if err != nil {
		return nil, err
	}
	ub, err := readBlock(p.Aub, p.Bub, n, "ub")
	if err != nil {
		return nil, err
	}

	rows := make([]stdRow, 0, len(eq)+len(ub)+n)
	var i, j int
	for i = range eq {
		eq[i].b -= dot(eq[i].a, lower)
		if eq[i].b < 0 {
			negate(&eq[i])
		}
		eq[i].art = true
		rows = append(rows, eq[i])
	}
	for i = range ub {
		ub[i].b -= dot(ub[i].a, lower)
		ub[i].slack = 1
		if ub[i].b < 0 {
			negate(&ub[i])
			ub[i].art = true
		}
		rows = append(rows, ub[i])
	}
	for j = 0; j < n; j++ {
		if math.IsInf(upper[j], 1) {
			continue
		}
		a := make([]float64, n)
		a[j] = 1
		rows = append(rows, stdRow{a: a, b: upper[j] - lower[j], slack: 1})
	}

	return rows, nil
}

// readBlock copies A (rows × n) and b into stdRows.
func readBlock(a matrix.Matrix, b []float64, n int, tag string) ([]stdRow, error) {
	if a == nil || matrix.ValidateNotNil(a) != nil {
		if len(b) != 0 {
			return nil, fmt.Errorf("%s: %d rhs values without rows: %w", tag, len(b), ErrShape)
		}

		return nil, nil
	}
	if a.Cols() != n || a.Rows() != len(b) {
		return nil, fmt.Errorf("%s: A is %dx%d, b has %d, n=%d: %w", tag, a.Rows(), a.Cols(), len(b), n, ErrShape)
	}
	out := make([]stdRow, a.Rows())
	var (
		i, j int
		v    float64
		err  error
	)
	for i = range out {
		if math.IsNaN(b[i]) || math.IsInf(b[i], 0) {
			return nil, fmt.Errorf("%s: b[%d]: %w", tag, i, ErrNaN)
		}
		out[i].a = make([]float64, n)
		out[i].b = b[i]
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", tag, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: A[%d,%d]: %w", tag, i, j, ErrNaN)
			}
			out[i].a[j] = v
		}
	}

	return out, nil
}

func negate(r *stdRow) {
	var j int
	for j = range r.a {
		r.a[j] = -r.a[j]
	}
	r.b = -r.b
	r.slack = -r.slack
}

func dot(a, b []float64) float64 {
	var (
		s float64
		j int
	)
	for j = range a {
		s += a[j] * b[j]
	}

	return s
}

// tableau is the simplex working state.
// Columns: [0,n) structural, [n,artStart) slacks, [artStart,cols) artificials, cols = rhs.
// Row m is the objective row holding reduced costs and −z in the rhs cell.
type tableau struct {
	t        *matrix.Dense
	rows     [][]float64 // RowView aliases into t; rows[m] is the objective
	m        int
	n        int
	artStart int
	cols     int
	basis    []int
	rhsNorm  float64

	tol     float64
	maxIter int
	iters   int
}

func newTableau(n int, rows []stdRow, o Options) (*tableau, error) {
	m := len(rows)
	var nSlack, nArt int
	for _, r := range rows {
		if r.slack != 0 {
			nSlack++
		}
		if r.art {
			nArt++
		}
	}
	tb := &tableau{
		m:        m,
		n:        n,
		artStart: n + nSlack,
		cols:     n + nSlack + nArt,
		basis:    make([]int, m),
		tol:      o.Tol,
		maxIter:  o.MaxIter,
	}
	t, err := matrix.NewDense(m+1, tb.cols+1)
	if err != nil {
		return nil, fmt.Errorf("tableau: %w", err)
	}
	tb.t = t
	tb.rows = make([][]float64, m+1)
	var i int
	for i = 0; i <= m; i++ {
		if tb.rows[i], err = t.RowView(i); err != nil {
			return nil, fmt.Errorf("tableau: %w", err)
		}
	}

	slack, art := n, tb.artStart
	for i = 0; i < m; i++ {
		row := tb.rows[i]
		copy(row, rows[i].a)
		row[tb.cols] = rows[i].b
		if rows[i].slack != 0 {
			row[slack] = rows[i].slack
			if !rows[i].art {
				tb.basis[i] = slack
			}
			slack++
		}
		if rows[i].art {
			row[art] = 1
			tb.basis[i] = art
			tb.rhsNorm += rows[i].b
			art++
		}
	}

	return tb, nil
}

// pricePhase1 sets the objective to Σ artificials, priced against the basis.
func (tb *tableau) pricePhase1() {
	obj := tb.rows[tb.m]
	clear(obj)
	var i, j int
	for i = 0; i < tb.m; i++ {
		if tb.basis[i] < tb.artStart {
			continue
		}
		for j = 0; j <= tb.cols; j++ {
			obj[j] -= tb.rows[i][j]
		}
	}
	for j = tb.artStart; j < tb.cols; j++ {
		obj[j] = 0
	}
}

// pricePhase2 sets the objective to c (zero on slacks), priced against the basis.
func (tb *tableau) pricePhase2(c []float64) {
	obj := tb.rows[tb.m]
	clear(obj)
	copy(obj, c)
	var (
		i, j int
		cb   float64
	)
	for i = 0; i < tb.m; i++ {
		if tb.basis[i] >= tb.n {
			continue
		}
		cb = c[tb.basis[i]]
		if cb == 0 {
			continue
		}
		for j = 0; j <= tb.cols; j++ {
			obj[j] -= cb * tb.rows[i][j]
		}
	}
}

// objective returns the current z.
func (tb *tableau) objective() float64 { return -tb.rows[tb.m][tb.cols] }

// run pivots with Bland's rule over entering columns [0, limit).
func (tb *tableau) run(limit int) Status {
	obj := tb.rows[tb.m]
	var (
		j, enter, leave, i int
		a, ratio, best     float64
	)
	for {
		enter = -1
		for j = 0; j < limit; j++ {
			if obj[j] < -tb.tol {
				enter = j
				break
			}
		}
		if enter < 0 {
			return Optimal
		}
		if tb.iters >= tb.maxIter {
			return IterationLimit
		}

		leave, best = -1, math.Inf(1)
		for i = 0; i < tb.m; i++ {
			a = tb.rows[i][enter]
			if a <= tb.tol {
				continue
			}
			ratio = tb.rows[i][tb.cols] / a
			if ratio < best-tb.tol || (ratio <= best+tb.tol && leave >= 0 && tb.basis[i] < tb.basis[leave]) {
				leave, best = i, ratio
			}
		}
		if leave < 0 {
			return Unbounded
		}
		tb.pivot(leave, enter)
	}
}

// pivot makes column col basic in row r.
func (tb *tableau) pivot(r, col int) {
	pr := tb.rows[r]
	inv := 1 / pr[col]
	var (
		i, j int
		f    float64
	)
	for j = 0; j <= tb.cols; j++ {
		pr[j] *= inv
	}
	pr[col] = 1
	for i = 0; i <= tb.m; i++ {
		if i == r {
			continue
		}
		row := tb.rows[i]
		if f = row[col]; f == 0 {
			continue
		}
		for j = 0; j <= tb.cols; j++ {
			row[j] -= f * pr[j]
		}
		row[col] = 0
	}
	tb.basis[r] = col
	tb.iters++
}

// evictArtificials pivots zero-valued artificials out of the basis. Rows
// where no real column has a usable coefficient are redundant and keep
// their artificial, which never re-enters in phase 2.
func (tb *tableau) evictArtificials() {
	var i, j int
	for i = 0; i < tb.m; i++ {
		if tb.basis[i] < tb.artStart {
			continue
		}
		for j = 0; j < tb.artStart; j++ {
			if math.Abs(tb.rows[i][j]) > tb.tol {
				tb.pivot(i, j)
				break
			}
		}
	}
}

// solution reads x = y + lower from the basis.
func (tb *tableau) solution(lower []float64) []float64 {
	x := make([]float64, tb.n)
	var (
		i int
		y float64
	)
	for i = 0; i < tb.m; i++ {
		if tb.basis[i] >= tb.n {
			continue
		}
		if y = tb.rows[i][tb.cols]; math.Abs(y) > tb.tol {
			x[tb.basis[i]] = y
		}
	}
	for i = range x {
		x[i] += lower[i]
	}

	return x
}

func (tb *tableau) message(st Status, phase int) string {
	switch st {
	case IterationLimit:
		return fmt.Sprintf("iteration limit (%d) reached in phase %d", tb.maxIter, phase)
	case Unbounded:
		return msgUnbounded
	default:
		return st.String()
	}
}
