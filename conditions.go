package dominosort

import (
	"fmt"

	"github.com/katalvlaran/dominosort/lp"
	"github.com/katalvlaran/dominosort/matrix"
)

// Conditions is a linear constraint system over the n² link variables.
// Variable i*n+j is 1 when item j directly follows item i.
//
// Composition with And is copy-on-combine: operands are never mutated.
// BanCycle is the one in-place operation; every holder of the same
// *Conditions sees the new cut.
type Conditions struct {
	n   int
	aeq *matrix.Dense // nil when there are no equality rows
	beq []float64
	aub *matrix.Dense // nil when there are no inequality rows
	bub []float64
}

// Empty returns a constraint set with no rows over n items.
func Empty(n int) (*Conditions, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrNoItems)
	}

	return &Conditions{n: n}, nil
}

// General returns the baseline constraints for n items:
//   - Σ x = n−1 (a path has n−1 links),
//   - Σ diag x = 0 (no self links),
//   - out-degree of every item ≤ 1,
//   - in-degree of every item ≤ 1.
//
// Variable bounds [0,1] are applied by Problem.
func General(n int) (*Conditions, error) {
	c, err := Empty(n)
	if err != nil {
		return nil, err
	}
	nn := n * n
	all := make([]float64, nn)
	diag := make([]float64, nn)
	var i, j int
	for i = 0; i < nn; i++ {
		all[i] = 1
	}
	for i = 0; i < n; i++ {
		diag[i*n+i] = 1
	}
	if err = c.addEq(all, float64(n-1)); err != nil {
		return nil, err
	}
	if err = c.addEq(diag, 0); err != nil {
		return nil, err
	}

	for i = 0; i < n; i++ {
		out := make([]float64, nn)
		for j = 0; j < n; j++ {
			out[i*n+j] = 1
		}
		if err = c.addUb(out, 1); err != nil {
			return nil, err
		}
	}
	for j = 0; j < n; j++ {
		in := make([]float64, nn)
		for i = 0; i < n; i++ {
			in[i*n+j] = 1
		}
		if err = c.addUb(in, 1); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Branch returns a single equality row pinning x[index] to value (0 or 1).
func Branch(n, index int, value float64) (*Conditions, error) {
	c, err := Empty(n)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= n*n {
		return nil, fmt.Errorf("index %d outside [0,%d): %w", index, n*n, ErrBadBranch)
	}
	if value != 0 && value != 1 {
		return nil, fmt.Errorf("value %g: %w", value, ErrBadBranch)
	}
	row := make([]float64, n*n)
	row[index] = 1
	if err = c.addEq(row, value); err != nil {
		return nil, err
	}

	return c, nil
}

// BanCycle appends, in place, Σ x over the cycle's links ≤ len(cycle)−1.
// cycle lists item indices in link order; the closing link runs from the
// last index back to the first.
func (c *Conditions) BanCycle(cycle []int) error {
	if c == nil {
		return fmt.Errorf("nil conditions: %w", ErrBadCycle)
	}
	if len(cycle) == 0 {
		return fmt.Errorf("empty cycle: %w", ErrBadCycle)
	}
	seen := make(map[int]struct{}, len(cycle))
	for _, v := range cycle {
		if v < 0 || v >= c.n {
			return fmt.Errorf("index %d outside [0,%d): %w", v, c.n, ErrBadCycle)
		}
		if _, ok := seen[v]; ok {
			return fmt.Errorf("index %d repeats: %w", v, ErrBadCycle)
		}
		seen[v] = struct{}{}
	}

	row := make([]float64, c.n*c.n)
	var k int
	for k = range cycle {
		row[cycle[k]*c.n+cycle[(k+1)%len(cycle)]] = 1
	}

	return c.addUb(row, float64(len(cycle)-1))
}

// And returns c ∧ other: equality and inequality rows of c followed by those
// of other. Neither operand is modified.
func (c *Conditions) And(other *Conditions) (*Conditions, error) {
	if c == nil || other == nil {
		return nil, fmt.Errorf("nil operand: %w", ErrConditionsMismatch)
	}
	if c.n != other.n {
		return nil, fmt.Errorf("%d vs %d: %w", c.n, other.n, ErrConditionsMismatch)
	}
	aeq, err := matrix.VStack(c.aeq, other.aeq)
	if err != nil {
		return nil, fmt.Errorf("dominosort: And: %w", err)
	}
	aub, err := matrix.VStack(c.aub, other.aub)
	if err != nil {
		return nil, fmt.Errorf("dominosort: And: %w", err)
	}

	return &Conditions{
		n:   c.n,
		aeq: aeq,
		beq: concat(c.beq, other.beq),
		aub: aub,
		bub: concat(c.bub, other.bub),
	}, nil
}

// N returns the number of items the constraints are written for.
func (c *Conditions) N() int { return c.n }

// EqualityRows returns the number of equality constraints.
func (c *Conditions) EqualityRows() int { return len(c.beq) }

// InequalityRows returns the number of ≤ constraints.
func (c *Conditions) InequalityRows() int { return len(c.bub) }

// Problem builds the relaxation min cost·x under c with 0 ≤ x ≤ 1.
// The returned problem shares no storage with c.
func (c *Conditions) Problem(cost []float64) (lp.Problem, error) {
	if c == nil {
		return lp.Problem{}, fmt.Errorf("nil conditions: %w", ErrConditionsMismatch)
	}
	nn := c.n * c.n
	if err := matrix.ValidateVecLen(cost, nn); err != nil {
		return lp.Problem{}, fmt.Errorf("dominosort: cost: %w", err)
	}
	p := lp.Problem{
		C:     append([]float64(nil), cost...),
		Beq:   append([]float64(nil), c.beq...),
		Bub:   append([]float64(nil), c.bub...),
		Lower: make([]float64, nn),
		Upper: make([]float64, nn),
	}
	if c.aeq != nil {
		p.Aeq = c.aeq.Clone()
	}
	if c.aub != nil {
		p.Aub = c.aub.Clone()
	}
	var j int
	for j = range p.Upper {
		p.Upper[j] = 1
	}

	return p, nil
}

func (c *Conditions) addEq(row []float64, rhs float64) error {
	m, err := matrix.AppendRow(c.aeq, row)
	if err != nil {
		return fmt.Errorf("dominosort: equality row: %w", err)
	}
	c.aeq = m
	c.beq = append(c.beq, rhs)

	return nil
}

func (c *Conditions) addUb(row []float64, rhs float64) error {
	m, err := matrix.AppendRow(c.aub, row)
	if err != nil {
		return fmt.Errorf("dominosort: inequality row: %w", err)
	}
	c.aub = m
	c.bub = append(c.bub, rhs)

	return nil
}

func concat(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))

	return append(append(out, a...), b...)
}
