// Package lp solves small dense linear programs of the form
//
//	minimize    cᵀx
//	subject to  A_eq·x  = b_eq
//	            A_ub·x ≤ b_ub
//	            lower ≤ x ≤ upper
//
// with a two-phase tableau simplex.
//
// Rationale (succinct):
//  1. Lower bounds are shifted out (y = x − lower) so every variable is ≥ 0.
//     Finite upper bounds become extra ≤ rows.
//  2. Phase 1 minimizes the sum of artificial variables added to equality
//     rows and to ≤ rows with a negative right-hand side. A positive optimum
//     means the problem is infeasible.
//  3. Phase 2 re-prices the tableau with the real costs, keeping artificial
//     columns out of the basis.
//  4. Pivoting follows Bland's rule (smallest index enters, smallest basic
//     index leaves on ratio ties), which rules out cycling on the highly
//     degenerate assignment-like polytopes this package is used for.
//
// Solver outcomes (infeasible, unbounded, iteration cap) are reported as a
// Status on the Result; the returned error is reserved for malformed input.
//
// Complexity:
//   - Per pivot: O(m·n) on an (m+1)×(n+1) tableau.
//   - Pivots: exponential in the worst case, bounded by Options.MaxIter.
package lp
