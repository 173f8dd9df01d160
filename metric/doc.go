// Package metric defines the distance between the tail of one item and the
// head of the next one.
//
// A Metric evaluates two equal-length vectors and returns a non-negative
// scalar that is zero exactly when the inputs are equal. The standard
// variants are:
//
//   - Manhattan: L1 norm of the difference, Σ|aᵢ−bᵢ|.
//   - Euclidean: L2 norm of the difference, √Σ(aᵢ−bᵢ)².
//   - Minkowski: Lp norm for any p ≥ 1.
//   - Chebyshev: L∞ norm, maxᵢ|aᵢ−bᵢ|.
//
// Any other norm can be plugged in through Func. The triangle inequality is
// assumed by callers but never enforced.
//
// Complexity: every evaluation is O(d) for d-dimensional vectors.
package metric
